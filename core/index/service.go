package index

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goto/catalogindex/pkg/statsd"
	"github.com/goto/salt/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/goto/catalogindex/core/index"

// Config is the rebuild configuration of one alias.
type Config struct {
	Alias           string       `yaml:"alias" mapstructure:"alias" validate:"required"`
	NamePattern     string       `yaml:"name_pattern" mapstructure:"name_pattern" default:"{{YYYYMMdd}}-{{HHmmss}}"`
	Shards          int          `yaml:"shards" mapstructure:"shards" default:"1" validate:"gte=1"`
	Replicas        int          `yaml:"replicas" mapstructure:"replicas" default:"1" validate:"gte=0"`
	Build           PresetConfig `yaml:"build" mapstructure:"build"`
	Serve           PresetConfig `yaml:"serve" mapstructure:"serve"`
	BulkSize        int          `yaml:"bulk_size" mapstructure:"bulk_size" default:"1000" validate:"gte=1"`
	ScrollTimeout   string       `yaml:"scroll_timeout" mapstructure:"scroll_timeout" default:"5m" validate:"omitempty,duration"`
	ExtendedFolding bool         `yaml:"extended_folding" mapstructure:"extended_folding"`
	Stores          []Store      `yaml:"stores" mapstructure:"stores" validate:"dive"`
}

//go:generate mockery --name=SynonymSource -r --case underscore --with-expecter --structname SynonymSource --filename synonym_source.go --output=./mocks

// SynonymSource provides synonym rules in Solr format.
type SynonymSource interface {
	List(ctx context.Context) ([]string, error)
}

//go:generate mockery --name=Journal -r --case underscore --with-expecter --structname Journal --filename journal.go --output=./mocks

// Journal keeps the history of rebuilds.
type Journal interface {
	Create(ctx context.Context, rec RebuildRecord) error
	UpdateStatus(ctx context.Context, rec RebuildRecord) error
}

type ServiceDeps struct {
	Engine       Engine
	Mappings     map[string]Mapping
	Analysis     AnalysisConfig
	Synonyms     SynonymSource
	Journal      Journal
	CreateHooks  []CreateHook
	InstallHooks []InstallHook
	Logger       log.Logger
	Clock        func() time.Time
}

// Service drives rebuild sessions of an alias.
type Service struct {
	cfg       Config
	engine    Engine
	lifecycle *Lifecycle
	publisher *Publisher
	copier    *Copier
	mappings  map[string]Mapping
	analysis  AnalysisConfig
	synonyms  SynonymSource
	journal   Journal
	logger    log.Logger
	now       func() time.Time

	statsdReporter *statsd.Reporter
	tracer         trace.Tracer
	opCounter      metric.Int64Counter
	stepDuration   metric.Float64Histogram
}

type ServiceOption func(*Service)

func ServiceWithStatsDReporter(reporter *statsd.Reporter) ServiceOption {
	return func(s *Service) {
		s.statsdReporter = reporter
	}
}

func NewService(cfg Config, deps ServiceDeps, opts ...ServiceOption) *Service {
	meter := otel.Meter(instrumentationName)
	opCounter, err := meter.Int64Counter("catalogindex.rebuild.operation")
	if err != nil {
		otel.Handle(err)
	}
	stepDuration, err := meter.Float64Histogram("catalogindex.rebuild.step.duration", metric.WithUnit("ms"))
	if err != nil {
		otel.Handle(err)
	}

	logger := deps.Logger
	if logger == nil {
		logger = log.NewNoop()
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	lifecycle := NewLifecycle(deps.Engine, logger, deps.CreateHooks...)
	serve := ServePreset(cfg.Serve).WithReplicas(cfg.Replicas)

	s := &Service{
		cfg:       cfg,
		engine:    deps.Engine,
		lifecycle: lifecycle,
		publisher: NewPublisher(deps.Engine, lifecycle, serve, logger, deps.InstallHooks...),
		copier: NewCopier(deps.Engine, logger,
			CopierWithBulkSize(cfg.BulkSize),
			CopierWithScrollTimeout(cfg.ScrollTimeout)),
		mappings: deps.Mappings,
		analysis: deps.Analysis,
		synonyms: deps.Synonyms,
		journal:  deps.Journal,
		logger:   logger,
		now:      clock,

		tracer:       otel.Tracer(instrumentationName),
		opCounter:    opCounter,
		stepDuration: stepDuration,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Lifecycle() *Lifecycle {
	return s.lifecycle
}

func (s *Service) Copier() *Copier {
	return s.copier
}

// NewName returns the name a rebuild started at now would use.
func (s *Service) NewName(now time.Time) (string, error) {
	if s.cfg.Alias == "" {
		return "", ErrEmptyAlias
	}
	return NewName(s.cfg.Alias, s.cfg.NamePattern, now)
}

// BuildSettings assembles the settings an index is created with: the build
// preset plus the analysis of the configured stores.
func (s *Service) BuildSettings(ctx context.Context) (Settings, error) {
	var synonyms []string
	if s.synonyms != nil {
		var err error
		if synonyms, err = s.synonyms.List(ctx); err != nil {
			return Settings{}, fmt.Errorf("list synonyms: %w", err)
		}
	}

	analysis := BuildAnalysis(s.analysis, AnalysisOptions{
		Stores:          s.cfg.Stores,
		Synonyms:        synonyms,
		ExtendedFolding: s.cfg.ExtendedFolding,
	})

	settings := BuildPreset(s.cfg.Build).WithReplicas(s.cfg.Replicas)
	settings.Shards = s.cfg.Shards
	settings.MergeThreads = mergeSchedulerThreads
	settings.Analysis = &analysis
	return settings, nil
}

// Prepare provisions a new physical index for the alias and returns the
// session tracking it.
func (s *Service) Prepare(ctx context.Context) (_ *Session, err error) {
	ctx, span := s.tracer.Start(ctx, "index.Prepare")
	defer span.End()

	started := s.now()
	now := started.UTC()
	name, err := s.NewName(now)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("index.name", name))

	sess := newSession(s.cfg.Alias, name, now)
	s.journalCreate(ctx, sess)
	defer func() {
		s.instrument(ctx, span, "prepare", started, err)
		if err != nil {
			s.fail(ctx, sess, err)
		}
	}()

	settings, err := s.BuildSettings(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.lifecycle.CreateOrUpdate(ctx, name, settings, s.mappings); err != nil {
		return nil, err
	}

	sess.pending = true
	s.transition(ctx, sess, StatusPrepared)
	s.logger.Info("index prepared", "session", sess.ID, "alias", sess.Alias, "index", name)
	return sess, nil
}

// ResumeSession returns a pending session for an index prepared earlier,
// for instance by another process.
func (s *Service) ResumeSession(ctx context.Context, name string) (*Session, error) {
	if name == "" {
		return nil, ErrEmptyIndexName
	}
	if s.cfg.Alias == "" {
		return nil, ErrEmptyAlias
	}
	exists, err := s.engine.Exists(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("resume session on %q: %w", name, err)
	}
	if !exists {
		return nil, fmt.Errorf("resume session on %q: index does not exist", name)
	}

	sess := newSession(s.cfg.Alias, name, s.now().UTC())
	sess.record = nil
	sess.pending = true
	return sess, nil
}

// AddDocuments writes docs into the session index.
func (s *Service) AddDocuments(ctx context.Context, sess *Session, docs []Document) (err error) {
	if sess == nil {
		return ErrNilSession
	}
	ctx, span := s.tracer.Start(ctx, "index.AddDocuments")
	defer span.End()
	started := s.now()
	defer func() { s.instrument(ctx, span, "add_documents", started, err) }()

	if err := s.copier.AddDocuments(ctx, sess.Index, docs); err != nil {
		return err
	}
	if sess.record != nil {
		sess.record.Indexed += len(docs)
	}
	return nil
}

// CopyFromAlias copies docType from every index the alias currently
// points to into the session index.
func (s *Service) CopyFromAlias(ctx context.Context, sess *Session, docType string) (copied int, err error) {
	if sess == nil {
		return 0, ErrNilSession
	}
	ctx, span := s.tracer.Start(ctx, "index.CopyFromAlias", trace.WithAttributes(
		attribute.String("index.doc_type", docType),
	))
	defer span.End()
	started := s.now()
	defer func() { s.instrument(ctx, span, "copy", started, err) }()

	sources, err := s.engine.AliasIndices(ctx, sess.Alias)
	if err != nil {
		return 0, fmt.Errorf("list indices of alias %q: %w", sess.Alias, err)
	}

	for _, src := range sources {
		if src == sess.Index {
			continue
		}
		n, err := s.copier.Copy(ctx, src, docType, sess.Index)
		copied += n
		if err != nil {
			return copied, err
		}
	}

	if sess.record != nil {
		sess.record.Copied += copied
	}
	return copied, nil
}

// Install publishes the session index under the alias. Only a pending
// session can be installed.
func (s *Service) Install(ctx context.Context, sess *Session) (report PublishReport, err error) {
	if sess == nil {
		return PublishReport{}, ErrNilSession
	}
	if !sess.Pending() {
		return PublishReport{}, ErrNotPending
	}
	if s.publisher == nil {
		return PublishReport{}, ErrMissingPublisher
	}

	ctx, span := s.tracer.Start(ctx, "index.Install")
	defer span.End()
	started := s.now()
	defer func() {
		s.instrument(ctx, span, "install", started, err)
		if err != nil {
			s.fail(ctx, sess, err)
		}
	}()

	if err := s.lifecycle.Refresh(ctx, sess.Index); err != nil {
		return PublishReport{}, err
	}
	report, err = s.publisher.Publish(ctx, sess.Index, sess.Alias)
	if err != nil {
		return report, err
	}

	sess.pending = false
	s.transition(ctx, sess, StatusInstalled)
	s.logger.Info("index installed", "session", sess.ID, "alias", sess.Alias, "index", sess.Index,
		"removed", len(report.Removed), "cleanup_errors", len(report.CleanupErrors))
	return report, nil
}

type RebuildRequest struct {
	// CopyTypes are copied from the indices currently under the alias.
	CopyTypes []string
	Documents []Document
	// SkipInstall leaves the session pending.
	SkipInstall bool
}

type RebuildResult struct {
	Session *Session
	Copied  int
	Indexed int
	Report  PublishReport
}

// Rebuild runs a full rebuild: prepare, copy, add documents and install.
func (s *Service) Rebuild(ctx context.Context, req RebuildRequest) (RebuildResult, error) {
	var result RebuildResult

	sess, err := s.Prepare(ctx)
	if err != nil {
		return result, err
	}
	result.Session = sess

	for _, docType := range req.CopyTypes {
		n, err := s.CopyFromAlias(ctx, sess, docType)
		result.Copied += n
		if err != nil {
			s.fail(ctx, sess, err)
			return result, err
		}
	}

	if len(req.Documents) > 0 {
		if err := s.AddDocuments(ctx, sess, req.Documents); err != nil {
			s.fail(ctx, sess, err)
			return result, err
		}
		result.Indexed = len(req.Documents)
	}

	if req.SkipInstall {
		if err := s.lifecycle.Refresh(ctx, sess.Index); err != nil {
			return result, err
		}
		return result, nil
	}

	result.Report, err = s.Install(ctx, sess)
	return result, err
}

func (s *Service) journalCreate(ctx context.Context, sess *Session) {
	if s.journal == nil || sess.record == nil {
		return
	}
	if err := s.journal.Create(ctx, *sess.record); err != nil {
		s.logger.Warn("failed to record rebuild", "session", sess.ID, "err", err)
	}
}

func (s *Service) transition(ctx context.Context, sess *Session, status RebuildStatus) {
	if sess.record == nil {
		return
	}
	sess.record.Status = status
	if status == StatusInstalled || status == StatusFailed {
		finished := s.now().UTC()
		sess.record.FinishedAt = &finished
	}
	if s.journal == nil {
		return
	}
	if err := s.journal.UpdateStatus(ctx, *sess.record); err != nil {
		s.logger.Warn("failed to update rebuild record", "session", sess.ID, "status", status, "err", err)
	}
}

func (s *Service) fail(ctx context.Context, sess *Session, err error) {
	if sess == nil || sess.record == nil || sess.record.Status == StatusFailed {
		return
	}
	sess.record.Error = err.Error()
	s.transition(ctx, sess, StatusFailed)
}

func (s *Service) instrument(ctx context.Context, span trace.Span, op string, started time.Time, err error) {
	elapsed := s.now().Sub(started)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	attrs := metric.WithAttributes(
		attribute.String("catalogindex.alias", s.cfg.Alias),
		attribute.String("catalogindex.operation", op),
		attribute.Bool("operation.success", err == nil),
	)
	if s.opCounter != nil {
		s.opCounter.Add(ctx, 1, attrs)
	}
	if s.stepDuration != nil {
		s.stepDuration.Record(ctx, float64(elapsed.Milliseconds()), attrs)
	}

	s.statsdReporter.Timing("rebuild_step", elapsed).
		Tag("alias", s.cfg.Alias).
		Tag("step", op).
		Status(err).
		Publish()

	var provErr ProvisioningError
	if errors.As(err, &provErr) {
		s.logger.Error("index provisioning failed", "op", provErr.Op, "index", provErr.Index, "err", provErr.Err)
	}
}
