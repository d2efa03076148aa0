package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goto/catalogindex/core/index"
	esStore "github.com/goto/catalogindex/internal/store/elasticsearch"
	"github.com/goto/catalogindex/internal/store/postgres"
	"github.com/goto/catalogindex/pkg/statsd"
	"github.com/goto/catalogindex/pkg/telemetry"
	"github.com/goto/salt/log"
)

const maxDocumentLineSize = 16 << 20

// app holds the clients a command runs with.
type app struct {
	cfg      *Config
	logger   log.Logger
	tel      *telemetry.Telemetry
	reporter *statsd.Reporter
	es       *esStore.Client
	pg       *postgres.Client
}

type appOption struct {
	elasticsearch bool
	postgres      bool
}

func newApp(ctx context.Context, cfg *Config, opt appOption) (_ *app, err error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := initLogger(cfg.LogLevel)
	a := &app{cfg: cfg, logger: logger}
	defer func() {
		if err != nil {
			a.Close()
		}
	}()

	cfg.Telemetry.AppVersion = Version
	if a.tel, err = telemetry.Init(ctx, cfg.Telemetry, logger); err != nil {
		return nil, fmt.Errorf("init telemetry: %w", err)
	}
	if a.reporter, err = statsd.Init(logger, cfg.StatsD); err != nil {
		return nil, fmt.Errorf("init statsd: %w", err)
	}

	if opt.elasticsearch {
		if a.es, err = initElasticsearch(logger, cfg.Elasticsearch); err != nil {
			return nil, err
		}
	}
	if opt.postgres && cfg.DBEnabled {
		if a.pg, err = initPostgres(ctx, logger, cfg.DB); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (a *app) Close() {
	if a.pg != nil {
		if err := a.pg.Close(); err != nil {
			a.logger.Warn("close postgres client", "err", err)
		}
	}
	if err := a.reporter.Close(); err != nil {
		a.logger.Warn("close statsd client", "err", err)
	}
	a.tel.Close()
}

// run executes fn inside a telemetry transaction named operation.
func (a *app) run(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	ctx, end := a.tel.StartTransaction(ctx, operation)
	err := fn(ctx)
	end(err)
	return err
}

func (a *app) indexService() (*index.Service, error) {
	mappings, err := loadMappings(a.cfg.MappingsDir)
	if err != nil {
		return nil, err
	}
	analysis, err := a.cfg.analysisConfig()
	if err != nil {
		return nil, err
	}

	deps := index.ServiceDeps{
		Engine:   a.es,
		Mappings: mappings,
		Analysis: analysis,
		Logger:   a.logger,
	}
	if a.pg != nil {
		codes := make([]string, 0, len(a.cfg.Index.Stores))
		for _, s := range a.cfg.Index.Stores {
			codes = append(codes, s.Code)
		}
		if deps.Synonyms, err = postgres.NewSynonymRepository(a.pg, codes...); err != nil {
			return nil, err
		}
		if deps.Journal, err = postgres.NewRebuildRepository(a.pg); err != nil {
			return nil, err
		}
	}

	return index.NewService(a.cfg.Index, deps, index.ServiceWithStatsDReporter(a.reporter)), nil
}

// lock takes the rebuild lock of the configured alias. Without a database
// there is nothing to lock on and the returned release is a no-op.
func (a *app) lock(ctx context.Context) (func(), error) {
	if a.pg == nil {
		a.logger.Warn("database disabled, running without rebuild lock", "alias", a.cfg.Index.Alias)
		return func() {}, nil
	}

	locker, err := postgres.NewLocker(a.pg)
	if err != nil {
		return nil, err
	}
	lk, err := locker.TryAcquire(ctx, "rebuild:"+a.cfg.Index.Alias)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("rebuild lock acquired", "key", lk.Key())

	return func() {
		if err := lk.Release(context.Background()); err != nil {
			a.logger.Error("release rebuild lock", "key", lk.Key(), "err", err)
		}
	}, nil
}

func initLogger(logLevel string) *log.Logrus {
	logger := log.NewLogrus(
		log.LogrusWithLevel(logLevel),
		log.LogrusWithWriter(os.Stderr),
	)
	return logger
}

func initElasticsearch(logger log.Logger, config esStore.Config) (*esStore.Client, error) {
	esClient, err := esStore.NewClient(logger, config)
	if err != nil {
		return nil, fmt.Errorf("create new elasticsearch client: %w", err)
	}
	got, err := esClient.Init()
	if err != nil {
		return nil, fmt.Errorf("establish connection to elasticsearch: %w", err)
	}
	logger.Info("connected to elasticsearch", "info", got)
	return esClient, nil
}

func initPostgres(ctx context.Context, logger log.Logger, config postgres.Config) (*postgres.Client, error) {
	pgClient, err := postgres.NewClient(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("error creating postgres client: %w", err)
	}
	logger.Info("connected to postgres server", "host", config.Host, "port", config.Port)

	return pgClient, nil
}

// loadMappings reads one <type>.json mapping file per document type.
func loadMappings(dir string) (map[string]index.Mapping, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	mappings := make(map[string]index.Mapping, len(paths))
	for _, p := range paths {
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read mapping: %w", err)
		}
		var m index.Mapping
		if err := json.Unmarshal(b, &m); err != nil {
			return nil, fmt.Errorf("invalid mapping %s: %w", p, err)
		}
		docType := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		mappings[docType] = m
	}
	if len(mappings) == 0 {
		return nil, fmt.Errorf("no mapping found in %q", dir)
	}
	return mappings, nil
}

type documentLine struct {
	ID   string                 `json:"id"`
	Type string                 `json:"type"`
	Data map[string]interface{} `json:"data"`
}

// readDocuments decodes newline delimited documents of the form
// {"id": "...", "type": "...", "data": {...}}.
func readDocuments(r io.Reader) ([]index.Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxDocumentLineSize)

	var docs []index.Document
	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}

		var dl documentLine
		if err := json.Unmarshal([]byte(raw), &dl); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if dl.ID == "" || dl.Type == "" {
			return nil, fmt.Errorf("line %d: id and type are required", line)
		}
		doc, err := index.NewDocument(dl.ID, dl.Type, dl.Data)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		docs = append(docs, doc)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}

func readDocumentsFile(path string) ([]index.Document, error) {
	if path == "" {
		return nil, nil
	}
	if path == "-" {
		return readDocuments(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open documents: %w", err)
	}
	defer f.Close()

	docs, err := readDocuments(f)
	if err != nil {
		return nil, fmt.Errorf("read documents %s: %w", path, err)
	}
	return docs, nil
}
