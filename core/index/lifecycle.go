package index

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goto/salt/log"
)

const reopenTimeout = 30 * time.Second

// Lifecycle creates physical indices and moves them between the build and
// serve settings presets.
type Lifecycle struct {
	engine Engine
	hooks  []CreateHook
	logger log.Logger
}

func NewLifecycle(engine Engine, logger log.Logger, hooks ...CreateHook) *Lifecycle {
	return &Lifecycle{
		engine: engine,
		hooks:  hooks,
		logger: logger,
	}
}

// CreateOrUpdate creates the index with settings and mappings, or applies
// them to the index if it already exists. Updating requires the index to be
// closed; once closed, it is reopened on every path.
func (l *Lifecycle) CreateOrUpdate(ctx context.Context, name string, settings Settings, mappings map[string]Mapping) error {
	if name == "" {
		return ProvisioningError{Op: "create_or_update", Err: ErrEmptyIndexName}
	}

	exists, err := l.engine.Exists(ctx, name)
	if err != nil {
		return ProvisioningError{Op: "exists", Index: name, Err: err}
	}

	mapping := MergeMappings(mappings)
	if exists {
		l.logger.Info("index already exist, updating it instead", "index", name)
		return l.update(ctx, name, settings, mapping)
	}
	return l.create(ctx, name, settings, mapping)
}

func (l *Lifecycle) create(ctx context.Context, name string, settings Settings, mapping Mapping) error {
	req := CreateRequest{
		Index:    name,
		Settings: settings.Body(true),
		Mappings: mapping,
	}

	for _, h := range l.hooks {
		var err error
		if req, err = h.BeforeCreate(ctx, req); err != nil {
			return ProvisioningError{Op: "before_create", Index: name, Err: err}
		}
	}

	if err := l.engine.Create(ctx, req); err != nil {
		return ProvisioningError{Op: "create", Index: req.Index, Err: err}
	}
	l.logger.Info("index created", "index", req.Index)
	return nil
}

func (l *Lifecycle) update(ctx context.Context, name string, settings Settings, mapping Mapping) (err error) {
	if err := l.engine.Close(ctx, name); err != nil {
		return ProvisioningError{Op: "close", Index: name, Err: err}
	}

	defer func() {
		openCtx := ctx
		if ctx.Err() != nil {
			var cancel context.CancelFunc
			openCtx, cancel = context.WithTimeout(context.Background(), reopenTimeout)
			defer cancel()
		}

		if openErr := l.engine.Open(openCtx, name); openErr != nil {
			l.logger.Error("failed to reopen index", "index", name, "err", openErr)
			err = errors.Join(err, ProvisioningError{Op: "open", Index: name, Err: openErr})
		}
	}()

	if err := l.engine.PutSettings(ctx, name, settings.Body(false)); err != nil {
		return ProvisioningError{Op: "put_settings", Index: name, Err: err}
	}
	if err := l.engine.PutMapping(ctx, name, mapping); err != nil {
		return ProvisioningError{Op: "put_mapping", Index: name, Err: err}
	}

	l.logger.Info("index updated", "index", name)
	return nil
}

// Retune applies a settings only patch to a live index.
func (l *Lifecycle) Retune(ctx context.Context, name string, patch Settings) error {
	body := patch.Body(false)
	if len(body) == 0 {
		return nil
	}
	if err := l.engine.PutSettings(ctx, name, body); err != nil {
		return ProvisioningError{Op: "retune", Index: name, Err: err}
	}
	l.logger.Debug("index retuned", "index", name, "settings", body)
	return nil
}

// Optimize force merges the index. Missing indices are ignored.
func (l *Lifecycle) Optimize(ctx context.Context, name string) error {
	return l.ifExists(ctx, "optimize", name, l.engine.Forcemerge)
}

// Refresh makes recent writes to the index searchable. Missing indices are
// ignored.
func (l *Lifecycle) Refresh(ctx context.Context, name string) error {
	return l.ifExists(ctx, "refresh", name, l.engine.Refresh)
}

func (l *Lifecycle) ifExists(ctx context.Context, op, name string, fn func(context.Context, string) error) error {
	exists, err := l.engine.Exists(ctx, name)
	if err != nil {
		return fmt.Errorf("%s index %q: %w", op, name, err)
	}
	if !exists {
		l.logger.Debug("index does not exist, skipping", "op", op, "index", name)
		return nil
	}
	if err := fn(ctx, name); err != nil {
		return fmt.Errorf("%s index %q: %w", op, name, err)
	}
	return nil
}
