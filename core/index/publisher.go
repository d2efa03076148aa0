package index

import (
	"context"
	"fmt"

	"github.com/goto/salt/log"
)

// PublishReport describes the outcome of a publication.
type PublishReport struct {
	Index         string
	Alias         string
	Removed       []string
	CleanupErrors []StaleIndexCleanupError
}

// Publisher moves an alias onto a freshly built index and drops the
// indices it pointed to before.
type Publisher struct {
	engine    Engine
	lifecycle *Lifecycle
	serve     Settings
	hooks     []InstallHook
	logger    log.Logger
}

func NewPublisher(engine Engine, lifecycle *Lifecycle, serve Settings, logger log.Logger, hooks ...InstallHook) *Publisher {
	return &Publisher{
		engine:    engine,
		lifecycle: lifecycle,
		serve:     serve,
		hooks:     hooks,
		logger:    logger,
	}
}

// Publish compacts and retunes the new index, then repoints alias to it in
// a single alias update that also detaches every stale index. Stale indices
// are deleted afterwards; failing to delete one is reported, not returned.
func (p *Publisher) Publish(ctx context.Context, newIndex, alias string) (PublishReport, error) {
	report := PublishReport{Index: newIndex, Alias: alias}
	if newIndex == "" {
		return report, ErrEmptyIndexName
	}
	if alias == "" {
		return report, ErrEmptyAlias
	}

	if err := p.lifecycle.Optimize(ctx, newIndex); err != nil {
		return report, err
	}
	for _, h := range p.hooks {
		if err := h.BeforeInstall(ctx, newIndex); err != nil {
			return report, fmt.Errorf("before install %q: %w", newIndex, err)
		}
	}
	if err := p.lifecycle.Retune(ctx, newIndex, p.serve); err != nil {
		return report, err
	}

	current, err := p.engine.AliasIndices(ctx, alias)
	if err != nil {
		return report, fmt.Errorf("list indices of alias %q: %w", alias, err)
	}

	var stale []string
	actions := make([]AliasAction, 0, len(current)+1)
	for _, idx := range current {
		if idx == newIndex {
			continue
		}
		stale = append(stale, idx)
		actions = append(actions, AliasAction{Type: AliasRemove, Index: idx, Alias: alias})
	}
	actions = append(actions, AliasAction{Type: AliasAdd, Index: newIndex, Alias: alias})

	if err := p.engine.UpdateAliases(ctx, actions); err != nil {
		return report, fmt.Errorf("point alias %q to %q: %w", alias, newIndex, err)
	}
	p.logger.Info("alias published", "alias", alias, "index", newIndex)

	for _, idx := range stale {
		if err := p.engine.Delete(ctx, idx); err != nil {
			cleanupErr := StaleIndexCleanupError{Index: idx, Err: err}
			p.logger.Warn("failed to delete stale index", "index", idx, "alias", alias, "err", err)
			report.CleanupErrors = append(report.CleanupErrors, cleanupErr)
			continue
		}
		report.Removed = append(report.Removed, idx)
		p.logger.Info("stale index deleted", "index", idx)
	}

	return report, nil
}
