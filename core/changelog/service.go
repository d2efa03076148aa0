package changelog

import (
	"context"
	"fmt"

	"github.com/goto/salt/log"
)

func NewService(logger log.Logger, repo Repository) *Service {
	return &Service{
		logger: logger,
		repo:   repo,
	}
}

type Service struct {
	logger log.Logger
	repo   Repository
}

// Subscribe registers the subscription. A new subscription starts
// invalid so that the first indexer run does a full rebuild.
func (s *Service) Subscribe(ctx context.Context, sub Subscription) error {
	if sub.GroupCode == "" {
		sub.GroupCode = DefaultGroupCode
	}
	sub.Status = StatusInvalid
	if err := sub.Validate(); err != nil {
		return err
	}

	if err := s.repo.Subscribe(ctx, sub); err != nil {
		return fmt.Errorf("subscribe %s to %s: %w", sub.ViewName, sub.TableName, err)
	}
	s.logger.Info("change-log subscription created",
		"view", sub.ViewName, "table", sub.TableName, "changelog_table", sub.ChangelogTable())
	return nil
}

func (s *Service) List(ctx context.Context) ([]Subscription, error) {
	return s.repo.List(ctx)
}

func (s *Service) Changes(ctx context.Context, viewName string, since int64) ([]Entry, error) {
	if viewName == "" {
		return nil, InvalidError{Err: fmt.Errorf("view name is empty")}
	}
	return s.repo.Changes(ctx, viewName, since)
}
