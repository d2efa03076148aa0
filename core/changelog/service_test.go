package changelog_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goto/catalogindex/core/changelog"
	"github.com/goto/catalogindex/core/changelog/mocks"
	"github.com/goto/salt/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSubscriptionNames(t *testing.T) {
	sub := changelog.Subscription{ViewName: "catalog_position", TableName: "category_product_position", KeyColumn: "product_id"}

	assert.Equal(t, "category_product_position_cl", sub.ChangelogTable())
	assert.Equal(t, "trg_category_product_position_cl", sub.TriggerName())
	assert.NoError(t, sub.Validate())
}

func TestSubscriptionValidate(t *testing.T) {
	cases := []struct {
		Description string
		Sub         changelog.Subscription
		ErrContains string
	}{
		{
			Description: "missing view name",
			Sub:         changelog.Subscription{TableName: "t", KeyColumn: "id"},
			ErrContains: "view_name is required",
		},
		{
			Description: "quoted table name",
			Sub:         changelog.Subscription{ViewName: "v", TableName: `t"x`, KeyColumn: "id"},
			ErrContains: "not a valid identifier",
		},
		{
			Description: "table name leaves no room for suffix",
			Sub:         changelog.Subscription{ViewName: "v", TableName: strings.Repeat("a", 62), KeyColumn: "id"},
			ErrContains: changelog.ErrTableNameTooLong.Error(),
		},
	}
	for _, tc := range cases {
		t.Run(tc.Description, func(t *testing.T) {
			err := tc.Sub.Validate()

			var invalid changelog.InvalidError
			assert.ErrorAs(t, err, &invalid)
			assert.ErrorContains(t, err, tc.ErrContains)
		})
	}
}

func TestServiceSubscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("should default group code and mark subscription invalid", func(t *testing.T) {
		repo := mocks.NewRepository(t)
		repo.EXPECT().Subscribe(ctx, changelog.Subscription{
			ViewName:  "catalog_position",
			TableName: "category_product_position",
			KeyColumn: "product_id",
			GroupCode: changelog.DefaultGroupCode,
			Status:    changelog.StatusInvalid,
		}).Return(nil)

		svc := changelog.NewService(log.NewNoop(), repo)
		err := svc.Subscribe(ctx, changelog.Subscription{
			ViewName:  "catalog_position",
			TableName: "category_product_position",
			KeyColumn: "product_id",
			Status:    changelog.StatusIdle,
		})
		assert.NoError(t, err)
	})

	t.Run("should not reach repository when subscription is invalid", func(t *testing.T) {
		repo := mocks.NewRepository(t)

		svc := changelog.NewService(log.NewNoop(), repo)
		err := svc.Subscribe(ctx, changelog.Subscription{ViewName: "v", TableName: "bad name", KeyColumn: "id"})
		assert.Error(t, err)
	})

	t.Run("should wrap repository error", func(t *testing.T) {
		repoErr := errors.New("connection refused")
		repo := mocks.NewRepository(t)
		repo.EXPECT().Subscribe(ctx, mock.AnythingOfType("changelog.Subscription")).Return(repoErr)

		svc := changelog.NewService(log.NewNoop(), repo)
		err := svc.Subscribe(ctx, changelog.Subscription{ViewName: "v", TableName: "t", KeyColumn: "id"})
		assert.ErrorIs(t, err, repoErr)
	})
}

func TestServiceChanges(t *testing.T) {
	ctx := context.Background()

	t.Run("should reject empty view name", func(t *testing.T) {
		svc := changelog.NewService(log.NewNoop(), mocks.NewRepository(t))
		_, err := svc.Changes(ctx, "", 0)
		assert.Error(t, err)
	})

	t.Run("should return entries from repository", func(t *testing.T) {
		entries := []changelog.Entry{{VersionID: 3, EntityID: "42"}}
		repo := mocks.NewRepository(t)
		repo.EXPECT().Changes(ctx, "catalog_position", int64(2)).Return(entries, nil)

		svc := changelog.NewService(log.NewNoop(), repo)
		got, err := svc.Changes(ctx, "catalog_position", 2)
		assert.NoError(t, err)
		assert.Equal(t, entries, got)
	})
}
