package postgres_test

import (
	"context"
	"testing"

	"github.com/goto/catalogindex/core/changelog"
	"github.com/goto/catalogindex/internal/store/postgres"
	"github.com/goto/catalogindex/internal/testutils"
	"github.com/goto/salt/log"
	"github.com/stretchr/testify/suite"
)

type ChangelogRepositoryTestSuite struct {
	suite.Suite
	ctx        context.Context
	client     *postgres.Client
	repository *postgres.ChangelogRepository
}

func (r *ChangelogRepositoryTestSuite) SetupSuite() {
	var err error
	r.client, err = testutils.NewTestPG(r.T(), log.NewNoop())
	if err != nil {
		r.T().Fatal(err)
	}

	r.ctx = context.TODO()
	r.repository, err = postgres.NewChangelogRepository(r.client)
	if err != nil {
		r.T().Fatal(err)
	}

	err = r.client.ExecQueries(r.ctx, []string{
		`CREATE TABLE category_product_position (
			category_id integer NOT NULL,
			product_id  integer NOT NULL,
			position    integer NOT NULL DEFAULT 0,
			PRIMARY KEY (category_id, product_id)
		)`,
	})
	if err != nil {
		r.T().Fatal(err)
	}
}

func (r *ChangelogRepositoryTestSuite) TestSubscribe() {
	sub := changelog.Subscription{
		ViewName:  "catalog_position",
		TableName: "category_product_position",
		KeyColumn: "product_id",
		GroupCode: changelog.DefaultGroupCode,
		Status:    changelog.StatusInvalid,
	}

	r.Run("should record writes on the subscribed table", func() {
		r.Require().NoError(r.repository.Subscribe(r.ctx, sub))

		err := r.client.ExecQueries(r.ctx, []string{
			`INSERT INTO category_product_position (category_id, product_id, position) VALUES (3, 42, 1), (3, 43, 2)`,
			`UPDATE category_product_position SET position = 5 WHERE product_id = 43`,
			`DELETE FROM category_product_position WHERE product_id = 42`,
		})
		r.Require().NoError(err)

		entries, err := r.repository.Changes(r.ctx, sub.ViewName, 0)
		r.NoError(err)
		r.Require().Len(entries, 4)
		var keys []string
		for _, e := range entries {
			keys = append(keys, e.EntityID)
		}
		r.Equal([]string{"42", "43", "43", "42"}, keys)

		later, err := r.repository.Changes(r.ctx, sub.ViewName, entries[1].VersionID)
		r.NoError(err)
		r.Len(later, 2)
	})

	r.Run("should be idempotent and keep a single trigger", func() {
		r.Require().NoError(r.repository.Subscribe(r.ctx, sub))

		before, err := r.repository.Changes(r.ctx, sub.ViewName, 0)
		r.Require().NoError(err)

		err = r.client.ExecQueries(r.ctx, []string{
			`INSERT INTO category_product_position (category_id, product_id) VALUES (4, 44)`,
		})
		r.Require().NoError(err)

		after, err := r.repository.Changes(r.ctx, sub.ViewName, 0)
		r.NoError(err)
		r.Len(after, len(before)+1)
	})

	r.Run("should list the subscription metadata", func() {
		subs, err := r.repository.List(r.ctx)
		r.NoError(err)
		r.Require().Len(subs, 1)
		r.Equal(sub.ViewName, subs[0].ViewName)
		r.Equal(sub.TableName, subs[0].TableName)
		r.Equal(changelog.StatusInvalid, subs[0].Status)
	})

	r.Run("should fail on missing table", func() {
		err := r.repository.Subscribe(r.ctx, changelog.Subscription{
			ViewName:  "missing",
			TableName: "no_such_table",
			KeyColumn: "id",
			GroupCode: changelog.DefaultGroupCode,
			Status:    changelog.StatusInvalid,
		})
		r.Error(err)

		_, err = r.repository.Changes(r.ctx, "missing", 0)
		r.ErrorAs(err, &changelog.NotFoundError{})
	})
}

func TestChangelogRepository(t *testing.T) {
	suite.Run(t, &ChangelogRepositoryTestSuite{})
}
