package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/goto/catalogindex/internal/store/postgres"
	"github.com/goto/catalogindex/internal/testutils"
	"github.com/goto/salt/log"
	"github.com/stretchr/testify/suite"
)

type LockerTestSuite struct {
	suite.Suite
	ctx    context.Context
	client *postgres.Client
	locker *postgres.Locker
}

func (r *LockerTestSuite) SetupSuite() {
	client, err := testutils.NewTestPG(r.T(), log.NewNoop())
	if err != nil {
		r.T().Fatal(err)
	}

	r.ctx = context.TODO()
	r.client = client
	r.locker, err = postgres.NewLocker(client)
	if err != nil {
		r.T().Fatal(err)
	}
}

func (r *LockerTestSuite) TestTryAcquire() {
	r.Run("should refuse a held lock until released", func() {
		lock, err := r.locker.TryAcquire(r.ctx, "rebuild:catalog")
		r.Require().NoError(err)
		r.Equal("rebuild:catalog", lock.Key())

		_, err = r.locker.TryAcquire(r.ctx, "rebuild:catalog")
		r.ErrorIs(err, postgres.ErrLocked)

		r.NoError(lock.Release(r.ctx))

		again, err := r.locker.TryAcquire(r.ctx, "rebuild:catalog")
		r.Require().NoError(err)
		r.NoError(again.Release(r.ctx))
	})

	r.Run("should not block other keys", func() {
		a, err := r.locker.TryAcquire(r.ctx, "rebuild:catalog")
		r.Require().NoError(err)
		defer a.Release(r.ctx)

		b, err := r.locker.TryAcquire(r.ctx, "rebuild:articles")
		r.Require().NoError(err)
		r.NoError(b.Release(r.ctx))
	})

	r.Run("should drop the session when unlock fails", func() {
		lock, err := r.locker.TryAcquire(r.ctx, "rebuild:canceled")
		r.Require().NoError(err)

		canceled, cancel := context.WithCancel(r.ctx)
		cancel()
		r.Error(lock.Release(canceled))

		r.Eventually(func() bool {
			n, err := r.client.AdvisoryLockCount(r.ctx)
			return err == nil && n == 0
		}, 5*time.Second, 50*time.Millisecond)

		again, err := r.locker.TryAcquire(r.ctx, "rebuild:canceled")
		r.Require().NoError(err)
		r.NoError(again.Release(r.ctx))
	})

	r.Run("should tolerate double release", func() {
		lock, err := r.locker.TryAcquire(r.ctx, "rebuild:twice")
		r.Require().NoError(err)
		r.NoError(lock.Release(r.ctx))
		r.NoError(lock.Release(r.ctx))
	})
}

func TestLocker(t *testing.T) {
	suite.Run(t, &LockerTestSuite{})
}
