package index_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goto/catalogindex/core/index"
	"github.com/goto/catalogindex/core/index/mocks"
	"github.com/goto/catalogindex/pkg/statsd"
	"github.com/goto/salt/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.March, 12, 14, 30, 0, 0, time.UTC)

func newTestService(engine index.Engine, deps index.ServiceDeps) *index.Service {
	deps.Engine = engine
	deps.Logger = log.NewNoop()
	deps.Clock = func() time.Time { return fixedNow }
	if deps.Mappings == nil {
		deps.Mappings = map[string]index.Mapping{
			"product": {"properties": map[string]interface{}{"sku": map[string]interface{}{"type": "keyword"}}},
		}
	}

	cfg := index.Config{
		Alias:    "catalog",
		Shards:   1,
		Replicas: 1,
		BulkSize: 1000,
		Stores:   []index.Store{{Code: "fr", Locale: "fr_FR"}},
	}
	return index.NewService(cfg, deps, index.ServiceWithStatsDReporter(&statsd.Reporter{}))
}

func TestServicePrepare(t *testing.T) {
	ctx := context.Background()

	t.Run("should create the index with build settings and mark session pending", func(t *testing.T) {
		engine := newMemoryEngine()
		synonyms := mocks.NewSynonymSource(t)
		synonyms.EXPECT().List(mock.Anything).Return([]string{"tv, television"}, nil)

		svc := newTestService(engine, index.ServiceDeps{Synonyms: synonyms})
		sess, err := svc.Prepare(ctx)
		require.NoError(t, err)

		assert.Equal(t, "catalog-20240312-143000", sess.Index)
		assert.Equal(t, "catalog", sess.Alias)
		assert.NotEmpty(t, sess.ID)
		assert.True(t, sess.Pending())

		created := engine.indices[sess.Index]
		require.NotNil(t, created)
		assert.Equal(t, "10s", created.settings["refresh_interval"])
		assert.Equal(t, 1, created.settings["merge.scheduler.max_thread_count"])

		analysis, ok := created.settings["analysis"].(*index.Analysis)
		require.True(t, ok)
		assert.Contains(t, analysis.Analyzer, "analyzer_fr")
		assert.Contains(t, analysis.Filter, "synonym")
	})

	t.Run("should journal the rebuild", func(t *testing.T) {
		journal := mocks.NewJournal(t)
		journal.EXPECT().Create(mock.Anything, mock.MatchedBy(func(rec index.RebuildRecord) bool {
			return rec.Status == index.StatusPreparing && rec.IndexName == "catalog-20240312-143000"
		})).Return(nil)
		journal.EXPECT().UpdateStatus(mock.Anything, mock.MatchedBy(func(rec index.RebuildRecord) bool {
			return rec.Status == index.StatusPrepared
		})).Return(nil)

		svc := newTestService(newMemoryEngine(), index.ServiceDeps{Journal: journal})
		sess, err := svc.Prepare(ctx)
		require.NoError(t, err)

		rec, ok := sess.Record()
		require.True(t, ok)
		assert.Equal(t, sess.ID, rec.SessionID)
		assert.Nil(t, rec.FinishedAt)
	})

	t.Run("should record failure if index cannot be created", func(t *testing.T) {
		engine := mocks.NewEngine(t)
		journal := mocks.NewJournal(t)

		engine.EXPECT().Exists(mock.Anything, "catalog-20240312-143000").Return(false, nil)
		engine.EXPECT().Create(mock.Anything, mock.AnythingOfType("index.CreateRequest")).Return(errors.New("resource_already_exists_exception"))
		journal.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
		journal.EXPECT().UpdateStatus(mock.Anything, mock.MatchedBy(func(rec index.RebuildRecord) bool {
			return rec.Status == index.StatusFailed && rec.Error != "" && rec.FinishedAt != nil
		})).Return(nil)

		svc := newTestService(engine, index.ServiceDeps{Journal: journal})
		sess, err := svc.Prepare(ctx)

		assert.Nil(t, sess)
		var provErr index.ProvisioningError
		assert.ErrorAs(t, err, &provErr)
	})

	t.Run("should fail if synonyms cannot be listed", func(t *testing.T) {
		synonyms := mocks.NewSynonymSource(t)
		synonyms.EXPECT().List(mock.Anything).Return(nil, errors.New("db down"))

		svc := newTestService(mocks.NewEngine(t), index.ServiceDeps{Synonyms: synonyms})
		_, err := svc.Prepare(ctx)

		assert.ErrorContains(t, err, "db down")
	})
}

func TestServiceInstall(t *testing.T) {
	ctx := context.Background()

	t.Run("should return error on nil session", func(t *testing.T) {
		svc := newTestService(mocks.NewEngine(t), index.ServiceDeps{})
		_, err := svc.Install(ctx, nil)
		assert.ErrorIs(t, err, index.ErrNilSession)
	})

	t.Run("should not touch the engine if session is not pending", func(t *testing.T) {
		engine := newMemoryEngine()
		svc := newTestService(engine, index.ServiceDeps{})

		sess, err := svc.Prepare(ctx)
		require.NoError(t, err)
		_, err = svc.Install(ctx, sess)
		require.NoError(t, err)
		calls := len(engine.calls)

		_, err = svc.Install(ctx, sess)
		assert.ErrorIs(t, err, index.ErrNotPending)
		assert.Len(t, engine.calls, calls)
	})

	t.Run("should publish and clear pending flag", func(t *testing.T) {
		engine := newMemoryEngine()
		engine.addIndex("catalog-20240101-000000")
		engine.alias("catalog", "catalog-20240101-000000")
		hook := mocks.NewInstallHook(t)
		hook.EXPECT().BeforeInstall(mock.Anything, "catalog-20240312-143000").Return(nil)

		svc := newTestService(engine, index.ServiceDeps{InstallHooks: []index.InstallHook{hook}})
		sess, err := svc.Prepare(ctx)
		require.NoError(t, err)

		report, err := svc.Install(ctx, sess)
		require.NoError(t, err)

		assert.False(t, sess.Pending())
		assert.Equal(t, []string{"catalog-20240101-000000"}, report.Removed)
		assert.Equal(t, []string{sess.Index}, engine.aliasTargets("catalog"))
		assert.Equal(t, "1s", engine.indices[sess.Index].settings["refresh_interval"])

		rec, _ := sess.Record()
		assert.Equal(t, index.StatusInstalled, rec.Status)
		assert.NotNil(t, rec.FinishedAt)
	})

	t.Run("should keep session pending if publish fails", func(t *testing.T) {
		engine := newMemoryEngine()
		hook := index.InstallHookFunc(func(ctx context.Context, name string) error {
			return errors.New("smoke test failed")
		})

		svc := newTestService(engine, index.ServiceDeps{InstallHooks: []index.InstallHook{hook}})
		sess, err := svc.Prepare(ctx)
		require.NoError(t, err)

		_, err = svc.Install(ctx, sess)

		assert.ErrorContains(t, err, "smoke test failed")
		assert.True(t, sess.Pending())
		rec, _ := sess.Record()
		assert.Equal(t, index.StatusFailed, rec.Status)
	})
}

func TestServiceCopyFromAlias(t *testing.T) {
	ctx := context.Background()

	t.Run("should copy type from every index under the alias except the session index", func(t *testing.T) {
		engine := newMemoryEngine()
		engine.addIndex("catalog-a", makeDocs("review", 1500)...)
		engine.addIndex("catalog-b", append(makeDocs("review", 20), makeDocs("product", 5)...)...)
		engine.alias("catalog", "catalog-a", "catalog-b")

		svc := newTestService(engine, index.ServiceDeps{})
		sess, err := svc.Prepare(ctx)
		require.NoError(t, err)

		copied, err := svc.CopyFromAlias(ctx, sess, "review")
		require.NoError(t, err)

		assert.Equal(t, 1520, copied)
		assert.Len(t, engine.indices[sess.Index].docs, 1520)
		rec, _ := sess.Record()
		assert.Equal(t, 1520, rec.Copied)
	})

	t.Run("should return error on nil session", func(t *testing.T) {
		svc := newTestService(mocks.NewEngine(t), index.ServiceDeps{})
		_, err := svc.CopyFromAlias(ctx, nil, "review")
		assert.ErrorIs(t, err, index.ErrNilSession)
	})
}

func TestServiceRebuild(t *testing.T) {
	ctx := context.Background()

	t.Run("should prepare, copy, index and install", func(t *testing.T) {
		engine := newMemoryEngine()
		engine.addIndex("catalog-old", append(makeDocs("review", 42), makeDocs("product", 7)...)...)
		engine.alias("catalog", "catalog-old")

		svc := newTestService(engine, index.ServiceDeps{})
		result, err := svc.Rebuild(ctx, index.RebuildRequest{
			CopyTypes: []string{"review"},
			Documents: makeDocs("product", 2500),
		})
		require.NoError(t, err)

		assert.Equal(t, 42, result.Copied)
		assert.Equal(t, 2500, result.Indexed)
		assert.Equal(t, []string{"catalog-old"}, result.Report.Removed)
		assert.Equal(t, []string{"catalog-20240312-143000"}, engine.aliasTargets("catalog"))
		assert.Len(t, engine.indices["catalog-20240312-143000"].docs, 2542)
		assert.NotContains(t, engine.indices, "catalog-old")
	})

	t.Run("should leave session pending when install is skipped", func(t *testing.T) {
		engine := newMemoryEngine()

		svc := newTestService(engine, index.ServiceDeps{})
		result, err := svc.Rebuild(ctx, index.RebuildRequest{
			Documents:   makeDocs("product", 3),
			SkipInstall: true,
		})
		require.NoError(t, err)

		assert.True(t, result.Session.Pending())
		assert.Empty(t, engine.aliasTargets("catalog"))
		assert.Contains(t, engine.calls, "refresh:catalog-20240312-143000")
	})
}

func TestServiceResumeSession(t *testing.T) {
	ctx := context.Background()

	t.Run("should resume an existing index as pending", func(t *testing.T) {
		engine := newMemoryEngine()
		engine.addIndex("catalog-20240101-000000")

		svc := newTestService(engine, index.ServiceDeps{})
		sess, err := svc.ResumeSession(ctx, "catalog-20240101-000000")
		require.NoError(t, err)

		assert.True(t, sess.Pending())
		_, ok := sess.Record()
		assert.False(t, ok)
	})

	t.Run("should return error if index does not exist", func(t *testing.T) {
		svc := newTestService(newMemoryEngine(), index.ServiceDeps{})
		_, err := svc.ResumeSession(ctx, "catalog-missing")
		assert.Error(t, err)
	})
}
