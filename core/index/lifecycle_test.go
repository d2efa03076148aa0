package index_test

import (
	"context"
	"errors"
	"testing"

	"github.com/goto/catalogindex/core/index"
	"github.com/goto/catalogindex/core/index/mocks"
	"github.com/goto/salt/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLifecycleCreateOrUpdate(t *testing.T) {
	ctx := context.Background()
	mappings := map[string]index.Mapping{
		"product": {"properties": map[string]interface{}{"sku": map[string]interface{}{"type": "keyword"}}},
	}
	settings := index.BuildPreset(index.PresetConfig{}).WithReplicas(0)
	settings.Shards = 2

	t.Run("should return error if index name is empty", func(t *testing.T) {
		err := index.NewLifecycle(mocks.NewEngine(t), log.NewNoop()).CreateOrUpdate(ctx, "", settings, mappings)
		assert.ErrorIs(t, err, index.ErrEmptyIndexName)
	})

	t.Run("should create the index with settings and merged mappings", func(t *testing.T) {
		engine := newMemoryEngine()

		err := index.NewLifecycle(engine, log.NewNoop()).CreateOrUpdate(ctx, "catalog-1", settings, mappings)
		require.NoError(t, err)

		created := engine.indices["catalog-1"]
		require.NotNil(t, created)
		assert.Equal(t, 2, created.settings["number_of_shards"])
		assert.Equal(t, "10s", created.settings["refresh_interval"])
		props := created.mapping["properties"].(map[string]interface{})
		assert.Contains(t, props, "sku")
		assert.Contains(t, props, index.TypeField)
	})

	t.Run("should pass the create request through hooks", func(t *testing.T) {
		engine := newMemoryEngine()
		hook := index.CreateHookFunc(func(ctx context.Context, req index.CreateRequest) (index.CreateRequest, error) {
			req.Settings["number_of_replicas"] = 5
			return req, nil
		})

		err := index.NewLifecycle(engine, log.NewNoop(), hook).CreateOrUpdate(ctx, "catalog-1", settings, mappings)
		require.NoError(t, err)

		assert.Equal(t, 5, engine.indices["catalog-1"].settings["number_of_replicas"])
	})

	t.Run("should not create the index if a hook fails", func(t *testing.T) {
		engine := mocks.NewEngine(t)
		hook := mocks.NewCreateHook(t)
		hookErr := errors.New("rejected")

		engine.EXPECT().Exists(ctx, "catalog-1").Return(false, nil)
		hook.EXPECT().BeforeCreate(ctx, mock.AnythingOfType("index.CreateRequest")).Return(index.CreateRequest{}, hookErr)

		err := index.NewLifecycle(engine, log.NewNoop(), hook).CreateOrUpdate(ctx, "catalog-1", settings, mappings)

		var provErr index.ProvisioningError
		require.ErrorAs(t, err, &provErr)
		assert.Equal(t, "before_create", provErr.Op)
		assert.ErrorIs(t, err, hookErr)
	})

	t.Run("should return provisioning error if existence check fails", func(t *testing.T) {
		engine := mocks.NewEngine(t)
		engine.EXPECT().Exists(ctx, "catalog-1").Return(false, errors.New("connection refused"))

		err := index.NewLifecycle(engine, log.NewNoop()).CreateOrUpdate(ctx, "catalog-1", settings, mappings)

		var provErr index.ProvisioningError
		require.ErrorAs(t, err, &provErr)
		assert.Equal(t, "exists", provErr.Op)
	})

	t.Run("should close the existing index before updating it and open it after", func(t *testing.T) {
		engine := newMemoryEngine()
		engine.addIndex("catalog-1")

		err := index.NewLifecycle(engine, log.NewNoop()).CreateOrUpdate(ctx, "catalog-1", settings, mappings)
		require.NoError(t, err)

		assert.Equal(t, []string{
			"close:catalog-1",
			"put_settings:catalog-1",
			"put_mapping:catalog-1",
			"open:catalog-1",
		}, engine.calls)
		assert.False(t, engine.indices["catalog-1"].closed)
		assert.NotContains(t, engine.indices["catalog-1"].settings, "number_of_shards")
	})

	t.Run("should reopen the index if updating settings fails", func(t *testing.T) {
		engine := mocks.NewEngine(t)
		settingsErr := errors.New("illegal argument")

		engine.EXPECT().Exists(ctx, "catalog-1").Return(true, nil)
		engine.EXPECT().Close(ctx, "catalog-1").Return(nil).Once()
		engine.EXPECT().PutSettings(ctx, "catalog-1", mock.Anything).Return(settingsErr)
		engine.EXPECT().Open(ctx, "catalog-1").Return(nil).Once()

		err := index.NewLifecycle(engine, log.NewNoop()).CreateOrUpdate(ctx, "catalog-1", settings, mappings)

		var provErr index.ProvisioningError
		require.ErrorAs(t, err, &provErr)
		assert.Equal(t, "put_settings", provErr.Op)
		engine.AssertNotCalled(t, "PutMapping", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should join the reopen failure into the returned error", func(t *testing.T) {
		engine := mocks.NewEngine(t)
		mappingErr := errors.New("mapper conflict")
		openErr := errors.New("open timed out")

		engine.EXPECT().Exists(ctx, "catalog-1").Return(true, nil)
		engine.EXPECT().Close(ctx, "catalog-1").Return(nil)
		engine.EXPECT().PutSettings(ctx, "catalog-1", mock.Anything).Return(nil)
		engine.EXPECT().PutMapping(ctx, "catalog-1", mock.Anything).Return(mappingErr)
		engine.EXPECT().Open(ctx, "catalog-1").Return(openErr)

		err := index.NewLifecycle(engine, log.NewNoop()).CreateOrUpdate(ctx, "catalog-1", settings, mappings)

		assert.ErrorIs(t, err, mappingErr)
		assert.ErrorIs(t, err, openErr)
	})

	t.Run("should not open the index if closing it fails", func(t *testing.T) {
		engine := mocks.NewEngine(t)

		engine.EXPECT().Exists(ctx, "catalog-1").Return(true, nil)
		engine.EXPECT().Close(ctx, "catalog-1").Return(errors.New("closed index limit"))

		err := index.NewLifecycle(engine, log.NewNoop()).CreateOrUpdate(ctx, "catalog-1", settings, mappings)

		var provErr index.ProvisioningError
		require.ErrorAs(t, err, &provErr)
		assert.Equal(t, "close", provErr.Op)
	})
}

func TestLifecycleRetune(t *testing.T) {
	ctx := context.Background()

	t.Run("should patch settings without closing the index", func(t *testing.T) {
		engine := newMemoryEngine()
		engine.addIndex("catalog-1")

		err := index.NewLifecycle(engine, log.NewNoop()).Retune(ctx, "catalog-1", index.ServePreset(index.PresetConfig{}))
		require.NoError(t, err)

		assert.Equal(t, []string{"put_settings:catalog-1"}, engine.calls)
		assert.Equal(t, "1s", engine.indices["catalog-1"].settings["refresh_interval"])
		assert.Equal(t, 3, engine.indices["catalog-1"].settings["merge.policy.segments_per_tier"])
	})

	t.Run("should skip an empty patch", func(t *testing.T) {
		engine := mocks.NewEngine(t)
		err := index.NewLifecycle(engine, log.NewNoop()).Retune(ctx, "catalog-1", index.Settings{})
		assert.NoError(t, err)
	})
}

func TestLifecycleOptimizeAndRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("should do nothing if index does not exist", func(t *testing.T) {
		engine := newMemoryEngine()
		lc := index.NewLifecycle(engine, log.NewNoop())

		assert.NoError(t, lc.Optimize(ctx, "missing"))
		assert.NoError(t, lc.Refresh(ctx, "missing"))
		assert.Empty(t, engine.calls)
	})

	t.Run("should force merge and refresh existing index", func(t *testing.T) {
		engine := newMemoryEngine()
		engine.addIndex("catalog-1")
		lc := index.NewLifecycle(engine, log.NewNoop())

		require.NoError(t, lc.Optimize(ctx, "catalog-1"))
		require.NoError(t, lc.Refresh(ctx, "catalog-1"))
		assert.Equal(t, []string{"forcemerge:catalog-1", "refresh:catalog-1"}, engine.calls)
	})

	t.Run("should return engine error", func(t *testing.T) {
		engine := mocks.NewEngine(t)
		engine.EXPECT().Exists(ctx, "catalog-1").Return(true, nil)
		engine.EXPECT().Forcemerge(ctx, "catalog-1").Return(errors.New("timeout"))

		err := index.NewLifecycle(engine, log.NewNoop()).Optimize(ctx, "catalog-1")
		assert.ErrorContains(t, err, "timeout")
	})
}
