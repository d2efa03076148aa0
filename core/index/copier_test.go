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

func TestCopierCopy(t *testing.T) {
	ctx := context.Background()

	t.Run("should copy nothing if source index does not exist", func(t *testing.T) {
		engine := newMemoryEngine()
		engine.addIndex("catalog-new")

		copied, err := index.NewCopier(engine, log.NewNoop()).Copy(ctx, "catalog-old", "product", "catalog-new")
		require.NoError(t, err)

		assert.Zero(t, copied)
		assert.Zero(t, engine.scrollFetches)
		assert.Empty(t, engine.bulkSizes)
	})

	t.Run("should write one bulk per page", func(t *testing.T) {
		engine := newMemoryEngine()
		engine.addIndex("catalog-old", makeDocs("product", 2500)...)
		engine.addIndex("catalog-new")

		copied, err := index.NewCopier(engine, log.NewNoop()).Copy(ctx, "catalog-old", "product", "catalog-new")
		require.NoError(t, err)

		assert.Equal(t, 2500, copied)
		assert.Equal(t, []int{1000, 1000, 500}, engine.bulkSizes)
		assert.Len(t, engine.indices["catalog-new"].docs, 2500)
		assert.Empty(t, engine.scrolls, "scroll should be cleared")
	})

	t.Run("should fetch one extra empty page when total is a multiple of page size", func(t *testing.T) {
		engine := newMemoryEngine()
		engine.addIndex("catalog-old", makeDocs("product", 3000)...)
		engine.addIndex("catalog-new")

		copied, err := index.NewCopier(engine, log.NewNoop()).Copy(ctx, "catalog-old", "product", "catalog-new")
		require.NoError(t, err)

		assert.Equal(t, 3000, copied)
		assert.Equal(t, 4, engine.scrollFetches)
		assert.Equal(t, []int{1000, 1000, 1000}, engine.bulkSizes)
	})

	t.Run("should only copy documents of the requested type", func(t *testing.T) {
		engine := newMemoryEngine()
		docs := append(makeDocs("product", 30), makeDocs("category", 12)...)
		docs[0].Parent = "category-1"
		engine.addIndex("catalog-old", docs...)
		engine.addIndex("catalog-new")

		copied, err := index.NewCopier(engine, log.NewNoop(), index.CopierWithBulkSize(10)).
			Copy(ctx, "catalog-old", "product", "catalog-new")
		require.NoError(t, err)

		assert.Equal(t, 30, copied)
		assert.Equal(t, []int{10, 10, 10}, engine.bulkSizes)
		got := engine.indices["catalog-new"].docs
		assert.Equal(t, "category-1", got[0].Parent)
		for _, d := range got {
			assert.Equal(t, "product", d.Type)
		}
	})

	t.Run("should stop and clear scroll when bulk write fails", func(t *testing.T) {
		engine := mocks.NewEngine(t)
		bulkErr := index.BulkError{Index: "catalog-new", Failures: []index.BulkFailure{{ID: "1", Status: 400, Type: "mapper_parsing_exception"}}}

		engine.EXPECT().Exists(ctx, "catalog-old").Return(true, nil)
		engine.EXPECT().OpenScroll(ctx, "catalog-old", "product", 2, "1m").Return(index.ScrollPage{
			ScrollID: "abc",
			Total:    4,
			Hits:     []index.Hit{{ID: "1"}, {ID: "2"}},
		}, nil)
		engine.EXPECT().Bulk(ctx, "catalog-new", mock.AnythingOfType("[]index.Document")).Return(bulkErr)
		engine.EXPECT().ClearScroll(ctx, "abc").Return(nil)

		copier := index.NewCopier(engine, log.NewNoop(),
			index.CopierWithBulkSize(2),
			index.CopierWithScrollTimeout("1m"))
		copied, err := copier.Copy(ctx, "catalog-old", "product", "catalog-new")

		assert.Zero(t, copied)
		var target index.BulkError
		assert.True(t, errors.As(err, &target))
		assert.Len(t, target.Failures, 1)
	})
}

func TestCopierAddDocuments(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		Description string
		Docs        int
		BulkSize    int
		Expected    []int
	}{
		{Description: "should write nothing without documents", Docs: 0, BulkSize: 1000},
		{Description: "should write a partial batch", Docs: 10, BulkSize: 1000, Expected: []int{10}},
		{Description: "should split documents into bulk size batches", Docs: 2500, BulkSize: 1000, Expected: []int{1000, 1000, 500}},
		{Description: "should not write an empty trailing batch", Docs: 20, BulkSize: 10, Expected: []int{10, 10}},
	}
	for _, tc := range cases {
		t.Run(tc.Description, func(t *testing.T) {
			engine := newMemoryEngine()
			engine.addIndex("catalog-new")

			err := index.NewCopier(engine, log.NewNoop(), index.CopierWithBulkSize(tc.BulkSize)).
				AddDocuments(ctx, "catalog-new", makeDocs("product", tc.Docs))
			require.NoError(t, err)

			assert.Equal(t, tc.Expected, engine.bulkSizes)
			assert.Len(t, engine.indices["catalog-new"].docs, tc.Docs)
		})
	}
}
