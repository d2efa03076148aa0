package index

import (
	"context"
	"fmt"

	"github.com/goto/salt/log"
)

// Copier moves documents between indices through bulk writes.
type Copier struct {
	engine    Engine
	bulkSize  int
	keepAlive string
	logger    log.Logger
}

type CopierOption func(*Copier)

func CopierWithBulkSize(n int) CopierOption {
	return func(c *Copier) {
		if n > 0 {
			c.bulkSize = n
		}
	}
}

func CopierWithScrollTimeout(keepAlive string) CopierOption {
	return func(c *Copier) {
		if keepAlive != "" {
			c.keepAlive = keepAlive
		}
	}
}

func NewCopier(engine Engine, logger log.Logger, opts ...CopierOption) *Copier {
	c := &Copier{
		engine:    engine,
		bulkSize:  DefaultBulkSize,
		keepAlive: DefaultScrollTimeout,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Copy streams every document of docType in source into destination, one
// bulk write per scroll page, and returns the number of documents written.
// A missing source index copies nothing.
//
// The loop advances by a full page per fetch and keeps going while that
// count does not exceed the reported total. When the total is a multiple of
// the page size this issues one more fetch, which comes back empty.
func (c *Copier) Copy(ctx context.Context, source, docType, destination string) (int, error) {
	exists, err := c.engine.Exists(ctx, source)
	if err != nil {
		return 0, fmt.Errorf("copy from %q: %w", source, err)
	}
	if !exists {
		c.logger.Debug("source index does not exist, nothing to copy", "source", source)
		return 0, nil
	}

	page, err := c.engine.OpenScroll(ctx, source, docType, c.bulkSize, c.keepAlive)
	if err != nil {
		return 0, fmt.Errorf("open scroll on %q: %w", source, err)
	}
	scrollID := page.ScrollID
	defer func() {
		if scrollID == "" {
			return
		}
		if err := c.engine.ClearScroll(ctx, scrollID); err != nil {
			c.logger.Warn("failed to clear scroll", "source", source, "err", err)
		}
	}()

	total := page.Total
	if scrollID == "" || total == 0 {
		return 0, nil
	}

	var (
		processed int64
		copied    int
	)
	for first := true; processed <= total; first = false {
		if !first {
			if page, err = c.engine.Scroll(ctx, scrollID, c.keepAlive); err != nil {
				return copied, fmt.Errorf("scroll %q: %w", source, err)
			}
			if page.ScrollID != "" {
				scrollID = page.ScrollID
			}
		}
		if len(page.Hits) == 0 {
			break
		}

		docs := make([]Document, 0, len(page.Hits))
		for _, hit := range page.Hits {
			docs = append(docs, Document{
				ID:     hit.ID,
				Type:   docType,
				Parent: hit.Routing,
				Source: hit.Source,
			})
		}
		if err := c.engine.Bulk(ctx, destination, docs); err != nil {
			return copied, fmt.Errorf("copy %q to %q: %w", source, destination, err)
		}

		copied += len(docs)
		processed += int64(c.bulkSize)
	}

	c.logger.Info("documents copied", "source", source, "destination", destination, "type", docType, "count", copied)
	return copied, nil
}

// AddDocuments writes docs into the index in batches of the bulk size.
func (c *Copier) AddDocuments(ctx context.Context, name string, docs []Document) error {
	for start := 0; start < len(docs); start += c.bulkSize {
		end := start + c.bulkSize
		if end > len(docs) {
			end = len(docs)
		}
		if err := c.engine.Bulk(ctx, name, docs[start:end]); err != nil {
			return fmt.Errorf("add documents to %q: %w", name, err)
		}
	}
	return nil
}
