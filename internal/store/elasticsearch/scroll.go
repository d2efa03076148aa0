package elasticsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v7/esapi"
	"github.com/goto/catalogindex/core/index"
	"github.com/olivere/elastic/v7"
)

type searchHit struct {
	ID      string          `json:"_id"`
	Routing string          `json:"_routing"`
	Source  json.RawMessage `json:"_source"`
}

type searchResponse struct {
	ScrollID string `json:"_scroll_id"`
	Hits     struct {
		Total elastic.TotalHits `json:"total"`
		Hits  []searchHit       `json:"hits"`
	} `json:"hits"`
}

// used as a utility for generating request payload
// since github.com/olivere/elastic generates the
// <Q> in {"query": <Q>}
type searchQuery struct {
	Query interface{}   `json:"query"`
	Sort  []interface{} `json:"sort"`
}

// OpenScroll starts a scroll over the documents of docType and returns its
// first page.
func (c *Client) OpenScroll(ctx context.Context, name, docType string, size int, keepAlive string) (index.ScrollPage, error) {
	ttl, err := time.ParseDuration(keepAlive)
	if err != nil {
		return index.ScrollPage{}, fmt.Errorf("invalid scroll timeout %q: %w", keepAlive, err)
	}

	query, err := elastic.NewTermQuery(index.TypeField, docType).Source()
	if err != nil {
		return index.ScrollPage{}, fmt.Errorf("error building query: %w", err)
	}
	body, err := encode(searchQuery{
		Query: query,
		Sort:  []interface{}{"_doc"},
	})
	if err != nil {
		return index.ScrollPage{}, fmt.Errorf("error serialising query: %w", err)
	}

	var page index.ScrollPage
	err = c.do("search", func() (*esapi.Response, error) {
		return c.client.Search(
			c.client.Search.WithIndex(name),
			c.client.Search.WithBody(body),
			c.client.Search.WithSize(size),
			c.client.Search.WithScroll(ttl),
			c.client.Search.WithTrackTotalHits(true),
			c.client.Search.WithContext(ctx),
		)
	}, func(res *esapi.Response) error {
		page, err = decodePage(res)
		return err
	})
	return page, err
}

// Scroll fetches the next page of a scroll.
func (c *Client) Scroll(ctx context.Context, scrollID, keepAlive string) (index.ScrollPage, error) {
	ttl, err := time.ParseDuration(keepAlive)
	if err != nil {
		return index.ScrollPage{}, fmt.Errorf("invalid scroll timeout %q: %w", keepAlive, err)
	}

	var page index.ScrollPage
	err = c.do("scroll", func() (*esapi.Response, error) {
		return c.client.Scroll(
			c.client.Scroll.WithScrollID(scrollID),
			c.client.Scroll.WithScroll(ttl),
			c.client.Scroll.WithContext(ctx),
		)
	}, func(res *esapi.Response) error {
		page, err = decodePage(res)
		return err
	})
	return page, err
}

func (c *Client) ClearScroll(ctx context.Context, scrollID string) error {
	return c.do("clear_scroll", func() (*esapi.Response, error) {
		return c.client.ClearScroll(
			c.client.ClearScroll.WithBody(strings.NewReader(fmt.Sprintf(`{"scroll_id":%q}`, scrollID))),
			c.client.ClearScroll.WithContext(ctx),
		)
	}, nil)
}

func decodePage(res *esapi.Response) (index.ScrollPage, error) {
	var response searchResponse
	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		return index.ScrollPage{}, fmt.Errorf("error decoding search response: %w", err)
	}

	page := index.ScrollPage{
		ScrollID: response.ScrollID,
		Total:    response.Hits.Total.Value,
		Hits:     make([]index.Hit, 0, len(response.Hits.Hits)),
	}
	for _, h := range response.Hits.Hits {
		page.Hits = append(page.Hits, index.Hit{
			ID:      h.ID,
			Routing: h.Routing,
			Source:  h.Source,
		})
	}
	return page, nil
}
