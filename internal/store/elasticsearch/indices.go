package elasticsearch

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/elastic/go-elasticsearch/v7/esapi"
	"github.com/goto/catalogindex/core/index"
)

// Exists checks for the existence of an index
func (c *Client) Exists(ctx context.Context, name string) (bool, error) {
	res, err := c.client.Indices.Exists(
		[]string{name},
		c.client.Indices.Exists.WithContext(ctx),
	)
	if err != nil {
		return false, elasticSearchError("exists", err)
	}
	defer drain(res)

	switch res.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, responseError("exists", res)
	}
}

func (c *Client) Create(ctx context.Context, req index.CreateRequest) error {
	body, err := encode(req)
	if err != nil {
		return fmt.Errorf("error serialising create request: %w", err)
	}

	return c.do("create", func() (*esapi.Response, error) {
		return c.client.Indices.Create(
			req.Index,
			c.client.Indices.Create.WithBody(body),
			c.client.Indices.Create.WithTimeout(c.requestTimeout),
			c.client.Indices.Create.WithContext(ctx),
		)
	}, nil)
}

func (c *Client) Close(ctx context.Context, name string) error {
	return c.do("close", func() (*esapi.Response, error) {
		return c.client.Indices.Close(
			[]string{name},
			c.client.Indices.Close.WithTimeout(c.requestTimeout),
			c.client.Indices.Close.WithContext(ctx),
		)
	}, nil)
}

func (c *Client) Open(ctx context.Context, name string) error {
	return c.do("open", func() (*esapi.Response, error) {
		return c.client.Indices.Open(
			[]string{name},
			c.client.Indices.Open.WithTimeout(c.requestTimeout),
			c.client.Indices.Open.WithWaitForActiveShards("1"),
			c.client.Indices.Open.WithContext(ctx),
		)
	}, nil)
}

func (c *Client) PutSettings(ctx context.Context, name string, settings map[string]interface{}) error {
	body, err := encode(map[string]interface{}{"index": settings})
	if err != nil {
		return fmt.Errorf("error serialising settings: %w", err)
	}

	return c.do("put_settings", func() (*esapi.Response, error) {
		return c.client.Indices.PutSettings(
			body,
			c.client.Indices.PutSettings.WithIndex(name),
			c.client.Indices.PutSettings.WithTimeout(c.requestTimeout),
			c.client.Indices.PutSettings.WithContext(ctx),
		)
	}, nil)
}

func (c *Client) PutMapping(ctx context.Context, name string, mapping index.Mapping) error {
	body, err := encode(mapping)
	if err != nil {
		return fmt.Errorf("error serialising mapping: %w", err)
	}

	return c.do("put_mapping", func() (*esapi.Response, error) {
		return c.client.Indices.PutMapping(
			body,
			c.client.Indices.PutMapping.WithIndex(name),
			c.client.Indices.PutMapping.WithTimeout(c.requestTimeout),
			c.client.Indices.PutMapping.WithContext(ctx),
		)
	}, nil)
}

// Forcemerge merges the index down to a single segment.
func (c *Client) Forcemerge(ctx context.Context, name string) error {
	return c.do("forcemerge", func() (*esapi.Response, error) {
		return c.client.Indices.Forcemerge(
			c.client.Indices.Forcemerge.WithIndex(name),
			c.client.Indices.Forcemerge.WithMaxNumSegments(1),
			c.client.Indices.Forcemerge.WithContext(ctx),
		)
	}, nil)
}

func (c *Client) Refresh(ctx context.Context, name string) error {
	return c.do("refresh", func() (*esapi.Response, error) {
		return c.client.Indices.Refresh(
			c.client.Indices.Refresh.WithIndex(name),
			c.client.Indices.Refresh.WithContext(ctx),
		)
	}, nil)
}

func (c *Client) Delete(ctx context.Context, name string) error {
	if name == "" || strings.ContainsAny(name, "*,") || name == "_all" {
		return fmt.Errorf("refusing to delete index %q", name)
	}

	return c.do("delete", func() (*esapi.Response, error) {
		return c.client.Indices.Delete(
			[]string{name},
			c.client.Indices.Delete.WithTimeout(c.requestTimeout),
			c.client.Indices.Delete.WithContext(ctx),
		)
	}, nil)
}
