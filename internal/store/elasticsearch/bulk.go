package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v7/esapi"
	"github.com/goto/catalogindex/core/index"
)

type bulkResponse struct {
	Errors bool                                `json:"errors"`
	Items  []map[string]bulkResponseItemResult `json:"items"`
}

type bulkResponseItemResult struct {
	ID     string `json:"_id"`
	Status int    `json:"status"`
	Error  struct {
		Type   string `json:"type"`
		Reason string `json:"reason"`
	} `json:"error"`
}

// Bulk indexes docs into the index in a single request. Items rejected by
// the engine are returned as an index.BulkError.
func (c *Client) Bulk(ctx context.Context, name string, docs []index.Document) error {
	if len(docs) == 0 {
		return nil
	}

	body, err := bulkBody(name, docs)
	if err != nil {
		return err
	}

	return c.do("bulk", func() (*esapi.Response, error) {
		return c.client.Bulk(
			body,
			c.client.Bulk.WithTimeout(c.requestTimeout),
			c.client.Bulk.WithContext(ctx),
		)
	}, func(res *esapi.Response) error {
		var response bulkResponse
		if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
			return fmt.Errorf("error decoding bulk response: %w", err)
		}
		if !response.Errors {
			return nil
		}

		bulkErr := index.BulkError{Index: name}
		for _, item := range response.Items {
			for _, result := range item {
				if result.Status < 300 {
					continue
				}
				bulkErr.Failures = append(bulkErr.Failures, index.BulkFailure{
					ID:     result.ID,
					Status: result.Status,
					Type:   result.Error.Type,
					Reason: result.Error.Reason,
				})
			}
		}
		if len(bulkErr.Failures) == 0 {
			return nil
		}
		return bulkErr
	})
}

// bulkBody writes the newline delimited action/source pairs of docs.
func bulkBody(name string, docs []index.Document) (*bytes.Buffer, error) {
	payload := bytes.NewBuffer(nil)
	enc := json.NewEncoder(payload)
	for _, doc := range docs {
		meta := map[string]interface{}{
			"_index": name,
			"_id":    doc.ID,
		}
		if doc.Parent != "" {
			meta["routing"] = doc.Parent
		}
		if err := enc.Encode(map[string]interface{}{"index": meta}); err != nil {
			return nil, fmt.Errorf("error serialising bulk action: %w", err)
		}

		src := doc.Source
		if len(src) == 0 {
			src = json.RawMessage(`{}`)
		}
		if err := enc.Encode(src); err != nil {
			return nil, fmt.Errorf("error serialising document %q: %w", doc.ID, err)
		}
	}
	return payload, nil
}
