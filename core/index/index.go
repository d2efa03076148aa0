package index

import (
	"encoding/json"
	"fmt"
)

// TypeField is the document field holding the document type. The engine
// allows one mapping per index, so types are told apart by this keyword.
const TypeField = "doc_type"

const (
	DefaultBulkSize      = 1000
	DefaultScrollTimeout = "5m"
)

// Mapping is an opaque mapping document for one document type,
// e.g. {"properties": {...}}.
type Mapping map[string]interface{}

// CreateRequest is the body sent to the engine when creating an index.
type CreateRequest struct {
	Index    string                 `json:"-"`
	Settings map[string]interface{} `json:"settings"`
	Mappings Mapping                `json:"mappings"`
}

// Document is a single entry queued for a bulk write.
type Document struct {
	ID     string
	Type   string
	Parent string
	Source json.RawMessage
}

// NewDocument builds a document for the given type, stamping the type field
// into the payload.
func NewDocument(id, docType string, data map[string]interface{}) (Document, error) {
	payload := make(map[string]interface{}, len(data)+1)
	for k, v := range data {
		payload[k] = v
	}
	payload[TypeField] = docType

	parent, _ := payload["_parent"].(string)
	delete(payload, "_parent")

	src, err := json.Marshal(payload)
	if err != nil {
		return Document{}, fmt.Errorf("marshal document %q: %w", id, err)
	}
	return Document{
		ID:     id,
		Type:   docType,
		Parent: parent,
		Source: src,
	}, nil
}

// Hit is a document returned by a scroll page.
type Hit struct {
	ID      string
	Routing string
	Source  json.RawMessage
}

// ScrollPage is one page of a scroll search.
type ScrollPage struct {
	ScrollID string
	Total    int64
	Hits     []Hit
}
