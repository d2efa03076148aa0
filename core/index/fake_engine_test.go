package index_test

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/goto/catalogindex/core/index"
)

// memoryEngine is an in-memory index.Engine. Scrolls are served in pages
// of the requested size.
type memoryEngine struct {
	indices map[string]*memoryIndex
	aliases map[string]map[string]bool
	scrolls map[string]*memoryScroll

	scrollFetches int
	bulkSizes     []int
	calls         []string
	nextScroll    int
}

type memoryIndex struct {
	settings map[string]interface{}
	mapping  index.Mapping
	docs     []index.Document
	closed   bool
}

type memoryScroll struct {
	hits []index.Hit
	size int
	pos  int
}

func newMemoryEngine() *memoryEngine {
	return &memoryEngine{
		indices: map[string]*memoryIndex{},
		aliases: map[string]map[string]bool{},
		scrolls: map[string]*memoryScroll{},
	}
}

func (e *memoryEngine) record(op, name string) {
	e.calls = append(e.calls, op+":"+name)
}

func (e *memoryEngine) addIndex(name string, docs ...index.Document) {
	e.indices[name] = &memoryIndex{docs: docs, settings: map[string]interface{}{}}
}

func (e *memoryEngine) alias(alias string, indices ...string) {
	e.aliases[alias] = map[string]bool{}
	for _, idx := range indices {
		e.aliases[alias][idx] = true
	}
}

func (e *memoryEngine) aliasTargets(alias string) []string {
	var names []string
	for idx := range e.aliases[alias] {
		names = append(names, idx)
	}
	sort.Strings(names)
	return names
}

func (e *memoryEngine) Exists(_ context.Context, name string) (bool, error) {
	_, ok := e.indices[name]
	return ok, nil
}

func (e *memoryEngine) Create(_ context.Context, req index.CreateRequest) error {
	e.record("create", req.Index)
	if _, ok := e.indices[req.Index]; ok {
		return fmt.Errorf("index %s already exists", req.Index)
	}
	e.indices[req.Index] = &memoryIndex{settings: req.Settings, mapping: req.Mappings}
	return nil
}

func (e *memoryEngine) Close(_ context.Context, name string) error {
	e.record("close", name)
	e.indices[name].closed = true
	return nil
}

func (e *memoryEngine) Open(_ context.Context, name string) error {
	e.record("open", name)
	e.indices[name].closed = false
	return nil
}

func (e *memoryEngine) PutSettings(_ context.Context, name string, settings map[string]interface{}) error {
	e.record("put_settings", name)
	idx, ok := e.indices[name]
	if !ok {
		return fmt.Errorf("no such index %s", name)
	}
	for k, v := range settings {
		idx.settings[k] = v
	}
	return nil
}

func (e *memoryEngine) PutMapping(_ context.Context, name string, mapping index.Mapping) error {
	e.record("put_mapping", name)
	e.indices[name].mapping = mapping
	return nil
}

func (e *memoryEngine) Forcemerge(_ context.Context, name string) error {
	e.record("forcemerge", name)
	return nil
}

func (e *memoryEngine) Refresh(_ context.Context, name string) error {
	e.record("refresh", name)
	return nil
}

func (e *memoryEngine) Delete(_ context.Context, name string) error {
	e.record("delete", name)
	delete(e.indices, name)
	for _, targets := range e.aliases {
		delete(targets, name)
	}
	return nil
}

func (e *memoryEngine) AliasIndices(_ context.Context, alias string) ([]string, error) {
	return e.aliasTargets(alias), nil
}

func (e *memoryEngine) UpdateAliases(_ context.Context, actions []index.AliasAction) error {
	e.record("update_aliases", strconv.Itoa(len(actions)))
	for _, a := range actions {
		if _, ok := e.aliases[a.Alias]; !ok {
			e.aliases[a.Alias] = map[string]bool{}
		}
		switch a.Type {
		case index.AliasAdd:
			e.aliases[a.Alias][a.Index] = true
		case index.AliasRemove:
			delete(e.aliases[a.Alias], a.Index)
		}
	}
	return nil
}

func (e *memoryEngine) Bulk(_ context.Context, name string, docs []index.Document) error {
	e.bulkSizes = append(e.bulkSizes, len(docs))
	idx, ok := e.indices[name]
	if !ok {
		return fmt.Errorf("no such index %s", name)
	}
	idx.docs = append(idx.docs, docs...)
	return nil
}

func (e *memoryEngine) OpenScroll(_ context.Context, name, docType string, size int, _ string) (index.ScrollPage, error) {
	idx, ok := e.indices[name]
	if !ok {
		return index.ScrollPage{}, fmt.Errorf("no such index %s", name)
	}

	var hits []index.Hit
	for _, d := range idx.docs {
		if d.Type != docType {
			continue
		}
		hits = append(hits, index.Hit{ID: d.ID, Routing: d.Parent, Source: d.Source})
	}

	e.nextScroll++
	id := "scroll-" + strconv.Itoa(e.nextScroll)
	e.scrolls[id] = &memoryScroll{hits: hits, size: size}

	page := e.page(id)
	page.Total = int64(len(hits))
	return page, nil
}

func (e *memoryEngine) Scroll(_ context.Context, scrollID, _ string) (index.ScrollPage, error) {
	if _, ok := e.scrolls[scrollID]; !ok {
		return index.ScrollPage{}, fmt.Errorf("no such scroll %s", scrollID)
	}
	return e.page(scrollID), nil
}

func (e *memoryEngine) page(scrollID string) index.ScrollPage {
	e.scrollFetches++
	s := e.scrolls[scrollID]
	end := s.pos + s.size
	if end > len(s.hits) {
		end = len(s.hits)
	}
	hits := s.hits[s.pos:end]
	s.pos = end
	return index.ScrollPage{ScrollID: scrollID, Total: int64(len(s.hits)), Hits: hits}
}

func (e *memoryEngine) ClearScroll(_ context.Context, scrollID string) error {
	delete(e.scrolls, scrollID)
	return nil
}

func makeDocs(docType string, n int) []index.Document {
	docs := make([]index.Document, 0, n)
	for i := 0; i < n; i++ {
		docs = append(docs, index.Document{
			ID:     docType + "-" + strconv.Itoa(i),
			Type:   docType,
			Source: []byte(`{"doc_type":"` + docType + `"}`),
		})
	}
	return docs
}
