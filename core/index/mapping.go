package index

import (
	"sort"

	"github.com/peterbourgon/mergemap"
)

// MergeMappings folds the per type mappings into the single mapping of an
// index, ordered by type name so that later types win on conflicts. The
// type field is always mapped as a keyword.
func MergeMappings(byType map[string]Mapping) Mapping {
	types := make([]string, 0, len(byType))
	for typ := range byType {
		types = append(types, typ)
	}
	sort.Strings(types)

	merged := map[string]interface{}{}
	for _, typ := range types {
		merged = mergemap.Merge(merged, deepCopy(byType[typ]))
	}

	merged = mergemap.Merge(merged, map[string]interface{}{
		"properties": map[string]interface{}{
			TypeField: map[string]interface{}{"type": "keyword"},
		},
	})
	return merged
}

func deepCopy(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		return deepCopy(val)
	case Mapping:
		return deepCopy(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = deepCopyValue(item)
		}
		return out
	default:
		return v
	}
}
