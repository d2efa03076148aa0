package elasticsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/elastic/go-elasticsearch/v7/esapi"
	"github.com/goto/catalogindex/core/index"
	"github.com/olivere/elastic/v7"
)

// AliasIndices lists the indices behind alias. A missing alias resolves to
// no index.
func (c *Client) AliasIndices(ctx context.Context, alias string) ([]string, error) {
	res, err := c.client.Indices.GetAlias(
		c.client.Indices.GetAlias.WithName(alias),
		c.client.Indices.GetAlias.WithContext(ctx),
	)
	if err != nil {
		return nil, elasticSearchError("get_alias", err)
	}
	defer drain(res)

	if res.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if res.IsError() {
		return nil, responseError("get_alias", res)
	}

	var response map[string]struct {
		Aliases map[string]json.RawMessage `json:"aliases"`
	}
	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("error decoding alias response: %w", err)
	}

	indices := make([]string, 0, len(response))
	for name, idx := range response {
		if _, ok := idx.Aliases[alias]; ok {
			indices = append(indices, name)
		}
	}
	sort.Strings(indices)
	return indices, nil
}

// UpdateAliases applies every action in a single request, which the engine
// executes atomically.
func (c *Client) UpdateAliases(ctx context.Context, actions []index.AliasAction) error {
	if len(actions) == 0 {
		return nil
	}

	sources := make([]interface{}, 0, len(actions))
	for _, a := range actions {
		src, err := aliasActionSource(a)
		if err != nil {
			return err
		}
		sources = append(sources, src)
	}

	body, err := encode(map[string]interface{}{"actions": sources})
	if err != nil {
		return fmt.Errorf("error serialising alias actions: %w", err)
	}

	return c.do("update_aliases", func() (*esapi.Response, error) {
		return c.client.Indices.UpdateAliases(
			body,
			c.client.Indices.UpdateAliases.WithTimeout(c.requestTimeout),
			c.client.Indices.UpdateAliases.WithContext(ctx),
		)
	}, nil)
}

func aliasActionSource(a index.AliasAction) (interface{}, error) {
	var action elastic.AliasAction
	switch a.Type {
	case index.AliasAdd:
		action = elastic.NewAliasAddAction(a.Alias).Index(a.Index)
	case index.AliasRemove:
		action = elastic.NewAliasRemoveAction(a.Alias).Index(a.Index)
	default:
		return nil, fmt.Errorf("unknown alias action %q", a.Type)
	}
	return action.Source()
}
