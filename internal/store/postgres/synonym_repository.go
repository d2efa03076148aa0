package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/goto/catalogindex/core/index"
)

const synonymsTable = "search_synonyms"

var _ index.SynonymSource = (*SynonymRepository)(nil)

// SynonymRepository reads Solr formatted synonym rules, such as
// "tv, television" or "i-pod => ipod". When store codes are given only
// rules of those stores and global rules are returned.
type SynonymRepository struct {
	client     *Client
	storeCodes []string
}

func NewSynonymRepository(c *Client, storeCodes ...string) (*SynonymRepository, error) {
	if c == nil {
		return nil, errNilPostgresClient
	}
	return &SynonymRepository{client: c, storeCodes: storeCodes}, nil
}

func (r *SynonymRepository) List(ctx context.Context) ([]string, error) {
	builder := sq.Select("terms").From(synonymsTable).OrderBy("id")
	if len(r.storeCodes) > 0 {
		builder = builder.Where(sq.Eq{"store_code": append([]string{""}, r.storeCodes...)})
	}
	query, args, err := builder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list synonyms query: %w", err)
	}

	var terms []string
	if err := r.client.db.SelectContext(ctx, &terms, query, args...); err != nil {
		return nil, fmt.Errorf("list synonyms: %w", err)
	}
	return terms, nil
}

// Create stores a rule and returns its id. An empty store code makes the
// rule global.
func (r *SynonymRepository) Create(ctx context.Context, storeCode, terms string) (int, error) {
	query, args, err := sq.Insert(synonymsTable).
		Columns("store_code", "terms").
		Values(storeCode, terms).
		Suffix("RETURNING id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert synonym query: %w", err)
	}

	var id int
	if err := r.client.db.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		err = checkPostgresError(err)
		if errors.Is(err, errCheckViolation) {
			return 0, fmt.Errorf("synonym terms are empty: %w", err)
		}
		return 0, fmt.Errorf("insert synonym: %w", err)
	}
	return id, nil
}
