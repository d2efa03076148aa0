package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/goto/catalogindex/core/index"
)

const rebuildsTable = "rebuilds"

var _ index.Journal = (*RebuildRepository)(nil)

// RebuildFilter narrows the rebuild history.
type RebuildFilter struct {
	Alias  string
	Status string
	Limit  int
}

// RebuildRepository persists the history of index rebuilds.
type RebuildRepository struct {
	client *Client
}

func NewRebuildRepository(c *Client) (*RebuildRepository, error) {
	if c == nil {
		return nil, errNilPostgresClient
	}
	return &RebuildRepository{client: c}, nil
}

func (r *RebuildRepository) Create(ctx context.Context, rec index.RebuildRecord) error {
	m := newRebuildModel(rec)
	query, args, err := sq.Insert(rebuildsTable).
		Columns("id", "session_id", "alias", "index_name", "status", "error", "copied", "indexed", "started_at", "finished_at").
		Values(m.ID, m.SessionID, m.Alias, m.IndexName, m.Status, m.Error, m.Copied, m.Indexed, m.StartedAt, m.FinishedAt).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert rebuild query: %w", err)
	}

	if _, err := r.client.db.ExecContext(ctx, query, args...); err != nil {
		err = checkPostgresError(err)
		if errors.Is(err, errDuplicateKey) {
			return fmt.Errorf("rebuild %s already recorded: %w", rec.ID, err)
		}
		return fmt.Errorf("insert rebuild %s: %w", rec.ID, err)
	}
	return nil
}

// UpdateStatus stores the status, counters and outcome of the rebuild.
func (r *RebuildRepository) UpdateStatus(ctx context.Context, rec index.RebuildRecord) error {
	m := newRebuildModel(rec)
	query, args, err := sq.Update(rebuildsTable).
		Set("status", m.Status).
		Set("error", m.Error).
		Set("copied", m.Copied).
		Set("indexed", m.Indexed).
		Set("finished_at", m.FinishedAt).
		Where(sq.Eq{"id": m.ID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update rebuild query: %w", err)
	}

	res, err := r.client.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update rebuild %s: %w", rec.ID, checkPostgresError(err))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update rebuild %s: %w", rec.ID, err)
	}
	if affected == 0 {
		return NotFoundError{Entity: "rebuild", Key: rec.ID}
	}
	return nil
}

// GetBySession returns the rebuild recorded for a session.
func (r *RebuildRepository) GetBySession(ctx context.Context, sessionID string) (index.RebuildRecord, error) {
	query, args, err := r.selectBuilder().
		Where(sq.Eq{"session_id": sessionID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return index.RebuildRecord{}, fmt.Errorf("build get rebuild query: %w", err)
	}

	var m RebuildModel
	if err := r.client.db.GetContext(ctx, &m, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return index.RebuildRecord{}, NotFoundError{Entity: "rebuild", Key: sessionID}
		}
		return index.RebuildRecord{}, fmt.Errorf("get rebuild for session %s: %w", sessionID, err)
	}
	return m.toRecord(), nil
}

// List returns the most recent rebuilds first.
func (r *RebuildRepository) List(ctx context.Context, flt RebuildFilter) ([]index.RebuildRecord, error) {
	limit := flt.Limit
	if limit <= 0 {
		limit = DefaultMaxResultSize
	}

	builder := r.selectBuilder().
		OrderBy("started_at DESC", "id").
		Limit(uint64(limit))
	if flt.Alias != "" {
		builder = builder.Where(sq.Eq{"alias": flt.Alias})
	}
	if flt.Status != "" {
		builder = builder.Where(sq.Eq{"status": flt.Status})
	}

	query, args, err := builder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list rebuilds query: %w", err)
	}

	var ms RebuildModels
	if err := r.client.db.SelectContext(ctx, &ms, query, args...); err != nil {
		return nil, fmt.Errorf("list rebuilds: %w", err)
	}
	return ms.toRecords(), nil
}

func (r *RebuildRepository) selectBuilder() sq.SelectBuilder {
	return sq.Select("id", "session_id", "alias", "index_name", "status", "error", "copied", "indexed", "started_at", "finished_at").
		From(rebuildsTable)
}
