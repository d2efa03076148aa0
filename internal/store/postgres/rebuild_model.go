package postgres

import (
	"database/sql"
	"time"

	"github.com/goto/catalogindex/core/index"
)

type RebuildModel struct {
	ID         string       `db:"id"`
	SessionID  string       `db:"session_id"`
	Alias      string       `db:"alias"`
	IndexName  string       `db:"index_name"`
	Status     string       `db:"status"`
	Error      string       `db:"error"`
	Copied     int          `db:"copied"`
	Indexed    int          `db:"indexed"`
	StartedAt  time.Time    `db:"started_at"`
	FinishedAt sql.NullTime `db:"finished_at"`
}

func newRebuildModel(rec index.RebuildRecord) RebuildModel {
	m := RebuildModel{
		ID:        rec.ID,
		SessionID: rec.SessionID,
		Alias:     rec.Alias,
		IndexName: rec.IndexName,
		Status:    rec.Status.String(),
		Error:     rec.Error,
		Copied:    rec.Copied,
		Indexed:   rec.Indexed,
		StartedAt: rec.StartedAt,
	}
	if rec.FinishedAt != nil {
		m.FinishedAt = sql.NullTime{Time: *rec.FinishedAt, Valid: true}
	}
	return m
}

func (m RebuildModel) toRecord() index.RebuildRecord {
	rec := index.RebuildRecord{
		ID:        m.ID,
		SessionID: m.SessionID,
		Alias:     m.Alias,
		IndexName: m.IndexName,
		Status:    index.RebuildStatus(m.Status),
		Error:     m.Error,
		Copied:    m.Copied,
		Indexed:   m.Indexed,
		StartedAt: m.StartedAt.UTC(),
	}
	if m.FinishedAt.Valid {
		t := m.FinishedAt.Time.UTC()
		rec.FinishedAt = &t
	}
	return rec
}

type RebuildModels []RebuildModel

func (ms RebuildModels) toRecords() []index.RebuildRecord {
	out := make([]index.RebuildRecord, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.toRecord())
	}
	return out
}
