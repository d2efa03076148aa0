package index

import (
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

type RebuildStatus string

const (
	StatusPreparing RebuildStatus = "preparing"
	StatusPrepared  RebuildStatus = "prepared"
	StatusInstalled RebuildStatus = "installed"
	StatusFailed    RebuildStatus = "failed"
)

func (s RebuildStatus) String() string {
	return string(s)
}

// RebuildRecord is the persisted trace of one rebuild.
type RebuildRecord struct {
	ID         string        `json:"id" db:"id"`
	SessionID  string        `json:"session_id" db:"session_id"`
	Alias      string        `json:"alias" db:"alias"`
	IndexName  string        `json:"index_name" db:"index_name"`
	Status     RebuildStatus `json:"status" db:"status"`
	Error      string        `json:"error,omitempty" db:"error"`
	Copied     int           `json:"copied" db:"copied"`
	Indexed    int           `json:"indexed" db:"indexed"`
	StartedAt  time.Time     `json:"started_at" db:"started_at"`
	FinishedAt *time.Time    `json:"finished_at,omitempty" db:"finished_at"`
}

// Session tracks a single rebuild from Prepare to Install. A session is
// pending install once its index has been provisioned, and stops being
// pending when it is installed.
type Session struct {
	ID        string
	Alias     string
	Index     string
	StartedAt time.Time

	pending bool
	record  *RebuildRecord
}

func newSession(alias, name string, now time.Time) *Session {
	id := ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String()
	return &Session{
		ID:        id,
		Alias:     alias,
		Index:     name,
		StartedAt: now,
		record: &RebuildRecord{
			ID:        uuid.NewString(),
			SessionID: id,
			Alias:     alias,
			IndexName: name,
			Status:    StatusPreparing,
			StartedAt: now,
		},
	}
}

// Pending reports whether the session index waits to be installed.
func (s *Session) Pending() bool {
	return s != nil && s.pending
}

// Record returns a copy of the rebuild record of the session. Resumed
// sessions have none.
func (s *Session) Record() (RebuildRecord, bool) {
	if s == nil || s.record == nil {
		return RebuildRecord{}, false
	}
	return *s.record, true
}
