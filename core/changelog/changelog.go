package changelog

//go:generate mockery --name=Repository -r --case underscore --with-expecter --structname Repository --filename repository.go --output=./mocks

import (
	"context"
	"time"

	"github.com/goto/catalogindex/core/validator"
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusWorking Status = "working"
	StatusInvalid Status = "invalid"
)

const (
	DefaultGroupCode = "indexer"
	tableSuffix      = "_cl"
)

// Subscription asks for every write to TableName to be recorded in a
// change-log table, keyed by KeyColumn, and tracked under ViewName.
type Subscription struct {
	ViewName  string    `json:"view_name" db:"view_name" validate:"required,identifier"`
	TableName string    `json:"table_name" db:"table_name" validate:"required,identifier"`
	KeyColumn string    `json:"key_column" db:"key_column" validate:"required,identifier"`
	GroupCode string    `json:"group_code" db:"group_code"`
	Status    Status    `json:"status" db:"status"`
	VersionID int64     `json:"version_id" db:"version_id"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Entry is one recorded change of a key.
type Entry struct {
	VersionID int64     `json:"version_id" db:"version_id"`
	EntityID  string    `json:"entity_id" db:"entity_id"`
	ChangedAt time.Time `json:"changed_at" db:"changed_at"`
}

func (s Subscription) Validate() error {
	if err := validator.ValidateStruct(s); err != nil {
		return InvalidError{ViewName: s.ViewName, Err: err}
	}
	if len(s.TableName)+len(tableSuffix) > 63 {
		return InvalidError{ViewName: s.ViewName, Err: ErrTableNameTooLong}
	}
	return nil
}

// ChangelogTable is the name of the table holding changed keys.
func (s Subscription) ChangelogTable() string {
	return s.TableName + tableSuffix
}

// TriggerName is the name of the trigger and trigger function recording
// changes of the subscribed table.
func (s Subscription) TriggerName() string {
	return "trg_" + s.ChangelogTable()
}

type Repository interface {
	Subscribe(ctx context.Context, sub Subscription) error
	List(ctx context.Context) ([]Subscription, error)
	Changes(ctx context.Context, viewName string, since int64) ([]Entry, error)
}
