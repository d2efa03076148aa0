package postgres

import "errors"

var (
	// ErrLocked is returned when another process holds the rebuild lock.
	ErrLocked = errors.New("rebuild lock is held by another process")

	errNilDBClient         = errors.New("db client is nil")
	errNilPostgresClient   = errors.New("postgres client is nil")
	errDuplicateKey        = errors.New("duplicate key")
	errCheckViolation      = errors.New("check constraint violation")
	errForeignKeyViolation = errors.New("foreign key violation")
)

// NotFoundError is returned when a record does not exist.
type NotFoundError struct {
	Entity string
	Key    string
}

func (err NotFoundError) Error() string {
	return "could not find " + err.Entity + " with key " + err.Key
}
