package postgres

import (
	"context"
	"database/sql/driver"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Locker hands out session level advisory locks. A lock lives on a
// dedicated connection and is released with it.
type Locker struct {
	client *Client
}

func NewLocker(c *Client) (*Locker, error) {
	if c == nil {
		return nil, errNilPostgresClient
	}
	return &Locker{client: c}, nil
}

// Lock is a held advisory lock.
type Lock struct {
	conn *sqlx.Conn
	key  string
}

// TryAcquire takes the lock named key without waiting. ErrLocked is
// returned when another session holds it.
func (l *Locker) TryAcquire(ctx context.Context, key string) (*Lock, error) {
	conn, err := l.client.db.Connx(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection for lock %q: %w", key, err)
	}

	var acquired bool
	if err := conn.QueryRowxContext(ctx, `SELECT pg_try_advisory_lock(hashtext($1))`, key).Scan(&acquired); err != nil {
		conn.Close()
		return nil, fmt.Errorf("try advisory lock %q: %w", key, err)
	}
	if !acquired {
		conn.Close()
		return nil, fmt.Errorf("%w: %s", ErrLocked, key)
	}

	return &Lock{conn: conn, key: key}, nil
}

func (lk *Lock) Key() string {
	return lk.key
}

// Release unlocks and returns the connection to the pool. When the unlock
// fails the connection is discarded instead, which ends the session and
// with it the lock.
func (lk *Lock) Release(ctx context.Context) (err error) {
	if lk == nil || lk.conn == nil {
		return nil
	}
	conn := lk.conn
	lk.conn = nil
	defer func() {
		if err != nil {
			_ = conn.Raw(func(interface{}) error { return driver.ErrBadConn })
		}
		conn.Close()
	}()

	var released bool
	if err := conn.QueryRowxContext(ctx, `SELECT pg_advisory_unlock(hashtext($1))`, lk.key).Scan(&released); err != nil {
		return fmt.Errorf("advisory unlock %q: %w", lk.key, err)
	}
	if !released {
		return fmt.Errorf("advisory lock %q was not held", lk.key)
	}
	return nil
}
