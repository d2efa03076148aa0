package postgres

import "context"

// AdvisoryLockCount counts the advisory locks granted across all sessions.
func (c *Client) AdvisoryLockCount(ctx context.Context) (int, error) {
	var n int
	err := c.db.GetContext(ctx, &n, `SELECT count(*) FROM pg_locks WHERE locktype = 'advisory' AND granted`)
	return n, err
}
