package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/goto/catalogindex/core/changelog"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const changelogMetadataTable = "changelog_metadata"

var _ changelog.Repository = (*ChangelogRepository)(nil)

// ChangelogRepository records writes on subscribed tables into change-log
// tables through triggers.
type ChangelogRepository struct {
	client *Client
}

func NewChangelogRepository(c *Client) (*ChangelogRepository, error) {
	if c == nil {
		return nil, errNilPostgresClient
	}
	return &ChangelogRepository{client: c}, nil
}

// Subscribe creates the change-log table and the trigger feeding it, then
// stores the subscription metadata. Subscribing twice replaces the trigger.
func (r *ChangelogRepository) Subscribe(ctx context.Context, sub changelog.Subscription) error {
	if err := sub.Validate(); err != nil {
		return err
	}

	var (
		table   = pq.QuoteIdentifier(sub.TableName)
		clTable = pq.QuoteIdentifier(sub.ChangelogTable())
		trigger = pq.QuoteIdentifier(sub.TriggerName())
		key     = pq.QuoteIdentifier(sub.KeyColumn)
	)

	stmts := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			version_id bigserial PRIMARY KEY,
			entity_id  text NOT NULL,
			changed_at timestamptz NOT NULL DEFAULT now()
		)`, clTable),
		fmt.Sprintf(`CREATE OR REPLACE FUNCTION %[1]s() RETURNS trigger AS $$
		BEGIN
			IF TG_OP = 'DELETE' THEN
				INSERT INTO %[2]s (entity_id) VALUES (OLD.%[3]s::text);
				RETURN OLD;
			END IF;
			INSERT INTO %[2]s (entity_id) VALUES (NEW.%[3]s::text);
			RETURN NEW;
		END;
		$$ LANGUAGE plpgsql`, trigger, clTable, key),
		fmt.Sprintf(`DROP TRIGGER IF EXISTS %s ON %s`, trigger, table),
		fmt.Sprintf(`CREATE TRIGGER %[1]s AFTER INSERT OR UPDATE OR DELETE ON %[2]s
			FOR EACH ROW EXECUTE FUNCTION %[1]s()`, trigger, table),
	}

	upsert, args, err := sq.Insert(changelogMetadataTable).
		Columns("view_name", "table_name", "key_column", "group_code", "status", "version_id").
		Values(sub.ViewName, sub.TableName, sub.KeyColumn, sub.GroupCode, string(sub.Status), sub.VersionID).
		Suffix(`ON CONFLICT (view_name) DO UPDATE SET
			table_name = EXCLUDED.table_name,
			key_column = EXCLUDED.key_column,
			group_code = EXCLUDED.group_code,
			status = EXCLUDED.status,
			updated_at = now()`).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert changelog metadata query: %w", err)
	}

	return r.client.RunWithinTx(ctx, func(tx *sqlx.Tx) error {
		for _, stmt := range stmts {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("subscribe %s: %w", sub.TableName, checkPostgresError(err))
			}
		}
		if _, err := tx.ExecContext(ctx, upsert, args...); err != nil {
			return fmt.Errorf("store changelog metadata %s: %w", sub.ViewName, checkPostgresError(err))
		}
		return nil
	})
}

func (r *ChangelogRepository) List(ctx context.Context) ([]changelog.Subscription, error) {
	query, args, err := sq.Select("view_name", "table_name", "key_column", "group_code", "status", "version_id", "updated_at").
		From(changelogMetadataTable).
		OrderBy("view_name").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list changelog metadata query: %w", err)
	}

	var subs []changelog.Subscription
	if err := r.client.db.SelectContext(ctx, &subs, query, args...); err != nil {
		return nil, fmt.Errorf("list changelog metadata: %w", err)
	}
	return subs, nil
}

// Changes returns the entries of the view's change-log table recorded
// after version since, oldest first.
func (r *ChangelogRepository) Changes(ctx context.Context, viewName string, since int64) ([]changelog.Entry, error) {
	sub, err := r.get(ctx, viewName)
	if err != nil {
		return nil, err
	}

	query, args, err := sq.Select("version_id", "entity_id", "changed_at").
		From(pq.QuoteIdentifier(sub.ChangelogTable())).
		Where(sq.Gt{"version_id": since}).
		OrderBy("version_id").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build changes query: %w", err)
	}

	var entries []changelog.Entry
	if err := r.client.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, fmt.Errorf("list changes of %s: %w", viewName, err)
	}
	return entries, nil
}

func (r *ChangelogRepository) get(ctx context.Context, viewName string) (changelog.Subscription, error) {
	query, args, err := sq.Select("view_name", "table_name", "key_column", "group_code", "status", "version_id", "updated_at").
		From(changelogMetadataTable).
		Where(sq.Eq{"view_name": viewName}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return changelog.Subscription{}, fmt.Errorf("build get changelog metadata query: %w", err)
	}

	var sub changelog.Subscription
	if err := r.client.db.GetContext(ctx, &sub, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return changelog.Subscription{}, changelog.NotFoundError{ViewName: viewName}
		}
		return changelog.Subscription{}, fmt.Errorf("get changelog metadata %s: %w", viewName, err)
	}
	return sub, nil
}
