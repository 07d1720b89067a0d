// Package store persists blog resources in PostgreSQL or SQLite through
// database/sql.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS categories (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    deleted_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS posts (
    id BIGSERIAL PRIMARY KEY,
    title TEXT NOT NULL,
    body TEXT NOT NULL,
    category_id BIGINT REFERENCES categories(id) ON DELETE SET NULL,
    deleted_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS tags (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    deleted_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS post_tags (
    post_id BIGINT NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
    tag_id BIGINT NOT NULL REFERENCES tags(id) ON DELETE CASCADE,
    PRIMARY KEY (post_id, tag_id)
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_name ON categories(name) WHERE deleted_at IS NULL;
CREATE UNIQUE INDEX IF NOT EXISTS idx_tags_name ON tags(name) WHERE deleted_at IS NULL;
CREATE INDEX IF NOT EXISTS idx_posts_category ON posts(category_id);
CREATE INDEX IF NOT EXISTS idx_post_tags_tag ON post_tags(tag_id);
`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS categories (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    deleted_at DATETIME
);

CREATE TABLE IF NOT EXISTS posts (
    id INTEGER PRIMARY KEY,
    title TEXT NOT NULL,
    body TEXT NOT NULL,
    category_id INTEGER REFERENCES categories(id) ON DELETE SET NULL,
    deleted_at DATETIME
);

CREATE TABLE IF NOT EXISTS tags (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    deleted_at DATETIME
);

CREATE TABLE IF NOT EXISTS post_tags (
    post_id INTEGER NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
    tag_id INTEGER NOT NULL REFERENCES tags(id) ON DELETE CASCADE,
    PRIMARY KEY (post_id, tag_id)
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_name ON categories(name) WHERE deleted_at IS NULL;
CREATE UNIQUE INDEX IF NOT EXISTS idx_tags_name ON tags(name) WHERE deleted_at IS NULL;
CREATE INDEX IF NOT EXISTS idx_posts_category ON posts(category_id);
CREATE INDEX IF NOT EXISTS idx_post_tags_tag ON post_tags(tag_id);
`

// DB is a database handle that knows its SQL dialect. Queries are written
// with ? placeholders and rebound for PostgreSQL.
type DB struct {
	sql    *sql.DB
	driver string
}

// Open connects to dsn with driver ("postgres" or "sqlite3") and verifies the
// connection.
func Open(ctx context.Context, driver, dsn string) (*DB, error) {
	switch driver {
	case DriverPostgres:
	case DriverSQLite:
		if !strings.Contains(dsn, "_foreign_keys") {
			sep := "?"
			if strings.Contains(dsn, "?") {
				sep = "&"
			}
			dsn += sep + "_foreign_keys=on"
		}
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	sqlDB, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return Wrap(sqlDB, driver), nil
}

// Wrap adopts an existing connection pool.
func Wrap(sqlDB *sql.DB, driver string) *DB {
	return &DB{sql: sqlDB, driver: driver}
}

// Migrate creates the schema when it does not exist yet.
func (db *DB) Migrate(ctx context.Context) error {
	schema := postgresSchema
	if db.driver == DriverSQLite {
		schema = sqliteSchema
	}
	if _, err := db.sql.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (db *DB) SQL() *sql.DB {
	return db.sql
}

func (db *DB) Close() error {
	return db.sql.Close()
}

func (db *DB) PingContext(ctx context.Context) error {
	return db.sql.PingContext(ctx)
}

func (db *DB) rebind(query string) string {
	if db.driver != DriverPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (db *DB) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", mapError(err))
	}
	return nil
}

func (db *DB) count(ctx context.Context, table string) (int64, error) {
	var n int64
	query := "SELECT COUNT(*) FROM " + table + " WHERE deleted_at IS NULL"
	if err := db.sql.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

// softDelete marks one available row deleted and reports whether it existed.
func (db *DB) softDelete(ctx context.Context, tx *sql.Tx, table string, id int64) (bool, error) {
	res, err := tx.ExecContext(ctx,
		db.rebind("UPDATE "+table+" SET deleted_at = CURRENT_TIMESTAMP WHERE id = ? AND deleted_at IS NULL"), id)
	if err != nil {
		return false, fmt.Errorf("delete from %s: %w", table, err)
	}
	return affected(res)
}

// applyLinks removes and adds post_tags rows. link orders each pair as
// (post_id, tag_id).
func (db *DB) applyLinks(ctx context.Context, tx *sql.Tx, remove, add []int64, link func(other int64) (int64, int64)) error {
	del := db.rebind("DELETE FROM post_tags WHERE post_id = ? AND tag_id = ?")
	for _, other := range remove {
		postID, tagID := link(other)
		if _, err := tx.ExecContext(ctx, del, postID, tagID); err != nil {
			return fmt.Errorf("unlink post %d tag %d: %w", postID, tagID, err)
		}
	}
	ins := db.rebind("INSERT INTO post_tags (post_id, tag_id) VALUES (?, ?)")
	for _, other := range add {
		postID, tagID := link(other)
		if _, err := tx.ExecContext(ctx, ins, postID, tagID); err != nil {
			return fmt.Errorf("link post %d tag %d: %w", postID, tagID, mapError(err))
		}
	}
	return nil
}

// pageLinks loads (owner, other) pairs from post_tags for the given owners.
func (db *DB) pageLinks(ctx context.Context, query string, owners []int64) (map[int64][]int64, error) {
	links := make(map[int64][]int64, len(owners))
	if len(owners) == 0 {
		return links, nil
	}
	args := make([]any, len(owners))
	for i, id := range owners {
		args[i] = id
	}
	query = strings.Replace(query, "(?)", "("+placeholders(len(owners))+")", 1)
	rows, err := db.sql.QueryContext(ctx, db.rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var owner, other int64
		if err := rows.Scan(&owner, &other); err != nil {
			return nil, err
		}
		links[owner] = append(links[owner], other)
	}
	return links, rows.Err()
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
