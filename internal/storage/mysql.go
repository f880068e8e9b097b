package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql" // Import MySQL driver
)

const createMySQLTable = `CREATE TABLE IF NOT EXISTS infofill_kv (
	name       VARCHAR(191) NOT NULL PRIMARY KEY,
	value      LONGBLOB NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
)`

// MySQL keeps values in a single key-value table reached through database/sql.
type MySQL struct {
	db *sql.DB
}

// ConnectMySQL opens a connection pool for dsn, pings it and makes sure the
// table exists.
func ConnectMySQL(ctx context.Context, dsn string) (*MySQL, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	db.SetConnMaxLifetime(1 * time.Hour)
	db.SetMaxOpenConns(4)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	m, err := NewMySQL(ctx, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return m, nil
}

// NewMySQL wraps an open *sql.DB and creates the table if needed.
func NewMySQL(ctx context.Context, db *sql.DB) (*MySQL, error) {
	if _, err := db.ExecContext(ctx, createMySQLTable); err != nil {
		return nil, fmt.Errorf("failed to create key-value table: %w", err)
	}
	return &MySQL{db: db}, nil
}

// Get retrieves the value stored under key.
func (m *MySQL) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := m.db.QueryRowContext(ctx,
		`SELECT value FROM infofill_kv WHERE name = ?`,
		key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, nil
}

// Put upserts the value stored under key.
func (m *MySQL) Put(ctx context.Context, key string, value []byte) error {
	_, err := m.db.ExecContext(ctx,
		`INSERT INTO infofill_kv (name, value) VALUES (?, ?)
		 ON DUPLICATE KEY UPDATE value = VALUES(value)`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// Close closes the connection pool
func (m *MySQL) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}
