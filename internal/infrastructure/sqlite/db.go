// Package sqlite provides SQLite-backed persistence for finished runs.
package sqlite

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/Deetschoe/monkeycmd/internal/game"
	"github.com/Deetschoe/monkeycmd/internal/log"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// DB owns the SQLite connection and hands out repositories bound to it.
type DB struct {
	conn *sql.DB
	runs *runRepository
}

// NewDB opens (creating if necessary) the score database at path and
// runs pending migrations. The parent directory is created with 0700
// permissions. An existing database file is copied to path.bak before
// migrations run, so a failed migration never destroys the only copy.
func NewDB(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	if err := backupExisting(path); err != nil {
		return nil, fmt.Errorf("failed to back up database: %w", err)
	}

	dsn := "file:" + path +
		"?_pragma=journal_mode(wal)" +
		"&_pragma=foreign_keys(on)" +
		"&_pragma=busy_timeout(5000)"
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := runMigrations(conn); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info(log.CatDB, "database opened", "path", path)

	return &DB{conn: conn, runs: newRunRepository(conn)}, nil
}

// backupExisting copies an existing database file to path.bak,
// overwriting any previous backup. A missing file is not an error.
func backupExisting(path string) error {
	src, err := os.Open(path) //nolint:gosec // G304: path comes from local config
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	dst, err := os.OpenFile(path+".bak", os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	defer func() { _ = dst.Close() }()

	_, err = io.Copy(dst, src)
	return err
}

func runMigrations(conn *sql.DB) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load migration source: %w", err)
	}

	driver, err := migratesqlite.WithInstance(conn, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// RunRepository returns the repository for finished runs.
func (db *DB) RunRepository() game.RunRepository { return db.runs }

// Connection returns the underlying *sql.DB.
func (db *DB) Connection() *sql.DB { return db.conn }

// Close closes the database connection.
func (db *DB) Close() error { return db.conn.Close() }
