// Package audit records one row per resolver process start in a small
// SQLite database, giving the admin API an instance id and a historical
// restart count. Schema migrations run at open time via an embedded
// .sql file.
package audit

import (
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store wraps the audit SQLite database.
type Store struct {
	conn       *sql.DB
	instanceID string
}

// Open opens (creating if necessary) the audit database at path and runs
// its migrations.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000", path)
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open audit db: %w", err)
	}

	if err := runMigrations(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate audit db: %w", err)
	}

	return &Store{conn: conn, instanceID: uuid.NewString()}, nil
}

func runMigrations(conn *sql.DB) error {
	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("migration source: %w", err)
	}
	dbDriver, err := sqlite.WithInstance(conn, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", sourceDriver, "sqlite", dbDriver)
	if err != nil {
		return fmt.Errorf("migrator: %w", err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// InstanceID returns the UUID minted for this process's lifetime.
func (s *Store) InstanceID() string {
	return s.instanceID
}

// RecordStart inserts a row marking this process's startup.
func (s *Store) RecordStart(bindAddr, upstream, zoneFile string) error {
	_, err := s.conn.Exec(
		`INSERT INTO instance_starts (instance_id, started_at, bind_addr, upstream, zone_file) VALUES (?, ?, ?, ?, ?)`,
		s.instanceID, time.Now().UTC(), bindAddr, upstream, zoneFile,
	)
	if err != nil {
		return fmt.Errorf("record start: %w", err)
	}
	return nil
}

// StartCount returns the total number of recorded process starts across
// this database's history.
func (s *Store) StartCount() (int64, error) {
	var count int64
	if err := s.conn.QueryRow(`SELECT COUNT(*) FROM instance_starts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count starts: %w", err)
	}
	return count, nil
}
