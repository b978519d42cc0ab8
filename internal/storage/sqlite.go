// Package storage provides SQLite-based persistence for named scenario
// presets (saved parameter sets). Uses the pure-Go modernc.org/sqlite driver
// to avoid CGO dependencies. Simulation history is deliberately not stored.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/wildfire/internal/sim"
)

// Store manages the SQLite database connection for scenario persistence.
type Store struct {
	db *sql.DB
}

// Scenario is a named, saved parameter set.
type Scenario struct {
	ID        int64
	Name      string
	Params    sim.Params
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scenarios (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			tree_density REAL NOT NULL,
			wind_dir REAL NOT NULL,
			wind_str REAL NOT NULL,
			moisture REAL NOT NULL,
			temperature REAL NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scenarios_name ON scenarios(name);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScenario stores a parameter set under the given name, replacing any
// existing scenario with that name. Returns the ID of the record.
func (s *Store) SaveScenario(name string, p sim.Params) (int64, error) {
	if name == "" {
		return 0, fmt.Errorf("storage: scenario name must not be empty")
	}

	result, err := s.db.Exec(
		`INSERT INTO scenarios (name, tree_density, wind_dir, wind_str, moisture, temperature)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
			tree_density = excluded.tree_density,
			wind_dir = excluded.wind_dir,
			wind_str = excluded.wind_str,
			moisture = excluded.moisture,
			temperature = excluded.temperature,
			created_at = CURRENT_TIMESTAMP`,
		name, p.TreeDensity, p.WindDir, p.WindStr, p.Moisture, p.Temperature,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save scenario: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Scenario retrieves a scenario by name. Returns nil if it doesn't exist.
func (s *Store) Scenario(name string) (*Scenario, error) {
	var sc Scenario
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, name, tree_density, wind_dir, wind_str, moisture, temperature, created_at
		 FROM scenarios
		 WHERE name = ?`,
		name,
	).Scan(
		&sc.ID, &sc.Name,
		&sc.Params.TreeDensity, &sc.Params.WindDir, &sc.Params.WindStr,
		&sc.Params.Moisture, &sc.Params.Temperature,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scenario: %w", err)
	}

	sc.CreatedAt = parseTimestamp(createdAt)
	return &sc, nil
}

// ListScenarios retrieves all scenarios ordered by most recently saved.
func (s *Store) ListScenarios() ([]Scenario, error) {
	rows, err := s.db.Query(
		`SELECT id, name, tree_density, wind_dir, wind_str, moisture, temperature, created_at
		 FROM scenarios
		 ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scenarios: %w", err)
	}
	defer rows.Close()

	var scenarios []Scenario
	for rows.Next() {
		var sc Scenario
		var createdAt any
		if err := rows.Scan(
			&sc.ID, &sc.Name,
			&sc.Params.TreeDensity, &sc.Params.WindDir, &sc.Params.WindStr,
			&sc.Params.Moisture, &sc.Params.Temperature,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sc.CreatedAt = parseTimestamp(createdAt)
		scenarios = append(scenarios, sc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return scenarios, nil
}

// DeleteScenario removes a scenario by name. Returns true if a row was
// deleted.
func (s *Store) DeleteScenario(name string) (bool, error) {
	result, err := s.db.Exec("DELETE FROM scenarios WHERE name = ?", name)
	if err != nil {
		return false, fmt.Errorf("storage: cannot delete scenario: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	return n > 0, nil
}

// RenameScenario changes a scenario's name. Returns true if a row changed.
func (s *Store) RenameScenario(oldName, newName string) (bool, error) {
	if newName == "" {
		return false, fmt.Errorf("storage: scenario name must not be empty")
	}
	result, err := s.db.Exec("UPDATE scenarios SET name = ? WHERE name = ?", newName, oldName)
	if err != nil {
		return false, fmt.Errorf("storage: cannot rename scenario: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	return n > 0, nil
}

// parseTimestamp handles SQLite datetime values arriving as either time.Time
// or string depending on the driver path.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
