package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/web3hub/hub-engine/internal/models"
)

// SQLiteRepository implements Repository on a local single-file database.
// It is the zero-dependency deployment option: the server persists leads
// the way the original site persisted them in browser storage, but with
// real durability.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens (creating if needed) the database at path and
// ensures the schema exists.
func NewSQLiteRepository(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// A single writer avoids SQLITE_BUSY under concurrent handlers.
	db.SetMaxOpenConns(1)

	schema := `
		CREATE TABLE IF NOT EXISTS leads (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL,
			captured_at TIMESTAMP NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_leads_captured_at ON leads(captured_at);
		CREATE TABLE IF NOT EXISTS resource_overrides (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			payload TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create sqlite schema: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Ping checks database connectivity.
func (r *SQLiteRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Close closes the database.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateLead appends a new lead record.
func (r *SQLiteRepository) CreateLead(ctx context.Context, lead *models.Lead) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO leads (id, name, email, phone, captured_at) VALUES (?, ?, ?, ?, ?)`,
		lead.ID, lead.Name, lead.Email, lead.Phone, lead.CapturedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrDuplicateLead
		}
		return fmt.Errorf("failed to create lead: %w", err)
	}
	return nil
}

// ListLeads returns all leads, newest first.
func (r *SQLiteRepository) ListLeads(ctx context.Context) ([]*models.Lead, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, email, phone, captured_at FROM leads ORDER BY captured_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	defer rows.Close()

	var leads []*models.Lead
	for rows.Next() {
		var lead models.Lead
		if err := rows.Scan(&lead.ID, &lead.Name, &lead.Email, &lead.Phone, &lead.CapturedAt); err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		leads = append(leads, &lead)
	}

	return leads, rows.Err()
}

// CountLeads returns the total number of captured leads.
func (r *SQLiteRepository) CountLeads(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM leads`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count leads: %w", err)
	}
	return count, nil
}

// GetResourceOverrides returns the stored resource collection, or nil
// when none has been saved.
func (r *SQLiteRepository) GetResourceOverrides(ctx context.Context) ([]models.Resource, error) {
	var payload string
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM resource_overrides WHERE id = 1`).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resource overrides: %w", err)
	}

	var resources []models.Resource
	if err := json.Unmarshal([]byte(payload), &resources); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resource overrides: %w", err)
	}
	return resources, nil
}

// SaveResourceOverrides replaces the stored resource collection.
func (r *SQLiteRepository) SaveResourceOverrides(ctx context.Context, resources []models.Resource) error {
	payload, err := json.Marshal(resources)
	if err != nil {
		return fmt.Errorf("failed to marshal resource overrides: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO resource_overrides (id, payload, updated_at)
		VALUES (1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP
	`, string(payload))
	if err != nil {
		return fmt.Errorf("failed to save resource overrides: %w", err)
	}
	return nil
}
