package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/web3hub/hub-engine/internal/models"
)

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// PostgresConfig holds PostgreSQL connection configuration.
type PostgresConfig struct {
	DSN          string
	MaxOpenConns int32
	MaxIdleConns int32
	MaxLifetime  time.Duration
}

// NewPostgresRepository creates a new PostgreSQL repository.
func NewPostgresRepository(ctx context.Context, cfg PostgresConfig) (*PostgresRepository, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DSN: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		poolConfig.MaxConns = cfg.MaxOpenConns
	} else {
		poolConfig.MaxConns = 25 // default
	}

	if cfg.MaxIdleConns > 0 {
		poolConfig.MinConns = cfg.MaxIdleConns
	} else {
		poolConfig.MinConns = 5 // default
	}

	if cfg.MaxLifetime > 0 {
		poolConfig.MaxConnLifetime = cfg.MaxLifetime
	} else {
		poolConfig.MaxConnLifetime = 30 * time.Minute
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{pool: pool}, nil
}

// Ping checks database connectivity.
func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// Close closes the database connection pool.
func (r *PostgresRepository) Close() error {
	r.pool.Close()
	return nil
}

// CreateLead appends a new lead record.
func (r *PostgresRepository) CreateLead(ctx context.Context, lead *models.Lead) error {
	query := `
		INSERT INTO leads (id, name, email, phone, captured_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		lead.ID,
		lead.Name,
		lead.Email,
		lead.Phone,
		lead.CapturedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateLead
		}
		return fmt.Errorf("failed to create lead: %w", err)
	}

	return nil
}

// ListLeads returns all leads, newest first.
func (r *PostgresRepository) ListLeads(ctx context.Context) ([]*models.Lead, error) {
	query := `
		SELECT id, name, email, phone, captured_at
		FROM leads
		ORDER BY captured_at DESC, id DESC
	`

	rows, err := r.pool.Query(ctx, query)
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
func (r *PostgresRepository) CountLeads(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM leads`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count leads: %w", err)
	}
	return count, nil
}

// GetResourceOverrides returns the stored resource collection, or nil
// when none has been saved.
func (r *PostgresRepository) GetResourceOverrides(ctx context.Context) ([]models.Resource, error) {
	var payload []byte
	err := r.pool.QueryRow(ctx, `SELECT payload FROM resource_overrides WHERE id = 1`).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resource overrides: %w", err)
	}

	var resources []models.Resource
	if err := json.Unmarshal(payload, &resources); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resource overrides: %w", err)
	}
	return resources, nil
}

// SaveResourceOverrides replaces the stored resource collection.
func (r *PostgresRepository) SaveResourceOverrides(ctx context.Context, resources []models.Resource) error {
	payload, err := json.Marshal(resources)
	if err != nil {
		return fmt.Errorf("failed to marshal resource overrides: %w", err)
	}

	query := `
		INSERT INTO resource_overrides (id, payload, updated_at)
		VALUES (1, $1, NOW())
		ON CONFLICT (id) DO UPDATE SET payload = $1, updated_at = NOW()
	`
	if _, err := r.pool.Exec(ctx, query, payload); err != nil {
		return fmt.Errorf("failed to save resource overrides: %w", err)
	}
	return nil
}
