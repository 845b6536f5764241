package storage

import (
	"context"
	"errors"

	"github.com/web3hub/hub-engine/internal/models"
)

// ErrDuplicateLead is returned when a lead id collides. Ids are assigned
// fresh at capture time so this indicates a programming error upstream.
var ErrDuplicateLead = errors.New("lead id already exists")

// Repository defines lead and resource-override persistence. Leads are
// append-only: no update or delete operations exist by design.
type Repository interface {
	// Leads
	CreateLead(ctx context.Context, lead *models.Lead) error
	ListLeads(ctx context.Context) ([]*models.Lead, error)
	CountLeads(ctx context.Context) (int, error)

	// Resource overrides: the full collection is replaced on save,
	// last write wins.
	GetResourceOverrides(ctx context.Context) ([]models.Resource, error)
	SaveResourceOverrides(ctx context.Context, resources []models.Resource) error

	// Health
	Ping(ctx context.Context) error
	Close() error
}
