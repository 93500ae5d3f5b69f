package estimates

import (
	"context"

	"github.com/fieldware/fieldbill/internal/models"
)

// Repository describes CRUD operations for Estimate records, backed by the
// local SQLite database. Line items are stored as a JSON array column.
type Repository interface {
	// Insert stores a new estimate.
	Insert(ctx context.Context, e *models.Estimate) error

	// GetAll returns all estimates ordered by creation time.
	GetAll(ctx context.Context) ([]models.Estimate, error)

	// GetByID returns an estimate by id, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.Estimate, error)

	// UpdateStatus sets the lifecycle status and the updated-at timestamp.
	UpdateStatus(ctx context.Context, id string, status models.EstimateStatus, updatedAt string) error
}
