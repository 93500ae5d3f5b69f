package customers

import (
	"context"

	"github.com/fieldware/fieldbill/internal/models"
)

// Repository describes CRUD operations for Customer records, backed by the
// local SQLite database.
type Repository interface {
	// Insert stores a new customer.
	Insert(ctx context.Context, c *models.Customer) error

	// GetAll returns all customers ordered by creation time.
	GetAll(ctx context.Context) ([]models.Customer, error)

	// GetByID returns a customer by id, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.Customer, error)
}
