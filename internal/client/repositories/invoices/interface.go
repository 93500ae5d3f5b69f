package invoices

import (
	"context"

	"github.com/fieldware/fieldbill/internal/models"
)

// Repository describes CRUD operations for Invoice records, backed by the
// local SQLite database. Line items are stored as a JSON array column.
type Repository interface {
	// Insert stores a new invoice.
	Insert(ctx context.Context, in *models.Invoice) error

	// GetAll returns all invoices ordered by creation time.
	GetAll(ctx context.Context) ([]models.Invoice, error)

	// GetByID returns an invoice by id, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.Invoice, error)

	// UpdateStatus sets the lifecycle status and the updated-at timestamp.
	UpdateStatus(ctx context.Context, id string, status models.InvoiceStatus, updatedAt string) error

	// Count returns the number of stored invoices; the service layer uses it
	// to assign sequential invoice numbers.
	Count(ctx context.Context) (int, error)
}
