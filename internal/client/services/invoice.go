package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/fieldware/fieldbill/internal/client/repositories/customers"
	"github.com/fieldware/fieldbill/internal/client/repositories/invoices"
	"github.com/fieldware/fieldbill/internal/common"
	"github.com/fieldware/fieldbill/internal/dbx"
	"github.com/fieldware/fieldbill/internal/models"
	"github.com/fieldware/fieldbill/internal/share"
	"github.com/google/uuid"
)

// InvoiceInput is the caller-supplied part of a new invoice. The invoice
// number, line item ids, and all totals are assigned by the service.
type InvoiceInput struct {
	CustomerID   string
	Items        []models.LineItem
	TaxRate      float64
	Notes        string
	PaymentTerms string // optional, e.g. "Net 30"
	DueDate      string // optional, YYYY-MM-DD
}

// InvoiceService manages invoices and produces their share links.
type InvoiceService interface {
	Create(ctx context.Context, input InvoiceInput) (*models.Invoice, error)
	List(ctx context.Context) ([]models.Invoice, error)
	Get(ctx context.Context, id string) (*models.Invoice, error)
	Share(ctx context.Context, id string) (*ShareResult, error)
}

type invoiceService struct {
	db           *sql.DB
	repo         invoices.Repository
	customerRepo customers.Repository
	builder      share.Builder
	businessName string
}

// NewInvoiceService returns an InvoiceService. The db handle is needed in
// addition to the repository because numbering a new invoice runs in a
// transaction. businessName may be empty; see NewEstimateService.
func NewInvoiceService(db *sql.DB, repo invoices.Repository, customerRepo customers.Repository,
	builder share.Builder, businessName string) InvoiceService {
	return &invoiceService{
		db:           db,
		repo:         repo,
		customerRepo: customerRepo,
		builder:      builder,
		businessName: businessName,
	}
}

func (s *invoiceService) Create(ctx context.Context, input InvoiceInput) (*models.Invoice, error) {
	if strings.TrimSpace(input.CustomerID) == "" {
		return nil, common.ErrorCustomerRequired
	}
	if _, err := s.customerRepo.GetByID(ctx, input.CustomerID); err != nil {
		return nil, fmt.Errorf("looking up customer: %w", err)
	}

	_, created := nowUTC()
	items, subtotal, taxAmount, total := computeTotals(input.Items, input.TaxRate)

	// The sequential number and the insert must land together, otherwise two
	// concurrent creates could claim the same number.
	var in *models.Invoice
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := invoices.NewSQLiteRepository(tx)

		n, err := r.Count(ctx)
		if err != nil {
			return fmt.Errorf("numbering invoice: %w", err)
		}

		in = &models.Invoice{
			ID:            uuid.NewString(),
			InvoiceNumber: fmt.Sprintf("INV-%04d", n+1),
			CustomerID:    input.CustomerID,
			Items:         items,
			Subtotal:      subtotal,
			TaxRate:       input.TaxRate,
			TaxAmount:     taxAmount,
			Total:         total,
			Notes:         input.Notes,
			PaymentTerms:  input.PaymentTerms,
			DueDate:       input.DueDate,
			Status:        models.InvoiceStatusDraft,
			CreatedAt:     created,
			UpdatedAt:     created,
		}
		return r.Insert(ctx, in)
	})
	if err != nil {
		return nil, fmt.Errorf("saving invoice: %w", err)
	}
	return in, nil
}

func (s *invoiceService) List(ctx context.Context) ([]models.Invoice, error) {
	result, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	return result, nil
}

func (s *invoiceService) Get(ctx context.Context, id string) (*models.Invoice, error) {
	in, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("retrieving invoice: %w", err)
	}
	return in, nil
}

// Share builds the share URL and message for an invoice. A draft invoice is
// marked sent on its first share.
func (s *invoiceService) Share(ctx context.Context, id string) (*ShareResult, error) {
	in, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("retrieving invoice: %w", err)
	}
	c, err := s.customerRepo.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("retrieving customer: %w", err)
	}

	// Mark sent before projecting so the embedded status reflects the share.
	if in.Status == models.InvoiceStatusDraft {
		_, updated := nowUTC()
		if err := s.repo.UpdateStatus(ctx, in.ID, models.InvoiceStatusSent, updated); err != nil {
			return nil, fmt.Errorf("marking invoice sent: %w", err)
		}
		in.Status = models.InvoiceStatusSent
		in.UpdatedAt = updated
	}

	return &ShareResult{
		URL:     s.builder.InvoiceURL(in, c.Name, s.businessName),
		Message: s.builder.InvoiceMessage(in, c.Name, s.businessName),
	}, nil
}
