package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/fieldware/fieldbill/internal/client/repositories/customers"
	"github.com/fieldware/fieldbill/internal/client/repositories/estimates"
	"github.com/fieldware/fieldbill/internal/common"
	"github.com/fieldware/fieldbill/internal/models"
	"github.com/fieldware/fieldbill/internal/share"
	"github.com/google/uuid"
)

// EstimateInput is the caller-supplied part of a new estimate. Line item
// ids and all totals are computed by the service.
type EstimateInput struct {
	CustomerID     string
	Items          []models.LineItem
	TaxRate        float64
	Notes          string
	ExpirationDate string // YYYY-MM-DD; empty means 30 days from creation
}

// EstimateService manages estimates and produces their share links.
type EstimateService interface {
	Create(ctx context.Context, input EstimateInput) (*models.Estimate, error)
	List(ctx context.Context) ([]models.Estimate, error)
	Get(ctx context.Context, id string) (*models.Estimate, error)
	Share(ctx context.Context, id string) (*ShareResult, error)
}

type estimateService struct {
	repo         estimates.Repository
	customerRepo customers.Repository
	builder      share.Builder
	businessName string
}

// NewEstimateService returns an EstimateService. businessName may be empty;
// share messages then fall back to the default phrase and the payload omits
// the business-name key.
func NewEstimateService(repo estimates.Repository, customerRepo customers.Repository,
	builder share.Builder, businessName string) EstimateService {
	return &estimateService{
		repo:         repo,
		customerRepo: customerRepo,
		builder:      builder,
		businessName: businessName,
	}
}

func (s *estimateService) Create(ctx context.Context, input EstimateInput) (*models.Estimate, error) {
	if strings.TrimSpace(input.CustomerID) == "" {
		return nil, common.ErrorCustomerRequired
	}
	if _, err := s.customerRepo.GetByID(ctx, input.CustomerID); err != nil {
		return nil, fmt.Errorf("looking up customer: %w", err)
	}

	now, created := nowUTC()
	items, subtotal, taxAmount, total := computeTotals(input.Items, input.TaxRate)

	expiration := input.ExpirationDate
	if expiration == "" {
		expiration = now.AddDate(0, 0, 30).Format("2006-01-02")
	}

	e := &models.Estimate{
		ID:             uuid.NewString(),
		CustomerID:     input.CustomerID,
		Items:          items,
		Subtotal:       subtotal,
		TaxRate:        input.TaxRate,
		TaxAmount:      taxAmount,
		Total:          total,
		Notes:          input.Notes,
		ExpirationDate: expiration,
		Status:         models.EstimateStatusDraft,
		CreatedAt:      created,
		UpdatedAt:      created,
	}
	if err := s.repo.Insert(ctx, e); err != nil {
		return nil, fmt.Errorf("saving estimate: %w", err)
	}
	return e, nil
}

func (s *estimateService) List(ctx context.Context) ([]models.Estimate, error) {
	result, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing estimates: %w", err)
	}
	return result, nil
}

func (s *estimateService) Get(ctx context.Context, id string) (*models.Estimate, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("retrieving estimate: %w", err)
	}
	return e, nil
}

// Share builds the share URL and message for an estimate. A draft estimate
// is marked sent on its first share.
func (s *estimateService) Share(ctx context.Context, id string) (*ShareResult, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("retrieving estimate: %w", err)
	}
	c, err := s.customerRepo.GetByID(ctx, e.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("retrieving customer: %w", err)
	}

	if e.Status == models.EstimateStatusDraft {
		_, updated := nowUTC()
		if err := s.repo.UpdateStatus(ctx, e.ID, models.EstimateStatusSent, updated); err != nil {
			return nil, fmt.Errorf("marking estimate sent: %w", err)
		}
	}

	return &ShareResult{
		URL:     s.builder.EstimateURL(e, c.Name, s.businessName),
		Message: s.builder.EstimateMessage(e, c.Name, s.businessName),
	}, nil
}
