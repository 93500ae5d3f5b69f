package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/fieldware/fieldbill/internal/client/repositories/customers"
	"github.com/fieldware/fieldbill/internal/common"
	"github.com/fieldware/fieldbill/internal/models"
	"github.com/google/uuid"
)

// CustomerService manages billing contacts.
type CustomerService interface {
	Create(ctx context.Context, name, phone, email, address string) (*models.Customer, error)
	List(ctx context.Context) ([]models.Customer, error)
	Get(ctx context.Context, id string) (*models.Customer, error)
}

type customerService struct {
	repo customers.Repository
}

// NewCustomerService returns a CustomerService over the given repository.
func NewCustomerService(repo customers.Repository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) Create(ctx context.Context, name, phone, email, address string) (*models.Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, common.ErrorNameRequired
	}

	_, created := nowUTC()
	c := &models.Customer{
		ID:        uuid.NewString(),
		Name:      name,
		Phone:     phone,
		Email:     email,
		Address:   address,
		CreatedAt: created,
	}
	if err := s.repo.Insert(ctx, c); err != nil {
		return nil, fmt.Errorf("saving customer: %w", err)
	}
	return c, nil
}

func (s *customerService) List(ctx context.Context) ([]models.Customer, error) {
	result, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}
	return result, nil
}

func (s *customerService) Get(ctx context.Context, id string) (*models.Customer, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("retrieving customer: %w", err)
	}
	return c, nil
}
