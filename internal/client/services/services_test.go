package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fieldware/fieldbill/internal/client/repositories/customers"
	"github.com/fieldware/fieldbill/internal/client/repositories/estimates"
	"github.com/fieldware/fieldbill/internal/client/repositories/invoices"
	"github.com/fieldware/fieldbill/internal/common"
	"github.com/fieldware/fieldbill/internal/models"
	"github.com/fieldware/fieldbill/internal/share"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE customers (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  phone TEXT NOT NULL DEFAULT '',
  email TEXT NOT NULL DEFAULT '',
  address TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL
);
CREATE TABLE estimates (
  id TEXT PRIMARY KEY,
  customer_id TEXT NOT NULL,
  items TEXT NOT NULL DEFAULT '[]',
  subtotal REAL NOT NULL DEFAULT 0,
  tax_rate REAL NOT NULL DEFAULT 0,
  tax_amount REAL NOT NULL DEFAULT 0,
  total REAL NOT NULL DEFAULT 0,
  notes TEXT NOT NULL DEFAULT '',
  expiration_date TEXT NOT NULL DEFAULT '',
  status TEXT NOT NULL DEFAULT 'draft',
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
CREATE TABLE invoices (
  id TEXT PRIMARY KEY,
  invoice_number TEXT NOT NULL UNIQUE,
  customer_id TEXT NOT NULL,
  items TEXT NOT NULL DEFAULT '[]',
  subtotal REAL NOT NULL DEFAULT 0,
  tax_rate REAL NOT NULL DEFAULT 0,
  tax_amount REAL NOT NULL DEFAULT 0,
  total REAL NOT NULL DEFAULT 0,
  notes TEXT NOT NULL DEFAULT '',
  payment_terms TEXT NOT NULL DEFAULT '',
  due_date TEXT NOT NULL DEFAULT '',
  status TEXT NOT NULL DEFAULT 'draft',
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
`

type env struct {
	customers CustomerService
	estimates EstimateService
	invoices  InvoiceService
}

func setup(t *testing.T, businessName string) *env {
	t.Helper()
	db, err := sql.Open("sqlite", "file:billsvc?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(schema)
	require.NoError(t, err)

	custRepo := customers.NewSQLiteRepository(db)
	builder := share.NewBuilder("https://fieldbill.app")

	return &env{
		customers: NewCustomerService(custRepo),
		estimates: NewEstimateService(estimates.NewSQLiteRepository(db), custRepo, builder, businessName),
		invoices:  NewInvoiceService(db, invoices.NewSQLiteRepository(db), custRepo, builder, businessName),
	}
}

func fixedClock(t *testing.T) {
	t.Helper()
	orig := nowFn
	nowFn = func() time.Time {
		return time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)
	}
	t.Cleanup(func() { nowFn = orig })
}

func createCustomer(t *testing.T, e *env) *models.Customer {
	t.Helper()
	c, err := e.customers.Create(context.Background(), "John Doe", "555-0101", "john@example.com", "1 Main St")
	require.NoError(t, err)
	return c
}

func TestCustomerService_Create(t *testing.T) {
	e := setup(t, "")
	fixedClock(t)

	c := createCustomer(t, e)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "2026-02-14T12:00:00.000Z", c.CreatedAt)

	got, err := e.customers.Get(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestCustomerService_Create_RequiresName(t *testing.T) {
	e := setup(t, "")

	_, err := e.customers.Create(context.Background(), "  ", "", "", "")
	assert.True(t, errors.Is(err, common.ErrorNameRequired))
}

func TestEstimateService_Create_ComputesTotals(t *testing.T) {
	e := setup(t, "")
	fixedClock(t)
	ctx := context.Background()
	c := createCustomer(t, e)

	est, err := e.estimates.Create(ctx, EstimateInput{
		CustomerID: c.ID,
		Items: []models.LineItem{
			{Name: "Driveway Wash", Quantity: 1, UnitPrice: 150},
			{Name: "House Wash", Quantity: 2, UnitPrice: 300},
		},
		TaxRate: 8,
		Notes:   "Valid for 30 days",
	})
	require.NoError(t, err)

	assert.Equal(t, 750.0, est.Subtotal)
	assert.Equal(t, 60.0, est.TaxAmount)
	assert.Equal(t, 810.0, est.Total)
	assert.Equal(t, models.EstimateStatusDraft, est.Status)
	assert.Equal(t, "2026-02-14T12:00:00.000Z", est.CreatedAt)
	// default expiration: 30 days out
	assert.Equal(t, "2026-03-16", est.ExpirationDate)
	require.Len(t, est.Items, 2)
	assert.Equal(t, 150.0, est.Items[0].Total)
	assert.Equal(t, 600.0, est.Items[1].Total)
	assert.NotEmpty(t, est.Items[0].ID)
}

func TestEstimateService_Create_UnknownCustomer(t *testing.T) {
	e := setup(t, "")

	_, err := e.estimates.Create(context.Background(), EstimateInput{CustomerID: "ghost"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrorNotFound))

	_, err = e.estimates.Create(context.Background(), EstimateInput{})
	assert.True(t, errors.Is(err, common.ErrorCustomerRequired))
}

func TestEstimateService_Share(t *testing.T) {
	e := setup(t, "Sparkle Wash Co")
	fixedClock(t)
	ctx := context.Background()
	c := createCustomer(t, e)

	est, err := e.estimates.Create(ctx, EstimateInput{
		CustomerID:     c.ID,
		Items:          []models.LineItem{{Name: "Driveway Wash", Quantity: 1, UnitPrice: 150}},
		TaxRate:        8,
		ExpirationDate: "2026-03-15",
	})
	require.NoError(t, err)

	res, err := e.estimates.Share(ctx, est.ID)
	require.NoError(t, err)

	assert.Contains(t, res.URL, "/view/estimate/"+est.ID[:8])
	assert.Contains(t, res.Message, "Here's your estimate from Sparkle Wash Co: ")

	_, token, ok := strings.Cut(res.URL, "?d=")
	require.True(t, ok)
	p := share.Decode(token)
	require.NotNil(t, p)
	assert.Equal(t, share.EstimateNumber(est.ID), p.Number)
	assert.Equal(t, "John Doe", p.Customer)
	assert.Equal(t, "Sparkle Wash Co", p.Business)
	assert.Equal(t, "2026-02-14", p.Created)
	assert.Equal(t, "2026-03-15", p.Expires)

	// first share flips draft -> sent
	got, err := e.estimates.Get(ctx, est.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EstimateStatusSent, got.Status)
}

func TestInvoiceService_Create_AssignsSequentialNumbers(t *testing.T) {
	e := setup(t, "")
	fixedClock(t)
	ctx := context.Background()
	c := createCustomer(t, e)

	first, err := e.invoices.Create(ctx, InvoiceInput{
		CustomerID: c.ID,
		Items:      []models.LineItem{{Name: "Gutter Cleaning", Quantity: 1, UnitPrice: 120}},
		TaxRate:    8,
	})
	require.NoError(t, err)
	assert.Equal(t, "INV-0001", first.InvoiceNumber)

	second, err := e.invoices.Create(ctx, InvoiceInput{CustomerID: c.ID})
	require.NoError(t, err)
	assert.Equal(t, "INV-0002", second.InvoiceNumber)

	assert.Equal(t, 120.0, first.Subtotal)
	assert.Equal(t, 9.6, first.TaxAmount)
	assert.Equal(t, 129.6, first.Total)
}

func TestInvoiceService_Share(t *testing.T) {
	e := setup(t, "")
	fixedClock(t)
	ctx := context.Background()
	c := createCustomer(t, e)

	in, err := e.invoices.Create(ctx, InvoiceInput{
		CustomerID:   c.ID,
		Items:        []models.LineItem{{Name: "Gutter Cleaning", Quantity: 1, UnitPrice: 120}},
		TaxRate:      8,
		PaymentTerms: "Net 30",
		DueDate:      "2026-03-16",
	})
	require.NoError(t, err)

	res, err := e.invoices.Share(ctx, in.ID)
	require.NoError(t, err)

	assert.Contains(t, res.URL, "/view/invoice/INV-0001?d=")
	assert.Contains(t, res.Message, "Here's your invoice from our company: ")

	_, token, ok := strings.Cut(res.URL, "?d=")
	require.True(t, ok)
	p := share.Decode(token)
	require.NotNil(t, p)
	assert.Equal(t, "INV-0001", p.Number)
	assert.Equal(t, "Net 30", p.Terms)
	assert.Equal(t, "2026-03-16", p.DueDate)
	// the share itself moved the invoice to sent before projecting
	assert.Equal(t, "sent", p.Status)
	assert.Empty(t, p.Business)
}

func TestShare_NotFound(t *testing.T) {
	e := setup(t, "")

	_, err := e.estimates.Share(context.Background(), "missing")
	assert.True(t, errors.Is(err, common.ErrorNotFound))

	_, err = e.invoices.Share(context.Background(), "missing")
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}
