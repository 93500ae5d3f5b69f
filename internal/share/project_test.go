package share

import (
	"testing"

	"github.com/fieldware/fieldbill/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEstimate() *models.Estimate {
	return &models.Estimate{
		ID:         "abcd1234-5678-9012-3456-789012345678",
		CustomerID: "cust-1",
		Items: []models.LineItem{
			{ID: "li-1", Name: "Driveway Wash", Quantity: 1, UnitPrice: 150, Total: 150},
			{ID: "li-2", Name: "House Wash", Quantity: 2, UnitPrice: 300, Total: 600},
		},
		Subtotal:       750,
		TaxRate:        8,
		TaxAmount:      60,
		Total:          810,
		Notes:          "Valid for 30 days",
		ExpirationDate: "2026-03-15",
		Status:         models.EstimateStatusDraft,
		CreatedAt:      "2026-02-14T12:00:00.000Z",
		UpdatedAt:      "2026-02-14T12:00:00.000Z",
	}
}

func sampleInvoice() *models.Invoice {
	return &models.Invoice{
		ID:            "9876fedc-4321-8765-4321-876543218765",
		InvoiceNumber: "INV-0042",
		CustomerID:    "cust-1",
		Items: []models.LineItem{
			{ID: "li-1", Name: "Gutter Cleaning", Quantity: 1, UnitPrice: 120, Total: 120},
		},
		Subtotal:     120,
		TaxRate:      0.0875,
		TaxAmount:    0.01,
		Total:        120.01,
		Notes:        "Thanks for your business",
		PaymentTerms: "Net 30",
		DueDate:      "2026-03-16T00:00:00.000Z",
		Status:       models.InvoiceStatusSent,
		CreatedAt:    "2026-02-14T09:30:00.000Z",
		UpdatedAt:    "2026-02-14T09:30:00.000Z",
	}
}

func TestEstimateNumber(t *testing.T) {
	assert.Equal(t, "ABCDEF12", EstimateNumber("abcdef12-3456-7890-abcd-ef1234567890"))
	assert.Equal(t, "AB", EstimateNumber("ab")) // shorter than 8 passes through
}

func TestProjectEstimate(t *testing.T) {
	p := ProjectEstimate(sampleEstimate(), "John Doe", "")

	want := Payload{
		Number:   "ABCD1234",
		Customer: "John Doe",
		Items: []Item{
			{Name: "Driveway Wash", Quantity: 1, UnitPrice: 150},
			{Name: "House Wash", Quantity: 2, UnitPrice: 300},
		},
		Subtotal:  750,
		TaxRate:   8,
		TaxAmount: 60,
		Total:     810,
		Notes:     "Valid for 30 days",
		Created:   "2026-02-14",
		Expires:   "2026-03-15",
	}
	assert.Equal(t, want, p)
}

func TestProjectEstimate_EmptyOptionalFieldsStayEmpty(t *testing.T) {
	e := sampleEstimate()
	e.Notes = ""

	p := ProjectEstimate(e, "John Doe", "")
	assert.Empty(t, p.Notes)
	assert.Empty(t, p.Business)

	// The empty fields must vanish from the wire form too.
	decoded := Decode(Encode(p))
	require.NotNil(t, decoded)
	assert.Equal(t, p, *decoded)
}

func TestProjectEstimate_BusinessName(t *testing.T) {
	p := ProjectEstimate(sampleEstimate(), "John Doe", "Sparkle Wash Co")
	assert.Equal(t, "Sparkle Wash Co", p.Business)

	p = ProjectEstimate(sampleEstimate(), "John Doe", "")
	assert.Empty(t, p.Business)
}

func TestProjectInvoice(t *testing.T) {
	p := ProjectInvoice(sampleInvoice(), "Jane Roe", "Sparkle Wash Co")

	want := Payload{
		Number:   "INV-0042",
		Customer: "Jane Roe",
		Items: []Item{
			{Name: "Gutter Cleaning", Quantity: 1, UnitPrice: 120},
		},
		Subtotal:  120,
		TaxRate:   0.0875,
		TaxAmount: 0.01,
		Total:     120.01,
		Notes:     "Thanks for your business",
		Created:   "2026-02-14",
		DueDate:   "2026-03-16",
		Terms:     "Net 30",
		Status:    "sent",
		Business:  "Sparkle Wash Co",
	}
	assert.Equal(t, want, p)
}

func TestProjectInvoice_NumberIsVerbatim(t *testing.T) {
	in := sampleInvoice()
	in.InvoiceNumber = "inv-007-draft"
	p := ProjectInvoice(in, "Jane", "")
	assert.Equal(t, "inv-007-draft", p.Number)
}

func TestProjectInvoice_OptionalFieldsOmitted(t *testing.T) {
	in := sampleInvoice()
	in.PaymentTerms = ""
	in.DueDate = ""
	in.Notes = ""

	p := ProjectInvoice(in, "Jane", "")
	assert.Empty(t, p.Terms)
	assert.Empty(t, p.DueDate)
	assert.Empty(t, p.Notes)
	assert.Equal(t, "sent", p.Status) // status is always carried for invoices
}

func TestDateOnly(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2026-02-14T12:00:00.000Z", "2026-02-14"},
		{"2026-02-14T23:59:59+02:00", "2026-02-14"}, // no timezone conversion
		{"2026-03-15", "2026-03-15"},                // date-only passes through
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, dateOnly(tt.in), "dateOnly(%q)", tt.in)
	}
}

func TestProjectEstimate_ZeroLineItems(t *testing.T) {
	e := sampleEstimate()
	e.Items = nil

	p := ProjectEstimate(e, "John Doe", "")
	require.NotNil(t, p.Items)
	assert.Len(t, p.Items, 0)

	decoded := Decode(Encode(p))
	require.NotNil(t, decoded)
	assert.Equal(t, p, *decoded)
}

// Negative totals and fractional or zero quantities pass through unvalidated.
func TestProjectEstimate_NoNumericValidation(t *testing.T) {
	e := sampleEstimate()
	e.Items = []models.LineItem{
		{Name: "Credit", Quantity: 1, UnitPrice: -50, Total: -50},
		{Name: "Partial", Quantity: 0.5, UnitPrice: 100, Total: 50},
		{Name: "Zero", Quantity: 0, UnitPrice: 10, Total: 0},
	}
	e.Subtotal = 0
	e.Total = -0.5

	p := ProjectEstimate(e, "John Doe", "")
	assert.Equal(t, -50.0, p.Items[0].UnitPrice)
	assert.Equal(t, 0.5, p.Items[1].Quantity)
	assert.Equal(t, 0.0, p.Items[2].Quantity)
	assert.Equal(t, -0.5, p.Total)
}
