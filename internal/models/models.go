// Package models defines the business document types shared by the CLI app
// and its services: customers, estimates, invoices, and their line items.
//
// Dates and timestamps are carried as ISO-8601 strings. The local store
// persists them as TEXT and the share codec's date normalization is defined
// on the string form, so nothing in the system needs a time.Time here.
package models

// LineItem is a single billable line on an estimate or invoice.
// Total is always a derived quantity (Quantity * UnitPrice).
type LineItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Total     float64 `json:"total"`
}

// Customer is a billing contact.
type Customer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	CreatedAt string `json:"createdAt"`
}

// EstimateStatus tracks the estimate lifecycle.
type EstimateStatus string

const (
	EstimateStatusDraft    EstimateStatus = "draft"
	EstimateStatusSent     EstimateStatus = "sent"
	EstimateStatusApproved EstimateStatus = "approved"
	EstimateStatusDeclined EstimateStatus = "declined"
)

// Estimate is a quote offered to a customer before work is done.
type Estimate struct {
	ID             string         `json:"id"`
	CustomerID     string         `json:"customerId"`
	Items          []LineItem     `json:"items"`
	Subtotal       float64        `json:"subtotal"`
	TaxRate        float64        `json:"taxRate"`
	TaxAmount      float64        `json:"taxAmount"`
	Total          float64        `json:"total"`
	Notes          string         `json:"notes"`
	ExpirationDate string         `json:"expirationDate"`
	Status         EstimateStatus `json:"status"`
	CreatedAt      string         `json:"createdAt"`
	UpdatedAt      string         `json:"updatedAt"`
}

// InvoiceStatus tracks the invoice lifecycle.
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// Invoice is a bill for completed work. InvoiceNumber is the human-facing
// identifier (e.g. "INV-0042") and is used verbatim in share links.
type Invoice struct {
	ID            string        `json:"id"`
	InvoiceNumber string        `json:"invoiceNumber"`
	CustomerID    string        `json:"customerId"`
	Items         []LineItem    `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	TaxRate       float64       `json:"taxRate"`
	TaxAmount     float64       `json:"taxAmount"`
	Total         float64       `json:"total"`
	Notes         string        `json:"notes"`
	PaymentTerms  string        `json:"paymentTerms"`
	DueDate       string        `json:"dueDate"`
	Status        InvoiceStatus `json:"status"`
	CreatedAt     string        `json:"createdAt"`
	UpdatedAt     string        `json:"updatedAt"`
}
