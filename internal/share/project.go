package share

import (
	"strings"

	"github.com/fieldware/fieldbill/internal/models"
)

// EstimateNumber derives the human-facing short identifier shown in payload
// headers: the first 8 characters of the estimate id, upper-cased. Invoices
// use their own InvoiceNumber verbatim instead.
func EstimateNumber(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return strings.ToUpper(id)
}

// estimatePathID is the estimate's short id as it appears in the URL path:
// the first 8 characters of the raw id, case preserved.
func estimatePathID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// ProjectEstimate maps an estimate onto its compact payload. customerName
// is passed through untouched, Unicode included. businessName is included
// only when non-empty; pass "" to omit the key. No numeric validation
// happens here: the estimate is assumed well-formed by the surrounding app.
func ProjectEstimate(e *models.Estimate, customerName, businessName string) Payload {
	p := projectCommon(customerName, businessName, e.Items,
		e.Subtotal, e.TaxRate, e.TaxAmount, e.Total, e.Notes, e.CreatedAt)
	p.Number = EstimateNumber(e.ID)
	p.Expires = dateOnly(e.ExpirationDate)
	return p
}

// ProjectInvoice maps an invoice onto its compact payload. The payload
// number is the invoice number verbatim (no truncation or case change).
// Payment terms and due date are optional and omitted when empty.
func ProjectInvoice(in *models.Invoice, customerName, businessName string) Payload {
	p := projectCommon(customerName, businessName, in.Items,
		in.Subtotal, in.TaxRate, in.TaxAmount, in.Total, in.Notes, in.CreatedAt)
	p.Number = in.InvoiceNumber
	p.Terms = in.PaymentTerms
	if in.DueDate != "" {
		p.DueDate = dateOnly(in.DueDate)
	}
	p.Status = string(in.Status)
	return p
}

// projectCommon builds the fields shared by both document kinds. Numeric
// fields are carried as-is, full precision; notes are tested on the raw
// stored value, not a trimmed copy (omitempty gives exactly that).
func projectCommon(customerName, businessName string, items []models.LineItem,
	subtotal, taxRate, taxAmount, total float64, notes, createdAt string) Payload {

	compact := make([]Item, len(items))
	for i, it := range items {
		compact[i] = Item{Name: it.Name, Quantity: it.Quantity, UnitPrice: it.UnitPrice}
	}

	return Payload{
		Customer:  customerName,
		Items:     compact,
		Subtotal:  subtotal,
		TaxRate:   taxRate,
		TaxAmount: taxAmount,
		Total:     total,
		Notes:     notes,
		Created:   dateOnly(createdAt),
		Business:  businessName,
	}
}
