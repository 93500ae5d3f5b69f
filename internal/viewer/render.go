package viewer

import (
	"strconv"
	"strings"

	"github.com/fieldware/fieldbill/internal/share"
)

// documentView is the template model for a rendered document. All monetary
// amounts are pre-formatted strings so the template stays dumb.
type documentView struct {
	KindLabel string
	Number    string
	Business  string
	Customer  string
	Status    string
	Created   string
	Expires   string
	DueDate   string
	Terms     string
	Notes     string
	Items     []itemView
	Subtotal  string
	TaxRate   string
	TaxAmount string
	Total     string
}

type itemView struct {
	Name      string
	Quantity  string
	UnitPrice string
	Total     string
}

// buildDocumentView expands the payload's compact line items and formats
// everything for rendering.
func buildDocumentView(kind share.Kind, p share.Payload) documentView {
	items := share.ExpandLineItems(p.Items)
	views := make([]itemView, len(items))
	for i, it := range items {
		views[i] = itemView{
			Name:      it.Name,
			Quantity:  formatQuantity(it.Quantity),
			UnitPrice: formatMoney(it.UnitPrice),
			Total:     formatMoney(it.Total),
		}
	}

	label := "Estimate"
	if kind == share.KindInvoice {
		label = "Invoice"
	}

	return documentView{
		KindLabel: label,
		Number:    p.Number,
		Business:  p.Business,
		Customer:  p.Customer,
		Status:    strings.ToUpper(p.Status),
		Created:   p.Created,
		Expires:   p.Expires,
		DueDate:   p.DueDate,
		Terms:     p.Terms,
		Notes:     p.Notes,
		Items:     views,
		Subtotal:  formatMoney(p.Subtotal),
		TaxRate:   formatQuantity(p.TaxRate),
		TaxAmount: formatMoney(p.TaxAmount),
		Total:     formatMoney(p.Total),
	}
}

// formatMoney renders an amount with exactly two decimals ("150.00").
func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// formatQuantity renders a number in its shortest form ("2", "1.5", "0.0875").
func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
