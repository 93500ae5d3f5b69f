package services

import (
	"time"

	"github.com/fieldware/fieldbill/internal/models"
	"github.com/fieldware/fieldbill/internal/share"
	"github.com/google/uuid"
)

// isoMillis matches the timestamp shape the original documents carry:
// ISO-8601 with milliseconds, UTC.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// nowFn is a test seam for the clock.
var nowFn = time.Now

func nowUTC() (time.Time, string) {
	now := nowFn().UTC()
	return now, now.Format(isoMillis)
}

// ShareResult is the outcome of sharing a document: the bare URL and the
// customer-facing message that wraps it.
type ShareResult struct {
	URL     string
	Message string
}

// computeTotals assigns ids and derived totals to the given line items and
// returns the document-level amounts. taxRate is a percentage (8 means 8%).
func computeTotals(items []models.LineItem, taxRate float64) ([]models.LineItem, float64, float64, float64) {
	out := make([]models.LineItem, len(items))
	var subtotal float64
	for i, it := range items {
		it.ID = uuid.NewString()
		it.Total = share.RoundCents(it.Quantity * it.UnitPrice)
		subtotal += it.Total
		out[i] = it
	}
	subtotal = share.RoundCents(subtotal)
	taxAmount := share.RoundCents(subtotal * taxRate / 100)
	total := share.RoundCents(subtotal + taxAmount)
	return out, subtotal, taxAmount, total
}
