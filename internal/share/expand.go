package share

import (
	"math"
	"strconv"

	"github.com/fieldware/fieldbill/internal/models"
)

// RoundCents rounds a monetary value to two decimal places, half away from
// zero on the cent value. This absorbs binary floating-point representation
// error (3 * 0.1 must come out as exactly 0.3).
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// ExpandLineItems reconstructs full line-item records from their compact
// tuple form, in order. Each record gets a synthetic positional id ("0",
// "1", ...) and a recomputed, cent-rounded total. The ids are stable only
// within one expansion; they exist to satisfy the record-identity shape the
// rendering code expects. Zero quantities and negative unit prices
// (discounts) pass through without special-casing.
func ExpandLineItems(items []Item) []models.LineItem {
	out := make([]models.LineItem, len(items))
	for i, it := range items {
		out[i] = models.LineItem{
			ID:        strconv.Itoa(i),
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Total:     RoundCents(it.Quantity * it.UnitPrice),
		}
	}
	return out
}
