package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/fieldware/fieldbill/internal/client/services"
	"github.com/fieldware/fieldbill/internal/share"
)

// AddEstimate walks the user through creating an estimate: customer, line
// items, tax rate, notes, and an optional expiration date.
func (a *App) AddEstimate(ctx context.Context) error {
	customerID, err := GetSimpleText(a.reader, "Enter customer id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	items, err := GetLineItems(a.reader, os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	taxRate, err := getNumber(a.reader, "Tax rate percent (empty for 0)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	notes, err := GetMultiline(a.reader, "Notes (double Enter to finish):", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	expiration, err := GetSimpleText(a.reader, "Expiration date YYYY-MM-DD (empty for 30 days out)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	e, err := a.estimates.Create(ctx, services.EstimateInput{
		CustomerID:     customerID,
		Items:          items,
		TaxRate:        taxRate,
		Notes:          notes,
		ExpirationDate: expiration,
	})
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn(fmt.Sprintf("Created estimate %s (id %s), total %.2f", share.EstimateNumber(e.ID), e.ID, e.Total))
	return nil
}

// ListEstimates prints a one-line summary per stored estimate.
func (a *App) ListEstimates(ctx context.Context) error {
	list, err := a.estimates.List(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	for _, e := range list {
		printlnFn(fmt.Sprintf("%s  %s  %-8s  %10.2f  expires %s",
			e.ID, share.EstimateNumber(e.ID), e.Status, e.Total, e.ExpirationDate))
	}
	return nil
}
