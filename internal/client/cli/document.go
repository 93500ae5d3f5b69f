package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fieldware/fieldbill/internal/client/services"
	"github.com/fieldware/fieldbill/internal/models"
	"github.com/fieldware/fieldbill/internal/share"
)

// getKind prompts for a document kind and normalizes the answer.
func (a *App) getKind() (share.Kind, error) {
	answer, err := GetSimpleText(a.reader, "(e)stimate or (i)nvoice?", os.Stdout)
	if err != nil {
		return "", err
	}
	switch strings.ToLower(answer) {
	case "e", "estimate":
		return share.KindEstimate, nil
	case "i", "invoice":
		return share.KindInvoice, nil
	}
	return "", fmt.Errorf("unknown document kind %q", answer)
}

// Show fetches and displays a single estimate or invoice by its record id.
func (a *App) Show(ctx context.Context) error {
	kind, err := a.getKind()
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	id, err := GetSimpleText(a.reader, "Enter record id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	switch kind {
	case share.KindEstimate:
		e, err := a.estimates.Get(ctx, id)
		if err != nil {
			log.Printf("error: %v", err)
			return err
		}
		printlnFn(fmt.Sprintf("Estimate %s (%s)", share.EstimateNumber(e.ID), e.Status))
		printlnFn("Customer:", a.customerName(ctx, e.CustomerID))
		a.printItems(e.Items)
		a.printTotals(e.Subtotal, e.TaxRate, e.TaxAmount, e.Total)
		if e.Notes != "" {
			printlnFn("Notes:", e.Notes)
		}
		printlnFn("Expires:", e.ExpirationDate)

	case share.KindInvoice:
		in, err := a.invoices.Get(ctx, id)
		if err != nil {
			log.Printf("error: %v", err)
			return err
		}
		printlnFn(fmt.Sprintf("Invoice %s (%s)", in.InvoiceNumber, in.Status))
		printlnFn("Customer:", a.customerName(ctx, in.CustomerID))
		a.printItems(in.Items)
		a.printTotals(in.Subtotal, in.TaxRate, in.TaxAmount, in.Total)
		if in.Notes != "" {
			printlnFn("Notes:", in.Notes)
		}
		if in.PaymentTerms != "" {
			printlnFn("Terms:", in.PaymentTerms)
		}
		if in.DueDate != "" {
			printlnFn("Due:", in.DueDate)
		}
	}
	return nil
}

// Share produces and prints a share link plus a ready-to-send message for
// an estimate or invoice. Sharing a draft marks it as sent.
func (a *App) Share(ctx context.Context) error {
	kind, err := a.getKind()
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	id, err := GetSimpleText(a.reader, "Enter record id", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	var res *services.ShareResult
	switch kind {
	case share.KindEstimate:
		res, err = a.estimates.Share(ctx, id)
	case share.KindInvoice:
		res, err = a.invoices.Share(ctx, id)
	}
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn(res.Message)
	printlnFn(res.URL)
	return nil
}

// customerName resolves a customer id for display, falling back to the raw
// id if the lookup fails.
func (a *App) customerName(ctx context.Context, id string) string {
	c, err := a.customers.Get(ctx, id)
	if err != nil {
		return id
	}
	return c.Name
}

func (a *App) printItems(items []models.LineItem) {
	for _, it := range items {
		printlnFn(fmt.Sprintf("  %-30s %8.2f x %10.2f = %10.2f",
			it.Name, it.Quantity, it.UnitPrice, it.Total))
	}
}

func (a *App) printTotals(subtotal, taxRate, taxAmount, total float64) {
	printlnFn(fmt.Sprintf("Subtotal: %.2f", subtotal))
	if taxRate != 0 {
		printlnFn(fmt.Sprintf("Tax (%v%%): %.2f", taxRate, taxAmount))
	}
	printlnFn(fmt.Sprintf("Total: %.2f", total))
}
