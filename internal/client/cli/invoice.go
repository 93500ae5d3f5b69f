package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/fieldware/fieldbill/internal/client/services"
)

// AddInvoice walks the user through creating an invoice: customer, line
// items, tax rate, notes, and optional payment terms plus due date. The
// invoice number is assigned automatically.
func (a *App) AddInvoice(ctx context.Context) error {
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

	terms, err := GetSimpleText(a.reader, "Payment terms, e.g. Net 30 (optional)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	dueDate, err := GetSimpleText(a.reader, "Due date YYYY-MM-DD (optional)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	in, err := a.invoices.Create(ctx, services.InvoiceInput{
		CustomerID:   customerID,
		Items:        items,
		TaxRate:      taxRate,
		Notes:        notes,
		PaymentTerms: terms,
		DueDate:      dueDate,
	})
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn(fmt.Sprintf("Created invoice %s (id %s), total %.2f", in.InvoiceNumber, in.ID, in.Total))
	return nil
}

// ListInvoices prints a one-line summary per stored invoice.
func (a *App) ListInvoices(ctx context.Context) error {
	list, err := a.invoices.List(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	for _, in := range list {
		printlnFn(fmt.Sprintf("%s  %s  %-8s  %10.2f  due %s",
			in.ID, in.InvoiceNumber, in.Status, in.Total, in.DueDate))
	}
	return nil
}
