package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

// AddCustomer prompts for the customer's contact details and persists a new
// customer record. Only the name is required.
func (a *App) AddCustomer(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter customer name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	phone, err := GetSimpleText(a.reader, "Enter phone (optional)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email (optional)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	address, err := GetSimpleText(a.reader, "Enter address (optional)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	c, err := a.customers.Create(ctx, name, phone, email, address)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn(fmt.Sprintf("Created customer %s (id %s)", c.Name, c.ID))
	return nil
}

// ListCustomers prints a one-line summary per stored customer.
func (a *App) ListCustomers(ctx context.Context) error {
	list, err := a.customers.List(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	for _, c := range list {
		printlnFn(fmt.Sprintf("%s  %s  %s  %s", c.ID, c.Name, c.Phone, c.Email))
	}
	return nil
}
