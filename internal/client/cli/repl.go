package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	AddCustomer(ctx context.Context) error
	ListCustomers(ctx context.Context) error
	AddEstimate(ctx context.Context) error
	ListEstimates(ctx context.Context) error
	AddInvoice(ctx context.Context) error
	ListInvoices(ctx context.Context) error
	Show(ctx context.Context) error
	Share(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the FieldBill CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
//	- help           — show available commands
//	- addcustomer    — create a customer
//	- (c)ustomers    — list customers
//	- addestimate    — create an estimate
//	- (e)stimates    — list estimates
//	- addinvoice     — create an invoice
//	- (i)nvoices     — list invoices
//	- show           — show a single document (interactive kind/ID prompt)
//	- share          — produce a share link for a document
//	- exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		printlnFn("fb> ")
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn("Available commands: addcustomer, (c)ustomers, addestimate, (e)stimates, addinvoice, (i)nvoices, show, share, exit")

		case "addcustomer":
			_ = a.AddCustomer(ctx)

		case "c", "customers":
			_ = a.ListCustomers(ctx)

		case "addestimate":
			_ = a.AddEstimate(ctx)

		case "e", "estimates":
			_ = a.ListEstimates(ctx)

		case "addinvoice":
			_ = a.AddInvoice(ctx)

		case "i", "invoices":
			_ = a.ListInvoices(ctx)

		case "show":
			_ = a.Show(ctx)

		case "share":
			_ = a.Share(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
