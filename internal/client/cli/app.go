package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log"
	"os"

	"github.com/fieldware/fieldbill/internal/client/config"
	"github.com/fieldware/fieldbill/internal/client/repositories/customers"
	"github.com/fieldware/fieldbill/internal/client/repositories/estimates"
	"github.com/fieldware/fieldbill/internal/client/repositories/invoices"
	"github.com/fieldware/fieldbill/internal/client/services"
	"github.com/fieldware/fieldbill/internal/client/store"
	"github.com/fieldware/fieldbill/internal/share"

	_ "modernc.org/sqlite"
)

type App struct {
	config    *config.Config
	customers services.CustomerService
	estimates services.EstimateService
	invoices  services.InvoiceService
	db        *sql.DB
	reader    *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	db, err := store.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	customerRepo := customers.NewSQLiteRepository(db)
	estimateRepo := estimates.NewSQLiteRepository(db)
	invoiceRepo := invoices.NewSQLiteRepository(db)

	builder := share.NewBuilder(c.ShareBaseURL)

	return &App{
		config:    c,
		customers: services.NewCustomerService(customerRepo),
		estimates: services.NewEstimateService(estimateRepo, customerRepo, builder, c.BusinessName),
		invoices:  services.NewInvoiceService(db, invoiceRepo, customerRepo, builder, c.BusinessName),
		db:        db,
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.db.Close(); err != nil {
			log.Printf("error closing database: %v", err)
		}
	}()

	log.Println("Welcome to FieldBill CLI (type 'help' for commands)")
	runREPL(ctx, a, bufio.NewScanner(os.Stdin))
}
