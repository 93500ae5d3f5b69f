package invoices

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fieldware/fieldbill/internal/common"
	"github.com/fieldware/fieldbill/internal/dbx"
	"github.com/fieldware/fieldbill/internal/models"
)

// SQLiteRepository implements Repository over a dbx.DBTX
// (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a repository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, in *models.Invoice) error {
	items, err := json.Marshal(in.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal line items: %w", err)
	}

	query := `INSERT INTO invoices
	          (id, invoice_number, customer_id, items, subtotal, tax_rate,
	           tax_amount, total, notes, payment_terms, due_date, status,
	           created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		in.ID, in.InvoiceNumber, in.CustomerID, string(items), in.Subtotal,
		in.TaxRate, in.TaxAmount, in.Total, in.Notes, in.PaymentTerms,
		in.DueDate, string(in.Status), in.CreatedAt, in.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert invoice: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Invoice, error) {
	rows, err := r.db.QueryContext(ctx, selectColumns+` FROM invoices ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to select invoices: %w", err)
	}
	defer rows.Close()

	var result []models.Invoice
	for rows.Next() {
		in, err := scanInvoice(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *in)
	}
	return result, rows.Err()
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	row := r.db.QueryRowContext(ctx, selectColumns+` FROM invoices WHERE id = ?`, id)

	in, err := scanInvoice(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return in, nil
}

func (r *SQLiteRepository) UpdateStatus(ctx context.Context, id string, status models.InvoiceStatus, updatedAt string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE invoices SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), updatedAt, id)
	if err != nil {
		return fmt.Errorf("failed to update invoice status: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra != 1 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM invoices`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count invoices: %w", err)
	}
	return n, nil
}

const selectColumns = `SELECT id, invoice_number, customer_id, items, subtotal, tax_rate,
	tax_amount, total, notes, payment_terms, due_date, status, created_at, updated_at`

func scanInvoice(scan func(dest ...any) error) (*models.Invoice, error) {
	in := &models.Invoice{}
	var items, status string
	if err := scan(&in.ID, &in.InvoiceNumber, &in.CustomerID, &items,
		&in.Subtotal, &in.TaxRate, &in.TaxAmount, &in.Total, &in.Notes,
		&in.PaymentTerms, &in.DueDate, &status, &in.CreatedAt, &in.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(items), &in.Items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal line items: %w", err)
	}
	in.Status = models.InvoiceStatus(status)
	return in, nil
}
