package estimates

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

func (r *SQLiteRepository) Insert(ctx context.Context, e *models.Estimate) error {
	items, err := json.Marshal(e.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal line items: %w", err)
	}

	query := `INSERT INTO estimates
	          (id, customer_id, items, subtotal, tax_rate, tax_amount, total,
	           notes, expiration_date, status, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		e.ID, e.CustomerID, string(items), e.Subtotal, e.TaxRate, e.TaxAmount,
		e.Total, e.Notes, e.ExpirationDate, string(e.Status), e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert estimate: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Estimate, error) {
	rows, err := r.db.QueryContext(ctx, selectColumns+` FROM estimates ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to select estimates: %w", err)
	}
	defer rows.Close()

	var result []models.Estimate
	for rows.Next() {
		e, err := scanEstimate(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *e)
	}
	return result, rows.Err()
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Estimate, error) {
	row := r.db.QueryRowContext(ctx, selectColumns+` FROM estimates WHERE id = ?`, id)

	e, err := scanEstimate(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return e, nil
}

func (r *SQLiteRepository) UpdateStatus(ctx context.Context, id string, status models.EstimateStatus, updatedAt string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE estimates SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), updatedAt, id)
	if err != nil {
		return fmt.Errorf("failed to update estimate status: %w", err)
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

const selectColumns = `SELECT id, customer_id, items, subtotal, tax_rate, tax_amount,
	total, notes, expiration_date, status, created_at, updated_at`

func scanEstimate(scan func(dest ...any) error) (*models.Estimate, error) {
	e := &models.Estimate{}
	var items, status string
	if err := scan(&e.ID, &e.CustomerID, &items, &e.Subtotal, &e.TaxRate,
		&e.TaxAmount, &e.Total, &e.Notes, &e.ExpirationDate, &status,
		&e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(items), &e.Items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal line items: %w", err)
	}
	e.Status = models.EstimateStatus(status)
	return e, nil
}
