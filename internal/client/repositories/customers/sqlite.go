package customers

import (
	"context"
	"database/sql"
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

func (r *SQLiteRepository) Insert(ctx context.Context, c *models.Customer) error {
	query := `INSERT INTO customers (id, name, phone, email, address, created_at)
	          VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Name, c.Phone, c.Email, c.Address, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert customer: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Customer, error) {
	query := `SELECT id, name, phone, email, address, created_at
	          FROM customers ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select customers: %w", err)
	}
	defer rows.Close()

	var result []models.Customer
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	query := `SELECT id, name, phone, email, address, created_at
	          FROM customers WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	c := &models.Customer{}
	if err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return c, nil
}
