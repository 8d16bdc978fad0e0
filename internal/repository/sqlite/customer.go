package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shramsetu/shramsetu/internal/models"
	"github.com/shramsetu/shramsetu/pkg/repository"
)

func (r *SQLiteRepo) CreateCustomer(ctx context.Context, c *models.Customer) (int64, error) {
	if c == nil {
		return 0, fmt.Errorf("customer is nil")
	}

	c.CreatedAt = now()
	res, err := r.conn.Exec(ctx, `INSERT INTO customers (name, number, location, adhaar_id, created_at) VALUES (?, ?, ?, ?, ?)`,
		c.Name, c.Number, c.Location, c.AdhaarID, c.CreatedAt)
	if err != nil {
		return 0, translate(err)
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetCustomer(ctx context.Context, id int64) (*models.Customer, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, name, number, location, adhaar_id, created_at FROM customers WHERE id = ?`, id)

	var c models.Customer
	if err := row.Scan(&c.ID, &c.Name, &c.Number, &c.Location, &c.AdhaarID, &c.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &c, nil
}

func (r *SQLiteRepo) UpdateCustomer(ctx context.Context, id int64, p models.CustomerPatch) error {
	res, err := r.conn.Exec(ctx, `UPDATE customers SET number = COALESCE(?, number), location = COALESCE(?, location) WHERE id = ?`,
		p.Number, p.Location, id)
	if err != nil {
		return translate(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}

	return nil
}
