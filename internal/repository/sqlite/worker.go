package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shramsetu/shramsetu/internal/models"
	"github.com/shramsetu/shramsetu/pkg/repository"
)

func (r *SQLiteRepo) CreateWorker(ctx context.Context, w *models.Worker) (int64, error) {
	if w == nil {
		return 0, fmt.Errorf("worker is nil")
	}

	w.CreatedAt = now()
	res, err := r.conn.Exec(ctx, `INSERT INTO workers (name, number, location, skill, adhaar_id, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		w.Name, w.Number, w.Location, w.Skill, w.AdhaarID, w.CreatedAt)
	if err != nil {
		return 0, translate(err)
	}

	return res.LastInsertId()
}

func (r *SQLiteRepo) GetWorker(ctx context.Context, id int64) (*models.Worker, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, name, number, location, skill, adhaar_id, created_at FROM workers WHERE id = ?`, id)
	return scanWorker(row)
}

func (r *SQLiteRepo) ListWorkers(ctx context.Context) ([]models.Worker, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, name, number, location, skill, adhaar_id, created_at FROM workers ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Worker
	for rows.Next() {
		var w models.Worker
		if err := rows.Scan(&w.ID, &w.Name, &w.Number, &w.Location, &w.Skill, &w.AdhaarID, &w.CreatedAt); err != nil {
			return nil, err
		}

		out = append(out, w)
	}

	return out, rows.Err()
}

// UpdateWorker applies coalesce semantics: nil patch fields keep the stored
// value. Name and adhaar_id are never part of the statement.
func (r *SQLiteRepo) UpdateWorker(ctx context.Context, id int64, p models.WorkerPatch) error {
	res, err := r.conn.Exec(ctx, `UPDATE workers SET number = COALESCE(?, number), location = COALESCE(?, location), skill = COALESCE(?, skill) WHERE id = ?`,
		p.Number, p.Location, p.Skill, id)
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

func (r *SQLiteRepo) GetWorkerByCredentials(ctx context.Context, number, adhaarID string) (*models.Worker, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, name, number, location, skill, adhaar_id, created_at FROM workers WHERE number = ? AND adhaar_id = ?`, number, adhaarID)
	return scanWorker(row)
}

func scanWorker(row *sql.Row) (*models.Worker, error) {
	var w models.Worker
	if err := row.Scan(&w.ID, &w.Name, &w.Number, &w.Location, &w.Skill, &w.AdhaarID, &w.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	return &w, nil
}
