package sqlite

import (
	"context"
	"fmt"

	"github.com/shramsetu/shramsetu/internal/models"
)

const defaultHistoryStatus = "Completed"

func (r *SQLiteRepo) AddHistoryEntry(ctx context.Context, e *models.WorkHistoryEntry) (int64, error) {
	if e == nil {
		return 0, fmt.Errorf("history entry is nil")
	}

	if e.Status == "" {
		e.Status = defaultHistoryStatus
	}
	if e.Date == 0 {
		e.Date = now()
	}

	res, err := r.conn.Exec(ctx, `INSERT INTO work_history (worker_id, job_title, wage, date, status) VALUES (?, ?, ?, ?, ?)`,
		e.WorkerID, e.JobTitle, e.Wage, e.Date, e.Status)
	if err != nil {
		return 0, translate(err)
	}

	return res.LastInsertId()
}

// ListHistoryByWorker returns entries most recent first. An unknown worker id
// yields an empty slice, not an error.
func (r *SQLiteRepo) ListHistoryByWorker(ctx context.Context, workerID int64) ([]models.WorkHistoryEntry, error) {
	rows, err := r.conn.QueryRows(ctx, `SELECT id, worker_id, job_title, wage, date, status FROM work_history WHERE worker_id = ? ORDER BY date DESC, id DESC`, workerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.WorkHistoryEntry
	for rows.Next() {
		var e models.WorkHistoryEntry
		if err := rows.Scan(&e.ID, &e.WorkerID, &e.JobTitle, &e.Wage, &e.Date, &e.Status); err != nil {
			return nil, err
		}

		out = append(out, e)
	}

	return out, rows.Err()
}
