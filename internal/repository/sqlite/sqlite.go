package sqlite

import (
	"os"
	"time"

	"log/slog"

	"github.com/shramsetu/shramsetu/internal/db"
	"github.com/shramsetu/shramsetu/pkg/repository"
)

// SQLiteRepo implements repository interfaces using the internal DB wrapper.
type SQLiteRepo struct {
	conn   *db.DB
	logger *slog.Logger
}

// Ensure SQLiteRepo implements the public interfaces.
var _ repository.WorkerRepo = (*SQLiteRepo)(nil)
var _ repository.CustomerRepo = (*SQLiteRepo)(nil)
var _ repository.HistoryRepo = (*SQLiteRepo)(nil)

func New(conn *db.DB, logger *slog.Logger) *SQLiteRepo {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}
	return &SQLiteRepo{conn: conn, logger: logger}
}

func now() int64 {
	return time.Now().UTC().Unix()
}
