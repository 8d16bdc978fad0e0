package repository

import (
	"context"

	"github.com/shramsetu/shramsetu/internal/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

type WorkerRepo interface {
	CreateWorker(ctx context.Context, w *models.Worker) (int64, error)
	GetWorker(ctx context.Context, id int64) (*models.Worker, error)
	ListWorkers(ctx context.Context) ([]models.Worker, error)
	UpdateWorker(ctx context.Context, id int64, p models.WorkerPatch) error
	GetWorkerByCredentials(ctx context.Context, number, adhaarID string) (*models.Worker, error)
}

type CustomerRepo interface {
	CreateCustomer(ctx context.Context, c *models.Customer) (int64, error)
	GetCustomer(ctx context.Context, id int64) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, id int64, p models.CustomerPatch) error
}

type HistoryRepo interface {
	AddHistoryEntry(ctx context.Context, e *models.WorkHistoryEntry) (int64, error)
	ListHistoryByWorker(ctx context.Context, workerID int64) ([]models.WorkHistoryEntry, error)
}
