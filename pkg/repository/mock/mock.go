package mock

import (
	"context"

	"github.com/shramsetu/shramsetu/internal/models"
	"github.com/shramsetu/shramsetu/pkg/repository"
)

// Test helpers and mocks
type Mocks struct {
	Workers   *WorkerRepo
	Customers *CustomerRepo
	History   *HistoryRepo
}

func NewMocks() *Mocks {
	return &Mocks{
		Workers:   &WorkerRepo{},
		Customers: &CustomerRepo{},
		History:   &HistoryRepo{},
	}
}

type WorkerRepo struct {
	Stored    *models.Worker
	CreateErr error
	GetErr    error
	UpdateErr error
	ListErr   error
}

func (m *WorkerRepo) CreateWorker(ctx context.Context, w *models.Worker) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	stored := *w
	stored.ID = 1
	m.Stored = &stored
	return 1, nil
}

func (m *WorkerRepo) GetWorker(ctx context.Context, id int64) (*models.Worker, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.Stored != nil && m.Stored.ID == id {
		return m.Stored, nil
	}
	return nil, nil
}

func (m *WorkerRepo) ListWorkers(ctx context.Context) ([]models.Worker, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	if m.Stored == nil {
		return nil, nil
	}
	return []models.Worker{*m.Stored}, nil
}

func (m *WorkerRepo) UpdateWorker(ctx context.Context, id int64, p models.WorkerPatch) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	if m.Stored == nil || m.Stored.ID != id {
		return repository.ErrNotFound
	}
	if p.Number != nil {
		m.Stored.Number = *p.Number
	}
	if p.Location != nil {
		m.Stored.Location = *p.Location
	}
	if p.Skill != nil {
		m.Stored.Skill = *p.Skill
	}
	return nil
}

func (m *WorkerRepo) GetWorkerByCredentials(ctx context.Context, number, adhaarID string) (*models.Worker, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.Stored != nil && m.Stored.Number == number && m.Stored.AdhaarID == adhaarID {
		return m.Stored, nil
	}
	return nil, nil
}

type CustomerRepo struct {
	Stored    *models.Customer
	CreateErr error
	GetErr    error
	UpdateErr error
}

func (m *CustomerRepo) CreateCustomer(ctx context.Context, c *models.Customer) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	stored := *c
	stored.ID = 1
	m.Stored = &stored
	return 1, nil
}

func (m *CustomerRepo) GetCustomer(ctx context.Context, id int64) (*models.Customer, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.Stored != nil && m.Stored.ID == id {
		return m.Stored, nil
	}
	return nil, nil
}

func (m *CustomerRepo) UpdateCustomer(ctx context.Context, id int64, p models.CustomerPatch) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	if m.Stored == nil || m.Stored.ID != id {
		return repository.ErrNotFound
	}
	if p.Number != nil {
		m.Stored.Number = *p.Number
	}
	if p.Location != nil {
		m.Stored.Location = *p.Location
	}
	return nil
}

type HistoryRepo struct {
	Entries []models.WorkHistoryEntry
	AddErr  error
	ListErr error
}

func (m *HistoryRepo) AddHistoryEntry(ctx context.Context, e *models.WorkHistoryEntry) (int64, error) {
	if m.AddErr != nil {
		return 0, m.AddErr
	}
	e.ID = int64(len(m.Entries) + 1)
	m.Entries = append(m.Entries, *e)
	return e.ID, nil
}

func (m *HistoryRepo) ListHistoryByWorker(ctx context.Context, workerID int64) ([]models.WorkHistoryEntry, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var out []models.WorkHistoryEntry
	for _, e := range m.Entries {
		if e.WorkerID == workerID {
			out = append(out, e)
		}
	}
	return out, nil
}

// Ensure mocks satisfy the public interfaces.
var _ repository.WorkerRepo = (*WorkerRepo)(nil)
var _ repository.CustomerRepo = (*CustomerRepo)(nil)
var _ repository.HistoryRepo = (*HistoryRepo)(nil)
