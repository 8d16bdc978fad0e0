package models

// Worker is a registered service provider. Name and AdhaarID are fixed at
// registration; only number, location and skill may change afterwards.
type Worker struct {
	ID        int64  `json:"id" db:"id"`
	Name      string `json:"name" db:"name" validate:"required"`
	Number    string `json:"number" db:"number" validate:"required"`
	Location  string `json:"location" db:"location" validate:"required"`
	Skill     string `json:"skill" db:"skill" validate:"required"`
	AdhaarID  string `json:"adhaar_id" db:"adhaar_id" validate:"required"`
	CreatedAt int64  `json:"created_at" db:"created_at"`
}

// Customer mirrors Worker minus skill. Its adhaar_id uniqueness space is
// independent from the workers table.
type Customer struct {
	ID        int64  `json:"id" db:"id"`
	Name      string `json:"name" db:"name" validate:"required"`
	Number    string `json:"number" db:"number" validate:"required"`
	Location  string `json:"location" db:"location" validate:"required"`
	AdhaarID  string `json:"adhaar_id" db:"adhaar_id" validate:"required"`
	CreatedAt int64  `json:"created_at" db:"created_at"`
}

// WorkHistoryEntry is an append-only record of a job performed by a worker.
// Wage is in currency minor units.
type WorkHistoryEntry struct {
	ID       int64  `json:"id" db:"id"`
	WorkerID int64  `json:"worker_id" db:"worker_id"`
	JobTitle string `json:"job_title" db:"job_title"`
	Wage     int64  `json:"wage" db:"wage"`
	Date     int64  `json:"date" db:"date"`
	Status   string `json:"status" db:"status"`
}

// WorkerPatch carries the partial-update fields for a worker. A nil field
// leaves the stored value unchanged.
type WorkerPatch struct {
	Number   *string `json:"number,omitempty"`
	Location *string `json:"location,omitempty"`
	Skill    *string `json:"skill,omitempty"`
}

// CustomerPatch carries the partial-update fields for a customer.
type CustomerPatch struct {
	Number   *string `json:"number,omitempty"`
	Location *string `json:"location,omitempty"`
}
