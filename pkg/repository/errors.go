package repository

import "errors"

// Sentinel errors surfaced by store implementations. Handlers match these
// with errors.Is instead of inspecting error text.
var (
	// ErrNotFound is returned by updates that matched zero rows.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateKey is returned when an insert violates a uniqueness
	// constraint (adhaar_id on workers or customers).
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrForeignKey is returned when an insert references a missing parent
	// row (work_history.worker_id).
	ErrForeignKey = errors.New("foreign key violation")
)
