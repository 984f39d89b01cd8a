// Package recordstore provides the JSON record storage shared by the entity repositories.
// Records are stored as JSON in both backends, so a value read back is always an
// independent copy and the in-memory and Redis stores behave the same way.
package recordstore

import (
	"context"
)

// Record is anything stored under its own ID
type Record interface {
	GetID() string
}

// Store keeps records of one kind in creation order
type Store[T Record] interface {
	// Create stores a new record
	// Returns errors.InvalidArgument for a nil record or empty ID
	// Returns errors.AlreadyExists if the ID is taken
	Create(ctx context.Context, record T) error

	// Get loads a record by ID
	// Returns errors.NotFound if the record doesn't exist
	Get(ctx context.Context, id string) (T, error)

	// Update replaces an existing record
	// Returns errors.NotFound if the record doesn't exist
	Update(ctx context.Context, record T) error

	// List returns every record in creation order
	List(ctx context.Context) ([]T, error)
}
