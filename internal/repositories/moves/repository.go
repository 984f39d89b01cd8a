// Package moves provides the interface for move catalog persistence
package moves

//go:generate mockgen -destination=mock/mock_repository.go -package=movesmock github.com/KirkDiggler/battle-api/internal/repositories/moves Repository

import (
	"context"

	"github.com/KirkDiggler/battle-api/internal/entities/pokemon"
)

// Repository defines the interface for move catalog persistence
type Repository interface {
	// Create stores a new catalog entry
	// Returns errors.InvalidArgument for a nil entry or empty ID
	// Returns errors.AlreadyExists if an entry with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a catalog entry by ID
	// Returns errors.NotFound if the entry doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List retrieves every catalog entry in creation order
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a catalog entry
type CreateInput struct {
	Move *pokemon.MoveData
}

// CreateOutput defines the output for creating a catalog entry
type CreateOutput struct {
	Move *pokemon.MoveData
}

// GetInput defines the input for getting a catalog entry
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a catalog entry
type GetOutput struct {
	Move *pokemon.MoveData
}

// ListInput defines the input for listing the catalog
type ListInput struct{}

// ListOutput defines the output for listing the catalog
type ListOutput struct {
	Moves []*pokemon.MoveData
}
