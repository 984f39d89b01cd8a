// Package trainers provides the interface for trainer persistence
package trainers

//go:generate mockgen -destination=mock/mock_repository.go -package=trainersmock github.com/KirkDiggler/battle-api/internal/repositories/trainers Repository

import (
	"context"

	"github.com/KirkDiggler/battle-api/internal/entities/pokemon"
)

// Repository defines the interface for trainer persistence
type Repository interface {
	// Create stores a new trainer
	// Returns errors.InvalidArgument for a nil trainer or empty ID
	// Returns errors.AlreadyExists if a trainer with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a trainer by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the trainer doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing trainer
	// Returns errors.InvalidArgument for a nil trainer or empty ID
	// Returns errors.NotFound if the trainer doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// List retrieves every trainer in creation order
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a trainer
type CreateInput struct {
	Trainer *pokemon.TrainerData
}

// CreateOutput defines the output for creating a trainer
type CreateOutput struct {
	Trainer *pokemon.TrainerData
}

// GetInput defines the input for getting a trainer
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a trainer
type GetOutput struct {
	Trainer *pokemon.TrainerData
}

// UpdateInput defines the input for updating a trainer
type UpdateInput struct {
	Trainer *pokemon.TrainerData
}

// UpdateOutput defines the output for updating a trainer
type UpdateOutput struct {
	Trainer *pokemon.TrainerData
}

// ListInput defines the input for listing trainers
type ListInput struct{}

// ListOutput defines the output for listing trainers
type ListOutput struct {
	Trainers []*pokemon.TrainerData
}
