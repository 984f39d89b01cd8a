// Package combatants provides the interface for combatant persistence
package combatants

//go:generate mockgen -destination=mock/mock_repository.go -package=combatantsmock github.com/KirkDiggler/battle-api/internal/repositories/combatants Repository

import (
	"context"

	"github.com/KirkDiggler/battle-api/internal/entities/pokemon"
)

// Repository defines the interface for combatant persistence
type Repository interface {
	// Create stores a new combatant
	// Returns errors.InvalidArgument for a nil combatant or empty ID
	// Returns errors.AlreadyExists if a combatant with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a combatant by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the combatant doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing combatant
	// Returns errors.InvalidArgument for a nil combatant or empty ID
	// Returns errors.NotFound if the combatant doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// List retrieves every combatant in creation order
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a combatant
type CreateInput struct {
	Combatant *pokemon.Combatant
}

// CreateOutput defines the output for creating a combatant
type CreateOutput struct {
	Combatant *pokemon.Combatant
}

// GetInput defines the input for getting a combatant
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a combatant
type GetOutput struct {
	Combatant *pokemon.Combatant
}

// UpdateInput defines the input for updating a combatant
type UpdateInput struct {
	Combatant *pokemon.Combatant
}

// UpdateOutput defines the output for updating a combatant
type UpdateOutput struct {
	Combatant *pokemon.Combatant
}

// ListInput defines the input for listing combatants
type ListInput struct{}

// ListOutput defines the output for listing combatants
type ListOutput struct {
	Combatants []*pokemon.Combatant
}
