package registry

import (
	"github.com/KirkDiggler/battle-api/internal/entities/pokemon"
)

// CreateMoveInput defines the request for adding a move to the catalog
type CreateMoveInput struct {
	Name       string
	Damage     int
	UsageLimit int
}

// CreateMoveOutput defines the response for adding a move to the catalog
type CreateMoveOutput struct {
	Move *pokemon.MoveData
}

// ListMovesInput defines the request for listing the move catalog
type ListMovesInput struct{}

// ListMovesOutput defines the response for listing the move catalog
type ListMovesOutput struct {
	Moves []*pokemon.MoveData
}

// CreateCombatantInput defines the request for creating a combatant
type CreateCombatantInput struct {
	Name      string
	LifePoint int
}

// CreateCombatantOutput defines the response for creating a combatant
type CreateCombatantOutput struct {
	Combatant *pokemon.Combatant
}

// ListCombatantsInput defines the request for listing combatants
type ListCombatantsInput struct{}

// ListCombatantsOutput defines the response for listing combatants
type ListCombatantsOutput struct {
	Combatants []*pokemon.Combatant
}

// LearnMoveInput defines the request for teaching a catalog move to a combatant
type LearnMoveInput struct {
	CombatantID string
	MoveID      string
}

// LearnMoveOutput defines the response for teaching a move
type LearnMoveOutput struct {
	Combatant *pokemon.Combatant
}

// HealCombatantInput defines the request for healing one combatant
type HealCombatantInput struct {
	CombatantID string
}

// HealCombatantOutput defines the response for healing one combatant
type HealCombatantOutput struct {
	Combatant *pokemon.Combatant
}

// CreateTrainerInput defines the request for creating a trainer
type CreateTrainerInput struct {
	Name string
}

// CreateTrainerOutput defines the response for creating a trainer
type CreateTrainerOutput struct {
	Trainer *pokemon.TrainerData
}

// ListTrainersInput defines the request for listing trainers
type ListTrainersInput struct{}

// ListTrainersOutput defines the response for listing trainers
type ListTrainersOutput struct {
	Trainers []*pokemon.TrainerData
}

// AddToRosterInput defines the request for adding a combatant to a roster
type AddToRosterInput struct {
	TrainerID   string
	CombatantID string
}

// AddToRosterOutput defines the response for adding a combatant to a roster
type AddToRosterOutput struct {
	Trainer *pokemon.TrainerData
}

// HealRosterInput defines the request for healing a trainer's roster
type HealRosterInput struct {
	TrainerID string
}

// HealRosterOutput defines the response for healing a trainer's roster
type HealRosterOutput struct {
	Trainer *pokemon.TrainerData
	// Healed lists each distinct combatant after healing, in roster order
	Healed []*pokemon.Combatant
}
