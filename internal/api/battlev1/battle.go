package battlev1

import (
	"time"
)

// Move is a move catalog entry
type Move struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Damage     int32  `json:"damage"`
	UsageLimit int32  `json:"usage_limit"`
}

// KnownMove is a move a combatant has learned, with its quota state
type KnownMove struct {
	Name       string `json:"name"`
	Damage     int32  `json:"damage"`
	UsageLimit int32  `json:"usage_limit"`
	UsageCount int32  `json:"usage_count"`
}

// Combatant is a creature that can be fielded by trainers
type Combatant struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	LifePoint    int32        `json:"life_point"`
	MaxLifePoint int32        `json:"max_life_point"`
	Moves        []*KnownMove `json:"moves,omitempty"`
}

// Trainer owns a roster of combatant references
type Trainer struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Level        int32    `json:"level"`
	Experience   int32    `json:"experience"`
	CombatantIDs []string `json:"combatant_ids,omitempty"`
}

// CreateMoveRequest adds a move to the catalog
type CreateMoveRequest struct {
	Name       string `json:"name"`
	Damage     int32  `json:"damage"`
	UsageLimit int32  `json:"usage_limit"`
}

// CreateMoveResponse returns the stored move
type CreateMoveResponse struct {
	Move *Move `json:"move"`
}

// ListMovesRequest lists the catalog
type ListMovesRequest struct{}

// ListMovesResponse returns the catalog in creation order
type ListMovesResponse struct {
	Moves []*Move `json:"moves"`
}

// CreateCombatantRequest creates a combatant at full health
type CreateCombatantRequest struct {
	Name      string `json:"name"`
	LifePoint int32  `json:"life_point"`
}

// CreateCombatantResponse returns the stored combatant
type CreateCombatantResponse struct {
	Combatant *Combatant `json:"combatant"`
}

// ListCombatantsRequest lists combatants
type ListCombatantsRequest struct{}

// ListCombatantsResponse returns combatants in creation order
type ListCombatantsResponse struct {
	Combatants []*Combatant `json:"combatants"`
}

// LearnMoveRequest teaches a catalog move to a combatant
type LearnMoveRequest struct {
	CombatantID string `json:"combatant_id"`
	MoveID      string `json:"move_id"`
}

// LearnMoveResponse returns the updated combatant
type LearnMoveResponse struct {
	Combatant *Combatant `json:"combatant"`
}

// HealCombatantRequest heals one combatant
type HealCombatantRequest struct {
	CombatantID string `json:"combatant_id"`
}

// HealCombatantResponse returns the healed combatant
type HealCombatantResponse struct {
	Combatant *Combatant `json:"combatant"`
}

// CreateTrainerRequest creates a level 1 trainer
type CreateTrainerRequest struct {
	Name string `json:"name"`
}

// CreateTrainerResponse returns the stored trainer
type CreateTrainerResponse struct {
	Trainer *Trainer `json:"trainer"`
}

// ListTrainersRequest lists trainers
type ListTrainersRequest struct{}

// ListTrainersResponse returns trainers in creation order
type ListTrainersResponse struct {
	Trainers []*Trainer `json:"trainers"`
}

// AddToRosterRequest appends a combatant to a trainer's roster
type AddToRosterRequest struct {
	TrainerID   string `json:"trainer_id"`
	CombatantID string `json:"combatant_id"`
}

// AddToRosterResponse returns the updated trainer
type AddToRosterResponse struct {
	Trainer *Trainer `json:"trainer"`
}

// HealRosterRequest heals a trainer's roster
type HealRosterRequest struct {
	TrainerID string `json:"trainer_id"`
}

// HealRosterResponse returns the trainer and each distinct healed combatant
type HealRosterResponse struct {
	Trainer *Trainer     `json:"trainer"`
	Healed  []*Combatant `json:"healed"`
}

// MatchRequest names the two trainers of a match
type MatchRequest struct {
	Trainer1ID string `json:"trainer1_id"`
	Trainer2ID string `json:"trainer2_id"`
}

// MatchResponse reports a played match
type MatchResponse struct {
	Mode             string    `json:"mode"`
	WinnerID         string    `json:"winner_id,omitempty"`
	WinnerName       string    `json:"winner_name,omitempty"`
	WinnerLevel      int32     `json:"winner_level,omitempty"`
	WinnerExperience int32     `json:"winner_experience"`
	Draw             bool      `json:"draw"`
	Rounds           int32     `json:"rounds"`
	Log              []string  `json:"log"`
	PlayedAt         time.Time `json:"played_at"`
}
