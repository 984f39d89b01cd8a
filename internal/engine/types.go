package engine

import (
	"github.com/KirkDiggler/battle-api/internal/entities/pokemon"
)

// Outcome is how a fight ended
type Outcome string

// Fight outcomes
const (
	OutcomeKnockOut Outcome = "knockout"
	OutcomeDraw     Outcome = "draw"
)

// Event types published on the event bus
const (
	EventTurn     = "battle.turn"
	EventKnockOut = "battle.knockout"
	EventDraw     = "battle.draw"
)

const (
	// ArenaRounds is the number of battles in an arena
	ArenaRounds = 100

	// DefaultMaxTurns caps a fight that would otherwise never reach a knockout
	DefaultMaxTurns = 1000
)

// FightInput names the two combatants; First attacks first
type FightInput struct {
	First  *pokemon.Combatant
	Second *pokemon.Combatant
}

// FightOutput is the result of a single fight
type FightOutput struct {
	// Winner is nil when the fight was drawn
	Winner  *pokemon.Combatant
	Outcome Outcome
	Turns   int
	Log     []string
}

// MatchInput names the two trainers of a match
type MatchInput struct {
	Trainer1 *pokemon.Trainer
	Trainer2 *pokemon.Trainer
}

// MatchOutput is the result of a match. Winner fields are zero when a single challenge
// ends in a draw.
type MatchOutput struct {
	Winner           *pokemon.Trainer
	WinnerName       string
	WinnerLevel      int
	WinnerExperience int
	Draw             bool
	Rounds           int
	Log              []string
}

func (o *MatchOutput) crown(t *pokemon.Trainer) {
	o.Winner = t
	o.WinnerName = t.Name
	o.WinnerLevel = t.Level
	o.WinnerExperience = t.Experience
}
