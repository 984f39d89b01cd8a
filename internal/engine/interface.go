// Package engine implements the battle rules: a single combatant-versus-combatant fight
// and the four match modes built on top of it. It works on fully resolved entities and
// knows nothing about storage or transport.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/battle-api/internal/engine Engine

import (
	"context"
)

// Engine runs fights and matches
type Engine interface {
	// Fight runs one battle to a knockout or a draw. The first combatant attacks first.
	Fight(ctx context.Context, input *FightInput) (*FightOutput, error)

	// RandomChallenge heals both rosters and fights one random pick from each
	RandomChallenge(ctx context.Context, input *MatchInput) (*MatchOutput, error)

	// DeterministicChallenge fights each trainer's healthiest combatant without healing
	DeterministicChallenge(ctx context.Context, input *MatchInput) (*MatchOutput, error)

	// RandomArena plays ArenaRounds random challenges and ranks the trainers
	RandomArena(ctx context.Context, input *MatchInput) (*MatchOutput, error)

	// DeterministicArena plays up to ArenaRounds deterministic challenges and ranks the
	// trainers, ending early once a trainer has nobody left to send out
	DeterministicArena(ctx context.Context, input *MatchInput) (*MatchOutput, error)
}
