package engine

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/battle-api/internal/entities/pokemon"
	"github.com/KirkDiggler/battle-api/internal/errors"
)

func validateMatch(input *MatchInput) error {
	vb := errors.NewValidationBuilder()
	if input == nil {
		vb.RequiredField("input")
		return vb.Build()
	}
	if input.Trainer1 == nil {
		vb.RequiredField("trainer1")
	}
	if input.Trainer2 == nil {
		vb.RequiredField("trainer2")
	}
	return vb.Build()
}

// RandomChallenge heals both rosters, fights one random alive combatant from each and
// awards the winning trainer one experience point
func (e *engine) RandomChallenge(ctx context.Context, input *MatchInput) (*MatchOutput, error) {
	if err := validateMatch(input); err != nil {
		return nil, err
	}
	t1, t2 := input.Trainer1, input.Trainer2

	out := &MatchOutput{
		Log: []string{fmt.Sprintf("=== RANDOM CHALLENGE: %s vs %s ===", t1.Name, t2.Name)},
	}

	t1.HealRoster()
	t2.HealRoster()

	p1, p2, err := e.randomPicks(t1, t2)
	if err != nil {
		return nil, err
	}
	if p1 == nil || p2 == nil {
		return nil, pokemon.NoCombatantsAvailable(t1.Name, t2.Name)
	}

	if err := e.challenge(ctx, out, t1, t2, p1, p2); err != nil {
		return nil, err
	}
	return out, nil
}

// DeterministicChallenge fights each trainer's healthiest alive combatant as-is
func (e *engine) DeterministicChallenge(ctx context.Context, input *MatchInput) (*MatchOutput, error) {
	if err := validateMatch(input); err != nil {
		return nil, err
	}
	t1, t2 := input.Trainer1, input.Trainer2

	out := &MatchOutput{
		Log: []string{fmt.Sprintf("=== DETERMINISTIC CHALLENGE: %s vs %s ===", t1.Name, t2.Name)},
	}

	p1 := t1.PickHealthiest()
	p2 := t2.PickHealthiest()
	if p1 == nil || p2 == nil {
		return nil, pokemon.NoCombatantsAvailable(t1.Name, t2.Name)
	}
	out.Log = append(out.Log,
		fmt.Sprintf("%s picks %s (%d HP)", t1.Name, p1.Name, p1.LifePoint),
		fmt.Sprintf("%s picks %s (%d HP)", t2.Name, p2.Name, p2.LifePoint),
	)

	if err := e.challenge(ctx, out, t1, t2, p1, p2); err != nil {
		return nil, err
	}
	return out, nil
}

// challenge runs one fight and settles experience for a single-challenge mode
func (e *engine) challenge(ctx context.Context, out *MatchOutput, t1, t2 *pokemon.Trainer, p1, p2 *pokemon.Combatant) error {
	winner, err := e.round(ctx, out, t1, t2, p1, p2)
	if err != nil {
		return err
	}
	out.Rounds = 1

	if winner == nil {
		out.Draw = true
		out.Log = append(out.Log, "Draw: no experience awarded")
		return nil
	}

	out.crown(winner)
	out.Log = append(out.Log, fmt.Sprintf("%s wins! (level %d, XP %d)", winner.Name, winner.Level, winner.Experience))
	return nil
}

// round fights p1 against p2 and gives the winning trainer its experience. A nil trainer
// means the fight was drawn.
func (e *engine) round(ctx context.Context, out *MatchOutput, t1, t2 *pokemon.Trainer, p1, p2 *pokemon.Combatant) (*pokemon.Trainer, error) {
	fight, err := e.Fight(ctx, &FightInput{First: p1, Second: p2})
	if err != nil {
		return nil, err
	}
	out.Log = append(out.Log, fight.Log...)

	if fight.Outcome == OutcomeDraw {
		return nil, nil
	}

	winner := t2
	if fight.Winner == p1 {
		winner = t1
	}
	winner.GainExperience(pokemon.ExperiencePerVictory)
	return winner, nil
}

func (e *engine) randomPicks(t1, t2 *pokemon.Trainer) (*pokemon.Combatant, *pokemon.Combatant, error) {
	p1, err := t1.PickRandomAlive(e.roller)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to pick a combatant for %s", t1.Name)
	}
	p2, err := t2.PickRandomAlive(e.roller)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to pick a combatant for %s", t2.Name)
	}
	return p1, p2, nil
}

// RandomArena plays ArenaRounds random rounds, healing both rosters before each one.
// Rounds where either side has nobody to pick are skipped.
func (e *engine) RandomArena(ctx context.Context, input *MatchInput) (*MatchOutput, error) {
	if err := validateMatch(input); err != nil {
		return nil, err
	}
	t1, t2 := input.Trainer1, input.Trainer2

	out := &MatchOutput{
		Log: []string{fmt.Sprintf("=== ARENA 1: %d random battles (%s vs %s) ===", ArenaRounds, t1.Name, t2.Name)},
	}

	for i := 1; i <= ArenaRounds; i++ {
		t1.HealRoster()
		t2.HealRoster()

		p1, p2, err := e.randomPicks(t1, t2)
		if err != nil {
			return nil, err
		}
		if p1 == nil || p2 == nil {
			out.Log = append(out.Log, fmt.Sprintf("Round %d skipped: no combatant available", i))
			continue
		}

		out.Log = append(out.Log, fmt.Sprintf("--- Round %d ---", i))
		if _, err := e.round(ctx, out, t1, t2, p1, p2); err != nil {
			return nil, err
		}
		out.Rounds++
	}

	e.rank(out, t1, t2, "Arena 1")
	return out, nil
}

// DeterministicArena plays up to ArenaRounds rounds between the healthiest combatants
// without healing. The arena stops as soon as either trainer has nobody left.
func (e *engine) DeterministicArena(ctx context.Context, input *MatchInput) (*MatchOutput, error) {
	if err := validateMatch(input); err != nil {
		return nil, err
	}
	t1, t2 := input.Trainer1, input.Trainer2

	out := &MatchOutput{
		Log: []string{fmt.Sprintf("=== ARENA 2: %d deterministic battles (%s vs %s) ===", ArenaRounds, t1.Name, t2.Name)},
	}

	for i := 1; i <= ArenaRounds; i++ {
		p1 := t1.PickHealthiest()
		p2 := t2.PickHealthiest()
		if p1 == nil || p2 == nil {
			winner := t2
			if p1 != nil {
				winner = t1
			}
			out.crown(winner)
			out.Log = append(out.Log, fmt.Sprintf("%s wins Arena 2: opponent has no combatant left after %d rounds", winner.Name, out.Rounds))
			return out, nil
		}

		out.Log = append(out.Log, fmt.Sprintf("--- Round %d ---", i))
		if _, err := e.round(ctx, out, t1, t2, p1, p2); err != nil {
			return nil, err
		}
		out.Rounds++
	}

	e.rank(out, t1, t2, "Arena 2")
	return out, nil
}

// rank crowns the higher trainer after a full arena; ties on level and experience go to t1
func (e *engine) rank(out *MatchOutput, t1, t2 *pokemon.Trainer, arena string) {
	winner := t2
	if t1.Outranks(t2) {
		winner = t1
	}
	out.crown(winner)
	out.Log = append(out.Log,
		fmt.Sprintf("%s: level %d, XP %d", t1.Name, t1.Level, t1.Experience),
		fmt.Sprintf("%s: level %d, XP %d", t2.Name, t2.Level, t2.Experience),
		fmt.Sprintf("%s wins %s!", winner.Name, arena),
	)
}
