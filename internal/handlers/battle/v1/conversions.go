package v1

import (
	"github.com/KirkDiggler/battle-api/internal/api/battlev1"
	"github.com/KirkDiggler/battle-api/internal/entities/pokemon"
	"github.com/KirkDiggler/battle-api/internal/orchestrators/battle"
)

func convertMove(m *pokemon.MoveData) *battlev1.Move {
	if m == nil {
		return nil
	}
	return &battlev1.Move{
		ID:         m.ID,
		Name:       m.Name,
		Damage:     int32(m.Damage),
		UsageLimit: int32(m.UsageLimit),
	}
}

func convertCombatant(c *pokemon.Combatant) *battlev1.Combatant {
	if c == nil {
		return nil
	}

	moves := make([]*battlev1.KnownMove, 0, len(c.Moves))
	for _, m := range c.Moves {
		moves = append(moves, &battlev1.KnownMove{
			Name:       m.Name,
			Damage:     int32(m.Damage),
			UsageLimit: int32(m.UsageLimit),
			UsageCount: int32(m.UsageCount),
		})
	}

	return &battlev1.Combatant{
		ID:           c.ID,
		Name:         c.Name,
		LifePoint:    int32(c.LifePoint),
		MaxLifePoint: int32(c.MaxLifePoint),
		Moves:        moves,
	}
}

func convertCombatants(in []*pokemon.Combatant) []*battlev1.Combatant {
	out := make([]*battlev1.Combatant, 0, len(in))
	for _, c := range in {
		out = append(out, convertCombatant(c))
	}
	return out
}

func convertTrainer(t *pokemon.TrainerData) *battlev1.Trainer {
	if t == nil {
		return nil
	}
	return &battlev1.Trainer{
		ID:           t.ID,
		Name:         t.Name,
		Level:        int32(t.Level),
		Experience:   int32(t.Experience),
		CombatantIDs: t.CombatantIDs,
	}
}

func convertMatchResult(r *battle.MatchResult) *battlev1.MatchResponse {
	return &battlev1.MatchResponse{
		Mode:             string(r.Mode),
		WinnerID:         r.WinnerID,
		WinnerName:       r.WinnerName,
		WinnerLevel:      int32(r.WinnerLevel),
		WinnerExperience: int32(r.WinnerExperience),
		Draw:             r.Draw,
		Rounds:           int32(r.Rounds),
		Log:              r.Log,
		PlayedAt:         r.PlayedAt,
	}
}
