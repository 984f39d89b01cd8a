package testutils

import (
	"github.com/KirkDiggler/battle-api/internal/entities/pokemon"
)

// Default fixture values
const (
	TestMoveDamage     = 10
	TestMoveUsageLimit = 99
	TestLifePoint      = 100
)

// CreateTestCombatant creates a combatant at full health knowing the given moves
func CreateTestCombatant(id, name string, lifePoint int, moves ...*pokemon.Move) *pokemon.Combatant {
	c := pokemon.NewCombatant(id, name, lifePoint)
	c.Moves = append(c.Moves, moves...)
	return c
}

// CreateTestFighter creates a 100 HP combatant with a single 10 damage / 99 use move
func CreateTestFighter(id, name string) *pokemon.Combatant {
	return CreateTestCombatant(id, name, TestLifePoint,
		pokemon.NewMove("Tackle", TestMoveDamage, TestMoveUsageLimit))
}

// CreateTestTrainer creates a level 1 trainer fielding roster
func CreateTestTrainer(id, name string, roster ...*pokemon.Combatant) *pokemon.Trainer {
	t := pokemon.NewTrainer(id, name)
	for _, c := range roster {
		t.AddToRoster(c)
	}
	return t
}
