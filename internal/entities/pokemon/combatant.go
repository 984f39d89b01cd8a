package pokemon

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/battle-api/internal/pkg/random"
)

// MaxMoves is how many moves a combatant can know
const MaxMoves = 4

// EntityType is the rpg-toolkit entity type of a combatant
const EntityType = "combatant"

// Combatant is a creature with health and up to MaxMoves moves
type Combatant struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	LifePoint    int     `json:"life_point"`
	MaxLifePoint int     `json:"max_life_point"`
	Moves        []*Move `json:"moves"`
}

var _ core.Entity = (*Combatant)(nil)

// NewCombatant creates a combatant at full health. lifePoint becomes the fixed maximum.
func NewCombatant(id, name string, lifePoint int) *Combatant {
	return &Combatant{
		ID:           id,
		Name:         name,
		LifePoint:    lifePoint,
		MaxLifePoint: lifePoint,
	}
}

// GetID returns the combatant's ID
func (c *Combatant) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *Combatant) GetType() string {
	return EntityType
}

// IsAlive reports whether the combatant has health left
func (c *Combatant) IsAlive() bool {
	return c.LifePoint > 0
}

// LearnMove adds m to the combatant's moves
func (c *Combatant) LearnMove(m *Move) error {
	if len(c.Moves) >= MaxMoves {
		return RosterFull(c.Name)
	}
	for _, known := range c.Moves {
		if known.Name == m.Name {
			return DuplicateMove(c.Name, m.Name)
		}
	}
	c.Moves = append(c.Moves, m)
	return nil
}

// Heal restores full health and every move's quota
func (c *Combatant) Heal() {
	c.LifePoint = c.MaxLifePoint
	for _, m := range c.Moves {
		m.Reset()
	}
}

// TakeDamage lowers health, never below zero
func (c *Combatant) TakeDamage(damage int) {
	c.LifePoint = max(0, c.LifePoint-damage)
}

// CanAct reports whether at least one move is usable
func (c *Combatant) CanAct() bool {
	for _, m := range c.Moves {
		if m.CanUse() {
			return true
		}
	}
	return false
}

// Act plays one turn against target: a usable move is chosen uniformly with roller and
// its damage applied. With nothing usable the turn is a no-op.
func (c *Combatant) Act(target *Combatant, roller dice.Roller) (string, error) {
	usable := make([]*Move, 0, len(c.Moves))
	for _, m := range c.Moves {
		if m.CanUse() {
			usable = append(usable, m)
		}
	}
	if len(usable) == 0 {
		return fmt.Sprintf("%s has no moves left!", c.Name), nil
	}

	idx, err := random.Index(roller, len(usable))
	if err != nil {
		return "", err
	}

	move := usable[idx]
	if err := move.Use(); err != nil {
		return "", err
	}
	target.TakeDamage(move.Damage)

	return fmt.Sprintf("%s uses %s → %d damage! (%s: %d HP)",
		c.Name, move.Name, move.Damage, target.Name, target.LifePoint), nil
}
