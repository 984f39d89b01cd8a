package pokemon

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/battle-api/internal/pkg/random"
)

// Progression constants
const (
	StartingLevel        = 1
	ExperiencePerLevel   = 10
	ExperiencePerVictory = 1
)

// Trainer fields a roster of combatants and levels up from victories.
// Roster entries are references; the same combatant may appear more than once.
type Trainer struct {
	ID         string
	Name       string
	Level      int
	Experience int
	Roster     []*Combatant
}

// TrainerData is the stored form of a Trainer. The roster is kept as combatant IDs so the
// combatant store stays the single owner of combatant state.
type TrainerData struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Level        int      `json:"level"`
	Experience   int      `json:"experience"`
	CombatantIDs []string `json:"combatant_ids"`
}

// NewTrainer creates a level 1 trainer with an empty roster
func NewTrainer(id, name string) *Trainer {
	return &Trainer{
		ID:    id,
		Name:  name,
		Level: StartingLevel,
	}
}

// GetID returns the trainer ID
func (d *TrainerData) GetID() string {
	return d.ID
}

// NewTrainerData creates the stored form of a fresh trainer
func NewTrainerData(id, name string) *TrainerData {
	return NewTrainer(id, name).ToData()
}

// ToData converts the trainer to its stored form
func (t *Trainer) ToData() *TrainerData {
	ids := make([]string, len(t.Roster))
	for i, c := range t.Roster {
		ids[i] = c.ID
	}
	return &TrainerData{
		ID:           t.ID,
		Name:         t.Name,
		Level:        t.Level,
		Experience:   t.Experience,
		CombatantIDs: ids,
	}
}

// LoadTrainer rebuilds a trainer from its stored form. resolve must return the same
// *Combatant for the same ID so duplicate roster entries stay shared.
func LoadTrainer(data *TrainerData, resolve func(id string) (*Combatant, error)) (*Trainer, error) {
	t := &Trainer{
		ID:         data.ID,
		Name:       data.Name,
		Level:      data.Level,
		Experience: data.Experience,
		Roster:     make([]*Combatant, 0, len(data.CombatantIDs)),
	}
	for _, id := range data.CombatantIDs {
		c, err := resolve(id)
		if err != nil {
			return nil, err
		}
		t.Roster = append(t.Roster, c)
	}
	return t, nil
}

// AddToRoster appends c to the roster
func (t *Trainer) AddToRoster(c *Combatant) {
	t.Roster = append(t.Roster, c)
}

// HealRoster heals every roster member
func (t *Trainer) HealRoster() {
	for _, c := range t.Roster {
		c.Heal()
	}
}

// GainExperience adds experience and carries every full ExperiencePerLevel into a level
func (t *Trainer) GainExperience(amount int) {
	t.Experience += amount
	for t.Experience >= ExperiencePerLevel {
		t.Level++
		t.Experience -= ExperiencePerLevel
	}
}

// HasAliveCombatant reports whether any roster member can still fight
func (t *Trainer) HasAliveCombatant() bool {
	for _, c := range t.Roster {
		if c.IsAlive() {
			return true
		}
	}
	return false
}

// PickRandomAlive chooses uniformly among alive roster members. Nil when none is alive.
func (t *Trainer) PickRandomAlive(roller dice.Roller) (*Combatant, error) {
	alive := t.alive()
	if len(alive) == 0 {
		return nil, nil
	}

	idx, err := random.Index(roller, len(alive))
	if err != nil {
		return nil, err
	}
	return alive[idx], nil
}

// PickHealthiest returns the alive member with the most life points, the earliest in
// roster order on ties. Nil when none is alive.
func (t *Trainer) PickHealthiest() *Combatant {
	var best *Combatant
	for _, c := range t.alive() {
		if best == nil || c.LifePoint > best.LifePoint {
			best = c
		}
	}
	return best
}

// Outranks reports whether t finishes ahead of other: higher level, then experience,
// with t winning exact ties.
func (t *Trainer) Outranks(other *Trainer) bool {
	return t.Level > other.Level || (t.Level == other.Level && t.Experience >= other.Experience)
}

func (t *Trainer) alive() []*Combatant {
	alive := make([]*Combatant, 0, len(t.Roster))
	for _, c := range t.Roster {
		if c.IsAlive() {
			alive = append(alive, c)
		}
	}
	return alive
}
