// Package pokemon holds the battle entities: moves, the combatants that use them and the
// trainers that field combatants.
package pokemon

import "fmt"

// Move is a named attack with fixed damage and a usage quota
type Move struct {
	Name       string `json:"name"`
	Damage     int    `json:"damage"`
	UsageLimit int    `json:"usage_limit"`
	UsageCount int    `json:"usage_count"`
}

// NewMove creates an unused move
func NewMove(name string, damage, usageLimit int) *Move {
	return &Move{
		Name:       name,
		Damage:     damage,
		UsageLimit: usageLimit,
	}
}

// CanUse reports whether the quota allows one more use
func (m *Move) CanUse() bool {
	return m.UsageCount < m.UsageLimit
}

// Use consumes one use of the quota
func (m *Move) Use() error {
	if !m.CanUse() {
		return QuotaExceeded(m.Name)
	}
	m.UsageCount++
	return nil
}

// Reset restores the full quota
func (m *Move) Reset() {
	m.UsageCount = 0
}

// Info is the one-line summary used in listings
func (m *Move) Info() string {
	return fmt.Sprintf("%s | damage: %d | usage: %d/%d", m.Name, m.Damage, m.UsageCount, m.UsageLimit)
}

// MoveData is a move catalog entry. Combatants learn a fresh copy of it, so learners never
// share a quota.
type MoveData struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Damage     int    `json:"damage"`
	UsageLimit int    `json:"usage_limit"`
}

// NewMoveData creates a catalog entry
func NewMoveData(id, name string, damage, usageLimit int) *MoveData {
	return &MoveData{
		ID:         id,
		Name:       name,
		Damage:     damage,
		UsageLimit: usageLimit,
	}
}

// GetID returns the catalog ID
func (d *MoveData) GetID() string {
	return d.ID
}

// ToMove returns an unused move built from the entry
func (d *MoveData) ToMove() *Move {
	return NewMove(d.Name, d.Damage, d.UsageLimit)
}
