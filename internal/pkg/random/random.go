// Package random adapts the rpg-toolkit dice roller into the uniform choices the battle
// rules need, and provides a seedable roller for reproducible runs.
package random

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// Index returns a uniform index in [0, n) rolled with an n-sided die. A single
// candidate is returned without consuming a roll.
func Index(roller dice.Roller, n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("random: cannot pick from %d candidates", n)
	}
	if n == 1 {
		return 0, nil
	}

	face, err := roller.Roll(n)
	if err != nil {
		return 0, fmt.Errorf("random: roll d%d: %w", n, err)
	}
	if face < 1 || face > n {
		return 0, fmt.Errorf("random: d%d rolled out of range value %d", n, face)
	}

	return face - 1, nil
}

// SeededRoller is a dice.Roller backed by a PCG source so a whole tournament can be
// replayed from its seed.
type SeededRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeeded creates a roller whose sequence is fully determined by seed
func NewSeeded(seed uint64) *SeededRoller {
	return &SeededRoller{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

var _ dice.Roller = (*SeededRoller)(nil)

// Roll returns a value in [1, size]
func (r *SeededRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("random: invalid die size %d", size)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.rng.IntN(size) + 1, nil
}

// RollN rolls count dice of the given size
func (r *SeededRoller) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, fmt.Errorf("random: invalid die count %d", count)
	}

	out := make([]int, count)
	for i := range out {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// NewRoller returns a seeded roller for a non-zero seed and the toolkit default otherwise
func NewRoller(seed uint64) dice.Roller {
	if seed == 0 {
		return dice.DefaultRoller
	}
	return NewSeeded(seed)
}
