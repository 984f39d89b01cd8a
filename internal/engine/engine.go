package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/battle-api/internal/entities/pokemon"
	"github.com/KirkDiggler/battle-api/internal/errors"
)

// Config holds the dependencies for the engine
type Config struct {
	// Roller is the only source of randomness: move choice and random roster picks
	Roller dice.Roller

	// EventBus is optional; turn, knockout and draw events are published to it
	EventBus events.EventBus

	// MaxTurns caps a single fight; zero means DefaultMaxTurns
	MaxTurns int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	errors.ValidateMin("MaxTurns", c.MaxTurns, 0, vb)

	return vb.Build()
}

type engine struct {
	roller   dice.Roller
	eventBus events.EventBus
	maxTurns int
}

// New creates an engine with the provided dependencies
func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	maxTurns := cfg.MaxTurns
	if maxTurns == 0 {
		maxTurns = DefaultMaxTurns
	}

	return &engine{
		roller:   cfg.Roller,
		eventBus: cfg.EventBus,
		maxTurns: maxTurns,
	}, nil
}

// Fight alternates attacks until the defender of a turn is knocked out. A fight where
// neither side has a usable move, or that reaches maxTurns, is a draw.
func (e *engine) Fight(ctx context.Context, input *FightInput) (*FightOutput, error) {
	if input == nil || input.First == nil || input.Second == nil {
		return nil, errors.InvalidArgument("two combatants are required")
	}

	first, second := input.First, input.Second
	out := &FightOutput{
		Log: []string{fmt.Sprintf("Battle: %s (%d HP) vs %s (%d HP)",
			first.Name, first.LifePoint, second.Name, second.LifePoint)},
	}

	if !first.IsAlive() || !second.IsAlive() {
		out.Outcome = OutcomeKnockOut
		out.Winner = second
		if first.IsAlive() {
			out.Winner = first
		}
		return out, nil
	}

	attacker, defender := first, second
	for {
		if !attacker.CanAct() && !defender.CanAct() {
			out.Log = append(out.Log, fmt.Sprintf("Draw: neither %s nor %s has a move left", first.Name, second.Name))
			return e.draw(ctx, out, first, second), nil
		}
		if out.Turns >= e.maxTurns {
			out.Log = append(out.Log, fmt.Sprintf("Draw: turn limit of %d reached", e.maxTurns))
			return e.draw(ctx, out, first, second), nil
		}

		line, err := attacker.Act(defender, e.roller)
		if err != nil {
			return nil, errors.Wrapf(err, "%s failed to act", attacker.Name)
		}
		out.Turns++
		out.Log = append(out.Log, line)
		e.publish(ctx, EventTurn, attacker, defender)

		if !defender.IsAlive() {
			out.Log = append(out.Log, fmt.Sprintf("%s is K.O.!", defender.Name))
			out.Outcome = OutcomeKnockOut
			out.Winner = attacker
			e.publish(ctx, EventKnockOut, attacker, defender)
			return out, nil
		}

		attacker, defender = defender, attacker
	}
}

func (e *engine) draw(ctx context.Context, out *FightOutput, first, second *pokemon.Combatant) *FightOutput {
	out.Outcome = OutcomeDraw
	out.Winner = nil
	e.publish(ctx, EventDraw, first, second)
	return out
}

func (e *engine) publish(ctx context.Context, eventType string, source, target core.Entity) {
	if e.eventBus == nil {
		return
	}
	if err := e.eventBus.Publish(ctx, events.NewGameEvent(eventType, source, target)); err != nil {
		slog.Warn("Failed to publish battle event",
			"event", eventType,
			"source", source.GetID(),
			"error", err,
		)
	}
}
