// Package battle implements the orchestrator that plays matches between stored trainers
package battle

//go:generate mockgen -destination=mock/mock_service.go -package=battlemock github.com/KirkDiggler/battle-api/internal/orchestrators/battle Service

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/battle-api/internal/engine"
	"github.com/KirkDiggler/battle-api/internal/entities/pokemon"
	"github.com/KirkDiggler/battle-api/internal/errors"
	"github.com/KirkDiggler/battle-api/internal/pkg/clock"
	"github.com/KirkDiggler/battle-api/internal/repositories/combatants"
	"github.com/KirkDiggler/battle-api/internal/repositories/trainers"
)

const tracerName = "github.com/KirkDiggler/battle-api/internal/orchestrators/battle"

// Service defines the interface for playing matches
type Service interface {
	RandomChallenge(ctx context.Context, input *MatchInput) (*MatchOutput, error)
	DeterministicChallenge(ctx context.Context, input *MatchInput) (*MatchOutput, error)
	RandomArena(ctx context.Context, input *MatchInput) (*MatchOutput, error)
	DeterministicArena(ctx context.Context, input *MatchInput) (*MatchOutput, error)
}

// Config holds the dependencies for the battle orchestrator
type Config struct {
	Engine        engine.Engine
	CombatantRepo combatants.Repository
	TrainerRepo   trainers.Repository

	// Clock stamps results; defaults to the real clock
	Clock clock.Clock

	// TracerProvider defaults to the global provider
	TracerProvider trace.TracerProvider

	// Lock serialises matches with each other and with registry writes. Optional.
	Lock sync.Locker
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.CombatantRepo == nil {
		vb.RequiredField("CombatantRepo")
	}
	if c.TrainerRepo == nil {
		vb.RequiredField("TrainerRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	engine        engine.Engine
	combatantRepo combatants.Repository
	trainerRepo   trainers.Repository
	clock         clock.Clock
	tracer        trace.Tracer
	mu            sync.Locker
}

// NewOrchestrator creates a new battle orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	tp := cfg.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	mu := cfg.Lock
	if mu == nil {
		mu = &sync.Mutex{}
	}

	return &orchestrator{
		engine:        cfg.Engine,
		combatantRepo: cfg.CombatantRepo,
		trainerRepo:   cfg.TrainerRepo,
		clock:         c,
		tracer:        tp.Tracer(tracerName),
		mu:            mu,
	}, nil
}

type playFunc func(ctx context.Context, input *engine.MatchInput) (*engine.MatchOutput, error)

// RandomChallenge plays one random battle between two stored trainers
func (o *orchestrator) RandomChallenge(ctx context.Context, input *MatchInput) (*MatchOutput, error) {
	return o.play(ctx, ModeRandomChallenge, input, o.engine.RandomChallenge)
}

// DeterministicChallenge plays one battle between the healthiest combatants
func (o *orchestrator) DeterministicChallenge(ctx context.Context, input *MatchInput) (*MatchOutput, error) {
	return o.play(ctx, ModeDeterministicChallenge, input, o.engine.DeterministicChallenge)
}

// RandomArena plays a random arena
func (o *orchestrator) RandomArena(ctx context.Context, input *MatchInput) (*MatchOutput, error) {
	return o.play(ctx, ModeRandomArena, input, o.engine.RandomArena)
}

// DeterministicArena plays a deterministic arena
func (o *orchestrator) DeterministicArena(ctx context.Context, input *MatchInput) (*MatchOutput, error) {
	return o.play(ctx, ModeDeterministicArena, input, o.engine.DeterministicArena)
}

// play loads both trainers, runs the match and saves every record it touched. The whole
// cycle holds the lock so no other write can land between load and save.
func (o *orchestrator) play(ctx context.Context, mode Mode, input *MatchInput, fn playFunc) (_ *MatchOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("trainer1_id", input.Trainer1ID, vb)
	errors.ValidateRequired("trainer2_id", input.Trainer2ID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	ctx, span := o.tracer.Start(ctx, "battle."+string(mode), trace.WithAttributes(
		attribute.String("battle.mode", string(mode)),
		attribute.String("battle.trainer1_id", input.Trainer1ID),
		attribute.String("battle.trainer2_id", input.Trainer2ID),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	o.mu.Lock()
	defer o.mu.Unlock()

	m := newMatchState(o.combatantRepo, o.trainerRepo)
	t1, err := m.trainer(ctx, input.Trainer1ID)
	if err != nil {
		return nil, err
	}
	t2, err := m.trainer(ctx, input.Trainer2ID)
	if err != nil {
		return nil, err
	}

	played, err := fn(ctx, &engine.MatchInput{Trainer1: t1, Trainer2: t2})
	if err != nil {
		// the engine may have healed rosters before failing; keep that state
		if saveErr := m.save(ctx); saveErr != nil {
			slog.Error("Failed to save match state after error",
				"mode", mode,
				"error", saveErr,
			)
		}
		return nil, err
	}

	if err := m.save(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to save match results")
	}

	result := &MatchResult{
		Mode:             mode,
		WinnerName:       played.WinnerName,
		WinnerLevel:      played.WinnerLevel,
		WinnerExperience: played.WinnerExperience,
		Draw:             played.Draw,
		Rounds:           played.Rounds,
		Log:              played.Log,
		PlayedAt:         o.clock.Now(),
	}
	if played.Winner != nil {
		result.WinnerID = played.Winner.ID
	}

	span.SetAttributes(
		attribute.String("battle.winner", result.WinnerName),
		attribute.Bool("battle.draw", result.Draw),
		attribute.Int("battle.rounds", result.Rounds),
	)

	slog.Info("Match played",
		"mode", mode,
		"trainer1_id", input.Trainer1ID,
		"trainer2_id", input.Trainer2ID,
		"winner", result.WinnerName,
		"draw", result.Draw,
		"rounds", result.Rounds,
	)

	return &MatchOutput{Result: result}, nil
}

// matchState is the identity map for one match: every ID resolves to a single object so
// roster duplicates and combatants shared between trainers stay shared.
type matchState struct {
	combatantRepo combatants.Repository
	trainerRepo   trainers.Repository

	combatants     map[string]*pokemon.Combatant
	combatantOrder []string
	trainers       map[string]*pokemon.Trainer
	trainerOrder   []string
}

func newMatchState(combatantRepo combatants.Repository, trainerRepo trainers.Repository) *matchState {
	return &matchState{
		combatantRepo: combatantRepo,
		trainerRepo:   trainerRepo,
		combatants:    make(map[string]*pokemon.Combatant),
		trainers:      make(map[string]*pokemon.Trainer),
	}
}

func (m *matchState) trainer(ctx context.Context, id string) (*pokemon.Trainer, error) {
	if t, ok := m.trainers[id]; ok {
		return t, nil
	}

	out, err := m.trainerRepo.Get(ctx, trainers.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get trainer %s", id)
	}

	t, err := pokemon.LoadTrainer(out.Trainer, func(cid string) (*pokemon.Combatant, error) {
		return m.combatant(ctx, cid)
	})
	if err != nil {
		return nil, err
	}

	m.trainers[id] = t
	m.trainerOrder = append(m.trainerOrder, id)
	return t, nil
}

func (m *matchState) combatant(ctx context.Context, id string) (*pokemon.Combatant, error) {
	if c, ok := m.combatants[id]; ok {
		return c, nil
	}

	out, err := m.combatantRepo.Get(ctx, combatants.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get combatant %s", id)
	}

	m.combatants[id] = out.Combatant
	m.combatantOrder = append(m.combatantOrder, id)
	return out.Combatant, nil
}

func (m *matchState) save(ctx context.Context) error {
	for _, id := range m.combatantOrder {
		if _, err := m.combatantRepo.Update(ctx, combatants.UpdateInput{Combatant: m.combatants[id]}); err != nil {
			return errors.Wrapf(err, "failed to save combatant %s", id)
		}
	}
	for _, id := range m.trainerOrder {
		if _, err := m.trainerRepo.Update(ctx, trainers.UpdateInput{Trainer: m.trainers[id].ToData()}); err != nil {
			return errors.Wrapf(err, "failed to save trainer %s", id)
		}
	}
	return nil
}
