// Package registry implements the orchestrator for creating and maintaining moves,
// combatants and trainers
package registry

//go:generate mockgen -destination=mock/mock_service.go -package=registrymock github.com/KirkDiggler/battle-api/internal/orchestrators/registry Service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/battle-api/internal/entities/pokemon"
	"github.com/KirkDiggler/battle-api/internal/errors"
	"github.com/KirkDiggler/battle-api/internal/pkg/idgen"
	"github.com/KirkDiggler/battle-api/internal/repositories/combatants"
	"github.com/KirkDiggler/battle-api/internal/repositories/moves"
	"github.com/KirkDiggler/battle-api/internal/repositories/trainers"
)

// Service defines the interface for registry operations
type Service interface {
	CreateMove(ctx context.Context, input *CreateMoveInput) (*CreateMoveOutput, error)
	ListMoves(ctx context.Context, input *ListMovesInput) (*ListMovesOutput, error)

	CreateCombatant(ctx context.Context, input *CreateCombatantInput) (*CreateCombatantOutput, error)
	ListCombatants(ctx context.Context, input *ListCombatantsInput) (*ListCombatantsOutput, error)
	LearnMove(ctx context.Context, input *LearnMoveInput) (*LearnMoveOutput, error)
	HealCombatant(ctx context.Context, input *HealCombatantInput) (*HealCombatantOutput, error)

	CreateTrainer(ctx context.Context, input *CreateTrainerInput) (*CreateTrainerOutput, error)
	ListTrainers(ctx context.Context, input *ListTrainersInput) (*ListTrainersOutput, error)
	AddToRoster(ctx context.Context, input *AddToRosterInput) (*AddToRosterOutput, error)
	HealRoster(ctx context.Context, input *HealRosterInput) (*HealRosterOutput, error)
}

// Config holds the dependencies for the registry orchestrator
type Config struct {
	MoveRepo      moves.Repository
	CombatantRepo combatants.Repository
	TrainerRepo   trainers.Repository

	MoveIDGenerator      idgen.Generator
	CombatantIDGenerator idgen.Generator
	TrainerIDGenerator   idgen.Generator

	// Lock serialises read-modify-write cycles. Share it with the battle orchestrator so
	// registry writes never interleave with a match. Optional.
	Lock sync.Locker
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.MoveRepo == nil {
		vb.RequiredField("MoveRepo")
	}
	if c.CombatantRepo == nil {
		vb.RequiredField("CombatantRepo")
	}
	if c.TrainerRepo == nil {
		vb.RequiredField("TrainerRepo")
	}
	if c.MoveIDGenerator == nil {
		vb.RequiredField("MoveIDGenerator")
	}
	if c.CombatantIDGenerator == nil {
		vb.RequiredField("CombatantIDGenerator")
	}
	if c.TrainerIDGenerator == nil {
		vb.RequiredField("TrainerIDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	moveRepo      moves.Repository
	combatantRepo combatants.Repository
	trainerRepo   trainers.Repository

	moveIDs      idgen.Generator
	combatantIDs idgen.Generator
	trainerIDs   idgen.Generator

	mu sync.Locker
}

// NewOrchestrator creates a new registry orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	mu := cfg.Lock
	if mu == nil {
		mu = &sync.Mutex{}
	}

	return &orchestrator{
		moveRepo:      cfg.MoveRepo,
		combatantRepo: cfg.CombatantRepo,
		trainerRepo:   cfg.TrainerRepo,
		moveIDs:       cfg.MoveIDGenerator,
		combatantIDs:  cfg.CombatantIDGenerator,
		trainerIDs:    cfg.TrainerIDGenerator,
		mu:            mu,
	}, nil
}

// CreateMove adds a move to the catalog
func (o *orchestrator) CreateMove(ctx context.Context, input *CreateMoveInput) (*CreateMoveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateMin("damage", input.Damage, 0, vb)
	errors.ValidateMin("usage_limit", input.UsageLimit, 1, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	move := pokemon.NewMoveData(o.moveIDs.Generate(), input.Name, input.Damage, input.UsageLimit)
	if _, err := o.moveRepo.Create(ctx, moves.CreateInput{Move: move}); err != nil {
		return nil, errors.Wrap(err, "failed to create move")
	}

	slog.Info("Move created",
		"move_id", move.ID,
		"name", move.Name,
		"damage", move.Damage,
		"usage_limit", move.UsageLimit,
	)

	return &CreateMoveOutput{Move: move}, nil
}

// ListMoves returns the catalog in creation order
func (o *orchestrator) ListMoves(ctx context.Context, _ *ListMovesInput) (*ListMovesOutput, error) {
	out, err := o.moveRepo.List(ctx, moves.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list moves")
	}
	return &ListMovesOutput{Moves: out.Moves}, nil
}

// CreateCombatant creates a combatant at full health with no moves
func (o *orchestrator) CreateCombatant(ctx context.Context, input *CreateCombatantInput) (*CreateCombatantOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateMin("life_point", input.LifePoint, 1, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	combatant := pokemon.NewCombatant(o.combatantIDs.Generate(), input.Name, input.LifePoint)
	if _, err := o.combatantRepo.Create(ctx, combatants.CreateInput{Combatant: combatant}); err != nil {
		return nil, errors.Wrap(err, "failed to create combatant")
	}

	slog.Info("Combatant created",
		"combatant_id", combatant.ID,
		"name", combatant.Name,
		"life_point", combatant.LifePoint,
	)

	return &CreateCombatantOutput{Combatant: combatant}, nil
}

// ListCombatants returns every combatant in creation order
func (o *orchestrator) ListCombatants(ctx context.Context, _ *ListCombatantsInput) (*ListCombatantsOutput, error) {
	out, err := o.combatantRepo.List(ctx, combatants.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list combatants")
	}
	return &ListCombatantsOutput{Combatants: out.Combatants}, nil
}

// LearnMove teaches a fresh copy of a catalog move to a combatant
func (o *orchestrator) LearnMove(ctx context.Context, input *LearnMoveInput) (*LearnMoveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("combatant_id", input.CombatantID, vb)
	errors.ValidateRequired("move_id", input.MoveID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	moveOut, err := o.moveRepo.Get(ctx, moves.GetInput{ID: input.MoveID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get move")
	}

	combatant, err := o.getCombatant(ctx, input.CombatantID)
	if err != nil {
		return nil, err
	}

	if err := combatant.LearnMove(moveOut.Move.ToMove()); err != nil {
		return nil, err
	}

	if _, err := o.combatantRepo.Update(ctx, combatants.UpdateInput{Combatant: combatant}); err != nil {
		return nil, errors.Wrap(err, "failed to save combatant")
	}

	slog.Info("Move learned",
		"combatant_id", combatant.ID,
		"move_id", moveOut.Move.ID,
		"move", moveOut.Move.Name,
		"known_moves", len(combatant.Moves),
	)

	return &LearnMoveOutput{Combatant: combatant}, nil
}

// HealCombatant restores a combatant's health and move quotas
func (o *orchestrator) HealCombatant(ctx context.Context, input *HealCombatantInput) (*HealCombatantOutput, error) {
	if input == nil || input.CombatantID == "" {
		return nil, errors.InvalidArgument("combatant ID is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	combatant, err := o.getCombatant(ctx, input.CombatantID)
	if err != nil {
		return nil, err
	}

	combatant.Heal()
	if _, err := o.combatantRepo.Update(ctx, combatants.UpdateInput{Combatant: combatant}); err != nil {
		return nil, errors.Wrap(err, "failed to save combatant")
	}

	return &HealCombatantOutput{Combatant: combatant}, nil
}

// CreateTrainer creates a level 1 trainer with an empty roster
func (o *orchestrator) CreateTrainer(ctx context.Context, input *CreateTrainerInput) (*CreateTrainerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	trainer := pokemon.NewTrainerData(o.trainerIDs.Generate(), input.Name)
	if _, err := o.trainerRepo.Create(ctx, trainers.CreateInput{Trainer: trainer}); err != nil {
		return nil, errors.Wrap(err, "failed to create trainer")
	}

	slog.Info("Trainer created",
		"trainer_id", trainer.ID,
		"name", trainer.Name,
	)

	return &CreateTrainerOutput{Trainer: trainer}, nil
}

// ListTrainers returns every trainer in creation order
func (o *orchestrator) ListTrainers(ctx context.Context, _ *ListTrainersInput) (*ListTrainersOutput, error) {
	out, err := o.trainerRepo.List(ctx, trainers.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list trainers")
	}
	return &ListTrainersOutput{Trainers: out.Trainers}, nil
}

// AddToRoster appends a combatant reference to a trainer's roster. The same combatant
// may be added more than once, and to more than one trainer.
func (o *orchestrator) AddToRoster(ctx context.Context, input *AddToRosterInput) (*AddToRosterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("trainer_id", input.TrainerID, vb)
	errors.ValidateRequired("combatant_id", input.CombatantID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	trainer, err := o.getTrainer(ctx, input.TrainerID)
	if err != nil {
		return nil, err
	}
	if _, err := o.getCombatant(ctx, input.CombatantID); err != nil {
		return nil, err
	}

	trainer.CombatantIDs = append(trainer.CombatantIDs, input.CombatantID)
	if _, err := o.trainerRepo.Update(ctx, trainers.UpdateInput{Trainer: trainer}); err != nil {
		return nil, errors.Wrap(err, "failed to save trainer")
	}

	slog.Info("Combatant added to roster",
		"trainer_id", trainer.ID,
		"combatant_id", input.CombatantID,
		"roster_size", len(trainer.CombatantIDs),
	)

	return &AddToRosterOutput{Trainer: trainer}, nil
}

// HealRoster heals every combatant on a trainer's roster
func (o *orchestrator) HealRoster(ctx context.Context, input *HealRosterInput) (*HealRosterOutput, error) {
	if input == nil || input.TrainerID == "" {
		return nil, errors.InvalidArgument("trainer ID is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	trainer, err := o.getTrainer(ctx, input.TrainerID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(trainer.CombatantIDs))
	healed := make([]*pokemon.Combatant, 0, len(trainer.CombatantIDs))
	for _, id := range trainer.CombatantIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		combatant, err := o.getCombatant(ctx, id)
		if err != nil {
			return nil, err
		}
		combatant.Heal()
		if _, err := o.combatantRepo.Update(ctx, combatants.UpdateInput{Combatant: combatant}); err != nil {
			return nil, errors.Wrapf(err, "failed to save combatant %s", id)
		}
		healed = append(healed, combatant)
	}

	slog.Info("Roster healed",
		"trainer_id", trainer.ID,
		"healed", len(healed),
	)

	return &HealRosterOutput{Trainer: trainer, Healed: healed}, nil
}

func (o *orchestrator) getCombatant(ctx context.Context, id string) (*pokemon.Combatant, error) {
	out, err := o.combatantRepo.Get(ctx, combatants.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get combatant %s", id)
	}
	return out.Combatant, nil
}

func (o *orchestrator) getTrainer(ctx context.Context, id string) (*pokemon.TrainerData, error) {
	out, err := o.trainerRepo.Get(ctx, trainers.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get trainer %s", id)
	}
	return out.Trainer, nil
}
