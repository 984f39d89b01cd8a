// Package v1 implements the battle.v1.BattleService gRPC handlers
package v1

import (
	"context"

	"github.com/KirkDiggler/battle-api/internal/api/battlev1"
	"github.com/KirkDiggler/battle-api/internal/errors"
	"github.com/KirkDiggler/battle-api/internal/orchestrators/battle"
	"github.com/KirkDiggler/battle-api/internal/orchestrators/registry"
)

// HandlerConfig holds dependencies for the battle handler
type HandlerConfig struct {
	RegistryService registry.Service
	BattleService   battle.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.RegistryService == nil {
		return errors.InvalidArgument("registry service is required")
	}
	if c.BattleService == nil {
		return errors.InvalidArgument("battle service is required")
	}
	return nil
}

// Handler implements battlev1.BattleServiceServer
type Handler struct {
	battlev1.UnimplementedBattleServiceServer
	registry registry.Service
	battle   battle.Service
}

var _ battlev1.BattleServiceServer = (*Handler)(nil)

// NewHandler creates a new battle handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		registry: cfg.RegistryService,
		battle:   cfg.BattleService,
	}, nil
}

// CreateMove adds a move to the catalog
func (h *Handler) CreateMove(
	ctx context.Context,
	req *battlev1.CreateMoveRequest,
) (*battlev1.CreateMoveResponse, error) {
	if req.Name == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("name is required"))
	}

	out, err := h.registry.CreateMove(ctx, &registry.CreateMoveInput{
		Name:       req.Name,
		Damage:     int(req.Damage),
		UsageLimit: int(req.UsageLimit),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &battlev1.CreateMoveResponse{Move: convertMove(out.Move)}, nil
}

// ListMoves lists the move catalog
func (h *Handler) ListMoves(
	ctx context.Context,
	_ *battlev1.ListMovesRequest,
) (*battlev1.ListMovesResponse, error) {
	out, err := h.registry.ListMoves(ctx, &registry.ListMovesInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	moves := make([]*battlev1.Move, 0, len(out.Moves))
	for _, m := range out.Moves {
		moves = append(moves, convertMove(m))
	}
	return &battlev1.ListMovesResponse{Moves: moves}, nil
}

// CreateCombatant creates a combatant at full health
func (h *Handler) CreateCombatant(
	ctx context.Context,
	req *battlev1.CreateCombatantRequest,
) (*battlev1.CreateCombatantResponse, error) {
	if req.Name == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("name is required"))
	}

	out, err := h.registry.CreateCombatant(ctx, &registry.CreateCombatantInput{
		Name:      req.Name,
		LifePoint: int(req.LifePoint),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &battlev1.CreateCombatantResponse{Combatant: convertCombatant(out.Combatant)}, nil
}

// ListCombatants lists every combatant
func (h *Handler) ListCombatants(
	ctx context.Context,
	_ *battlev1.ListCombatantsRequest,
) (*battlev1.ListCombatantsResponse, error) {
	out, err := h.registry.ListCombatants(ctx, &registry.ListCombatantsInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &battlev1.ListCombatantsResponse{Combatants: convertCombatants(out.Combatants)}, nil
}

// LearnMove teaches a catalog move to a combatant
func (h *Handler) LearnMove(
	ctx context.Context,
	req *battlev1.LearnMoveRequest,
) (*battlev1.LearnMoveResponse, error) {
	if req.CombatantID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("combatant_id is required"))
	}
	if req.MoveID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("move_id is required"))
	}

	out, err := h.registry.LearnMove(ctx, &registry.LearnMoveInput{
		CombatantID: req.CombatantID,
		MoveID:      req.MoveID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &battlev1.LearnMoveResponse{Combatant: convertCombatant(out.Combatant)}, nil
}

// HealCombatant heals one combatant
func (h *Handler) HealCombatant(
	ctx context.Context,
	req *battlev1.HealCombatantRequest,
) (*battlev1.HealCombatantResponse, error) {
	if req.CombatantID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("combatant_id is required"))
	}

	out, err := h.registry.HealCombatant(ctx, &registry.HealCombatantInput{CombatantID: req.CombatantID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &battlev1.HealCombatantResponse{Combatant: convertCombatant(out.Combatant)}, nil
}

// CreateTrainer creates a level 1 trainer
func (h *Handler) CreateTrainer(
	ctx context.Context,
	req *battlev1.CreateTrainerRequest,
) (*battlev1.CreateTrainerResponse, error) {
	if req.Name == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("name is required"))
	}

	out, err := h.registry.CreateTrainer(ctx, &registry.CreateTrainerInput{Name: req.Name})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &battlev1.CreateTrainerResponse{Trainer: convertTrainer(out.Trainer)}, nil
}

// ListTrainers lists every trainer
func (h *Handler) ListTrainers(
	ctx context.Context,
	_ *battlev1.ListTrainersRequest,
) (*battlev1.ListTrainersResponse, error) {
	out, err := h.registry.ListTrainers(ctx, &registry.ListTrainersInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	trainers := make([]*battlev1.Trainer, 0, len(out.Trainers))
	for _, t := range out.Trainers {
		trainers = append(trainers, convertTrainer(t))
	}
	return &battlev1.ListTrainersResponse{Trainers: trainers}, nil
}

// AddToRoster appends a combatant to a trainer's roster
func (h *Handler) AddToRoster(
	ctx context.Context,
	req *battlev1.AddToRosterRequest,
) (*battlev1.AddToRosterResponse, error) {
	if req.TrainerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("trainer_id is required"))
	}
	if req.CombatantID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("combatant_id is required"))
	}

	out, err := h.registry.AddToRoster(ctx, &registry.AddToRosterInput{
		TrainerID:   req.TrainerID,
		CombatantID: req.CombatantID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &battlev1.AddToRosterResponse{Trainer: convertTrainer(out.Trainer)}, nil
}

// HealRoster heals a trainer's roster
func (h *Handler) HealRoster(
	ctx context.Context,
	req *battlev1.HealRosterRequest,
) (*battlev1.HealRosterResponse, error) {
	if req.TrainerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("trainer_id is required"))
	}

	out, err := h.registry.HealRoster(ctx, &registry.HealRosterInput{TrainerID: req.TrainerID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &battlev1.HealRosterResponse{
		Trainer: convertTrainer(out.Trainer),
		Healed:  convertCombatants(out.Healed),
	}, nil
}

// RandomChallenge plays a single random battle
func (h *Handler) RandomChallenge(ctx context.Context, req *battlev1.MatchRequest) (*battlev1.MatchResponse, error) {
	return h.match(ctx, req, h.battle.RandomChallenge)
}

// DeterministicChallenge plays a single battle between the healthiest combatants
func (h *Handler) DeterministicChallenge(ctx context.Context, req *battlev1.MatchRequest) (*battlev1.MatchResponse, error) {
	return h.match(ctx, req, h.battle.DeterministicChallenge)
}

// RandomArena plays a random arena
func (h *Handler) RandomArena(ctx context.Context, req *battlev1.MatchRequest) (*battlev1.MatchResponse, error) {
	return h.match(ctx, req, h.battle.RandomArena)
}

// DeterministicArena plays a deterministic arena
func (h *Handler) DeterministicArena(ctx context.Context, req *battlev1.MatchRequest) (*battlev1.MatchResponse, error) {
	return h.match(ctx, req, h.battle.DeterministicArena)
}

func (h *Handler) match(
	ctx context.Context,
	req *battlev1.MatchRequest,
	play func(context.Context, *battle.MatchInput) (*battle.MatchOutput, error),
) (*battlev1.MatchResponse, error) {
	if req.Trainer1ID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("trainer1_id is required"))
	}
	if req.Trainer2ID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("trainer2_id is required"))
	}

	out, err := play(ctx, &battle.MatchInput{
		Trainer1ID: req.Trainer1ID,
		Trainer2ID: req.Trainer2ID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return convertMatchResult(out.Result), nil
}
