package combatants

import (
	"context"

	"github.com/KirkDiggler/battle-api/internal/entities/pokemon"
	"github.com/KirkDiggler/battle-api/internal/errors"
	redisclient "github.com/KirkDiggler/battle-api/internal/redis"
	"github.com/KirkDiggler/battle-api/internal/repositories/recordstore"
)

// SequenceKey holds the Redis counter sequential combatant IDs are drawn from
const SequenceKey = "combatants:seq"

const (
	kind      = "combatant"
	keyPrefix = "combatant:"
	indexKey  = "combatants:index"

	errCombatantNil = "combatant cannot be nil"
)

type repository struct {
	store recordstore.Store[*pokemon.Combatant]
}

// NewInMemory creates an in-memory combatant repository
func NewInMemory() Repository {
	return &repository{store: recordstore.NewMemory[*pokemon.Combatant](kind)}
}

// RedisConfig contains configuration for the Redis combatant repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a Redis-backed combatant repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store, err := recordstore.NewRedis[*pokemon.Combatant](&recordstore.RedisConfig{
		Client:    cfg.Client,
		Kind:      kind,
		KeyPrefix: keyPrefix,
		IndexKey:  indexKey,
	})
	if err != nil {
		return nil, err
	}

	return &repository{store: store}, nil
}

func (r *repository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Combatant == nil {
		return nil, errors.InvalidArgument(errCombatantNil)
	}
	if err := r.store.Create(ctx, input.Combatant); err != nil {
		return nil, err
	}
	return &CreateOutput{Combatant: input.Combatant}, nil
}

func (r *repository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	record, err := r.store.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Combatant: record}, nil
}

func (r *repository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Combatant == nil {
		return nil, errors.InvalidArgument(errCombatantNil)
	}
	if err := r.store.Update(ctx, input.Combatant); err != nil {
		return nil, err
	}
	return &UpdateOutput{Combatant: input.Combatant}, nil
}

func (r *repository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	all, err := r.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Combatants: all}, nil
}
