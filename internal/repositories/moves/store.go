package moves

import (
	"context"

	"github.com/KirkDiggler/battle-api/internal/entities/pokemon"
	"github.com/KirkDiggler/battle-api/internal/errors"
	redisclient "github.com/KirkDiggler/battle-api/internal/redis"
	"github.com/KirkDiggler/battle-api/internal/repositories/recordstore"
)

// SequenceKey holds the Redis counter sequential move IDs are drawn from
const SequenceKey = "moves:seq"

const (
	kind       = "move"
	keyPrefix  = "move:"
	indexKey   = "moves:index"
	errMoveNil = "move cannot be nil"
)

type repository struct {
	store recordstore.Store[*pokemon.MoveData]
}

// NewInMemory creates an in-memory move repository
func NewInMemory() Repository {
	return &repository{store: recordstore.NewMemory[*pokemon.MoveData](kind)}
}

// RedisConfig contains configuration for the Redis move repository
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

// NewRedis creates a Redis-backed move repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store, err := recordstore.NewRedis[*pokemon.MoveData](&recordstore.RedisConfig{
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
	if input.Move == nil {
		return nil, errors.InvalidArgument(errMoveNil)
	}
	if err := r.store.Create(ctx, input.Move); err != nil {
		return nil, err
	}
	return &CreateOutput{Move: input.Move}, nil
}

func (r *repository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	move, err := r.store.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Move: move}, nil
}

func (r *repository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	all, err := r.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Moves: all}, nil
}
