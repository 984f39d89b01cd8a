package main

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/battle-api/internal/config"
	"github.com/KirkDiggler/battle-api/internal/engine"
	v1 "github.com/KirkDiggler/battle-api/internal/handlers/battle/v1"
	"github.com/KirkDiggler/battle-api/internal/orchestrators/battle"
	"github.com/KirkDiggler/battle-api/internal/orchestrators/registry"
	"github.com/KirkDiggler/battle-api/internal/pkg/clock"
	"github.com/KirkDiggler/battle-api/internal/pkg/idgen"
	"github.com/KirkDiggler/battle-api/internal/pkg/random"
	"github.com/KirkDiggler/battle-api/internal/redis"
	"github.com/KirkDiggler/battle-api/internal/repositories/combatants"
	"github.com/KirkDiggler/battle-api/internal/repositories/moves"
	"github.com/KirkDiggler/battle-api/internal/repositories/trainers"
	"github.com/KirkDiggler/battle-api/internal/seed"
)

const (
	storeMemory = "memory"
	storeRedis  = "redis"
)

type services struct {
	storeKind string
	registry  registry.Service
	battle    battle.Service
	handler   *v1.Handler
}

type stores struct {
	kind       string
	client     redis.Client
	moves      moves.Repository
	combatants combatants.Repository
	trainers   trainers.Repository
	close      func()
}

// buildServices wires stores, engine and orchestrators from cfg and applies the seed file.
// The returned cleanup releases the store connection.
func buildServices(ctx context.Context, cfg *config.Config) (*services, func(), error) {
	st, err := openStores(ctx, cfg.RedisAddr)
	if err != nil {
		return nil, nil, err
	}

	svc, err := newServices(ctx, cfg, st)
	if err != nil {
		st.close()
		return nil, nil, err
	}
	return svc, st.close, nil
}

func openStores(ctx context.Context, redisAddr string) (*stores, error) {
	if redisAddr == "" {
		return &stores{
			kind:       storeMemory,
			moves:      moves.NewInMemory(),
			combatants: combatants.NewInMemory(),
			trainers:   trainers.NewInMemory(),
			close:      func() {},
		}, nil
	}

	client, err := redis.NewClient(redisAddr, &redis.Options{
		PoolSize:    10,
		DialTimeout: 5 * time.Second,
		MaxRetries:  3,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	closeClient := func() {
		if err := client.Close(); err != nil {
			slog.Warn("Failed to close redis client", "error", err)
		}
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := redis.Ping(pingCtx, client); err != nil {
		closeClient()
		return nil, err
	}

	moveRepo, err := moves.NewRedis(&moves.RedisConfig{Client: client})
	if err != nil {
		closeClient()
		return nil, fmt.Errorf("failed to create move repository: %w", err)
	}
	combatantRepo, err := combatants.NewRedis(&combatants.RedisConfig{Client: client})
	if err != nil {
		closeClient()
		return nil, fmt.Errorf("failed to create combatant repository: %w", err)
	}
	trainerRepo, err := trainers.NewRedis(&trainers.RedisConfig{Client: client})
	if err != nil {
		closeClient()
		return nil, fmt.Errorf("failed to create trainer repository: %w", err)
	}

	return &stores{
		kind:       storeRedis,
		client:     client,
		moves:      moveRepo,
		combatants: combatantRepo,
		trainers:   trainerRepo,
		close:      closeClient,
	}, nil
}

func newServices(ctx context.Context, cfg *config.Config, st *stores) (*services, error) {
	moveIDs, err := newIDGenerator(cfg.IDStyle, "move", moves.SequenceKey, st.client)
	if err != nil {
		return nil, err
	}
	combatantIDs, err := newIDGenerator(cfg.IDStyle, "combatant", combatants.SequenceKey, st.client)
	if err != nil {
		return nil, err
	}
	trainerIDs, err := newIDGenerator(cfg.IDStyle, "trainer", trainers.SequenceKey, st.client)
	if err != nil {
		return nil, err
	}

	// one lock for registry writes and matches
	lock := &sync.Mutex{}

	registryService, err := registry.NewOrchestrator(&registry.Config{
		MoveRepo:             st.moves,
		CombatantRepo:        st.combatants,
		TrainerRepo:          st.trainers,
		MoveIDGenerator:      moveIDs,
		CombatantIDGenerator: combatantIDs,
		TrainerIDGenerator:   trainerIDs,
		Lock:                 lock,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create registry orchestrator: %w", err)
	}

	bus := events.NewBus()
	engine.LogEvents(bus, slog.Default())

	battleEngine, err := engine.New(&engine.Config{
		Roller:   random.NewRoller(cfg.RNGSeed),
		EventBus: bus,
		MaxTurns: cfg.MaxTurns,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create battle engine: %w", err)
	}

	battleService, err := battle.NewOrchestrator(&battle.Config{
		Engine:        battleEngine,
		CombatantRepo: st.combatants,
		TrainerRepo:   st.trainers,
		Clock:         clock.New(),
		Lock:          lock,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create battle orchestrator: %w", err)
	}

	handler, err := v1.NewHandler(&v1.HandlerConfig{
		RegistryService: registryService,
		BattleService:   battleService,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create battle handler: %w", err)
	}

	if cfg.SeedFile != "" {
		f, err := seed.Load(cfg.SeedFile)
		if err != nil {
			return nil, err
		}
		if _, err := seed.Apply(ctx, registryService, f); err != nil {
			return nil, fmt.Errorf("failed to apply seed file: %w", err)
		}
	}

	return &services{
		storeKind: st.kind,
		registry:  registryService,
		battle:    battleService,
		handler:   handler,
	}, nil
}

// newIDGenerator prefixes uuid ids with the record kind; sequential ids stay bare numbers.
// Against Redis the sequence lives in seqKey so a restart does not reuse stored IDs.
func newIDGenerator(style, kind, seqKey string, client redis.Client) (idgen.Generator, error) {
	switch {
	case style == idgen.StyleUUID:
		return idgen.NewFromStyle(style, kind)
	case client != nil && (style == "" || style == idgen.StyleSequential):
		return idgen.NewRedisSequential(client, seqKey, ""), nil
	default:
		return idgen.NewFromStyle(style, "")
	}
}
