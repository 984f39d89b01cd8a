package recordstore

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/battle-api/internal/errors"
	redisclient "github.com/KirkDiggler/battle-api/internal/redis"
)

// Redis is a Store backed by Redis. Each record is a JSON string under KeyPrefix+ID and
// creation order is kept in a list at IndexKey.
type Redis[T Record] struct {
	client    redisclient.Client
	kind      string
	keyPrefix string
	indexKey  string
}

// RedisConfig contains configuration for a Redis store
type RedisConfig struct {
	Client    redisclient.Client
	Kind      string
	KeyPrefix string
	IndexKey  string
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("kind", cfg.Kind, vb)
	errors.ValidateRequired("key_prefix", cfg.KeyPrefix, vb)
	errors.ValidateRequired("index_key", cfg.IndexKey, vb)
	return vb.Build()
}

// NewRedis creates a Redis-backed store
func NewRedis[T Record](cfg *RedisConfig) (*Redis[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Redis[T]{
		client:    cfg.Client,
		kind:      cfg.Kind,
		keyPrefix: cfg.KeyPrefix,
		indexKey:  cfg.IndexKey,
	}, nil
}

// Create stores a new record and appends it to the index
func (r *Redis[T]) Create(ctx context.Context, record T) error {
	id, err := recordID(r.kind, record)
	if err != nil {
		return err
	}

	key := r.keyPrefix + id

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return errors.AlreadyExistsf("%s with ID %s already exists", r.kind, id)
	}

	data, err := json.Marshal(record)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s", r.kind)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.RPush(ctx, r.indexKey, id)

	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrapf(err, "failed to create %s", r.kind)
	}

	return nil
}

// Get loads a record by ID
func (r *Redis[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	if id == "" {
		return zero, errors.InvalidArgumentf("%s ID cannot be empty", r.kind)
	}

	result, err := r.client.Get(ctx, r.keyPrefix+id).Result()
	if err != nil {
		if err == redis.Nil {
			return zero, errors.NotFoundf("%s with ID %s not found", r.kind, id)
		}
		return zero, errors.Wrapf(err, "failed to get %s", r.kind)
	}

	return decode[T](r.kind, []byte(result))
}

// Update replaces an existing record
func (r *Redis[T]) Update(ctx context.Context, record T) error {
	id, err := recordID(r.kind, record)
	if err != nil {
		return err
	}

	data, err := json.Marshal(record)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s", r.kind)
	}

	// XX only writes keys that already exist
	ok, err := r.client.SetXX(ctx, r.keyPrefix+id, data, 0).Result()
	if err != nil {
		return errors.Wrapf(err, "failed to update %s", r.kind)
	}
	if !ok {
		return errors.NotFoundf("%s with ID %s not found", r.kind, id)
	}

	return nil
}

// List returns every record in creation order
func (r *Redis[T]) List(ctx context.Context) ([]T, error) {
	ids, err := r.client.LRange(ctx, r.indexKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s index", r.kind)
	}
	if len(ids) == 0 {
		return []T{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.keyPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get %s records", r.kind)
	}

	out := make([]T, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			slog.WarnContext(ctx, "indexed record missing",
				"kind", r.kind,
				"id", ids[i],
				"index_key", r.indexKey)
			continue
		}

		record, err := decode[T](r.kind, []byte(raw))
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}

	slog.DebugContext(ctx, "listed records",
		"kind", r.kind,
		"count", len(out))

	return out, nil
}
