package idgen_test

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/battle-api/internal/pkg/idgen"
	"github.com/KirkDiggler/battle-api/internal/redis"
)

func TestSequential(t *testing.T) {
	gen := idgen.NewSequential("")
	assert.Equal(t, "1", gen.Generate())
	assert.Equal(t, "2", gen.Generate())

	prefixed := idgen.NewSequential("move")
	assert.Equal(t, "move_1", prefixed.Generate())
}

func TestRedisSequentialContinuesAcrossGenerators(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	first := idgen.NewRedisSequential(client, "moves:seq", "")
	assert.Equal(t, "1", first.Generate())
	assert.Equal(t, "2", first.Generate())

	// a restarted process builds a fresh generator over the same counter
	restarted := idgen.NewRedisSequential(client, "moves:seq", "")
	assert.Equal(t, "3", restarted.Generate())

	other := idgen.NewRedisSequential(client, "trainers:seq", "trainer")
	assert.Equal(t, "trainer_1", other.Generate())

	stored, err := mr.Get("moves:seq")
	require.NoError(t, err)
	assert.Equal(t, "3", stored)
}

func TestRedisSequentialFallsBackWhenUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	id := idgen.NewRedisSequential(client, "moves:seq", "").Generate()
	_, err = uuid.Parse(id)
	assert.NoError(t, err)
}

func TestUUID(t *testing.T) {
	id := idgen.NewUUID("").Generate()
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestNewFromStyle(t *testing.T) {
	gen, err := idgen.NewFromStyle(idgen.StyleSequential, "")
	require.NoError(t, err)
	assert.Equal(t, "1", gen.Generate())

	gen, err = idgen.NewFromStyle(idgen.StyleUUID, "t")
	require.NoError(t, err)
	assert.Len(t, gen.Generate(), len("t_")+36)

	_, err = idgen.NewFromStyle("snowflake", "")
	assert.Error(t, err)
}
