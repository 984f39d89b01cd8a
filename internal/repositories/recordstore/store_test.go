package recordstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/battle-api/internal/entities/pokemon"
	"github.com/KirkDiggler/battle-api/internal/errors"
	"github.com/KirkDiggler/battle-api/internal/repositories/recordstore"
	"github.com/KirkDiggler/battle-api/internal/testutils"
)

// StoreTestSuite runs the same behaviour checks against every backend
type StoreTestSuite struct {
	suite.Suite
	ctx     context.Context
	newFunc func() recordstore.Store[*pokemon.Combatant]
	store   recordstore.Store[*pokemon.Combatant]
	cleanup func()
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, &StoreTestSuite{
		newFunc: func() recordstore.Store[*pokemon.Combatant] {
			return recordstore.NewMemory[*pokemon.Combatant]("combatant")
		},
	})
}

func TestRedisStoreSuite(t *testing.T) {
	s := &StoreTestSuite{}
	s.newFunc = func() recordstore.Store[*pokemon.Combatant] {
		client, cleanup := testutils.CreateTestRedisClient(s.T())
		s.cleanup = cleanup

		store, err := recordstore.NewRedis[*pokemon.Combatant](&recordstore.RedisConfig{
			Client:    client,
			Kind:      "combatant",
			KeyPrefix: "combatant:",
			IndexKey:  "combatants:index",
		})
		s.Require().NoError(err)
		return store
	}
	suite.Run(t, s)
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = s.newFunc()
}

func (s *StoreTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
		s.cleanup = nil
	}
}

func (s *StoreTestSuite) TestCreateAndGetReturnsCopy() {
	pikachu := testutils.CreateTestFighter("1", "Pikachu")
	s.Require().NoError(s.store.Create(s.ctx, pikachu))

	pikachu.TakeDamage(40)

	got, err := s.store.Get(s.ctx, "1")
	s.Require().NoError(err)
	s.Equal(100, got.LifePoint)
	s.Require().Len(got.Moves, 1)
	s.Equal("Tackle", got.Moves[0].Name)
	s.NotSame(pikachu, got)
}

func (s *StoreTestSuite) TestCreateDuplicateID() {
	s.Require().NoError(s.store.Create(s.ctx, testutils.CreateTestFighter("1", "Pikachu")))

	err := s.store.Create(s.ctx, testutils.CreateTestFighter("1", "Raichu"))
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *StoreTestSuite) TestCreateRejectsInvalidRecords() {
	err := s.store.Create(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	err = s.store.Create(s.ctx, testutils.CreateTestFighter("", "Nameless"))
	s.True(errors.IsInvalidArgument(err))
}

func (s *StoreTestSuite) TestGetMissing() {
	_, err := s.store.Get(s.ctx, "404")
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	_, err = s.store.Get(s.ctx, "")
	s.True(errors.IsInvalidArgument(err))
}

func (s *StoreTestSuite) TestUpdatePersistsState() {
	pikachu := testutils.CreateTestFighter("1", "Pikachu")
	s.Require().NoError(s.store.Create(s.ctx, pikachu))

	pikachu.TakeDamage(30)
	s.Require().NoError(pikachu.Moves[0].Use())
	s.Require().NoError(s.store.Update(s.ctx, pikachu))

	got, err := s.store.Get(s.ctx, "1")
	s.Require().NoError(err)
	s.Equal(70, got.LifePoint)
	s.Equal(100, got.MaxLifePoint)
	s.Equal(1, got.Moves[0].UsageCount)
}

func (s *StoreTestSuite) TestUpdateMissing() {
	err := s.store.Update(s.ctx, testutils.CreateTestFighter("9", "Mew"))
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *StoreTestSuite) TestListKeepsCreationOrder() {
	empty, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(empty)

	for _, c := range []*pokemon.Combatant{
		testutils.CreateTestFighter("10", "Zubat"),
		testutils.CreateTestFighter("2", "Abra"),
		testutils.CreateTestFighter("7", "Mew"),
	} {
		s.Require().NoError(s.store.Create(s.ctx, c))
	}

	all, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal("Zubat", all[0].Name)
	s.Equal("Abra", all[1].Name)
	s.Equal("Mew", all[2].Name)
}
