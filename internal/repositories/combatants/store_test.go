package combatants_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/battle-api/internal/errors"
	"github.com/KirkDiggler/battle-api/internal/repositories/combatants"
	"github.com/KirkDiggler/battle-api/internal/testutils"
)

type CombatantsRepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	repo    combatants.Repository
	cleanup func()
	redis   bool
}

func TestInMemoryCombatantsRepository(t *testing.T) {
	suite.Run(t, new(CombatantsRepositoryTestSuite))
}

func TestRedisCombatantsRepository(t *testing.T) {
	suite.Run(t, &CombatantsRepositoryTestSuite{redis: true})
}

func (s *CombatantsRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	if !s.redis {
		s.repo = combatants.NewInMemory()
		return
	}

	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := combatants.NewRedis(&combatants.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *CombatantsRepositoryTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func (s *CombatantsRepositoryTestSuite) TestBattleStateSurvivesUpdate() {
	bulbasaur := testutils.CreateTestFighter("1", "Bulbasaur")
	_, err := s.repo.Create(s.ctx, combatants.CreateInput{Combatant: bulbasaur})
	s.Require().NoError(err)

	bulbasaur.TakeDamage(60)
	s.Require().NoError(bulbasaur.Moves[0].Use())
	_, err = s.repo.Update(s.ctx, combatants.UpdateInput{Combatant: bulbasaur})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, combatants.GetInput{ID: "1"})
	s.Require().NoError(err)
	s.Equal(40, got.Combatant.LifePoint)
	s.Equal(1, got.Combatant.Moves[0].UsageCount)

	got.Combatant.Heal()
	s.Equal(100, got.Combatant.LifePoint)
	s.Equal(0, got.Combatant.Moves[0].UsageCount)
}

func (s *CombatantsRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, combatants.GetInput{ID: "7"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}
