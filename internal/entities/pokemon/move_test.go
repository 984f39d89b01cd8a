package pokemon_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/battle-api/internal/entities/pokemon"
	"github.com/KirkDiggler/battle-api/internal/errors"
)

type MoveTestSuite struct {
	suite.Suite
}

func TestMoveSuite(t *testing.T) {
	suite.Run(t, new(MoveTestSuite))
}

func (s *MoveTestSuite) TestUseCountsUpToLimit() {
	move := pokemon.NewMove("Ember", 15, 2)

	s.True(move.CanUse())
	s.Require().NoError(move.Use())
	s.Equal(1, move.UsageCount)
	s.Require().NoError(move.Use())
	s.Equal(2, move.UsageCount)
	s.False(move.CanUse())
}

func (s *MoveTestSuite) TestUsePastLimitFails() {
	move := pokemon.NewMove("Ember", 15, 1)
	s.Require().NoError(move.Use())

	err := move.Use()
	s.Require().Error(err)
	s.True(errors.Is(err, pokemon.ErrQuotaExceeded))
	s.Equal(1, move.UsageCount, "failed use must not change the counter")
}

func (s *MoveTestSuite) TestReset() {
	move := pokemon.NewMove("Ember", 15, 1)
	s.Require().NoError(move.Use())

	move.Reset()
	s.Equal(0, move.UsageCount)
	s.True(move.CanUse())
}

func (s *MoveTestSuite) TestInfo() {
	move := pokemon.NewMove("Thunder", 40, 5)
	s.Require().NoError(move.Use())
	s.Equal("Thunder | damage: 40 | usage: 1/5", move.Info())
}

func (s *MoveTestSuite) TestCatalogEntriesProduceIndependentMoves() {
	entry := pokemon.NewMoveData("7", "Ember", 15, 3)
	s.Equal("7", entry.GetID())

	first := entry.ToMove()
	second := entry.ToMove()
	s.Require().NoError(first.Use())

	s.Equal(1, first.UsageCount)
	s.Equal(0, second.UsageCount)
	s.Equal("Ember | damage: 15 | usage: 0/3", second.Info())
}
