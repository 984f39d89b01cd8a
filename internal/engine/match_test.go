package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/battle-api/internal/engine"
	"github.com/KirkDiggler/battle-api/internal/entities/pokemon"
	"github.com/KirkDiggler/battle-api/internal/errors"
	"github.com/KirkDiggler/battle-api/internal/testutils"
)

type MatchTestSuite struct {
	suite.Suite
	ctx     context.Context
	roller  *testutils.ScriptedRoller
	engine  engine.Engine
	ash     *pokemon.Trainer
	misty   *pokemon.Trainer
	pikachu *pokemon.Combatant
	staryu  *pokemon.Combatant
}

func TestMatchSuite(t *testing.T) {
	suite.Run(t, new(MatchTestSuite))
}

func (s *MatchTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.roller = testutils.NewScriptedRoller()

	eng, err := engine.New(&engine.Config{Roller: s.roller})
	s.Require().NoError(err)
	s.engine = eng

	s.pikachu = testutils.CreateTestFighter("1", "Pikachu")
	s.staryu = testutils.CreateTestFighter("2", "Staryu")
	s.ash = testutils.CreateTestTrainer("1", "Ash", s.pikachu)
	s.misty = testutils.CreateTestTrainer("2", "Misty", s.staryu)
}

func (s *MatchTestSuite) input() *engine.MatchInput {
	return &engine.MatchInput{Trainer1: s.ash, Trainer2: s.misty}
}

func (s *MatchTestSuite) splashers() {
	s.ash.Roster[0] = testutils.CreateTestCombatant("3", "Magikarp", 100, pokemon.NewMove("Splash", 0, 1))
	s.misty.Roster[0] = testutils.CreateTestCombatant("4", "Feebas", 100, pokemon.NewMove("Splash", 0, 1))
}

func (s *MatchTestSuite) TestRandomChallengeAwardsWinner() {
	s.pikachu.TakeDamage(95)

	out, err := s.engine.RandomChallenge(s.ctx, s.input())
	s.Require().NoError(err)

	// rosters are healed first, so the first attacker wins the even fight
	s.Equal("Ash", out.WinnerName)
	s.Same(s.ash, out.Winner)
	s.Equal(pokemon.StartingLevel, out.WinnerLevel)
	s.Equal(1, out.WinnerExperience)
	s.Equal(1, out.Rounds)
	s.False(out.Draw)
	s.Equal(0, s.misty.Experience)
	s.Equal("=== RANDOM CHALLENGE: Ash vs Misty ===", out.Log[0])
	s.Equal("Battle: Pikachu (100 HP) vs Staryu (100 HP)", out.Log[1])
}

func (s *MatchTestSuite) TestRandomChallengePicksThroughRoller() {
	bulbasaur := testutils.CreateTestCombatant("3", "Bulbasaur", 1)
	s.ash.AddToRoster(bulbasaur)
	s.roller.Faces = []int{1}

	_, err := s.engine.RandomChallenge(s.ctx, s.input())
	s.Require().NoError(err)
	s.Equal([]int{2}, s.roller.Sizes)
}

func (s *MatchTestSuite) TestRandomChallengeWithoutCombatants() {
	s.misty.Roster = nil

	_, err := s.engine.RandomChallenge(s.ctx, s.input())
	s.Require().Error(err)
	s.True(errors.Is(err, pokemon.ErrNoCombatantsAvailable))
	s.Equal(0, s.ash.Experience)
}

func (s *MatchTestSuite) TestRandomChallengeDrawAwardsNothing() {
	s.splashers()

	out, err := s.engine.RandomChallenge(s.ctx, s.input())
	s.Require().NoError(err)

	s.True(out.Draw)
	s.Empty(out.WinnerName)
	s.Nil(out.Winner)
	s.Equal(0, s.ash.Experience)
	s.Equal(0, s.misty.Experience)
}

func (s *MatchTestSuite) TestDeterministicChallengePicksHealthiest() {
	weak := testutils.CreateTestFighter("3", "Caterpie")
	weak.TakeDamage(50)
	s.ash.Roster = []*pokemon.Combatant{weak, s.pikachu}
	s.staryu.TakeDamage(20)

	out, err := s.engine.DeterministicChallenge(s.ctx, s.input())
	s.Require().NoError(err)

	s.Equal("Ash picks Pikachu (100 HP)", out.Log[1])
	s.Equal("Misty picks Staryu (80 HP)", out.Log[2])
	s.Equal("Ash", out.WinnerName)
	s.Equal(50, weak.LifePoint)
	s.Empty(s.roller.Sizes)
}

func (s *MatchTestSuite) TestDeterministicChallengeDoesNotHeal() {
	s.pikachu.TakeDamage(100)

	_, err := s.engine.DeterministicChallenge(s.ctx, s.input())
	s.Require().Error(err)
	s.True(errors.Is(err, pokemon.ErrNoCombatantsAvailable))
}

func (s *MatchTestSuite) TestRandomArenaFullRun() {
	out, err := s.engine.RandomArena(s.ctx, s.input())
	s.Require().NoError(err)

	s.Equal(engine.ArenaRounds, out.Rounds)
	s.Equal("Ash", out.WinnerName)
	s.Equal(11, out.WinnerLevel)
	s.Equal(0, out.WinnerExperience)
	s.Equal(1, s.misty.Level)
	s.Equal("Ash wins Arena 1!", out.Log[len(out.Log)-1])
}

func (s *MatchTestSuite) TestRandomArenaTieGoesToFirstTrainer() {
	s.splashers()

	out, err := s.engine.RandomArena(s.ctx, s.input())
	s.Require().NoError(err)

	s.Equal(engine.ArenaRounds, out.Rounds)
	s.Equal("Ash", out.WinnerName)
	s.Equal(0, out.WinnerExperience)
}

func (s *MatchTestSuite) TestRandomArenaSkipsEmptyRounds() {
	s.misty.Roster = nil

	out, err := s.engine.RandomArena(s.ctx, s.input())
	s.Require().NoError(err)

	s.Equal(0, out.Rounds)
	s.Equal("Ash", out.WinnerName)
	s.Contains(out.Log, "Round 1 skipped: no combatant available")
}

func (s *MatchTestSuite) TestRandomArenaSecondTrainerCanWin() {
	s.misty.GainExperience(5)
	s.splashers()

	out, err := s.engine.RandomArena(s.ctx, s.input())
	s.Require().NoError(err)
	s.Equal("Misty", out.WinnerName)
	s.Equal(5, out.WinnerExperience)
}

func (s *MatchTestSuite) TestDeterministicArenaEndsWhenRosterFaints() {
	out, err := s.engine.DeterministicArena(s.ctx, s.input())
	s.Require().NoError(err)

	s.Equal(1, out.Rounds)
	s.Equal("Ash", out.WinnerName)
	s.Equal(1, out.WinnerExperience)
	s.Equal(10, s.pikachu.LifePoint)
	s.False(s.staryu.IsAlive())
}

func (s *MatchTestSuite) TestDeterministicArenaNobodyLeft() {
	s.ash.Roster = nil
	s.misty.Roster = nil

	out, err := s.engine.DeterministicArena(s.ctx, s.input())
	s.Require().NoError(err)

	s.Equal(0, out.Rounds)
	s.Equal("Misty", out.WinnerName)
}

func (s *MatchTestSuite) TestDeterministicArenaEarlyExitIgnoresLevel() {
	s.misty.Level = 5
	s.misty.Experience = 30
	s.misty.Roster = nil

	out, err := s.engine.DeterministicArena(s.ctx, s.input())
	s.Require().NoError(err)

	s.Equal(0, out.Rounds)
	s.Equal("Ash", out.WinnerName)
	s.Equal(pokemon.StartingLevel, out.WinnerLevel)
	s.Equal(0, out.WinnerExperience)
	s.Contains(out.Log[len(out.Log)-1], "Ash wins Arena 2")
}

func (s *MatchTestSuite) TestDeterministicArenaDrawsUntilEnd() {
	s.splashers()

	out, err := s.engine.DeterministicArena(s.ctx, s.input())
	s.Require().NoError(err)

	s.Equal(engine.ArenaRounds, out.Rounds)
	s.Equal("Ash", out.WinnerName)
	s.Equal("Ash wins Arena 2!", out.Log[len(out.Log)-1])
}

func (s *MatchTestSuite) TestMatchRequiresTrainers() {
	_, err := s.engine.RandomArena(s.ctx, &engine.MatchInput{Trainer1: s.ash})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}
