package battle_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/battle-api/internal/engine"
	enginemock "github.com/KirkDiggler/battle-api/internal/engine/mock"
	"github.com/KirkDiggler/battle-api/internal/entities/pokemon"
	"github.com/KirkDiggler/battle-api/internal/errors"
	"github.com/KirkDiggler/battle-api/internal/orchestrators/battle"
	"github.com/KirkDiggler/battle-api/internal/pkg/clock"
	"github.com/KirkDiggler/battle-api/internal/repositories/combatants"
	"github.com/KirkDiggler/battle-api/internal/repositories/trainers"
	"github.com/KirkDiggler/battle-api/internal/testutils"
)

var playedAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type OrchestratorTestSuite struct {
	suite.Suite
	ctx           context.Context
	combatantRepo combatants.Repository
	trainerRepo   trainers.Repository
	spans         *tracetest.SpanRecorder
	orchestrator  battle.Service
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.combatantRepo = combatants.NewInMemory()
	s.trainerRepo = trainers.NewInMemory()
	s.spans = tracetest.NewSpanRecorder()

	eng, err := engine.New(&engine.Config{Roller: testutils.NewScriptedRoller()})
	s.Require().NoError(err)

	orch, err := battle.NewOrchestrator(&battle.Config{
		Engine:         eng,
		CombatantRepo:  s.combatantRepo,
		TrainerRepo:    s.trainerRepo,
		Clock:          clock.Fixed{At: playedAt},
		TracerProvider: sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(s.spans)),
	})
	s.Require().NoError(err)
	s.orchestrator = orch

	s.storeCombatant(testutils.CreateTestFighter("1", "Pikachu"))
	s.storeCombatant(testutils.CreateTestFighter("2", "Staryu"))
	s.storeTrainer("1", "Ash", "1")
	s.storeTrainer("2", "Misty", "2")
}

func (s *OrchestratorTestSuite) storeCombatant(c *pokemon.Combatant) {
	_, err := s.combatantRepo.Create(s.ctx, combatants.CreateInput{Combatant: c})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) storeTrainer(id, name string, combatantIDs ...string) {
	data := pokemon.NewTrainerData(id, name)
	data.CombatantIDs = combatantIDs
	_, err := s.trainerRepo.Create(s.ctx, trainers.CreateInput{Trainer: data})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) combatant(id string) *pokemon.Combatant {
	out, err := s.combatantRepo.Get(s.ctx, combatants.GetInput{ID: id})
	s.Require().NoError(err)
	return out.Combatant
}

func (s *OrchestratorTestSuite) trainer(id string) *pokemon.TrainerData {
	out, err := s.trainerRepo.Get(s.ctx, trainers.GetInput{ID: id})
	s.Require().NoError(err)
	return out.Trainer
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := battle.NewOrchestrator(&battle.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestRandomChallengePersistsResults() {
	out, err := s.orchestrator.RandomChallenge(s.ctx, &battle.MatchInput{Trainer1ID: "1", Trainer2ID: "2"})
	s.Require().NoError(err)

	result := out.Result
	s.Equal(battle.ModeRandomChallenge, result.Mode)
	s.Equal("1", result.WinnerID)
	s.Equal("Ash", result.WinnerName)
	s.Equal(1, result.WinnerExperience)
	s.Equal(playedAt, result.PlayedAt)
	s.NotEmpty(result.Log)

	s.Equal(1, s.trainer("1").Experience)
	s.Equal(0, s.trainer("2").Experience)
	s.Equal(10, s.combatant("1").LifePoint)
	s.Equal(0, s.combatant("2").LifePoint)
	s.Equal(10, s.combatant("1").Moves[0].UsageCount)
}

func (s *OrchestratorTestSuite) TestDeterministicModesSeeStoredDamage() {
	_, err := s.orchestrator.DeterministicArena(s.ctx, &battle.MatchInput{Trainer1ID: "1", Trainer2ID: "2"})
	s.Require().NoError(err)

	// nothing heals between deterministic matches, so Misty has nobody left
	_, err = s.orchestrator.DeterministicChallenge(s.ctx, &battle.MatchInput{Trainer1ID: "1", Trainer2ID: "2"})
	s.Require().Error(err)
	s.True(errors.Is(err, pokemon.ErrNoCombatantsAvailable))
	s.True(errors.IsFailedPrecondition(err))

	// random modes heal first
	out, err := s.orchestrator.RandomChallenge(s.ctx, &battle.MatchInput{Trainer1ID: "2", Trainer2ID: "1"})
	s.Require().NoError(err)
	s.Equal("Misty", out.Result.WinnerName)
}

func (s *OrchestratorTestSuite) TestSharedCombatantResolvesToOneObject() {
	s.storeTrainer("3", "Gary", "1", "1")

	out, err := s.orchestrator.RandomArena(s.ctx, &battle.MatchInput{Trainer1ID: "3", Trainer2ID: "2"})
	s.Require().NoError(err)
	s.Equal(engine.ArenaRounds, out.Result.Rounds)
	s.Equal("Gary", out.Result.WinnerName)
	s.Equal(11, out.Result.WinnerLevel)

	gary := s.trainer("3")
	s.Equal([]string{"1", "1"}, gary.CombatantIDs)
	s.Equal(11, gary.Level)

	// Ash fields the same Pikachu, so the arena damage shows through Ash's roster too
	s.Equal(10, s.combatant("1").LifePoint)
}

func (s *OrchestratorTestSuite) TestUnknownTrainer() {
	_, err := s.orchestrator.RandomArena(s.ctx, &battle.MatchInput{Trainer1ID: "1", Trainer2ID: "404"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestRequiresTrainerIDs() {
	_, err := s.orchestrator.RandomArena(s.ctx, &battle.MatchInput{Trainer1ID: "1"})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestMatchIsTraced() {
	_, err := s.orchestrator.DeterministicChallenge(s.ctx, &battle.MatchInput{Trainer1ID: "1", Trainer2ID: "2"})
	s.Require().NoError(err)

	ended := s.spans.Ended()
	s.Require().Len(ended, 1)
	s.Equal("battle.deterministic_challenge", ended[0].Name())
	s.Contains(ended[0].Attributes(), attribute.String("battle.winner", "Ash"))
	s.Contains(ended[0].Attributes(), attribute.String("battle.trainer2_id", "2"))
}

// EngineFailureTestSuite drives the orchestrator with a mocked engine
type EngineFailureTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	engine       *enginemock.MockEngine
	orchestrator battle.Service
	ctx          context.Context
}

func TestEngineFailureSuite(t *testing.T) {
	suite.Run(t, new(EngineFailureTestSuite))
}

func (s *EngineFailureTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.engine = enginemock.NewMockEngine(s.ctrl)
	s.ctx = context.Background()

	combatantRepo := combatants.NewInMemory()
	trainerRepo := trainers.NewInMemory()
	for _, id := range []string{"1", "2"} {
		_, err := trainerRepo.Create(s.ctx, trainers.CreateInput{Trainer: pokemon.NewTrainerData(id, "Trainer "+id)})
		s.Require().NoError(err)
	}

	orch, err := battle.NewOrchestrator(&battle.Config{
		Engine:        s.engine,
		CombatantRepo: combatantRepo,
		TrainerRepo:   trainerRepo,
	})
	s.Require().NoError(err)
	s.orchestrator = orch
}

func (s *EngineFailureTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *EngineFailureTestSuite) TestEngineErrorIsReturned() {
	s.engine.EXPECT().
		RandomArena(gomock.Any(), gomock.Any()).
		Return(nil, errors.Internal("dice jammed"))

	_, err := s.orchestrator.RandomArena(s.ctx, &battle.MatchInput{Trainer1ID: "1", Trainer2ID: "2"})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func (s *EngineFailureTestSuite) TestDrawHasNoWinner() {
	s.engine.EXPECT().
		RandomChallenge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *engine.MatchInput) (*engine.MatchOutput, error) {
			s.Equal("Trainer 1", input.Trainer1.Name)
			s.Equal("Trainer 2", input.Trainer2.Name)
			return &engine.MatchOutput{Draw: true, Rounds: 1, Log: []string{"Draw"}}, nil
		})

	out, err := s.orchestrator.RandomChallenge(s.ctx, &battle.MatchInput{Trainer1ID: "1", Trainer2ID: "2"})
	s.Require().NoError(err)
	s.True(out.Result.Draw)
	s.Empty(out.Result.WinnerID)
	s.Empty(out.Result.WinnerName)
}
