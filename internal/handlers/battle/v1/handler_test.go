package v1_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/battle-api/internal/api/battlev1"
	"github.com/KirkDiggler/battle-api/internal/entities/pokemon"
	"github.com/KirkDiggler/battle-api/internal/errors"
	v1 "github.com/KirkDiggler/battle-api/internal/handlers/battle/v1"
	"github.com/KirkDiggler/battle-api/internal/orchestrators/battle"
	battlemock "github.com/KirkDiggler/battle-api/internal/orchestrators/battle/mock"
	"github.com/KirkDiggler/battle-api/internal/orchestrators/registry"
	registrymock "github.com/KirkDiggler/battle-api/internal/orchestrators/registry/mock"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRegistry *registrymock.MockService
	mockBattle   *battlemock.MockService
	handler      *v1.Handler
	ctx          context.Context
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRegistry = registrymock.NewMockService(s.ctrl)
	s.mockBattle = battlemock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1.NewHandler(&v1.HandlerConfig{
		RegistryService: s.mockRegistry,
		BattleService:   s.mockBattle,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) TestNewHandlerValidation() {
	_, err := v1.NewHandler(&v1.HandlerConfig{RegistryService: s.mockRegistry})
	s.Require().Error(err)
	s.Contains(err.Error(), "battle service is required")

	_, err = v1.NewHandler(nil)
	s.Require().Error(err)
}

func (s *HandlerTestSuite) TestCreateMove() {
	s.mockRegistry.EXPECT().
		CreateMove(s.ctx, &registry.CreateMoveInput{Name: "Ember", Damage: 15, UsageLimit: 3}).
		Return(&registry.CreateMoveOutput{Move: pokemon.NewMoveData("1", "Ember", 15, 3)}, nil)

	resp, err := s.handler.CreateMove(s.ctx, &battlev1.CreateMoveRequest{Name: "Ember", Damage: 15, UsageLimit: 3})
	s.Require().NoError(err)
	s.Equal(&battlev1.Move{ID: "1", Name: "Ember", Damage: 15, UsageLimit: 3}, resp.Move)
}

func (s *HandlerTestSuite) TestLearnMoveMapsDomainErrors() {
	testCases := []struct {
		name   string
		err    error
		code   codes.Code
		reason string
	}{
		{
			name:   "roster full",
			err:    pokemon.RosterFull("Pikachu"),
			code:   codes.FailedPrecondition,
			reason: pokemon.ReasonRosterFull,
		},
		{
			name:   "duplicate move",
			err:    pokemon.DuplicateMove("Pikachu", "Tackle"),
			code:   codes.AlreadyExists,
			reason: pokemon.ReasonDuplicateMove,
		},
		{
			name: "unknown combatant",
			err:  errors.NotFound("combatant with ID 9 not found"),
			code: codes.NotFound,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockRegistry.EXPECT().
				LearnMove(s.ctx, &registry.LearnMoveInput{CombatantID: "1", MoveID: "2"}).
				Return(nil, tc.err)

			_, err := s.handler.LearnMove(s.ctx, &battlev1.LearnMoveRequest{CombatantID: "1", MoveID: "2"})
			s.Require().Error(err)
			s.Equal(tc.code, status.Code(err))
			s.Equal(tc.reason, errors.GetReason(errors.FromGRPCError(err)))
		})
	}
}

func (s *HandlerTestSuite) TestRequiredFields() {
	_, err := s.handler.LearnMove(s.ctx, &battlev1.LearnMoveRequest{CombatantID: "1"})
	s.Equal(codes.InvalidArgument, status.Code(err))

	_, err = s.handler.AddToRoster(s.ctx, &battlev1.AddToRosterRequest{TrainerID: "1"})
	s.Equal(codes.InvalidArgument, status.Code(err))

	_, err = s.handler.RandomArena(s.ctx, &battlev1.MatchRequest{Trainer2ID: "2"})
	s.Equal(codes.InvalidArgument, status.Code(err))

	_, err = s.handler.CreateTrainer(s.ctx, &battlev1.CreateTrainerRequest{})
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestHealRoster() {
	healed := pokemon.NewCombatant("4", "Onix", 80)
	s.mockRegistry.EXPECT().
		HealRoster(s.ctx, &registry.HealRosterInput{TrainerID: "1"}).
		Return(&registry.HealRosterOutput{
			Trainer: &pokemon.TrainerData{ID: "1", Name: "Brock", Level: 2, Experience: 3, CombatantIDs: []string{"4"}},
			Healed:  []*pokemon.Combatant{healed},
		}, nil)

	resp, err := s.handler.HealRoster(s.ctx, &battlev1.HealRosterRequest{TrainerID: "1"})
	s.Require().NoError(err)
	s.Equal(int32(2), resp.Trainer.Level)
	s.Require().Len(resp.Healed, 1)
	s.Equal(int32(80), resp.Healed[0].LifePoint)
}

func (s *HandlerTestSuite) TestMatchModesRouteToBattleService() {
	playedAt := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	input := &battle.MatchInput{Trainer1ID: "1", Trainer2ID: "2"}
	result := func(mode battle.Mode) *battle.MatchOutput {
		return &battle.MatchOutput{Result: &battle.MatchResult{
			Mode:       mode,
			WinnerID:   "2",
			WinnerName: "Misty",
			Rounds:     100,
			PlayedAt:   playedAt,
		}}
	}

	s.mockBattle.EXPECT().RandomChallenge(s.ctx, input).Return(result(battle.ModeRandomChallenge), nil)
	s.mockBattle.EXPECT().DeterministicChallenge(s.ctx, input).Return(result(battle.ModeDeterministicChallenge), nil)
	s.mockBattle.EXPECT().RandomArena(s.ctx, input).Return(result(battle.ModeRandomArena), nil)
	s.mockBattle.EXPECT().DeterministicArena(s.ctx, input).Return(result(battle.ModeDeterministicArena), nil)

	req := &battlev1.MatchRequest{Trainer1ID: "1", Trainer2ID: "2"}
	for mode, call := range map[battle.Mode]func(context.Context, *battlev1.MatchRequest) (*battlev1.MatchResponse, error){
		battle.ModeRandomChallenge:        s.handler.RandomChallenge,
		battle.ModeDeterministicChallenge: s.handler.DeterministicChallenge,
		battle.ModeRandomArena:            s.handler.RandomArena,
		battle.ModeDeterministicArena:     s.handler.DeterministicArena,
	} {
		resp, err := call(s.ctx, req)
		s.Require().NoError(err)
		s.Equal(string(mode), resp.Mode)
		s.Equal("Misty", resp.WinnerName)
		s.Equal(int32(100), resp.Rounds)
		s.Equal(playedAt, resp.PlayedAt)
	}
}

func (s *HandlerTestSuite) TestMatchWithoutCombatants() {
	s.mockBattle.EXPECT().
		DeterministicChallenge(s.ctx, gomock.Any()).
		Return(nil, pokemon.NoCombatantsAvailable("Ash", "Misty"))

	_, err := s.handler.DeterministicChallenge(s.ctx, &battlev1.MatchRequest{Trainer1ID: "1", Trainer2ID: "2"})
	s.Require().Error(err)
	s.Equal(codes.FailedPrecondition, status.Code(err))
	s.True(errors.Is(errors.FromGRPCError(err), pokemon.ErrNoCombatantsAvailable))
}
