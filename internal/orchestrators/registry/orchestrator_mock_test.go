package registry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/battle-api/internal/entities/pokemon"
	"github.com/KirkDiggler/battle-api/internal/errors"
	"github.com/KirkDiggler/battle-api/internal/orchestrators/registry"
	"github.com/KirkDiggler/battle-api/internal/pkg/idgen"
	idgenmock "github.com/KirkDiggler/battle-api/internal/pkg/idgen/mock"
	combatantsmock "github.com/KirkDiggler/battle-api/internal/repositories/combatants/mock"
	"github.com/KirkDiggler/battle-api/internal/repositories/moves"
	movesmock "github.com/KirkDiggler/battle-api/internal/repositories/moves/mock"
	trainersmock "github.com/KirkDiggler/battle-api/internal/repositories/trainers/mock"
	"github.com/KirkDiggler/battle-api/internal/testutils"
	"github.com/KirkDiggler/battle-api/internal/testutils/mocks"
)

// StorageFailureTestSuite checks that repository failures surface as internal errors
type StorageFailureTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	moveRepo      *movesmock.MockRepository
	combatantRepo *combatantsmock.MockRepository
	trainerRepo   *trainersmock.MockRepository
	orchestrator  registry.Service
	ctx           context.Context
}

func TestStorageFailureSuite(t *testing.T) {
	suite.Run(t, new(StorageFailureTestSuite))
}

func (s *StorageFailureTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.moveRepo = movesmock.NewMockRepository(s.ctrl)
	s.combatantRepo = combatantsmock.NewMockRepository(s.ctrl)
	s.trainerRepo = trainersmock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	orch, err := registry.NewOrchestrator(&registry.Config{
		MoveRepo:             s.moveRepo,
		CombatantRepo:        s.combatantRepo,
		TrainerRepo:          s.trainerRepo,
		MoveIDGenerator:      idgen.NewSequential("move"),
		CombatantIDGenerator: idgen.NewSequential("combatant"),
		TrainerIDGenerator:   idgen.NewSequential("trainer"),
	})
	s.Require().NoError(err)
	s.orchestrator = orch
}

func (s *StorageFailureTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *StorageFailureTestSuite) TestCreateTrainerStorageFailure() {
	s.trainerRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		Return(nil, errors.New(errors.CodeInternal, "connection reset"))

	_, err := s.orchestrator.CreateTrainer(s.ctx, &registry.CreateTrainerInput{Name: "Brock"})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
	s.Contains(err.Error(), "failed to create trainer")
}

func (s *StorageFailureTestSuite) TestListMovesStorageFailure() {
	s.moveRepo.EXPECT().
		List(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	_, err := s.orchestrator.ListMoves(s.ctx, &registry.ListMovesInput{})
	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}

func (s *StorageFailureTestSuite) TestPrefixedIDs() {
	s.combatantRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		Return(nil, nil)

	out, err := s.orchestrator.CreateCombatant(s.ctx, &registry.CreateCombatantInput{Name: "Onix", LifePoint: 80})
	s.Require().NoError(err)
	s.Equal("combatant_1", out.Combatant.ID)
}

func (s *StorageFailureTestSuite) TestLearnMoveSavesACopy() {
	catalog := pokemon.NewMoveData("move_1", "Ember", 40, 5)
	charmander := pokemon.NewCombatant("combatant_1", "Charmander", 90)

	mocks.ExpectMoveGet(s.ctx, s.moveRepo, "move_1", catalog, nil)
	mocks.ExpectCombatantGet(s.ctx, s.combatantRepo, "combatant_1", charmander, nil)
	mocks.ExpectCombatantUpdate(s.ctx, s.combatantRepo)

	out, err := s.orchestrator.LearnMove(s.ctx, &registry.LearnMoveInput{CombatantID: "combatant_1", MoveID: "move_1"})
	s.Require().NoError(err)
	s.Require().Len(out.Combatant.Moves, 1)
	s.Equal("Ember", out.Combatant.Moves[0].Name)
	s.Equal(5, out.Combatant.Moves[0].UsageLimit)
	s.Equal(0, out.Combatant.Moves[0].UsageCount)
}

func (s *StorageFailureTestSuite) TestLearnMoveRosterFullSkipsSave() {
	full := testutils.CreateTestCombatant("combatant_1", "Mew", 100,
		pokemon.NewMove("Psychic", 30, 5),
		pokemon.NewMove("Transform", 0, 5),
		pokemon.NewMove("Pound", 10, 5),
		pokemon.NewMove("Metronome", 20, 5),
	)

	mocks.ExpectMoveGet(s.ctx, s.moveRepo, "move_1", pokemon.NewMoveData("move_1", "Ember", 40, 5), nil)
	mocks.ExpectCombatantGet(s.ctx, s.combatantRepo, "combatant_1", full, nil)

	_, err := s.orchestrator.LearnMove(s.ctx, &registry.LearnMoveInput{CombatantID: "combatant_1", MoveID: "move_1"})
	s.Require().Error(err)
	s.ErrorIs(err, pokemon.ErrRosterFull)
}

func (s *StorageFailureTestSuite) TestLearnMoveUnknownMove() {
	mocks.ExpectMoveGet(s.ctx, s.moveRepo, "move_9", nil, errors.NotFound("move not found"))

	_, err := s.orchestrator.LearnMove(s.ctx, &registry.LearnMoveInput{CombatantID: "combatant_1", MoveID: "move_9"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *StorageFailureTestSuite) TestCreateMoveStoresGeneratedID() {
	ids := idgenmock.NewMockGenerator(s.ctrl)
	ids.EXPECT().Generate().Return("move-abc")

	orch, err := registry.NewOrchestrator(&registry.Config{
		MoveRepo:             s.moveRepo,
		CombatantRepo:        s.combatantRepo,
		TrainerRepo:          s.trainerRepo,
		MoveIDGenerator:      ids,
		CombatantIDGenerator: idgen.NewSequential(""),
		TrainerIDGenerator:   idgen.NewSequential(""),
	})
	s.Require().NoError(err)

	s.moveRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input moves.CreateInput) (*moves.CreateOutput, error) {
			s.Equal("move-abc", input.Move.ID)
			return &moves.CreateOutput{Move: input.Move}, nil
		})

	out, err := orch.CreateMove(s.ctx, &registry.CreateMoveInput{Name: "Surf", Damage: 35, UsageLimit: 8})
	s.Require().NoError(err)
	s.Equal("move-abc", out.Move.ID)
}
