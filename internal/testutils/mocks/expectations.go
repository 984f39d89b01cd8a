// Package mocks provides mock expectation helpers for common testing patterns.
//
// Every helper takes the context as a gomock argument: pass the caller's context when
// it reaches the repository unchanged, or gomock.Any() when the code under test derives
// its own (a traced span context, for example).
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/battle-api/internal/entities/pokemon"
	"github.com/KirkDiggler/battle-api/internal/repositories/combatants"
	combatantsmock "github.com/KirkDiggler/battle-api/internal/repositories/combatants/mock"
	"github.com/KirkDiggler/battle-api/internal/repositories/moves"
	movesmock "github.com/KirkDiggler/battle-api/internal/repositories/moves/mock"
	"github.com/KirkDiggler/battle-api/internal/repositories/trainers"
	trainersmock "github.com/KirkDiggler/battle-api/internal/repositories/trainers/mock"
)

// ExpectMoveGet sets up a mock expectation for getting a catalog move
func ExpectMoveGet(
	ctx any, mockRepo *movesmock.MockRepository,
	moveID string, move *pokemon.MoveData, err error,
) *gomock.Call {
	if err != nil {
		return mockRepo.EXPECT().
			Get(ctx, moves.GetInput{ID: moveID}).
			Return(nil, err)
	}
	return mockRepo.EXPECT().
		Get(ctx, moves.GetInput{ID: moveID}).
		Return(&moves.GetOutput{Move: move}, nil)
}

// ExpectCombatantGet sets up a mock expectation for getting a combatant
func ExpectCombatantGet(
	ctx any, mockRepo *combatantsmock.MockRepository,
	combatantID string, combatant *pokemon.Combatant, err error,
) *gomock.Call {
	if err != nil {
		return mockRepo.EXPECT().
			Get(ctx, combatants.GetInput{ID: combatantID}).
			Return(nil, err)
	}
	return mockRepo.EXPECT().
		Get(ctx, combatants.GetInput{ID: combatantID}).
		Return(&combatants.GetOutput{Combatant: combatant}, nil)
}

// ExpectCombatantUpdate sets up a mock expectation for saving a combatant. The stored
// combatant is echoed back, as the real stores do.
func ExpectCombatantUpdate(ctx any, mockRepo *combatantsmock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input combatants.UpdateInput) (*combatants.UpdateOutput, error) {
			return &combatants.UpdateOutput{Combatant: input.Combatant}, nil
		})
}

// ExpectTrainerGet sets up a mock expectation for getting a trainer
func ExpectTrainerGet(
	ctx any, mockRepo *trainersmock.MockRepository,
	trainerID string, trainer *pokemon.TrainerData, err error,
) *gomock.Call {
	if err != nil {
		return mockRepo.EXPECT().
			Get(ctx, trainers.GetInput{ID: trainerID}).
			Return(nil, err)
	}
	return mockRepo.EXPECT().
		Get(ctx, trainers.GetInput{ID: trainerID}).
		Return(&trainers.GetOutput{Trainer: trainer}, nil)
}

// ExpectTrainerUpdate sets up a mock expectation for saving a trainer
func ExpectTrainerUpdate(ctx any, mockRepo *trainersmock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input trainers.UpdateInput) (*trainers.UpdateOutput, error) {
			return &trainers.UpdateOutput{Trainer: input.Trainer}, nil
		})
}
