package pokemon

import (
	"github.com/KirkDiggler/battle-api/internal/errors"
)

// Reasons carried by battle rule violations
const (
	ReasonQuotaExceeded         = "QUOTA_EXCEEDED"
	ReasonRosterFull            = "ROSTER_FULL"
	ReasonDuplicateMove         = "DUPLICATE_MOVE"
	ReasonNoCombatantsAvailable = "NO_COMBATANTS_AVAILABLE"
)

// Sentinels for errors.Is checks
var (
	ErrQuotaExceeded         = errors.Sentinel(errors.CodeResourceExhausted, ReasonQuotaExceeded)
	ErrRosterFull            = errors.Sentinel(errors.CodeFailedPrecondition, ReasonRosterFull)
	ErrDuplicateMove         = errors.Sentinel(errors.CodeAlreadyExists, ReasonDuplicateMove)
	ErrNoCombatantsAvailable = errors.Sentinel(errors.CodeFailedPrecondition, ReasonNoCombatantsAvailable)
)

// QuotaExceeded is returned when a move is used past its usage limit
func QuotaExceeded(move string) *errors.Error {
	return errors.ResourceExhaustedf("%s reached its usage limit", move).
		WithReason(ReasonQuotaExceeded).
		WithMeta("move", move)
}

// RosterFull is returned when a fifth move is learned
func RosterFull(combatant string) *errors.Error {
	return errors.FailedPreconditionf("%s already knows %d moves", combatant, MaxMoves).
		WithReason(ReasonRosterFull).
		WithMeta("combatant", combatant)
}

// DuplicateMove is returned when a combatant learns a move name it already knows
func DuplicateMove(combatant, move string) *errors.Error {
	return errors.AlreadyExistsf("%s already knows %s", combatant, move).
		WithReason(ReasonDuplicateMove).
		WithMeta("combatant", combatant).
		WithMeta("move", move)
}

// NoCombatantsAvailable is returned when a single battle cannot field a combatant
func NoCombatantsAvailable(trainers ...string) *errors.Error {
	err := errors.FailedPrecondition("no combatant available").
		WithReason(ReasonNoCombatantsAvailable)
	if len(trainers) > 0 {
		names := make([]interface{}, len(trainers))
		for i, t := range trainers {
			names[i] = t
		}
		err = err.WithMeta("trainers", names)
	}
	return err
}
