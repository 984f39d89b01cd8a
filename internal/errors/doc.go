// Package errors provides the structured error type shared by every layer of battle-api.
//
// An Error carries a Code (the transport-neutral category), an optional Reason (the
// domain-specific kind, e.g. ROSTER_FULL), a user-facing Message, an optional Cause and
// free-form Meta.
//
// Creating errors:
//
//	err := errors.NotFoundf("trainer %s not found", id)
//	err := errors.FailedPrecondition("combatant already knows four moves").
//	    WithReason("ROSTER_FULL").
//	    WithMeta("combatant_id", id)
//
// Wrapping keeps the code, reason and meta of the wrapped Error:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to load trainer")
//	}
//
// Matching a domain kind uses a reason-only sentinel:
//
//	var ErrRosterFull = errors.Sentinel(errors.CodeFailedPrecondition, "ROSTER_FULL")
//	if errors.Is(err, ErrRosterFull) { ... }
//
// Layer guidelines:
//   - repositories return NotFound / AlreadyExists / InvalidArgument and wrap storage failures
//   - orchestrators validate input with the ValidationBuilder and wrap repository errors
//   - handlers convert with ToGRPCError; HTTPStatus is available for non-gRPC callers
package errors
