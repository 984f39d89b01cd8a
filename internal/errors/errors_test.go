package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/battle-api/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "trainer not found",
			expected: "NOT_FOUND: trainer not found",
		},
		{
			name:     "failed precondition error",
			code:     errors.CodeFailedPrecondition,
			message:  "no combatant available",
			expected: "FAILED_PRECONDITION: no combatant available",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndReason() {
	base := errors.FailedPrecondition("combatant already knows 4 moves").
		WithReason("ROSTER_FULL").
		WithMeta("combatant_id", "7")
	wrapped := errors.Wrap(base, "failed to learn move")

	s.Equal(errors.CodeFailedPrecondition, wrapped.Code)
	s.Equal("ROSTER_FULL", wrapped.Reason)
	s.Equal("7", wrapped.Meta["combatant_id"])
	s.Equal(base, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPlainError() {
	wrapped := errors.Wrap(fmt.Errorf("connection refused"), "failed to save trainer")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to save trainer", wrapped.Message)
	s.Contains(wrapped.Error(), "connection refused")
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	wrapped := errors.WrapWithCode(fmt.Errorf("timeout"), errors.CodeUnavailable, "store unavailable")
	s.Equal(errors.CodeUnavailable, wrapped.Code)
}

func (s *ErrorsTestSuite) TestSentinelMatching() {
	rosterFull := errors.Sentinel(errors.CodeFailedPrecondition, "ROSTER_FULL")
	noCombatants := errors.Sentinel(errors.CodeFailedPrecondition, "NO_COMBATANTS_AVAILABLE")

	err := errors.Wrap(
		errors.FailedPrecondition("max 4 moves").WithReason("ROSTER_FULL"),
		"learn move",
	)

	s.True(errors.Is(err, rosterFull))
	s.False(errors.Is(err, noCombatants))
	s.True(errors.Is(err, errors.FailedPrecondition("")), "code-only target matches any reason")
	s.False(errors.Is(err, errors.NotFound("")))
}

func (s *ErrorsTestSuite) TestGetters() {
	err := errors.Wrap(errors.NotFound("move not found").WithReason("MISSING"), "wrapped")
	stdErr := fmt.Errorf("standard error")

	s.Equal(errors.CodeNotFound, errors.GetCode(err))
	s.Equal(errors.CodeInternal, errors.GetCode(stdErr))
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal("MISSING", errors.GetReason(err))
	s.Equal("", errors.GetReason(stdErr))
	s.Equal("wrapped", errors.GetMessage(err))
	s.Equal("standard error", errors.GetMessage(stdErr))
	s.Nil(errors.GetMeta(stdErr))
	s.True(errors.IsNotFound(err))
	s.False(errors.IsInvalidArgument(err))
}

func (s *ErrorsTestSuite) TestHTTPStatus() {
	testCases := []struct {
		code     errors.Code
		expected int
	}{
		{errors.CodeOK, 200},
		{errors.CodeNotFound, 404},
		{errors.CodeInvalidArgument, 400},
		{errors.CodeFailedPrecondition, 400},
		{errors.CodeAlreadyExists, 409},
		{errors.CodeInternal, 500},
		{errors.Code("BOGUS"), 500},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, tc.code.HTTPStatus())
		})
	}
}

func (s *ErrorsTestSuite) TestGRPCRoundTrip() {
	err := errors.ResourceExhaustedf("Tackle reached its usage limit").
		WithReason("QUOTA_EXCEEDED").
		WithMeta("move", "Tackle")

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.ResourceExhausted, st.Code())
	s.Equal("Tackle reached its usage limit", st.Message())

	back := errors.FromGRPCError(grpcErr)
	s.Equal(errors.CodeResourceExhausted, errors.GetCode(back))
	s.Equal("QUOTA_EXCEEDED", errors.GetReason(back))
	s.Equal("Tackle", errors.GetMeta(back)["move"])
}

func (s *ErrorsTestSuite) TestGRPCPlainErrors() {
	s.Nil(errors.ToGRPCError(nil))

	st, ok := status.FromError(errors.ToGRPCError(fmt.Errorf("boom")))
	s.Require().True(ok)
	s.Equal(codes.Internal, st.Code())

	back := errors.FromGRPCError(status.Error(codes.NotFound, "trainer not found"))
	s.Equal(errors.CodeNotFound, errors.GetCode(back))
	s.Equal("trainer not found", errors.GetMessage(back))
}
