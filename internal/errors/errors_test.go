package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
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
			message:  "gear item not found",
			expected: "NOT_FOUND: gear item not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "unknown spell rank",
			expected: "INVALID_ARGUMENT: unknown spell rank",
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

func (s *ErrorsTestSuite) TestWithMeta() {
	err := errors.NotFound("gear item not found").
		WithMeta("gear_id", "gear_1").
		WithMeta("character_id", "default")

	s.Equal("gear_1", err.Meta["gear_id"])
	s.Equal("default", err.Meta["character_id"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to load sheet")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to load sheet", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.NotFound("key not found").WithMeta("key", "sheet:default:level")
	wrapped := errors.Wrap(baseErr, "failed to load level")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("sheet:default:level", wrapped.Meta["key"])
	s.True(errors.IsNotFound(wrapped))

	// wrapping copies meta so the cause is not mutated
	wrapped.WithMeta("slice", "level")
	s.NotContains(baseErr.Meta, "slice")
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := fmt.Errorf("dial tcp: timeout")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeUnavailable, "image service unavailable")

	s.Equal(errors.CodeUnavailable, wrapped.Code)
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestIsComparesCodes() {
	err := errors.Wrap(errors.FailedPrecondition("wrong class"), "import rejected")
	s.True(errors.Is(err, errors.FailedPrecondition("anything")))
	s.False(errors.Is(err, errors.NotFound("anything")))
}

func (s *ErrorsTestSuite) TestGetters() {
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Nil(errors.GetMeta(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestToGRPCError() {
	testCases := []struct {
		name     string
		err      error
		wantCode codes.Code
	}{
		{"not found", errors.NotFound("missing"), codes.NotFound},
		{"invalid argument", errors.InvalidArgument("bad"), codes.InvalidArgument},
		{"failed precondition", errors.FailedPrecondition("wrong class"), codes.FailedPrecondition},
		{"unavailable", errors.Unavailable("down"), codes.Unavailable},
		{"plain error", fmt.Errorf("boom"), codes.Internal},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			st, ok := status.FromError(errors.ToGRPCError(tc.err))
			s.Require().True(ok)
			s.Equal(tc.wantCode, st.Code())
		})
	}

	s.Nil(errors.ToGRPCError(nil))
}

func (s *ErrorsTestSuite) TestGRPCRoundTripKeepsMeta() {
	original := errors.FailedPrecondition("unsupported class").WithMeta("class", "Wizard")

	converted := errors.FromGRPCError(errors.ToGRPCError(original))

	s.True(errors.IsFailedPrecondition(converted))
	s.Contains(converted.Error(), "unsupported class")
	s.Equal("Wizard", errors.GetMeta(converted)["class"])
}
