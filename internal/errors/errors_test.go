package errors_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/junglerando/rando-api/internal/errors"
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
			message:  "no result for key",
			expected: "NOT_FOUND: no result for key",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "bad post body",
			expected: "INVALID_ARGUMENT: bad post body",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("redis connection refused")
	wrapped := errors.Wrap(baseErr, "failed to cache result")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to cache result", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.PlacementFailed("no slot for wrinkly door").WithMeta("level", "Jungle Japes")
	wrapped := errors.Wrap(baseErr, "door placement failed")

	s.Assert().Equal(errors.CodeAborted, wrapped.Code)
	s.Assert().Equal("Jungle Japes", wrapped.Meta["level"])
	s.Assert().True(errors.IsPlacementFailed(wrapped))
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	s.Assert().True(errors.NotFound("a").Is(errors.NotFound("b")))
	s.Assert().False(errors.NotFound("a").Is(errors.InvalidArgument("a")))
}

func (s *ErrorsTestSuite) TestGetCode() {
	wrapped := errors.Wrap(errors.NotFound("test"), "wrapped")

	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(wrapped))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	s.Assert().Equal("wrapped message", errors.GetMessage(errors.Wrap(errors.NotFound("inner"), "wrapped message")))
	s.Assert().Equal("standard error", errors.GetMessage(fmt.Errorf("standard error")))
	s.Assert().Equal("", errors.GetMessage(nil))
}

func (s *ErrorsTestSuite) TestDisplay() {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "timeout",
			err:      errors.Timeout("generation timed out"),
			expected: "TimeoutError: generation timed out",
		},
		{
			name:     "placement",
			err:      errors.PlacementFailedf("no fairy slots left in %s", "Hideout Helm"),
			expected: "PlacementError: no fairy slots left in Hideout Helm",
		},
		{
			name:     "plain error",
			err:      fmt.Errorf("index out of range"),
			expected: "InternalError: index out of range",
		},
		{
			name:     "validation",
			err:      errors.InvalidArgument("seed must be a number"),
			expected: "ValidationError: seed must be a number",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, errors.Display(tc.err))
		})
	}
	s.Assert().Equal("", errors.Display(nil))
}

func (s *ErrorsTestSuite) TestFromContext() {
	s.Assert().NoError(errors.FromContext(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()
	s.Assert().True(errors.IsDeadlineExceeded(errors.FromContext(ctx)))

	canceled, cancelNow := context.WithCancel(context.Background())
	cancelNow()
	s.Assert().True(errors.IsCanceled(errors.FromContext(canceled)))
}

func (s *ErrorsTestSuite) TestHTTPStatus() {
	testCases := []struct {
		code     errors.Code
		expected int
	}{
		{errors.CodeOK, 200},
		{errors.CodeNotFound, 404},
		{errors.CodeInvalidArgument, 400},
		{errors.CodeAlreadyExists, 409},
		{errors.CodeDeadlineExceeded, 504},
		{errors.CodeInternal, 500},
		{errors.CodeUnavailable, 503},
		{errors.Code("SOMETHING_ELSE"), 500},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Assert().Equal(tc.expected, tc.code.HTTPStatus())
		})
	}
}

func (s *ErrorsTestSuite) TestGRPCConversion() {
	grpcErr := errors.ToGRPCError(errors.NotFound("no job for key"))
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Assert().Equal(codes.NotFound, st.Code())
	s.Assert().Equal("no job for key", st.Message())

	err := errors.FromGRPCError(status.Error(codes.DeadlineExceeded, "slow"))
	s.Assert().Equal(errors.CodeDeadlineExceeded, errors.GetCode(err))
	s.Assert().Equal("slow", errors.GetMessage(err))

	s.Assert().Equal(codes.Unknown, errors.Code("SOMETHING_ELSE").GRPCCode())
}
