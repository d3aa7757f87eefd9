package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/arena-api/internal/errors"
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
			message:  "entity not found",
			expected: "NOT_FOUND: entity not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "quantity exceeds held amount",
			expected: "INVALID_ARGUMENT: quantity exceeds held amount",
		},
		{
			name:     "already exists error",
			code:     errors.CodeAlreadyExists,
			message:  "room already exists",
			expected: "ALREADY_EXISTS: room already exists",
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

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("match not found").
		WithMeta("match_id", uint64(42)).
		WithMeta("mode", "MODE_DUEL")

	s.Assert().Equal(uint64(42), err.Meta["match_id"])
	s.Assert().Equal("MODE_DUEL", err.Meta["mode"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("redis connection refused")
	wrapped := errors.Wrap(baseErr, "failed to store match result")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to store match result", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	inner := errors.NotFound("room not found")
	wrapped := errors.Wrap(inner, "failed to join room")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().True(errors.IsNotFound(wrapped))
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(errors.NotFound("gone")))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain error")))
}

func (s *ErrorsTestSuite) TestTypeCheckers() {
	s.Assert().True(errors.IsNotFound(errors.NotFoundf("ticket %d not found", 7)))
	s.Assert().True(errors.IsAlreadyExists(errors.AlreadyExists("room exists")))
	s.Assert().True(errors.IsInvalidArgument(errors.InvalidArgument("bad slot")))
	s.Assert().False(errors.IsNotFound(errors.Internal("boom")))
	s.Assert().False(errors.IsNotFound(nil))
}
