package errors_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-gearset/internal/errors"
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
			message:  "catalog not found",
			expected: "NOT_FOUND: catalog not found",
		},
		{
			name:     "failed precondition error",
			code:     errors.CodeFailedPrecondition,
			message:  "there are no item set combinations",
			expected: "FAILED_PRECONDITION: there are no item set combinations",
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
	err := errors.Internal("failed to assign slot").
		WithMeta("reason", "missing_item").
		WithMeta("slot", "Finger 2")

	s.Assert().Equal("missing_item", err.Meta["reason"])
	s.Assert().Equal("Finger 2", err.Meta["slot"])
	s.Assert().True(errors.HasMeta(err, "reason", "missing_item"))
	s.Assert().False(errors.HasMeta(err, "reason", "validation"))
	s.Assert().False(errors.HasMeta(fmt.Errorf("plain"), "reason", "missing_item"))
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("open items.json: no such file")
	wrapped := errors.Wrap(baseErr, "failed to load catalog")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to load catalog", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	baseErr := errors.NotFound("catalog not found").WithMeta("catalog", "default")
	wrapped := errors.Wrap(baseErr, "failed to load catalog")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().Equal("default", wrapped.Meta["catalog"])
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapContextErrors() {
	s.Assert().Equal(errors.CodeCanceled, errors.Wrap(context.Canceled, "search stopped").Code)
	s.Assert().Equal(errors.CodeDeadlineExceeded, errors.Wrap(context.DeadlineExceeded, "search stopped").Code)
	s.Assert().True(errors.IsCanceled(fmt.Errorf("outer: %w", context.Canceled)))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := errors.NotFound("key missing").WithMeta("key", "catalog:items:default")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeDataLoss, "catalog corrupted")

	s.Assert().Equal(errors.CodeDataLoss, wrapped.Code)
	s.Assert().Equal("catalog corrupted", wrapped.Message)
	s.Assert().Equal("catalog:items:default", wrapped.Meta["key"])
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestFormattedConstructors() {
	err := errors.NotFoundf("catalog %s not found", "default")
	s.Assert().Equal(errors.CodeNotFound, err.Code)
	s.Assert().Equal("catalog default not found", err.Message)

	err = errors.InvalidArgumentf("unknown location %q", "tail")
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().Equal(`unknown location "tail"`, err.Message)
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.NotFound("catalog not found")
	err2 := errors.NotFound("item not found")
	err3 := errors.InvalidArgument("bad level")

	s.Assert().True(errors.Is(err1, err2))
	s.Assert().False(errors.Is(err1, err3))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("boom")))
	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(errors.NotFound("x")))
	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(fmt.Errorf("wrapped: %w", errors.NotFound("x"))))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	s.Assert().Equal("", errors.GetMessage(nil))
	s.Assert().Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
	s.Assert().Equal("catalog not found", errors.GetMessage(errors.NotFound("catalog not found")))
}

func (s *ErrorsTestSuite) TestExitCode() {
	s.Assert().Equal(0, errors.CodeOK.ExitCode())
	s.Assert().Equal(2, errors.CodeInvalidArgument.ExitCode())
	s.Assert().Equal(2, errors.CodeNotFound.ExitCode())
	s.Assert().Equal(1, errors.CodeInternal.ExitCode())
	s.Assert().Equal(1, errors.CodeCanceled.ExitCode())
}
