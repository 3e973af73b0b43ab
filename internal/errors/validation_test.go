package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationErrorIsSorted() {
	ve := &errors.ValidationError{Fields: map[string][]string{}}
	ve.AddFieldError("rank", "must be between 1 and 10")
	ve.AddFieldError("characterID", "is required")

	s.True(ve.HasErrors())
	s.Equal("validation failed: characterID: is required; rank: must be between 1 and 10", ve.Error())

	err := ve.ToError()
	s.Equal(errors.CodeInvalidArgument, err.Code)
	s.NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("level", "must be between %d and %d", 1, 20).
		RequiredField("spellID").
		Field("choice", "must be heal or harm")

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "choice: must be heal or harm")
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidateHelpers() {
	testCases := []struct {
		name      string
		validate  func(vb *errors.ValidationBuilder)
		shouldErr bool
	}{
		{"required present", func(vb *errors.ValidationBuilder) { errors.ValidateRequired("id", "default", vb) }, false},
		{"required blank", func(vb *errors.ValidationBuilder) { errors.ValidateRequired("id", "   ", vb) }, true},
		{"range inside", func(vb *errors.ValidationBuilder) { errors.ValidateRange("rank", 10, 1, 10, vb) }, false},
		{"range below", func(vb *errors.ValidationBuilder) { errors.ValidateRange("rank", 0, 1, 10, vb) }, true},
		{"enum allowed", func(vb *errors.ValidationBuilder) {
			errors.ValidateEnum("choice", "harm", []string{"heal", "harm"}, vb)
		}, false},
		{"enum rejected", func(vb *errors.ValidationBuilder) {
			errors.ValidateEnum("choice", "smite", []string{"heal", "harm"}, vb)
		}, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			tc.validate(vb)
			if tc.shouldErr {
				s.Error(vb.Build())
			} else {
				s.NoError(vb.Build())
			}
		})
	}
}
