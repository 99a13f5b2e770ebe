package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"shiprates/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("routeRule", "123")

		assert.Equal(t, "routeRule", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: routeRule is 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("routeRule", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: routeRule is 123 (cause: database connection failed)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("country")

		assert.Equal(t, "country", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: country", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("country", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: country (cause: invalid format)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("weight", -1.5, 0, 1000)

		assert.Equal(t, "weight", err.ParamName)
		assert.Equal(t, -1.5, err.Value)
		assert.Equal(t, "value is out of range: weight is -1.5, min value is 0, max value is 1000", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("postalCode")

	assert.Equal(t, "value is required: postalCode", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestIsValidation(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "required", err: errs.NewValueIsRequiredError("city"), expected: true},
		{name: "invalid", err: errs.NewValueIsInvalidError("country"), expected: true},
		{name: "out of range", err: errs.NewValueIsOutOfRangeError("weight", 0, 0, 1), expected: true},
		{name: "joined", err: errors.Join(errors.New("other"), errs.NewValueIsRequiredError("city")), expected: true},
		{name: "wrapped", err: fmt.Errorf("request: %w", errs.NewValueIsInvalidError("height")), expected: true},
		{name: "not found", err: errs.NewObjectNotFoundError("routeRule", "1"), expected: false},
		{name: "plain", err: errors.New("boom"), expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, errs.IsValidation(tc.err))
		})
	}
}
