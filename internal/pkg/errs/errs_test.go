package errs_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"shippix/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("handoff", "123")

		assert.Equal(t, "handoff", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("handoff", "123", cause)

		assert.Equal(t, "handoff", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: handoff, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("emailAddress")

		assert.Equal(t, "emailAddress", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: emailAddress", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("emailAddress", cause)

		assert.Equal(t, "emailAddress", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: emailAddress (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("progress level", 4, 1, 3)

		assert.Equal(t, "progress level", err.ParamName)
		assert.Equal(t, 4, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 3, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 4 is progress level, min value is 1, max value is 3", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("score", -5, 0, 100, cause)

		assert.Equal(t, "score", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is score, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("orderId")

		assert.Equal(t, "orderId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: orderId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("orderId", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: orderId (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("handoff", "123")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("emailAddress")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("progress level", 4, 1, 3)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("orderId")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)
	})
}

func TestHandoffNotFound(t *testing.T) {
	t.Run("should keep the stage mismatch as cause", func(t *testing.T) {
		token := "6f1c2b1e-5c4a-4d0e-9a53-2a8f9e7b1c10"
		err := errs.NewObjectNotFoundErrorWithCause("handoff", token,
			fmt.Errorf("handoff is at stage %s, expected %s", "Reviewing", "AwaitingPayment"))

		assert.Equal(t,
			"object not found: param is: handoff, ID is: "+token+
				" (cause: handoff is at stage Reviewing, expected AwaitingPayment)",
			err.Error())
	})

	t.Run("should be found through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("receive handoff: %w", errs.NewObjectNotFoundError("handoff", "abc"))

		var notFound *errs.ObjectNotFoundError
		require.ErrorAs(t, wrapped, &notFound)
		assert.Equal(t, "handoff", notFound.ParamName)
		assert.ErrorIs(t, wrapped, errs.ErrObjectNotFound)
	})
}

func TestConfigErrors(t *testing.T) {
	t.Run("should print duration bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("LOGIN_LATENCY", -time.Second, "0s", "max duration")

		assert.Equal(t,
			"value is invalid: -1s is LOGIN_LATENCY, min value is 0s, max value is max duration",
			err.Error())
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should join into one startup error", func(t *testing.T) {
		err := errors.Join(
			errs.NewValueIsInvalidErrorWithCause("ESTIMATE_TIMEOUT", errors.New(`time: invalid duration "abc"`)),
			errs.NewValueIsOutOfRangeError("HANDOFF_TTL", time.Duration(0), "1ns", "max duration"),
		)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.ErrorContains(t, err, "ESTIMATE_TIMEOUT")
		assert.ErrorContains(t, err, "HANDOFF_TTL")
	})
}
