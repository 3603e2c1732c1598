package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	lostRace := errors.New("duplicated key not allowed")
	badUUID := errors.New("invalid UUID length: 3")

	testCases := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "order not found",
			err:      errs.NewObjectNotFoundError("order", "8b1f"),
			sentinel: errs.ErrObjectNotFound,
			message:  "object not found: 8b1f",
		},
		{
			name:     "order not found with cause",
			err:      errs.NewObjectNotFoundErrorWithCause("order", "8b1f", errors.New("record not found")),
			sentinel: errs.ErrObjectNotFound,
			message:  "object not found: param is: order, ID is: 8b1f (cause: record not found)",
		},
		{
			name:     "non-string id",
			err:      errs.NewObjectNotFoundError("order", 17),
			sentinel: errs.ErrObjectNotFound,
			message:  "object not found: %!s(int=17)",
		},
		{
			name:     "invalid courier id",
			err:      errs.NewValueIsInvalidErrorWithCause("courier id", badUUID),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: courier id (cause: invalid UUID length: 3)",
		},
		{
			name:     "invalid status",
			err:      errs.NewValueIsInvalidError("status"),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: status",
		},
		{
			name:     "multiplier out of range",
			err:      errs.NewValueIsOutOfRangeError("no courier multiplier", 0, 1, 10),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: 0 is no courier multiplier, min value is 1, max value is 10",
		},
		{
			name: "amount out of range with cause",
			err: errs.NewValueIsOutOfRangeErrorWithCause(
				"amount", "-3.50", "0.01", "unbounded", errors.New("negative"),
			),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: -3.50 is amount, min value is 0.01, max value is unbounded (cause: negative)",
		},
		{
			name:     "missing restaurant id",
			err:      errs.NewValueIsRequiredError("restaurant id"),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: restaurant id",
		},
		{
			name:     "missing customer id with cause",
			err:      errs.NewValueIsRequiredErrorWithCause("customer id", badUUID),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: customer id (cause: invalid UUID length: 3)",
		},
		{
			name:     "stale order version",
			err:      errs.NewConcurrentModificationError("order", "8b1f", 3),
			sentinel: errs.ErrConcurrentModification,
			message:  "concurrent modification: order 8b1f, expected version 3",
		},
		{
			name:     "new order lost the race",
			err:      errs.NewConcurrentModificationError("order", "8b1f", 0),
			sentinel: errs.ErrConcurrentModification,
			message:  "concurrent modification: order 8b1f",
		},
		{
			name:     "duplicate assignment",
			err:      errs.NewConcurrentModificationErrorWithCause("courier assignment", "8b1f", lostRace),
			sentinel: errs.ErrConcurrentModification,
			message:  "concurrent modification: courier assignment 8b1f (cause: duplicated key not allowed)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.message, tc.err.Error())
			require.ErrorIs(t, tc.err, tc.sentinel)
			assert.Equal(t, tc.sentinel, errors.Unwrap(tc.err))
		})
	}
}

func TestErrorFields(t *testing.T) {
	t.Run("out of range keeps its bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("base time minutes", -5, 1, 240)

		assert.Equal(t, "base time minutes", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 240, err.Max)
		require.NoError(t, err.Cause)
	})

	t.Run("concurrent modification keeps its cause", func(t *testing.T) {
		cause := errors.New("serialization failure")
		err := errs.NewConcurrentModificationErrorWithCause("payment", "8b1f", cause)

		assert.Equal(t, "payment", err.Entity)
		assert.Equal(t, "8b1f", err.ID)
		assert.Zero(t, err.ExpectedVersion)
		assert.Equal(t, cause, err.Cause)
	})

	t.Run("newlines in values are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("review text", "great\npizza", 1, 2000)

		assert.Contains(t, err.Error(), "great pizza")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestErrorsAs(t *testing.T) {
	t.Run("wrapped concurrent modification is still detectable", func(t *testing.T) {
		err := fmt.Errorf("update order: %w", errs.NewConcurrentModificationError("order", "8b1f", 2))

		var target *errs.ConcurrentModificationError
		require.ErrorAs(t, err, &target)
		assert.Equal(t, 2, target.ExpectedVersion)
		require.ErrorIs(t, err, errs.ErrConcurrentModification)
	})

	t.Run("joined validation errors match every sentinel", func(t *testing.T) {
		err := errors.Join(
			errs.NewValueIsRequiredError("customer id"),
			errs.NewValueIsInvalidError("status"),
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.NotErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestSentinelMessages(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "concurrent modification", errs.ErrConcurrentModification.Error())
}
