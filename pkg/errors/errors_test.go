package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"field range", WrapFieldRange(errors.New("principal")), ErrCodeFieldRange},
		{"missing primary", WrapMissingPrimaryCategory(), ErrCodeMissingPrimaryCategory},
		{"wrapped business error", fmt.Errorf("calculate: %w", WrapDatasetNotFound("earnings_p90")), ErrCodeDatasetNotFound},
		{"plain error", errors.New("boom"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CodeOf(tt.err))
		})
	}
}

func TestWrapKeepsCauseAndSentinel(t *testing.T) {
	cause := errors.New("log argument is not positive")
	err := WrapInvalidSchedule(cause)

	assert.ErrorIs(t, err, ErrInvalidSchedule)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "INVALID_SCHEDULE")

	assert.ErrorIs(t, WrapFieldRange(cause), ErrFieldRange)
	assert.ErrorIs(t, WrapInvalidDataset("Median"), ErrInvalidDataset)
	assert.ErrorIs(t, WrapDatasetNotFound("earnings_p90"), ErrDatasetNotFound)
}

func TestBusinessError_Error(t *testing.T) {
	assert.Equal(t, "CACHE_ERROR: Cache operation failed (timeout)", WrapCacheError(errors.New("timeout")).Error())
	assert.Equal(t, "X: message", NewBusinessError("X", "message", nil).Error())
}
