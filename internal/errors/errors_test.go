package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingColumns(t *testing.T) {
	err := MissingColumns("country", "type")

	assert.Equal(t, CodeMissingColumn, err.Code)
	assert.Equal(t, []string{"country", "type"}, err.Details)
	assert.Contains(t, err.Error(), "country, type")
	assert.True(t, Is(err, ErrMissingColumn))
	assert.False(t, Is(err, ErrValidation))
}

func TestMissingColumns_CopiesInput(t *testing.T) {
	cols := []string{"rating"}
	err := MissingColumns(cols...)
	cols[0] = "mutated"

	assert.Equal(t, []string{"rating"}, err.Details)
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(cause, CodeInternal, "write chart")

	assert.Equal(t, "write chart: disk full", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, Is(err, ErrInternal))
}

func TestIs_ThroughFmtWrap(t *testing.T) {
	wrapped := fmt.Errorf("q3: %w", MissingColumns("country"))

	var domainErr *Error
	require.True(t, As(wrapped, &domainErr))
	assert.Equal(t, CodeMissingColumn, domainErr.Code)
	assert.True(t, Is(wrapped, ErrMissingColumn))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"missing column", MissingColumns("x"), 2},
		{"validation", Validation("bad"), 2},
		{"not found", NotFound("csv"), 3},
		{"internal", Internal("boom"), 1},
		{"plain", fmt.Errorf("plain"), 1},
		{"wrapped validation", fmt.Errorf("cfg: %w", Validation("bad")), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestWithDetails_DoesNotMutate(t *testing.T) {
	base := Validation("bad config")
	withDetails := base.WithDetails(map[string]string{"top_n": "must be at least 1"})

	assert.Nil(t, base.Details)
	assert.NotNil(t, withDetails.Details)
	assert.True(t, Is(withDetails, ErrValidation))
}
