package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		in         string
		start, end int
		wantErr    bool
	}{
		{in: "4", start: 4, end: 4},
		{in: "3-7", start: 3, end: 7},
		{in: " 2 - 2 ", start: 2, end: 2},
		{in: "", wantErr: true},
		{in: "0", wantErr: true},
		{in: "7-3", wantErr: true},
		{in: "a-b", wantErr: true},
		{in: "3-", wantErr: true},
		{in: "-3", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			start, end, err := ParseRange(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestValidateRange(t *testing.T) {
	assert.NoError(t, ValidateRange(1, 1, 1))
	assert.NoError(t, ValidateRange(3, 3, 10))
	assert.NoError(t, ValidateRange(1, 10, 10))

	assert.ErrorIs(t, ValidateRange(1, 1, 0), ErrInvalidRange)
	assert.ErrorIs(t, ValidateRange(0, 1, 10), ErrInvalidRange)
	assert.ErrorIs(t, ValidateRange(5, 4, 10), ErrInvalidRange)
	assert.ErrorIs(t, ValidateRange(9, 11, 10), ErrInvalidRange)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.WordThreshold = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.LineTolerance = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.RenderScale = 1.49
	assert.Error(t, cfg.Validate())
}

func TestResultDegraded(t *testing.T) {
	res := &Result{Pages: []PageText{
		{Number: 4, Degraded: true},
		{Number: 5},
		{Number: 6, Degraded: true},
	}}
	assert.Equal(t, []int{4, 6}, res.Degraded())

	var nilResult *Result
	assert.Equal(t, "", nilResult.Text())
	assert.Equal(t, 0, nilResult.Extracted())
}
