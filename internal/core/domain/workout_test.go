package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-fit/internal/core/domain"
)

func TestParseWorkoutType(t *testing.T) {
	tests := []struct {
		input   string
		want    domain.WorkoutType
		wantErr error
	}{
		{input: "chest", want: domain.WorkoutChest},
		{input: "  Legs ", want: domain.WorkoutLegs},
		{input: "full-body", want: domain.WorkoutFullBody},
		{input: "fullbody", want: domain.WorkoutFullBody},
		{input: "", wantErr: domain.ErrWorkoutTypeEmpty},
		{input: "   ", wantErr: domain.ErrWorkoutTypeEmpty},
		{input: "yoga", wantErr: domain.ErrInvalidWorkoutType},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := domain.ParseWorkoutType(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseIntensity(t *testing.T) {
	i, err := domain.ParseIntensity("HIGH")
	require.NoError(t, err)
	assert.Equal(t, domain.IntensityHigh, i)

	i, err = domain.ParseIntensity("")
	require.NoError(t, err)
	assert.Equal(t, domain.IntensityNone, i)

	_, err = domain.ParseIntensity("brutal")
	assert.ErrorIs(t, err, domain.ErrInvalidIntensity)

	_, ok := domain.IntensityNone.Display()
	assert.False(t, ok)
}

func TestWorkoutRecord_Validate(t *testing.T) {
	neg := -5
	pos := 45

	tests := []struct {
		name    string
		record  domain.WorkoutRecord
		wantErr error
	}{
		{name: "Success: minimal", record: domain.WorkoutRecord{Type: domain.WorkoutCardio}},
		{name: "Success: full", record: domain.WorkoutRecord{
			Type: domain.WorkoutBack, Exercises: "Rows", Duration: &pos, Intensity: domain.IntensityMedium,
		}},
		{name: "Fail: empty type", record: domain.WorkoutRecord{}, wantErr: domain.ErrWorkoutTypeEmpty},
		{name: "Fail: unknown type", record: domain.WorkoutRecord{Type: "pilates"}, wantErr: domain.ErrInvalidWorkoutType},
		{name: "Fail: unknown intensity", record: domain.WorkoutRecord{Type: domain.WorkoutArms, Intensity: "max"}, wantErr: domain.ErrInvalidIntensity},
		{name: "Fail: negative duration", record: domain.WorkoutRecord{Type: domain.WorkoutArms, Duration: &neg}, wantErr: domain.ErrNegativeDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestWorkoutTypes_HaveDisplay(t *testing.T) {
	for _, wt := range domain.WorkoutTypes() {
		assert.True(t, wt.Valid())
		assert.NotEmpty(t, wt.Display().Label, "missing label for %s", wt)
	}
}
