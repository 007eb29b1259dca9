//go:build unit

package routine_test

import (
	"testing"

	"gymgain/internal/domain/routine"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoutineNormalizesExercises(t *testing.T) {
	got, err := routine.NewRoutine(uuid.New(), "Push Day", "chest and triceps", []routine.Exercise{
		{ExerciseID: 7, ExerciseName: "Bench Press", Sets: 5, Reps: 5},
		{ExerciseName: "Dips"}, // free-text entry, defaults apply
	})
	require.NoError(t, err)

	want := []routine.Exercise{
		{ExerciseID: 7, ExerciseName: "Bench Press", Sets: 5, Reps: 5, OrderIndex: 0},
		{ExerciseName: "Dips", Sets: 3, Reps: 10, OrderIndex: 1},
	}
	if diff := cmp.Diff(want, got.Exercises()); diff != "" {
		t.Errorf("exercises mismatch (-want +got):\n%s", diff)
	}
}

func TestNewRoutineRequiresName(t *testing.T) {
	_, err := routine.NewRoutine(uuid.New(), "", "", nil)
	assert.ErrorIs(t, err, routine.ErrNameRequired)
}

func TestNewRoutineLimitsExercises(t *testing.T) {
	exercises := make([]routine.Exercise, 51)
	for i := range exercises {
		exercises[i] = routine.Exercise{ExerciseName: "x"}
	}

	_, err := routine.NewRoutine(uuid.New(), "Too Big", "", exercises)
	assert.ErrorIs(t, err, routine.ErrTooManyExercises)
}
