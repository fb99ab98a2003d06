package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.TotalVolume)
	assert.Zero(t, s.SetCount)
	assert.Empty(t, s.ByExercise)
}

func TestSummarizeTotalsMatchRowVolumes(t *testing.T) {
	sets := []WorkoutSet{
		{Exercise: "Squat", Sets: 3, Reps: 10, WeightKg: 20},
		{Exercise: "Bench", Sets: 5, Reps: 5, WeightKg: 62.5},
		{Exercise: "squat ", Sets: 2, Reps: 8, WeightKg: 40},
		{Exercise: "Plank", Sets: 3, Reps: 1, WeightKg: 0},
	}

	var want float64
	for _, s := range sets {
		want += float64(s.Sets) * float64(s.Reps) * s.WeightKg
	}

	sum := Summarize(sets)
	assert.InDelta(t, want, sum.TotalVolume, 1e-9)
	assert.Equal(t, 4, sum.SetCount)
	assert.Equal(t, 30+25+16+3, sum.TotalReps)

	require.Len(t, sum.ByExercise, 3)
	assert.Equal(t, ExerciseTotal{Exercise: "Bench", Entries: 1, Volume: 1562.5}, sum.ByExercise[0])
	assert.Equal(t, ExerciseTotal{Exercise: "Squat", Entries: 2, Volume: 1240}, sum.ByExercise[1])
	assert.Equal(t, "Plank", sum.ByExercise[2].Exercise)
}

func TestSummarizeTiesSortByName(t *testing.T) {
	sum := Summarize([]WorkoutSet{
		{Exercise: "Row", Sets: 1, Reps: 1, WeightKg: 10},
		{Exercise: "curl", Sets: 1, Reps: 1, WeightKg: 10},
	})
	require.Len(t, sum.ByExercise, 2)
	assert.Equal(t, "curl", sum.ByExercise[0].Exercise)
	assert.Equal(t, "Row", sum.ByExercise[1].Exercise)
}
