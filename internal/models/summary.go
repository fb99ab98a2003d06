package models

import (
	"sort"
	"strings"
)

// ExerciseTotal is the per-exercise subtotal shown in the summary panel
type ExerciseTotal struct {
	Exercise string
	Entries  int
	Volume   float64
}

// Summary aggregates training volume over the whole log
type Summary struct {
	TotalVolume float64
	SetCount    int
	TotalReps   int
	ByExercise  []ExerciseTotal
}

// Summarize reduces the log into totals. Exercises group case-insensitively
// and keep the first spelling seen; subtotals sort by volume, then name.
func Summarize(sets []WorkoutSet) Summary {
	summary := Summary{SetCount: len(sets)}

	index := make(map[string]int)
	for _, s := range sets {
		summary.TotalVolume += s.Volume()
		summary.TotalReps += s.Sets * s.Reps

		key := strings.ToLower(strings.TrimSpace(s.Exercise))
		i, ok := index[key]
		if !ok {
			i = len(summary.ByExercise)
			index[key] = i
			summary.ByExercise = append(summary.ByExercise, ExerciseTotal{Exercise: s.Exercise})
		}
		summary.ByExercise[i].Entries++
		summary.ByExercise[i].Volume += s.Volume()
	}

	sort.SliceStable(summary.ByExercise, func(a, b int) bool {
		ea, eb := summary.ByExercise[a], summary.ByExercise[b]
		if ea.Volume != eb.Volume {
			return ea.Volume > eb.Volume
		}
		return strings.ToLower(ea.Exercise) < strings.ToLower(eb.Exercise)
	})

	return summary
}
