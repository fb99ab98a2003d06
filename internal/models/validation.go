package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// SetInput holds the raw text of the entry form
type SetInput struct {
	Date     string
	Exercise string
	Sets     string
	Reps     string
	Weight   string
}

// FieldError describes one rejected form field
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationError collects every failing field of a submission
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return "invalid input: " + strings.Join(msgs, "; ")
}

// Has reports whether the named field failed.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

func (e *ValidationError) add(field, format string, args ...interface{}) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// Upper bounds keep Volume and the summary totals finite and exact.
const (
	MaxWeightKg = 10000
	MaxCount    = 10000
)

// ParseSetInput validates form text and builds a WorkoutSet. The returned
// error is a *ValidationError listing all bad fields.
func ParseSetInput(in SetInput) (WorkoutSet, error) {
	verr := &ValidationError{}
	var set WorkoutSet

	date := strings.TrimSpace(in.Date)
	if date == "" {
		verr.add("date", "is required")
	} else if d, err := time.Parse(DateLayout, date); err != nil {
		verr.add("date", "must be a date like %s", DateLayout)
	} else {
		set.Date = d
	}

	set.Exercise = strings.TrimSpace(in.Exercise)
	if set.Exercise == "" {
		verr.add("exercise", "is required")
	}

	set.Sets = parsePositiveInt(verr, "sets", in.Sets)
	set.Reps = parsePositiveInt(verr, "reps", in.Reps)

	weight := strings.TrimSpace(in.Weight)
	if weight == "" {
		verr.add("weight", "is required")
	} else if w, err := strconv.ParseFloat(weight, 64); err != nil || math.IsNaN(w) || math.IsInf(w, 0) {
		verr.add("weight", "must be a number")
	} else if w < 0 {
		verr.add("weight", "must be 0 or positive")
	} else if w > MaxWeightKg {
		verr.add("weight", "must be at most %d", MaxWeightKg)
	} else {
		set.WeightKg = RoundWeight(w)
	}

	if len(verr.Fields) > 0 {
		return WorkoutSet{}, verr
	}
	return set, nil
}

func parsePositiveInt(verr *ValidationError, field, raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		verr.add(field, "is required")
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		verr.add(field, "must be a whole number")
		return 0
	}
	if n <= 0 {
		verr.add(field, "must be greater than 0")
		return 0
	}
	if n > MaxCount {
		verr.add(field, "must be at most %d", MaxCount)
		return 0
	}
	return n
}

// FormatInput renders a set back into form text.
func FormatInput(s WorkoutSet) SetInput {
	return SetInput{
		Date:     s.DateString(),
		Exercise: s.Exercise,
		Sets:     strconv.Itoa(s.Sets),
		Reps:     strconv.Itoa(s.Reps),
		Weight:   strconv.FormatFloat(s.WeightKg, 'f', 2, 64),
	}
}
