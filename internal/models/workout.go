package models

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar date format used by the form and the CSV file.
const DateLayout = "2006-01-02"

var ErrSetNotFound = errors.New("workout set not found")

// WorkoutSet is one logged exercise entry
type WorkoutSet struct {
	ID       string
	Date     time.Time
	Exercise string
	Sets     int
	Reps     int
	WeightKg float64
}

// Volume returns sets × reps × weight.
func (s WorkoutSet) Volume() float64 {
	return float64(s.Sets) * float64(s.Reps) * s.WeightKg
}

// DateString formats the date the way it is stored.
func (s WorkoutSet) DateString() string {
	return s.Date.Format(DateLayout)
}

// SameFields reports whether two sets carry the same persisted values, ignoring ID.
func (s WorkoutSet) SameFields(o WorkoutSet) bool {
	return s.Date.Equal(o.Date) &&
		s.Exercise == o.Exercise &&
		s.Sets == o.Sets &&
		s.Reps == o.Reps &&
		s.WeightKg == o.WeightKg
}

// RoundWeight normalises a weight to the two decimals the log file keeps.
func RoundWeight(w float64) float64 {
	return math.Round(w*100) / 100
}

// WorkoutLog is the ordered in-memory list of sets backing the table
type WorkoutLog struct {
	mu    sync.RWMutex
	sets  []WorkoutSet
	dirty bool
}

// NewWorkoutLog creates an empty log
func NewWorkoutLog() *WorkoutLog {
	return &WorkoutLog{
		sets: make([]WorkoutSet, 0),
	}
}

// Add appends a set and assigns it a fresh ID
func (l *WorkoutLog) Add(set WorkoutSet) WorkoutSet {
	l.mu.Lock()
	defer l.mu.Unlock()

	set.ID = uuid.NewString()
	l.sets = append(l.sets, set)
	l.dirty = true
	return set
}

// Update replaces the persisted fields of the set with the given ID in place
func (l *WorkoutLog) Update(id string, set WorkoutSet) (WorkoutSet, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexOf(id)
	if i < 0 {
		return WorkoutSet{}, ErrSetNotFound
	}
	set.ID = id
	l.sets[i] = set
	l.dirty = true
	return set, nil
}

// Delete removes exactly one set
func (l *WorkoutLog) Delete(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexOf(id)
	if i < 0 {
		return ErrSetNotFound
	}
	l.sets = append(l.sets[:i], l.sets[i+1:]...)
	l.dirty = true
	return nil
}

// Get looks a set up by ID
func (l *WorkoutLog) Get(id string) (WorkoutSet, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i := l.indexOf(id)
	if i < 0 {
		return WorkoutSet{}, false
	}
	return l.sets[i], true
}

// IndexOf returns the table position of a set, or -1.
func (l *WorkoutLog) IndexOf(id string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.indexOf(id)
}

// At returns the set at a table position
func (l *WorkoutLog) At(i int) (WorkoutSet, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if i < 0 || i >= len(l.sets) {
		return WorkoutSet{}, false
	}
	return l.sets[i], true
}

// List returns a copy of all sets in log order
func (l *WorkoutLog) List() []WorkoutSet {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]WorkoutSet, len(l.sets))
	copy(out, l.sets)
	return out
}

func (l *WorkoutLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.sets)
}

// Replace swaps the whole log for freshly loaded sets. IDs are reassigned and
// the log is considered clean.
func (l *WorkoutLog) Replace(sets []WorkoutSet) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.sets = make([]WorkoutSet, len(sets))
	for i, s := range sets {
		s.ID = uuid.NewString()
		l.sets[i] = s
	}
	l.dirty = false
}

// Dirty reports unsaved changes since the last load or save.
func (l *WorkoutLog) Dirty() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.dirty
}

func (l *WorkoutLog) MarkClean() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.dirty = false
}

func (l *WorkoutLog) indexOf(id string) int {
	for i := range l.sets {
		if l.sets[i].ID == id {
			return i
		}
	}
	return -1
}
