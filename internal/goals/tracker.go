// Package goals wraps the yearly reading-goal record and the progress
// computation against it.
package goals

import (
	"errors"

	"booktrail/internal/entities"
)

// ErrInvalidTarget is returned when a goal target is negative.
var ErrInvalidTarget = errors.New("target must be a non-negative integer")

// Store persists reading goals keyed by year.
type Store interface {
	GetByYear(year int) (*entities.ReadingGoal, error)
	Upsert(year, targetBooks int) (*entities.ReadingGoal, error)
}

// Tracker reads and writes the yearly reading goal.
type Tracker struct {
	store Store
}

// NewTracker creates a new goal tracker.
func NewTracker(store Store) *Tracker {
	return &Tracker{store: store}
}

// Get returns the goal for a year, or nil when none has been set.
func (t *Tracker) Get(year int) (*entities.ReadingGoal, error) {
	return t.store.GetByYear(year)
}

// Set creates or overwrites the goal for a year.
func (t *Tracker) Set(year, targetBooks int) (*entities.ReadingGoal, error) {
	if targetBooks < 0 {
		return nil, ErrInvalidTarget
	}
	return t.store.Upsert(year, targetBooks)
}

// Progress returns the unrounded completion percentage towards a target.
// A zero target yields 0 rather than dividing by zero; callers round only
// for display.
func Progress(target, booksRead int) float64 {
	if target <= 0 {
		return 0
	}
	return float64(booksRead) / float64(target) * 100
}
