package core

import (
	"cmp"
	"fmt"
	"slices"
)

// Unset marks a start or completion time that has not been recorded yet.
const Unset = -1

// Process is a unit of work as requested by the caller. It is never mutated
// by a simulation.
type Process[ID cmp.Ordered] struct {
	ID       ID
	Arrival  int
	Burst    int
	Priority int // carried, not used by any algorithm
}

// Validate rejects process sets that no algorithm can simulate.
func Validate[ID cmp.Ordered](processes []Process[ID]) error {
	if len(processes) == 0 {
		return ErrEmptyProcessSet
	}
	seen := make(map[ID]struct{}, len(processes))
	for _, p := range processes {
		if p.Burst <= 0 {
			return fmt.Errorf("%w: process %v has burst %d", ErrInvalidBurst, p.ID, p.Burst)
		}
		if p.Arrival < 0 {
			return fmt.Errorf("%w: process %v arrives at %d", ErrNegativeArrival, p.ID, p.Arrival)
		}
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("%w: %v", ErrDuplicateProcess, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

// Task is the working copy of a Process owned by a single simulation run.
type Task[ID cmp.Ordered] struct {
	Process[ID]
	Remaining      int
	StartTime      int
	CompletionTime int
}

// NewTasks copies the requested processes into fresh tasks, keeping input order.
func NewTasks[ID cmp.Ordered](processes []Process[ID]) []*Task[ID] {
	tasks := make([]*Task[ID], len(processes))
	for i, p := range processes {
		tasks[i] = &Task[ID]{
			Process:        p,
			Remaining:      p.Burst,
			StartTime:      Unset,
			CompletionTime: Unset,
		}
	}
	return tasks
}

func (t *Task[ID]) Done() bool {
	return t.Remaining == 0
}

// ArrivedBy reports whether the task is ready at now and still has work left.
func (t *Task[ID]) ArrivedBy(now int) bool {
	return t.Arrival <= now && !t.Done()
}

// CompareArrival orders tasks by (arrival, id).
func CompareArrival[ID cmp.Ordered](a, b *Task[ID]) int {
	return cmp.Or(cmp.Compare(a.Arrival, b.Arrival), cmp.Compare(a.ID, b.ID))
}

// SortByArrival returns a copy of tasks ordered by (arrival, id).
func SortByArrival[ID cmp.Ordered](tasks []*Task[ID]) []*Task[ID] {
	sorted := slices.Clone(tasks)
	slices.SortFunc(sorted, CompareArrival[ID])
	return sorted
}
