package core

import (
	"cmp"
	"fmt"
)

// Segment is a half-open interval [Start, End) of processor time. When Idle
// is set PID carries no meaning.
type Segment[ID cmp.Ordered] struct {
	Start int
	End   int
	PID   ID
	Idle  bool
}

func (s Segment[ID]) Duration() int {
	return s.End - s.Start
}

func (s Segment[ID]) String() string {
	if s.Idle {
		return fmt.Sprintf("[%d, %d) IDLE", s.Start, s.End)
	}
	return fmt.Sprintf("[%d, %d) %v", s.Start, s.End, s.PID)
}

type Timeline[ID cmp.Ordered] []Segment[ID]

// Occupants lists the process of every busy segment in order, skipping idle gaps.
func (tl Timeline[ID]) Occupants() []ID {
	ids := make([]ID, 0, len(tl))
	for _, s := range tl {
		if !s.Idle {
			ids = append(ids, s.PID)
		}
	}
	return ids
}

// BusyTime sums the segments attributed to id.
func (tl Timeline[ID]) BusyTime(id ID) int {
	total := 0
	for _, s := range tl {
		if !s.Idle && s.PID == id {
			total += s.Duration()
		}
	}
	return total
}

func (tl Timeline[ID]) IdleTime() int {
	total := 0
	for _, s := range tl {
		if s.Idle {
			total += s.Duration()
		}
	}
	return total
}

// End is the instant the last segment finishes, or 0 for an empty timeline.
func (tl Timeline[ID]) End() int {
	if len(tl) == 0 {
		return 0
	}
	return tl[len(tl)-1].End
}

// Validate checks that segments are non-empty and contiguous.
func (tl Timeline[ID]) Validate() error {
	for i, s := range tl {
		if s.Duration() <= 0 {
			return fmt.Errorf("segment %d %s is empty", i, s)
		}
		if i > 0 && tl[i-1].End != s.Start {
			return fmt.Errorf("gap between segment %d %s and %s", i-1, tl[i-1], s)
		}
	}
	return nil
}
