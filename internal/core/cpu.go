package core

import (
	"cmp"
	"fmt"
)

// CpuMetric summarizes processor usage over a finished run in logical time units.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Utilization is the busy share of the total time.
func (m CpuMetric) Utilization() float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(m.UtilizationTime) / float64(m.TotalTime)
}

// Throughput is completed processes per time unit.
func (m CpuMetric) Throughput(processCount int) float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(processCount) / float64(m.TotalTime)
}

// Cpu is a single logical processor. It owns the clock and the timeline of
// one simulation run.
type Cpu[ID cmp.Ordered] struct {
	now      int
	timeline Timeline[ID]
	metric   CpuMetric
}

func NewCpu[ID cmp.Ordered]() *Cpu[ID] {
	return &Cpu[ID]{timeline: make(Timeline[ID], 0)}
}

func (c *Cpu[ID]) Now() int {
	return c.now
}

// WaitFor idles the processor until arrival. It does nothing when arrival is
// not in the future.
func (c *Cpu[ID]) WaitFor(arrival int) {
	if arrival <= c.now {
		return
	}
	c.timeline = append(c.timeline, Segment[ID]{Start: c.now, End: arrival, Idle: true})
	c.metric.IdleTime += arrival - c.now
	c.now = arrival
}

// Execute runs task for d time units as a new timeline segment.
func (c *Cpu[ID]) Execute(task *Task[ID], d int) error {
	if err := c.run(task, d); err != nil {
		return err
	}
	c.timeline = append(c.timeline, Segment[ID]{Start: c.now - d, End: c.now, PID: task.ID})
	return nil
}

// Continue runs task for d time units, extending the last segment when task
// was already on the processor up to now.
func (c *Cpu[ID]) Continue(task *Task[ID], d int) error {
	start := c.now
	if err := c.run(task, d); err != nil {
		return err
	}
	if n := len(c.timeline); n > 0 {
		last := &c.timeline[n-1]
		if !last.Idle && last.PID == task.ID && last.End == start {
			last.End = c.now
			return nil
		}
	}
	c.timeline = append(c.timeline, Segment[ID]{Start: start, End: c.now, PID: task.ID})
	return nil
}

func (c *Cpu[ID]) run(task *Task[ID], d int) error {
	if d <= 0 || d > task.Remaining {
		return fmt.Errorf("%w: %d units for process %v with %d remaining", ErrInvalidExecution, d, task.ID, task.Remaining)
	}
	if task.Arrival > c.now {
		return fmt.Errorf("%w: process %v dispatched at %d before arrival %d", ErrInvalidExecution, task.ID, c.now, task.Arrival)
	}
	if task.StartTime == Unset {
		task.StartTime = c.now
	}
	c.now += d
	task.Remaining -= d
	c.metric.UtilizationTime += d
	if task.Done() {
		task.CompletionTime = c.now
	}
	return nil
}

func (c *Cpu[ID]) Timeline() Timeline[ID] {
	return c.timeline
}

func (c *Cpu[ID]) Metric() CpuMetric {
	m := c.metric
	m.TotalTime = c.now
	return m
}
