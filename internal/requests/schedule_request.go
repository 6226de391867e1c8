package requests

import "cpu-scheduling-simulator/internal/core"

type Job struct {
	ProcessId   int `json:"process_id"`
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
	Priority    int `json:"priority"`
}

type ScheduleRequests struct {
	Jobs []Job `json:"jobs"`
	// TimeQuantum and LevelsTimeQuantum fall back to configuration when unset.
	TimeQuantum       *int  `json:"time_quantum,omitempty"`
	LevelsTimeQuantum []int `json:"levels_time_quantum,omitempty"`
}

// Processes converts the requested jobs, keeping their order.
func (r ScheduleRequests) Processes() []core.Process[int] {
	processes := make([]core.Process[int], len(r.Jobs))
	for i, job := range r.Jobs {
		processes[i] = core.Process[int]{
			ID:       job.ProcessId,
			Arrival:  job.ArrivalTime,
			Burst:    job.BurstTime,
			Priority: job.Priority,
		}
	}
	return processes
}

// Quantum returns the requested round-robin quantum or fallback.
func (r ScheduleRequests) Quantum(fallback int) int {
	if r.TimeQuantum == nil {
		return fallback
	}
	return *r.TimeQuantum
}

// Levels returns the requested feedback queue quanta or fallback.
func (r ScheduleRequests) Levels(fallback []int) []int {
	if r.LevelsTimeQuantum == nil {
		return fallback
	}
	return r.LevelsTimeQuantum
}
