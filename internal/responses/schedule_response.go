package responses

import (
	"cpu-scheduling-simulator/internal/schedulers"
	"cpu-scheduling-simulator/internal/scenarios"
)

type SegmentResponse struct {
	Start     int  `json:"start"`
	End       int  `json:"end"`
	ProcessId *int `json:"process_id"`
	Idle      bool `json:"idle"`
}

type ProcessResponse struct {
	ProcessId      int `json:"process_id"`
	ArrivalTime    int `json:"arrival_time"`
	BurstTime      int `json:"burst_time"`
	Priority       int `json:"priority"`
	StartTime      int `json:"start_time"`
	CompletionTime int `json:"completion_time"`
	ResponseTime   int `json:"response_time"`
	TurnAroundTime int `json:"turn_around_time"`
	WaitingTime    int `json:"waiting_time"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Timeline              []SegmentResponse `json:"timeline"`
	Details               []ProcessResponse `json:"details"`
}

type ScenarioResponse struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Processes   int                `json:"processes"`
	Results     []ScheduleResponse `json:"results,omitempty"`
}

func NewScheduleResponse(result schedulers.Result[int]) ScheduleResponse {
	timeline := make([]SegmentResponse, len(result.Timeline))
	for i, s := range result.Timeline {
		timeline[i] = SegmentResponse{Start: s.Start, End: s.End, Idle: s.Idle}
		if !s.Idle {
			pid := s.PID
			timeline[i].ProcessId = &pid
		}
	}

	details := make([]ProcessResponse, len(result.Processes))
	for i, p := range result.Processes {
		details[i] = ProcessResponse{
			ProcessId:      p.ID,
			ArrivalTime:    p.Arrival,
			BurstTime:      p.Burst,
			Priority:       p.Priority,
			StartTime:      p.Start,
			CompletionTime: p.Completion,
			ResponseTime:   p.Response,
			TurnAroundTime: p.Turnaround,
			WaitingTime:    p.Waiting,
		}
	}

	return ScheduleResponse{
		Algorithm:             result.Algorithm,
		TotalTime:             result.Cpu.TotalTime,
		IdleTime:              result.Cpu.IdleTime,
		AverageWaitingTime:    result.AvgWaiting,
		AverageResponseTime:   result.AvgResponse,
		AverageTurnAroundTime: result.AvgTurnaround,
		CpuUtilization:        result.CpuUtilization,
		CpuThroughput:         result.CpuThroughput,
		Timeline:              timeline,
		Details:               details,
	}
}

func NewScenarioResponse(s scenarios.Scenario, results []ScheduleResponse) ScenarioResponse {
	return ScenarioResponse{
		Name:        s.Name,
		Description: s.Description,
		Processes:   len(s.Processes),
		Results:     results,
	}
}
