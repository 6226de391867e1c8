package models

import "gorm.io/gorm"

// ExperimentResult is one persisted row of an experiment run.
type ExperimentResult struct {
	gorm.Model
	RunID         string  `gorm:"size:64;index" json:"run_id"`
	Scenario      string  `gorm:"size:128;index" json:"scenario"`
	Algorithm     string  `gorm:"size:64" json:"algorithm"`
	AvgWaiting    float64 `json:"avg_waiting"`
	AvgTurnaround float64 `json:"avg_turnaround"`
	AvgResponse   float64 `json:"avg_response"`
}
