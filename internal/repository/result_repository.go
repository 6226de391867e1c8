package repository

import (
	"gorm.io/gorm"

	"cpu-scheduling-simulator/internal/experiments"
	"cpu-scheduling-simulator/internal/models"
)

type ResultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

// SaveRun stores all rows of one experiment run in a single transaction.
func (r *ResultRepository) SaveRun(runID string, rows []experiments.Row) error {
	if len(rows) == 0 {
		return nil
	}
	results := make([]models.ExperimentResult, len(rows))
	for i, row := range rows {
		results[i] = models.ExperimentResult{
			RunID:         runID,
			Scenario:      row.Scenario,
			Algorithm:     row.Algorithm,
			AvgWaiting:    row.AvgWaiting,
			AvgTurnaround: row.AvgTurnaround,
			AvgResponse:   row.AvgResponse,
		}
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&results).Error
	})
}

// ListByRun returns the rows of a run in insertion order.
func (r *ResultRepository) ListByRun(runID string) ([]models.ExperimentResult, error) {
	var results []models.ExperimentResult
	err := r.db.Where("run_id = ?", runID).Order("id ASC").Find(&results).Error
	return results, err
}

// ListByScenario returns every stored row of a scenario, newest run first.
func (r *ResultRepository) ListByScenario(scenario string) ([]models.ExperimentResult, error) {
	var results []models.ExperimentResult
	err := r.db.Where("scenario = ?", scenario).Order("created_at DESC, id ASC").Find(&results).Error
	return results, err
}

func (r *ResultRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.ExperimentResult{}).Count(&count).Error
	return count, err
}

// ToRows converts stored results back to experiment rows.
func ToRows(results []models.ExperimentResult) []experiments.Row {
	rows := make([]experiments.Row, len(results))
	for i, res := range results {
		rows[i] = experiments.Row{
			Scenario:      res.Scenario,
			Algorithm:     res.Algorithm,
			AvgWaiting:    res.AvgWaiting,
			AvgTurnaround: res.AvgTurnaround,
			AvgResponse:   res.AvgResponse,
		}
	}
	return rows
}
