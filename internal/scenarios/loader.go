package scenarios

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"

	"cpu-scheduling-simulator/internal/core"
)

var ErrInvalidFile = errors.New("invalid scenario file")

type scenarioFile struct {
	Scenarios []scenarioDoc `yaml:"scenarios"`
}

type scenarioDoc struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Processes   []processDoc `yaml:"processes"`
}

type processDoc struct {
	ID       int `yaml:"id"`
	Arrival  int `yaml:"arrival"`
	Burst    int `yaml:"burst"`
	Priority int `yaml:"priority"`
}

// LoadYAML reads a list of scenarios:
//
//	scenarios:
//	  - name: demo
//	    processes:
//	      - {id: 1, arrival: 0, burst: 5}
func LoadYAML(r io.Reader) ([]Scenario, error) {
	var doc scenarioFile
	decoder := yaml.NewDecoder(r)
	decoder.SetStrict(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	if len(doc.Scenarios) == 0 {
		return nil, fmt.Errorf("%w: no scenarios", ErrInvalidFile)
	}

	loaded := make([]Scenario, 0, len(doc.Scenarios))
	for i, s := range doc.Scenarios {
		if s.Name == "" {
			return nil, fmt.Errorf("%w: scenario %d has no name", ErrInvalidFile, i)
		}
		processes := make([]core.Process[int], len(s.Processes))
		for j, p := range s.Processes {
			processes[j] = core.Process[int]{ID: p.ID, Arrival: p.Arrival, Burst: p.Burst, Priority: p.Priority}
		}
		if err := core.Validate(processes); err != nil {
			return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
		}
		loaded = append(loaded, Scenario{Name: s.Name, Description: s.Description, Processes: processes})
	}
	return loaded, nil
}

// LoadCSV reads rows of id,burst,arrival[,priority]. A leading header row is
// skipped when its first field is not a number.
func LoadCSV(r io.Reader) ([]core.Process[int], error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV: %v", ErrInvalidFile, err)
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		if _, err := strconv.Atoi(strings.TrimSpace(rows[0][0])); err != nil {
			rows = rows[1:]
		}
	}

	processes := make([]core.Process[int], len(rows))
	for i, row := range rows {
		if len(row) != 3 && len(row) != 4 {
			return nil, fmt.Errorf("%w: row %d has %d fields", ErrInvalidFile, i+1, len(row))
		}
		values := make([]int, 4)
		for j, field := range row {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("%w: row %d field %d: %v", ErrInvalidFile, i+1, j+1, err)
			}
			values[j] = v
		}
		processes[i] = core.Process[int]{ID: values[0], Burst: values[1], Arrival: values[2], Priority: values[3]}
	}
	if err := core.Validate(processes); err != nil {
		return nil, err
	}
	return processes, nil
}
