// Package scenarios builds the named process sets the experiments compare
// algorithms on.
package scenarios

import (
	"fmt"
	"math/rand"
	"slices"

	"cpu-scheduling-simulator/internal/core"
)

type Scenario struct {
	Name        string
	Description string
	Processes   []core.Process[int]
}

// BatchJobs has every process arriving at 0 with very different bursts.
func BatchJobs() Scenario {
	return Scenario{
		Name:        "batch_jobs",
		Description: "Batch jobs, all arriving at time 0 with very different bursts.",
		Processes: []core.Process[int]{
			{ID: 1, Arrival: 0, Burst: 2},
			{ID: 2, Arrival: 0, Burst: 4},
			{ID: 3, Arrival: 0, Burst: 8},
			{ID: 4, Arrival: 0, Burst: 16},
		},
	}
}

// StaggeredArrivals has short jobs arriving after a long one.
func StaggeredArrivals() Scenario {
	return Scenario{
		Name:        "staggered_arrivals",
		Description: "Processes arriving at different times, some short ones arrive later.",
		Processes: []core.Process[int]{
			{ID: 1, Arrival: 0, Burst: 8},
			{ID: 2, Arrival: 2, Burst: 4},
			{ID: 3, Arrival: 4, Burst: 1},
			{ID: 4, Arrival: 6, Burst: 3},
		},
	}
}

func InteractiveLike() Scenario {
	return Scenario{
		Name:        "interactive_like",
		Description: "Interactive load: small and medium bursts with close arrivals.",
		Processes: []core.Process[int]{
			{ID: 1, Arrival: 0, Burst: 5},
			{ID: 2, Arrival: 1, Burst: 3},
			{ID: 3, Arrival: 2, Burst: 4},
			{ID: 4, Arrival: 3, Burst: 2},
		},
	}
}

// RandomConfig describes a seeded random scenario. Bounds are inclusive.
type RandomConfig struct {
	Name        string
	Description string
	Count       int
	MaxArrival  int
	MinBurst    int
	MaxBurst    int
	Seed        int64
}

// Random generates a reproducible scenario: the same config always yields the
// same processes, sorted by (arrival, id).
func Random(cfg RandomConfig) (Scenario, error) {
	if cfg.Count <= 0 || cfg.MaxArrival < 0 || cfg.MinBurst <= 0 || cfg.MaxBurst < cfg.MinBurst {
		return Scenario{}, fmt.Errorf("invalid random scenario %q: %+v", cfg.Name, cfg)
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	processes := make([]core.Process[int], cfg.Count)
	for i := range processes {
		processes[i] = core.Process[int]{
			ID:      i + 1,
			Arrival: rng.Intn(cfg.MaxArrival + 1),
			Burst:   cfg.MinBurst + rng.Intn(cfg.MaxBurst-cfg.MinBurst+1),
		}
	}
	slices.SortStableFunc(processes, func(a, b core.Process[int]) int {
		return a.Arrival - b.Arrival
	})
	return Scenario{Name: cfg.Name, Description: cfg.Description, Processes: processes}, nil
}

func mustRandom(cfg RandomConfig) Scenario {
	s, err := Random(cfg)
	if err != nil {
		panic(err)
	}
	return s
}

func RandomLightLoad() Scenario {
	return mustRandom(RandomConfig{
		Name:        "random_light_load",
		Description: "Light random load: few processes, short bursts, early arrivals.",
		Count:       5,
		MaxArrival:  5,
		MinBurst:    1,
		MaxBurst:    6,
		Seed:        42,
	})
}

func RandomHeavyLoad() Scenario {
	return mustRandom(RandomConfig{
		Name:        "random_heavy_load",
		Description: "Heavy random load: more processes, medium and long bursts, spread arrivals.",
		Count:       10,
		MaxArrival:  15,
		MinBurst:    2,
		MaxBurst:    12,
		Seed:        99,
	})
}

// All returns every built-in scenario.
func All() []Scenario {
	return []Scenario{
		BatchJobs(),
		StaggeredArrivals(),
		InteractiveLike(),
		RandomLightLoad(),
		RandomHeavyLoad(),
	}
}

// Find looks a built-in scenario up by name.
func Find(name string) (Scenario, bool) {
	for _, s := range All() {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}
