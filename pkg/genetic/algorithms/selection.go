package algorithms

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/mihai-snyk/genopt/pkg/genetic/framework"
)

// GenerateMatingPool builds a mating pool of exactly n candidates using fitness-proportional
// allocation. Every candidate, best first, receives floor(fitness/total*n) slots; slots left
// over by rounding go to the best candidate.
func GenerateMatingPool(population framework.Population, n int) (framework.Population, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: mating pool size %d", framework.ErrInvalidParameter, n)
	}
	if len(population) == 0 {
		return nil, fmt.Errorf("%w: empty population", framework.ErrInvalidParameter)
	}

	fitness := population.Fitnesses()
	for i, f := range fitness {
		if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: candidate %d has fitness %v", framework.ErrInvalidFitness, i, f)
		}
	}
	total := floats.Sum(fitness)
	if total == 0 {
		return nil, framework.ErrZeroTotalFitness
	}
	if math.IsInf(total, 0) {
		return nil, fmt.Errorf("%w: total fitness overflows", framework.ErrInvalidFitness)
	}

	sorted := make(framework.Population, len(population))
	copy(sorted, population)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Fitness() > sorted[j].Fitness()
	})

	pool := make(framework.Population, 0, n)
	for _, c := range sorted {
		slots := int(math.Floor(c.Fitness() / total * float64(n)))
		for i := 0; i < slots && len(pool) < n; i++ {
			pool = append(pool, c)
		}
		if len(pool) >= n {
			break
		}
	}

	// Elitism: the rank-0 candidate fills whatever rounding left over.
	for len(pool) < n {
		pool = append(pool, sorted[0])
	}

	return pool, nil
}
