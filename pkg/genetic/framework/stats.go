package framework

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// GenerationStats summarises the fitness distribution of one population.
type GenerationStats struct {
	Generation int
	Best       float64
	Worst      float64
	Mean       float64
	StdDev     float64
}

func NewGenerationStats(generation int, population Population) GenerationStats {
	s := GenerationStats{Generation: generation}
	if len(population) == 0 {
		return s
	}

	f := population.Fitnesses()
	s.Best = floats.Max(f)
	s.Worst = floats.Min(f)
	if len(f) == 1 {
		s.Mean = f[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(f, nil)
	return s
}
