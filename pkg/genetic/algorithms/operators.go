package algorithms

import (
	"fmt"
	"math/rand/v2"

	"github.com/mihai-snyk/genopt/pkg/genetic/framework"
)

// Crossover performs single point crossover at a locus drawn uniformly from [1, L-1],
// so that each child inherits bits from both parents.
func Crossover(p1, p2 framework.Chromosome, rng *rand.Rand) (framework.Chromosome, framework.Chromosome, int, error) {
	if err := checkParents(p1, p2); err != nil {
		return nil, nil, 0, err
	}
	locus := 1 + rng.IntN(len(p1)-1)
	c1, c2, err := CrossoverAt(p1, p2, locus)
	return c1, c2, locus, err
}

// CrossoverAt swaps the tails of both parents starting at locus.
func CrossoverAt(p1, p2 framework.Chromosome, locus int) (framework.Chromosome, framework.Chromosome, error) {
	if err := checkParents(p1, p2); err != nil {
		return nil, nil, err
	}
	if locus < 1 || locus > len(p1)-1 {
		return nil, nil, fmt.Errorf("%w: locus %d outside [1, %d]", framework.ErrInvalidParameter, locus, len(p1)-1)
	}

	child1 := make(framework.Chromosome, len(p1))
	child2 := make(framework.Chromosome, len(p2))
	copy(child1, p1[:locus])
	copy(child1[locus:], p2[locus:])
	copy(child2, p2[:locus])
	copy(child2[locus:], p1[locus:])
	return child1, child2, nil
}

func checkParents(p1, p2 framework.Chromosome) error {
	if len(p1) != len(p2) {
		return fmt.Errorf("%w: parents have %d and %d bits", framework.ErrMismatchedChromosomeLength, len(p1), len(p2))
	}
	if len(p1) < 2 {
		return fmt.Errorf("%w: %d bits", framework.ErrDegenerateChromosome, len(p1))
	}
	return nil
}

// Mutate returns a copy of c where every bit is flipped with probability rate.
func Mutate(c framework.Chromosome, rate float64, rng *rand.Rand) framework.Chromosome {
	mutated := c.Clone()
	for i := range mutated {
		if rng.Float64() < rate {
			mutated[i] = !mutated[i]
		}
	}
	return mutated
}
