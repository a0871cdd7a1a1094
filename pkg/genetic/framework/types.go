package framework

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDomain              = errors.New("invalid domain")
	ErrDegenerateChromosome       = errors.New("degenerate chromosome")
	ErrZeroTotalFitness           = errors.New("zero total fitness")
	ErrMismatchedChromosomeLength = errors.New("mismatched chromosome length")
	ErrInvalidFitness             = errors.New("invalid fitness")
	ErrInvalidParameter           = errors.New("invalid parameter")
)

// ObjectiveFunc maps a decision vector to a scalar fitness. Higher is better as far as
// selection is concerned; minimisation problems have to be transformed by the caller.
type ObjectiveFunc func([]float64) float64

// Bounds is the search box and the desired resolution of a single decision variable.
type Bounds struct {
	Min     float64
	Max     float64
	Epsilon float64
}

// Problem describes the contract a specific optimisation problem needs to implement.
type Problem interface {
	Name() string
	Bounds() []Bounds
	Objective() ObjectiveFunc
}

type problem struct {
	name      string
	bounds    []Bounds
	objective ObjectiveFunc
}

// NewProblem returns a Problem backed by the given values.
func NewProblem(name string, bounds []Bounds, objective ObjectiveFunc) Problem {
	return &problem{
		name:      name,
		bounds:    bounds,
		objective: objective,
	}
}

func (p *problem) Name() string {
	return p.name
}

func (p *problem) Bounds() []Bounds {
	b := make([]Bounds, len(p.bounds))
	copy(b, p.bounds)
	return b
}

func (p *problem) Objective() ObjectiveFunc {
	return p.objective
}

// Candidate pairs a chromosome with the fitness of its decoded point.
// It is never modified after construction.
type Candidate struct {
	chromosome Chromosome
	values     []float64
	fitness    float64
}

// NewCandidate decodes the chromosome and evaluates the objective on the decoded point.
func NewCandidate(codec *Codec, chromosome Chromosome, objective ObjectiveFunc) (Candidate, error) {
	values, err := codec.Decode(chromosome)
	if err != nil {
		return Candidate{}, err
	}
	return Candidate{
		chromosome: chromosome.Clone(),
		values:     values,
		fitness:    objective(values),
	}, nil
}

// newEvaluatedCandidate is used when the fitness is already known, e.g. from a FitnessCache.
func newEvaluatedCandidate(chromosome Chromosome, values []float64, fitness float64) Candidate {
	return Candidate{
		chromosome: chromosome.Clone(),
		values:     values,
		fitness:    fitness,
	}
}

func (c Candidate) Chromosome() Chromosome {
	return c.chromosome.Clone()
}

func (c Candidate) Values() []float64 {
	v := make([]float64, len(c.values))
	copy(v, c.values)
	return v
}

func (c Candidate) Fitness() float64 {
	return c.fitness
}

// Len is the encoded length of the candidate's chromosome.
func (c Candidate) Len() int {
	return len(c.chromosome)
}

func (c Candidate) String() string {
	return fmt.Sprintf("%v %v %v", c.chromosome, c.values, c.fitness)
}

// Population is an ordered collection of candidates.
type Population []Candidate

// Best returns the candidate with the highest fitness. Ties resolve to the earliest one.
func (p Population) Best() (Candidate, error) {
	if len(p) == 0 {
		return Candidate{}, fmt.Errorf("empty population: %w", ErrInvalidParameter)
	}
	best := p[0]
	for _, c := range p[1:] {
		if c.fitness > best.fitness {
			best = c
		}
	}
	return best, nil
}

// Fitnesses returns the fitness of every candidate, in population order.
func (p Population) Fitnesses() []float64 {
	f := make([]float64, len(p))
	for i, c := range p {
		f[i] = c.fitness
	}
	return f
}
