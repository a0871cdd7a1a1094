package algorithms

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/genopt/pkg/genetic/framework"
)

const (
	Name = "SimpleGA"
)

// Config holds the parameters of a SimpleGA run.
type Config struct {
	// PopulationSize is the number of candidates in every generation.
	PopulationSize int
	// Generations is the number of generation transitions performed before termination.
	Generations int
	// MutationRate is the per-bit flip probability.
	MutationRate float64
	// Seed of the run's random source. Zero picks a random seed.
	Seed uint64
	// Parallelism bounds the number of concurrent evaluations. Zero means GOMAXPROCS.
	Parallelism int
	// CacheFitness memoises objective values by chromosome.
	CacheFitness bool
}

// DefaultConfig returns the parameters of the reference scenario.
func DefaultConfig() Config {
	return Config{
		PopulationSize: 10,
		Generations:    5,
		MutationRate:   0.01,
	}
}

func (c Config) Validate() error {
	if c.PopulationSize < 1 {
		return fmt.Errorf("%w: population size %d must be at least 1", framework.ErrInvalidParameter, c.PopulationSize)
	}
	if c.Generations < 0 {
		return fmt.Errorf("%w: generations %d must not be negative", framework.ErrInvalidParameter, c.Generations)
	}
	if math.IsNaN(c.MutationRate) || c.MutationRate < 0 || c.MutationRate > 1 {
		return fmt.Errorf("%w: mutation rate %v outside [0, 1]", framework.ErrInvalidParameter, c.MutationRate)
	}
	if c.Parallelism < 0 {
		return fmt.Errorf("%w: parallelism %d must not be negative", framework.ErrInvalidParameter, c.Parallelism)
	}
	return nil
}

// ProgressFunc is notified once per generation with the best fitness seen so far.
type ProgressFunc func(generation int, bestFitness float64)

// SimpleGA is a generational genetic algorithm over binary chromosomes with
// fitness-proportional selection, single point crossover and bit-flip mutation.
type SimpleGA struct {
	problem   framework.Problem
	config    Config
	codec     *framework.Codec
	evaluator *framework.Evaluator
	observer  ProgressFunc
}

// Result is the outcome of a run.
type Result struct {
	// Best is the fittest candidate of the final population.
	Best       framework.Candidate
	Population framework.Population
	// History holds the statistics of the initial population and of every generation after it.
	History     []framework.GenerationStats
	Evaluations int64
	CacheHits   int64
}

// NewSimpleGA validates the configuration and derives the chromosome layout from the
// problem's bounds.
func NewSimpleGA(problem framework.Problem, cfg Config) (*SimpleGA, error) {
	if problem == nil || problem.Objective() == nil {
		return nil, fmt.Errorf("%w: problem has no objective", framework.ErrInvalidParameter)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	codec, err := framework.NewCodec(problem.Bounds())
	if err != nil {
		return nil, fmt.Errorf("problem %s: %w", problem.Name(), err)
	}

	var fc *framework.FitnessCache
	if cfg.CacheFitness {
		fc = framework.NewFitnessCache()
	}
	if cfg.Parallelism == 0 {
		cfg.Parallelism = runtime.GOMAXPROCS(0)
	}

	return &SimpleGA{
		problem:   problem,
		config:    cfg,
		codec:     codec,
		evaluator: framework.NewEvaluator(codec, problem.Objective(), fc),
	}, nil
}

func (ga *SimpleGA) Name() string {
	return Name
}

func (ga *SimpleGA) Codec() *framework.Codec {
	return ga.codec
}

func (ga *SimpleGA) Config() Config {
	return ga.config
}

// SetObserver registers a function called at the start of every generation.
func (ga *SimpleGA) SetObserver(fn ProgressFunc) {
	ga.observer = fn
}

func (ga *SimpleGA) newRand() *rand.Rand {
	if ga.config.Seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(ga.config.Seed, ga.config.Seed))
}

// split draws n independent sources from rng so that concurrent work stays reproducible.
func split(rng *rand.Rand, n int) []*rand.Rand {
	streams := make([]*rand.Rand, n)
	for i := range streams {
		streams[i] = rand.New(rand.NewPCG(rng.Uint64(), rng.Uint64()))
	}
	return streams
}

// Initialize samples every variable uniformly within its bounds and encodes the sampled
// point. Fitness is evaluated at the point the chromosome decodes to.
func (ga *SimpleGA) Initialize(rng *rand.Rand) (framework.Population, error) {
	population := make(framework.Population, ga.config.PopulationSize)
	bounds := ga.codec.Bounds()
	streams := split(rng, len(population))

	var g errgroup.Group
	g.SetLimit(ga.config.Parallelism)
	for i := range population {
		r := streams[i]
		g.Go(func() error {
			vars := make([]float64, len(bounds))
			for j, b := range bounds {
				vars[j] = b.Min + r.Float64()*(b.Max-b.Min)
			}
			chromosome, err := ga.codec.Encode(vars)
			if err != nil {
				return err
			}
			population[i], err = ga.evaluator.Evaluate(chromosome)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return population, nil
}

// Evolve produces the next generation. Mating pool members are paired by consecutive
// index, wrapping around for odd sizes, and every pair yields two children through
// crossover and mutation. The surplus child of a wrapped pair is dropped.
func (ga *SimpleGA) Evolve(ctx context.Context, population framework.Population, rng *rand.Rand) (framework.Population, error) {
	logger := klog.FromContext(ctx)
	n := ga.config.PopulationSize
	if len(population) != n {
		return nil, fmt.Errorf("%w: population has %d candidates, want %d", framework.ErrInvalidParameter, len(population), n)
	}

	pool, err := GenerateMatingPool(population, n)
	if err != nil {
		return nil, err
	}
	logger.V(5).Info("Built mating pool", "fitness", pool.Fitnesses())

	offspring := make(framework.Population, n)
	streams := split(rng, (n+1)/2)

	var g errgroup.Group
	g.SetLimit(ga.config.Parallelism)
	for k, r := range streams {
		i := 2 * k
		parent1 := pool[i].Chromosome()
		parent2 := pool[(i+1)%n].Chromosome()
		g.Go(func() error {
			child1, child2, _, err := Crossover(parent1, parent2, r)
			if err != nil {
				return err
			}
			child1 = Mutate(child1, ga.config.MutationRate, r)
			child2 = Mutate(child2, ga.config.MutationRate, r)

			if offspring[i], err = ga.evaluator.Evaluate(child1); err != nil {
				return err
			}
			if i+1 < n {
				if offspring[i+1], err = ga.evaluator.Evaluate(child2); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return offspring, nil
}

// Run executes the algorithm for the configured number of generations and reports the
// fittest candidate of the final population.
func (ga *SimpleGA) Run(ctx context.Context) (Result, error) {
	logger := klog.FromContext(ctx).WithValues("problem", ga.problem.Name(), "algorithm", Name)
	logger.V(2).Info("Starting run", "populationSize", ga.config.PopulationSize,
		"generations", ga.config.Generations, "mutationRate", ga.config.MutationRate,
		"chromosomeLength", ga.codec.Len())

	evaluations, hits := ga.evaluator.Evaluations(), ga.evaluator.CacheHits()
	rng := ga.newRand()

	population, err := ga.Initialize(rng)
	if err != nil {
		return Result{}, fmt.Errorf("initializing population: %w", err)
	}

	history := make([]framework.GenerationStats, 0, ga.config.Generations+1)
	bestSoFar := math.Inf(-1)
	for gen := 0; gen < ga.config.Generations; gen++ {
		stats := framework.NewGenerationStats(gen, population)
		history = append(history, stats)
		bestSoFar = math.Max(bestSoFar, stats.Best)

		logger.V(4).Info("Evolving generation", "generation", gen, "best", stats.Best,
			"mean", stats.Mean, "stdDev", stats.StdDev, "bestSoFar", bestSoFar)
		if ga.observer != nil {
			ga.observer(gen, bestSoFar)
		}

		population, err = ga.Evolve(klog.NewContext(ctx, logger.WithValues("generation", gen)), population, rng)
		if err != nil {
			return Result{}, fmt.Errorf("generation %d: %w", gen, err)
		}
	}
	history = append(history, framework.NewGenerationStats(ga.config.Generations, population))

	best, err := population.Best()
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Best:        best,
		Population:  population,
		History:     history,
		Evaluations: ga.evaluator.Evaluations() - evaluations,
		CacheHits:   ga.evaluator.CacheHits() - hits,
	}
	logger.V(2).Info("Finished run", "best", best.Values(), "fitness", best.Fitness(),
		"evaluations", result.Evaluations, "cacheHits", result.CacheHits)
	return result, nil
}
