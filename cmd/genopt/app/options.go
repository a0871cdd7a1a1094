package app

import (
	"fmt"

	"github.com/spf13/pflag"
	"k8s.io/utils/ptr"

	"github.com/mihai-snyk/genopt/apis/config/v1alpha1"
	"github.com/mihai-snyk/genopt/pkg/genetic/benchmarks"
)

// Options are the command line options of genopt. Flags that are set explicitly
// override the corresponding fields of the config file.
type Options struct {
	ConfigFile     string
	Problem        string
	Goal           string
	Epsilon        float64
	PopulationSize int32
	Generations    int32
	MutationRate   float64
	Seed           uint64
	Parallelism    int32
	CacheFitness   bool
	PlotFile       string
	History        bool

	fs *pflag.FlagSet
}

func NewOptions() *Options {
	return &Options{
		Problem:        v1alpha1.DefaultProblem,
		Goal:           string(v1alpha1.DefaultGoal),
		Epsilon:        v1alpha1.DefaultEpsilon,
		PopulationSize: v1alpha1.DefaultPopulationSize,
		Generations:    v1alpha1.DefaultGenerations,
		MutationRate:   v1alpha1.DefaultMutationRate,
	}
}

func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.ConfigFile, "config", o.ConfigFile, "Path to a GeneticOptimizerArgs file.")
	fs.StringVar(&o.Problem, "problem", o.Problem, fmt.Sprintf("Problem to optimise, one of %v.", benchmarks.Names()))
	fs.StringVar(&o.Goal, "goal", o.Goal, "Optimisation direction, Maximize or Minimize.")
	fs.Float64Var(&o.Epsilon, "epsilon", o.Epsilon, "Resolution of every decision variable.")
	fs.Int32Var(&o.PopulationSize, "population-size", o.PopulationSize, "Number of candidates per generation.")
	fs.Int32Var(&o.Generations, "generations", o.Generations, "Number of generations to evolve.")
	fs.Float64Var(&o.MutationRate, "mutation-rate", o.MutationRate, "Per-bit mutation probability.")
	fs.Uint64Var(&o.Seed, "seed", o.Seed, "Random seed, 0 picks one at random.")
	fs.Int32Var(&o.Parallelism, "parallelism", o.Parallelism, "Concurrent evaluations, 0 means one per CPU.")
	fs.BoolVar(&o.CacheFitness, "cache-fitness", o.CacheFitness, "Memoise objective values by chromosome.")
	fs.StringVar(&o.PlotFile, "plot", o.PlotFile, "Write an HTML convergence chart to this path.")
	fs.BoolVar(&o.History, "history", o.History, "Include per-generation statistics in the result.")
	o.fs = fs
}

func (o *Options) changed(name string) bool {
	return o.fs != nil && o.fs.Changed(name)
}

// Args loads the config file, if any, and applies explicitly set flags on top of it.
// Without a config file every flag value is used.
func (o *Options) Args() (*v1alpha1.GeneticOptimizerArgs, error) {
	args := &v1alpha1.GeneticOptimizerArgs{}
	if o.ConfigFile != "" {
		loaded, err := v1alpha1.Load(o.ConfigFile)
		if err != nil {
			return nil, err
		}
		args = loaded
	}
	useFlag := func(name string) bool {
		return o.ConfigFile == "" || o.changed(name)
	}

	if useFlag("problem") {
		args.Problem = o.Problem
	}
	if useFlag("goal") {
		args.Goal = v1alpha1.Goal(o.Goal)
	}
	if useFlag("epsilon") {
		args.Epsilon = ptr.To(o.Epsilon)
	}
	if useFlag("population-size") {
		args.PopulationSize = ptr.To(o.PopulationSize)
	}
	if useFlag("generations") {
		args.Generations = ptr.To(o.Generations)
	}
	if useFlag("mutation-rate") {
		args.MutationRate = ptr.To(o.MutationRate)
	}
	if useFlag("seed") {
		args.Seed = ptr.To(o.Seed)
	}
	if useFlag("parallelism") {
		args.Parallelism = ptr.To(o.Parallelism)
	}
	if useFlag("cache-fitness") {
		args.CacheFitness = ptr.To(o.CacheFitness)
	}

	v1alpha1.SetDefaults_GeneticOptimizerArgs(args)
	return args, nil
}
