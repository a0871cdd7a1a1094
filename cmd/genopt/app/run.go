package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-logr/logr"
	"k8s.io/apimachinery/pkg/util/validation/field"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/genopt/apis/config/v1alpha1"
	"github.com/mihai-snyk/genopt/pkg/genetic/algorithms"
	"github.com/mihai-snyk/genopt/pkg/genetic/benchmarks"
	"github.com/mihai-snyk/genopt/pkg/genetic/framework"
	"github.com/mihai-snyk/genopt/pkg/genetic/util"
)

// NewProblem resolves the configured problem and applies the variable overrides and
// the optimisation goal. The second return value is the untransformed objective.
func NewProblem(args *v1alpha1.GeneticOptimizerArgs) (framework.Problem, framework.ObjectiveFunc, error) {
	epsilon := v1alpha1.DefaultEpsilon
	if args.Epsilon != nil {
		epsilon = *args.Epsilon
	}
	problem, err := benchmarks.Lookup(args.Problem, epsilon)
	if err != nil {
		return nil, nil, err
	}

	if len(args.Variables) > 0 {
		if want := len(problem.Bounds()); len(args.Variables) != want {
			return nil, nil, fmt.Errorf("problem %s has %d variables, got %d", problem.Name(), want, len(args.Variables))
		}
		bounds := make([]framework.Bounds, len(args.Variables))
		for i, v := range args.Variables {
			bounds[i] = framework.Bounds{Min: v.Min, Max: v.Max, Epsilon: v.Epsilon}
		}
		problem = benchmarks.WithBounds(problem, bounds)
	}

	raw := problem.Objective()
	if args.Goal == v1alpha1.GoalMinimize {
		problem = benchmarks.Minimized(problem)
	}
	return problem, raw, nil
}

// NewConfig converts defaulted args into the algorithm configuration.
func NewConfig(args *v1alpha1.GeneticOptimizerArgs) algorithms.Config {
	return algorithms.Config{
		PopulationSize: int(*args.PopulationSize),
		Generations:    int(*args.Generations),
		MutationRate:   *args.MutationRate,
		Seed:           *args.Seed,
		Parallelism:    int(*args.Parallelism),
		CacheFitness:   *args.CacheFitness,
	}
}

// Run executes one optimisation described by o and writes an OptimizationResult to out.
func Run(ctx context.Context, o *Options, out io.Writer) error {
	logger := klog.FromContext(ctx)

	args, err := o.Args()
	if err != nil {
		return err
	}
	if errs := v1alpha1.ValidateGeneticOptimizerArgs(field.NewPath("args"), args); len(errs) > 0 {
		return errs.ToAggregate()
	}

	problem, raw, err := NewProblem(args)
	if err != nil {
		return err
	}
	ga, err := algorithms.NewSimpleGA(problem, NewConfig(args))
	if err != nil {
		return err
	}
	ga.SetObserver(progressLogger(logger, problem.Name()))

	start := time.Now()
	res, err := ga.Run(ctx)
	if err != nil {
		return fmt.Errorf("optimising %s: %w", problem.Name(), err)
	}
	logger.Info("Optimisation finished", "problem", problem.Name(), "fitness", res.Best.Fitness(),
		"evaluations", humanize.Comma(res.Evaluations), "cacheHits", humanize.Comma(res.CacheHits),
		"elapsed", time.Since(start))

	if o.PlotFile != "" {
		if err := util.PlotConvergenceFile(o.PlotFile, res.History, problem.Name(), ga.Name()); err != nil {
			return fmt.Errorf("plotting convergence: %w", err)
		}
		logger.V(2).Info("Wrote convergence chart", "path", o.PlotFile)
	}

	data, err := v1alpha1.Marshal(newResult(args, res, raw, o.History))
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

func progressLogger(logger logr.Logger, problemName string) algorithms.ProgressFunc {
	return func(generation int, bestFitness float64) {
		logger.V(3).Info(fmt.Sprintf("Generation %d: best fitness = %.4f", generation, bestFitness), "problem", problemName)
	}
}

func newResult(args *v1alpha1.GeneticOptimizerArgs, res algorithms.Result, raw framework.ObjectiveFunc, withHistory bool) v1alpha1.OptimizationResult {
	values := res.Best.Values()
	variables := make([]v1alpha1.VariableValue, len(values))
	for i, v := range values {
		name := fmt.Sprintf("x%d", i+1)
		if i < len(args.Variables) && args.Variables[i].Name != "" {
			name = args.Variables[i].Name
		}
		variables[i] = v1alpha1.VariableValue{Name: name, Value: v}
	}

	result := v1alpha1.OptimizationResult{
		Problem:     args.Problem,
		Goal:        args.Goal,
		Chromosome:  res.Best.Chromosome().String(),
		Variables:   variables,
		Fitness:     res.Best.Fitness(),
		Objective:   raw(values),
		Generations: *args.Generations,
		Evaluations: res.Evaluations,
		CacheHits:   res.CacheHits,
	}
	result.APIVersion = v1alpha1.SchemeGroupVersion.String()
	result.Kind = v1alpha1.OptimizationResultKind

	if withHistory {
		for _, s := range res.History {
			result.History = append(result.History, v1alpha1.GenerationSummary{
				Generation: s.Generation,
				Best:       s.Best,
				Mean:       s.Mean,
				Worst:      s.Worst,
			})
		}
	}
	return result
}
