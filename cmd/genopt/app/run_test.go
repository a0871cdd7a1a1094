package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"

	"github.com/mihai-snyk/genopt/apis/config/v1alpha1"
)

func parseOptions(t *testing.T, argv ...string) *Options {
	t.Helper()
	o := NewOptions()
	fs := pflag.NewFlagSet("genopt", pflag.ContinueOnError)
	o.AddFlags(fs)
	require.NoError(t, fs.Parse(argv))
	return o
}

func runOptions(t *testing.T, o *Options) v1alpha1.OptimizationResult {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), o, &out))

	var res v1alpha1.OptimizationResult
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &res))
	return res
}

func TestRunReferenceScenario(t *testing.T) {
	res := runOptions(t, parseOptions(t, "--seed=42", "--history"))

	assert.Equal(t, v1alpha1.OptimizationResultKind, res.Kind)
	assert.Equal(t, "quadratic", res.Problem)
	assert.Equal(t, v1alpha1.GoalMaximize, res.Goal)
	assert.Equal(t, int32(5), res.Generations)
	require.Len(t, res.Variables, 2)
	assert.Equal(t, "x1", res.Variables[0].Name)
	x1, x2 := res.Variables[0].Value, res.Variables[1].Value
	for _, v := range []float64{x1, x2} {
		assert.GreaterOrEqual(t, v, -10.0)
		assert.LessOrEqual(t, v, 10.0)
	}
	assert.InDelta(t, x1*x1+x2*x2-x1*x2, res.Fitness, 1e-9)
	assert.Equal(t, res.Fitness, res.Objective)
	assert.Len(t, res.Chromosome, 22)
	assert.Len(t, res.History, 6)
	assert.Equal(t, int64(60), res.Evaluations)
}

func TestRunMinimizeWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "args.yaml")
	require.NoError(t, os.WriteFile(config, []byte(`
apiVersion: genopt.x-k8s.io/v1alpha1
kind: GeneticOptimizerArgs
problem: beale
goal: Minimize
variables:
- {name: a, min: 0, max: 4, epsilon: 0.001}
- {name: b, min: -1, max: 1, epsilon: 0.001}
populationSize: 12
generations: 8
seed: 3
cacheFitness: true
`), 0o600))
	plot := filepath.Join(dir, "plot.html")

	res := runOptions(t, parseOptions(t, "--config", config, "--generations=4", "--plot", plot))

	assert.Equal(t, "beale", res.Problem)
	assert.Equal(t, v1alpha1.GoalMinimize, res.Goal)
	// The flag wins over the file, the file wins over flag defaults.
	assert.Equal(t, int32(4), res.Generations)
	require.Len(t, res.Variables, 2)
	assert.Equal(t, "a", res.Variables[0].Name)
	assert.Equal(t, "b", res.Variables[1].Name)
	assert.GreaterOrEqual(t, res.Variables[0].Value, 0.0)
	assert.LessOrEqual(t, res.Variables[0].Value, 4.0)
	assert.InDelta(t, 1/(1+res.Objective), res.Fitness, 1e-12)
	assert.Equal(t, int64(12*5), res.Evaluations+res.CacheHits)
	assert.Empty(t, res.History)

	data, err := os.ReadFile(plot)
	require.NoError(t, err)
	assert.Contains(t, string(data), "SimpleGA Convergence for Beale Problem")
}

func TestRunErrors(t *testing.T) {
	tests := map[string][]string{
		"unknown problem":  {"--problem=sphere"},
		"invalid goal":     {"--goal=Up"},
		"invalid rate":     {"--mutation-rate=3"},
		"invalid epsilon":  {"--epsilon=-1"},
		"missing config":   {"--config=/does/not/exist.yaml"},
		"empty population": {"--population-size=0"},
	}
	for name, argv := range tests {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			err := Run(context.Background(), parseOptions(t, argv...), &out)
			assert.Error(t, err)
			assert.Zero(t, out.Len())
		})
	}
}

func TestNewProblemVariableCount(t *testing.T) {
	args := &v1alpha1.GeneticOptimizerArgs{
		Problem:   "quadratic",
		Variables: []v1alpha1.VariableSpec{{Min: 0, Max: 1, Epsilon: 0.1}},
	}
	v1alpha1.SetDefaults_GeneticOptimizerArgs(args)
	_, _, err := NewProblem(args)
	assert.ErrorContains(t, err, "has 2 variables")
}

func TestOptionsArgsWithoutConfig(t *testing.T) {
	args, err := parseOptions(t, "--problem=rosenbrock", "--parallelism=2", "--cache-fitness").Args()
	require.NoError(t, err)
	assert.Equal(t, "rosenbrock", args.Problem)
	assert.Equal(t, int32(2), *args.Parallelism)
	assert.True(t, *args.CacheFitness)
	assert.Equal(t, v1alpha1.DefaultPopulationSize, *args.PopulationSize)

	cfg := NewConfig(args)
	assert.Equal(t, 10, cfg.PopulationSize)
	assert.Equal(t, 5, cfg.Generations)
	assert.Equal(t, 2, cfg.Parallelism)
	assert.True(t, cfg.CacheFitness)
}
