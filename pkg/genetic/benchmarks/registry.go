package benchmarks

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mihai-snyk/genopt/pkg/genetic/framework"
)

type factory func(epsilon float64) framework.Problem

var registry = map[string]factory{
	strings.ToLower(QuadraticName):  func(eps float64) framework.Problem { return NewQuadratic(eps) },
	strings.ToLower(BealeName):      NewBeale,
	strings.ToLower(RosenbrockName): NewRosenbrock,
	strings.ToLower(BraninHooName):  NewBraninHoo,
}

// Names lists the registered problems.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named problem with every variable resolved to epsilon.
// Names are case insensitive.
func Lookup(name string, epsilon float64) (framework.Problem, error) {
	f, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown problem %q, want one of %v", name, Names())
	}
	return f(epsilon), nil
}

// Minimize maps a non-negative objective that should be minimised to a fitness that
// increases as the objective decreases: 1/(1+f).
func Minimize(f framework.ObjectiveFunc) framework.ObjectiveFunc {
	return func(x []float64) float64 {
		return 1 / (1 + f(x))
	}
}

// Minimized wraps a problem so that its optimiser searches for the minimum of the objective.
func Minimized(p framework.Problem) framework.Problem {
	return framework.NewProblem(p.Name(), p.Bounds(), Minimize(p.Objective()))
}

// WithBounds replaces the bounds of a problem, keeping its name and objective.
func WithBounds(p framework.Problem, bounds []framework.Bounds) framework.Problem {
	return framework.NewProblem(p.Name(), bounds, p.Objective())
}
