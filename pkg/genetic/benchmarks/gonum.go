package benchmarks

import (
	"gonum.org/v1/gonum/optimize/functions"

	"github.com/mihai-snyk/genopt/pkg/genetic/framework"
)

const (
	BealeName      = "Beale"
	RosenbrockName = "Rosenbrock"
	BraninHooName  = "BraninHoo"
)

// NewBeale returns Beale's function on its usual box [-4.5, 4.5]².
// Global minimum 0 at (3, 0.5).
func NewBeale(epsilon float64) framework.Problem {
	return framework.NewProblem(BealeName, []framework.Bounds{
		{Min: -4.5, Max: 4.5, Epsilon: epsilon},
		{Min: -4.5, Max: 4.5, Epsilon: epsilon},
	}, functions.Beale{}.Func)
}

// NewRosenbrock returns the two-dimensional Rosenbrock function on [-2.048, 2.048]².
// Global minimum 0 at (1, 1).
func NewRosenbrock(epsilon float64) framework.Problem {
	return framework.NewProblem(RosenbrockName, []framework.Bounds{
		{Min: -2.048, Max: 2.048, Epsilon: epsilon},
		{Min: -2.048, Max: 2.048, Epsilon: epsilon},
	}, functions.ExtendedRosenbrock{}.Func)
}

// NewBraninHoo returns the Branin-Hoo function on x0 ∈ [-5, 10], x1 ∈ [0, 15].
// It has three global minima of 0.397887.
func NewBraninHoo(epsilon float64) framework.Problem {
	return framework.NewProblem(BraninHooName, []framework.Bounds{
		{Min: -5, Max: 10, Epsilon: epsilon},
		{Min: 0, Max: 15, Epsilon: epsilon},
	}, functions.BraninHoo{}.Func)
}
