package benchmarks

import (
	"github.com/mihai-snyk/genopt/pkg/genetic/framework"
)

const (
	QuadraticName = "Quadratic"
)

// Quadratic is the bivariate function f(x1, x2) = x1² + x2² - x1·x2 over [-10, 10]².
// Its minimum is 0 at the origin and it is non-negative everywhere, so its raw value can
// be used directly as fitness (which then drives the search towards the corners) or be
// passed through Minimize.
type Quadratic struct {
	epsilon float64
}

func NewQuadratic(epsilon float64) *Quadratic {
	return &Quadratic{
		epsilon: epsilon,
	}
}

func (p *Quadratic) Name() string {
	return QuadraticName
}

func (p *Quadratic) Bounds() []framework.Bounds {
	return []framework.Bounds{
		{Min: -10, Max: 10, Epsilon: p.epsilon},
		{Min: -10, Max: 10, Epsilon: p.epsilon},
	}
}

func (p *Quadratic) Objective() framework.ObjectiveFunc {
	return p.f
}

func (p *Quadratic) f(x []float64) float64 {
	x1, x2 := x[0], x[1]
	return x1*x1 + x2*x2 - x1*x2
}
