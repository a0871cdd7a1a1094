package framework

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sumOfSquares(x []float64) float64 {
	s := 0.0
	for _, v := range x {
		s += v * v
	}
	return s
}

func testCodec(t *testing.T) *Codec {
	t.Helper()
	codec, err := NewCodec([]Bounds{
		{Min: -10, Max: 10, Epsilon: 0.01},
		{Min: -10, Max: 10, Epsilon: 0.01},
	})
	require.NoError(t, err)
	return codec
}

func TestParseChromosome(t *testing.T) {
	for _, s := range []string{"", "0", "1", "10101", "0000011111"} {
		c, err := ParseChromosome(s)
		require.NoError(t, err)
		assert.Equal(t, len(s), len(c))
		assert.Equal(t, s, c.String())
	}

	_, err := ParseChromosome("10201")
	assert.Error(t, err)
}

func TestChromosomeClone(t *testing.T) {
	c := Chromosome{true, false, true}
	clone := c.Clone()
	clone[0] = false
	assert.True(t, c[0])
	assert.Nil(t, Chromosome(nil).Clone())
}

func TestNewCandidate(t *testing.T) {
	codec := testCodec(t)
	c, err := codec.Encode([]float64{3, -4})
	require.NoError(t, err)

	candidate, err := NewCandidate(codec, c, sumOfSquares)
	require.NoError(t, err)

	values, err := codec.Decode(c)
	require.NoError(t, err)
	assert.Equal(t, values, candidate.Values())
	assert.Equal(t, sumOfSquares(values), candidate.Fitness())
	assert.Equal(t, c, candidate.Chromosome())
	assert.Equal(t, codec.Len(), candidate.Len())

	// Mutating the inputs or the returned copies must not affect the candidate.
	c[0] = !c[0]
	got := candidate.Chromosome()
	got[1] = !got[1]
	assert.Equal(t, values, candidate.Values())
	assert.NotEqual(t, c, candidate.Chromosome())

	_, err = NewCandidate(codec, Chromosome{true}, sumOfSquares)
	assert.ErrorIs(t, err, ErrMismatchedChromosomeLength)
}

func TestPopulationBest(t *testing.T) {
	pop := Population{
		{fitness: 1},
		{fitness: 5, values: []float64{1}},
		{fitness: 5, values: []float64{2}},
		{fitness: 3},
	}
	best, err := pop.Best()
	require.NoError(t, err)
	assert.Equal(t, 5.0, best.Fitness())
	assert.Equal(t, []float64{1}, best.Values())
	assert.Equal(t, []float64{1, 5, 5, 3}, pop.Fitnesses())

	_, err = Population{}.Best()
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestProblem(t *testing.T) {
	bounds := []Bounds{{Min: 0, Max: 1, Epsilon: 0.1}}
	p := NewProblem("sphere", bounds, sumOfSquares)
	assert.Equal(t, "sphere", p.Name())
	assert.Equal(t, bounds, p.Bounds())
	assert.Equal(t, 2.0, p.Objective()([]float64{1, 1}))
}

func TestGenerationStats(t *testing.T) {
	s := NewGenerationStats(3, Population{{fitness: 2}, {fitness: 4}, {fitness: 6}})
	assert.Equal(t, 3, s.Generation)
	assert.Equal(t, 6.0, s.Best)
	assert.Equal(t, 2.0, s.Worst)
	assert.InDelta(t, 4.0, s.Mean, 1e-12)
	assert.InDelta(t, 2.0, s.StdDev, 1e-12)

	single := NewGenerationStats(0, Population{{fitness: 7}})
	assert.Equal(t, 7.0, single.Mean)
	assert.Equal(t, 0.0, single.StdDev)
	assert.False(t, math.IsNaN(single.StdDev))

	assert.Equal(t, GenerationStats{Generation: 1}, NewGenerationStats(1, nil))
}

func TestEvaluatorWithCache(t *testing.T) {
	codec := testCodec(t)
	fc := NewFitnessCache()
	e := NewEvaluator(codec, sumOfSquares, fc)

	c, err := codec.Encode([]float64{1, 2})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			candidate, err := e.Evaluate(c)
			assert.NoError(t, err)
			assert.Equal(t, sumOfSquares(candidate.Values()), candidate.Fitness())
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(8), e.Evaluations()+e.CacheHits())
	assert.GreaterOrEqual(t, e.CacheHits(), int64(0))
	assert.Equal(t, 1, fc.Len())

	fitness, ok := fc.Get(c)
	require.True(t, ok)
	values, _ := codec.Decode(c)
	assert.Equal(t, sumOfSquares(values), fitness)

	_, err = e.Evaluate(Chromosome{true})
	assert.ErrorIs(t, err, ErrMismatchedChromosomeLength)
}

func TestEvaluatorWithoutCache(t *testing.T) {
	codec := testCodec(t)
	e := NewEvaluator(codec, sumOfSquares, nil)
	c, err := codec.Encode([]float64{1, 2})
	require.NoError(t, err)

	for range 3 {
		_, err := e.Evaluate(c)
		require.NoError(t, err)
	}
	assert.Equal(t, int64(3), e.Evaluations())
	assert.Equal(t, int64(0), e.CacheHits())
	assert.Same(t, codec, e.Codec())
}
