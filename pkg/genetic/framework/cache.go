package framework

import (
	"sync/atomic"
	"time"

	"github.com/patrickmn/go-cache"
)

// FitnessCache memoises the fitness of chromosomes. The objective is assumed to be pure.
type FitnessCache struct {
	store *cache.Cache
}

// NewFitnessCache returns a cache whose entries never expire.
func NewFitnessCache() *FitnessCache {
	return &FitnessCache{
		store: cache.New(cache.NoExpiration, 10*time.Minute),
	}
}

func (fc *FitnessCache) Get(c Chromosome) (float64, bool) {
	v, ok := fc.store.Get(c.String())
	if !ok {
		return 0, false
	}
	return v.(float64), true
}

func (fc *FitnessCache) Set(c Chromosome, fitness float64) {
	fc.store.Set(c.String(), fitness, cache.NoExpiration)
}

func (fc *FitnessCache) Len() int {
	return fc.store.ItemCount()
}

// Evaluator builds candidates for one codec and objective, counting objective calls.
// It is safe for concurrent use as long as the objective is.
type Evaluator struct {
	codec     *Codec
	objective ObjectiveFunc
	cache     *FitnessCache

	evaluations atomic.Int64
	hits        atomic.Int64
}

// NewEvaluator returns an Evaluator. A nil cache disables memoisation.
func NewEvaluator(codec *Codec, objective ObjectiveFunc, fc *FitnessCache) *Evaluator {
	return &Evaluator{
		codec:     codec,
		objective: objective,
		cache:     fc,
	}
}

// Evaluate decodes the chromosome and returns the matching candidate.
func (e *Evaluator) Evaluate(c Chromosome) (Candidate, error) {
	if e.cache == nil {
		e.evaluations.Add(1)
		return NewCandidate(e.codec, c, e.objective)
	}

	values, err := e.codec.Decode(c)
	if err != nil {
		return Candidate{}, err
	}
	if fitness, ok := e.cache.Get(c); ok {
		e.hits.Add(1)
		return newEvaluatedCandidate(c, values, fitness), nil
	}
	e.evaluations.Add(1)
	fitness := e.objective(values)
	e.cache.Set(c, fitness)
	return newEvaluatedCandidate(c, values, fitness), nil
}

func (e *Evaluator) Codec() *Codec {
	return e.codec
}

// Evaluations is the number of objective calls made so far.
func (e *Evaluator) Evaluations() int64 {
	return e.evaluations.Load()
}

// CacheHits is the number of evaluations answered by the cache.
func (e *Evaluator) CacheHits() int64 {
	return e.hits.Load()
}
