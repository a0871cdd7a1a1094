/*
Copyright 2024 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

const (
	GroupName = "genopt.x-k8s.io"

	GeneticOptimizerArgsKind = "GeneticOptimizerArgs"
	OptimizationResultKind   = "OptimizationResult"
)

// SchemeGroupVersion is the group version used by every document in this package.
var SchemeGroupVersion = schema.GroupVersion{Group: GroupName, Version: "v1alpha1"}

// GeneticOptimizerArgs holds the arguments used to configure a genetic optimizer run.
type GeneticOptimizerArgs struct {
	metav1.TypeMeta `json:",inline"`

	// Problem is the name of a registered benchmark problem
	Problem string `json:"problem"`

	// Goal selects whether the raw objective is used as fitness or is transformed so that
	// lower objective values score higher
	// +kubebuilder:validation:Enum=Maximize;Minimize
	Goal Goal `json:"goal,omitempty"`

	// Epsilon is the resolution applied to the problem's own variables. It is ignored when
	// Variables is set.
	Epsilon *float64 `json:"epsilon,omitempty"`

	// Variables overrides the search box of the problem, one entry per decision variable
	Variables []VariableSpec `json:"variables,omitempty"`

	// PopulationSize is the number of candidates in every generation
	PopulationSize *int32 `json:"populationSize,omitempty"`

	// Generations is the number of generations evolved before the run terminates
	Generations *int32 `json:"generations,omitempty"`

	// MutationRate is the per-bit flip probability
	MutationRate *float64 `json:"mutationRate,omitempty"`

	// Seed makes a run reproducible. Zero picks a random seed.
	Seed *uint64 `json:"seed,omitempty"`

	// Parallelism bounds concurrent objective evaluations. Zero means one per CPU.
	Parallelism *int32 `json:"parallelism,omitempty"`

	// CacheFitness memoises objective values by chromosome
	CacheFitness *bool `json:"cacheFitness,omitempty"`
}

// VariableSpec defines the search bound and resolution of one decision variable
type VariableSpec struct {
	// Name is used when reporting results
	Name string `json:"name,omitempty"`

	Min float64 `json:"min"`
	Max float64 `json:"max"`

	// Epsilon is the desired resolution; it determines the variable's bit length
	Epsilon float64 `json:"epsilon"`
}

// Goal represents the optimisation direction
type Goal string

const (
	// GoalMaximize uses the raw objective value as fitness
	GoalMaximize Goal = "Maximize"

	// GoalMinimize uses 1/(1+f) as fitness; the objective must be non-negative
	GoalMinimize Goal = "Minimize"
)

// OptimizationResult is the document emitted at the end of a run
type OptimizationResult struct {
	metav1.TypeMeta `json:",inline"`

	// Problem is the name of the optimised problem
	Problem string `json:"problem"`

	Goal Goal `json:"goal"`

	// Chromosome is the binary encoding of the best candidate
	Chromosome string `json:"chromosome"`

	// Variables contains the decoded values of the best candidate
	Variables []VariableValue `json:"variables"`

	// Fitness is the fitness of the best candidate as seen by selection
	Fitness float64 `json:"fitness"`

	// Objective is the raw objective value at the best candidate
	Objective float64 `json:"objective"`

	Generations int32 `json:"generations"`

	// Evaluations is the number of objective calls made during the run
	Evaluations int64 `json:"evaluations"`

	CacheHits int64 `json:"cacheHits,omitempty"`

	// History contains per-generation fitness statistics, starting with the initial population
	History []GenerationSummary `json:"history,omitempty"`
}

// VariableValue is a named decoded decision variable
type VariableValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// GenerationSummary contains the fitness statistics of one generation
type GenerationSummary struct {
	Generation int     `json:"generation"`
	Best       float64 `json:"best"`
	Mean       float64 `json:"mean"`
	Worst      float64 `json:"worst"`
}
