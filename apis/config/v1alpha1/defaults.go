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
	"k8s.io/utils/ptr"
)

var (
	DefaultProblem        = "quadratic"
	DefaultGoal           = GoalMaximize
	DefaultEpsilon        = 0.01
	DefaultPopulationSize = int32(10)
	DefaultGenerations    = int32(5)
	DefaultMutationRate   = 0.01
)

// SetDefaults_GeneticOptimizerArgs sets the default parameters for a GeneticOptimizerArgs.
func SetDefaults_GeneticOptimizerArgs(obj *GeneticOptimizerArgs) {
	if obj.APIVersion == "" {
		obj.APIVersion = SchemeGroupVersion.String()
	}
	if obj.Kind == "" {
		obj.Kind = GeneticOptimizerArgsKind
	}
	if obj.Problem == "" {
		obj.Problem = DefaultProblem
	}
	if obj.Goal == "" {
		obj.Goal = DefaultGoal
	}
	if obj.Epsilon == nil {
		obj.Epsilon = ptr.To(DefaultEpsilon)
	}
	if obj.PopulationSize == nil {
		obj.PopulationSize = ptr.To(DefaultPopulationSize)
	}
	if obj.Generations == nil {
		obj.Generations = ptr.To(DefaultGenerations)
	}
	if obj.MutationRate == nil {
		obj.MutationRate = ptr.To(DefaultMutationRate)
	}
	if obj.Seed == nil {
		obj.Seed = ptr.To[uint64](0)
	}
	if obj.Parallelism == nil {
		obj.Parallelism = ptr.To[int32](0)
	}
	if obj.CacheFitness == nil {
		obj.CacheFitness = ptr.To(false)
	}
}
