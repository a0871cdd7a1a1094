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
	"math"

	"k8s.io/apimachinery/pkg/util/sets"
	"k8s.io/apimachinery/pkg/util/validation/field"
)

var supportedGoals = sets.New(string(GoalMaximize), string(GoalMinimize))

// ValidateGeneticOptimizerArgs validates defaulted args. Nil optional fields are skipped.
func ValidateGeneticOptimizerArgs(path *field.Path, args *GeneticOptimizerArgs) field.ErrorList {
	var allErrs field.ErrorList

	if args.Problem == "" {
		allErrs = append(allErrs, field.Required(path.Child("problem"), ""))
	}
	if !supportedGoals.Has(string(args.Goal)) {
		allErrs = append(allErrs, field.NotSupported(path.Child("goal"), args.Goal, sets.List(supportedGoals)))
	}
	if args.Epsilon != nil && !isPositive(*args.Epsilon) {
		allErrs = append(allErrs, field.Invalid(path.Child("epsilon"), *args.Epsilon, "must be a positive number"))
	}

	names := sets.New[string]()
	for i, v := range args.Variables {
		p := path.Child("variables").Index(i)
		if v.Name != "" {
			if names.Has(v.Name) {
				allErrs = append(allErrs, field.Duplicate(p.Child("name"), v.Name))
			}
			names.Insert(v.Name)
		}
		if !isFinite(v.Min) {
			allErrs = append(allErrs, field.Invalid(p.Child("min"), v.Min, "must be finite"))
		}
		if !isFinite(v.Max) {
			allErrs = append(allErrs, field.Invalid(p.Child("max"), v.Max, "must be finite"))
		} else if v.Max <= v.Min {
			allErrs = append(allErrs, field.Invalid(p.Child("max"), v.Max, "must be greater than min"))
		}
		if !isPositive(v.Epsilon) {
			allErrs = append(allErrs, field.Invalid(p.Child("epsilon"), v.Epsilon, "must be a positive number"))
		}
	}

	if args.PopulationSize != nil && *args.PopulationSize < 1 {
		allErrs = append(allErrs, field.Invalid(path.Child("populationSize"), *args.PopulationSize, "must be at least 1"))
	}
	if args.Generations != nil && *args.Generations < 0 {
		allErrs = append(allErrs, field.Invalid(path.Child("generations"), *args.Generations, "must not be negative"))
	}
	if args.MutationRate != nil {
		if r := *args.MutationRate; math.IsNaN(r) || r < 0 || r > 1 {
			allErrs = append(allErrs, field.Invalid(path.Child("mutationRate"), r, "must be in the range [0, 1]"))
		}
	}
	if args.Parallelism != nil && *args.Parallelism < 0 {
		allErrs = append(allErrs, field.Invalid(path.Child("parallelism"), *args.Parallelism, "must not be negative"))
	}

	return allErrs
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func isPositive(v float64) bool {
	return isFinite(v) && v > 0
}
