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
	"fmt"
	"os"

	"k8s.io/apimachinery/pkg/util/validation/field"
	"sigs.k8s.io/yaml"
)

// Decode parses a YAML or JSON GeneticOptimizerArgs document, applies defaults and
// validates the result. Unknown fields are rejected.
func Decode(data []byte) (*GeneticOptimizerArgs, error) {
	args := &GeneticOptimizerArgs{}
	if err := yaml.UnmarshalStrict(data, args); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", GeneticOptimizerArgsKind, err)
	}
	if args.APIVersion != "" && args.APIVersion != SchemeGroupVersion.String() {
		return nil, fmt.Errorf("unsupported apiVersion %q, want %q", args.APIVersion, SchemeGroupVersion.String())
	}
	if args.Kind != "" && args.Kind != GeneticOptimizerArgsKind {
		return nil, fmt.Errorf("unsupported kind %q, want %q", args.Kind, GeneticOptimizerArgsKind)
	}

	SetDefaults_GeneticOptimizerArgs(args)
	if errs := ValidateGeneticOptimizerArgs(field.NewPath("args"), args); len(errs) > 0 {
		return nil, errs.ToAggregate()
	}
	return args, nil
}

// Load reads and decodes the GeneticOptimizerArgs file at path.
func Load(path string) (*GeneticOptimizerArgs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	args, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return args, nil
}

// Marshal renders a document as YAML.
func Marshal(obj any) ([]byte, error) {
	return yaml.Marshal(obj)
}
