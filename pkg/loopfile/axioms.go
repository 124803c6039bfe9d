// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package loopfile

import (
	"fmt"
	"io"

	"github.com/loopy-algebra/loopy/pkg/axiom"
	"github.com/loopy-algebra/loopy/pkg/symbol"
	"gopkg.in/yaml.v3"
)

// AxiomSet is the document structure of an axiom file.
type AxiomSet struct {
	Axioms []AxiomEntry `yaml:"axioms"`
}

// AxiomEntry describes a single axiom.  An entry is given either as complete
// text (e.g. "Ax Ay x*y = y*x"), as separate sides with quantified variables
// (e.g. "Ax"), or by the name of a standard axiom alone.
type AxiomEntry struct {
	Name      string   `yaml:"name"`
	Text      string   `yaml:"text,omitempty"`
	Left      string   `yaml:"left,omitempty"`
	Right     string   `yaml:"right,omitempty"`
	Variables []string `yaml:"variables,omitempty"`
}

// ReadAxioms reads a set of axioms from YAML, where quantifiers are recognised
// using the given registry.
func ReadAxioms(r io.Reader, registry *symbol.Registry) ([]*axiom.Axiom, error) {
	var (
		set     AxiomSet
		decoder = yaml.NewDecoder(r)
	)
	//
	decoder.KnownFields(true)
	//
	if err := decoder.Decode(&set); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	//
	axioms := make([]*axiom.Axiom, 0, len(set.Axioms))
	//
	for i, entry := range set.Axioms {
		a, err := entry.toAxiom(registry)
		if err != nil {
			return nil, fmt.Errorf("axiom %d (%s): %w", i, entry.Name, err)
		}
		//
		axioms = append(axioms, a)
	}
	//
	return axioms, nil
}

func (e AxiomEntry) toAxiom(registry *symbol.Registry) (*axiom.Axiom, error) {
	var (
		hasText  = e.Text != ""
		hasSides = e.Left != "" || e.Right != "" || len(e.Variables) > 0
	)
	//
	switch {
	case hasText && hasSides:
		return nil, fmt.Errorf("%w: both text and sides given", ErrFormat)
	case hasText:
		return axiom.Parse(e.Text, registry, e.Name)
	case hasSides:
		variables := make([]axiom.Variable, len(e.Variables))
		//
		for i, v := range e.Variables {
			variable, err := axiom.ParseVariable(v, registry)
			if err != nil {
				return nil, err
			}
			//
			variables[i] = variable
		}
		//
		return axiom.New(e.Left, e.Right, variables, e.Name)
	}
	//
	if a, ok := axiom.Lookup(e.Name); ok {
		return a, nil
	}
	//
	return nil, fmt.Errorf("%w: no standard axiom named %q", ErrFormat, e.Name)
}
