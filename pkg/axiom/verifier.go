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
package axiom

import (
	"github.com/loopy-algebra/loopy/pkg/cache"
	"github.com/loopy-algebra/loopy/pkg/element"
	"github.com/loopy-algebra/loopy/pkg/model"
	"github.com/loopy-algebra/loopy/pkg/term"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Mode determines how a verifier evaluates the two sides of an axiom.
type Mode uint8

const (
	// Tables materialises (and caches) the table of each side up front, such
	// that each instance costs two lookups.
	Tables Mode = iota
	// Direct runs the compiled program of each side on every instance, without
	// caching anything.
	Direct
)

func (m Mode) String() string {
	if m == Direct {
		return "direct"
	}
	//
	return "tables"
}

// Leaf determines the truth of an axiom's equality for a given instance of its
// variables.
type Leaf func(instance []element.Element) element.Truth

// Quantify evaluates a sequence of quantified variables over a domain of size
// k.  Instances are enumerated lexicographically, with the outermost variable
// varying slowest.  A universal quantifier stops at the first false instance,
// and an existential quantifier at the first true instance.  Otherwise,
// results are combined according to Kleene's logic.
func Quantify(variables []Variable, k uint, leaf Leaf) element.Truth {
	instance := make([]element.Element, len(variables))
	//
	return quantify(variables, instance, 0, k, leaf)
}

func quantify(variables []Variable, instance []element.Element, depth int, k uint, leaf Leaf) element.Truth {
	if depth == len(variables) {
		return leaf(instance)
	}
	//
	var (
		universal = variables[depth].IsUniversal()
		result    = element.TruthOf(universal)
	)
	//
	for e := uint(0); e < k; e++ {
		instance[depth] = element.Element(e)
		//
		t := quantify(variables, instance, depth+1, k, leaf)
		//
		if universal {
			result = result.And(t)
			if result == element.False {
				break
			}
		} else {
			result = result.Or(t)
			if result == element.True {
				break
			}
		}
	}
	//
	return result
}

// Verifier determines the truth of axioms in models.  Both modes always agree.
type Verifier struct {
	Mode Mode
}

// IsTrue determines whether an axiom holds in a model, where unknown cells are
// assumed to be filled favourably.  Thus, an axiom is true unless it fails
// regardless of how any unknown cells are filled.
func (v Verifier) IsTrue(m *model.Model, a *Axiom) (bool, error) {
	var result element.Truth
	//
	err := m.View(func() error {
		leaf, err := v.leaf(m, a, func(l, r element.Value) element.Truth {
			return element.TruthOf(element.Equal(l, r))
		})
		//
		if err == nil {
			result = Quantify(a.variables, m.Order(), leaf)
		}
		//
		return err
	})
	//
	return result == element.True, err
}

// IsPartiallyTrue determines the truth of an axiom in a model under Kleene's
// logic.  The result is Maybe when the outcome depends on cells which are not
// yet known.
func (v Verifier) IsPartiallyTrue(m *model.Model, a *Axiom) (element.Truth, error) {
	var result element.Truth
	//
	err := m.View(func() error {
		leaf, err := v.leaf(m, a, element.Compare)
		//
		if err == nil {
			result = Quantify(a.variables, m.Order(), leaf)
		}
		//
		return err
	})
	//
	return result, err
}

// Warm materialises the tables for both sides of the given axioms in parallel,
// so that subsequent verification in Tables mode is served from the model's
// cache.  This has no effect when the model's cache is disabled.
func (v Verifier) Warm(m *model.Model, axioms ...*Axiom) error {
	if m.Cache() == nil {
		return nil
	}
	//
	return m.View(func() error {
		var (
			g     errgroup.Group
			terms = make(map[string]*term.Term)
		)
		// Parse up front, collapsing sides which share a table.
		for _, a := range axioms {
			p, err := a.sides(m)
			if err != nil {
				return err
			}
			//
			terms[cache.Key(p.left)] = p.left
			terms[cache.Key(p.right)] = p.right
		}
		//
		for _, t := range terms {
			t := t
			g.Go(func() error {
				_, err := m.Cache().GetOrMake(t, m.Maker())
				return err
			})
		}
		//
		log.Debugf("warming %d term tables for %d axioms", len(terms), len(axioms))
		//
		return g.Wait()
	})
}

// Construct the leaf function for a given axiom, which compares the values of
// both sides for each instance.  This must be called with the model locked.
func (v Verifier) leaf(m *model.Model, a *Axiom, cmp func(l, r element.Value) element.Truth) (Leaf, error) {
	p, err := a.sides(m)
	if err != nil {
		return nil, err
	}
	//
	if v.Mode == Direct {
		left := newDirect(p.left, p.lprogram)
		right := newDirect(p.right, p.rprogram)
		//
		return func(instance []element.Element) element.Truth {
			return cmp(left.eval(instance), right.eval(instance))
		}, nil
	}
	//
	left, err := v.table(m, p.left)
	if err != nil {
		return nil, err
	}
	//
	right, err := v.table(m, p.right)
	if err != nil {
		return nil, err
	}
	//
	var (
		lused = p.left.Used()
		rused = p.right.Used()
	)
	//
	return func(instance []element.Element) element.Truth {
		return cmp(left.Lookup(lused, instance), right.Lookup(rused, instance))
	}, nil
}

func (v Verifier) table(m *model.Model, t *term.Term) (*cache.Entry, error) {
	if m.Cache() == nil {
		return m.Maker().MakeTerm(t)
	}
	//
	return m.Cache().GetOrMake(t, m.Maker())
}

// Evaluates one side of an axiom directly, reusing its stack and arguments
// between instances.
type direct struct {
	used    []uint
	args    []element.Value
	machine *term.Machine
}

func newDirect(t *term.Term, program *term.Program) *direct {
	return &direct{t.Used(), make([]element.Value, len(t.Used())), program.NewMachine()}
}

func (d *direct) eval(instance []element.Element) element.Value {
	for i, u := range d.used {
		d.args[i] = element.Known(instance[u])
	}
	//
	return d.machine.Eval(d.args)
}
