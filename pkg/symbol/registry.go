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
package symbol

import (
	"maps"
	"slices"

	"github.com/loopy-algebra/loopy/pkg/element"
	log "github.com/sirupsen/logrus"
)

// Representations of the built-in symbols.
const (
	LeftParen  = "("
	RightParen = ")"
	Dot        = "."
	Star       = "*"
	LeftDiv    = "\\"
	RightDiv   = "/"
	Equals     = "="
	ForAll     = "A"
	Exists     = "E"
)

// DefaultIdentity is the representation of the identity when none is given.
const DefaultIdentity = "0"

// Registry holds the vocabulary of the term language for a single model:
// delimiters, operators, quantifiers, the relation symbol and one operand per
// element.  Registries never overwrite an existing symbol.
type Registry struct {
	symbols []Symbol
	byRepr  map[string]int
	byName  map[string]int
}

// NewRegistry constructs a registry holding the base vocabulary, with the
// identity element represented by the given text.
func NewRegistry(identity string) *Registry {
	r := &Registry{nil, make(map[string]int), make(map[string]int)}
	//
	r.Add(Symbol{Repr: LeftParen, Kind: LeftDelimiter, Name: "lp"})
	r.Add(Symbol{Repr: RightParen, Kind: RightDelimiter, Name: "rp"})
	r.AddOperator(Dot, "dot", High)
	r.AddOperator(Star, "star", Low)
	r.AddOperator(RightDiv, "rd", Low)
	r.AddOperator(LeftDiv, "ld", Low)
	r.Add(Symbol{Repr: identity, Kind: Operand, Name: "id", Element: element.Identity})
	r.Add(Symbol{Repr: Equals, Kind: Relation, Name: "eq"})
	r.Add(Symbol{Repr: ForAll, Kind: UniversalQuantifier, Name: "forall"})
	r.Add(Symbol{Repr: Exists, Kind: ExistentialQuantifier, Name: "exists"})
	//
	return r
}

// Add registers a new symbol.  If its representation or name is already
// registered, a warning is logged and the registry is left unchanged.
func (r *Registry) Add(s Symbol) bool {
	if s.Repr == "" {
		log.Warnf("symbol %q has an empty representation", s.Name)
		return false
	} else if _, ok := r.byRepr[s.Repr]; ok {
		log.Warnf("symbol representation %q already exists in the language", s.Repr)
		return false
	} else if _, ok := r.byName[s.Name]; ok {
		log.Warnf("symbol name %q already exists in the language", s.Name)
		return false
	}
	//
	r.byRepr[s.Repr] = len(r.symbols)
	r.byName[s.Name] = len(r.symbols)
	r.symbols = append(r.symbols, s)
	//
	return true
}

// AddOperator registers a binary operator with a given precedence.
func (r *Registry) AddOperator(repr string, name string, prec Precedence) bool {
	return r.Add(Symbol{Repr: repr, Kind: Operator, Name: name, Precedence: prec, Arity: 2})
}

// AddConstant registers an operand denoting a given element.  The symbol's
// name is its representation.
func (r *Registry) AddConstant(repr string, e element.Element) bool {
	return r.Add(Symbol{Repr: repr, Kind: Operand, Name: repr, Element: e})
}

// AddVariable registers a transient variable symbol.  Variable names are
// prefixed so they never collide with the names of constants.
func (r *Registry) AddVariable(repr string) bool {
	return r.Add(Symbol{Repr: repr, Kind: Variable, Name: "var:" + repr})
}

// Lookup returns the symbol with a given representation, if one exists.
func (r *Registry) Lookup(repr string) (Symbol, bool) {
	if i, ok := r.byRepr[repr]; ok {
		return r.symbols[i], true
	}
	//
	return Symbol{}, false
}

// LookupName returns the symbol with a given name, if one exists.
func (r *Registry) LookupName(name string) (Symbol, bool) {
	if i, ok := r.byName[name]; ok {
		return r.symbols[i], true
	}
	//
	return Symbol{}, false
}

// KindOf returns the kind of the symbol with a given representation.
func (r *Registry) KindOf(repr string) (Kind, bool) {
	s, ok := r.Lookup(repr)
	return s.Kind, ok
}

// IsQuantifier checks whether a given representation denotes a quantifier.
func (r *Registry) IsQuantifier(repr string) bool {
	s, ok := r.Lookup(repr)
	return ok && s.Kind.IsQuantifier()
}

// Quantifiers returns all quantifier symbols, in registration order.
func (r *Registry) Quantifiers() []Symbol {
	var quantifiers []Symbol
	//
	for _, s := range r.symbols {
		if s.Kind.IsQuantifier() {
			quantifiers = append(quantifiers, s)
		}
	}
	//
	return quantifiers
}

// LongestRepresentation returns the length (in runes) of the longest
// representation in this registry.
func (r *Registry) LongestRepresentation() uint {
	m := 0
	for _, s := range r.symbols {
		m = max(m, len([]rune(s.Repr)))
	}
	//
	return uint(m)
}

// Symbols returns every symbol in registration order.
func (r *Registry) Symbols() []Symbol {
	return r.symbols
}

// Len returns the number of registered symbols.
func (r *Registry) Len() uint {
	return uint(len(r.symbols))
}

// Clone returns an independent copy of this registry, such that symbols can be
// added to the copy without affecting the original.
func (r *Registry) Clone() *Registry {
	return &Registry{slices.Clone(r.symbols), maps.Clone(r.byRepr), maps.Clone(r.byName)}
}
