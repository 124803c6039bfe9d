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
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/loopy-algebra/loopy/pkg/model"
	"github.com/loopy-algebra/loopy/pkg/symbol"
	"github.com/loopy-algebra/loopy/pkg/term"
)

// ErrSyntax indicates a malformed axiom.
var ErrSyntax = errors.New("malformed axiom")

// Variable is a quantified variable of an axiom.
type Variable struct {
	Name string
	// Either symbol.UniversalQuantifier or symbol.ExistentialQuantifier.
	Quantifier symbol.Kind
}

// IsUniversal determines whether this variable is universally quantified.
func (v Variable) IsUniversal() bool {
	return v.Quantifier == symbol.UniversalQuantifier
}

func (v Variable) String() string {
	if v.IsUniversal() {
		return symbol.ForAll + v.Name
	}
	//
	return symbol.Exists + v.Name
}

// ForAll constructs universally quantified variables.
func ForAll(names ...string) []Variable {
	return variablesOf(symbol.UniversalQuantifier, names)
}

// Exists constructs existentially quantified variables.
func Exists(names ...string) []Variable {
	return variablesOf(symbol.ExistentialQuantifier, names)
}

func variablesOf(kind symbol.Kind, names []string) []Variable {
	vars := make([]Variable, len(names))
	for i, n := range names {
		vars[i] = Variable{n, kind}
	}
	//
	return vars
}

// Axiom is a quantified equality between two terms, where the quantifiers are
// read left to right.  An axiom can be attached to a model by Preparse, in
// which case both sides are parsed and compiled once and reused whenever the
// axiom is verified against that model.
type Axiom struct {
	name      string
	left      string
	right     string
	variables []Variable
	// Model this axiom is currently attached to (if any)
	attached *model.Model
	prepared *prepared
}

// Both sides of an axiom, parsed and compiled for some model.
type prepared struct {
	left, right        *term.Term
	lprogram, rprogram *term.Program
}

// New constructs an axiom stating left = right under the given variables.  A
// variable may be quantified more than once, in which case occurrences in
// either side refer to its innermost (i.e. last) quantifier.
func New(left, right string, variables []Variable, name string) (*Axiom, error) {
	for _, v := range variables {
		if v.Name == "" {
			return nil, fmt.Errorf("%w: empty variable name", ErrSyntax)
		} else if !v.Quantifier.IsQuantifier() {
			return nil, fmt.Errorf("%w: variable %q has no quantifier", ErrSyntax, v.Name)
		}
	}
	//
	if strings.TrimSpace(left) == "" || strings.TrimSpace(right) == "" {
		return nil, fmt.Errorf("%w: empty side in %q = %q", ErrSyntax, left, right)
	}
	//
	return &Axiom{name, left, right, variables, nil, nil}, nil
}

// Parse an axiom of the form "Qx1 ... Qxn left = right", where each Q is a
// quantifier of the given registry.  Quantified variables are separated by
// whitespace, and the remaining text must contain exactly one relation symbol.
func Parse(text string, registry *symbol.Registry, name string) (*Axiom, error) {
	var (
		fields    = strings.Fields(text)
		variables []Variable
		i         int
	)
	//
	for ; i < len(fields) && isQuantified(fields[i], registry); i++ {
		v, err := ParseVariable(fields[i], registry)
		if err != nil {
			return nil, err
		}
		//
		variables = append(variables, v)
	}
	//
	body := strings.Join(fields[i:], " ")
	//
	sides := strings.Split(body, symbol.Equals)
	if len(sides) != 2 {
		return nil, fmt.Errorf("%w: expected exactly one %q in %q", ErrSyntax, symbol.Equals, text)
	}
	//
	return New(strings.TrimSpace(sides[0]), strings.TrimSpace(sides[1]), variables, name)
}

// ParseVariable parses a quantified variable, such as "Ax".
func ParseVariable(text string, registry *symbol.Registry) (Variable, error) {
	_, width := utf8.DecodeRuneInString(text)
	//
	if !isQuantified(text, registry) {
		return Variable{}, fmt.Errorf("%w: %q is not a quantified variable", ErrSyntax, text)
	} else if len(text) == width {
		return Variable{}, fmt.Errorf("%w: quantifier without variable in %q", ErrSyntax, text)
	}
	//
	kind, _ := registry.KindOf(text[:width])
	//
	return Variable{text[width:], kind}, nil
}

// Check whether some text starts with a quantifier.
func isQuantified(text string, registry *symbol.Registry) bool {
	_, width := utf8.DecodeRuneInString(text)
	//
	return width > 0 && registry.IsQuantifier(text[:width])
}

// Name returns the name of this axiom.
func (a *Axiom) Name() string {
	return a.name
}

// Left returns the text of the left-hand side.
func (a *Axiom) Left() string {
	return a.left
}

// Right returns the text of the right-hand side.
func (a *Axiom) Right() string {
	return a.right
}

// Variables returns the quantified variables of this axiom, outermost first.
func (a *Axiom) Variables() []Variable {
	return a.variables
}

// Names returns the names of the quantified variables, outermost first.
func (a *Axiom) Names() []string {
	names := make([]string, len(a.variables))
	for i, v := range a.variables {
		names[i] = v.Name
	}
	//
	return names
}

func (a *Axiom) String() string {
	var builder strings.Builder
	//
	for _, v := range a.variables {
		builder.WriteString(v.String())
		builder.WriteString(" ")
	}
	//
	builder.WriteString(a.left)
	builder.WriteString(" " + symbol.Equals + " ")
	builder.WriteString(a.right)
	//
	return builder.String()
}

// Preparse attaches this axiom to a given model, parsing and compiling both
// sides once.  Verifying the axiom against any other model still works, but
// parses and compiles afresh each time.  Preparse must not be called whilst
// the axiom is being verified.
func (a *Axiom) Preparse(m *model.Model) error {
	p, err := a.prepare(m)
	if err != nil {
		return err
	}
	//
	a.attached, a.prepared = m, p
	//
	return nil
}

// Attached determines whether this axiom is attached to a given model.
func (a *Axiom) Attached(m *model.Model) bool {
	return a.attached == m
}

// Obtain both sides of this axiom for a given model, reusing the attachment
// when possible.
func (a *Axiom) sides(m *model.Model) (*prepared, error) {
	if a.attached == m && a.prepared != nil {
		return a.prepared, nil
	}
	//
	return a.prepare(m)
}

func (a *Axiom) prepare(m *model.Model) (*prepared, error) {
	var (
		registry = m.Registry()
		names    = a.Names()
	)
	//
	for _, n := range names {
		if _, ok := registry.Lookup(n); ok {
			return nil, fmt.Errorf("%w: variable %q clashes with the language", ErrSyntax, n)
		}
	}
	//
	left, err := term.ParseTerm(registry, a.left, names)
	if err != nil {
		return nil, err
	}
	//
	right, err := term.ParseTerm(registry, a.right, names)
	if err != nil {
		return nil, err
	}
	//
	lprogram, err := left.Compile(m.Operations())
	if err != nil {
		return nil, err
	}
	//
	rprogram, err := right.Compile(m.Operations())
	if err != nil {
		return nil, err
	}
	//
	return &prepared{left, right, lprogram, rprogram}, nil
}
