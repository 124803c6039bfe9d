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
	"fmt"

	"github.com/loopy-algebra/loopy/pkg/element"
)

// Kind identifies the syntactic role of a symbol.
type Kind uint8

const (
	// Operand is a constant denoting a fixed element of the model.
	Operand Kind = iota
	// Variable is an operand bound by a quantifier.  Variables are registered
	// only for the duration of parsing a given term.
	Variable
	// Operator is a binary infix operator.
	Operator
	// LeftDelimiter opens a parenthesised group.
	LeftDelimiter
	// RightDelimiter closes a parenthesised group.
	RightDelimiter
	// UniversalQuantifier marks a universally quantified variable.
	UniversalQuantifier
	// ExistentialQuantifier marks an existentially quantified variable.
	ExistentialQuantifier
	// Relation separates the two sides of an axiom.
	Relation
)

func (k Kind) String() string {
	switch k {
	case Operand:
		return "operand"
	case Variable:
		return "variable"
	case Operator:
		return "operator"
	case LeftDelimiter:
		return "left delimiter"
	case RightDelimiter:
		return "right delimiter"
	case UniversalQuantifier:
		return "universal quantifier"
	case ExistentialQuantifier:
		return "existential quantifier"
	case Relation:
		return "relation"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// IsOperand determines whether symbols of this kind denote values.
func (k Kind) IsOperand() bool {
	return k == Operand || k == Variable
}

// IsQuantifier determines whether symbols of this kind are quantifiers.
func (k Kind) IsQuantifier() bool {
	return k == UniversalQuantifier || k == ExistentialQuantifier
}

// Precedence of a binary operator.  Only two tiers are supported.
type Precedence uint8

const (
	// Low precedence operators are reduced before a higher precedence operator
	// is pushed on top of them.
	Low Precedence = iota
	// High precedence operators bind more tightly than low ones.
	High
)

// Symbol is a single entry in the vocabulary of the term language.
type Symbol struct {
	// Repr is the textual representation, unique within a registry.
	Repr string
	// Kind is the syntactic role.
	Kind Kind
	// Name is a mnemonic, unique within a registry (e.g. "ld" for "\").
	Name string
	// Precedence applies to operators only.
	Precedence Precedence
	// Arity applies to operators only.
	Arity uint
	// Element applies to operands only, and identifies the element denoted.
	Element element.Element
}

func (s Symbol) String() string {
	return s.Repr
}

// IsOperator checks whether this symbol is an operator.
func (s Symbol) IsOperator() bool {
	return s.Kind == Operator
}
