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
	"testing"

	"github.com/loopy-algebra/loopy/pkg/element"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Base(t *testing.T) {
	r := NewRegistry(DefaultIdentity)
	//
	checkKind(t, r, "(", LeftDelimiter)
	checkKind(t, r, ")", RightDelimiter)
	checkKind(t, r, "*", Operator)
	checkKind(t, r, "\\", Operator)
	checkKind(t, r, "/", Operator)
	checkKind(t, r, "0", Operand)
	checkKind(t, r, "=", Relation)
	checkKind(t, r, "A", UniversalQuantifier)
	checkKind(t, r, "E", ExistentialQuantifier)
	//
	assert.True(t, r.IsQuantifier("A"))
	assert.True(t, r.IsQuantifier("E"))
	assert.False(t, r.IsQuantifier("*"))
	assert.False(t, r.IsQuantifier("x"))
	assert.Len(t, r.Quantifiers(), 2)
	assert.Equal(t, uint(1), r.LongestRepresentation())
}

func TestRegistry_Precedence(t *testing.T) {
	r := NewRegistry(DefaultIdentity)
	dot, _ := r.Lookup(".")
	star, _ := r.Lookup("*")
	ld, _ := r.LookupName("ld")
	//
	assert.Equal(t, High, dot.Precedence)
	assert.Equal(t, Low, star.Precedence)
	assert.Equal(t, "\\", ld.Repr)
	assert.Equal(t, uint(2), ld.Arity)
}

func TestRegistry_Duplicate(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()
	//
	r := NewRegistry("e")
	n := r.Len()
	// Representation clash with an operator
	assert.False(t, r.AddConstant("*", 1))
	// Name clash with the identity
	assert.False(t, r.Add(Symbol{Repr: "id2", Kind: Operand, Name: "id"}))
	// Nothing was overwritten
	assert.Equal(t, n, r.Len())
	s, _ := r.Lookup("*")
	assert.Equal(t, Operator, s.Kind)
	// Both attempts were reported
	require.Len(t, hook.AllEntries(), 2)
}

func TestRegistry_Clone(t *testing.T) {
	r := NewRegistry(DefaultIdentity)
	require.True(t, r.AddConstant("10", element.Element(10)))
	//
	c := r.Clone()
	require.True(t, c.AddVariable("xyz"))
	//
	_, ok := r.Lookup("xyz")
	assert.False(t, ok)
	//
	s, ok := c.Lookup("xyz")
	require.True(t, ok)
	assert.Equal(t, Variable, s.Kind)
	assert.True(t, s.Kind.IsOperand())
	assert.Equal(t, uint(3), c.LongestRepresentation())
	assert.Equal(t, uint(2), r.LongestRepresentation())
}

// ==================================================================
// Framework
// ==================================================================

func checkKind(t *testing.T, r *Registry, repr string, expected Kind) {
	kind, ok := r.KindOf(repr)
	require.True(t, ok, "symbol %q not registered", repr)
	assert.Equal(t, expected, kind, "symbol %q", repr)
}
