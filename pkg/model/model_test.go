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
package model

import (
	"testing"

	"github.com/loopy-algebra/loopy/pkg/element"
	"github.com/loopy-algebra/loopy/pkg/symbol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A non-associative, non-commutative loop of order 5.
var loop5 = [][]int{
	{0, 1, 2, 3, 4},
	{1, 0, 3, 4, 2},
	{2, 4, 0, 1, 3},
	{3, 2, 4, 0, 1},
	{4, 3, 1, 2, 0},
}

func TestModel_01(t *testing.T) {
	m := fromIndices(t, [][]int{{0, 1}, {1, 0}}, Config{})
	assert.Equal(t, element.Known(0), m.Ldiv(kn(1), kn(1)))
	assert.Equal(t, element.Known(0), m.Rdiv(kn(1), kn(1)))
	assert.Equal(t, element.Known(1), m.Ldiv(kn(1), kn(0)))
	assert.False(t, m.Partial())
}

func TestModel_02(t *testing.T) {
	m := fromIndices(t, [][]int{{0, 1}, {-1, 0}}, Config{Unknown: "?"})
	// 1*0 is unknown, so 1\1 cannot be determined
	assert.Equal(t, element.Unknown(), m.Ldiv(kn(1), kn(1)))
	assert.True(t, m.Equal(m.Ldiv(kn(1), kn(1)), kn(0)))
	assert.Equal(t, element.Maybe, m.Compare(m.Ldiv(kn(1), kn(1)), kn(0)))
	assert.True(t, m.Partial())
	assert.Equal(t, "?", m.Format(m.Mul(kn(1), kn(0))))
}

func TestModel_Names(t *testing.T) {
	rows := [][]string{{"e", "a", "b"}, {"a", "b", "e"}, {"b", "e", "a"}}
	m, err := New([]string{"e", "a", "b"}, rows, Config{Identity: "e"})
	require.NoError(t, err)
	//
	assert.Equal(t, []string{"e", "a", "b"}, m.Elements())
	assert.Equal(t, uint(3), m.Order())
	assert.Equal(t, "b", m.Format(m.Mul(kn(1), kn(1))))
	assert.Equal(t, "b", m.Format(m.Ldiv(kn(0), kn(1))))
	// Every element is an operand of the language
	for i, name := range m.Elements() {
		s, ok := m.Registry().Lookup(name)
		require.True(t, ok)
		assert.Equal(t, symbol.Operand, s.Kind)
		assert.Equal(t, element.Element(i), s.Element)
	}
}

func TestModel_Partial(t *testing.T) {
	rows := [][]string{{"0", "1", "2"}, {"1", "-", "-"}, {"2", "-", "-"}}
	m, err := New([]string{"0", "1", "2"}, rows, Config{Unknown: "-"})
	require.NoError(t, err)
	assert.Equal(t, uint(4), m.MulTable().Count(element.Value.IsUnknown))
	assert.Equal(t, element.Known(1), m.Ldiv(kn(1), kn(0)))
	assert.Equal(t, element.Unknown(), m.Ldiv(kn(0), kn(1)))
	assert.Equal(t, element.Unknown(), m.Mul(element.Unknown(), kn(0)))
}

func TestModel_Errors(t *testing.T) {
	_, err := New([]string{"0", "1"}, [][]string{{"0", "1"}, {"1", "0"}}, Config{Identity: "1"})
	assert.ErrorIs(t, err, ErrIdentity)
	_, err = New([]string{"0", "1"}, [][]string{{"0", "1"}}, Config{})
	assert.ErrorIs(t, err, ErrShape)
	_, err = New([]string{"0", "1"}, [][]string{{"0", "1"}, {"1"}}, Config{})
	assert.ErrorIs(t, err, ErrShape)
	_, err = New([]string{"0", "1"}, [][]string{{"0", "1"}, {"1", "x"}}, Config{})
	assert.ErrorIs(t, err, element.ErrUnknownElement)
	_, err = New([]string{"0", "*"}, [][]string{{"0", "*"}, {"*", "0"}}, Config{})
	assert.ErrorIs(t, err, element.ErrInvalidDomain)
	_, err = New([]string{"0", "1"}, [][]string{{"0", "1"}, {"1", "0"}}, Config{Unknown: "1"})
	assert.ErrorIs(t, err, element.ErrInvalidDomain)
	_, err = FromIndices([][]int{{0, 1}, {1, 2}}, Config{})
	assert.ErrorIs(t, err, element.ErrUnknownElement)
	_, err = FromIndices([][]int{{0, 1}, {1, -1}}, Config{})
	assert.ErrorIs(t, err, ErrTotalModel)
	_, err = FromIndices(nil, Config{})
	assert.ErrorIs(t, err, ErrShape)
}

func TestModel_NoSolution(t *testing.T) {
	_, err := FromIndices([][]int{{0, 1}, {1, 1}}, Config{})
	assert.ErrorIs(t, err, ErrNoSolution)
	// The same table with an unknown cell is fine
	_, err = FromIndices([][]int{{0, 1}, {1, -1}}, Config{Unknown: "?"})
	assert.NoError(t, err)
	// But not if the unknown cell cannot help
	_, err = FromIndices([][]int{{0, 0}, {1, -1}}, Config{Unknown: "?"})
	assert.ErrorIs(t, err, ErrNoSolution)
	//
	ok, err := IsLoopTable([]string{"0", "1"}, [][]string{{"0", "1"}, {"1", "1"}})
	assert.NoError(t, err)
	assert.False(t, ok)
	ok, err = IsLoopTable([]string{"0", "1"}, [][]string{{"0", "1"}, {"1", "0"}})
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestModel_DivisionConsistency(t *testing.T) {
	for _, rows := range [][][]int{cyclic(1), cyclic(4), cyclic(7), klein(), loop5} {
		m := fromIndices(t, rows, Config{})
		checkDivision(t, m)
	}
}

func TestModel_TotalNeverUnknown(t *testing.T) {
	m := fromIndices(t, loop5, Config{})
	//
	for _, tab := range []interface{ Count(func(element.Value) bool) uint }{
		m.MulTable(), m.LdivTable(), m.RdivTable(),
	} {
		assert.Equal(t, uint(0), tab.Count(element.Value.IsUnknown))
	}
}

func TestModel_UpdateMul(t *testing.T) {
	m := fromIndices(t, [][]int{{0, 1}, {1, -1}}, Config{Unknown: "?"})
	assert.Equal(t, element.Unknown(), m.Ldiv(kn(0), kn(1)))
	//
	require.NoError(t, m.UpdateMul(1, 1, kn(0)))
	assert.Equal(t, element.Known(0), m.Mul(kn(1), kn(1)))
	assert.Equal(t, element.Known(1), m.Ldiv(kn(0), kn(1)))
	assert.Equal(t, element.Known(1), m.Rdiv(kn(0), kn(1)))
	checkDivision(t, m)
	// Overwriting resets the stale divisions
	require.NoError(t, m.UpdateMul(1, 1, kn(1)))
	assert.Equal(t, element.Unknown(), m.Ldiv(kn(0), kn(1)))
	assert.Equal(t, element.Unknown(), m.Rdiv(kn(0), kn(1)))
	assert.Equal(t, element.Known(1), m.Ldiv(kn(1), kn(1)))
	// Clearing a cell
	require.NoError(t, m.UpdateMul(1, 1, element.Unknown()))
	assert.Equal(t, element.Unknown(), m.Mul(kn(1), kn(1)))
}

func TestModel_UpdateMulErrors(t *testing.T) {
	m := fromIndices(t, cyclic(3), Config{})
	assert.ErrorIs(t, m.UpdateMul(1, 1, element.Unknown()), ErrTotalModel)
	assert.ErrorIs(t, m.UpdateMul(1, 3, kn(0)), element.ErrUnknownElement)
	assert.ErrorIs(t, m.UpdateMul(1, 1, kn(3)), element.ErrUnknownElement)
	// Failed updates leave the model unchanged
	assert.Equal(t, element.Known(2), m.Mul(kn(1), kn(1)))
}

func TestModel_Rederive(t *testing.T) {
	m := fromIndices(t, [][]int{{0, 1, -1}, {-1, -1, -1}, {-1, -1, -1}}, Config{Unknown: "?"})
	// Fill in Z3 one cell at a time
	for x, row := range cyclic(3) {
		for y, z := range row {
			require.NoError(t, m.UpdateMul(element.Element(x), element.Element(y), kn(element.Element(z))))
		}
	}
	//
	require.NoError(t, m.Rederive())
	assert.True(t, m.IsLoop())
	checkDivision(t, m)
}

func TestModel_Cache(t *testing.T) {
	m := fromIndices(t, cyclic(3), Config{})
	require.NotNil(t, m.Cache())
	//
	tm, err := m.Maker().Parse("x*y", []string{"x", "y"})
	require.NoError(t, err)
	e, err := m.Cache().GetOrMake(tm, m.Maker())
	require.NoError(t, err)
	assert.Equal(t, element.Known(0), e.At([]element.Element{1, 2}))
	assert.Equal(t, uint(1), m.Cache().Len())
	// Updates invalidate the cache
	require.NoError(t, m.UpdateMul(1, 2, kn(0)))
	assert.Equal(t, uint(0), m.Cache().Len())
	//
	m = fromIndices(t, cyclic(3), Config{DisableCache: true})
	assert.Nil(t, m.Cache())
}

func TestModel_View(t *testing.T) {
	m := fromIndices(t, cyclic(3), Config{})
	star := m.Operations()[symbol.Star]
	//
	err := m.View(func() error {
		assert.Equal(t, element.Known(1), star(kn(2), kn(2)))
		return nil
	})
	assert.NoError(t, err)
}

func TestModel_Properties(t *testing.T) {
	k := fromIndices(t, klein(), Config{})
	assert.True(t, k.IsLoop())
	assert.True(t, k.IsAssociative())
	assert.True(t, k.IsCommutative())
	assert.Equal(t, []element.Element{0, 1, 2, 3}, k.Center())
	//
	l := fromIndices(t, loop5, Config{})
	assert.True(t, l.IsLoop())
	assert.False(t, l.IsAssociative())
	assert.False(t, l.IsCommutative())
	assert.Contains(t, l.Commutant(), element.Identity)
	assert.Contains(t, l.Nucleus(), element.Identity)
	assert.Contains(t, l.Center(), element.Identity)
	assert.Subset(t, l.LeftNucleus(), l.Nucleus())
	//
	p := fromIndices(t, [][]int{{0, 1}, {1, -1}}, Config{Unknown: "?"})
	assert.False(t, p.IsLoop())
}

func TestModel_NotLoop(t *testing.T) {
	// Latin square whose first row is not the identity
	m := fromIndices(t, [][]int{{1, 0}, {0, 1}}, Config{})
	assert.False(t, m.IsLoop())
}

// ==================================================================
// Framework
// ==================================================================

func fromIndices(t *testing.T, rows [][]int, cfg Config) *Model {
	m, err := FromIndices(rows, cfg)
	require.NoError(t, err)
	//
	return m
}

// Check every known product agrees with the known divisions.
func checkDivision(t *testing.T, m *Model) {
	for _, y := range m.Domain().Elements() {
		for _, z := range m.Domain().Elements() {
			x := m.Mul(kn(y), kn(z))
			if x.IsUnknown() {
				continue
			}
			//
			assert.True(t, m.Equal(kn(z), m.Ldiv(x, kn(y))), "%d\\%s", y, x)
			assert.True(t, m.Equal(kn(z), m.Rdiv(m.Mul(kn(z), kn(y)), kn(y))))
		}
	}
}

func cyclic(n int) [][]int {
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
		for j := range rows[i] {
			rows[i][j] = (i + j) % n
		}
	}
	//
	return rows
}

func klein() [][]int {
	rows := make([][]int, 4)
	for i := range rows {
		rows[i] = make([]int, 4)
		for j := range rows[i] {
			rows[i][j] = i ^ j
		}
	}
	//
	return rows
}
