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
package cache

import (
	"fmt"
	"testing"

	"github.com/loopy-algebra/loopy/pkg/element"
	"github.com/loopy-algebra/loopy/pkg/symbol"
	"github.com/loopy-algebra/loopy/pkg/term"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaker_01(t *testing.T) {
	maker := NewMaker(newCyclic(3))
	e, err := maker.Make("x*y", []string{"x", "y"})
	require.NoError(t, err)
	//
	tab := e.Table()
	require.Equal(t, uint(2), tab.Arity())
	assert.Equal(t, [][]string{{"0", "1", "2"}, {"1", "2", "0"}, {"2", "0", "1"}}, tab.Rows("?"))
}

func TestMaker_UnusedVariables(t *testing.T) {
	maker := NewMaker(newCyclic(4))
	// z is declared but never used, so contributes no dimension
	e, err := maker.Make("y\\x", []string{"x", "y", "z"})
	require.NoError(t, err)
	require.Equal(t, uint(2), e.Table().Arity())
	assert.Equal(t, []string{"x", "y"}, e.Term().UsedVariables())
	// y\x = y - x mod 4, looked up via the full instance (x,y,z)
	assert.Equal(t, element.Known(1), e.At([]element.Element{1, 2, 3}))
	assert.Equal(t, element.Known(3), e.At([]element.Element{3, 2, 0}))
}

func TestMaker_DeclarationOrder(t *testing.T) {
	maker := NewMaker(newCyclic(3))
	xy, err := maker.Make("x\\y", []string{"x", "y"})
	require.NoError(t, err)
	yx, err := maker.Make("x\\y", []string{"y", "x"})
	require.NoError(t, err)
	// Different declaration orders yield different keys and transposed tables.
	assert.NotEqual(t, xy.Key(), yx.Key())
	//
	for _, a := range []element.Element{0, 1, 2} {
		for _, b := range []element.Element{0, 1, 2} {
			assert.Equal(t, xy.Table().Get(a, b), yx.Table().Get(b, a))
		}
	}
}

func TestMaker_Shadowing(t *testing.T) {
	maker := NewMaker(newCyclic(4))
	// The second x shadows the first
	e, err := maker.Make("y\\x", []string{"x", "y", "x"})
	require.NoError(t, err)
	require.Equal(t, uint(2), e.Table().Arity())
	assert.Equal(t, []uint{1, 2}, e.Term().Used())
	// y\x = y - x mod 4, under the instance (_, y, x)
	assert.Equal(t, element.Known(1), e.At([]element.Element{0, 3, 2}))
	assert.Equal(t, element.Known(2), e.At([]element.Element{3, 3, 1}))
}

func TestMaker_Lookup(t *testing.T) {
	var (
		maker   = NewMaker(newCyclic(4))
		manager = NewManager()
	)
	//
	xy, err := maker.Parse("y\\x", []string{"x", "y"})
	require.NoError(t, err)
	zxy, err := maker.Parse("y\\x", []string{"z", "x", "y"})
	require.NoError(t, err)
	// Same text and used variables, hence a shared entry
	require.Equal(t, Key(xy), Key(zxy))
	//
	e, err := manager.GetOrMake(xy, maker)
	require.NoError(t, err)
	shared, err := manager.GetOrMake(zxy, maker)
	require.NoError(t, err)
	require.Same(t, e, shared)
	// Each caller reads at the positions of its own declaration
	instance := []element.Element{3, 1, 2}
	assert.Equal(t, element.Known(1), shared.Lookup(zxy.Used(), instance))
	assert.Equal(t, element.Known(2), shared.Lookup(xy.Used(), instance))
}

func TestMaker_Constant(t *testing.T) {
	maker := NewMaker(newCyclic(5))
	e, err := maker.Make("3*4", []string{"x"})
	require.NoError(t, err)
	require.Equal(t, uint(0), e.Table().Arity())
	assert.Equal(t, element.Known(2), e.At([]element.Element{4}))
}

func TestMaker_Errors(t *testing.T) {
	maker := NewMaker(newCyclic(3))
	_, err := maker.Make("x*#", []string{"x"})
	assert.ErrorIs(t, err, term.ErrUnknownToken)
	_, err = maker.Make("x*(y", []string{"x", "y"})
	assert.ErrorIs(t, err, term.ErrMalformedExpression)
}

func TestManager_01(t *testing.T) {
	var (
		maker   = NewMaker(newCyclic(3))
		manager = NewManager()
	)
	//
	tm, err := maker.Parse("x*y", []string{"x", "y"})
	require.NoError(t, err)
	e1, err := manager.GetOrMake(tm, maker)
	require.NoError(t, err)
	e2, err := manager.GetOrMake(tm, maker)
	require.NoError(t, err)
	// Second lookup is served from the cache
	assert.Same(t, e1, e2)
	assert.Equal(t, uint(1), manager.Len())
	assert.Equal(t, 1.0, testutil.ToFloat64(manager.hits))
	assert.Equal(t, 1.0, testutil.ToFloat64(manager.misses))
	//
	_, ok := manager.Get(e1.Key())
	assert.True(t, ok)
}

func TestManager_Invalidate(t *testing.T) {
	var (
		algebra = newCyclic(3)
		maker   = NewMaker(algebra)
		manager = NewManager()
	)
	//
	tm, err := maker.Parse("x*1", []string{"x"})
	require.NoError(t, err)
	before, err := manager.GetOrMake(tm, maker)
	require.NoError(t, err)
	// Change the semantics, then invalidate
	algebra.ops["*"] = func(a, b element.Value) element.Value { return a }
	manager.Invalidate()
	assert.Equal(t, uint(0), manager.Len())
	//
	after, err := manager.GetOrMake(tm, maker)
	require.NoError(t, err)
	assert.NotSame(t, before, after)
	assert.Equal(t, element.Known(2), before.At([]element.Element{1}))
	assert.Equal(t, element.Known(1), after.At([]element.Element{1}))
	assert.Equal(t, 1.0, testutil.ToFloat64(manager.invalidations))
	assert.Len(t, manager.Collectors(), 3)
}

// ==================================================================
// Framework
// ==================================================================

type cyclic struct {
	domain *element.Domain
	reg    *symbol.Registry
	ops    term.Operations
}

// The cyclic group of order n, where a\b is the z with b*z = a.
func newCyclic(n uint) *cyclic {
	domain := element.NewIndexDomain(n)
	reg := symbol.NewRegistry(symbol.DefaultIdentity)
	//
	for i := uint(1); i < n; i++ {
		reg.AddConstant(fmt.Sprintf("%d", i), element.Element(i))
	}
	//
	add := func(a, b element.Value) element.Value {
		return element.Known((a.Unwrap() + b.Unwrap()) % element.Element(n))
	}
	sub := func(a, b element.Value) element.Value {
		return element.Known((a.Unwrap() + element.Element(n) - b.Unwrap()) % element.Element(n))
	}
	//
	return &cyclic{domain, reg, term.Operations{"*": add, ".": add, "\\": sub, "/": sub}}
}

func (p *cyclic) Registry() *symbol.Registry   { return p.reg }
func (p *cyclic) Operations() term.Operations { return p.ops }
func (p *cyclic) Domain() *element.Domain     { return p.domain }
