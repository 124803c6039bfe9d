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
	"errors"

	"github.com/loopy-algebra/loopy/pkg/element"
)

// IsLoopTable determines whether a multiplication table, given by element
// names with the identity first, is that of a loop.  Tables which are well
// formed but admit no division are reported as not being loops, rather than as
// errors.
func IsLoopTable(elements []string, rows [][]string) (bool, error) {
	m, err := New(elements, rows, Config{DisableCache: true})
	//
	if errors.Is(err, ErrNoSolution) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	//
	return m.IsLoop(), nil
}

// IsLoop determines whether this model is a loop.  That is, its first element
// is a two-sided identity and every row and column is a permutation of the
// elements.  A model with unknown cells is not (yet) a loop.
func (m *Model) IsLoop() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	//
	var (
		elements = m.domain.Elements()
		k        = m.domain.Size()
	)
	//
	for _, x := range elements {
		if m.mul.Get(element.Identity, x) != element.Known(x) || m.mul.Get(x, element.Identity) != element.Known(x) {
			return false
		}
		//
		var (
			row = make([]bool, k)
			col = make([]bool, k)
		)
		//
		for _, y := range elements {
			r, ok1 := m.mul.Get(x, y).Get()
			c, ok2 := m.mul.Get(y, x).Get()
			//
			if !ok1 || !ok2 || row[r] || col[c] {
				return false
			}
			//
			row[r], col[c] = true, true
		}
	}
	//
	return true
}

// IsAssociative determines whether (x*y)*z = x*(y*z) for all x, y and z.
func (m *Model) IsAssociative() bool {
	return len(m.LeftNucleus()) == int(m.Order())
}

// IsCommutative determines whether x*y = y*x for all x and y.
func (m *Model) IsCommutative() bool {
	return len(m.Commutant()) == int(m.Order())
}

// Commutant returns the elements which commute with every element.
func (m *Model) Commutant() []element.Element {
	return m.filter(func(x element.Element) bool {
		for _, y := range m.domain.Elements() {
			if !element.Equal(m.mulValue(kn(x), kn(y)), m.mulValue(kn(y), kn(x))) {
				return false
			}
		}
		//
		return true
	})
}

// LeftNucleus returns the elements x such that x(yz) = (xy)z for all y, z.
func (m *Model) LeftNucleus() []element.Element {
	return m.filter(func(x element.Element) bool {
		return m.associatesFor(func(a, b element.Element) bool { return m.associates(x, a, b) })
	})
}

// MiddleNucleus returns the elements y such that x(yz) = (xy)z for all x, z.
func (m *Model) MiddleNucleus() []element.Element {
	return m.filter(func(y element.Element) bool {
		return m.associatesFor(func(a, b element.Element) bool { return m.associates(a, y, b) })
	})
}

// RightNucleus returns the elements z such that x(yz) = (xy)z for all x, y.
func (m *Model) RightNucleus() []element.Element {
	return m.filter(func(z element.Element) bool {
		return m.associatesFor(func(a, b element.Element) bool { return m.associates(a, b, z) })
	})
}

// Nucleus returns the intersection of the left, middle and right nuclei.
func (m *Model) Nucleus() []element.Element {
	return intersect(intersect(m.LeftNucleus(), m.MiddleNucleus()), m.RightNucleus())
}

// Center returns the elements of the nucleus which commute with every element.
func (m *Model) Center() []element.Element {
	return intersect(m.Commutant(), m.Nucleus())
}

// Select the elements satisfying a predicate, in element order.  Unknown
// products are given the benefit of the doubt.
func (m *Model) filter(pred func(element.Element) bool) []element.Element {
	m.mu.RLock()
	defer m.mu.RUnlock()
	//
	var elements []element.Element
	//
	for _, x := range m.domain.Elements() {
		if pred(x) {
			elements = append(elements, x)
		}
	}
	//
	return elements
}

func (m *Model) associatesFor(fn func(a, b element.Element) bool) bool {
	for _, a := range m.domain.Elements() {
		for _, b := range m.domain.Elements() {
			if !fn(a, b) {
				return false
			}
		}
	}
	//
	return true
}

func (m *Model) associates(x, y, z element.Element) bool {
	left := m.mulValue(kn(x), m.mulValue(kn(y), kn(z)))
	right := m.mulValue(m.mulValue(kn(x), kn(y)), kn(z))
	//
	return element.Equal(left, right)
}

func kn(e element.Element) element.Value {
	return element.Known(e)
}

// Both inputs are in ascending element order.
func intersect(a, b []element.Element) []element.Element {
	var (
		res  []element.Element
		i, j int
	)
	//
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			res = append(res, a[i])
			i, j = i+1, j+1
		}
	}
	//
	return res
}
