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
	"fmt"
	"slices"
	"sync"

	"github.com/loopy-algebra/loopy/pkg/cache"
	"github.com/loopy-algebra/loopy/pkg/element"
	"github.com/loopy-algebra/loopy/pkg/symbol"
	"github.com/loopy-algebra/loopy/pkg/table"
	"github.com/loopy-algebra/loopy/pkg/term"
	log "github.com/sirupsen/logrus"
)

// ErrNoSolution indicates a division with no solution, meaning the given table
// is not that of a loop.
var ErrNoSolution = errors.New("division has no solution")

// ErrIdentity indicates the first element is not the declared identity.
var ErrIdentity = errors.New("first element is not the identity")

// ErrShape indicates a multiplication table which is not square over the
// given elements.
var ErrShape = errors.New("malformed table shape")

// ErrTotalModel indicates an attempt to store an unknown value in a model
// which does not permit them.
var ErrTotalModel = errors.New("unknown value in total model")

// Config determines how a model is constructed.
type Config struct {
	// Name of the identity element.  When empty, the first element is taken to
	// be the identity.
	Identity string
	// Placeholder for cells which are not yet known.  A non-empty placeholder
	// puts the model into partial mode.
	Unknown string
	// Disables the caching of term tables.
	DisableCache bool
}

// Model is a finite loop given by its multiplication table, along with the
// derived left and right division tables.  Here, ldiv(x,y) is the z with
// y*z = x and rdiv(x,y) is the z with z*y = x.
//
// A model is safe for concurrent use.  Mutation takes an exclusive lock, while
// evaluation of terms through Operations must happen within View.
type Model struct {
	mu       sync.RWMutex
	domain   *element.Domain
	registry *symbol.Registry
	unknown  string
	mul      *table.Table
	ldiv     *table.Table
	rdiv     *table.Table
	ops      term.Operations
	maker    *cache.Maker
	cache    *cache.Manager
}

// New constructs a model from the names of its elements and the rows of its
// multiplication table, given as element names.  The first element must be
// the identity.
func New(elements []string, rows [][]string, cfg Config) (*Model, error) {
	domain, err := element.NewDomain(elements...)
	if err != nil {
		return nil, err
	} else if cfg.Identity != "" && elements[0] != cfg.Identity {
		return nil, fmt.Errorf("%w: expected %q, found %q", ErrIdentity, cfg.Identity, elements[0])
	} else if cfg.Unknown != "" && slices.Contains(elements, cfg.Unknown) {
		return nil, fmt.Errorf("%w: placeholder %q is also an element", element.ErrInvalidDomain, cfg.Unknown)
	} else if err := checkShape(domain.Size(), len(rows), func(i int) int { return len(rows[i]) }); err != nil {
		return nil, err
	}
	//
	mul := table.NewUnknown(domain, 2)
	//
	for i, row := range rows {
		for j, cell := range row {
			val := element.Unknown()
			//
			if cfg.Unknown == "" || cell != cfg.Unknown {
				e, err := domain.IndexOf(cell)
				if err != nil {
					return nil, fmt.Errorf("%w at row %d, column %d", err, i, j)
				}
				//
				val = element.Known(e)
			}
			//
			_ = mul.Update(val, element.Element(i), element.Element(j))
		}
	}
	//
	return newModel(domain, mul, cfg)
}

// FromIndices constructs a model whose elements are named "0" to "n-1" from a
// multiplication table given by element indices, with 0 being the identity.
// In partial mode, a negative index denotes an unknown cell.
func FromIndices(rows [][]int, cfg Config) (*Model, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrShape)
	}
	//
	var (
		k      = uint(len(rows))
		domain = element.NewIndexDomain(k)
		mul    = table.NewUnknown(domain, 2)
	)
	//
	if cfg.Identity != "" && cfg.Identity != domain.Name(element.Identity) {
		return nil, fmt.Errorf("%w: expected %q, found %q", ErrIdentity, cfg.Identity, domain.Name(element.Identity))
	} else if err := checkShape(k, len(rows), func(i int) int { return len(rows[i]) }); err != nil {
		return nil, err
	}
	//
	for i, row := range rows {
		for j, cell := range row {
			val := element.Unknown()
			//
			if cell < 0 && cfg.Unknown == "" {
				return nil, fmt.Errorf("%w at row %d, column %d", ErrTotalModel, i, j)
			} else if cell >= int(k) {
				return nil, fmt.Errorf("%w: %d at row %d, column %d", element.ErrUnknownElement, cell, i, j)
			} else if cell >= 0 {
				val = element.Known(element.Element(cell))
			}
			//
			_ = mul.Update(val, element.Element(i), element.Element(j))
		}
	}
	//
	return newModel(domain, mul, cfg)
}

func newModel(domain *element.Domain, mul *table.Table, cfg Config) (*Model, error) {
	registry, err := newRegistry(domain)
	if err != nil {
		return nil, err
	}
	//
	m := &Model{
		domain:   domain,
		registry: registry,
		unknown:  cfg.Unknown,
		mul:      mul,
		ldiv:     table.NewUnknown(domain, 2),
		rdiv:     table.NewUnknown(domain, 2),
	}
	//
	m.ops = term.Operations{
		symbol.Dot:      m.mulValue,
		symbol.Star:     m.mulValue,
		symbol.LeftDiv:  m.ldivValue,
		symbol.RightDiv: m.rdivValue,
	}
	//
	if err := m.derive(); err != nil {
		return nil, err
	}
	//
	m.maker = cache.NewMaker(m)
	//
	if !cfg.DisableCache {
		m.cache = cache.NewManager()
	}
	//
	log.Debugf("constructed model of order %d (partial=%t, unknown cells=%d)", domain.Size(), m.Partial(),
		mul.Count(element.Value.IsUnknown))
	//
	return m, nil
}

// Every element becomes an operand of the language, with the first being the
// identity.  Names clashing with the base vocabulary are rejected.
func newRegistry(domain *element.Domain) (*symbol.Registry, error) {
	registry := symbol.NewRegistry(domain.Name(element.Identity))
	//
	for _, e := range domain.Elements() {
		name := domain.Name(e)
		//
		if _, ok := registry.Lookup(name); !ok {
			registry.AddConstant(name, e)
		}
		//
		if s, ok := registry.Lookup(name); !ok || s.Kind != symbol.Operand || s.Element != e {
			return nil, fmt.Errorf("%w: element name %q clashes with the language", element.ErrInvalidDomain, name)
		}
	}
	//
	return registry, nil
}

func checkShape(k uint, nrows int, ncols func(int) int) error {
	if uint(nrows) != k {
		return fmt.Errorf("%w: expected %d rows, found %d", ErrShape, k, nrows)
	}
	//
	for i := 0; i < nrows; i++ {
		if uint(ncols(i)) != k {
			return fmt.Errorf("%w: expected %d columns in row %d, found %d", ErrShape, k, i, ncols(i))
		}
	}
	//
	return nil
}

// ============================================================================
// Accessors
// ============================================================================

// Domain returns the elements of this model.
func (m *Model) Domain() *element.Domain {
	return m.domain
}

// Registry returns the language of this model, which includes one operand per
// element.
func (m *Model) Registry() *symbol.Registry {
	return m.registry
}

// Operations returns the semantics of the binary operators of the language.
// These read the model's tables without locking.
func (m *Model) Operations() term.Operations {
	return m.ops
}

// Maker returns the table maker over this model.
func (m *Model) Maker() *cache.Maker {
	return m.maker
}

// Cache returns the cache of term tables for this model, or nil if caching is
// disabled.
func (m *Model) Cache() *cache.Manager {
	return m.cache
}

// Partial determines whether this model permits unknown cells.
func (m *Model) Partial() bool {
	return m.unknown != ""
}

// Order returns the number of elements in this model.
func (m *Model) Order() uint {
	return m.domain.Size()
}

// Elements returns the names of the elements of this model, identity first.
func (m *Model) Elements() []string {
	return m.domain.Names()
}

// Format returns the name of a value, or the unknown placeholder.
func (m *Model) Format(v element.Value) string {
	placeholder := m.unknown
	if placeholder == "" {
		placeholder = "?"
	}
	//
	return m.domain.Format(v, placeholder)
}

// MulTable returns a copy of the multiplication table.
func (m *Model) MulTable() *table.Table {
	m.mu.RLock()
	defer m.mu.RUnlock()
	//
	return m.mul.Clone()
}

// LdivTable returns a copy of the left division table.
func (m *Model) LdivTable() *table.Table {
	m.mu.RLock()
	defer m.mu.RUnlock()
	//
	return m.ldiv.Clone()
}

// RdivTable returns a copy of the right division table.
func (m *Model) RdivTable() *table.Table {
	m.mu.RLock()
	defer m.mu.RUnlock()
	//
	return m.rdiv.Clone()
}

// View runs fn whilst holding this model's read lock, such that the model
// cannot change during fn.
func (m *Model) View(fn func() error) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	//
	return fn()
}

// ============================================================================
// Arithmetic
// ============================================================================

// Mul returns x*y.
func (m *Model) Mul(x, y element.Value) element.Value {
	m.mu.RLock()
	defer m.mu.RUnlock()
	//
	return m.mulValue(x, y)
}

// Ldiv returns the z such that y*z = x.
func (m *Model) Ldiv(x, y element.Value) element.Value {
	m.mu.RLock()
	defer m.mu.RUnlock()
	//
	return m.ldivValue(x, y)
}

// Rdiv returns the z such that z*y = x.
func (m *Model) Rdiv(x, y element.Value) element.Value {
	m.mu.RLock()
	defer m.mu.RUnlock()
	//
	return m.rdivValue(x, y)
}

// Equal is the three-valued equality of the model, where an unknown value
// equals anything.
func (m *Model) Equal(x, y element.Value) bool {
	return element.Equal(x, y)
}

// Compare determines the truth of x == y.
func (m *Model) Compare(x, y element.Value) element.Truth {
	return element.Compare(x, y)
}

func (m *Model) mulValue(x, y element.Value) element.Value {
	return lookup(m.mul, x, y)
}

func (m *Model) ldivValue(x, y element.Value) element.Value {
	return lookup(m.ldiv, x, y)
}

func (m *Model) rdivValue(x, y element.Value) element.Value {
	return lookup(m.rdiv, x, y)
}

func lookup(tab *table.Table, x, y element.Value) element.Value {
	a, ok1 := x.Get()
	b, ok2 := y.Get()
	//
	if !ok1 || !ok2 {
		return element.Unknown()
	}
	//
	return tab.Get(a, b)
}

// ============================================================================
// Mutation
// ============================================================================

// UpdateMul sets x*y = z, along with the implied divisions y = z\x and
// x = z/y.  Division entries for other cells are not rescanned, hence may be
// inconsistent until the remaining cells are committed or Rederive is called.
// Any update invalidates the cache.
func (m *Model) UpdateMul(x, y element.Element, z element.Value) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	//
	if z.IsUnknown() && !m.Partial() {
		return fmt.Errorf("%w: cannot clear cell (%d,%d)", ErrTotalModel, x, y)
	} else if e, ok := z.Get(); ok && !m.domain.Contains(e) {
		return fmt.Errorf("%w: %d", element.ErrUnknownElement, e)
	}
	//
	old, err := m.mul.At(x, y)
	if err != nil {
		return err
	}
	//
	if o, ok := old.Get(); ok && m.Partial() && !(z.IsKnown() && z.Unwrap() == o) {
		// Reset division entries implied by the overwritten product
		if m.ldiv.Get(o, x) == element.Known(y) {
			_ = m.ldiv.Update(element.Unknown(), o, x)
		}
		//
		if m.rdiv.Get(o, y) == element.Known(x) {
			_ = m.rdiv.Update(element.Unknown(), o, y)
		}
	}
	//
	_ = m.mul.Update(z, x, y)
	//
	if e, ok := z.Get(); ok {
		_ = m.ldiv.Update(element.Known(y), e, x)
		_ = m.rdiv.Update(element.Known(x), e, y)
	}
	//
	if m.cache != nil {
		m.cache.Invalidate()
	}
	//
	return nil
}

// Rederive recomputes both division tables from the multiplication table.
func (m *Model) Rederive() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	//
	if m.cache != nil {
		m.cache.Invalidate()
	}
	//
	return m.derive()
}

func (m *Model) derive() error {
	ldiv, err := m.divide(func(y, z element.Element) element.Value { return m.mul.Get(y, z) })
	if err != nil {
		return fmt.Errorf("left division: %w", err)
	}
	//
	rdiv, err := m.divide(func(y, z element.Element) element.Value { return m.mul.Get(z, y) })
	if err != nil {
		return fmt.Errorf("right division: %w", err)
	}
	//
	m.ldiv, m.rdiv = ldiv, rdiv
	//
	return nil
}

// Construct a division table by brute force, where cell (x,y) holds the first z
// such that product(y,z) = x.  When no such z exists but some candidate is not
// yet known, the cell is unknown.
func (m *Model) divide(product func(y, z element.Element) element.Value) (*table.Table, error) {
	var (
		elements = m.domain.Elements()
		div      = table.NewUnknown(m.domain, 2)
	)
	//
	for _, x := range elements {
		for _, y := range elements {
			val, err := m.solve(elements, x, y, product)
			if err != nil {
				return nil, err
			}
			//
			_ = div.Update(val, x, y)
		}
	}
	//
	return div, nil
}

func (m *Model) solve(elements []element.Element, x, y element.Element,
	product func(y, z element.Element) element.Value) (element.Value, error) {
	maybe := false
	//
	for _, z := range elements {
		p := product(y, z)
		//
		if p == element.Known(x) {
			return element.Known(z), nil
		}
		//
		maybe = maybe || p.IsUnknown()
	}
	//
	if maybe && m.Partial() {
		return element.Unknown(), nil
	}
	//
	return element.Unknown(), fmt.Errorf("%w for %s and %s", ErrNoSolution, m.domain.Name(x), m.domain.Name(y))
}
