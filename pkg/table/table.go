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
package table

import (
	"errors"
	"fmt"
	"strings"

	"github.com/loopy-algebra/loopy/pkg/element"
)

// ErrArityMismatch is reported when a table is addressed with the wrong number
// of coordinates.
var ErrArityMismatch = errors.New("arity mismatch")

// Table is a dense n-dimensional lookup keyed by tuples of elements drawn from
// a given domain.  A table of arity n over k elements stores exactly k^n
// values, laid out in row-major order.  Tables know nothing about the meaning
// of unknown values; they simply store them.
type Table struct {
	domain *element.Domain
	arity  uint
	data   []element.Value
}

// New allocates a table of a given arity over a domain, with every cell
// initialised to fill.
func New(domain *element.Domain, arity uint, fill element.Value) *Table {
	var (
		k = domain.Size()
		n = uint(1)
	)
	//
	for i := uint(0); i < arity; i++ {
		n *= k
	}
	//
	data := make([]element.Value, n)
	for i := range data {
		data[i] = fill
	}
	//
	return &Table{domain, arity, data}
}

// NewUnknown allocates a table where every cell is unknown.
func NewUnknown(domain *element.Domain, arity uint) *Table {
	return New(domain, arity, element.Unknown())
}

// NewIdentity allocates a table where every cell holds the identity.
func NewIdentity(domain *element.Domain, arity uint) *Table {
	return New(domain, arity, element.Known(element.Identity))
}

// Domain returns the domain of elements this table is indexed by.
func (p *Table) Domain() *element.Domain {
	return p.domain
}

// Arity returns the number of coordinates required to address a cell.
func (p *Table) Arity() uint {
	return p.arity
}

// Size returns the number of elements along each axis.
func (p *Table) Size() uint {
	return p.domain.Size()
}

// Len returns the total number of cells.
func (p *Table) Len() uint {
	return uint(len(p.data))
}

// IndexOf returns the element with a given name.
func (p *Table) IndexOf(name string) (element.Element, error) {
	return p.domain.IndexOf(name)
}

// At reads the cell at the given coordinates.
func (p *Table) At(coords ...element.Element) (element.Value, error) {
	offset, err := p.offset(coords)
	if err != nil {
		return element.Unknown(), err
	}
	//
	return p.data[offset], nil
}

// Get reads the cell at the given coordinates, panicking if they are invalid.
// This is intended for callers which have already established the
// coordinates are well-formed.
func (p *Table) Get(coords ...element.Element) element.Value {
	v, err := p.At(coords...)
	if err != nil {
		panic(err.Error())
	}
	//
	return v
}

// Update writes a given value into the cell at the given coordinates.
func (p *Table) Update(value element.Value, coords ...element.Element) error {
	offset, err := p.offset(coords)
	if err != nil {
		return err
	}
	//
	p.data[offset] = value
	//
	return nil
}

// Fill overwrites every cell with a given value.
func (p *Table) Fill(value element.Value) {
	for i := range p.data {
		p.data[i] = value
	}
}

// Clone returns a deep copy of this table.
func (p *Table) Clone() *Table {
	data := make([]element.Value, len(p.data))
	copy(data, p.data)
	//
	return &Table{p.domain, p.arity, data}
}

// Count returns the number of cells satisfying a given predicate.
func (p *Table) Count(pred func(element.Value) bool) uint {
	n := uint(0)
	//
	for _, v := range p.data {
		if pred(v) {
			n++
		}
	}
	//
	return n
}

// Rows returns the contents of a table of arity two, using element names and a
// placeholder for unknown cells.
func (p *Table) Rows(unknown string) [][]string {
	if p.arity != 2 {
		panic(fmt.Sprintf("table has arity %d, not 2", p.arity))
	}
	//
	var (
		k    = p.Size()
		rows = make([][]string, k)
	)
	//
	for i := uint(0); i < k; i++ {
		rows[i] = make([]string, k)
		for j := uint(0); j < k; j++ {
			rows[i][j] = p.domain.Format(p.data[i*k+j], unknown)
		}
	}
	//
	return rows
}

func (p *Table) String() string {
	var builder strings.Builder
	//
	builder.WriteString("[")
	//
	for i, v := range p.data {
		if i != 0 {
			builder.WriteString(" ")
		}
		//
		builder.WriteString(p.domain.Format(v, "?"))
	}
	//
	builder.WriteString("]")
	//
	return builder.String()
}

// Determine the row-major offset of the given coordinates.
func (p *Table) offset(coords []element.Element) (uint, error) {
	if uint(len(coords)) != p.arity {
		return 0, fmt.Errorf("%w: expected %d coordinates, got %d", ErrArityMismatch, p.arity, len(coords))
	}
	//
	var (
		k      = p.Size()
		offset = uint(0)
	)
	//
	for _, c := range coords {
		if uint(c) >= k {
			return 0, fmt.Errorf("%w: coordinate %d out of %d", element.ErrUnknownElement, c, k)
		}
		//
		offset = offset*k + uint(c)
	}
	//
	return offset, nil
}
