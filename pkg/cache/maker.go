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
	"strings"

	"github.com/loopy-algebra/loopy/pkg/element"
	"github.com/loopy-algebra/loopy/pkg/symbol"
	"github.com/loopy-algebra/loopy/pkg/table"
	"github.com/loopy-algebra/loopy/pkg/term"
	"github.com/loopy-algebra/loopy/pkg/util"
	log "github.com/sirupsen/logrus"
)

// Algebra provides everything needed to parse and materialise terms: the
// vocabulary, the semantics of each operator and the domain of elements.
type Algebra interface {
	Registry() *symbol.Registry
	Operations() term.Operations
	Domain() *element.Domain
}

// Entry is a term whose value has been materialised for every instantiation
// of its used variables.
type Entry struct {
	term    *term.Term
	program *term.Program
	table   *table.Table
}

// Term returns the parsed term of this entry.
func (e *Entry) Term() *term.Term {
	return e.term
}

// Program returns the compiled program of this entry.
func (e *Entry) Program() *term.Program {
	return e.program
}

// Table returns the materialised table of this entry.  Its arity is the number
// of used variables, and its axes follow their declaration order.
func (e *Entry) Table() *table.Table {
	return e.table
}

// Key returns the cache key of this entry.
func (e *Entry) Key() string {
	return Key(e.term)
}

// At reads the value of this term under a full instance of its declared
// variables, ignoring those which are not used.
func (e *Entry) At(instance []element.Element) element.Value {
	return e.Lookup(e.term.Used(), instance)
}

// Lookup reads the value of this term under an instance of some other
// declaration of the same variables, where used gives the position within
// that declaration of each used variable.  Entries are shared between terms
// with the same text and used variables, though these may be declared at
// different positions.
func (e *Entry) Lookup(used []uint, instance []element.Element) element.Value {
	var (
		buf    [8]element.Element
		coords = buf[:0]
	)
	//
	for _, u := range used {
		coords = append(coords, instance[u])
	}
	//
	return e.table.Get(coords...)
}

// Key identifies a materialised term.  The text alone is not enough, since the
// same text declared over its variables in a different order yields a
// transposed table.
func Key(t *term.Term) string {
	return t.Text() + "|" + strings.Join(t.UsedVariables(), ",")
}

// Maker materialises the tables of terms over a given algebra.
type Maker struct {
	algebra Algebra
}

// NewMaker constructs a table maker over a given algebra.
func NewMaker(algebra Algebra) *Maker {
	return &Maker{algebra}
}

// Parse a term over a given set of declared variables.
func (m *Maker) Parse(text string, variables []string) (*term.Term, error) {
	return term.ParseTerm(m.algebra.Registry(), text, variables)
}

// Make parses, compiles and materialises a term.
func (m *Maker) Make(text string, variables []string) (*Entry, error) {
	t, err := m.Parse(text, variables)
	if err != nil {
		return nil, err
	}
	//
	return m.MakeTerm(t)
}

// MakeTerm compiles and materialises an already parsed term.  Only the used
// variables of the term contribute dimensions to its table.  Cells are filled
// by enumerating instances lexicographically in element order.
func (m *Maker) MakeTerm(t *term.Term) (*Entry, error) {
	program, err := t.Compile(m.algebra.Operations())
	if err != nil {
		return nil, err
	}
	//
	var (
		stats   = util.NewPerfStats()
		domain  = m.algebra.Domain()
		arity   = uint(len(t.Used()))
		tab     = table.NewUnknown(domain, arity)
		machine = program.NewMachine()
		coords  = make([]element.Element, arity)
		args    = make([]element.Value, arity)
	)
	//
	for i := range args {
		args[i] = element.Known(0)
	}
	//
	for {
		if err := tab.Update(machine.Eval(args), coords...); err != nil {
			return nil, err
		}
		//
		if !next(coords, args, domain.Size()) {
			break
		}
	}
	//
	stats.Log("materialising term", log.Fields{"term": t.Text(), "arity": arity, "cells": tab.Len()})
	//
	return &Entry{t, program, tab}, nil
}

// Advance an instance to its lexicographic successor, returning false once
// every instance has been visited.
func next(coords []element.Element, args []element.Value, k uint) bool {
	for i := len(coords) - 1; i >= 0; i-- {
		if uint(coords[i])+1 < k {
			coords[i]++
			args[i] = element.Known(coords[i])
			//
			return true
		}
		//
		coords[i] = 0
		args[i] = element.Known(0)
	}
	//
	return false
}
