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
package element

import "fmt"

// Element identifies a single member of a finite loop.  Elements are interned
// as small integers whose order fixes both display and enumeration order.  The
// identity of a loop is always element 0.
type Element uint

// Identity is the element which acts as the identity of every loop.
const Identity Element = 0

// Value is a tri-state cell value: either a known element, or unknown.  Unknown
// values arise only in partial models, where some cells of the multiplication
// table have not been filled yet.  The zero value is unknown.
type Value struct {
	element Element
	known   bool
}

// Known constructs a value holding a given element.
func Known(e Element) Value {
	return Value{e, true}
}

// Unknown constructs the unknown value.
func Unknown() Value {
	return Value{}
}

// IsKnown indicates whether or not this value holds an element.
func (v Value) IsKnown() bool {
	return v.known
}

// IsUnknown indicates whether or not this value is unknown.
func (v Value) IsUnknown() bool {
	return !v.known
}

// Get returns the element held by this value, along with a flag indicating
// whether it is known.
func (v Value) Get() (Element, bool) {
	return v.element, v.known
}

// Unwrap returns the element held by this value, or panics if it is unknown.
func (v Value) Unwrap() Element {
	if v.known {
		return v.element
	}
	//
	panic("cannot unwrap an unknown value")
}

func (v Value) String() string {
	if v.known {
		return fmt.Sprintf("%d", v.element)
	}
	//
	return "?"
}

// Equal is the three-valued aware equality used throughout verification.  An
// unknown value compares equal to anything (including another unknown value),
// since the missing cell may still be filled so as to make both sides agree.
func Equal(a, b Value) bool {
	if !a.known || !b.known {
		return true
	}
	//
	return a.element == b.element
}

// Compare determines the Kleene truth of a == b.  This is Maybe whenever
// either side is unknown.
func Compare(a, b Value) Truth {
	switch {
	case !a.known || !b.known:
		return Maybe
	case a.element == b.element:
		return True
	default:
		return False
	}
}
