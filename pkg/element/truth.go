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

// Truth is a value of Kleene's strong three-valued logic.  The constants are
// ordered False < Maybe < True, such that conjunction is the minimum and
// disjunction the maximum.
type Truth uint8

const (
	// False means the statement fails regardless of how unknown cells are filled.
	False Truth = iota
	// Maybe means the outcome depends on cells which are still unknown.
	Maybe
	// True means the statement holds regardless of how unknown cells are filled.
	True
)

// TruthOf converts a boolean into a truth value.
func TruthOf(b bool) Truth {
	if b {
		return True
	}
	//
	return False
}

// And returns the conjunction of two truth values.
func (t Truth) And(o Truth) Truth {
	return min(t, o)
}

// Or returns the disjunction of two truth values.
func (t Truth) Or(o Truth) Truth {
	return max(t, o)
}

// Not returns the negation of this truth value.
func (t Truth) Not() Truth {
	return True - t
}

// Possible reports whether this truth value is not definitely false.  This is
// the optimistic reading used when unknown cells compare equal to anything.
func (t Truth) Possible() bool {
	return t != False
}

func (t Truth) String() string {
	switch t {
	case False:
		return "false"
	case Maybe:
		return "unknown"
	default:
		return "true"
	}
}
