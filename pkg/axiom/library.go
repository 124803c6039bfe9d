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
package axiom

import "fmt"

// Within terms, a\b denotes the z with b*z = a and a/b the z with z*b = a.

// Associativity is the axiom (x*y)*z = x*(y*z).
func Associativity() *Axiom {
	return must("(x*y)*z", "x*(y*z)", ForAll("x", "y", "z"), "associativity")
}

// Commutativity is the axiom x*y = y*x.
func Commutativity() *Axiom {
	return must("x*y", "y*x", ForAll("x", "y"), "commutativity")
}

// Flexibility is the axiom (x*y)*x = x*(y*x).
func Flexibility() *Axiom {
	return must("(x*y)*x", "x*(y*x)", ForAll("x", "y"), "flexibility")
}

// LeftAlternative is the axiom (x*x)*y = x*(x*y).
func LeftAlternative() *Axiom {
	return must("(x*x)*y", "x*(x*y)", ForAll("x", "y"), "left-alternative")
}

// RightAlternative is the axiom (y*x)*x = y*(x*x).
func RightAlternative() *Axiom {
	return must("(y*x)*x", "y*(x*x)", ForAll("x", "y"), "right-alternative")
}

// LeftBol is the axiom x*(y*(x*z)) = (x*(y*x))*z.
func LeftBol() *Axiom {
	return must("x*(y*(x*z))", "(x*(y*x))*z", ForAll("x", "y", "z"), "left-bol")
}

// RightBol is the axiom ((z*x)*y)*x = z*((x*y)*x).
func RightBol() *Axiom {
	return must("((z*x)*y)*x", "z*((x*y)*x)", ForAll("x", "y", "z"), "right-bol")
}

// Moufang returns the four equivalent Moufang identities.
func Moufang() []*Axiom {
	vars := ForAll("x", "y", "z")
	//
	return []*Axiom{
		must("z*(x*(z*y))", "((z*x)*z)*y", vars, "moufang-1"),
		must("x*(z*(y*z))", "((x*z)*y)*z", vars, "moufang-2"),
		must("(z*x)*(y*z)", "(z*(x*y))*z", vars, "moufang-3"),
		must("(z*x)*(y*z)", "z*((x*y)*z)", vars, "moufang-4"),
	}
}

// LeftInverse is the left inverse property, where 0/x is the left inverse of x.
func LeftInverse() *Axiom {
	return must("(0/x)*(x*y)", "y", ForAll("x", "y"), "left-inverse")
}

// RightInverse is the right inverse property, where 0\x is the right inverse of
// x.
func RightInverse() *Axiom {
	return must("(y*x)*(0\\x)", "y", ForAll("x", "y"), "right-inverse")
}

// InnerMappings returns the six axioms stating that the inner mapping group is
// abelian, using the middle map T(u,x) = x⁻¹(ux) and the left and right maps
// L(u,x,y) = (yx)⁻¹(y(xu)) and R(u,x,y) = ((ux)y)(xy)⁻¹ with division on
// the appropriate side.
func InnerMappings() []*Axiom {
	vars := ForAll("x", "y", "z", "u", "w")
	//
	return []*Axiom{
		must(innerT(innerT("u", "x"), "y"), innerT(innerT("u", "y"), "x"), vars, "TT"),
		must(innerT(innerL("u", "x", "y"), "z"), innerL(innerT("u", "z"), "x", "y"), vars, "TL"),
		must(innerT(innerR("u", "x", "y"), "z"), innerR(innerT("u", "z"), "x", "y"), vars, "TR"),
		must(innerL(innerR("u", "x", "y"), "z", "w"), innerR(innerL("u", "z", "w"), "x", "y"), vars, "LR"),
		must(innerL(innerL("u", "x", "y"), "z", "w"), innerL(innerL("u", "z", "w"), "x", "y"), vars, "LL"),
		must(innerR(innerR("u", "x", "y"), "z", "w"), innerR(innerR("u", "z", "w"), "x", "y"), vars, "RR"),
	}
}

// Standard returns every axiom of the standard library.
func Standard() []*Axiom {
	axioms := []*Axiom{
		Associativity(), Commutativity(), Flexibility(), LeftAlternative(), RightAlternative(),
		LeftBol(), RightBol(), LeftInverse(), RightInverse(),
	}
	//
	axioms = append(axioms, Moufang()...)
	//
	return append(axioms, InnerMappings()...)
}

// Lookup returns the standard axiom with a given name.
func Lookup(name string) (*Axiom, bool) {
	for _, a := range Standard() {
		if a.Name() == name {
			return a, true
		}
	}
	//
	return nil, false
}

func innerT(u, x string) string {
	return fmt.Sprintf("((%s*%s)\\%s)", u, x, x)
}

func innerL(u, x, y string) string {
	return fmt.Sprintf("((%s*(%s*%s))\\(%s*%s))", y, x, u, y, x)
}

func innerR(u, x, y string) string {
	return fmt.Sprintf("(((%s*%s)*%s)/(%s*%s))", u, x, y, x, y)
}

func must(left, right string, variables []Variable, name string) *Axiom {
	a, err := New(left, right, variables, name)
	if err != nil {
		panic(err)
	}
	//
	return a
}
