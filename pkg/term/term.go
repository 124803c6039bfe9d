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
package term

import (
	"github.com/loopy-algebra/loopy/pkg/symbol"
	"github.com/loopy-algebra/loopy/pkg/util/source"
)

// Term is a parsed term, along with the variables it was declared over.
type Term struct {
	text      string
	variables []string
	tree      *Node
	rpn       []Token
	used      []uint
}

// ParseTerm tokenizes and parses a term over a given set of declared
// variables.
func ParseTerm(reg *symbol.Registry, text string, variables []string) (*Term, error) {
	return ParseTermFile(reg, source.NewSourceFile("term", text), variables)
}

// ParseTermFile tokenizes and parses the contents of a given source file as a
// term over a given set of declared variables.
func ParseTermFile(reg *symbol.Registry, file *source.File, variables []string) (*Term, error) {
	tokens, err := TokenizeFile(reg, file, variables)
	if err != nil {
		return nil, err
	}
	//
	tree, err := Parse(file, tokens)
	if err != nil {
		return nil, err
	}
	//
	rpn := tree.Postorder()
	//
	return &Term{string(file.Contents()), variables, tree, rpn, usedVariables(rpn, variables)}, nil
}

// Text returns the original text of this term.
func (t *Term) Text() string {
	return t.text
}

// Tree returns the parse tree of this term.
func (t *Term) Tree() *Node {
	return t.tree
}

// RPN returns this term in reverse polish notation.
func (t *Term) RPN() []Token {
	return t.rpn
}

// Variables returns the declared variables of this term.
func (t *Term) Variables() []string {
	return t.variables
}

// Used returns the positions (within the declared variables) of those
// variables which actually occur in this term, in declaration order.
func (t *Term) Used() []uint {
	return t.used
}

// UsedVariables returns the names of those declared variables which actually
// occur in this term, in declaration order.
func (t *Term) UsedVariables() []string {
	names := make([]string, len(t.used))
	for i, u := range t.used {
		names[i] = t.variables[u]
	}
	//
	return names
}

// Compile this term into a program whose slots are its used variables.
func (t *Term) Compile(ops Operations) (*Program, error) {
	return Compile(t.rpn, ops, t.UsedVariables())
}

// Determine which declared variables occur in a given token sequence,
// preserving their declared order.  A variable declared more than once is
// bound by its last declaration.
func usedVariables(rpn []Token, variables []string) []uint {
	var (
		occurs = make(map[string]bool)
		last   = make(map[string]int, len(variables))
		used   []uint
	)
	//
	for _, tok := range rpn {
		if tok.Symbol.Kind == symbol.Variable {
			occurs[tok.Symbol.Repr] = true
		}
	}
	//
	for i, v := range variables {
		last[v] = i
	}
	//
	for i, v := range variables {
		if occurs[v] && last[v] == i {
			used = append(used, uint(i))
		}
	}
	//
	return used
}
