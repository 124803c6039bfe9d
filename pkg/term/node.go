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
	"fmt"

	"github.com/loopy-algebra/loopy/pkg/element"
	"github.com/loopy-algebra/loopy/pkg/symbol"
	"github.com/loopy-algebra/loopy/pkg/util/source"
)

// Node is a node in the binary tree of a parsed term.  Leaves hold operands,
// internal nodes hold binary operators.
type Node struct {
	Token Token
	Left  *Node
	Right *Node
}

// IsLeaf checks whether this node is an operand.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Span returns the span of source text covered by this node.
func (n *Node) Span() source.Span {
	if n.IsLeaf() {
		return n.Token.Span
	}
	//
	left, right := n.Left.Span(), n.Right.Span()
	//
	return left.Join(right)
}

// Postorder returns the tokens of this tree in reverse polish notation.
func (n *Node) Postorder() []Token {
	return n.postorder(nil)
}

func (n *Node) postorder(tokens []Token) []Token {
	if !n.IsLeaf() {
		tokens = n.Left.postorder(tokens)
		tokens = n.Right.postorder(tokens)
	}
	//
	return append(tokens, n.Token)
}

// Eval evaluates this tree directly by recursion, against an explicit binding
// of variable names to values.
func (n *Node) Eval(ops Operations, binding map[string]element.Value) (element.Value, error) {
	sym := n.Token.Symbol
	//
	switch {
	case sym.Kind == symbol.Operand:
		return element.Known(sym.Element), nil
	case sym.Kind == symbol.Variable:
		if v, ok := binding[sym.Repr]; ok {
			return v, nil
		}
		//
		return element.Unknown(), fmt.Errorf("%w: %q", ErrUnboundOperand, sym.Repr)
	case n.IsLeaf():
		return element.Unknown(), fmt.Errorf("%w: %q is not an operand", ErrMalformedExpression, sym.Repr)
	}
	//
	fn, ok := ops[sym.Repr]
	if !ok {
		return element.Unknown(), fmt.Errorf("%w: %q", ErrUnboundOperator, sym.Repr)
	}
	//
	lhs, err := n.Left.Eval(ops, binding)
	if err != nil {
		return lhs, err
	}
	//
	rhs, err := n.Right.Eval(ops, binding)
	if err != nil {
		return rhs, err
	}
	//
	return fn(lhs, rhs), nil
}

// String renders this tree with every operator application parenthesised.
func (n *Node) String() string {
	if n.IsLeaf() {
		return n.Token.Symbol.Repr
	}
	//
	return fmt.Sprintf("(%s%s%s)", n.Left.String(), n.Token.Symbol.Repr, n.Right.String())
}
