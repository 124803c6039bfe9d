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

	"github.com/loopy-algebra/loopy/pkg/symbol"
	"github.com/loopy-algebra/loopy/pkg/util/collection/stack"
	"github.com/loopy-algebra/loopy/pkg/util/source"
)

// Parse turns a token sequence into a binary tree using a shunting-yard
// reduction with two precedence tiers.  Operands are pushed as leaves.  A low
// precedence operator arriving while a high precedence operator sits on top of
// the operator stack first reduces that operator.  A right delimiter reduces
// until the matching left delimiter.  Everything remaining is reduced at the
// end, hence operators of the same tier group to the right: "x*y\x" parses as
// "x*(y\x)".
func Parse(file *source.File, tokens []Token) (*Node, error) {
	p := parser{file, stack.NewStack[*Node](), stack.NewStack[Token]()}
	//
	for _, tok := range tokens {
		if err := p.shift(tok); err != nil {
			return nil, err
		}
	}
	//
	for !p.operators.IsEmpty() {
		if top := p.operators.Peek(0); top.Symbol.Kind == symbol.LeftDelimiter {
			return nil, p.error(top.Span, "unclosed %q", top.Symbol.Repr)
		} else if err := p.reduce(); err != nil {
			return nil, err
		}
	}
	//
	root, ok := p.operands.TryPop()
	if !ok {
		return nil, p.error(source.NewSpan(0, len(file.Contents())), "empty expression")
	} else if !p.operands.IsEmpty() {
		// The operand beneath the root was never joined to it
		extra := p.operands.Peek(0)
		return nil, p.error(extra.Span(), "missing operator after %q", extra.String())
	}
	//
	return root, nil
}

// RPN parses a token sequence and returns it in reverse polish notation.
func RPN(file *source.File, tokens []Token) ([]Token, error) {
	root, err := Parse(file, tokens)
	if err != nil {
		return nil, err
	}
	//
	return root.Postorder(), nil
}

type parser struct {
	file      *source.File
	operands  *stack.Stack[*Node]
	operators *stack.Stack[Token]
}

func (p *parser) shift(tok Token) error {
	switch tok.Symbol.Kind {
	case symbol.Operand, symbol.Variable:
		p.operands.Push(&Node{Token: tok})
	case symbol.Operator:
		top, ok := p.operators.TryPeek(0)
		//
		if ok && tok.Symbol.Precedence == symbol.Low && top.Symbol.IsOperator() &&
			top.Symbol.Precedence == symbol.High {
			if err := p.reduce(); err != nil {
				return err
			}
		}
		//
		p.operators.Push(tok)
	case symbol.LeftDelimiter:
		p.operators.Push(tok)
	case symbol.RightDelimiter:
		for {
			top, ok := p.operators.TryPeek(0)
			if !ok {
				return p.error(tok.Span, "unbalanced %q", tok.Symbol.Repr)
			} else if top.Symbol.Kind == symbol.LeftDelimiter {
				p.operators.Pop()
				return nil
			} else if err := p.reduce(); err != nil {
				return err
			}
		}
	default:
		return p.error(tok.Span, "unexpected %s %q", tok.Symbol.Kind, tok.Symbol.Repr)
	}
	//
	return nil
}

// Pop one operator and two operands, and push the combined node.
func (p *parser) reduce() error {
	op := p.operators.Pop()
	right, ok1 := p.operands.TryPop()
	left, ok2 := p.operands.TryPop()
	//
	if !ok1 || !ok2 {
		return p.error(op.Span, "operator %q is missing an operand", op.Symbol.Repr)
	}
	//
	p.operands.Push(&Node{op, left, right})
	//
	return nil
}

func (p *parser) error(span source.Span, format string, args ...any) error {
	return p.file.SyntaxError(span, ErrMalformedExpression, fmt.Sprintf(format, args...))
}
