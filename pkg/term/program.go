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
	"slices"
	"strings"

	"github.com/loopy-algebra/loopy/pkg/element"
	"github.com/loopy-algebra/loopy/pkg/symbol"
)

// BinaryFunc gives the semantics of a binary operator.
type BinaryFunc func(a, b element.Value) element.Value

// Operations maps operator representations to their semantics.
type Operations map[string]BinaryFunc

// Opcode identifies the kind of a postfix instruction.
type Opcode uint8

const (
	// PushConst pushes a constant value.
	PushConst Opcode = iota
	// PushVar pushes the value bound to a variable slot.
	PushVar
	// Apply pops two values, applies a binary operator and pushes the result.
	Apply
)

// Instruction is a single step of a compiled program.
type Instruction struct {
	Opcode Opcode
	// Constant pushed by PushConst
	Value element.Value
	// Variable slot read by PushVar
	Slot uint
	// Operator representation applied by Apply
	Operator string
	fn       BinaryFunc
}

func (i Instruction) String() string {
	switch i.Opcode {
	case PushConst:
		return fmt.Sprintf("const %s", i.Value)
	case PushVar:
		return fmt.Sprintf("var #%d", i.Slot)
	default:
		return fmt.Sprintf("apply %s", i.Operator)
	}
}

// Program is a term compiled into a sequence of postfix instructions, ready to
// be interpreted by a stack machine against a binding of its variables.  The
// variables of a program are numbered by slot, in the order given to Compile.
type Program struct {
	instructions []Instruction
	variables    []string
	depth        uint
}

// Compile turns a term in reverse polish notation into a program, resolving
// every operator against the given semantics and every variable against its
// position in variables.
func Compile(rpn []Token, ops Operations, variables []string) (*Program, error) {
	var (
		instructions = make([]Instruction, 0, len(rpn))
		depth        = uint(0)
		height       = uint(0)
	)
	//
	for _, tok := range rpn {
		sym := tok.Symbol
		//
		switch sym.Kind {
		case symbol.Operand:
			instructions = append(instructions, Instruction{Opcode: PushConst, Value: element.Known(sym.Element)})
			height++
		case symbol.Variable:
			slot := slices.Index(variables, sym.Repr)
			if slot < 0 {
				return nil, fmt.Errorf("%w: variable %q at %s", ErrUnboundOperand, sym.Repr, tok.Span)
			}
			//
			instructions = append(instructions, Instruction{Opcode: PushVar, Slot: uint(slot)})
			height++
		case symbol.Operator:
			fn, ok := ops[sym.Repr]
			if !ok {
				return nil, fmt.Errorf("%w: %q at %s", ErrUnboundOperator, sym.Repr, tok.Span)
			} else if height < 2 {
				return nil, fmt.Errorf("%w: %q at %s", ErrStackUnderflow, sym.Repr, tok.Span)
			}
			//
			instructions = append(instructions, Instruction{Opcode: Apply, Operator: sym.Repr, fn: fn})
			height--
		default:
			return nil, fmt.Errorf("%w: %s %q at %s", ErrMalformedExpression, sym.Kind, sym.Repr, tok.Span)
		}
		//
		depth = max(depth, height)
	}
	//
	if height != 1 {
		return nil, fmt.Errorf("%w: %d values left on stack", ErrStackImbalance, height)
	}
	//
	return &Program{instructions, slices.Clone(variables), depth}, nil
}

// Instructions returns the instructions of this program.
func (p *Program) Instructions() []Instruction {
	return p.instructions
}

// Variables returns the variables of this program, in slot order.
func (p *Program) Variables() []string {
	return p.variables
}

// Eval runs this program where args[i] is the value bound to slot i.
func (p *Program) Eval(args []element.Value) element.Value {
	return p.NewMachine().Eval(args)
}

// EvalBinding runs this program against an explicit binding of variable names
// to values.
func (p *Program) EvalBinding(binding map[string]element.Value) (element.Value, error) {
	args := make([]element.Value, len(p.variables))
	//
	for i, v := range p.variables {
		val, ok := binding[v]
		if !ok {
			return element.Unknown(), fmt.Errorf("%w: %q", ErrUnboundOperand, v)
		}
		//
		args[i] = val
	}
	//
	return p.Eval(args), nil
}

func (p *Program) String() string {
	var builder strings.Builder
	//
	for i, insn := range p.instructions {
		if i != 0 {
			builder.WriteString("; ")
		}
		//
		builder.WriteString(insn.String())
	}
	//
	return builder.String()
}

// NewMachine constructs a stack machine for this program.  A machine reuses
// its stack across evaluations and, hence, must not be shared between
// goroutines.
func (p *Program) NewMachine() *Machine {
	return &Machine{p, make([]element.Value, 0, p.depth)}
}

// Machine interprets a program.
type Machine struct {
	program *Program
	stack   []element.Value
}

// Eval runs the program where args[i] is the value bound to slot i.
func (m *Machine) Eval(args []element.Value) element.Value {
	stack := m.stack[:0]
	//
	for _, insn := range m.program.instructions {
		switch insn.Opcode {
		case PushConst:
			stack = append(stack, insn.Value)
		case PushVar:
			stack = append(stack, args[insn.Slot])
		default:
			n := len(stack)
			stack[n-2] = insn.fn(stack[n-2], stack[n-1])
			stack = stack[:n-1]
		}
	}
	//
	m.stack = stack
	//
	return stack[0]
}
