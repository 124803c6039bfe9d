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

import "errors"

// ErrUnknownToken is reported when no registered symbol matches the input at
// some position.
var ErrUnknownToken = errors.New("unknown token")

// ErrInvalidVariable is reported when a declared variable is empty, or has the
// representation of a registered symbol (such as an element or operator).
var ErrInvalidVariable = errors.New("invalid variable")

// ErrMalformedExpression is reported for unbalanced delimiters, operators
// lacking operands, operands lacking operators, and symbols which cannot occur
// within a term (such as quantifiers).
var ErrMalformedExpression = errors.New("malformed expression")

// ErrUnboundOperator is reported when compiling an operator for which no
// semantics have been given.
var ErrUnboundOperator = errors.New("unbound operator")

// ErrUnboundOperand is reported when compiling (or evaluating) a variable which
// has no binding.
var ErrUnboundOperand = errors.New("unbound operand")

// ErrStackUnderflow is reported when a postfix sequence applies an operator to
// fewer values than it requires.
var ErrStackUnderflow = errors.New("stack underflow")

// ErrStackImbalance is reported when a postfix sequence leaves more than one
// value on the stack.
var ErrStackImbalance = errors.New("stack imbalance")
