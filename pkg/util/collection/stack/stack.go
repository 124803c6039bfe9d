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
package stack

// Stack represents a reusable LIFO stack which is implemented using an array.
// The Try variants report an empty stack instead of panicking, which is what
// parsers need when the input itself may be malformed.
type Stack[T any] struct {
	items []T
}

// NewStack returns an empty stack
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// NewStackWithCapacity returns an empty stack with space preallocated for a
// given number of items.
func NewStackWithCapacity[T any](n uint) *Stack[T] {
	return &Stack[T]{make([]T, 0, n)}
}

// IsEmpty checks whether or not there are still items on the stack
func (p *Stack[T]) IsEmpty() bool {
	return p.Len() == 0
}

// Len returns the number of items on the stack.
func (p *Stack[T]) Len() uint {
	return uint(len(p.items))
}

// Peek at nth item from top of stack.
func (p *Stack[T]) Peek(offset uint) T {
	item, ok := p.TryPeek(offset)
	if !ok {
		panic("peek out-of-bounds")
	}
	//
	return item
}

// TryPeek at nth item from top of stack, returning false if there is no such
// item.
func (p *Stack[T]) TryPeek(offset uint) (T, bool) {
	var (
		empty T
		n     = len(p.items) - int(offset) - 1
	)
	//
	if n < 0 {
		return empty, false
	}
	// Get item
	return p.items[n], true
}

// Push a new item onto the stack
func (p *Stack[T]) Push(item T) {
	p.items = append(p.items, item)
}

// Pop the last item off the stack
func (p *Stack[T]) Pop() T {
	item, ok := p.TryPop()
	if !ok {
		panic("cannot pop from empty stack")
	}
	//
	return item
}

// TryPop pops the last item off the stack, returning false if the stack is
// empty.
func (p *Stack[T]) TryPop() (T, bool) {
	var (
		empty T
		n     = len(p.items)
	)
	//
	if n == 0 {
		return empty, false
	}
	// Get last item
	item := p.items[n-1]
	// Remove last item
	p.items = p.items[:n-1]
	// Done
	return item, true
}

// Clear removes all items from the stack, retaining its capacity.
func (p *Stack[T]) Clear() {
	p.items = p.items[:0]
}
