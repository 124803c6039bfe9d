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

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrUnknownElement is reported when a name or index does not identify an
// element of the domain in question.
var ErrUnknownElement = errors.New("unknown element")

// ErrInvalidDomain is reported when a domain cannot be constructed from the
// given names.
var ErrInvalidDomain = errors.New("invalid domain")

// Domain is the ordered set of elements of a loop, along with their textual
// names.  The first name is that of the identity.
type Domain struct {
	names []string
	index map[string]Element
}

// NewDomain constructs a domain from a given sequence of names.  Names must be
// non-empty, unique and free of whitespace.
func NewDomain(names ...string) (*Domain, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no elements", ErrInvalidDomain)
	}
	//
	index := make(map[string]Element, len(names))
	//
	for i, n := range names {
		if n == "" || strings.IndexFunc(n, unicode.IsSpace) >= 0 {
			return nil, fmt.Errorf("%w: malformed element name %q", ErrInvalidDomain, n)
		} else if _, ok := index[n]; ok {
			return nil, fmt.Errorf("%w: duplicate element name %q", ErrInvalidDomain, n)
		}
		//
		index[n] = Element(i)
	}
	//
	return &Domain{names, index}, nil
}

// NewIndexDomain constructs a domain of size n whose names are "0" to "n-1".
func NewIndexDomain(n uint) *Domain {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("%d", i)
	}
	// Names are known to be well-formed.
	domain, err := NewDomain(names...)
	if err != nil {
		panic(err)
	}
	//
	return domain
}

// Size returns the number of elements in this domain.
func (p *Domain) Size() uint {
	return uint(len(p.names))
}

// Contains checks whether a given element belongs to this domain.
func (p *Domain) Contains(e Element) bool {
	return uint(e) < p.Size()
}

// IndexOf returns the element with the given name.
func (p *Domain) IndexOf(name string) (Element, error) {
	if e, ok := p.index[name]; ok {
		return e, nil
	}
	//
	return 0, fmt.Errorf("%w: %q", ErrUnknownElement, name)
}

// Name returns the name of a given element.
func (p *Domain) Name(e Element) string {
	return p.names[e]
}

// Names returns the names of all elements, in order.
func (p *Domain) Names() []string {
	return p.names
}

// Elements returns all elements of this domain in order.
func (p *Domain) Elements() []Element {
	elements := make([]Element, len(p.names))
	for i := range elements {
		elements[i] = Element(i)
	}
	//
	return elements
}

// Format renders a value using element names, where unknown values are shown
// using the given placeholder.
func (p *Domain) Format(v Value, unknown string) string {
	if e, ok := v.Get(); ok {
		return p.names[e]
	}
	//
	return unknown
}
