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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Equal(t *testing.T) {
	values := []Value{Unknown(), Known(0), Known(1), Known(2)}
	// Unknown compares equal to everything, including itself.
	for _, v := range values {
		assert.True(t, Equal(Unknown(), v), "unknown == %v", v)
		assert.True(t, Equal(v, Unknown()), "%v == unknown", v)
	}
	//
	assert.True(t, Equal(Known(1), Known(1)))
	assert.False(t, Equal(Known(1), Known(2)))
}

func TestValue_Compare(t *testing.T) {
	assert.Equal(t, Maybe, Compare(Unknown(), Known(0)))
	assert.Equal(t, Maybe, Compare(Unknown(), Unknown()))
	assert.Equal(t, True, Compare(Known(2), Known(2)))
	assert.Equal(t, False, Compare(Known(2), Known(0)))
}

func TestValue_Unwrap(t *testing.T) {
	assert.Equal(t, Element(3), Known(3).Unwrap())
	assert.Panics(t, func() { Unknown().Unwrap() })
	assert.True(t, Value{}.IsUnknown())
}

func TestTruth_Logic(t *testing.T) {
	truths := []Truth{False, Maybe, True}
	//
	for _, a := range truths {
		assert.Equal(t, False, a.And(False))
		assert.Equal(t, a, a.And(True))
		assert.Equal(t, True, a.Or(True))
		assert.Equal(t, a, a.Or(False))
		assert.Equal(t, a, a.Not().Not())
	}
	//
	assert.Equal(t, Maybe, Maybe.Not())
	assert.True(t, Maybe.Possible())
	assert.False(t, False.Possible())
	assert.Equal(t, "unknown", Maybe.String())
}

func TestDomain_01(t *testing.T) {
	d, err := NewDomain("e", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, uint(3), d.Size())
	//
	b, err := d.IndexOf("b")
	require.NoError(t, err)
	assert.Equal(t, Element(2), b)
	assert.Equal(t, "a", d.Name(1))
	assert.Equal(t, []Element{0, 1, 2}, d.Elements())
	assert.Equal(t, "&", d.Format(Unknown(), "&"))
	assert.Equal(t, "b", d.Format(Known(2), "&"))
}

func TestDomain_02(t *testing.T) {
	d := NewIndexDomain(12)
	e, err := d.IndexOf("10")
	require.NoError(t, err)
	assert.Equal(t, Element(10), e)
	//
	_, err = d.IndexOf("12")
	assert.True(t, errors.Is(err, ErrUnknownElement))
	assert.False(t, d.Contains(12))
}

func TestDomain_Invalid(t *testing.T) {
	for _, names := range [][]string{{}, {"0", "0"}, {"0", ""}, {"0", "a b"}} {
		_, err := NewDomain(names...)
		assert.ErrorIs(t, err, ErrInvalidDomain, "names %v", names)
	}
}
