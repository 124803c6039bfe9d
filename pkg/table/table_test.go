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
package table

import (
	"testing"

	"github.com/loopy-algebra/loopy/pkg/element"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_01(t *testing.T) {
	tab := NewIdentity(element.NewIndexDomain(3), 2)
	require.Equal(t, uint(9), tab.Len())
	//
	for _, x := range tab.Domain().Elements() {
		for _, y := range tab.Domain().Elements() {
			require.NoError(t, tab.Update(element.Known((x+y)%3), x, y))
		}
	}
	//
	v, err := tab.At(2, 2)
	require.NoError(t, err)
	assert.Equal(t, element.Known(1), v)
	assert.Equal(t, [][]string{{"0", "1", "2"}, {"1", "2", "0"}, {"2", "0", "1"}}, tab.Rows("&"))
}

func TestTable_Arity(t *testing.T) {
	tab := NewUnknown(element.NewIndexDomain(2), 3)
	assert.Equal(t, uint(8), tab.Len())
	//
	_, err := tab.At(0, 1)
	assert.ErrorIs(t, err, ErrArityMismatch)
	assert.ErrorIs(t, tab.Update(element.Known(0), 0, 0, 0, 0), ErrArityMismatch)
	assert.Panics(t, func() { tab.Get(0) })
}

func TestTable_UnknownElement(t *testing.T) {
	tab := NewUnknown(element.NewIndexDomain(2), 1)
	//
	_, err := tab.At(2)
	assert.ErrorIs(t, err, element.ErrUnknownElement)
	//
	_, err = tab.IndexOf("7")
	assert.ErrorIs(t, err, element.ErrUnknownElement)
}

func TestTable_Nullary(t *testing.T) {
	// A table of arity zero holds exactly one value.
	tab := NewUnknown(element.NewIndexDomain(4), 0)
	require.Equal(t, uint(1), tab.Len())
	require.NoError(t, tab.Update(element.Known(3)))
	assert.Equal(t, element.Known(3), tab.Get())
}

func TestTable_RowMajor(t *testing.T) {
	tab := NewUnknown(element.NewIndexDomain(2), 3)
	require.NoError(t, tab.Update(element.Known(1), 1, 0, 1))
	// Only the addressed cell changes.
	assert.Equal(t, uint(1), tab.Count(element.Value.IsKnown))
	assert.Equal(t, "[? ? ? ? ? 1 ? ?]", tab.String())
}

func TestTable_CloneFill(t *testing.T) {
	tab := NewIdentity(element.NewIndexDomain(2), 2)
	clone := tab.Clone()
	clone.Fill(element.Unknown())
	//
	assert.Equal(t, uint(4), tab.Count(element.Value.IsKnown))
	assert.Equal(t, uint(4), clone.Count(element.Value.IsUnknown))
}
