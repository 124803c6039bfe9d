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
package loopfile

import (
	"bytes"
	"strings"
	"testing"

	"github.com/loopy-algebra/loopy/pkg/axiom"
	"github.com/loopy-algebra/loopy/pkg/model"
	"github.com/loopy-algebra/loopy/pkg/symbol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTable_01(t *testing.T) {
	rows := readTable(t, "0 1 2\n1 2 0\n2 0 1\n", 0, "")
	assert.Equal(t, [][]int{{0, 1, 2}, {1, 2, 0}, {2, 0, 1}}, rows)
}

func TestReadTable_02(t *testing.T) {
	// One-based, with comments and blank lines
	rows := readTable(t, "# Z2\n\n1  2\n\t2 1\n", -1, "")
	assert.Equal(t, [][]int{{0, 1}, {1, 0}}, rows)
}

func TestReadTable_LongLines(t *testing.T) {
	// Rows beyond the default scanner limit of 64KiB
	padding := strings.Repeat(" ", 256*1024)
	rows := readTable(t, "0"+padding+"1\n1 0"+padding+"\n", 0, "")
	assert.Equal(t, [][]int{{0, 1}, {1, 0}}, rows)
}

func TestReadTable_Unknown(t *testing.T) {
	rows := readTable(t, "0 1\n1 ?\n", 0, "?")
	assert.Equal(t, [][]int{{0, 1}, {1, -1}}, rows)
	//
	m, err := model.FromIndices(rows, model.Config{Unknown: "?"})
	require.NoError(t, err)
	assert.True(t, m.Partial())
}

func TestReadTable_Errors(t *testing.T) {
	for _, text := range []string{"", "# nothing\n", "0 1\n1\n", "0 1\n1 x\n", "0 1\n", "0 1\n1 0\n0 1\n", "1 2\n2 1\n"} {
		shift := 0
		if text == "1 2\n2 1\n" {
			shift = -2
		}
		//
		_, err := ReadTable(strings.NewReader(text), shift, "")
		assert.ErrorIs(t, err, ErrFormat, "%q", text)
	}
}

func TestWriteTable_RoundTrip(t *testing.T) {
	m, err := model.FromIndices([][]int{{0, 1, 2}, {1, -1, 0}, {2, 0, -1}}, model.Config{Unknown: "-"})
	require.NoError(t, err)
	//
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, m.MulTable(), 1, "-"))
	assert.Equal(t, "1 2 3\n2 - 1\n3 1 -\n", buf.String())
	//
	rows := readTable(t, buf.String(), -1, "-")
	assert.Equal(t, [][]int{{0, 1, 2}, {1, -1, 0}, {2, 0, -1}}, rows)
}

func TestReadAxioms_01(t *testing.T) {
	text := `
axioms:
  - name: moufang
    text: 'Ax Ay Az z*(x*(z*y)) = ((z*x)*z)*y'
  - name: lip
    left: '(0/x)*(x*y)'
    right: 'y'
    variables: [Ax, Ay]
  - name: associativity
`
	axioms := readAxioms(t, text)
	require.Len(t, axioms, 3)
	//
	assert.Equal(t, "moufang", axioms[0].Name())
	assert.Equal(t, "((z*x)*z)*y", axioms[0].Right())
	assert.Equal(t, axiom.ForAll("x", "y"), axioms[1].Variables())
	assert.Equal(t, "(x*y)*z", axioms[2].Left())
	// All hold in Z3
	m, err := model.FromIndices([][]int{{0, 1, 2}, {1, 2, 0}, {2, 0, 1}}, model.Config{})
	require.NoError(t, err)
	//
	for _, a := range axioms {
		ok, err := axiom.Verifier{}.IsTrue(m, a)
		require.NoError(t, err)
		assert.True(t, ok, a.String())
	}
}

func TestReadAxioms_Errors(t *testing.T) {
	for _, text := range []string{
		"axioms: [",
		"axiom: []",
		"axioms:\n  - name: nope\n",
		"axioms:\n  - name: both\n    text: 'Ax x = x'\n    left: x\n",
		"axioms:\n  - name: vars\n    left: x\n    right: x\n    variables: [x]\n",
	} {
		_, err := ReadAxioms(strings.NewReader(text), symbol.NewRegistry(symbol.DefaultIdentity))
		assert.Error(t, err, text)
	}
	//
	_, err := ReadAxioms(strings.NewReader("axioms:\n  - name: eq\n    text: 'Ax x*x'\n"),
		symbol.NewRegistry(symbol.DefaultIdentity))
	assert.ErrorIs(t, err, axiom.ErrSyntax)
}

// ==================================================================
// Framework
// ==================================================================

func readTable(t *testing.T, text string, shift int, unknown string) [][]int {
	rows, err := ReadTable(strings.NewReader(text), shift, unknown)
	require.NoError(t, err)
	//
	return rows
}

func readAxioms(t *testing.T, text string) []*axiom.Axiom {
	axioms, err := ReadAxioms(strings.NewReader(text), symbol.NewRegistry(symbol.DefaultIdentity))
	require.NoError(t, err)
	//
	return axioms
}
