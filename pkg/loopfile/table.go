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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/loopy-algebra/loopy/pkg/element"
	"github.com/loopy-algebra/loopy/pkg/table"
)

// ErrFormat indicates a malformed loop or axiom file.
var ErrFormat = errors.New("malformed file")

// Maximum length of a single line in a table file.  Rows of large tables
// easily exceed the default limit of bufio.Scanner.
const maxLineLength = 64 * 1024 * 1024

// ReadTable reads a multiplication table of element indices, given as
// whitespace-separated integers with one row per line.  The shift is added to
// every index, such that (for example) one-based tables can be read with a
// shift of -1.  Cells matching the unknown placeholder (when non-empty) are
// read as -1.  Blank lines, and lines starting with '#', are ignored.
func ReadTable(r io.Reader, shift int, unknown string) ([][]int, error) {
	var (
		scanner = bufio.NewScanner(r)
		rows    [][]int
		line    int
	)
	//
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	//
	for scanner.Scan() {
		line++
		//
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		//
		fields := strings.Fields(text)
		row := make([]int, len(fields))
		//
		for i, f := range fields {
			if unknown != "" && f == unknown {
				row[i] = -1
				continue
			}
			//
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: invalid cell %q", ErrFormat, line, f)
			} else if n+shift < 0 {
				return nil, fmt.Errorf("%w: line %d: negative cell %d after shift", ErrFormat, line, n+shift)
			}
			//
			row[i] = n + shift
		}
		//
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: line %d: expected %d cells, found %d", ErrFormat, line, len(rows[0]), len(row))
		}
		//
		rows = append(rows, row)
	}
	//
	if err := scanner.Err(); err != nil {
		return nil, err
	} else if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty table", ErrFormat)
	} else if len(rows) != len(rows[0]) {
		return nil, fmt.Errorf("%w: %d rows of %d cells", ErrFormat, len(rows), len(rows[0]))
	}
	//
	return rows, nil
}

// WriteTable writes a table of arity two as element indices, in the format
// understood by ReadTable.
func WriteTable(w io.Writer, tab *table.Table, shift int, unknown string) error {
	if tab.Arity() != 2 {
		return fmt.Errorf("%w: table has arity %d", table.ErrArityMismatch, tab.Arity())
	}
	//
	var (
		k      = tab.Size()
		writer = bufio.NewWriter(w)
	)
	//
	for i := uint(0); i < k; i++ {
		for j := uint(0); j < k; j++ {
			if j != 0 {
				writer.WriteString(" ")
			}
			//
			if e, ok := tab.Get(element.Element(i), element.Element(j)).Get(); ok {
				writer.WriteString(strconv.Itoa(int(e) + shift))
			} else {
				writer.WriteString(unknown)
			}
		}
		//
		writer.WriteString("\n")
	}
	//
	return writer.Flush()
}
