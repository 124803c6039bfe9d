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
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/loopy-algebra/loopy/pkg/element"
	"github.com/loopy-algebra/loopy/pkg/model"
	"github.com/loopy-algebra/loopy/pkg/table"
	"github.com/loopy-algebra/loopy/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [flags] table_file",
	Short: "Print the tables of a given loop.",
	Long: `Print the multiplication table of a given loop, its division tables,
	or the table of an arbitrary binary term.`,
	Run: func(cmd *cobra.Command, args []string) {
		setup(cmd, args, 1)
		//
		var (
			m      = readModel(cmd, args[0], model.Config{})
			text   = GetString(cmd, "term")
			colour = useColour(cmd)
			width  = termio.Width(os.Stdout, 130)
		)
		//
		if text != "" {
			tab := termTable(m, text, GetString(cmd, "vars"))
			printTable(m, text, tab, colour, width)
			//
			return
		}
		//
		printTable(m, "*", m.MulTable(), colour, width)
		//
		if GetFlag(cmd, "ldiv") {
			fmt.Println()
			printTable(m, "\\", m.LdivTable(), colour, width)
		}
		//
		if GetFlag(cmd, "rdiv") {
			fmt.Println()
			printTable(m, "/", m.RdivTable(), colour, width)
		}
	},
}

// Materialise the table of a term over exactly two variables.
func termTable(m *model.Model, text string, vars string) *table.Table {
	var (
		variables = strings.Split(vars, ",")
		tab       *table.Table
	)
	//
	if len(variables) != 2 {
		fmt.Printf("expected two variables, found \"%s\"\n", vars)
		os.Exit(2)
	}
	//
	err := m.View(func() error {
		t, err := m.Maker().Parse(text, variables)
		if err != nil {
			return err
		} else if len(t.Used()) != 2 {
			return fmt.Errorf("term \"%s\" does not use both of %s", text, vars)
		}
		//
		entry, err := m.Maker().MakeTerm(t)
		if err == nil {
			tab = entry.Table()
		}
		//
		return err
	})
	//
	if err != nil {
		printError(err)
		os.Exit(2)
	}
	//
	return tab
}

// Print a table of arity two as a Cayley table, with unknown cells
// highlighted.
func printTable(m *model.Model, title string, tab *table.Table, colour bool, width uint) {
	var (
		k       = m.Order()
		names   = m.Elements()
		rows    = tab.Rows(m.Format(element.Unknown()))
		printer = termio.NewTablePrinter(k+1, k+1)
		header  = termio.BoldAnsiEscape()
		unknown = termio.NewAnsiEscape().FgColour(termio.TERM_YELLOW)
	)
	//
	printer.Set(0, 0, title)
	printer.SetSeparator(0)
	//
	for i := uint(0); i < k; i++ {
		printer.Set(i+1, 0, names[i])
		printer.Set(0, i+1, names[i])
		printer.SetEscape(i+1, 0, header)
		printer.SetEscape(0, i+1, header)
		//
		for j := uint(0); j < k; j++ {
			printer.Set(j+1, i+1, rows[i][j])
			//
			if tab.Get(element.Element(i), element.Element(j)).IsUnknown() {
				printer.SetEscape(j+1, i+1, unknown)
			}
		}
	}
	// Each column occupies its width plus three characters
	printer.SetMaxWidths(max(3, width/(k+1)) - 3)
	printer.AnsiEscapes(colour)
	//
	if err := printer.Print(os.Stdout); err != nil {
		log.Error(err)
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().Bool("ldiv", false, "also print the left division table")
	showCmd.Flags().Bool("rdiv", false, "also print the right division table")
	showCmd.Flags().String("term", "", "print the table of a binary term instead")
	showCmd.Flags().String("vars", "x,y", "comma-separated variables of the term")
}
