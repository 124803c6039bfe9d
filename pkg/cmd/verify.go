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

	"github.com/loopy-algebra/loopy/pkg/axiom"
	"github.com/loopy-algebra/loopy/pkg/element"
	"github.com/loopy-algebra/loopy/pkg/model"
	"github.com/loopy-algebra/loopy/pkg/util"
	"github.com/loopy-algebra/loopy/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [flags] table_file [axiom...]",
	Short: "Verify axioms against a given loop.",
	Long: `Verify a set of axioms against the loop given by a multiplication
	table.  Axioms can be given on the command line (e.g. "Ax Ay x*y = y*x"),
	read from YAML files, or taken from the standard library.`,
	Run: func(cmd *cobra.Command, args []string) {
		var cfg verifyConfig
		//
		setup(cmd, args, 1)
		//
		cfg.mode = axiom.Tables
		cfg.warm = GetFlag(cmd, "warm")
		cfg.stats = GetFlag(cmd, "stats")
		cfg.colour = useColour(cmd)
		//
		switch mode := GetString(cmd, "mode"); mode {
		case "tables":
		case "direct":
			cfg.mode = axiom.Direct
		default:
			fmt.Printf("unknown verification mode \"%s\"\n", mode)
			os.Exit(2)
		}
		//
		m := readModel(cmd, args[0], model.Config{DisableCache: GetFlag(cmd, "no-cache")})
		axioms := collectAxioms(cmd, m, args[1:])
		//
		if len(axioms) == 0 {
			fmt.Println("no axioms to verify")
			os.Exit(1)
		}
		// Go!
		if !verifyAxioms(m, axioms, cfg) {
			os.Exit(3)
		}
	},
}

// verify config encapsulates the parameters of a verification run.
type verifyConfig struct {
	mode axiom.Mode
	// Materialise all tables in parallel before verifying.
	warm bool
	// Report cache statistics once done.
	stats bool
	// Use colour when reporting results.
	colour bool
}

// Collect the axioms given on the command line, from axiom files, and from the
// standard library.
func collectAxioms(cmd *cobra.Command, m *model.Model, args []string) []*axiom.Axiom {
	var axioms []*axiom.Axiom
	//
	if GetFlag(cmd, "standard") {
		axioms = append(axioms, axiom.Standard()...)
	}
	//
	for _, filename := range GetStringArray(cmd, "axioms") {
		axioms = append(axioms, readAxiomFile(filename, m.Registry())...)
	}
	//
	for i, text := range args {
		a, err := axiom.Parse(text, m.Registry(), fmt.Sprintf("#%d", i+1))
		if err != nil {
			printError(err)
			os.Exit(2)
		}
		//
		axioms = append(axioms, a)
	}
	//
	return axioms
}

// Verify each axiom in turn, reporting the outcome.  Returns false if any
// axiom failed.
func verifyAxioms(m *model.Model, axioms []*axiom.Axiom, cfg verifyConfig) bool {
	var (
		verifier = axiom.Verifier{Mode: cfg.mode}
		printer  = termio.NewTablePrinter(3, uint(len(axioms)+1))
		stats    = util.NewPerfStats()
		ok       = true
	)
	//
	if cfg.warm {
		if err := verifier.Warm(m, axioms...); err != nil {
			printError(err)
			os.Exit(2)
		}
	}
	//
	printer.SetRow(0, "name", "axiom", "result")
	printer.SetSeparator(0)
	//
	for i, a := range axioms {
		row := uint(i + 1)
		//
		if err := a.Preparse(m); err != nil {
			printError(err)
			os.Exit(2)
		}
		//
		truth, err := verifier.IsPartiallyTrue(m, a)
		if err != nil {
			printError(err)
			os.Exit(2)
		}
		//
		printer.SetRow(row, a.Name(), a.String(), truth.String())
		printer.SetEscape(2, row, truthEscape(truth))
		//
		ok = ok && truth != element.False
	}
	//
	printer.AnsiEscapes(cfg.colour)
	//
	if err := printer.Print(os.Stdout); err != nil {
		log.Error(err)
	}
	//
	stats.Log("verification", log.Fields{"axioms": len(axioms), "mode": cfg.mode.String()})
	//
	if cfg.stats && m.Cache() != nil {
		printStats(m.Cache().Collectors()...)
	}
	//
	return ok
}

func truthEscape(truth element.Truth) termio.AnsiEscape {
	switch truth {
	case element.True:
		return termio.NewAnsiEscape().FgColour(termio.TERM_GREEN)
	case element.False:
		return termio.BoldAnsiEscape().FgColour(termio.TERM_RED)
	default:
		return termio.NewAnsiEscape().FgColour(termio.TERM_YELLOW)
	}
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().StringArray("axioms", nil, "read axioms from a YAML file")
	verifyCmd.Flags().Bool("standard", false, "verify every axiom of the standard library")
	verifyCmd.Flags().String("mode", "tables", "evaluation mode (tables or direct)")
	verifyCmd.Flags().Bool("warm", false, "materialise all term tables in parallel before verifying")
	verifyCmd.Flags().Bool("no-cache", false, "disable the caching of term tables")
	verifyCmd.Flags().Bool("stats", false, "report cache statistics")
}
