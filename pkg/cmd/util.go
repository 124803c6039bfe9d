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
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/loopy-algebra/loopy/pkg/axiom"
	"github.com/loopy-algebra/loopy/pkg/loopfile"
	"github.com/loopy-algebra/loopy/pkg/model"
	"github.com/loopy-algebra/loopy/pkg/symbol"
	"github.com/loopy-algebra/loopy/pkg/util/source"
	"github.com/loopy-algebra/loopy/pkg/util/termio"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetInt gets an expected int, or exits if an error arises.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetStringArray gets an expected string array, or exits if an error arises.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Configure logging, and check the expected number of arguments is given.
func setup(cmd *cobra.Command, args []string, minArgs int) {
	if len(args) < minArgs {
		fmt.Println(cmd.UsageString())
		os.Exit(1)
	}
	// Configure log level
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// Determine whether to use ANSI escapes when printing to stdout.
func useColour(cmd *cobra.Command) bool {
	return !GetFlag(cmd, "no-colour") && termio.IsTerminal(os.Stdout)
}

// Read a multiplication table of element indices, and construct the model.
func readModel(cmd *cobra.Command, filename string, cfg model.Config) *model.Model {
	var (
		shift   = GetInt(cmd, "shift")
		unknown = GetString(cmd, "unknown")
	)
	//
	file, err := os.Open(filename)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	defer file.Close()
	//
	rows, err := loopfile.ReadTable(file, shift, unknown)
	if err != nil {
		fmt.Printf("%s: %v\n", filename, err)
		os.Exit(2)
	}
	//
	cfg.Unknown = unknown
	//
	m, err := model.FromIndices(rows, cfg)
	if errors.Is(err, model.ErrNoSolution) {
		fmt.Printf("%s: not a loop (%v)\n", filename, err)
		os.Exit(2)
	} else if err != nil {
		fmt.Printf("%s: %v\n", filename, err)
		os.Exit(2)
	}
	//
	return m
}

// Read a set of axioms from a YAML file.
func readAxiomFile(filename string, registry *symbol.Registry) []*axiom.Axiom {
	file, err := os.Open(filename)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	defer file.Close()
	//
	axioms, err := loopfile.ReadAxioms(file, registry)
	if err != nil {
		fmt.Printf("%s: %v\n", filename, err)
		os.Exit(2)
	}
	//
	return axioms
}

// Print an error, highlighting the offending text of syntax errors.
func printError(err error) {
	var serr *source.SyntaxError
	//
	if errors.As(err, &serr) {
		fmt.Println(serr.Error())
		fmt.Println(serr.Highlight())
	} else {
		fmt.Println(err)
	}
}

// Print the values of the given counters.
func printStats(collectors ...prometheus.Collector) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors...)
	//
	families, err := registry.Gather()
	if err != nil {
		log.Errorf("gathering statistics: %v", err)
		return
	}
	//
	sort.Slice(families, func(i, j int) bool { return families[i].GetName() < families[j].GetName() })
	//
	for _, family := range families {
		fmt.Printf("%s %v\n", family.GetName(), counterValue(family))
	}
}

func counterValue(family *dto.MetricFamily) float64 {
	total := 0.0
	//
	for _, m := range family.GetMetric() {
		total += m.GetCounter().GetValue()
	}
	//
	return total
}
