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
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] table_file",
	Short: "Report structural properties of a given loop.",
	Long: `Check whether a multiplication table describes a loop and, if so,
	report its associativity, commutativity, nuclei and centre.`,
	Run: func(cmd *cobra.Command, args []string) {
		setup(cmd, args, 1)
		//
		m := readModel(cmd, args[0], model.Config{DisableCache: true})
		//
		fmt.Printf("order: %d\n", m.Order())
		fmt.Printf("partial: %t\n", m.Partial())
		//
		if !m.IsLoop() {
			fmt.Println("loop: false")
			os.Exit(3)
		}
		//
		fmt.Println("loop: true")
		fmt.Printf("associative: %t\n", m.IsAssociative())
		fmt.Printf("commutative: %t\n", m.IsCommutative())
		fmt.Printf("commutant: %s\n", formatElements(m, m.Commutant()))
		fmt.Printf("left nucleus: %s\n", formatElements(m, m.LeftNucleus()))
		fmt.Printf("middle nucleus: %s\n", formatElements(m, m.MiddleNucleus()))
		fmt.Printf("right nucleus: %s\n", formatElements(m, m.RightNucleus()))
		fmt.Printf("nucleus: %s\n", formatElements(m, m.Nucleus()))
		fmt.Printf("centre: %s\n", formatElements(m, m.Center()))
	},
}

func formatElements(m *model.Model, elements []element.Element) string {
	names := make([]string, len(elements))
	for i, e := range elements {
		names[i] = m.Domain().Name(e)
	}
	//
	return "{" + strings.Join(names, ", ") + "}"
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
