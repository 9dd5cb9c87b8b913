// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ajroetker/go-tuple/tuple/scalar"
)

func newOpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List the operations eval understands",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			title := cases.Title(language.English)
			byFamily := lo.GroupBy(operations, func(o operation) string { return o.family })
			for _, family := range families {
				fmt.Fprintf(w, "%s:\n", title.String(family))
				for _, o := range byFamily[family] {
					fmt.Fprintf(w, "  %-14s %d  %s\n", o.name, o.arity, o.usage)
				}
			}
		},
	}
}

func newBandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bands",
		Short: "Print the epsilon bands used by the EM predicates",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			for _, band := range []struct {
				name string
				tol  float64
			}{
				{"EM4", scalar.EM4},
				{"EM6", scalar.EM6},
				{"EM8", scalar.EM8},
			} {
				fmt.Fprintf(w, "%s  %g  (float32 %v)\n", band.name, band.tol, float32(band.tol))
			}
		},
	}
}
