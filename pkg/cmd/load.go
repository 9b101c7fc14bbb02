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
	"io"
	"strings"

	"github.com/blllock/gridlogic/pkg/logic"
	"github.com/blllock/gridlogic/pkg/table"
	"github.com/blllock/gridlogic/pkg/util/termio"
	"github.com/spf13/cobra"
)

// loadCmd represents the load command
var loadCmd = &cobra.Command{
	Use:   "load [flags] [table_file]",
	Short: "load a design table and print its rows.",
	Long: `Load a design table and print every row which survived parsing.  Formulas
	in the Inputs and Outputs columns are printed in the selected format.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			s         = getSettings(cmd)
			filename  = getTableFile(cmd, s, args)
			textwidth = GetUint(cmd, "textwidth")
		)
		//
		rows := table.Load(filename)
		//
		printRows(cmd.OutOrStdout(), rows, s.mode, textwidth, s.colour)
	},
}

// Print a set of rows as a table.  The columns are the union of all columns
// across the rows, in order of first appearance.
func printRows(out io.Writer, rows []*table.Row, mode logic.Mode, textwidth uint, colour bool) {
	var (
		columns = rowColumns(rows)
		tp      = termio.NewTablePrinter(uint(len(columns)), uint(len(rows)+1))
		bold    = termio.BoldAnsiEscape()
	)
	//
	for i, c := range columns {
		tp.Set(uint(i), 0, c)
		tp.SetEscape(uint(i), 0, bold)
	}
	//
	for j, row := range rows {
		for i, c := range columns {
			switch c {
			case table.INPUTS:
				tp.Set(uint(i), uint(j+1), formatTerminals(row.Inputs(), mode))
				tp.SetEscape(uint(i), uint(j+1), termio.NewAnsiEscape().FgColour(termio.TERM_RED))
			case table.OUTPUTS:
				tp.Set(uint(i), uint(j+1), formatTerminals(row.Outputs(), mode))
				tp.SetEscape(uint(i), uint(j+1), termio.NewAnsiEscape().FgColour(termio.TERM_BLUE))
			default:
				val, _ := row.Get(c)
				tp.Set(uint(i), uint(j+1), val)
			}
		}
	}
	// Clamp widths once all cells are set
	for i := range columns {
		tp.SetMaxWidth(uint(i), textwidth)
	}
	//
	tp.AnsiEscapes(colour)
	tp.Print(out)
}

func rowColumns(rows []*table.Row) []string {
	var (
		columns []string
		seen    = make(map[string]bool)
	)
	//
	for _, row := range rows {
		for _, c := range row.Columns() {
			if !seen[c] {
				seen[c] = true
				columns = append(columns, c)
			}
		}
	}
	//
	return columns
}

func formatTerminals(terminals []table.Terminal, mode logic.Mode) string {
	var items = make([]string, len(terminals))
	//
	for i, t := range terminals {
		items[i] = t.Format(mode)
	}
	//
	return strings.Join(items, ";")
}

func init() {
	rootCmd.AddCommand(loadCmd)
	loadCmd.Flags().Uint("textwidth", 40, "maximum width of each column")
}
