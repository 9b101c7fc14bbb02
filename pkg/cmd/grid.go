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
	"io"
	"os"

	"github.com/blllock/gridlogic/pkg/grid"
	"github.com/blllock/gridlogic/pkg/logic"
	"github.com/blllock/gridlogic/pkg/table"
	"github.com/blllock/gridlogic/pkg/util/termio"
	"github.com/spf13/cobra"
)

// gridCmd represents the grid command
var gridCmd = &cobra.Command{
	Use:   "grid [flags] [table_file]",
	Short: "draw the grid of a level.",
	Long: `Draw the grid of a given level from a design table, marking each input
	point with 'I' and each output point with 'O'.  The terminals of the level
	are then listed in row-major order.  Without --id, the known levels are listed.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			s        = getSettings(cmd)
			filename = getTableFile(cmd, s, args)
			registry = grid.NewRegistry(table.Load(filename))
		)
		//
		if !cmd.Flags().Changed("id") {
			printLevels(cmd.OutOrStdout(), registry)
			return
		}
		//
		board, err := registry.Board(GetInt(cmd, "id"))
		if err != nil {
			fmt.Println(err)
			os.Exit(3)
		}
		//
		printBoard(cmd.OutOrStdout(), board, s.mode, s.colour)
	},
}

func printLevels(out io.Writer, registry *grid.Registry) {
	for _, id := range registry.IDs() {
		row, _ := registry.Row(id)
		width, _ := row.Int(grid.WIDTH)
		height, _ := row.Int(grid.HEIGHT)
		//
		fmt.Fprintf(out, "level %d: %dx%d, %d inputs, %d outputs\n", id, width, height,
			len(row.Inputs()), len(row.Outputs()))
	}
}

// Print a board, followed by its terminals.
func printBoard(out io.Writer, board *grid.Board, mode logic.Mode, colour bool) {
	var (
		tp    = termio.NewTablePrinter(uint(board.Width()+2), uint(board.Height()+2))
		bold  = termio.BoldAnsiEscape()
		red   = termio.NewAnsiEscape().FgColour(termio.TERM_RED)
		blue  = termio.NewAnsiEscape().FgColour(termio.TERM_BLUE)
		names = map[grid.PointKind]string{grid.None: ".", grid.Input: "I", grid.Output: "O"}
	)
	// Column headings
	for c := 0; c <= board.Width(); c++ {
		tp.Set(uint(c+1), 0, fmt.Sprintf("%d", c))
		tp.SetEscape(uint(c+1), 0, bold)
	}
	//
	for r := 0; r <= board.Height(); r++ {
		tp.Set(0, uint(r+1), fmt.Sprintf("%d", r))
		tp.SetEscape(0, uint(r+1), bold)
		//
		for c := 0; c <= board.Width(); c++ {
			point, _ := board.Point(r, c)
			tp.Set(uint(c+1), uint(r+1), names[point.Kind])
			//
			switch point.Kind {
			case grid.Input:
				tp.SetEscape(uint(c+1), uint(r+1), red)
			case grid.Output:
				tp.SetEscape(uint(c+1), uint(r+1), blue)
			}
		}
	}
	//
	tp.AnsiEscapes(colour)
	tp.Print(out)
	//
	for _, point := range board.Terminals() {
		fmt.Fprintf(out, "%-6s %s: %s\n", point.Kind, point.Pos, logic.Format(point.Expr, mode))
	}
}

func init() {
	rootCmd.AddCommand(gridCmd)
	gridCmd.Flags().Int("id", 0, "level to draw")
}
