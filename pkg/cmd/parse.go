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
	"io"
	"os"
	"strings"

	"github.com/blllock/gridlogic/pkg/logic"
	"github.com/blllock/gridlogic/pkg/util/source"
	"github.com/spf13/cobra"
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse [flags] formula...",
	Short: "parse one or more boolean formulas.",
	Long: `Parse one or more boolean formulas and print them back in the selected
	format.  Syntax errors are reported with the offending part highlighted.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var (
			s    = getSettings(cmd)
			vars = GetFlag(cmd, "vars")
		)
		//
		if !printFormulas(cmd.OutOrStdout(), args, s.mode, vars) {
			os.Exit(4)
		}
	},
}

// Parse and print each formula in turn, returning false if any failed to
// parse.
func printFormulas(out io.Writer, formulas []string, mode logic.Mode, vars bool) bool {
	var ok = true
	//
	for _, text := range formulas {
		expr, err := logic.Parse(text)
		//
		var serr *source.SyntaxError
		//
		switch {
		case errors.As(err, &serr):
			printSyntaxError(out, serr)
			//
			ok = false
		case err != nil:
			fmt.Fprintln(out, err)
			//
			ok = false
		case vars:
			fmt.Fprintf(out, "%s\t{%s}\n", logic.Format(expr, mode), strings.Join(logic.Variables(expr), ","))
		default:
			fmt.Fprintln(out, logic.Format(expr, mode))
		}
	}
	//
	return ok
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().Bool("vars", false, "also list the variables of each formula")
}
