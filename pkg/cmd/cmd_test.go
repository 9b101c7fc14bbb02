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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blllock/gridlogic/pkg/grid"
	"github.com/blllock/gridlogic/pkg/logic"
	"github.com/blllock/gridlogic/pkg/table"
	"github.com/blllock/gridlogic/pkg/util/assert"
)

const levels = `ID,Width,Height,Inputs,Outputs
7,2,2,(0.0):A*~B;(1.1):C,(0.1):A+C
`

func Test_Parse_01(t *testing.T) {
	checkFormulas(t, true, "A((~B)+C)\nA+B\n", "A*(~B+C)", "A + B")
}

func Test_Parse_02(t *testing.T) {
	checkFormulas(t, false, "formula:1: expected operand\nA+\n  ^\n", "A+")
}

func Test_Parse_03(t *testing.T) {
	checkFormulas(t, false, "formula:1: unexpected character '&'\nA&B\n ^\n", "A&B")
}

func Test_Parse_04(t *testing.T) {
	// Errors don't prevent later formulas being printed
	checkFormulas(t, false, "formula:1: expected ')'\n(A\n  ^\nB\n", "(A", "B")
}

func Test_Parse_05(t *testing.T) {
	var out bytes.Buffer
	//
	assert.True(t, printFormulas(&out, []string{"B*A+B"}, logic.Minimal, true))
	assert.Equal(t, "(BA)+B\t{B,A}\n", out.String())
}

func Test_Load_01(t *testing.T) {
	var out bytes.Buffer
	//
	printRows(&out, table.Parse(levels), logic.Minimal, 100, false)
	//
	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, 3, len(lines))
	assert.Equal(t, " ID | Width | Height | Inputs              | Outputs   |", lines[0])
	assert.Equal(t, " 7  | 2     | 2      | (0.0):A(~B);(1.1):C | (0.1):A+C |", lines[1])
}

func Test_Load_02(t *testing.T) {
	var out bytes.Buffer
	// Columns are truncated
	printRows(&out, table.Parse(levels), logic.Minimal, 8, false)
	//
	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, " 7  | 2     | 2      | (0.0):.. | (0.1):.. |", lines[1])
}

func Test_Load_03(t *testing.T) {
	var out bytes.Buffer
	// Ragged rows contribute their columns in order of first appearance
	printRows(&out, table.Parse("ID,Name\n1\n2,b"), logic.Minimal, 100, false)
	//
	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, " ID | Name |", lines[0])
	assert.Equal(t, " 1  |      |", lines[1])
	assert.Equal(t, " 2  | b    |", lines[2])
}

func Test_Grid_01(t *testing.T) {
	var (
		out      bytes.Buffer
		registry = grid.NewRegistry(table.Parse(levels))
	)
	//
	board, err := registry.Board(7)
	assert.NoError(t, err)
	//
	printBoard(&out, board, logic.Minimal, false)
	//
	assert.Equal(t, strings.Join([]string{
		"   | 0 | 1 | 2 |",
		" 0 | I | O | . |",
		" 1 | . | I | . |",
		" 2 | . | . | . |",
		"input  (0.0): A(~B)",
		"output (0.1): A+C",
		"input  (1.1): C",
		"",
	}, "\n"), out.String())
}

func Test_Grid_02(t *testing.T) {
	var out bytes.Buffer
	//
	printLevels(&out, grid.NewRegistry(table.Parse(levels+"3,1,1,,(1.1):X\n")))
	//
	assert.Equal(t, "level 3: 1x1, 0 inputs, 1 outputs\nlevel 7: 2x2, 2 inputs, 1 outputs\n", out.String())
}

func Test_Execute_01(t *testing.T) {
	checkExecute(t, "((A) + (B))\n", "parse", "--format", "verbose", "A*B")
}

func Test_Execute_02(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "levels.csv")
	assert.NoError(t, os.WriteFile(filename, []byte(levels), 0600))
	//
	checkExecute(t, "level 7: 2x2, 2 inputs, 1 outputs\n", "grid", filename)
}

func Test_Execute_03(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "levels.csv")
	assert.NoError(t, os.WriteFile(filename, []byte(levels), 0600))
	// Table taken from the environment
	t.Setenv("GRIDLOGIC_TABLE", filename)
	//
	checkExecute(t, "level 7: 2x2, 2 inputs, 1 outputs\n", "grid")
}

// ===================================================================
// Framework
// ===================================================================

func checkFormulas(t *testing.T, ok bool, expected string, formulas ...string) {
	t.Helper()
	//
	var out bytes.Buffer
	//
	assert.Equal(t, ok, printFormulas(&out, formulas, logic.Minimal, false))
	assert.Equal(t, expected, out.String())
}

func checkExecute(t *testing.T, expected string, args ...string) {
	t.Helper()
	//
	var out bytes.Buffer
	//
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	//
	defer rootCmd.SetOut(nil)
	//
	assert.NoError(t, rootCmd.Execute())
	assert.Equal(t, expected, out.String())
}
