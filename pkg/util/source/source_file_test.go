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
package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/blllock/gridlogic/pkg/util/assert"
)

func Test_Lines_01(t *testing.T) {
	checkLines(t, "", "")
}

func Test_Lines_02(t *testing.T) {
	checkLines(t, "ab", "ab")
}

func Test_Lines_03(t *testing.T) {
	checkLines(t, "ab\ncd\n", "ab", "cd", "")
}

func Test_Lines_04(t *testing.T) {
	checkLines(t, "ab\r\ncd\r\n", "ab", "cd", "")
}

func Test_Lines_05(t *testing.T) {
	checkLines(t, "\n\r\n", "", "", "")
}

func Test_Lines_06(t *testing.T) {
	lines := NewSourceFile("test", []byte("ab\r\ncd")).Lines()
	//
	assert.Equal(t, 2, lines[1].Number())
	assert.Equal(t, 4, lines[1].Start())
	assert.Equal(t, 2, lines[1].Length())
}

func Test_EnclosingLine_01(t *testing.T) {
	checkEnclosingLine(t, "ab\ncd", NewSpan(0, 1), "ab", 1)
}

func Test_EnclosingLine_02(t *testing.T) {
	checkEnclosingLine(t, "ab\ncd", NewSpan(4, 5), "cd", 2)
}

func Test_EnclosingLine_03(t *testing.T) {
	// Beyond the end gives the last line
	checkEnclosingLine(t, "ab\ncd", NewSpan(5, 5), "cd", 2)
}

func Test_SyntaxError_01(t *testing.T) {
	srcfile := NewSourceFile("formula", []byte("A+"))
	err := srcfile.SyntaxError(NewSpan(2, 2), "expected operand")
	//
	assert.Equal(t, "expected operand at position 2 in \"A+\"", err.Error())
	assert.Equal(t, "expected operand", err.Message())
	assert.True(t, err.SourceFile() == srcfile)
}

func Test_ReadFile_01(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "levels.csv")
	assert.NoError(t, os.WriteFile(filename, []byte("ID\n1"), 0600))
	//
	srcfile, err := ReadFile(filename)
	assert.NoError(t, err)
	assert.Equal(t, filename, srcfile.Filename())
	assert.Equal(t, "ID\n1", string(srcfile.Contents()))
}

func Test_ReadFile_02(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// ===================================================================
// Framework
// ===================================================================

func checkLines(t *testing.T, text string, expected ...string) {
	t.Helper()
	//
	lines := NewSourceFile("test", []byte(text)).Lines()
	assert.Equal(t, len(expected), len(lines))
	//
	for i, line := range lines {
		assert.Equal(t, expected[i], line.String(), "line %d", i+1)
		assert.Equal(t, i+1, line.Number())
	}
}

func checkEnclosingLine(t *testing.T, text string, span Span, expected string, number int) {
	t.Helper()
	//
	line := NewSourceFile("test", []byte(text)).FindFirstEnclosingLine(span)
	//
	assert.Equal(t, expected, line.String())
	assert.Equal(t, number, line.Number())
}
