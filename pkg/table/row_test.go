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
package table

import (
	"testing"

	"github.com/blllock/gridlogic/pkg/logic"
	"github.com/blllock/gridlogic/pkg/util/assert"
)

func TestRowAccessors(t *testing.T) {
	row := NewRow()
	assert.NoError(t, row.AddField("ID", "7"))
	assert.NoError(t, row.AddField("Speed", "1.5"))
	assert.NoError(t, row.AddField("Name", "intro"))
	//
	value, ok := row.Get("Name")
	assert.True(t, ok)
	assert.Equal(t, "intro", value)
	//
	id, ok := row.Int("ID")
	assert.True(t, ok)
	assert.Equal(t, 7, id)
	//
	speed, ok := row.Float("Speed")
	assert.True(t, ok)
	assert.Equal(t, 1.5, speed)
	//
	speed, ok = row.Float("ID")
	assert.True(t, ok)
	assert.Equal(t, 7.0, speed)
}

func TestRowMissingColumns(t *testing.T) {
	row := NewRow()
	assert.NoError(t, row.AddField("Name", "intro"))
	//
	_, ok := row.Get("Width")
	assert.False(t, ok)
	//
	n, ok := row.Int("Width")
	assert.False(t, ok)
	assert.Equal(t, 0, n)
	// Present but not a number
	n, ok = row.Int("Name")
	assert.False(t, ok)
	assert.Equal(t, 0, n)
	//
	f, ok := row.Float("Name")
	assert.False(t, ok)
	assert.Equal(t, 0.0, f)
	//
	assert.Equal(t, 0, len(row.Inputs()))
	assert.Equal(t, 0, len(row.Outputs()))
}

func TestRowColumnOrder(t *testing.T) {
	row := NewRow()
	assert.NoError(t, row.AddField("B", "1"))
	assert.NoError(t, row.AddField("A", "2"))
	assert.NoError(t, row.AddField("B", "3"))
	//
	assert.Equal(t, []string{"B", "A"}, row.Columns())
	//
	value, _ := row.Get("B")
	assert.Equal(t, "3", value)
	assert.Equal(t, "[B, 3], [A, 2]", row.String())
}

func TestRowTerminals(t *testing.T) {
	row := NewRow()
	assert.NoError(t, row.AddField(INPUTS, "(0.0):A*~B;(1.1):C"))
	assert.NoError(t, row.AddField(OUTPUTS, "(0.1):A+C"))
	//
	inputs := row.Inputs()
	assert.Equal(t, 2, len(inputs))
	assert.Equal(t, Coord{0, 0}, inputs[0].Pos)
	assert.Equal(t, logic.NewAnd(logic.Variable{Name: "A"}, logic.Not{Operand: logic.Variable{Name: "B"}}), inputs[0].Expr)
	assert.Equal(t, Coord{1, 1}, inputs[1].Pos)
	assert.Equal(t, logic.Variable{Name: "C"}, inputs[1].Expr)
	//
	outputs := row.Outputs()
	assert.Equal(t, 1, len(outputs))
	assert.Equal(t, Coord{0, 1}, outputs[0].Pos)
	assert.Equal(t, logic.NewOr(logic.Variable{Name: "A"}, logic.Variable{Name: "C"}), outputs[0].Expr)
}

func TestRowTerminalsReplaced(t *testing.T) {
	row := NewRow()
	assert.NoError(t, row.AddField(INPUTS, "(0.0):A;(1.1):C"))
	assert.NoError(t, row.AddField(INPUTS, "(2.2):B"))
	//
	assert.Equal(t, []Terminal{{Coord{2, 2}, logic.Variable{Name: "B"}}}, row.Inputs())
}

func TestRowTerminalsReadOnly(t *testing.T) {
	row := NewRow()
	assert.NoError(t, row.AddField(OUTPUTS, "(0.0):A"))
	//
	outputs := row.Outputs()
	outputs[0].Pos = Coord{5, 5}
	//
	assert.Equal(t, Coord{0, 0}, row.Outputs()[0].Pos)
}

func TestRowMalformedFormula(t *testing.T) {
	row := NewRow()
	//
	err := row.AddField(OUTPUTS, "(0.0):A+")
	assert.True(t, err != nil)
	// Raw value still recorded
	value, ok := row.Get(OUTPUTS)
	assert.True(t, ok)
	assert.Equal(t, "(0.0):A+", value)
}
