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
package grid

import (
	"fmt"

	"github.com/blllock/gridlogic/pkg/logic"
	"github.com/blllock/gridlogic/pkg/table"
)

// PointKind identifies the role of a grid point.
type PointKind uint8

const (
	// None is an intermediate point, or one whose role is undefined.
	None PointKind = iota
	// Input is a point where a signal enters the circuit.
	Input
	// Output is a point where the circuit must produce a given signal.
	Output
)

func (k PointKind) String() string {
	switch k {
	case Input:
		return "input"
	case Output:
		return "output"
	default:
		return "none"
	}
}

// Point is a corner between tiles on a level's grid.  Input and output points
// carry the formula associated with them.
type Point struct {
	Pos  table.Coord
	Kind PointKind
	Expr logic.Expr
}

// Board holds the grid points for a level.  A level with a given width and
// height (in tiles) has (height+1) rows of (width+1) points.
type Board struct {
	width  int
	height int
	points [][]Point
}

// NewBoard constructs a board of the given dimensions, where every point has
// kind None.
func NewBoard(width int, height int) *Board {
	points := make([][]Point, height+1)
	//
	for r := range points {
		points[r] = make([]Point, width+1)
		//
		for c := range points[r] {
			points[r][c] = Point{Pos: table.Coord{Row: r, Col: c}}
		}
	}
	//
	return &Board{width, height, points}
}

// Width returns the width of this board in tiles.
func (b *Board) Width() int {
	return b.width
}

// Height returns the height of this board in tiles.
func (b *Board) Height() int {
	return b.height
}

// Point returns the grid point at a given row and column, or false if this is
// outside the board.
func (b *Board) Point(row int, col int) (*Point, bool) {
	if row < 0 || col < 0 || row > b.height || col > b.width {
		return nil, false
	}
	//
	return &b.points[row][col], true
}

// Terminals returns the input and output points of this board, in row-major
// order.
func (b *Board) Terminals() []Point {
	var terminals []Point
	//
	for _, row := range b.points {
		for _, p := range row {
			if p.Kind != None {
				terminals = append(terminals, p)
			}
		}
	}
	//
	return terminals
}

func (b *Board) mark(terminals []table.Terminal, kind PointKind) error {
	for _, t := range terminals {
		p, ok := b.Point(t.Pos.Row, t.Pos.Col)
		if !ok {
			return fmt.Errorf("%s %s on %dx%d grid: %w", kind, t.Pos, b.width, b.height, ErrOutOfBounds)
		}
		//
		p.Kind = kind
		p.Expr = t.Expr
	}
	//
	return nil
}
