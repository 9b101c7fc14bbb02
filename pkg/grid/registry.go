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
	"errors"
	"fmt"
	"slices"

	"github.com/blllock/gridlogic/pkg/table"
	log "github.com/sirupsen/logrus"
)

// ID is the column identifying a level.
const ID = "ID"

// WIDTH is the column giving the number of tiles across a level.
const WIDTH = "Width"

// HEIGHT is the column giving the number of tiles down a level.
const HEIGHT = "Height"

// MAX_DIMENSION is the largest width or height (in tiles) of any level.
const MAX_DIMENSION = 1024

// Errors
var (
	ErrUnknownLevel  = errors.New("unknown level")
	ErrBadDimensions = errors.New("missing or invalid level dimensions")
	ErrOutOfBounds   = errors.New("terminal outside of grid")
)

// Registry provides access to the levels of a design table by their ID.  A
// registry is constructed once, after loading, and is not modified thereafter.
type Registry struct {
	levels map[int]*table.Row
}

// NewRegistry indexes a set of rows by their ID column.  Rows without an
// integer ID are ignored and, where two rows have the same ID, the later one
// is used.
func NewRegistry(rows []*table.Row) *Registry {
	levels := make(map[int]*table.Row, len(rows))
	//
	for _, row := range rows {
		if id, ok := row.Int(ID); ok {
			levels[id] = row
		} else {
			log.Debugf("ignoring row without valid ID: %s", row)
		}
	}
	//
	return &Registry{levels}
}

// Len returns the number of levels in this registry.
func (r *Registry) Len() int {
	return len(r.levels)
}

// IDs returns the IDs of all levels in ascending order.
func (r *Registry) IDs() []int {
	ids := make([]int, 0, len(r.levels))
	//
	for id := range r.levels {
		ids = append(ids, id)
	}
	//
	slices.Sort(ids)
	//
	return ids
}

// Row returns the row for a given level, or false if there is no such level.
func (r *Registry) Row(id int) (*table.Row, bool) {
	row, ok := r.levels[id]
	return row, ok
}

// Board constructs the grid points for a given level, marking each declared
// input and output.
func (r *Registry) Board(id int) (*Board, error) {
	row, ok := r.levels[id]
	if !ok {
		return nil, fmt.Errorf("level %d: %w", id, ErrUnknownLevel)
	}
	//
	width, wok := row.Int(WIDTH)
	height, hok := row.Int(HEIGHT)
	//
	if !wok || !hok || width < 0 || height < 0 || width > MAX_DIMENSION || height > MAX_DIMENSION {
		return nil, fmt.Errorf("level %d: %w", id, ErrBadDimensions)
	}
	//
	board := NewBoard(width, height)
	//
	if err := board.mark(row.Inputs(), Input); err != nil {
		return nil, fmt.Errorf("level %d: %w", id, err)
	} else if err := board.mark(row.Outputs(), Output); err != nil {
		return nil, fmt.Errorf("level %d: %w", id, err)
	}
	//
	return board, nil
}
