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
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// INPUTS is the column holding a level's input terminals.
const INPUTS = "Inputs"

// OUTPUTS is the column holding a level's output terminals.
const OUTPUTS = "Outputs"

// Row is a single record from a design table.  It maps column names to their
// (trimmed) values, remembering the order in which columns were added.  The
// Inputs and Outputs columns are additionally parsed into terminals when they
// are added.
type Row struct {
	fields  *linkedhashmap.Map
	inputs  []Terminal
	outputs []Terminal
}

// NewRow constructs an empty row.
func NewRow() *Row {
	return &Row{fields: linkedhashmap.New()}
}

// AddField sets the value of a given column in this row.  If the column
// already exists, its value is replaced but its position is retained.  Adding
// the Inputs or Outputs column parses its terminals, and an error is returned
// if any formula is malformed.  In such case, the field itself is still
// recorded.
func (r *Row) AddField(column string, value string) error {
	var err error
	//
	r.fields.Put(column, value)
	//
	switch column {
	case INPUTS:
		r.inputs, err = ParseTerminals(value)
	case OUTPUTS:
		r.outputs, err = ParseTerminals(value)
	}
	//
	if err != nil {
		return fmt.Errorf("column %s: %w", column, err)
	}
	//
	return nil
}

// Get returns the raw value of a given column, or false if the row has no such
// column.
func (r *Row) Get(column string) (string, bool) {
	if value, ok := r.fields.Get(column); ok {
		return value.(string), true
	}
	//
	return "", false
}

// Int returns the value of a given column as an integer.  This returns false
// if the row has no such column, or its value is not an integer.
func (r *Row) Int(column string) (int, bool) {
	if value, ok := r.Get(column); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n, true
		}
	}
	//
	return 0, false
}

// Float returns the value of a given column as a floating point number.  This
// returns false if the row has no such column, or its value is not a number.
func (r *Row) Float(column string) (float64, bool) {
	if value, ok := r.Get(column); ok {
		if n, err := strconv.ParseFloat(value, 64); err == nil {
			return n, true
		}
	}
	//
	return 0, false
}

// Columns returns the names of all columns in this row, in the order they were
// added.
func (r *Row) Columns() []string {
	var columns = make([]string, 0, r.fields.Size())
	//
	for _, key := range r.fields.Keys() {
		columns = append(columns, key.(string))
	}
	//
	return columns
}

// Inputs returns the input terminals declared in this row.
func (r *Row) Inputs() []Terminal {
	return slices.Clone(r.inputs)
}

// Outputs returns the output terminals declared in this row.
func (r *Row) Outputs() []Terminal {
	return slices.Clone(r.outputs)
}

func (r *Row) String() string {
	var builder strings.Builder
	//
	it := r.fields.Iterator()
	for i := 0; it.Next(); i++ {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(fmt.Sprintf("[%s, %s]", it.Key(), it.Value()))
	}
	//
	return builder.String()
}
