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
	"strconv"
	"strings"

	"github.com/blllock/gridlogic/pkg/logic"
	log "github.com/sirupsen/logrus"
)

// Coord identifies a point on a level's grid by row and column, both counting
// from zero.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d.%d)", c.Row, c.Col)
}

// Terminal is an input or output declared on a level, consisting of a grid
// position and the formula associated with it.
type Terminal struct {
	Pos  Coord
	Expr logic.Expr
}

// Format renders a terminal in the notation used within a table cell, for
// example "(0.1):A+B".
func (t Terminal) Format(mode logic.Mode) string {
	return fmt.Sprintf("%s:%s", t.Pos, logic.Format(t.Expr, mode))
}

// ParseTerminals parses the contents of an Inputs or Outputs cell.  This is a
// list of entries separated by ';', each of the form "(row.col):formula".  An
// entry which does not have this shape (e.g. a missing or repeated ':', or a
// position which is not a pair of non-negative integers) is skipped without
// affecting the others.  However, an entry whose formula cannot be parsed is
// an error, since there is no sensible formula to substitute for it.
func ParseTerminals(field string) ([]Terminal, error) {
	var terminals []Terminal
	//
	for _, entry := range strings.Split(field, ";") {
		entry = strings.TrimSpace(entry)
		//
		if entry == "" {
			continue
		}
		//
		split := strings.Split(entry, ":")
		if len(split) != 2 {
			log.Debugf("skipping malformed terminal \"%s\"", entry)
			continue
		}
		//
		pos, ok := parseCoord(split[0])
		if !ok {
			log.Debugf("skipping terminal with malformed position \"%s\"", entry)
			continue
		}
		//
		expr, err := logic.Parse(split[1])
		if err != nil {
			return nil, fmt.Errorf("terminal %s: %w", pos, err)
		}
		//
		terminals = append(terminals, Terminal{pos, expr})
	}
	//
	return terminals, nil
}

// Parse a position such as "(1.2)" or "( 1 . 2 )".
func parseCoord(text string) (Coord, bool) {
	text = strings.Trim(strings.TrimSpace(text), "()")
	//
	split := strings.Split(text, ".")
	if len(split) != 2 {
		return Coord{}, false
	}
	//
	row, err1 := strconv.Atoi(strings.TrimSpace(split[0]))
	col, err2 := strconv.Atoi(strings.TrimSpace(split[1]))
	//
	if err1 != nil || err2 != nil || row < 0 || col < 0 {
		return Coord{}, false
	}
	//
	return Coord{row, col}, true
}
