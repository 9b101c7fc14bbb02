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
	"io"
	"strings"

	"github.com/blllock/gridlogic/pkg/util"
	"github.com/blllock/gridlogic/pkg/util/source"
	log "github.com/sirupsen/logrus"
)

// Load reads a design table from a file on disk.  A missing or unreadable file
// is not an error: it is logged, and no rows are returned.
func Load(filename string) []*Row {
	stats := util.NewPerfStats()
	//
	srcfile, err := source.ReadFile(filename)
	if err != nil {
		log.Errorf("cannot read design table: %s", err)
		return nil
	}
	//
	rows := parse(srcfile)
	stats.Log("loading " + filename)
	//
	return rows
}

// Read reads a design table from a given reader in one go.  As for Load, a
// failed read is logged and gives no rows.
func Read(reader io.Reader) []*Row {
	bytes, err := io.ReadAll(reader)
	if err != nil {
		log.Errorf("cannot read design table: %s", err)
		return nil
	}
	//
	return parse(source.NewSourceFile("table", bytes))
}

// Parse a design table from text.  The first line gives the column names, and
// each subsequent line gives one row.  Values are separated by ',' and have
// surrounding whitespace removed.  Blank lines are ignored, and a line with
// more (or fewer) values than there are columns is truncated to the shorter of
// the two.  A row whose Inputs or Outputs contain a malformed formula is
// logged and dropped, leaving the remaining rows unaffected.
func Parse(text string) []*Row {
	return parse(source.NewSourceFile("table", []byte(text)))
}

func parse(srcfile *source.File) []*Row {
	var (
		lines = srcfile.Lines()
		rows  []*Row
	)
	//
	if len(lines) < 2 {
		return nil
	}
	//
	header := splitLine(lines[0].String())
	//
	for _, line := range lines[1:] {
		text := strings.TrimSpace(line.String())
		//
		if text == "" {
			continue
		}
		//
		if row, err := parseRow(header, splitLine(text)); err != nil {
			log.Errorf("%s:%d: dropping row: %s", srcfile.Filename(), line.Number(), err)
		} else {
			rows = append(rows, row)
		}
	}
	//
	log.Debugf("loaded %d row(s) from %s", len(rows), srcfile.Filename())
	//
	return rows
}

func parseRow(header []string, values []string) (*Row, error) {
	row := NewRow()
	//
	for i := 0; i < len(header) && i < len(values); i++ {
		if err := row.AddField(header[i], values[i]); err != nil {
			return nil, err
		}
	}
	//
	return row, nil
}

func splitLine(line string) []string {
	values := strings.Split(line, ",")
	//
	for i := range values {
		values[i] = strings.TrimSpace(values[i])
	}
	//
	return values
}
