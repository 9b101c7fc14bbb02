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
package util

import (
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfStats records the time and memory used by some task, such as loading a
// design table.  Nothing is measured unless debug logging is enabled when the
// snapshot is taken.
type PerfStats struct {
	enabled bool
	started time.Time
	// Bytes allocated before the task began
	allocated uint64
}

// NewPerfStats takes a snapshot of the clock and memory allocated so far.
func NewPerfStats() *PerfStats {
	if !log.IsLevelEnabled(log.DebugLevel) {
		return &PerfStats{}
	}
	//
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	return &PerfStats{true, time.Now(), m.TotalAlloc}
}

// Log the time taken, and memory allocated, since this snapshot was taken.
func (p *PerfStats) Log(task string) {
	if !p.enabled {
		return
	}
	//
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	log.Debugf("%s took %s using %dKb", task, time.Since(p.started).Round(time.Microsecond),
		(m.TotalAlloc-p.allocated)/1024)
}
