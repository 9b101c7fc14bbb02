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
	"bytes"
	"strings"
	"testing"

	"github.com/blllock/gridlogic/pkg/util/assert"
	log "github.com/sirupsen/logrus"
)

func Test_PerfStats_01(t *testing.T) {
	out := captureLog(t, log.InfoLevel)
	//
	stats := NewPerfStats()
	assert.False(t, stats.enabled)
	stats.Log("loading")
	//
	assert.Equal(t, "", out.String())
}

func Test_PerfStats_02(t *testing.T) {
	out := captureLog(t, log.DebugLevel)
	//
	stats := NewPerfStats()
	assert.True(t, stats.enabled)
	stats.Log("loading levels.csv")
	//
	assert.True(t, strings.Contains(out.String(), "loading levels.csv took"), "%s", out.String())
}

// ===================================================================
// Framework
// ===================================================================

func captureLog(t *testing.T, level log.Level) *bytes.Buffer {
	t.Helper()
	//
	var (
		out      bytes.Buffer
		oldLevel = log.GetLevel()
		oldOut   = log.StandardLogger().Out
	)
	//
	log.SetLevel(level)
	log.SetOutput(&out)
	//
	t.Cleanup(func() {
		log.SetLevel(oldLevel)
		log.SetOutput(oldOut)
	})
	//
	return &out
}
