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
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/blllock/gridlogic/pkg/config"
	"github.com/blllock/gridlogic/pkg/logic"
	"github.com/blllock/gridlogic/pkg/util/source"
	"github.com/blllock/gridlogic/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetInt gets an expected signed integer, or exits if an error arises.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetDuration gets an expected duration, or exits if an error arises.
func GetDuration(cmd *cobra.Command, flag string) time.Duration {
	r, err := cmd.Flags().GetDuration(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// settings combines the configuration file (if any) with the flags given on
// the command line.
type settings struct {
	cfg    *config.Config
	mode   logic.Mode
	colour bool
}

// Load the configuration, apply any overriding flags, and configure logging
// accordingly.  This exits if the configuration is invalid.
func getSettings(cmd *cobra.Command) settings {
	var (
		cfg *config.Config
		err error
	)
	//
	if filename := GetString(cmd, "config"); filename != "" {
		cfg, err = config.Load(filename)
	} else {
		cfg, err = config.FromEnv()
	}
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	// Configure log level
	log.SetLevel(cfg.Level())
	//
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	//
	mode := cfg.Mode()
	//
	if format := GetString(cmd, "format"); format != "" {
		if mode, err = logic.ParseMode(format); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	}
	//
	colour := *cfg.Colour && !GetFlag(cmd, "no-colour") && termio.IsTerminal(cmd.OutOrStdout())
	//
	return settings{cfg, mode, colour}
}

// Determine the design table to use, either from the command line or the
// configuration.  This exits if neither is given.
func getTableFile(cmd *cobra.Command, s settings, args []string) string {
	switch {
	case len(args) > 0:
		return args[0]
	case s.cfg.Table != "":
		return s.cfg.Table
	}
	//
	fmt.Println(cmd.UsageString())
	os.Exit(1)
	// unreachable
	return ""
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(out io.Writer, err *source.SyntaxError) {
	var (
		span   = err.Span()
		line   = err.FirstEnclosingLine()
		indent = span.Start() - line.Start()
		length = max(1, span.Length())
	)
	// Print error + line number
	fmt.Fprintf(out, "%s:%d: %s\n", err.SourceFile().Filename(), line.Number(), err.Message())
	// Print line
	fmt.Fprintln(out, line.String())
	// Print indent
	fmt.Fprint(out, strings.Repeat(" ", indent))
	// Print highlight
	fmt.Fprintln(out, strings.Repeat("^", length))
}
