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
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/blllock/gridlogic/pkg/grid"
	"github.com/blllock/gridlogic/pkg/table"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch [flags] [table_file]",
	Short: "reload a design table whenever it changes.",
	Long: `Watch a design table, reloading it whenever it is written and reporting
	the levels it defines.  This runs until interrupted.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			s        = getSettings(cmd)
			filename = getTableFile(cmd, s, args)
			debounce = s.cfg.Watch.Debounce
		)
		//
		if cmd.Flags().Changed("debounce") {
			debounce = GetDuration(cmd, "debounce")
		}
		//
		watcher, err := table.NewWatcher(filename, debounce)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		defer watcher.Close()
		//
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		//
		err = watcher.Watch(ctx, func(rows []*table.Row) {
			registry := grid.NewRegistry(rows)
			log.Infof("loaded %d rows (%d levels) from %s", len(rows), registry.Len(), filename)
			printLevels(cmd.OutOrStdout(), registry)
		})
		//
		if err != nil && ctx.Err() == nil {
			log.Error(err)
			os.Exit(2)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().Duration("debounce", 0, "delay between a change and reloading (overrides config)")
}
