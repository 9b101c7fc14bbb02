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
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// Watcher reloads a design table whenever the underlying file changes.  The
// directory containing the file is watched, rather than the file itself, so
// that editors which save by replacing the file are handled.
type Watcher struct {
	filename string
	debounce time.Duration
	watcher  *fsnotify.Watcher
}

// NewWatcher constructs a watcher for a given design table.  Changes arriving
// within the debounce interval of each other result in a single reload.
func NewWatcher(filename string, debounce time.Duration) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	//
	if err := watcher.Add(filepath.Dir(filename)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filename, err)
	}
	//
	return &Watcher{filepath.Clean(filename), debounce, watcher}, nil
}

// Watch loads the table once, and then again after each change, passing the
// rows to onReload each time.  Calls to onReload never overlap, and none is
// made once Watch has returned.  This blocks until the context is cancelled
// or the watcher is closed.
func (w *Watcher) Watch(ctx context.Context, onReload func([]*Row)) error {
	var (
		mu    sync.Mutex
		timer *time.Timer
		// Set once Watch is returning, after which no reload may start.
		closed bool
	)
	//
	reload := func() {
		mu.Lock()
		defer mu.Unlock()
		//
		if !closed {
			onReload(Load(w.filename))
		}
	}
	// Initial load
	reload()
	//
	defer func() {
		mu.Lock()
		closed = true
		//
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()
	//
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			} else if !w.relevant(event) {
				continue
			}
			//
			log.Debugf("%s: %s", event.Name, event.Op)
			//
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			//
			timer = time.AfterFunc(w.debounce, reload)
			mu.Unlock()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			// Keep watching despite errors
			log.Errorf("watching %s: %s", w.filename, err)
		}
	}
}

// Close stops watching for changes.
func (w *Watcher) Close() error {
	if err := w.watcher.Close(); err != nil && !errors.Is(err, fsnotify.ErrClosed) {
		return err
	}
	//
	return nil
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	return filepath.Clean(event.Name) == w.filename &&
		event.Op.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove)
}
