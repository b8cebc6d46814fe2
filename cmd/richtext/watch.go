// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"cogentcore.org/textlayout/base/errors"
	"github.com/fsnotify/fsnotify"
)

// watch lays out the file, and then again each time it is written,
// until the context is done. The directory of the file is watched,
// so that editors that replace the file on save are followed.
func (r *runner) watch(ctx context.Context, fname string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	abs, err := filepath.Abs(fname)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	errors.Log(r.run(fname))
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs || !changed(event) {
				continue
			}
			slog.Info("richtext: file changed", "file", fname, "op", event.Op)
			fmt.Fprintln(r.w)
			errors.Log(r.run(fname))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("richtext: watcher error", "err", err)
		}
	}
}

// changed returns true if the event changes the contents of the file.
func changed(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}
