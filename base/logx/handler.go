// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// LevelColors are the terminal colors used for each log level
// by the handler returned from [NewHandler].
var LevelColors = map[slog.Level]string{
	slog.LevelDebug: "#808080",
	slog.LevelInfo:  "#00a0ff",
	slog.LevelWarn:  "#e0a000",
	slog.LevelError: "#ff3030",
}

// NewHandler returns a new [slog.TextHandler] writing to w that
// filters messages below [UserLevel] and colors the level names
// according to the color profile of w.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: &levelVar{},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case slog.LevelKey:
				lvl, ok := a.Value.Any().(slog.Level)
				if !ok {
					return a
				}
				clr, ok := LevelColors[lvl]
				if !ok {
					return a
				}
				a.Value = slog.StringValue(out.String(lvl.String()).Foreground(out.Color(clr)).Bold().String())
			}
			return a
		},
	})
}

// SetDefaultLogger sets the default logger to one writing to
// [os.Stderr] through [NewHandler].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// levelVar is a [slog.Leveler] that always reports the current [UserLevel],
// so that changes to it take effect after the logger is installed.
type levelVar struct{}

func (levelVar) Level() slog.Level {
	return UserLevel
}
