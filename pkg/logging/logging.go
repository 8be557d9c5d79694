/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Options controls logger construction.
type Options struct {
	// Debug forces the level to debug regardless of LOG_LEVEL.
	Debug bool

	// JSON selects the JSON handler instead of the text handler.
	JSON bool
}

// Setup configures the process-wide default slog logger.
// Level resolution order: Debug option, LOG_LEVEL environment variable, info.
func Setup(opts Options) {
	level := slog.LevelInfo
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		level = parseLevel(env)
	}
	if opts.Debug {
		level = slog.LevelDebug
	}

	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(os.Stderr, handlerOpts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, handlerOpts)
	}

	slog.SetDefault(slog.New(handler))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
