package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/internal/config"
)

// setupLogging installs a text logger for ggplot and gg. Logs go to stderr,
// or to a rotating file when cfg.File is set. The returned func closes the
// file.
func setupLogging(cfg config.Log) (func(), error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}

	var w io.Writer = os.Stderr
	closer := func() {}
	if cfg.File != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
		}
		w = lj
		closer = func() { _ = lj.Close() }
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	ggplot.SetLogger(logger)
	gg.SetLogger(logger)
	return closer, nil
}
