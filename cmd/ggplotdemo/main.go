// Command ggplotdemo renders a demonstration chart through the ggplot
// adapter into a PNG file.
//
// Usage:
//
//	ggplotdemo [-config scene.toml] [-output chart.png] [-scale 1.5] [-watch]
//
// With -watch the config is reloaded whenever the file changes, until
// interrupted. Each reload applies the log settings again and renders.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/gogpu/ggplot"
	"github.com/gogpu/ggplot/internal/config"
)

func main() {
	var (
		configPath = flag.String("config", "", "scene file (.toml, .yaml)")
		output     = flag.String("output", "", "output file, overrides the config")
		width      = flag.Int("width", 0, "image width, overrides the config")
		height     = flag.Int("height", 0, "image height, overrides the config")
		scale      = flag.Float64("scale", 0, "view scale, overrides the config")
		watch      = flag.Bool("watch", false, "reload logging and re-render when the config file changes")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	o := overrides{output: *output, width: *width, height: *height, scale: *scale, verbose: *verbose}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, *configPath, o, *watch); err != nil {
		fmt.Fprintln(os.Stderr, "ggplotdemo:", err)
		os.Exit(1)
	}
}

// overrides are flag values that take precedence over the config file.
type overrides struct {
	output        string
	width, height int
	scale         float64
	verbose       bool
}

func (o overrides) apply(cfg *config.Config) {
	if o.output != "" {
		cfg.Output = o.output
	}
	if o.width > 0 {
		cfg.Width = o.width
	}
	if o.height > 0 {
		cfg.Height = o.height
	}
	if o.scale != 0 {
		cfg.View.Scale = o.scale
	}
	if o.verbose {
		cfg.Log.Level = "debug"
	}
}

// load reads the config file, or the defaults when path is empty, and
// applies the flag overrides.
func load(path string, o overrides) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return config.Config{}, err
		}
	}
	o.apply(&cfg)
	return cfg, cfg.Validate()
}

// session is the state a run carries from one render to the next.
type session struct {
	path     string
	o        overrides
	closeLog func()
}

// reload loads the config, reinstalls logging from it and renders.
// The previous log file is closed only once the new one is in place.
func (s *session) reload() error {
	cfg, err := load(s.path, s.o)
	if err != nil {
		return err
	}
	closeLog, err := setupLogging(cfg.Log)
	if err != nil {
		return err
	}
	s.closeLog()
	s.closeLog = closeLog
	return render(cfg)
}

func run(ctx context.Context, path string, o overrides, watch bool) error {
	if watch && path == "" {
		return errors.New("-watch needs -config")
	}

	s := &session{path: path, o: o, closeLog: func() {}}
	defer func() { s.closeLog() }()

	if err := s.reload(); err != nil {
		return err
	}
	if !watch {
		return nil
	}

	return watchConfig(ctx, path, func() {
		if err := s.reload(); err != nil {
			ggplot.Logger().Error("reload failed", "err", err)
		}
	})
}
