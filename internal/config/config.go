// Package config loads the scene description rendered by ggplotdemo.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggplot"
)

// ErrUnsupportedFormat is returned for config files that are neither TOML
// nor YAML.
var ErrUnsupportedFormat = errors.New("config: unsupported file format")

// Config describes one rendered chart.
type Config struct {
	// Output is the PNG file written.
	Output string `toml:"output" yaml:"output"`
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
	// Margin insets the chart bounds from the image edges.
	Margin float64 `toml:"margin" yaml:"margin"`
	Title  string  `toml:"title" yaml:"title"`

	View       View       `toml:"view" yaml:"view"`
	Background Background `toml:"background" yaml:"background"`
	Fonts      []Font     `toml:"fonts" yaml:"fonts"`
	Log        Log        `toml:"log" yaml:"log"`
}

// View is the initial pan/zoom state.
type View struct {
	OffsetX int     `toml:"offset_x" yaml:"offset_x"`
	OffsetY int     `toml:"offset_y" yaml:"offset_y"`
	Scale   float64 `toml:"scale" yaml:"scale"`
}

// Background is an optional image painted behind the chart.
type Background struct {
	Image string `toml:"image" yaml:"image"`
	// Size is an image size policy, e.g. "fit" or "ratio:16:9".
	Size string `toml:"size" yaml:"size"`
}

// Font is a font file registered as a named family.
type Font struct {
	// Name may be empty to use the family declared by the font.
	Name string `toml:"name" yaml:"name"`
	Path string `toml:"path" yaml:"path"`
}

// Log configures diagnostics output.
type Log struct {
	Level string `toml:"level" yaml:"level"`
	// File, when set, receives logs through a rotating writer.
	File       string `toml:"file" yaml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups" yaml:"max_backups"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Output: "chart.png",
		Width:  800,
		Height: 600,
		Margin: 20,
		Title:  "ggplot demo",
		View:   View{Scale: 1},
		Background: Background{
			Size: "fill",
		},
		Log: Log{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// Load reads a TOML (.toml) or YAML (.yaml, .yml) file on top of the
// defaults and validates the result.
func Load(path string) (Config, error) {
	// #nosec G304 -- config path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read: %w", err)
	}
	return Parse(filepath.Ext(path), data)
}

// Parse decodes data in the format named by ext (".toml", ".yaml", ".yml").
func Parse(ext string, data []byte) (Config, error) {
	cfg := Default()

	switch strings.ToLower(ext) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode toml: %w", err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("config: decode yaml: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration can be rendered.
func (c Config) Validate() error {
	var errs []error
	if c.Output == "" {
		errs = append(errs, errors.New("config: output must not be empty"))
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: size must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.Margin < 0 || 2*c.Margin >= float64(min(c.Width, c.Height)) {
		errs = append(errs, fmt.Errorf("config: margin %g does not fit a %dx%d image", c.Margin, c.Width, c.Height))
	}
	if _, err := c.Background.Policy(); err != nil {
		errs = append(errs, fmt.Errorf("config: background: %w", err))
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, fmt.Errorf("config: log level: %w", err))
	}
	for i, f := range c.Fonts {
		if f.Path == "" {
			errs = append(errs, fmt.Errorf("config: fonts[%d]: path must not be empty", i))
		}
	}
	return errors.Join(errs...)
}

// Policy parses the background size policy. An empty size means fill.
func (b Background) Policy() (ggplot.ImageSize, error) {
	if b.Size == "" {
		return ggplot.SizeFill(), nil
	}
	return ggplot.ParseImageSize(b.Size)
}

// SlogLevel parses the log level. An empty level means info.
func (l Log) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, err
	}
	return level, nil
}

// GGView converts the view section to a ggplot.View.
func (v View) GGView() ggplot.View {
	return ggplot.View{X: v.OffsetX, Y: v.OffsetY, Scale: v.Scale}
}
