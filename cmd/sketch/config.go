package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/sketch"
	"github.com/pelletier/go-toml/v2"
)

// Config is the content of the TOML configuration file.
type Config struct {
	Output    string       `toml:"output"`
	Title     string       `toml:"title"`
	Tolerance float64      `toml:"tolerance"`
	Center    bool         `toml:"center"`
	LogLevel  string       `toml:"log_level"`
	Page      PageConfig   `toml:"page"`
	Stroke    StrokeConfig `toml:"stroke"`
	Text      TextConfig   `toml:"text"`
}

// PageConfig selects the page size, either by preset name or explicitly in
// millimeters. An explicit size wins over the preset.
type PageConfig struct {
	Size      string  `toml:"size"`
	WidthMM   float64 `toml:"width_mm"`
	HeightMM  float64 `toml:"height_mm"`
	Landscape bool    `toml:"landscape"`
}

// StrokeConfig holds the default stroke.
type StrokeConfig struct {
	Color string  `toml:"color"`
	Width float64 `toml:"width"`
}

// TextConfig configures the caption layer.
type TextConfig struct {
	Content string  `toml:"content"`
	Size    float64 `toml:"size"`
	// Font is a path to a TTF/OTF file; empty selects the built-in font.
	Font string `toml:"font"`
}

func defaultConfig() Config {
	return Config{
		Output:    "sketch.svg",
		Title:     "sketch demo",
		Tolerance: sketch.DefaultTolerance,
		Center:    true,
		LogLevel:  "warn",
		Page:      PageConfig{Size: "a5", Landscape: true},
		Stroke:    StrokeConfig{Color: "#000000", Width: sketch.DefaultStrokeWidth},
		Text:      TextConfig{Content: "sketch", Size: 36},
	}
}

// loadConfig reads path over the defaults. Unknown keys are rejected so that
// typos do not go unnoticed.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(&cfg); err != nil {
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			return cfg, fmt.Errorf("config: %s: unknown keys:\n%s", path, serr.String())
		}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return cfg, fmt.Errorf("config: %s:%d:%d: %w", path, row, col, err)
		}
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// PageSize resolves the configured page size.
func (c Config) PageSize() (sketch.PageSize, error) {
	var ps sketch.PageSize
	switch {
	case c.Page.WidthMM > 0 && c.Page.HeightMM > 0:
		ps = sketch.PageSizeMM(c.Page.WidthMM, c.Page.HeightMM)
	case c.Page.Size != "":
		var ok bool
		ps, ok = sketch.PageSizeByName(c.Page.Size)
		if !ok {
			return ps, fmt.Errorf("config: unknown page size %q (known: %s)",
				c.Page.Size, strings.Join(sketch.PageSizeNames(), ", "))
		}
	default:
		ps = sketch.DefaultPageSize()
	}
	if c.Page.Landscape {
		ps = ps.Landscape()
	}
	return ps, nil
}

// PathMetadata resolves the configured default stroke.
func (c Config) PathMetadata() (sketch.PathMetadata, error) {
	meta := sketch.DefaultPathMetadata()
	if c.Stroke.Color != "" {
		col, err := sketch.Hex(c.Stroke.Color)
		if err != nil {
			return meta, fmt.Errorf("config: stroke color: %w", err)
		}
		meta.Color = col
	}
	if c.Stroke.Width > 0 {
		meta.StrokeWidth = c.Stroke.Width
	}
	return meta, nil
}

// Level resolves the configured log level.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, fmt.Errorf("config: log_level: %w", err)
	}
	return l, nil
}
