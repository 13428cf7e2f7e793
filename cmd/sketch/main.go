// Command sketch draws a demonstration plotter sketch and exports it to SVG
// or PDF.
//
// Usage:
//
//	sketch [-config sketch.toml] [-output out.pdf] [-page a4] [-tolerance 0.05]
//
// Flags override the values of the configuration file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/export"
	"github.com/gogpu/sketch/text"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "sketch:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("sketch", flag.ContinueOnError)
	var (
		configPath = fs.String("config", "", "TOML configuration file")
		output     = fs.String("output", "", "output file (.svg or .pdf)")
		page       = fs.String("page", "", "page size preset, e.g. a4 or letterh")
		tolerance  = fs.Float64("tolerance", 0, "flattening tolerance in pixels")
		logLevel   = fs.String("log-level", "", "debug, info, warn or error")
		caption    = fs.String("text", "", "caption text")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg := defaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = loadConfig(*configPath); err != nil {
			return err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "output":
			cfg.Output = *output
		case "page":
			cfg.Page = PageConfig{Size: *page}
		case "tolerance":
			cfg.Tolerance = *tolerance
		case "log-level":
			cfg.LogLevel = *logLevel
		case "text":
			cfg.Text.Content = *caption
		}
	})

	doc, err := render(cfg)
	if err != nil {
		return err
	}
	if err := export.Save(doc, cfg.Output); err != nil {
		return err
	}
	sketch.Logger().Info("sketch saved", "path", cfg.Output, "vertices", doc.VertexCount())
	return nil
}

// render configures logging and draws the sketch described by cfg.
func render(cfg Config) (*sketch.Document, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	sketch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ps, err := cfg.PageSize()
	if err != nil {
		return nil, err
	}
	meta, err := cfg.PathMetadata()
	if err != nil {
		return nil, err
	}
	var font *text.Font
	if cfg.Text.Font != "" {
		if font, err = text.LoadFont(cfg.Text.Font); err != nil {
			return nil, err
		}
	}

	c := sketch.NewCanvas(
		sketch.WithPageSize(ps),
		sketch.WithTolerance(cfg.Tolerance),
		sketch.WithPathMetadata(meta),
	)
	c.Document().Metadata().Title = cfg.Title

	draw(c, cfg.Text, font)
	if cfg.Center {
		c.Center()
	}
	return c.Finish(), nil
}
