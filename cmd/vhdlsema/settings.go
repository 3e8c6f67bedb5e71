package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vhdlsema/internal/config"
)

// settings is vhdlsema.toml with command-line overrides applied.
type settings struct {
	manifest *config.Manifest
	files    []string
	library  string
	extended bool
	format   string
	color    string
	maxDiags int
	jobs     int
	cache    bool
	cacheDir string
	timings  bool
}

func loadSettings(cmd *cobra.Command, args []string) (*settings, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	manifest, _, err := config.Discover(wd)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg := manifest.Config
	st := &settings{
		manifest: manifest,
		files:    manifest.Sources(),
		library:  cfg.Library.Name,
		extended: cfg.Library.Extended,
		format:   cfg.Diagnostics.Format,
		color:    cfg.Diagnostics.Color,
		maxDiags: cfg.Diagnostics.Max,
		jobs:     cfg.Parse.Jobs,
		cache:    cfg.Cache.Enabled,
		cacheDir: cfg.Cache.Dir,
	}
	if len(args) > 0 {
		st.files = args
	}

	flags := cmd.Root().PersistentFlags()
	if flags.Changed("format") {
		if st.format, err = flags.GetString("format"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("color") {
		if st.color, err = flags.GetString("color"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("max-diagnostics") {
		if st.maxDiags, err = flags.GetInt("max-diagnostics"); err != nil {
			return nil, err
		}
	}
	if st.timings, err = flags.GetBool("timings"); err != nil {
		return nil, err
	}

	switch st.format {
	case "classic", "pretty", "json":
	default:
		return nil, fmt.Errorf("unknown format %q (must be classic, pretty or json)", st.format)
	}
	switch st.color {
	case "auto", "on", "off":
	default:
		return nil, fmt.Errorf("unknown color mode %q (must be auto, on or off)", st.color)
	}
	if st.maxDiags < 0 {
		return nil, fmt.Errorf("--max-diagnostics must not be negative")
	}
	return st, nil
}
