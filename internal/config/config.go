// Package config loads vhdlsema.toml, the optional project file that names
// the work library and the sources to analyse.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config mirrors vhdlsema.toml. Command-line flags override it.
type Config struct {
	Library     LibraryConfig     `toml:"library"`
	Files       FilesConfig       `toml:"files"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
	Cache       CacheConfig       `toml:"cache"`
	Parse       ParseConfig       `toml:"parse"`
}

type LibraryConfig struct {
	Name     string `toml:"name"`
	Extended bool   `toml:"extended"`
}

type FilesConfig struct {
	Sources []string `toml:"sources"`
}

type DiagnosticsConfig struct {
	Format string `toml:"format"` // classic|pretty|json
	Max    int    `toml:"max"`
	Color  string `toml:"color"` // auto|on|off
}

type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

type ParseConfig struct {
	Jobs int `toml:"jobs"` // 0 = GOMAXPROCS
}

// Manifest is a loaded configuration together with where it came from.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Default returns the settings used without a project file.
func Default() Config {
	return Config{
		Library:     LibraryConfig{Name: "work"},
		Diagnostics: DiagnosticsConfig{Format: "classic", Max: 100, Color: "auto"},
	}
}

// Load decodes the file at path on top of Default and validates it.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %s", path, undecoded[0])
	}
	if !meta.IsDefined("library", "name") || strings.TrimSpace(cfg.Library.Name) == "" {
		return Config{}, fmt.Errorf("%s: missing [library].name", path)
	}
	switch cfg.Diagnostics.Format {
	case "classic", "pretty", "json":
	default:
		return Config{}, fmt.Errorf("%s: [diagnostics].format must be classic, pretty or json, got %q", path, cfg.Diagnostics.Format)
	}
	switch cfg.Diagnostics.Color {
	case "auto", "on", "off":
	default:
		return Config{}, fmt.Errorf("%s: [diagnostics].color must be auto, on or off, got %q", path, cfg.Diagnostics.Color)
	}
	if cfg.Diagnostics.Max < 0 || cfg.Parse.Jobs < 0 {
		return Config{}, fmt.Errorf("%s: [diagnostics].max and [parse].jobs must not be negative", path)
	}
	return cfg, nil
}

// Discover finds vhdlsema.toml above startDir and loads it. ok is false
// when there is no project file; the default configuration is returned then.
func Discover(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return &Manifest{Config: Default()}, false, nil
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, true, nil
}

// Sources returns the configured source paths resolved against the
// directory holding the project file.
func (m *Manifest) Sources() []string {
	out := make([]string, 0, len(m.Config.Files.Sources))
	for _, s := range m.Config.Files.Sources {
		p := filepath.FromSlash(s)
		if !filepath.IsAbs(p) && m.Root != "" {
			p = filepath.Join(m.Root, p)
		}
		out = append(out, p)
	}
	return out
}
