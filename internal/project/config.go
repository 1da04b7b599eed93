// Package project locates and loads the per-project formatter config.
// A project is any directory tree with a .sexpfmt.toml at its root; files
// outside a project run on defaults.
package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the merged view of .sexpfmt.toml. Zero values mean "unset":
// Load fills defaults after decoding, so callers never see an empty
// extension list.
type Config struct {
	Format FormatConfig `toml:"format"`
	Files  FilesConfig  `toml:"files"`
	Run    RunConfig    `toml:"run"`
}

type FormatConfig struct {
	// Compact включает short-form раскладку (см. format.Options.CompactSave).
	Compact bool `toml:"compact"`
}

type FilesConfig struct {
	// Extensions lists filename extensions collected when a directory is
	// passed on the command line. Entries are stored lowercase with the
	// leading dot.
	Extensions []string `toml:"extensions"`
}

type RunConfig struct {
	// Jobs caps parallel workers; 0 means one worker per CPU.
	Jobs int `toml:"jobs"`
}

// DefaultExtensions covers the file family the canonical layout targets.
func DefaultExtensions() []string {
	return []string{
		".kicad_pcb",
		".kicad_sch",
		".kicad_mod",
		".kicad_sym",
		".kicad_wks",
		".kicad_dru",
	}
}

// Default returns the config used when no .sexpfmt.toml is found.
func Default() Config {
	return Config{
		Files: FilesConfig{Extensions: DefaultExtensions()},
	}
}

// Load decodes the config at path and normalizes it.
func Load(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	for _, key := range meta.Undecoded() {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, key.String())
	}
	if err := cfg.normalize(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromDir walks up from startDir, loading the nearest config or the
// defaults when none exists. root is the project root (config's directory)
// or "" when running on defaults.
func LoadFromDir(startDir string) (cfg Config, root string, err error) {
	path, ok, err := FindConfigToml(startDir)
	if err != nil {
		return Config{}, "", err
	}
	if !ok {
		return Default(), "", nil
	}
	cfg, err = Load(path)
	if err != nil {
		return Config{}, "", err
	}
	return cfg, filepath.Dir(path), nil
}

func (c *Config) normalize() error {
	if c.Run.Jobs < 0 {
		return fmt.Errorf("[run].jobs must be >= 0, got %d", c.Run.Jobs)
	}
	if len(c.Files.Extensions) == 0 {
		c.Files.Extensions = DefaultExtensions()
		return nil
	}
	for i, ext := range c.Files.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			return fmt.Errorf("[files].extensions contains an empty entry")
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Files.Extensions[i] = ext
	}
	return nil
}

// MatchesExtension reports whether path carries one of the configured
// extensions.
func (c *Config) MatchesExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range c.Files.Extensions {
		if ext == want {
			return true
		}
	}
	return false
}
