package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap/zapcore"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (FOLIO_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: FOLIO_ASSET_DIR -> asset_dir, etc.
	if err := k.Load(env.Provider("FOLIO_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "FOLIO_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validExtensions is the set of image extensions folio knows how to serve.
var validExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
	".avif": true,
	".svg":  true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.AssetDir == "" {
		return fmt.Errorf("asset_dir is required")
	}

	if len(c.Extensions) == 0 {
		return fmt.Errorf("extensions must list at least one image extension")
	}
	for _, ext := range c.Extensions {
		if !validExtensions[normalizeExt(ext)] {
			return fmt.Errorf("invalid extension %q", ext)
		}
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 0 and 65535")
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: must be one of debug, info, warn, error", c.LogLevel)
	}

	for name, r := range map[string]Range{
		"hero":     c.Ranges.Hero,
		"about":    c.Ranges.About,
		"projects": c.Ranges.Projects,
		"gallery":  c.Ranges.Gallery,
	} {
		if err := r.validate(); err != nil {
			return fmt.Errorf("ranges.%s: %w", name, err)
		}
	}

	for slot, key := range c.Slots {
		if strings.TrimSpace(slot) == "" || strings.TrimSpace(key) == "" {
			return fmt.Errorf("slots: empty slot name or key (%q: %q)", slot, key)
		}
	}

	return nil
}

func (r Range) validate() error {
	if r.Start < 0 {
		return fmt.Errorf("start must be non-negative")
	}
	if r.End != -1 && r.End < r.Start {
		return fmt.Errorf("end %d is before start %d", r.End, r.Start)
	}
	return nil
}

// NormalizedExtensions returns the configured extensions lowercased with a
// leading dot.
func (c *Config) NormalizedExtensions() []string {
	out := make([]string, 0, len(c.Extensions))
	for _, ext := range c.Extensions {
		out = append(out, normalizeExt(ext))
	}
	return out
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// splitAndTrim splits a comma-separated string and trims each element,
// dropping empties.
func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
