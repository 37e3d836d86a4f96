package cmd

import (
	"fmt"

	"github.com/ziadkadry99/folio/internal/assets"
	"github.com/ziadkadry99/folio/internal/config"
	"github.com/ziadkadry99/folio/internal/content"
	"github.com/ziadkadry99/folio/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `folio init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// libraryOptions converts the config into asset library options.
func libraryOptions(cfg *config.Config) assets.Options {
	r := cfg.Ranges
	return assets.Options{
		Dir:        cfg.AssetDir,
		Extensions: cfg.NormalizedExtensions(),
		URLPrefix:  cfg.URLPrefix,
		Ranges: assets.Ranges{
			Hero:     assets.Range{Start: r.Hero.Start, End: r.Hero.End},
			About:    assets.Range{Start: r.About.Start, End: r.About.End},
			Projects: assets.Range{Start: r.Projects.Start, End: r.Projects.End},
			Gallery:  assets.Range{Start: r.Gallery.Start, End: r.Gallery.End},
		},
		Slots: assets.Slots(cfg.Slots),
	}
}

// openLibrary creates the asset library and builds its first index.
func openLibrary(cfg *config.Config) (*assets.Library, error) {
	lib := assets.NewLibrary(libraryOptions(cfg), logger)
	if _, err := lib.Reload(); err != nil {
		return nil, err
	}
	return lib, nil
}

// newRenderer loads the content document and prepares the page renderer.
func newRenderer(cfg *config.Config) (*site.Renderer, error) {
	c, err := content.Load(cfg.ContentFile)
	if err != nil {
		return nil, err
	}
	return site.NewRenderer(c, logger)
}
