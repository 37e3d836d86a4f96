package config

// DefaultExtensions are the image extensions indexed by default.
var DefaultExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		AssetDir:    "assets/images",
		Extensions:  append([]string(nil), DefaultExtensions...),
		URLPrefix:   "assets/images",
		ContentFile: "",
		OutputDir:   "dist",
		Port:        8080,
		LogLevel:    "info",
		Ranges: RangesConfig{
			Hero:     Range{Start: 0, End: 1},
			About:    Range{Start: 1, End: 4},
			Projects: Range{Start: 4, End: 8},
			Gallery:  Range{Start: 8, End: -1},
		},
		Slots: map[string]string{
			"heroPortrait":  "profile",
			"aboutPortrait": "profile",
		},
	}
}
