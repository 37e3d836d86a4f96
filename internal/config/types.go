package config

// Range is a [start, end) window into the ordered image list. An end of -1
// means "to the end".
type Range struct {
	Start int `yaml:"start" koanf:"start"`
	End   int `yaml:"end" koanf:"end"`
}

// RangesConfig holds the bounds of the four named image subsets.
type RangesConfig struct {
	Hero     Range `yaml:"hero" koanf:"hero"`
	About    Range `yaml:"about" koanf:"about"`
	Projects Range `yaml:"projects" koanf:"projects"`
	Gallery  Range `yaml:"gallery" koanf:"gallery"`
}

// Config is the top-level folio configuration, corresponding to .folio.yml.
type Config struct {
	AssetDir        string            `yaml:"asset_dir" koanf:"asset_dir"`
	Extensions      []string          `yaml:"extensions" koanf:"extensions"`
	URLPrefix       string            `yaml:"url_prefix" koanf:"url_prefix"`
	ContentFile     string            `yaml:"content_file" koanf:"content_file"`
	OutputDir       string            `yaml:"output_dir" koanf:"output_dir"`
	Port            int               `yaml:"port" koanf:"port"`
	AllowAllOrigins bool              `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	Watch           bool              `yaml:"watch" koanf:"watch"`
	LogLevel        string            `yaml:"log_level" koanf:"log_level"`
	Ranges          RangesConfig      `yaml:"ranges" koanf:"ranges"`
	Slots           map[string]string `yaml:"slots" koanf:"slots"`
}
