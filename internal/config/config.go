// Package config handles objtool configuration loading and management.
package config

// Config holds all objtool settings.
type Config struct {
	Parse   ParseConfig   `yaml:"parse"`
	Mesh    MeshConfig    `yaml:"mesh"`
	Output  OutputConfig  `yaml:"output"`
	Data    DataConfig    `yaml:"data"`
	Logging LoggingConfig `yaml:"logging"`
}

// ParseConfig holds OBJ parser settings.
type ParseConfig struct {
	Strict   bool   `yaml:"strict"`   // Reject unknown directives
	Encoding string `yaml:"encoding"` // Source text encoding (utf-8, euc-kr, latin1, windows-1252)
}

// MeshConfig holds mesh building settings.
type MeshConfig struct {
	CenterXZ         bool `yaml:"center_xz"`
	SkipInvalidFaces bool `yaml:"skip_invalid_faces"` // Drop faces with out-of-range indices instead of failing
}

// OutputConfig holds report formatting settings.
type OutputConfig struct {
	Format string `yaml:"format"` // text or yaml
}

// DataConfig holds asset lookup paths.
type DataConfig struct {
	SearchPaths []string `yaml:"search_paths"` // Directories searched for relative OBJ paths
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Parse: ParseConfig{
			Strict:   false,
			Encoding: "utf-8",
		},
		Mesh: MeshConfig{
			CenterXZ:         false,
			SkipInvalidFaces: false,
		},
		Output: OutputConfig{
			Format: "text",
		},
		Data: DataConfig{
			SearchPaths: []string{"."},
		},
		Logging: LoggingConfig{
			Level:   "warn",
			LogFile: "",
		},
	}
}
