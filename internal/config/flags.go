package config

import (
	"flag"
	"strings"

	"github.com/Faultbox/objkit/pkg/encoding"
)

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagStrict   = flag.Bool("strict", false, "Reject unknown OBJ directives")
	flagEncoding = flag.String("encoding", "", "Source text encoding ("+strings.Join(encoding.Names, ", ")+")")
	flagCenter   = flag.Bool("center", false, "Center meshes on X/Z")
	flagSkip     = flag.Bool("skip-invalid", false, "Drop faces with out-of-range indices when building meshes")
	flagFormat   = flag.String("format", "", "Report format (text, yaml)")
	flagLogFile  = flag.String("log", "", "Log file path")
)

// ParseFlags parses command-line flags from args. Call this early in main().
func ParseFlags(args []string) error {
	return flag.CommandLine.Parse(args)
}

// Args returns the non-flag arguments left after ParseFlags.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagStrict {
		cfg.Parse.Strict = true
	}
	if *flagEncoding != "" {
		cfg.Parse.Encoding = *flagEncoding
	}
	if *flagCenter {
		cfg.Mesh.CenterXZ = true
	}
	if *flagSkip {
		cfg.Mesh.SkipInvalidFaces = true
	}
	if *flagFormat != "" {
		cfg.Output.Format = *flagFormat
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
