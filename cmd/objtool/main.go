// objtool is a CLI utility for inspecting Wavefront OBJ files.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/objkit/internal/assets"
	"github.com/Faultbox/objkit/internal/config"
	"github.com/Faultbox/objkit/internal/logger"
	"github.com/Faultbox/objkit/pkg/encoding"
)

// errUsage marks bad invocations; the usage text has already been printed.
var errUsage = errors.New("usage")

type command func(w io.Writer, cfg *config.Config, args []string) error

var commands = map[string]command{
	"info":     cmdInfo,
	"dump":     cmdDump,
	"mesh":     cmdMesh,
	"validate": cmdValidate,
	"config":   cmdConfig,
}

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	name := os.Args[1]
	switch name {
	case "help", "-h", "--help":
		printUsage(os.Stdout)
		return
	}

	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", name)
		printUsage(os.Stderr)
		os.Exit(1)
	}

	if err := config.ParseFlags(os.Args[2:]); err != nil {
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Debug("objtool starting", zap.String("command", name), zap.Strings("args", config.Args()))
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := cmd(os.Stdout, cfg, config.Args()); err != nil {
		if !errors.Is(err, errUsage) {
			logger.Error("command failed", zap.String("command", name), zap.Error(err))
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `objtool - Wavefront OBJ inspection utility

Usage:
  objtool <command> [flags] <file.obj>

Commands:
  info <file.obj>       Show objects and element counts
  dump <file.obj>       Print every parsed element
  mesh <file.obj>       Build the render mesh of a single-object file
  validate <file.obj>   Strict parse and check face indices
  config [save [path]]  Print the effective config, or save it

Flags:
  -config <path>        Config file (default ./objtool.yaml)
  -strict               Reject unknown directives
  -encoding <name>      Source encoding (%s)
  -format <text|yaml>   Report format for info and mesh
  -center               Center meshes on X/Z
  -skip-invalid         Drop faces with out-of-range indices in mesh
  -debug                Enable debug logging
  -log <path>           Also log to a rotating file

Examples:
  objtool info model.obj
  objtool info -format yaml model.obj
  objtool mesh -center models/chair.obj
  objtool validate -encoding euc-kr map_object.obj
  objtool config -skip-invalid save
`, strings.Join(encoding.Names, ", "))
}

// newManager builds an asset manager over the configured search paths.
// Search paths that do not exist are skipped with a warning.
func newManager(cfg *config.Config, strict bool) (*assets.Manager, error) {
	m, err := assets.NewManager(assets.Options{
		Encoding: cfg.Parse.Encoding,
		Strict:   strict,
	})
	if err != nil {
		return nil, err
	}

	for _, dir := range cfg.Data.SearchPaths {
		if err := m.AddSearchPath(dir); err != nil {
			logger.Warn("skipping search path", zap.String("dir", dir), zap.Error(err))
		}
	}
	return m, nil
}

func fileArg(args []string, usage string) (string, error) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: "+usage)
		return "", errUsage
	}
	return args[0], nil
}
