package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/landmarkgrid/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("landmarkgrid", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
LandmarkGrid - builds an interactive X3D comparison grid of facial landmarks.

Usage:
  landmarkgrid [options] [ASSET_ROOT]

Arguments:
  ASSET_ROOT
    Directory scanned recursively for landmark model files.

Options:
`)
		flagSet.PrintDefaults()
	}

	rootFlag := flagSet.String("root", "", "Directory scanned for asset files.")
	prefixFlag := flagSet.String("prefix", "", "Required file name prefix (default \"Jin\").")
	extFlag := flagSet.String("ext", "", "Required file extension, case-insensitive (default \".x3d\").")
	configFlag := flagSet.String("config", "", "Path to an .hcl or .toml generator config file.")
	outFlag := flagSet.String("o", "", "Output document path. Empty or '-' writes to stdout.")
	formatFlag := flagSet.String("format", "", "Output encoding. Options: 'xml' or 'json' (default \"xml\").")
	manifestFlag := flagSet.String("manifest", "", "Optional path for a YAML manifest of every cell.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	verifyFlag := flagSet.Bool("verify", false, "Simulate two activations on every cell before writing.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	set := map[string]bool{}
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })
	for _, name := range []string{"prefix", "ext"} {
		if set[name] && flagSet.Lookup(name).Value.String() == "" {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid %s: must not be empty", name)}
		}
	}

	root := *rootFlag
	if flagSet.NArg() > 0 {
		if set["root"] {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("conflicting asset roots: -root %q and argument %q", root, flagSet.Arg(0))}
		}
		root = flagSet.Arg(0)
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(flagSet.Args()[1:], " "))}
	}
	slog.Debug("Asset root determined.", "root", root)

	if root == "" && *configFlag == "" {
		slog.Debug("No asset root or config provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	format := strings.ToLower(*formatFlag)
	switch format {
	case "", "xml", "json":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid format: must be 'xml' or 'json'"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ConfigPath:   *configFlag,
		Root:         root,
		Prefix:       *prefixFlag,
		Extension:    *extFlag,
		OutputPath:   *outFlag,
		Format:       format,
		ManifestPath: *manifestFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
		Verify:       *verifyFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
