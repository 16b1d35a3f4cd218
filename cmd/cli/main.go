package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/landmarkgrid/internal/app"
	"github.com/vk/landmarkgrid/internal/cli"
	"github.com/vk/landmarkgrid/internal/config"
	"github.com/vk/landmarkgrid/internal/hcl"
	"github.com/vk/landmarkgrid/internal/tomlcfg"
)

// main is the entrypoint for the landmarkgrid application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. The document goes to outW unless an output path is configured;
// logs and usage text go to errW.
func run(outW, errW io.Writer, args []string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("generation panicked: %v", r)
		}
	}()

	loaders := map[string]config.Loader{
		".hcl":  hcl.NewLoader(),
		".toml": tomlcfg.NewLoader(),
	}
	return app.NewApp(outW, errW, appConfig, loaders).Run(context.Background())
}
