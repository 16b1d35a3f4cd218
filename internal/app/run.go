package app

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/landmarkgrid/internal/ctxlog"
)

// Run executes one generation. Nothing is written unless every stage
// succeeds: file payloads are staged next to their targets and only renamed
// into place once all of them have been written.
func (a *App) Run(ctx context.Context) (err error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	gen, err := a.Generator(ctx)
	if err != nil {
		return err
	}

	out, err := Generate(ctx, gen, Options{Verify: a.cfg.Verify})
	if err != nil {
		return err
	}

	toStdout := gen.Output.Path == "" || gen.Output.Path == "-"
	var files []*stagedFile
	defer func() {
		if err != nil {
			for _, f := range files {
				f.discard()
			}
		}
	}()

	if gen.Output.Manifest != "" {
		data, err := out.Manifest.Marshal()
		if err != nil {
			return err
		}
		f, err := stageFile(gen.Output.Manifest, data)
		if err != nil {
			return err
		}
		files = append(files, f)
	}
	if !toStdout {
		f, err := stageFile(gen.Output.Path, out.Document)
		if err != nil {
			return err
		}
		files = append(files, f)
	}

	for _, f := range files {
		if err := f.commit(); err != nil {
			return err
		}
		a.logger.Info("File written.", "path", f.path, "bytes", f.size)
	}

	if toStdout {
		if _, err := a.outW.Write(out.Document); err != nil {
			return fmt.Errorf("writing document: %w", err)
		}
	}

	a.logger.Debug("App.Run method finished.", "cells", len(out.Manifest.Cells))
	return nil
}

// stagedFile is a payload written to a temporary file beside path, waiting
// to be renamed over it.
type stagedFile struct {
	path      string
	tmp       string
	size      int
	committed bool
}

func stageFile(path string, data []byte) (f *stagedFile, err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = bytes.NewReader(data).WriteTo(tmp); err != nil {
		_ = tmp.Close()
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	return &stagedFile{path: path, tmp: tmp.Name(), size: len(data)}, nil
}

func (f *stagedFile) commit() error {
	if err := os.Rename(f.tmp, f.path); err != nil {
		return fmt.Errorf("writing %s: %w", f.path, err)
	}
	f.committed = true
	return nil
}

// discard removes the staged payload, or the target itself once committed,
// so a failed run leaves none of its output behind.
func (f *stagedFile) discard() {
	if f.committed {
		_ = os.Remove(f.path)
		return
	}
	_ = os.Remove(f.tmp)
}
