// Package fsutil provides the asset scanner: a recursive, deterministic
// search for candidate asset files over a filesystem capability.
package fsutil

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vk/landmarkgrid/internal/config"
	"github.com/vk/landmarkgrid/internal/ctxlog"
)

// ErrIO matches every IOError via errors.Is.
var ErrIO = errors.New("asset scan I/O failure")

// IOError reports a missing root or a directory that could not be read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("scan %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrIO) match.
func (e *IOError) Is(target error) bool { return target == ErrIO }

// Filter selects asset files by base-name prefix and extension.
type Filter struct {
	Prefix    string // case-sensitive
	Extension string // compared case-insensitively with the extension only
}

// Validate rejects an empty prefix or extension.
func (f Filter) Validate() error {
	if f.Prefix == "" {
		return &config.InvalidInputError{Field: "prefix", Reason: "must not be empty"}
	}
	if f.Extension == "" || f.Extension == "." {
		return &config.InvalidInputError{Field: "extension", Reason: "must not be empty"}
	}
	return nil
}

// Match reports whether a base name passes the filter.
func (f Filter) Match(name string) bool {
	return strings.HasPrefix(name, f.Prefix) &&
		strings.EqualFold(path.Ext(name), config.NormalizeExtension(f.Extension))
}

// maxLinkHops bounds how many directory symlinks one path may pass through.
const maxLinkHops = 40

// FindAssets walks fsys from "." and returns the slash-separated paths of
// every file the filter accepts, sorted lexicographically. Symbolic links
// are followed, so a linked directory is searched under the link's name; a
// link back to one of its own ancestors is skipped. Any unreadable directory
// or dangling link aborts the walk with an *IOError.
func FindAssets(ctx context.Context, fsys fs.FS, f Filter) ([]string, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	w := &walker{fsys: fsys, filter: f, logger: ctxlog.FromContext(ctx)}

	rootInfo, err := fs.Stat(fsys, ".")
	if err != nil {
		return nil, &IOError{Path: ".", Err: err}
	}
	if err := w.walk(".", []fs.FileInfo{rootInfo}, 0); err != nil {
		return nil, err
	}

	sort.Strings(w.files)
	return w.files, nil
}

type walker struct {
	fsys   fs.FS
	filter Filter
	logger *slog.Logger
	files  []string
}

// walk lists dir. ancestors holds the directories on the current path, dir
// included, for loop detection.
func (w *walker) walk(dir string, ancestors []fs.FileInfo, hops int) error {
	entries, err := fs.ReadDir(w.fsys, dir)
	if err != nil {
		return &IOError{Path: dir, Err: err}
	}
	for _, d := range entries {
		p := path.Join(dir, d.Name())
		isDir := d.IsDir()
		linked := d.Type()&fs.ModeSymlink != 0

		var info fs.FileInfo
		if linked || isDir {
			if info, err = fs.Stat(w.fsys, p); err != nil {
				return &IOError{Path: p, Err: err}
			}
			isDir = info.IsDir()
		}

		if !isDir {
			if w.filter.Match(d.Name()) {
				w.files = append(w.files, p)
			} else {
				w.logger.Debug("Skipping non-matching file.", "path", p)
			}
			continue
		}

		next := hops
		if linked {
			if loopsBack(info, ancestors) {
				w.logger.Warn("Skipping symlink to an enclosing directory.", "path", p)
				continue
			}
			if next++; next > maxLinkHops {
				return &IOError{Path: p, Err: fmt.Errorf("more than %d nested directory links", maxLinkHops)}
			}
		}
		if err := w.walk(p, append(ancestors[:len(ancestors):len(ancestors)], info), next); err != nil {
			return err
		}
	}
	return nil
}

func loopsBack(info fs.FileInfo, ancestors []fs.FileInfo) bool {
	for _, a := range ancestors {
		if os.SameFile(info, a) {
			return true
		}
	}
	return false
}

// ScanDir runs FindAssets over the directory root on the host filesystem and
// returns asset paths prefixed with root, normalized to forward slashes.
func ScanDir(ctx context.Context, root string, f Filter) ([]string, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Scanning for assets.", "root", root, "prefix", f.Prefix, "extension", f.Extension)

	info, err := os.Stat(root)
	if err != nil {
		return nil, &IOError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &IOError{Path: root, Err: fmt.Errorf("not a directory")}
	}

	rel, err := FindAssets(ctx, os.DirFS(root), f)
	if err != nil {
		var ioErr *IOError
		if errors.As(err, &ioErr) {
			ioErr.Path = path.Join(filepath.ToSlash(root), ioErr.Path)
		}
		return nil, err
	}

	base := filepath.ToSlash(root)
	assets := make([]string, len(rel))
	for i, p := range rel {
		assets[i] = path.Join(base, p)
	}
	logger.Info("Asset scan complete.", "root", root, "assets_found", len(assets))
	return assets, nil
}
