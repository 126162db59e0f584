package namefmt

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jlrickert/cli-toolkit/toolkit"
)

// Formatter applies the configured naming rules to files on disk.
type Formatter struct {
	Config *Config

	// Runtime carries process-level dependencies.
	Runtime *toolkit.Runtime
}

type FormatterOptions struct {
	Config  *Config
	Runtime *toolkit.Runtime
}

func NewFormatter(opts FormatterOptions) (*Formatter, error) {
	rt := opts.Runtime
	if rt == nil {
		var err error
		rt, err = toolkit.NewRuntime()
		if err != nil {
			return nil, fmt.Errorf("unable to create runtime: %w", err)
		}
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Formatter{Config: cfg, Runtime: rt}, nil
}

// RunOptions configures a single formatting pass.
type RunOptions struct {
	// Path is the file or directory to process.
	Path string

	// InPlace performs the renames; otherwise the pass is a dry run.
	InPlace bool

	// Timestamp prepends the UTC date prefix to every produced name.
	Timestamp bool

	// Out receives one report line per affected file.
	Out io.Writer
}

// Run processes opts.Path. A file is a single candidate; a directory yields
// every regular file beneath it. Traversal uses filepath.WalkDir, so files
// are visited in lexical order within each directory, which keeps dry-run
// output reproducible.
//
// Processing is strictly sequential and aborts on the first filesystem
// error; there is no partial-completion recovery.
func (f *Formatter) Run(ctx context.Context, opts RunOptions) error {
	lg := f.Runtime.Logger()

	info, err := os.Stat(opts.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewPathNotFoundError(opts.Path)
		}
		return fmt.Errorf("unable to stat %s: %w", opts.Path, err)
	}

	if !info.IsDir() {
		_, err := f.processFile(ctx, opts.Path, opts)
		return err
	}

	lg.Debug("walking directory", "path", opts.Path, "inplace", opts.InPlace)
	return filepath.WalkDir(opts.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		_, err = f.processFile(ctx, path, opts)
		return err
	})
}

// processFile formats a single file and either renames it or reports the
// rename it would perform. Unaffected files produce no output. The returned
// path is the rename destination, or "" when the file was left alone or the
// pass was a dry run.
func (f *Formatter) processFile(ctx context.Context, path string, opts RunOptions) (string, error) {
	now := f.Runtime.Clock().Now()

	name := filepath.Base(path)
	newName, changed := FormatFilename(name, f.Config, path, now, opts.Timestamp)
	if !changed {
		return "", nil
	}
	newPath := filepath.Join(filepath.Dir(path), newName)

	if !opts.InPlace {
		_, err := fmt.Fprintf(opts.Out, "Would rename: %s -> %s\n", path, newPath)
		return "", err
	}
	if err := os.Rename(path, newPath); err != nil {
		return "", fmt.Errorf("unable to rename %s: %w", path, err)
	}
	if _, err := fmt.Fprintf(opts.Out, "Renamed: %s -> %s\n", path, newPath); err != nil {
		return "", err
	}
	return newPath, nil
}
