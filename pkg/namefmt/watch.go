package namefmt

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchOptions configures a watch session.
type WatchOptions struct {
	// Path is the directory to watch. It must exist.
	Path string

	// InPlace performs renames; otherwise new files are only reported.
	InPlace bool

	// Timestamp prepends the UTC date prefix to every produced name.
	Timestamp bool

	// Out receives one report line per affected file.
	Out io.Writer

	// ErrOut receives watcher warnings.
	ErrOut io.Writer
}

// Watch observes opts.Path and its subdirectories and applies the configured
// naming rules to files as they are created. Events are handled one at a
// time in a single loop; the session ends when ctx is cancelled. Newly
// created directories join the watch set, and watcher errors are reported as
// warnings without stopping the session.
func (f *Formatter) Watch(ctx context.Context, opts WatchOptions) error {
	lg := f.Runtime.Logger()

	info, err := os.Stat(opts.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewPathNotFoundError(opts.Path)
		}
		return fmt.Errorf("unable to stat %s: %w", opts.Path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("watch target %s is not a directory", opts.Path)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("unable to create watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	// Seed the watch set with the full directory tree.
	err = filepath.WalkDir(opts.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		return watcher.Add(path)
	})
	if err != nil {
		return fmt.Errorf("unable to watch %s: %w", opts.Path, err)
	}
	lg.Info("watching for new files", "path", opts.Path, "inplace", opts.InPlace)

	runOpts := RunOptions{
		InPlace:   opts.InPlace,
		Timestamp: opts.Timestamp,
		Out:       opts.Out,
	}
	// Renaming a file raises a Create event for the destination. Remember
	// the paths this session produced so they are not formatted again.
	produced := map[string]struct{}{}
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Create == 0 {
				continue
			}
			if _, ok := produced[event.Name]; ok {
				delete(produced, event.Name)
				continue
			}
			fi, err := os.Stat(event.Name)
			if err != nil {
				// The file may already be gone; nothing to format.
				continue
			}
			if fi.IsDir() {
				if err := watcher.Add(event.Name); err != nil {
					fmt.Fprintf(opts.ErrOut, "Warning: unable to watch %s: %v\n", event.Name, err)
				}
				continue
			}
			if fi.Mode().IsRegular() {
				dst, err := f.processFile(ctx, event.Name, runOpts)
				if err != nil {
					return err
				}
				if dst != "" {
					produced[dst] = struct{}{}
				}
			}
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				continue
			}
			fmt.Fprintf(opts.ErrOut, "Warning: file watcher error: %v\n", watchErr)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
