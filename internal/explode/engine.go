// Package explode implements the core move/merge algorithm: every direct
// child of the source directory is moved into the destination directory,
// then the emptied source directory is removed.
package explode

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"explode/internal/config"
	"explode/internal/errors"
	"explode/internal/log"
	"explode/pkg/types"

	"github.com/charmbracelet/lipgloss"
)

var pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Italic(true)

// Engine explodes a single source directory into a destination directory
type Engine struct {
	cfg     *config.Config
	dryRun  bool
	out     io.Writer
	rename  func(oldpath, newpath string) error
	results []types.MoveResult
}

// New creates a new Engine instance
func New() *Engine {
	return &Engine{
		out:    os.Stdout,
		rename: os.Rename,
	}
}

// NewWithConfig creates a new Engine instance with configuration
func NewWithConfig(cfg *config.Config) *Engine {
	return &Engine{
		cfg:    cfg,
		dryRun: cfg.Settings.DryRun,
		out:    os.Stdout,
		rename: os.Rename,
	}
}

// SetDryRun sets whether operations should be performed or just simulated
func (e *Engine) SetDryRun(dryRun bool) {
	e.dryRun = dryRun
}

// IsDryRun returns whether the engine is in dry run mode
func (e *Engine) IsDryRun() bool {
	return e.dryRun
}

// SetOutput redirects progress and summary output. Defaults to stdout.
func (e *Engine) SetOutput(out io.Writer) {
	e.out = out
}

// Results returns the per-entry outcomes of the last Explode call.
func (e *Engine) Results() []types.MoveResult {
	return e.results
}

// Explode moves every direct child of the source directory into the
// destination directory, removes the emptied source directory and prints
// the summary line. If moving fails the source directory is preserved.
func (e *Engine) Explode() error {
	if e.cfg == nil {
		return errors.New("no config set")
	}
	e.results = nil

	if err := e.moveFiles(); err != nil {
		return err
	}
	if err := e.removeSourceDirectory(); err != nil {
		return err
	}

	fmt.Fprintf(e.out, "Exploded %s to %s\n",
		pathStyle.Render(e.cfg.Source), pathStyle.Render(e.cfg.Destination))
	return nil
}

// moveFiles checks the preconditions, lists the direct children of the
// source directory and transfers them one at a time, in listing order.
func (e *Engine) moveFiles() error {
	src := e.cfg.Source
	dst := e.cfg.Destination

	e.progressf("Moving files in %s -> %s\n", pathStyle.Render(src), pathStyle.Render(dst))

	srcInfo, err := os.Stat(src)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NewPathError(
				fmt.Sprintf("Source path %s does not exist", src),
				src, errors.SourceNotFound, nil)
		}
		return errors.Wrapf(err, "Failed to access source path %s", src)
	}
	if !srcInfo.IsDir() {
		return errors.NewPathError(
			fmt.Sprintf("Source path %s is not a directory", src),
			src, errors.NotADirectory, nil)
	}

	dstInfo, err := os.Stat(dst)
	switch {
	case os.IsNotExist(err):
		// Created lazily; dry-run must not mutate anything.
		if !e.dryRun {
			if err := os.Mkdir(dst, 0755); err != nil {
				return errors.Wrap(err, "Failed to create destination dir")
			}
		}
	case err != nil:
		return errors.Wrapf(err, "Failed to access destination path %s", dst)
	case !dstInfo.IsDir():
		return errors.NewPathError(
			fmt.Sprintf("Target path %s is not a directory", dst),
			dst, errors.NotADirectory, nil)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return errors.Wrapf(err, "Failed to read directory %s", src)
	}

	for _, entry := range entries {
		from := filepath.Join(src, entry.Name())
		to := filepath.Join(dst, entry.Name())
		if err := e.movePath(from, to); err != nil {
			return err
		}
	}

	return nil
}

// movePath transfers a single entry. A conflict at the destination aborts
// the whole operation unless force is set; entries moved earlier stay moved.
func (e *Engine) movePath(from, to string) error {
	if pathExists(to) {
		what := classify(from)
		if !e.cfg.Settings.Force {
			return errors.NewConflictError(what, filepath.Base(from), e.cfg.Destination)
		}
		log.Debug("overwriting %s %s at %s", what, filepath.Base(from), to)
	}

	e.progressf("Moving %s -> %s\n", pathStyle.Render(from), pathStyle.Render(to))

	if e.dryRun {
		e.results = append(e.results, types.MoveResult{Source: from, Destination: to})
		return nil
	}

	if err := e.moveOrCopy(from, to); err != nil {
		err = errors.Wrapf(err, "Failed to move or copy %s to %s", from, to)
		e.results = append(e.results, types.MoveResult{Source: from, Destination: to, Err: err})
		return err
	}

	e.results = append(e.results, types.MoveResult{Source: from, Destination: to, Moved: true})
	return nil
}

// moveOrCopy renames from to to. When the rename fails because source and
// destination live on different filesystem devices it falls back to an
// explicit copy. Directories are copied recursively and the original tree
// is removed once the copy fully succeeded; plain files are copied and the
// original file deleted. Any other rename error is surfaced as-is.
func (e *Engine) moveOrCopy(from, to string) error {
	err := e.rename(from, to)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return err
	}

	log.Debug("cross-device rename of %s, falling back to copy", from)

	info, statErr := os.Stat(from)
	if statErr != nil {
		return statErr
	}

	if info.IsDir() {
		if err := os.MkdirAll(to, info.Mode().Perm()); err != nil {
			return err
		}
		if err := copyTree(from, to, e.cfg.Settings.Force); err != nil {
			return err
		}
		return os.RemoveAll(from)
	}

	if err := copyFile(from, to, info); err != nil {
		return err
	}
	return os.Remove(from)
}

// removeSourceDirectory removes the source directory, which is empty by
// construction once every entry has been transferred.
func (e *Engine) removeSourceDirectory() error {
	src := e.cfg.Source

	e.progressf("Removed %s\n", pathStyle.Render(src))

	if e.dryRun {
		return nil
	}

	if err := os.Remove(src); err != nil {
		if errors.Is(err, syscall.ENOTEMPTY) {
			return errors.NewPathError(
				fmt.Sprintf("Failed to remove directory %s", src),
				src, errors.SourceNotEmpty, err)
		}
		return errors.Wrapf(err, "Failed to remove directory %s", src)
	}
	return nil
}

// progressf emits a progress line when verbosity is enabled. Progress is
// announced before mutation so it stays truthful under dry-run.
func (e *Engine) progressf(format string, args ...interface{}) {
	if e.cfg != nil && e.cfg.Settings.Verbose {
		fmt.Fprintf(e.out, format, args...)
	}
}

// classify describes the source entry involved in a destination conflict.
// Checked as directory first, then regular file, else a generic entry.
func classify(path string) string {
	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return "Dir"
	case err == nil && info.Mode().IsRegular():
		return "File"
	default:
		return "Entry"
	}
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
