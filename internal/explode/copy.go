package explode

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"explode/internal/errors"
)

// copyTree recursively copies the contents of the directory from into the
// existing directory to. Entries that already exist at the destination are
// overwritten only when overwrite is set; otherwise the copy fails on the
// first conflicting entry.
func copyTree(from, to string, overwrite bool) error {
	return filepath.WalkDir(from, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(from, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		outPath := filepath.Join(to, rel)
		info, err := entry.Info()
		if err != nil {
			return err
		}

		if entry.IsDir() {
			return os.MkdirAll(outPath, info.Mode().Perm())
		}

		if !overwrite && pathExists(outPath) {
			return errors.NewConflictError(classify(path), entry.Name(), filepath.Dir(outPath))
		}
		return copyFile(path, outPath, info)
	})
}

// copyFile copies the bytes of a single file, preserving its permission
// bits and modification time. An existing destination file is truncated.
func copyFile(from, to string, info os.FileInfo) error {
	input, err := os.Open(from)
	if err != nil {
		return err
	}
	defer input.Close()

	output, err := os.OpenFile(to, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(output, input); err != nil {
		_ = output.Close()
		return err
	}
	if err := output.Close(); err != nil {
		return err
	}
	_ = os.Chtimes(to, time.Now(), info.ModTime())
	return nil
}
