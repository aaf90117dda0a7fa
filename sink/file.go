// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/i18nscope

package sink

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/woozymasta/i18nscope"
)

// FileWriter renders segments to files.
type FileWriter struct {
	// Root prefixes relative destinations. Empty means the working directory.
	Root string
	// Options controls rendering.
	Options Options
	// Perm is the file mode of written files, default 0o644.
	Perm os.FileMode
}

// Write renders tree and atomically replaces the destination file.
func (w *FileWriter) Write(destination string, tree i18nscope.Tree) error {
	data, err := Render(tree, w.Options)
	if err != nil {
		return fmt.Errorf("render %s: %w", destination, err)
	}

	path := destination
	if w.Root != "" && !filepath.IsAbs(path) {
		path = filepath.Join(w.Root, path)
	}

	if err := writeAtomic(path, data, w.perm()); err != nil {
		return fmt.Errorf("write %s: %w", destination, err)
	}

	return nil
}

// perm returns the configured file mode or 0o644.
func (w *FileWriter) perm() os.FileMode {
	if w.Perm == 0 {
		return 0o644
	}

	return w.Perm
}

// writeAtomic writes data to a temp file in the target directory and renames it.
func writeAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}

	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
