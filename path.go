// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/i18nscope

package i18nscope

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// cleanRelPath normalizes and validates one source-relative file path.
//
// Returned path is slash-separated, cleaned and never leaves the root.
func cleanRelPath(raw string) (string, error) {
	p := strings.TrimSpace(raw)
	if p == "" || filepath.IsAbs(p) {
		return "", ErrPathOutsideRoot
	}

	p = strings.ReplaceAll(filepath.ToSlash(p), `\`, "/")
	if strings.HasPrefix(p, "/") {
		return "", ErrPathOutsideRoot
	}

	p = path.Clean(p)
	if p == "." || p == ".." || strings.HasPrefix(p, "../") {
		return "", ErrPathOutsideRoot
	}

	return p, nil
}

// resolvePathOrAbs resolves symlinks and falls back to absolute path for missing paths.
func resolvePathOrAbs(p string) (string, error) {
	resolved, err := filepath.EvalSymlinks(p)
	if err == nil {
		return resolved, nil
	}

	abs, absErr := filepath.Abs(p)
	if absErr != nil {
		return "", absErr
	}

	if os.IsNotExist(err) {
		return abs, nil
	}

	return "", err
}

// isPathWithinRoot reports whether target path is inside root path.
func isPathWithinRoot(root string, target string) bool {
	rel, err := filepath.Rel(root, target)
	if err != nil {
		return false
	}

	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
