// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/i18nscope

package i18nscope

import (
	"fmt"
	"os"
)

// LoadTreeFile reads and parses a translation file.
//
// Format is detected from file extension.
func LoadTreeFile(path string) (Tree, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open translation file: %w", err)
	}
	defer func() { _ = f.Close() }()

	tree, err := ParseTree(f, format)
	if err != nil {
		return nil, fmt.Errorf("parse translation file %s: %w", path, err)
	}

	return tree, nil
}

// LoadTreeFiles reads and deep-merges translation files in the given order.
//
// Later files win on scalar collisions.
func LoadTreeFiles(paths ...string) (Tree, error) {
	out := make(Tree)
	for _, path := range paths {
		tree, err := LoadTreeFile(path)
		if err != nil {
			return nil, err
		}

		DeepMergeInto(out, tree)
	}

	return out, nil
}
