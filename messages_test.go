// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/i18nscope

package i18nscope

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseMessageFileTOML(t *testing.T) {
	t.Parallel()

	src := `
[admin.show.title]
other = "Visualiser"

[cart.items]
one = "{{.Count}} article"
other = "{{.Count}} articles"

[greeting]
description = "Home page greeting"
other = "Bonjour"
`

	tree, err := ParseMessageFile([]byte(src), "locales/active.fr.toml")
	if err != nil {
		t.Fatalf("ParseMessageFile: %v", err)
	}

	assertKeys(t, tree, "fr")
	assertLeaf(t, tree, "fr.admin.show.title", "Visualiser")
	assertLeaf(t, tree, "fr.greeting", "Bonjour")
	assertKeys(t, mustSubtree(t, tree, "fr.cart.items"), "one", "other")

	result := Filter(tree, "*.admin.*.title")
	assertLeaf(t, result, "fr.admin.show.title", "Visualiser")
}

func TestParseMessageFileJSON(t *testing.T) {
	t.Parallel()

	tree, err := ParseMessageFile([]byte(`{"date.formats.short": "%b %d"}`), "en.json")
	if err != nil {
		t.Fatalf("ParseMessageFile: %v", err)
	}

	assertLeaf(t, tree, "en.date.formats.short", "%b %d")
}

func TestParseMessageFileRequiresLanguageTag(t *testing.T) {
	t.Parallel()

	_, err := ParseMessageFile([]byte(`{"a": "b"}`), "locales/.json")
	if err == nil {
		t.Fatalf("message file without language tag must be rejected")
	}
}

func TestLoadMessageFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "active.en.yaml")
	if err := os.WriteFile(path, []byte("greeting: Hello\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	tree, err := LoadMessageFile(path)
	if err != nil {
		t.Fatalf("LoadMessageFile: %v", err)
	}

	assertLeaf(t, tree, "en.greeting", "Hello")
}
