// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/i18nscope

package i18nscope

import (
	"slices"
	"testing"
)

const fixtureTranslations = `
en:
  date:
    formats:
      default: "%Y-%m-%d"
      short: "%b %d"
    day_names: [Sunday, Monday]
  time:
    formats:
      default: "%a, %d %b %Y %H:%M:%S %z"
    am: am
  number:
    currency:
      format:
        unit: "$"
        precision: 2
    format:
      separator: "."
  admin:
    show:
      title: Show
      note: Details
    edit:
      title: Edit
  greeting: Hello
  untranslated: ~
fr:
  date:
    formats:
      default: "%d/%m/%Y"
      short: "%e %b"
  time:
    formats:
      default: "%d %B %Y %H:%M"
  number:
    currency:
      format:
        unit: "€"
        precision: 2
  admin:
    show:
      title: Visualiser
    edit:
      title: Editer
  greeting: Bonjour
ja:
  admin:
    show:
      title: Ignore me
`

// testTranslations parses the shared translation fixture.
func testTranslations(t testing.TB) Tree {
	t.Helper()

	tree, err := ParseTreeString(fixtureTranslations, FormatYAML)
	if err != nil {
		t.Fatalf("ParseTreeString: %v", err)
	}

	return tree
}

// mustSubtree returns the mapping at dotted path or fails the test.
func mustSubtree(t testing.TB, tree Tree, path string) Tree {
	t.Helper()

	v, ok := tree.Lookup(path)
	if !ok {
		t.Fatalf("path %q not found in %v", path, tree)
	}

	sub, ok := asTree(v)
	if !ok {
		t.Fatalf("path %q is %T, want mapping", path, v)
	}

	return sub
}

// assertKeys fails when tree keys differ from want (order-insensitive).
func assertKeys(t testing.TB, tree Tree, want ...string) {
	t.Helper()

	got := tree.Keys()
	want = slices.Clone(want)
	slices.Sort(want)
	if !slices.Equal(got, want) {
		t.Fatalf("keys=%v, want %v", got, want)
	}
}

// assertLeaf fails when the value at dotted path differs from want.
func assertLeaf(t testing.TB, tree Tree, path string, want any) {
	t.Helper()

	got, ok := tree.Lookup(path)
	if !ok {
		t.Fatalf("path %q not found", path)
	}

	if got != want {
		t.Fatalf("%s=%v (%T), want %v (%T)", path, got, got, want, want)
	}
}
