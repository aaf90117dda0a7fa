// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/i18nscope

package sink

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/i18nscope"
)

func sampleTree() i18nscope.Tree {
	return i18nscope.Tree{
		"fr": map[string]any{"greeting": "Bonjour"},
		"en": map[string]any{
			"greeting": "Hello",
			"date":     map[string]any{"formats": map[string]any{"short": "%b %d"}},
		},
	}
}

func TestRenderScript(t *testing.T) {
	t.Parallel()

	out, err := Render(sampleTree(), Options{})
	require.NoError(t, err)

	want := `I18n.translations || (I18n.translations = {});
I18n.translations["en"] = {"date":{"formats":{"short":"%b %d"}},"greeting":"Hello"};
I18n.translations["fr"] = {"greeting":"Bonjour"};
`
	assert.Equal(t, want, string(out))
}

func TestRenderScriptCustomNamespace(t *testing.T) {
	t.Parallel()

	out, err := Render(i18nscope.Tree{"en": map[string]any{}}, Options{Namespace: "App.I18n"})
	require.NoError(t, err)

	assert.Equal(t, "App.I18n.translations || (App.I18n.translations = {});\nApp.I18n.translations[\"en\"] = {};\n", string(out))
}

func TestRenderJSON(t *testing.T) {
	t.Parallel()

	out, err := Render(sampleTree(), Options{Format: FormatJSON})
	require.NoError(t, err)
	assert.JSONEq(t, `{"en":{"date":{"formats":{"short":"%b %d"}},"greeting":"Hello"},"fr":{"greeting":"Bonjour"}}`, string(out))

	pretty, err := Render(i18nscope.Tree{"en": map[string]any{"a": "b"}}, Options{Format: FormatJSON, Pretty: true})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"en\": {\n    \"a\": \"b\"\n  }\n}\n", string(pretty))
}

func TestRenderEmptyTree(t *testing.T) {
	t.Parallel()

	out, err := Render(nil, Options{Format: FormatJSON})
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(out))

	script, err := Render(nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, "I18n.translations || (I18n.translations = {});\n", string(script))
}

func TestRenderUnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := Render(sampleTree(), Options{Format: "xml"})
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFileWriterCreatesDirectories(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	w := &FileWriter{Root: root, Options: Options{Format: FormatJSON}}

	require.NoError(t, w.Write("public/javascripts/translations.json", sampleTree()))

	path := filepath.Join(root, "public", "javascripts", "translations.json")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"greeting":"Bonjour"`)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not remain")
}

func TestFileWriterReplacesExisting(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	w := &FileWriter{Root: root}

	require.NoError(t, w.Write("all.js", sampleTree()))
	require.NoError(t, w.Write("all.js", i18nscope.Tree{"ja": map[string]any{"greeting": "こんにちは"}}))

	data, err := os.ReadFile(filepath.Join(root, "all.js"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `I18n.translations["ja"]`)
	assert.NotContains(t, string(data), `I18n.translations["en"]`)
}

func TestFileWriterRenderError(t *testing.T) {
	t.Parallel()

	w := &FileWriter{Root: t.TempDir(), Options: Options{Format: "xml"}}
	assert.ErrorIs(t, w.Write("out.xml", sampleTree()), ErrUnknownFormat)
}

func TestMemoryRecordsInOrder(t *testing.T) {
	t.Parallel()

	var m Memory
	tree := sampleTree()

	require.NoError(t, m.Write("b.js", tree))
	require.NoError(t, m.Write("a.js", i18nscope.Tree{}))

	assert.Equal(t, []string{"b.js", "a.js"}, m.Destinations())

	// Recorded trees do not alias the written ones.
	tree["en"].(map[string]any)["greeting"] = "changed"
	records := m.Records()
	require.Len(t, records, 2)

	v, ok := records[0].Translations.Lookup("en.greeting")
	require.True(t, ok)
	assert.Equal(t, "Hello", v)
}

var _ Writer = (*FileWriter)(nil)
var _ Writer = (*Memory)(nil)
