// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/i18nscope

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/i18nscope"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "i18n-js.yml", `
export_dir: assets/js
namespace: App.I18n
locales: [en, fr]
sources:
  - config/locales
  - vendor/locales/extra.yml
translations:
  - file: assets/js/admin.js
    only: "*.admin.*"
  - file: assets/js/app-%{locale}.js
    only: ["*.date.formats", "*.greeting"]
    except: "*.date.formats.long"
  - file: assets/js/all.js
    per_locale: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Found())
	assert.Equal(t, path, cfg.Path())
	assert.Equal(t, "assets/js", cfg.ExportDir)
	assert.Equal(t, "App.I18n", cfg.Namespace)
	assert.Equal(t, FormatJS, cfg.Format)
	assert.Equal(t, []string{"en", "fr"}, cfg.Locales)
	assert.Equal(t, []string{"config/locales", "vendor/locales/extra.yml"}, cfg.Sources)
	assert.Equal(t, "assets/js/translations.js", cfg.DefaultDestination())

	rules := cfg.Rules()
	require.Len(t, rules, 3)

	assert.Equal(t, i18nscope.Rule{
		Destination: "assets/js/admin.js",
		Patterns:    []string{"*.admin.*"},
		Except:      []string{},
	}, rules[0])

	assert.Equal(t, i18nscope.Rule{
		Destination: "assets/js/app-%{locale}.js",
		Patterns:    []string{"*.date.formats", "*.greeting"},
		Except:      []string{"*.date.formats.long"},
		PerLocale:   true,
	}, rules[1])

	assert.Empty(t, rules[2].Patterns)
	assert.False(t, rules[2].PerLocale)
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, "i18nscope.toml", `
format = "json"
pretty = true

[[translations]]
file = "out/fixed-%{locale}.json"
only = ["*.greeting"]
per_locale = false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, FormatJSON, cfg.Format)
	assert.True(t, cfg.Pretty)
	assert.Equal(t, "public/javascripts/translations.json", cfg.DefaultDestination())

	rules := cfg.Rules()
	require.Len(t, rules, 1)
	assert.False(t, rules[0].PerLocale, "explicit per_locale overrides the placeholder")
	assert.Equal(t, []string{"*.greeting"}, rules[0].Patterns)
}

func TestLoadDefaultsForEmptyFile(t *testing.T) {
	path := writeConfig(t, "i18n-js.yml", "\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Found())
	assert.Equal(t, i18nscope.DefaultExportDir, cfg.ExportDir)
	assert.Equal(t, "I18n", cfg.Namespace)
	assert.Equal(t, []string{"config/locales"}, cfg.Sources)
	assert.Empty(t, cfg.Rules())

	opts := cfg.PlanOptions()
	assert.Equal(t, "public/javascripts/translations.js", opts.DefaultDestination)
	assert.Empty(t, opts.Locales)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadExpandsEnvInFile(t *testing.T) {
	t.Setenv("TEST_I18N_OUT", "build/js")
	path := writeConfig(t, "i18n-js.yml", "export_dir: ${TEST_I18N_OUT}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "build/js", cfg.ExportDir)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("I18NSCOPE_EXPORT_DIR", "env/js")
	t.Setenv("I18NSCOPE_LOCALES", "en, pt-BR")
	path := writeConfig(t, "i18n-js.yml", "export_dir: file/js\nlocales: [fr]\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env/js", cfg.ExportDir)
	assert.Equal(t, []string{"en", "pt-BR"}, cfg.Locales)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown format", "format: xml\n"},
		{"empty namespace for js", "namespace: \"\"\n"},
		{"invalid locale", "locales: [\"not a locale!\"]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, "i18n-js.yml", tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadUnsupportedConfigExtension(t *testing.T) {
	_, err := Load(writeConfig(t, "i18n-js.ini", "export_dir=x\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("TEST_I18N_DOTENV=from-file\n"), 0o600))

	t.Setenv("TEST_I18N_DOTENV", "")
	require.NoError(t, os.Unsetenv("TEST_I18N_DOTENV"))

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env"), envFile))
	assert.Equal(t, "from-file", os.Getenv("TEST_I18N_DOTENV"))
}

func TestLoadKeepsBareDollarText(t *testing.T) {
	t.Setenv("bundle", "expanded")
	t.Setenv("TEST_I18N_DIR", "build")
	path := writeConfig(t, "i18n-js.yml", `
namespace: "App$Translations"
export_dir: ${TEST_I18N_DIR}/js
translations:
  - file: "out/$bundle-%{locale}.js"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "App$Translations", cfg.Namespace)
	assert.Equal(t, "build/js", cfg.ExportDir)

	rules := cfg.Rules()
	require.Len(t, rules, 1)
	assert.Equal(t, "out/$bundle-%{locale}.js", rules[0].Destination)
}

func TestExpandEnvRefs(t *testing.T) {
	t.Setenv("TEST_I18N_SET", "value")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"braced reference", "a: ${TEST_I18N_SET}", "a: value"},
		{"unset braced reference", "a: ${TEST_I18N_UNSET_VAR}", "a: "},
		{"bare reference kept", "a: $TEST_I18N_SET", "a: $TEST_I18N_SET"},
		{"lone dollar kept", "a: 5$ and ${", "a: 5$ and ${"},
		{"invalid name kept", "a: ${1X}", "a: ${1X}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(expandEnvRefs([]byte(tt.in))))
		})
	}
}

func TestLoadInFindsProjectConfigBelowRoot(t *testing.T) {
	root := t.TempDir()
	project := filepath.Join(root, "config", "i18n-js.yml")
	require.NoError(t, os.MkdirAll(filepath.Dir(project), 0o755))
	require.NoError(t, os.WriteFile(project, []byte("export_dir: rooted/js\n"), 0o600))

	assert.Equal(t, project, DefaultPathIn(root))

	cfg, err := LoadIn(root, "")
	require.NoError(t, err)
	assert.True(t, cfg.Found())
	assert.Equal(t, project, cfg.Path())
	assert.Equal(t, "rooted/js", cfg.ExportDir)

	explicit := writeConfig(t, "other.yml", "export_dir: explicit/js\n")
	cfg, err = LoadIn(root, explicit)
	require.NoError(t, err)
	assert.Equal(t, "explicit/js", cfg.ExportDir)
}
