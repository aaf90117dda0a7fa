// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/i18nscope

// Package config loads export configuration: sources, locales and export rules.
//
// Layers are applied in order, later wins:
//  1. built-in defaults
//  2. configuration file (YAML or TOML), with ${VAR} references expanded
//  3. I18NSCOPE_* environment variables
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/woozymasta/i18nscope"
	"github.com/woozymasta/i18nscope/sink"
)

const (
	// EnvPrefix prefixes environment overrides (I18NSCOPE_EXPORT_DIR, ...).
	EnvPrefix = "I18NSCOPE_"
	// ProjectConfigPath is the project-local configuration file looked up first.
	ProjectConfigPath = "config/i18n-js.yml"
	// userConfigPath is the configuration file looked up in XDG config dirs.
	userConfigPath = "i18nscope/config.yml"
)

// Output formats understood by the sink.
const (
	FormatJS   = sink.FormatJS
	FormatJSON = sink.FormatJSON
)

// envRefPattern matches braced environment references: ${NAME}.
var envRefPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// ErrInvalidConfig indicates configuration that cannot be used for export.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the complete export configuration.
type Config struct {
	// ExportDir is the directory of the implicit destination.
	ExportDir string `koanf:"export_dir"`
	// Namespace is the JavaScript object receiving translations.
	Namespace string `koanf:"namespace"`
	// Format is the output format: "js" or "json".
	Format string `koanf:"format"`
	// Pretty enables indented JSON output.
	Pretty bool `koanf:"pretty"`
	// Locales restricts exported locales. Empty means every locale in the tree.
	Locales []string `koanf:"locales"`
	// Sources are translation files or directories merged in order.
	Sources []string `koanf:"sources"`
	// MessageFiles reads sources as go-i18n message files.
	MessageFiles bool `koanf:"message_files"`
	// Translations are the export rules.
	Translations []Entry `koanf:"translations"`

	// path is the loaded configuration file, empty when none was found.
	path string
}

// Entry is one export rule as written in the configuration file.
type Entry struct {
	// File is the destination, may contain "%{locale}".
	File string `koanf:"file"`
	// Only are scope patterns, a single string or a list.
	Only []string `koanf:"only"`
	// Except are scope patterns removed from the selection.
	Except []string `koanf:"except"`
	// PerLocale splits output per locale. When unset it is inferred from
	// a "%{locale}" placeholder in File.
	PerLocale *bool `koanf:"per_locale"`
}

// defaults are the built-in configuration values.
func defaults() map[string]any {
	return map[string]any{
		"export_dir": i18nscope.DefaultExportDir,
		"namespace":  sink.DefaultNamespace,
		"format":     FormatJS,
		"pretty":     false,
		"sources":    []string{"config/locales"},
	}
}

// rawBytesProvider feeds already-read bytes to koanf parsers.
type rawBytesProvider struct{ bytes []byte }

// ReadBytes returns provider bytes.
func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }

// Read is unsupported; koanf uses ReadBytes with a parser.
func (r *rawBytesProvider) Read() (map[string]any, error) {
	return nil, errors.New("not implemented")
}

// Load builds configuration from defaults, the file at path and environment.
//
// Empty path looks up DefaultPath and silently uses defaults when nothing is
// found. An explicit path that does not exist is an error.
func Load(path string) (*Config, error) {
	return LoadIn("", path)
}

// LoadIn is Load with the default project configuration looked up below
// root instead of the working directory. Explicit paths are used as given.
func LoadIn(root, path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPathIn(root)
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	found := false
	if path != "" {
		loaded, err := loadFile(k, path, explicit)
		if err != nil {
			return nil, err
		}

		found = loaded
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}

	if found {
		cfg.path = path
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadFile merges one configuration file into k.
//
// Returns false without error when the file is absent and not explicit.
func loadFile(k *koanf.Koanf, path string, explicit bool) (bool, error) {
	raw, err := file.Provider(path).ReadBytes()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return false, nil
		}

		return false, fmt.Errorf("read config %s: %w", path, err)
	}

	raw = expandEnvRefs(raw)
	if len(bytes.TrimSpace(raw)) == 0 {
		return true, nil
	}

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		parser = yaml.Parser()
	case ".toml":
		parser = toml.Parser()
	default:
		return false, fmt.Errorf("%w: unsupported config file %s", ErrInvalidConfig, path)
	}

	if err := k.Load(&rawBytesProvider{bytes: raw}, parser); err != nil {
		return false, fmt.Errorf("parse config %s: %w", path, err)
	}

	return true, nil
}

// expandEnvRefs replaces ${NAME} with the environment value, empty when unset.
//
// Bare $NAME and other "$" text is kept as written.
func expandEnvRefs(raw []byte) []byte {
	return envRefPattern.ReplaceAllFunc(raw, func(ref []byte) []byte {
		name := envRefPattern.FindSubmatch(ref)[1]
		return []byte(os.Getenv(string(name)))
	})
}

// DefaultPath returns the first existing default configuration file, or "".
func DefaultPath() string {
	return DefaultPathIn("")
}

// DefaultPathIn is DefaultPath with the project file looked up below root.
//
// Empty root means the working directory.
func DefaultPathIn(root string) string {
	project := ProjectConfigPath
	if root != "" {
		project = filepath.Join(root, filepath.FromSlash(ProjectConfigPath))
	}

	if _, err := os.Stat(project); err == nil {
		return project
	}

	if path, err := xdg.SearchConfigFile(userConfigPath); err == nil {
		return path
	}

	return ""
}

// LoadDotEnv loads optional .env files into the process environment.
//
// Missing files are ignored; existing variables are not overridden.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}

		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}

	return nil
}

// Found reports whether a configuration file was loaded.
func (c *Config) Found() bool {
	return c.path != ""
}

// Path returns the loaded configuration file path, empty when none.
func (c *Config) Path() string {
	return c.path
}

// DefaultDestination returns the implicit destination inside ExportDir.
//
// JSON output swaps the ".js" suffix for ".json".
func (c *Config) DefaultDestination() string {
	dest := i18nscope.DefaultDestination(c.ExportDir)
	if c.Format == FormatJSON {
		dest = strings.TrimSuffix(dest, ".js") + ".json"
	}

	return dest
}

// Rules converts configured entries into export rules.
func (c *Config) Rules() []i18nscope.Rule {
	rules := make([]i18nscope.Rule, 0, len(c.Translations))
	for _, e := range c.Translations {
		perLocale := strings.Contains(e.File, i18nscope.LocalePlaceholder)
		if e.PerLocale != nil {
			perLocale = *e.PerLocale
		}

		rules = append(rules, i18nscope.Rule{
			Patterns:    trimAll(e.Only),
			Except:      trimAll(e.Except),
			Destination: strings.TrimSpace(e.File),
			PerLocale:   perLocale,
		})
	}

	return rules
}

// PlanOptions returns planner options derived from configuration.
func (c *Config) PlanOptions() i18nscope.PlanOptions {
	return i18nscope.PlanOptions{
		DefaultDestination: c.DefaultDestination(),
		Locales:            c.Locales,
	}
}

// normalize trims values and validates enums and locales.
func (c *Config) normalize() error {
	c.ExportDir = strings.TrimSpace(c.ExportDir)
	c.Namespace = strings.TrimSpace(c.Namespace)
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	c.Sources = trimAll(c.Sources)

	switch c.Format {
	case FormatJS, FormatJSON:
	default:
		return fmt.Errorf("%w: format %q", ErrInvalidConfig, c.Format)
	}

	if c.Format == FormatJS && c.Namespace == "" {
		return fmt.Errorf("%w: namespace is required for js output", ErrInvalidConfig)
	}

	locales, err := i18nscope.ParseLocales(c.Locales)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	c.Locales = locales
	return nil
}

// trimAll trims values and drops empty ones.
func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}

	return out
}
