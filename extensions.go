// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/i18nscope

package i18nscope

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a translation file encoding.
type Format uint8

const (
	// FormatUnknown is unset/invalid format placeholder.
	FormatUnknown Format = iota
	// FormatYAML is a YAML document.
	FormatYAML
	// FormatJSON is a JSON document.
	FormatJSON
	// FormatTOML is a TOML document.
	FormatTOML
)

// formatsByExtension maps lower-case extensions without dot to formats.
var formatsByExtension = map[string]Format{
	"yml":  FormatYAML,
	"yaml": FormatYAML,
	"json": FormatJSON,
	"toml": FormatTOML,
}

// String returns canonical format name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// ParseFormat converts format or extension name to Format.
func ParseFormat(name string) (Format, error) {
	exts := ParseExtensions([]string{name})
	if len(exts) == 1 {
		if f, ok := formatsByExtension[exts[0]]; ok {
			return f, nil
		}
	}

	return FormatUnknown, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// FormatForPath detects format from file extension.
func FormatForPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return FormatUnknown, fmt.Errorf("%w: no extension in %q", ErrUnsupportedFormat, path)
	}

	f, err := ParseFormat(ext)
	if err != nil {
		return FormatUnknown, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}

	return f, nil
}

// ParseExtensions normalizes an extension list.
//
// Accepted extension forms:
//   - "yml"
//   - ".yml"
//   - "*.yml"
//
// Empty values are skipped. Returned values are lower-case without dot and
// preserve input order.
func ParseExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		ext = strings.TrimPrefix(ext, "*.")
		ext = strings.TrimLeft(ext, ".")
		ext = strings.ToLower(ext)
		if ext == "" {
			continue
		}

		out = append(out, ext)
	}

	return out
}

// supportedExtension reports whether ext (with or without dot) has a parser.
func supportedExtension(ext string) bool {
	_, ok := formatsByExtension[strings.ToLower(strings.TrimLeft(ext, "."))]
	return ok
}
