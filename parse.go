// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/i18nscope

package i18nscope

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ParseTree decodes one translation document from reader.
//
// Semantics:
// - empty document yields an empty tree
// - document root must be a mapping
// - YAML mappings with non-string keys get stringified keys
// - JSON numbers are kept as json.Number to preserve their text
func ParseTree(r io.Reader, format Format) (Tree, error) {
	var (
		doc any
		err error
	)

	switch format {
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&doc)
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		err = dec.Decode(&doc)
	case FormatTOML:
		var m map[string]any
		err = toml.NewDecoder(r).Decode(&m)
		doc = m
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	if errors.Is(err, io.EOF) {
		return Tree{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}

	if doc == nil {
		return Tree{}, nil
	}

	root, ok := normalizeValue(doc).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: root is %T, want mapping", ErrInvalidTree, doc)
	}

	return Tree(root), nil
}

// ParseTreeBytes decodes one translation document from bytes.
func ParseTreeBytes(src []byte, format Format) (Tree, error) {
	return ParseTree(bytes.NewReader(src), format)
}

// ParseTreeString decodes one translation document from string input.
func ParseTreeString(src string, format Format) (Tree, error) {
	return ParseTree(strings.NewReader(src), format)
}

// normalizeValue converts decoder-specific containers into map[string]any and []any.
func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalizeValue(val)
		}

		return out
	case Tree:
		return normalizeValue(map[string]any(t))
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalizeValue(val)
		}

		return out
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = normalizeValue(t[i])
		}

		return out
	default:
		return v
	}
}
