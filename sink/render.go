// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/i18nscope

// Package sink renders planned segments and writes them to destinations.
package sink

import (
	"bytes"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/woozymasta/i18nscope"
)

// Output formats.
const (
	FormatJS   = "js"
	FormatJSON = "json"
)

// DefaultNamespace is the JavaScript object receiving translations.
const DefaultNamespace = "I18n"

// ErrUnknownFormat indicates an output format other than js or json.
var ErrUnknownFormat = errors.New("unknown output format")

// Writer persists one segment.
type Writer interface {
	Write(destination string, tree i18nscope.Tree) error
}

// Options controls rendering.
type Options struct {
	// Format is FormatJS (default) or FormatJSON.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
	// Namespace is the JavaScript object for FormatJS, default DefaultNamespace.
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	// Pretty indents JSON values.
	Pretty bool `json:"pretty,omitempty" yaml:"pretty,omitempty"`
}

// applyDefaults fills empty format and namespace.
func (o *Options) applyDefaults() {
	if o.Format == "" {
		o.Format = FormatJS
	}

	if o.Namespace == "" {
		o.Namespace = DefaultNamespace
	}
}

// Render serializes a segment tree.
//
// FormatJSON emits the tree as one JSON document. FormatJS emits a script
// assigning every locale to <namespace>.translations, locales sorted.
func Render(tree i18nscope.Tree, opts Options) ([]byte, error) {
	opts.applyDefaults()
	if tree == nil {
		tree = i18nscope.Tree{}
	}

	switch opts.Format {
	case FormatJSON:
		body, err := marshal(tree, opts.Pretty)
		if err != nil {
			return nil, err
		}

		return append(body, '\n'), nil

	case FormatJS:
		return renderScript(tree, opts)

	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, opts.Format)
	}
}

// renderScript emits one namespace assignment per locale in lexical order.
func renderScript(tree i18nscope.Tree, opts Options) ([]byte, error) {
	ns := opts.Namespace

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s.translations || (%s.translations = {});\n", ns, ns)

	for _, locale := range tree.Keys() {
		key, err := json.Marshal(locale)
		if err != nil {
			return nil, fmt.Errorf("encode locale %q: %w", locale, err)
		}

		body, err := marshal(tree[locale], opts.Pretty)
		if err != nil {
			return nil, fmt.Errorf("encode locale %q: %w", locale, err)
		}

		fmt.Fprintf(&buf, "%s.translations[%s] = %s;\n", ns, key, body)
	}

	return buf.Bytes(), nil
}

// marshal encodes v as compact or indented JSON.
func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}

	return json.Marshal(v)
}
