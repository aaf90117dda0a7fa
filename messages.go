// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/i18nscope

package i18nscope

import (
	"fmt"
	"os"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// messageUnmarshalers are decoders for go-i18n message files; JSON is built in.
var messageUnmarshalers = map[string]i18n.UnmarshalFunc{
	"toml": toml.Unmarshal,
	"yaml": yaml.Unmarshal,
	"yml":  yaml.Unmarshal,
}

// ParseMessageFile converts a go-i18n message file into a translation tree.
//
// The locale is taken from the file name ("active.fr.toml" -> "fr").
// Dotted message IDs become nested keys. A message with only the "other"
// form becomes a string leaf, otherwise a mapping of its plural forms.
func ParseMessageFile(buf []byte, path string) (Tree, error) {
	mf, err := i18n.ParseMessageFileBytes(buf, path, messageUnmarshalers)
	if err != nil {
		return nil, fmt.Errorf("parse message file %s: %w", path, err)
	}

	if mf.Tag == language.Und {
		return nil, fmt.Errorf("%w: no language tag in message file name %q", ErrInvalidLocale, path)
	}

	messages := make(Tree, len(mf.Messages))
	for _, msg := range mf.Messages {
		if msg == nil || strings.TrimSpace(msg.ID) == "" {
			continue
		}

		DeepMergeInto(messages, nestPath(msg.ID, messageValue(msg)))
	}

	return Tree{mf.Tag.String(): messages}, nil
}

// LoadMessageFile reads and converts a go-i18n message file.
func LoadMessageFile(path string) (Tree, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read message file: %w", err)
	}

	return ParseMessageFile(buf, path)
}

// messageValue returns the leaf stored for one message.
func messageValue(msg *i18n.Message) any {
	forms := map[string]any{}
	for _, form := range []struct {
		name  string
		value string
	}{
		{"zero", msg.Zero},
		{"one", msg.One},
		{"two", msg.Two},
		{"few", msg.Few},
		{"many", msg.Many},
		{"other", msg.Other},
	} {
		if form.value != "" {
			forms[form.name] = form.value
		}
	}

	if len(forms) == 1 && msg.Other != "" {
		return msg.Other
	}

	return forms
}

// nestPath wraps value into nested mappings following dotted path.
func nestPath(path string, value any) Tree {
	parts := strings.Split(path, ".")
	node := value
	for i := len(parts) - 1; i > 0; i-- {
		node = map[string]any{parts[i]: node}
	}

	return Tree{parts[0]: node}
}
