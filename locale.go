// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/i18nscope

package i18nscope

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// ParseLocales validates and de-duplicates locale identifiers.
//
// Values are trimmed and empty values are skipped. Identifiers must be
// well-formed BCP 47 tags; "_" is accepted as a subtag separator
// ("pt_BR"). Returned values keep their original spelling and first-seen
// order, since they are compared verbatim with tree keys.
func ParseLocales(raw []string) ([]string, error) {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))

	for _, locale := range raw {
		locale = strings.TrimSpace(locale)
		if locale == "" {
			continue
		}

		if _, err := language.Parse(strings.ReplaceAll(locale, "_", "-")); err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrInvalidLocale, locale, err)
		}

		if _, ok := seen[locale]; ok {
			continue
		}

		seen[locale] = struct{}{}
		out = append(out, locale)
	}

	return out, nil
}

// LocalesOf returns top-level tree keys in lexical order.
func LocalesOf(tree Tree) []string {
	return tree.Keys()
}
