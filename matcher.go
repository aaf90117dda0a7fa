// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/i18nscope

package i18nscope

// Matcher applies a union of compiled scopes to translation trees.
type Matcher struct {
	scopes  []Scope
	except  []Scope
	locales map[string]struct{}
}

// NewMatcher compiles ordered scope patterns into matcher.
func NewMatcher(patterns []string, opts MatcherOptions) *Matcher {
	m := &Matcher{
		scopes: make([]Scope, 0, len(patterns)),
		except: make([]Scope, 0, len(opts.Except)),
	}

	for _, p := range patterns {
		m.scopes = append(m.scopes, ParseScope(p))
	}

	for _, p := range opts.Except {
		if s := ParseScope(p); !s.Empty() {
			m.except = append(m.except, s)
		}
	}

	if len(opts.Locales) > 0 {
		m.locales = make(map[string]struct{}, len(opts.Locales))
		for _, locale := range opts.Locales {
			m.locales[locale] = struct{}{}
		}
	}

	return m
}

// Apply returns the merged selection of all matcher scopes.
//
// Merge policy:
// - scope results are deep-merged in pattern order, later wins on collision
// - except scopes are removed from the merged result
// - top-level keys outside the locale set are dropped
func (m *Matcher) Apply(tree Tree) Tree {
	out := make(Tree)
	for i := range m.scopes {
		DeepMergeInto(out, m.scopes[i].Filter(tree))
	}

	for i := range m.except {
		m.except[i].Remove(out)
	}

	if m.locales != nil {
		for key := range out {
			if _, ok := m.locales[key]; !ok {
				delete(out, key)
			}
		}
	}

	return out
}

// ScopedTranslations filters tree with every pattern and merges results.
//
// When locales is non-empty only those top-level keys are kept.
func ScopedTranslations(tree Tree, patterns []string, locales []string) Tree {
	return NewMatcher(patterns, MatcherOptions{Locales: locales}).Apply(tree)
}

// FilterLocales returns a shallow copy of tree with only listed top-level keys.
//
// Empty locales means no restriction.
func FilterLocales(tree Tree, locales []string) Tree {
	if len(locales) == 0 {
		out := make(Tree, len(tree))
		for k, v := range tree {
			out[k] = v
		}

		return out
	}

	out := make(Tree, len(locales))
	for _, locale := range locales {
		if v, ok := tree[locale]; ok {
			out[locale] = v
		}
	}

	return out
}
