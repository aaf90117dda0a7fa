// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/i18nscope

package i18nscope

// Plan resolves export rules into destination trees.
//
// Planning policy:
//   - no rules means one implicit rule: pattern "*" to the default destination
//   - rules are processed in order; a per-locale rule expands once per locale
//     (opts.Locales, or every top-level tree key in lexical order when empty)
//   - contributions to the same destination are deep-merged, later wins
//   - every final tree has nil values stripped
func Plan(tree Tree, rules []Rule, opts PlanOptions) *Segments {
	opts.applyDefaults()

	if len(rules) == 0 {
		rules = []Rule{{}}
	}

	out := newSegments()
	for _, rule := range rules {
		rule = rule.withDefaults(opts.DefaultDestination)

		if !rule.PerLocale {
			m := NewMatcher(rule.Patterns, MatcherOptions{
				Locales: opts.Locales,
				Except:  rule.Except,
			})
			out.merge(rule.Destination, m.Apply(tree))
			continue
		}

		locales := opts.Locales
		if len(locales) == 0 {
			locales = LocalesOf(tree)
		}

		for _, locale := range locales {
			m := NewMatcher(rule.Patterns, MatcherOptions{
				Locales: []string{locale},
				Except:  rule.Except,
			})
			out.merge(ExpandDestination(rule.Destination, locale), m.Apply(tree))
		}
	}

	out.stripNil()
	return out
}
