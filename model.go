// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/i18nscope

package i18nscope

import "strings"

const (
	// Wildcard is the scope segment that selects every key at its level.
	Wildcard = "*"
	// LocalePlaceholder is replaced by the locale identifier in per-locale destinations.
	LocalePlaceholder = "%{locale}"
	// DefaultExportDir is the directory used for the implicit destination.
	DefaultExportDir = "public/javascripts"
	// DefaultFileName is the file name used for the implicit destination.
	DefaultFileName = "translations.js"
)

// Rule is one export rule: which scopes go to which destination.
type Rule struct {
	// Patterns are scope patterns unioned into one result. Empty means "*".
	Patterns []string `json:"only,omitempty" yaml:"only,omitempty"`
	// Except are scope patterns removed from the union.
	Except []string `json:"except,omitempty" yaml:"except,omitempty"`
	// Destination is the output key, may contain LocalePlaceholder.
	// Empty means PlanOptions.DefaultDestination.
	Destination string `json:"file,omitempty" yaml:"file,omitempty"`
	// PerLocale splits the rule into one destination per locale.
	PerLocale bool `json:"per_locale,omitempty" yaml:"per_locale,omitempty"`
}

// PlanOptions controls segment planning.
type PlanOptions struct {
	// DefaultDestination is used by the implicit rule and by rules without
	// a destination. Empty value defaults to "public/javascripts/translations.js".
	DefaultDestination string `json:"default_destination,omitempty" yaml:"default_destination,omitempty"`
	// Locales restricts output to these top-level keys. Empty means no restriction.
	Locales []string `json:"locales,omitempty" yaml:"locales,omitempty"`
}

// MatcherOptions controls scope matcher behavior.
type MatcherOptions struct {
	// Locales restricts output to these top-level keys. Empty means no restriction.
	Locales []string `json:"locales,omitempty" yaml:"locales,omitempty"`
	// Except are scope patterns removed after all patterns were merged.
	Except []string `json:"except,omitempty" yaml:"except,omitempty"`
}

// DefaultDestination returns the implicit destination inside exportDir.
func DefaultDestination(exportDir string) string {
	exportDir = strings.TrimRight(strings.TrimSpace(exportDir), "/")
	if exportDir == "" {
		exportDir = DefaultExportDir
	}

	return exportDir + "/" + DefaultFileName
}

// ExpandDestination substitutes locale into every LocalePlaceholder of template.
func ExpandDestination(template string, locale string) string {
	return strings.ReplaceAll(template, LocalePlaceholder, locale)
}

// applyDefaults fills zero-valued options with defaults.
func (opts *PlanOptions) applyDefaults() {
	if strings.TrimSpace(opts.DefaultDestination) == "" {
		opts.DefaultDestination = DefaultDestination("")
	}
}

// withDefaults returns a copy of rule with absent pattern and destination resolved.
func (r Rule) withDefaults(defaultDestination string) Rule {
	patterns := make([]string, 0, len(r.Patterns))
	for _, p := range r.Patterns {
		if strings.TrimSpace(p) != "" {
			patterns = append(patterns, p)
		}
	}

	if len(patterns) == 0 {
		patterns = append(patterns, Wildcard)
	}

	r.Patterns = patterns
	if strings.TrimSpace(r.Destination) == "" {
		r.Destination = defaultDestination
	}

	return r
}
