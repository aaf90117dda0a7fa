// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/i18nscope

package i18nscope

// StripNilValues returns a copy of t without nil-valued keys at any depth.
//
// Nested mappings that become empty are kept as empty mappings.
func StripNilValues(t Tree) Tree {
	out := make(Tree, len(t))
	for k, v := range t {
		if v == nil {
			continue
		}

		if sub, ok := asTree(v); ok {
			out[k] = StripNilValues(sub)
			continue
		}

		out[k] = v
	}

	return out
}
