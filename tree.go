// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/i18nscope

package i18nscope

import (
	"slices"
	"strings"
)

// Tree is a nested translation mapping.
//
// At the top level keys are locales. Values are scalars (string, number,
// bool, nil) or nested mappings stored either as Tree or map[string]any.
type Tree map[string]any

// Keys returns tree keys in lexical order.
func (t Tree) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}

	slices.Sort(keys)
	return keys
}

// Lookup returns the value at dot-separated path.
func (t Tree) Lookup(path string) (any, bool) {
	if path == "" {
		return nil, false
	}

	var node any = t
	for part := range strings.SplitSeq(path, ".") {
		m, ok := asTree(node)
		if !ok {
			return nil, false
		}

		node, ok = m[part]
		if !ok {
			return nil, false
		}
	}

	return node, true
}

// Clone returns a deep copy of all nested mappings. Scalars are shared.
func (t Tree) Clone() Tree {
	if t == nil {
		return nil
	}

	out := make(Tree, len(t))
	for k, v := range t {
		out[k] = cloneValue(v)
	}

	return out
}

// asTree reports whether v is a nested mapping and returns it as Tree.
func asTree(v any) (Tree, bool) {
	switch m := v.(type) {
	case Tree:
		return m, true
	case map[string]any:
		return Tree(m), true
	default:
		return nil, false
	}
}

// cloneValue deep-copies mapping values and returns scalars unchanged.
func cloneValue(v any) any {
	m, ok := asTree(v)
	if !ok {
		return v
	}

	return m.Clone()
}
