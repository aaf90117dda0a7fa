// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/i18nscope

package i18nscope

import "strings"

// Scope is a compiled dot-separated scope pattern.
type Scope struct {
	// source is original pattern text.
	source string
	// segments are pattern segments in walk order, first one addresses locales.
	segments []segment
}

// segment is one precompiled scope segment.
type segment struct {
	// text is raw segment text.
	text string
	// wildcard reports whether segment selects every key.
	wildcard bool
}

// ParseScope compiles pattern into a Scope.
//
// Blank pattern compiles to a scope without segments that matches nothing.
func ParseScope(pattern string) Scope {
	s := Scope{source: pattern}
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return s
	}

	s.segments = make([]segment, 0, strings.Count(pattern, ".")+1)
	for part := range strings.SplitSeq(pattern, ".") {
		s.segments = append(s.segments, segment{
			text:     part,
			wildcard: part == Wildcard,
		})
	}

	return s
}

// String returns original pattern text.
func (s Scope) String() string {
	return s.source
}

// Empty reports whether scope has no segments and therefore matches nothing.
func (s Scope) Empty() bool {
	return len(s.segments) == 0
}

// Filter returns the part of tree selected by scope.
//
// Matched values keep their exact path from the tree root. The result never
// aliases tree mappings and is never nil.
func (s Scope) Filter(tree Tree) Tree {
	if s.Empty() {
		return Tree{}
	}

	out, ok := filterSegments(tree, s.segments)
	if !ok {
		return Tree{}
	}

	return out
}

// Remove deletes every value selected by scope from tree in place.
//
// Mappings left empty by removal are kept.
func (s Scope) Remove(tree Tree) {
	if s.Empty() {
		return
	}

	removeSegments(tree, s.segments)
}

// Filter returns the part of tree selected by one scope pattern.
func Filter(tree Tree, pattern string) Tree {
	return ParseScope(pattern).Filter(tree)
}

// filterSegments walks node with segments.
//
// Returns false when nothing is reachable: node is not a mapping or a
// literal segment key is absent. A wildcard over a mapping always yields
// a (possibly empty) mapping.
func filterSegments(node any, segments []segment) (Tree, bool) {
	m, ok := asTree(node)
	if !ok {
		return nil, false
	}

	seg := segments[0]
	rest := segments[1:]

	if seg.wildcard {
		out := make(Tree, len(m))
		for key, value := range m {
			if len(rest) == 0 {
				out[key] = cloneValue(value)
				continue
			}

			if sub, ok := filterSegments(value, rest); ok {
				out[key] = sub
			}
		}

		return out, true
	}

	value, ok := m[seg.text]
	if !ok {
		return nil, false
	}

	if len(rest) == 0 {
		return Tree{seg.text: cloneValue(value)}, true
	}

	sub, ok := filterSegments(value, rest)
	if !ok {
		return nil, false
	}

	return Tree{seg.text: sub}, true
}

// removeSegments deletes terminal keys reachable through segments.
func removeSegments(node any, segments []segment) {
	m, ok := asTree(node)
	if !ok {
		return
	}

	seg := segments[0]
	rest := segments[1:]

	if seg.wildcard {
		if len(rest) == 0 {
			clear(m)
			return
		}

		for _, value := range m {
			removeSegments(value, rest)
		}

		return
	}

	if len(rest) == 0 {
		delete(m, seg.text)
		return
	}

	removeSegments(m[seg.text], rest)
}
