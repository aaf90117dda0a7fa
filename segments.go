// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/i18nscope

package i18nscope

import "iter"

// Segment is one planned output: destination key and its translations.
type Segment struct {
	// Destination is the resolved destination key.
	Destination string `json:"destination" yaml:"destination"`
	// Translations is the filtered tree written to destination.
	Translations Tree `json:"translations" yaml:"translations"`
}

// Segments is an insertion-ordered destination map.
//
// Iteration follows the order in which destinations were first added.
type Segments struct {
	// index maps destination to position in items.
	index map[string]int
	// items holds segments in first-insertion order.
	items []Segment
}

// newSegments creates an empty segment map.
func newSegments() *Segments {
	return &Segments{index: make(map[string]int)}
}

// Len returns number of destinations.
func (s *Segments) Len() int {
	if s == nil {
		return 0
	}

	return len(s.items)
}

// Keys returns destinations in first-insertion order.
func (s *Segments) Keys() []string {
	if s == nil {
		return nil
	}

	keys := make([]string, len(s.items))
	for i := range s.items {
		keys[i] = s.items[i].Destination
	}

	return keys
}

// Get returns translations planned for destination.
func (s *Segments) Get(destination string) (Tree, bool) {
	if s == nil {
		return nil, false
	}

	i, ok := s.index[destination]
	if !ok {
		return nil, false
	}

	return s.items[i].Translations, true
}

// Items returns a copy of the ordered segment list.
func (s *Segments) Items() []Segment {
	if s == nil {
		return nil
	}

	out := make([]Segment, len(s.items))
	copy(out, s.items)
	return out
}

// All iterates destinations and translations in first-insertion order.
func (s *Segments) All() iter.Seq2[string, Tree] {
	return func(yield func(string, Tree) bool) {
		if s == nil {
			return
		}

		for i := range s.items {
			if !yield(s.items[i].Destination, s.items[i].Translations) {
				return
			}
		}
	}
}

// merge deep-merges tree into destination, appending destination when new.
func (s *Segments) merge(destination string, tree Tree) {
	if i, ok := s.index[destination]; ok {
		DeepMergeInto(s.items[i].Translations, tree)
		return
	}

	s.index[destination] = len(s.items)
	s.items = append(s.items, Segment{
		Destination:  destination,
		Translations: DeepMergeInto(nil, tree),
	})
}

// stripNil replaces every segment tree with its nil-stripped copy.
func (s *Segments) stripNil() {
	for i := range s.items {
		s.items[i].Translations = StripNilValues(s.items[i].Translations)
	}
}
