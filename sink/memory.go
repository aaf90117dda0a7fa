// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/i18nscope

package sink

import (
	"sync"

	"github.com/woozymasta/i18nscope"
)

// Record is one write captured by Memory.
type Record struct {
	// Destination is the written destination key.
	Destination string
	// Translations is a copy of the written tree.
	Translations i18nscope.Tree
}

// Memory keeps writes in order instead of persisting them.
type Memory struct {
	// records are captured writes in write order.
	records []Record
	// mu guards records.
	mu sync.Mutex
}

// Write stores a copy of tree.
func (m *Memory) Write(destination string, tree i18nscope.Tree) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = append(m.records, Record{
		Destination:  destination,
		Translations: tree.Clone(),
	})

	return nil
}

// Records returns captured writes in write order.
func (m *Memory) Records() []Record {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Record, len(m.records))
	copy(out, m.records)
	return out
}

// Destinations returns captured destinations in write order.
func (m *Memory) Destinations() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, 0, len(m.records))
	for _, r := range m.records {
		out = append(out, r.Destination)
	}

	return out
}
