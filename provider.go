// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/i18nscope

package i18nscope

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// SourceOptions configures directory translation source behavior.
type SourceOptions struct {
	// Extensions limits loaded files. Empty value loads every supported format.
	Extensions []string `json:"extensions,omitempty" yaml:"extensions,omitempty"`
	// MessageFiles treats files as go-i18n message files ("active.en.toml")
	// instead of locale-keyed trees.
	MessageFiles bool `json:"message_files,omitempty" yaml:"message_files,omitempty"`
	// EnableSymlinkEscapeCheck enables resolved-path validation to block
	// symlink escapes outside source root.
	EnableSymlinkEscapeCheck bool `json:"enable_symlink_escape_check,omitempty" yaml:"enable_symlink_escape_check,omitempty"`
}

// Source loads every translation file below a root directory into one tree.
type Source struct {
	// cache stores parsed files by relative path.
	cache map[string]*cachedFile
	// extensions are accepted lower-case extensions without dot.
	extensions map[string]struct{}
	// root is absolute source root directory path.
	root string
	// resolvedRoot is source root with symlinks resolved when possible.
	resolvedRoot string

	// mu guards cache access.
	mu sync.Mutex
	// messageFiles selects go-i18n message file parsing.
	messageFiles bool
	// enableSymlinkEscapeCheck enables resolved-path root boundary validation.
	enableSymlinkEscapeCheck bool
}

// cachedFile stores one parsed file or its parse error.
type cachedFile struct {
	// tree is parsed file content, never handed out without cloning.
	tree Tree
	// err stores read/parse error for deterministic repeated calls.
	err error
	// modTime and size identify the file revision that was parsed.
	modTime time.Time
	size    int64
	// loading reports whether file is currently being parsed by another goroutine.
	loading bool
	// wg coordinates concurrent waiters for one parse attempt.
	wg sync.WaitGroup
}

// NewSource creates a translation source rooted at rootDir.
func NewSource(rootDir string, opts SourceOptions) (*Source, error) {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("abs root: %w", err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("source root %s: not a directory", absRoot)
	}

	resolvedRoot := absRoot
	if opts.EnableSymlinkEscapeCheck {
		resolvedRoot, err = resolvePathOrAbs(absRoot)
		if err != nil {
			return nil, fmt.Errorf("resolve root: %w", err)
		}
	}

	extensions := make(map[string]struct{})
	for _, ext := range ParseExtensions(opts.Extensions) {
		if !supportedExtension(ext) {
			return nil, fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, ext)
		}

		extensions[ext] = struct{}{}
	}

	if len(extensions) == 0 {
		for ext := range formatsByExtension {
			extensions[ext] = struct{}{}
		}
	}

	return &Source{
		root:                     absRoot,
		resolvedRoot:             resolvedRoot,
		extensions:               extensions,
		messageFiles:             opts.MessageFiles,
		enableSymlinkEscapeCheck: opts.EnableSymlinkEscapeCheck,
		cache:                    make(map[string]*cachedFile),
	}, nil
}

// Root returns absolute source root directory.
func (s *Source) Root() string {
	if s == nil {
		return ""
	}

	return s.root
}

// Files returns relative slash-separated paths of all loadable files in lexical order.
func (s *Source) Files() ([]string, error) {
	if s == nil {
		return nil, ErrNilSource
	}

	files := make([]string, 0, 16)
	err := filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := ParseExtensions([]string{filepath.Ext(p)})
		if len(ext) != 1 {
			return nil
		}

		if _, ok := s.extensions[ext[0]]; !ok {
			return nil
		}

		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}

		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", s.root, err)
	}

	return files, nil
}

// Load parses every loadable file and deep-merges them in lexical path order.
//
// Later files win on scalar collisions.
func (s *Source) Load() (Tree, error) {
	files, err := s.Files()
	if err != nil {
		return nil, err
	}

	out := make(Tree)
	for _, rel := range files {
		tree, err := s.LoadFile(rel)
		if err != nil {
			return nil, err
		}

		DeepMergeInto(out, tree)
	}

	return out, nil
}

// LoadFile parses one file relative to source root.
//
// Parsed files are cached until their modification time or size changes.
// The returned tree is owned by the caller.
func (s *Source) LoadFile(relPath string) (Tree, error) {
	if s == nil {
		return nil, ErrNilSource
	}

	rel, err := cleanRelPath(relPath)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", relPath, err)
	}

	full, err := s.resolveFilePath(rel)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(full)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", full, err)
	}

	s.mu.Lock()
	cached, ok := s.cache[rel]
	if ok && (cached.loading || cached.sameRevision(info)) {
		loading := cached.loading
		s.mu.Unlock()
		if loading {
			cached.wg.Wait()
		}

		return unwrapCachedFile(cached)
	}

	cached = &cachedFile{
		loading: true,
		modTime: info.ModTime(),
		size:    info.Size(),
	}
	cached.wg.Add(1)
	s.cache[rel] = cached
	s.mu.Unlock()

	tree, loadErr := s.parseFile(full)

	s.mu.Lock()
	cached.tree = tree
	cached.err = loadErr
	cached.loading = false
	cached.wg.Done()
	s.mu.Unlock()

	return unwrapCachedFile(cached)
}

// resolveFilePath joins relative path with root and validates root boundary.
func (s *Source) resolveFilePath(rel string) (string, error) {
	full := filepath.Join(s.root, filepath.FromSlash(rel))
	if !s.enableSymlinkEscapeCheck {
		return full, nil
	}

	resolved, err := resolvePathOrAbs(full)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", full, err)
	}

	if !isPathWithinRoot(s.resolvedRoot, resolved) {
		return "", fmt.Errorf("%w: %s", ErrPathOutsideRoot, full)
	}

	return full, nil
}

// parseFile reads one file with the parser selected by source options.
func (s *Source) parseFile(full string) (Tree, error) {
	if s.messageFiles {
		return LoadMessageFile(full)
	}

	return LoadTreeFile(full)
}

// sameRevision reports whether cached entry was parsed from the file described by info.
func (c *cachedFile) sameRevision(info fs.FileInfo) bool {
	return c.size == info.Size() && c.modTime.Equal(info.ModTime())
}

// unwrapCachedFile returns a caller-owned copy of cached tree or the cached error.
func unwrapCachedFile(entry *cachedFile) (Tree, error) {
	if entry.err != nil {
		return nil, entry.err
	}

	return entry.tree.Clone(), nil
}
