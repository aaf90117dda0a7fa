// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/i18nscope

// Package exporter wires configuration, translation sources, the segment
// planner and a sink into one export run.
package exporter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/woozymasta/i18nscope"
	"github.com/woozymasta/i18nscope/config"
	"github.com/woozymasta/i18nscope/sink"
)

// ErrNilConfig indicates New was called without configuration.
var ErrNilConfig = errors.New("nil configuration")

// Options configures an Exporter.
type Options struct {
	// Writer receives rendered segments. Nil writes files below Root.
	Writer sink.Writer
	// Logger receives progress events. Zero value disables logging.
	Logger zerolog.Logger
	// Root resolves relative sources and destinations. Empty means the
	// working directory.
	Root string
	// Preprocessor enables Register. Set it from SupportsPreprocessor.
	Preprocessor bool
	// StrictSources fails on missing sources instead of skipping them.
	StrictSources bool
}

// Exporter runs exports for one configuration.
type Exporter struct {
	// cfg is the export configuration.
	cfg *config.Config
	// writer receives rendered segments.
	writer sink.Writer
	// sources caches directory sources by absolute path across runs.
	sources map[string]*i18nscope.Source
	// log is the component logger.
	log zerolog.Logger
	// opts are construction options.
	opts Options
	// mu guards sources.
	mu sync.Mutex
}

// New creates an exporter for cfg.
func New(cfg *config.Config, opts Options) (*Exporter, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	writer := opts.Writer
	if writer == nil {
		writer = &sink.FileWriter{
			Root: opts.Root,
			Options: sink.Options{
				Format:    cfg.Format,
				Namespace: cfg.Namespace,
				Pretty:    cfg.Pretty,
			},
		}
	}

	return &Exporter{
		cfg:     cfg,
		writer:  writer,
		sources: make(map[string]*i18nscope.Source),
		log:     opts.Logger.With().Str("component", "exporter").Logger(),
		opts:    opts,
	}, nil
}

// Translations loads and merges every configured source, later sources win.
func (e *Exporter) Translations() (i18nscope.Tree, error) {
	tree := i18nscope.Tree{}
	for _, src := range e.cfg.Sources {
		loaded, err := e.loadSource(src)
		if err != nil {
			return nil, err
		}

		if loaded != nil {
			i18nscope.DeepMergeInto(tree, loaded)
		}
	}

	return tree, nil
}

// Segments plans destinations without writing them.
func (e *Exporter) Segments() (*i18nscope.Segments, error) {
	tree, err := e.Translations()
	if err != nil {
		return nil, err
	}

	return e.plan(tree), nil
}

// Export plans destinations and writes each through the writer in plan order.
func (e *Exporter) Export(ctx context.Context) (*i18nscope.Segments, error) {
	segments, err := e.Segments()
	if err != nil {
		return nil, err
	}

	for dest, tree := range segments.All() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := e.writer.Write(dest, tree); err != nil {
			return nil, fmt.Errorf("export %s: %w", dest, err)
		}

		e.log.Info().
			Str("destination", dest).
			Int("locales", len(tree)).
			Msg("segment written")
	}

	return segments, nil
}

// Register installs a preprocessor on host that re-renders planned
// destinations from current translations. Reports whether it was installed.
func (e *Exporter) Register(host any) bool {
	if !e.opts.Preprocessor || !SupportsPreprocessor(host) {
		return false
	}

	opts := sink.Options{Format: e.cfg.Format, Namespace: e.cfg.Namespace, Pretty: e.cfg.Pretty}
	host.(PreprocessorHost).RegisterPreprocessor(ScriptMimeType, func(assetPath string, data []byte) ([]byte, error) {
		segments, err := e.Segments()
		if err != nil {
			return nil, err
		}

		dest, ok := matchDestination(segments, assetPath)
		if !ok {
			return data, nil
		}

		tree, _ := segments.Get(dest)
		e.log.Debug().Str("asset", assetPath).Str("destination", dest).Msg("preprocess translations")
		return sink.Render(tree, opts)
	})

	e.log.Debug().Str("mime", ScriptMimeType).Msg("preprocessor registered")
	return true
}

// plan resolves configured rules against tree.
func (e *Exporter) plan(tree i18nscope.Tree) *i18nscope.Segments {
	rules := e.cfg.Rules()
	opts := e.cfg.PlanOptions()
	segments := i18nscope.Plan(tree, rules, opts)
	e.log.Debug().
		Int("rules", len(rules)).
		Strs("locales", opts.Locales).
		Strs("destinations", segments.Keys()).
		Msg("segments planned")

	return segments
}

// loadSource reads one configured source: a directory or a single file.
func (e *Exporter) loadSource(src string) (i18nscope.Tree, error) {
	full := e.resolve(src)

	info, err := os.Stat(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !e.opts.StrictSources {
			e.log.Warn().Str("source", src).Msg("translation source not found, skipped")
			return nil, nil
		}

		return nil, fmt.Errorf("source %s: %w", src, err)
	}

	if !info.IsDir() {
		e.log.Debug().Str("source", src).Msg("load translation file")
		if e.cfg.MessageFiles {
			return i18nscope.LoadMessageFile(full)
		}

		return i18nscope.LoadTreeFile(full)
	}

	source, err := e.directory(full)
	if err != nil {
		return nil, fmt.Errorf("source %s: %w", src, err)
	}

	e.log.Debug().Str("source", src).Msg("load translation directory")
	tree, err := source.Load()
	if err != nil {
		return nil, fmt.Errorf("source %s: %w", src, err)
	}

	return tree, nil
}

// directory returns the cached Source for an absolute directory path.
func (e *Exporter) directory(full string) (*i18nscope.Source, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if s, ok := e.sources[full]; ok {
		return s, nil
	}

	s, err := i18nscope.NewSource(full, i18nscope.SourceOptions{
		MessageFiles:             e.cfg.MessageFiles,
		EnableSymlinkEscapeCheck: true,
	})
	if err != nil {
		return nil, err
	}

	e.sources[full] = s
	return s, nil
}

// resolve joins relative source paths with Options.Root.
func (e *Exporter) resolve(p string) string {
	if e.opts.Root == "" || filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(e.opts.Root, p)
}

// matchDestination finds the planned destination an asset path refers to.
func matchDestination(segments *i18nscope.Segments, assetPath string) (string, bool) {
	asset := path.Clean(filepath.ToSlash(assetPath))
	for _, dest := range segments.Keys() {
		d := path.Clean(filepath.ToSlash(dest))
		if asset == d || strings.HasSuffix(asset, "/"+d) {
			return dest, true
		}
	}

	return "", false
}
