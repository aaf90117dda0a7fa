// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/i18nscope

package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/woozymasta/i18nscope"
	"github.com/woozymasta/i18nscope/config"
	"github.com/woozymasta/i18nscope/exporter"
	"github.com/woozymasta/i18nscope/internal/logging"
)

// Build metadata, set with -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globalFlags are persistent flags shared by every command.
type globalFlags struct {
	// configPath is an explicit configuration file.
	configPath string
	// root is the project root for sources, destinations and config lookup.
	root string
	// sources override configured sources.
	sources []string
	// locales override configured locales.
	locales []string
	// envFiles are dotenv files loaded before configuration.
	envFiles []string
	// verbosity is the -v count.
	verbosity int
}

// NewRootCmd creates the root command with all subcommands.
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "i18nscope",
		Short: "Export scoped translation segments",
		Long: `i18nscope loads translation trees, selects subtrees with dot-separated
scope patterns ("*.date.formats", "*.admin.*.title") and writes one output
per configured destination, optionally split per locale.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(flags.verbosity, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "config file (default config/i18n-js.yml or $XDG_CONFIG_HOME/i18nscope/config.yml)")
	pf.StringVar(&flags.root, "root", "", "project root for relative sources, destinations and the default config/i18n-js.yml")
	pf.StringSliceVarP(&flags.sources, "source", "s", nil, "translation file or directory, repeatable (overrides config sources)")
	pf.StringSliceVarP(&flags.locales, "locale", "l", nil, "restrict exported locales, repeatable (overrides config locales)")
	pf.StringSliceVar(&flags.envFiles, "env-file", nil, "dotenv files loaded before configuration (default .env)")
	pf.CountVarP(&flags.verbosity, "verbose", "v", "increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(newExportCmd(flags))
	rootCmd.AddCommand(newSegmentsCmd(flags))
	rootCmd.AddCommand(newFilterCmd(flags))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// loadConfig loads configuration and applies command-line overrides.
func (f *globalFlags) loadConfig() (*config.Config, error) {
	if err := config.LoadDotEnv(f.envFiles...); err != nil {
		return nil, err
	}

	cfg, err := config.LoadIn(f.root, f.configPath)
	if err != nil {
		return nil, err
	}

	logger := logging.GetLogger("cli")
	if cfg.Found() {
		logger.Debug().Str("path", cfg.Path()).Msg("configuration loaded")
	} else {
		logger.Debug().Msg("no configuration file, using defaults")
	}

	if len(f.sources) > 0 {
		cfg.Sources = f.sources
	}

	if len(f.locales) > 0 {
		locales, err := i18nscope.ParseLocales(f.locales)
		if err != nil {
			return nil, fmt.Errorf("--locale: %w", err)
		}

		cfg.Locales = locales
	}

	return cfg, nil
}

// newExporter builds an exporter from flags.
func (f *globalFlags) newExporter(opts exporter.Options) (*config.Config, *exporter.Exporter, error) {
	cfg, err := f.loadConfig()
	if err != nil {
		return nil, nil, err
	}

	opts.Root = f.root
	opts.Logger = log.Logger

	exp, err := exporter.New(cfg, opts)
	if err != nil {
		return nil, nil, err
	}

	return cfg, exp, nil
}
