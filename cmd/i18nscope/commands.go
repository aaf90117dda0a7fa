// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/i18nscope

package main

import (
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/woozymasta/i18nscope"
	"github.com/woozymasta/i18nscope/exporter"
	"github.com/woozymasta/i18nscope/internal/logging"
	"github.com/woozymasta/i18nscope/sink"
)

// segmentInfo is the machine-readable summary of one planned segment.
type segmentInfo struct {
	// Destination is the planned destination key.
	Destination string `json:"destination"`
	// Locales are top-level keys of the segment tree.
	Locales []string `json:"locales"`
}

// newExportCmd creates the export command.
func newExportCmd(flags *globalFlags) *cobra.Command {
	var (
		dryRun bool
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every configured translation segment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.export")
			done := logging.LogOperationStart(logger, "export")
			defer done()

			opts := exporter.Options{StrictSources: strict}
			if dryRun {
				opts.Writer = &sink.Memory{}
			}

			_, exp, err := flags.newExporter(opts)
			if err != nil {
				return err
			}

			segments, err := exp.Export(cmd.Context())
			if err != nil {
				return err
			}

			verb := "wrote"
			if dryRun {
				verb = "would write"
			}

			out := cmd.OutOrStdout()
			for _, dest := range segments.Keys() {
				fmt.Fprintf(out, "%s %s\n", verb, dest)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "plan and render without writing files")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when a configured source does not exist")
	return cmd
}

// newSegmentsCmd creates the segments command.
func newSegmentsCmd(flags *globalFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "segments",
		Short: "Show planned destinations and their locales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, exp, err := flags.newExporter(exporter.Options{})
			if err != nil {
				return err
			}

			segments, err := exp.Segments()
			if err != nil {
				return err
			}

			infos := make([]segmentInfo, 0, segments.Len())
			for dest, tree := range segments.All() {
				infos = append(infos, segmentInfo{Destination: dest, Locales: tree.Keys()})
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, infos)
			}

			for _, info := range infos {
				fmt.Fprintf(out, "%s\t%s\n", info.Destination, strings.Join(info.Locales, ","))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print segments as JSON")
	return cmd
}

// newFilterCmd creates the filter command.
func newFilterCmd(flags *globalFlags) *cobra.Command {
	var except []string

	cmd := &cobra.Command{
		Use:   "filter <pattern>...",
		Short: "Print translations selected by scope patterns as JSON",
		Example: `  i18nscope filter '*.date.formats' '*.number.currency.format'
  i18nscope filter '*.admin.*.title' --locale fr`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, exp, err := flags.newExporter(exporter.Options{})
			if err != nil {
				return err
			}

			tree, err := exp.Translations()
			if err != nil {
				return err
			}

			matcher := i18nscope.NewMatcher(args, i18nscope.MatcherOptions{
				Locales: cfg.Locales,
				Except:  except,
			})

			return writeJSON(cmd.OutOrStdout(), i18nscope.StripNilValues(matcher.Apply(tree)))
		},
	}

	cmd.Flags().StringSliceVar(&except, "except", nil, "scope patterns removed from the selection")
	return cmd
}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "i18nscope version %s\n", version)
			fmt.Fprintf(out, "  commit: %s\n", commit)
			fmt.Fprintf(out, "  built:  %s\n", date)
		},
	}
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
