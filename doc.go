// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/i18nscope

/*
Package i18nscope extracts subsets of a locale-keyed translation tree with
dot-separated scope patterns and groups the results into named destinations.

A translation tree maps a locale ("en", "fr") to arbitrarily nested keys.
A scope pattern walks that tree one segment at a time, where "*" selects every
key at its level and any other segment selects exactly one key:

	"*.date.formats"    date.formats of every locale
	"*.*.formats"       every <key>.formats of every locale
	"fr.admin.*.title"  admin.<key>.title of the fr locale only

Basic flow:
  - load a tree (`ParseTree`, `LoadTreeFile`, `ParseMessageFile` or `Source`)
  - filter it with one pattern (`Filter`) or many (`ScopedTranslations`, `Matcher`)
  - plan output destinations from export rules (`Plan`)
  - iterate the returned `Segments` in insertion order and hand each tree to a writer

Filtering, merging and planning never fail: keys that are missing, patterns
that match nothing and empty locale sets all produce empty contributions.
Only the loaders return errors.
*/
package i18nscope
