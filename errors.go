// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/i18nscope

package i18nscope

import "errors"

// Sentinel errors for i18nscope loaders.
var (
	// ErrUnsupportedFormat indicates unknown translation file format or extension.
	ErrUnsupportedFormat = errors.New("unsupported translation format")
	// ErrInvalidTree indicates a document whose root is not a key/value mapping.
	ErrInvalidTree = errors.New("invalid translation tree")
	// ErrInvalidLocale indicates a malformed locale identifier.
	ErrInvalidLocale = errors.New("invalid locale")
	// ErrNilSource indicates a nil Source receiver.
	ErrNilSource = errors.New("source is nil")
	// ErrPathOutsideRoot indicates path traversal or non-relative input path.
	ErrPathOutsideRoot = errors.New("path is outside source root")
)
