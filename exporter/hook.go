// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/i18nscope

package exporter

// ScriptMimeType is the asset type preprocessors are registered for.
const ScriptMimeType = "application/javascript"

// Preprocessor transforms asset content before an asset pipeline serves it.
type Preprocessor func(path string, data []byte) ([]byte, error)

// PreprocessorHost is an asset pipeline accepting preprocessors.
type PreprocessorHost interface {
	RegisterPreprocessor(mimeType string, fn Preprocessor)
}

// SupportsPreprocessor reports whether host can register preprocessors.
//
// Nil host reports false.
func SupportsPreprocessor(host any) bool {
	if host == nil {
		return false
	}

	_, ok := host.(PreprocessorHost)
	return ok
}
