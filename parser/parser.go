/*
Copyright 2026 The vartab Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser extracts token declarations from theme source files.
package parser

import (
	"path/filepath"
	"strings"

	"vartab/fs"
	"vartab/token"
)

// Options configures token parsing.
type Options struct {
	// Prefix is the CSS variable prefix applied to parsed tokens.
	Prefix string

	// SkipSort disables alphabetical key sorting in declaration files.
	// When false (default), keys are sorted for deterministic output order.
	// Stylesheets are always read in source order regardless.
	SkipSort bool
}

// Parser parses design token declarations.
type Parser interface {
	// Parse parses token data and returns declarations in source order
	// (stylesheets) or sorted group order (declaration files).
	Parse(data []byte, opts Options) ([]*token.Token, error)

	// ParseFile parses a token file and returns declarations.
	ParseFile(filesystem fs.FileSystem, path string, opts Options) ([]*token.Token, error)

	// Ordered reports whether Parse output follows author declaration
	// order. Ordered declarations are defined into the table as-is;
	// unordered batches are dependency-sorted first.
	Ordered() bool
}

// ForPath returns the parser for a file path based on its extension.
func ForPath(path string) Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".css":
		return NewCSSParser()
	default:
		return NewDeclParser()
	}
}
