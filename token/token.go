/*
Copyright 2026 The vartab Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the design token table and its value types.
package token

import "strings"

// Token represents a single design token declaration.
// Its Value is either a literal (color, length, string) or an alias
// referencing an earlier token by name.
type Token struct {
	// Name is the token's identifier (e.g., "color-primary").
	Name string `json:"name"`

	// Value is the declared value: a literal or an alias reference
	// such as "var(--color-primary)" or "{color.primary}".
	Value string `json:"value"`

	// Type specifies the kind of token (color, dimension, etc.).
	Type string `json:"type,omitempty"`

	// Description is optional documentation for the token.
	Description string `json:"description,omitempty"`

	// FilePath is the file this token was declared in.
	FilePath string `json:"-"`

	// Prefix is the CSS variable prefix for this token.
	Prefix string `json:"-"`

	// Line is the 1-based line number of the declaration, 0 if unknown.
	Line int `json:"-"`
}

// IsAlias reports whether the token's value references another token.
func (t *Token) IsAlias() bool {
	_, ok := AliasTarget(t.Value)
	return ok
}

// CSSVariableName returns the CSS custom property name for this token.
// e.g., "--color-primary" or "--my-prefix-color-primary"
func (t *Token) CSSVariableName() string {
	if t.Name == "" {
		return ""
	}
	name := strings.ReplaceAll(t.Name, ".", "-")
	if t.Prefix != "" {
		prefix := strings.ReplaceAll(t.Prefix, ".", "-")
		return "--" + prefix + "-" + name
	}
	return "--" + name
}
