/*
Copyright 2026 The vartab Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"regexp"
	"strings"
)

var (
	// varRefPattern matches a whole-value var(--name) reference.
	varRefPattern = regexp.MustCompile(`^var\(\s*--([A-Za-z0-9_][A-Za-z0-9_-]*)\s*\)$`)

	// curlyRefPattern matches a whole-value {token.path} reference.
	curlyRefPattern = regexp.MustCompile(`^\{([^{}]+)\}$`)
)

// AliasTarget returns the referenced token name if value is an alias.
//
// Two notations are recognized, each only when it spans the whole value:
// the CSS custom-property form "var(--color-primary)" and the declaration
// file form "{color.primary}". Dotted paths are normalized to dashed names.
// Values that merely contain a reference among other components (for
// example "0 1px 2px var(--shadow-color)") are literals as far as the
// table is concerned; their substitution belongs to the rendering engine.
func AliasTarget(value string) (string, bool) {
	value = strings.TrimSpace(value)

	if m := varRefPattern.FindStringSubmatch(value); m != nil {
		return m[1], true
	}
	if m := curlyRefPattern.FindStringSubmatch(value); m != nil {
		name := strings.TrimSpace(m[1])
		if name == "" {
			return "", false
		}
		return strings.ReplaceAll(name, ".", "-"), true
	}
	return "", false
}

// VarReference returns the var() reference notation for a token name.
func VarReference(name string) string {
	return "var(--" + strings.ReplaceAll(name, ".", "-") + ")"
}
