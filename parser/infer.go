/*
Copyright 2026 The vartab Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"regexp"

	"github.com/mazznoer/csscolorparser"

	"vartab/token"
)

var (
	dimensionPattern = regexp.MustCompile(`^-?\d*\.?\d+(px|r?em|%|pt|vw|vh|ch|ex)$`)
	numberPattern    = regexp.MustCompile(`^-?\d*\.?\d+$`)
)

// InferType guesses a token type from its value.
//
// Stylesheet custom properties carry no type annotation, so colors and
// dimensions are recognized by shape. Aliases and anything else return
// the empty type; declaration files can always state $type explicitly.
// Note that csscolorparser accepts out-of-range channels like
// rgb(265, 100, 51) by clamping, which matches how engines treat them,
// so such values still classify as colors.
func InferType(value string) string {
	if _, isAlias := token.AliasTarget(value); isAlias {
		return ""
	}
	if value == "" {
		return ""
	}
	if dimensionPattern.MatchString(value) {
		return "dimension"
	}
	if numberPattern.MatchString(value) {
		return "number"
	}
	if _, err := csscolorparser.Parse(value); err == nil {
		return "color"
	}
	return ""
}
