/*
Copyright 2026 The vartab Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token_test

import (
	"testing"

	"vartab/token"
)

func TestAliasTarget(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		target  string
		isAlias bool
	}{
		{"var reference", "var(--color-primary)", "color-primary", true},
		{"var with spaces", "var( --color-primary )", "color-primary", true},
		{"curly reference", "{color.primary}", "color-primary", true},
		{"curly flat", "{spacing-base}", "spacing-base", true},
		{"hex literal", "#FF6B35", "", false},
		{"rgb literal", "rgb(1, 1, 1)", "", false},
		{"dimension literal", "1.5rem", "", false},
		{"var amid shorthand", "0 1px 2px var(--shadow-color)", "", false},
		{"var with fallback", "var(--x, #000)", "", false},
		{"empty curly", "{}", "", false},
		{"empty value", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, ok := token.AliasTarget(tt.value)
			if ok != tt.isAlias {
				t.Fatalf("AliasTarget(%q) ok = %v, want %v", tt.value, ok, tt.isAlias)
			}
			if target != tt.target {
				t.Errorf("AliasTarget(%q) = %q, want %q", tt.value, target, tt.target)
			}
		})
	}
}

func TestToken_CSSVariableName(t *testing.T) {
	tests := []struct {
		name     string
		token    token.Token
		expected string
	}{
		{"simple name", token.Token{Name: "color-primary"}, "--color-primary"},
		{"dotted name", token.Token{Name: "color.primary"}, "--color-primary"},
		{"with prefix", token.Token{Name: "color-primary", Prefix: "site"}, "--site-color-primary"},
		{"empty name", token.Token{Name: ""}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.token.CSSVariableName(); got != tt.expected {
				t.Errorf("CSSVariableName() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestVarReference(t *testing.T) {
	if got := token.VarReference("color.primary"); got != "var(--color-primary)" {
		t.Errorf("VarReference = %q", got)
	}
}
