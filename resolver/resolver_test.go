/*
Copyright 2026 The vartab Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver_test

import (
	"errors"
	"testing"

	"vartab/internal/mapfs"
	"vartab/parser"
	"vartab/resolver"
	"vartab/testutil"
	"vartab/token"
)

func TestBuildTable_Ordered(t *testing.T) {
	decls := []*token.Token{
		{Name: "a", Value: "rgb(1,1,1)"},
		{Name: "b", Value: "var(--a)"},
		{Name: "c", Value: "var(--b)"},
	}

	table, err := resolver.BuildTable(decls, true)
	if err != nil {
		t.Fatalf("BuildTable failed: %v", err)
	}

	got, err := table.Resolve("c")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got != "rgb(1,1,1)" {
		t.Errorf("Resolve(c) = %q, want %q", got, "rgb(1,1,1)")
	}
}

func TestBuildTable_Ordered_ForwardReference(t *testing.T) {
	decls := []*token.Token{
		{Name: "b", Value: "var(--c)"},
		{Name: "c", Value: "#000"},
	}

	_, err := resolver.BuildTable(decls, true)
	if !errors.Is(err, token.ErrUnknownReference) {
		t.Errorf("expected ErrUnknownReference, got %v", err)
	}
}

func TestBuildTable_Unordered_SortsDependencies(t *testing.T) {
	// Declaration files carry no author order; a reference to a token
	// that sorts later must still construct.
	decls := []*token.Token{
		{Name: "color-accent", Value: "{color.primary}"},
		{Name: "color-primary", Value: "#0B0B45"},
	}

	table, err := resolver.BuildTable(decls, false)
	if err != nil {
		t.Fatalf("BuildTable failed: %v", err)
	}

	got, err := table.Resolve("color-accent")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got != "#0B0B45" {
		t.Errorf("Resolve = %q, want %q", got, "#0B0B45")
	}

	names := table.Names()
	if names[0] != "color-primary" {
		t.Errorf("dependency must be defined first, got order %v", names)
	}
}

func TestBuildTable_Unordered_Cycle(t *testing.T) {
	decls := []*token.Token{
		{Name: "a", Value: "{b}"},
		{Name: "b", Value: "{a}"},
	}

	_, err := resolver.BuildTable(decls, false)
	if !errors.Is(err, token.ErrCycle) {
		t.Errorf("expected ErrCycle, got %v", err)
	}
}

func TestBuildTable_Unordered_UnknownReference(t *testing.T) {
	decls := []*token.Token{
		{Name: "a", Value: "{missing}"},
	}

	_, err := resolver.BuildTable(decls, false)
	if !errors.Is(err, token.ErrUnknownReference) {
		t.Errorf("expected ErrUnknownReference, got %v", err)
	}
}

func TestBuildTable_Duplicate(t *testing.T) {
	decls := []*token.Token{
		{Name: "a", Value: "1px"},
		{Name: "a", Value: "2px"},
	}

	for _, ordered := range []bool{true, false} {
		_, err := resolver.BuildTable(decls, ordered)
		if !errors.Is(err, token.ErrDuplicateName) {
			t.Errorf("ordered=%v: expected ErrDuplicateName, got %v", ordered, err)
		}
	}
}

func TestLoadTable(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("theme/site.css", `:root {
  --color-dark: rgb(34, 34, 34);
  --color-footer-bg: var(--color-dark);
}`, 0644)

	table, err := resolver.LoadTable(mfs, []string{"theme/site.css"}, resolver.StaticOptions(parser.Options{}))
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}

	if table.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", table.Len())
	}
	got, err := table.Resolve("color-footer-bg")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got != "rgb(34, 34, 34)" {
		t.Errorf("Resolve = %q", got)
	}
}

func TestLoadTable_MixedInputs(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("theme/base.yaml", `color:
  primary:
    $value: "#0B0B45"
    $type: color
`, 0644)
	mfs.AddFile("theme/site.css", ":root { --color-banner-bg: var(--color-primary); }", 0644)

	table, err := resolver.LoadTable(mfs, []string{"theme/site.css", "theme/base.yaml"}, resolver.StaticOptions(parser.Options{}))
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}

	got, err := table.Resolve("color-banner-bg")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got != "#0B0B45" {
		t.Errorf("Resolve = %q", got)
	}
}

func TestLoadTable_SiteFixtures(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "site", "site")

	table, err := resolver.LoadTable(mfs, []string{"site/theme.css", "site/tokens.yaml"}, resolver.StaticOptions(parser.Options{}))
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}

	cases := []struct {
		name string
		want string
	}{
		{"footer-bg", "rebeccapurple"},
		{"nav-gap", "8px"},
		{"purple-check", "rgb(265, 100, 51)"},
		{"inline-list-gap", "0 1px var(--space-1)"},
		{"color-link", "#e0b0ff"},
		{"size-page-margin", "16px"},
	}
	for _, tc := range cases {
		got, err := table.Resolve(tc.name)
		if err != nil {
			t.Errorf("Resolve(%q) failed: %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Resolve(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}

	// The media query override must not shadow the top-level declaration.
	tok, ok := table.Get("nav-gap")
	if !ok {
		t.Fatal("nav-gap not defined")
	}
	if tok.Value != "var(--space-2)" {
		t.Errorf("nav-gap declared value = %q, want var(--space-2)", tok.Value)
	}
}

func TestBuildTable_Unordered_DeterministicOrder(t *testing.T) {
	decls := []*token.Token{
		{Name: "nav-gap", Value: "{space-2}"},
		{Name: "space-2", Value: "8px"},
		{Name: "banner-fg", Value: "white"},
		{Name: "footer-bg", Value: "{banner-bg}"},
		{Name: "banner-bg", Value: "rebeccapurple"},
	}

	// Dependencies land before their aliases; everything else keeps the
	// given order.
	want := []string{"space-2", "nav-gap", "banner-fg", "banner-bg", "footer-bg"}

	for iter := 0; iter < 10; iter++ {
		table, err := resolver.BuildTable(decls, false)
		if err != nil {
			t.Fatalf("BuildTable failed: %v", err)
		}
		names := table.Names()
		if len(names) != len(want) {
			t.Fatalf("Names() = %v, want %v", names, want)
		}
		for i := range want {
			if names[i] != want[i] {
				t.Fatalf("Names() = %v, want %v", names, want)
			}
		}
	}
}

func TestLoadTable_PerFileOptions(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("theme/brand.css", ":root { --primary: #0B0B45; }", 0644)
	mfs.AddFile("theme/layout.css", ":root { --gutter: 16px; }", 0644)

	optsFor := func(path string) parser.Options {
		if path == "theme/brand.css" {
			return parser.Options{Prefix: "brand"}
		}
		return parser.Options{}
	}

	table, err := resolver.LoadTable(mfs, []string{"theme/brand.css", "theme/layout.css"}, optsFor)
	if err != nil {
		t.Fatalf("LoadTable failed: %v", err)
	}

	primary, ok := table.Get("primary")
	if !ok {
		t.Fatal("primary not defined")
	}
	if got := primary.CSSVariableName(); got != "--brand-primary" {
		t.Errorf("CSSVariableName() = %q, want %q", got, "--brand-primary")
	}

	gutter, ok := table.Get("gutter")
	if !ok {
		t.Fatal("gutter not defined")
	}
	if got := gutter.CSSVariableName(); got != "--gutter" {
		t.Errorf("CSSVariableName() = %q, want %q", got, "--gutter")
	}
}
