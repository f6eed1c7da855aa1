/*
Copyright 2026 The vartab Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"vartab/token"
)

// Row holds computed display values for a single token.
type Row struct {
	Name        string   // CSS variable name with prefix
	Type        string   // Token type or "-"
	Value       string   // Display value (resolved if requested)
	Description string   // Token description
	Chain       []string // Alias chain as CSS variable names
	IsColor     bool     // Whether the display value parses as a color
}

// ComputeRows transforms a table into display rows in declaration order.
// When resolved is true, alias values are replaced with their terminal
// literals and the chain is retained for display.
func ComputeRows(table *token.Table, resolved bool) ([]Row, error) {
	rows := make([]Row, 0, table.Len())

	for _, tok := range table.All() {
		row := Row{
			Name:  tok.CSSVariableName(),
			Type:  tok.Type,
			Value: tok.Value,
		}
		if row.Type == "" {
			row.Type = "-"
		}
		row.Description = tok.Description

		if resolved && tok.IsAlias() {
			literal, chain, err := table.ResolveChain(tok.Name)
			if err != nil {
				return nil, err
			}
			row.Value = literal
			row.Chain = make([]string, len(chain))
			for i, name := range chain {
				row.Chain[i] = (&token.Token{Name: name, Prefix: tok.Prefix}).CSSVariableName()
			}
		}

		row.IsColor = row.IsColorValue()

		rows = append(rows, row)
	}

	return rows, nil
}

// IsColorValue reports whether the row's display value parses as a color.
func (r Row) IsColorValue() bool {
	if strings.HasPrefix(r.Value, "var(") || strings.HasPrefix(r.Value, "{") {
		return false
	}
	_, err := csscolorparser.Parse(r.Value)
	return err == nil
}

// ColorSwatch returns a 24-bit ANSI color block for the given color value,
// labeled with a contrast-aware foreground so the swatch reads on any
// background.
func ColorSwatch(value string) string {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	r, g, b, _ := c.RGBA255()
	fg := "30"
	if _, _, l := toColorful(r, g, b).Hcl(); l < 0.5 {
		fg = "37"
	}
	return fmt.Sprintf("\x1b[48;2;%d;%d;%d;%sm  \x1b[0m ", r, g, b, fg)
}

// toColorful converts 8-bit channels to a colorful.Color.
func toColorful(r, g, b uint8) colorful.Color {
	return colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
}

// Table renders rows as an aligned table to w.
func Table(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	nameW, typeW := columnWidths(rows)
	for _, r := range rows {
		swatch := ""
		if r.IsColorValue() {
			swatch = ColorSwatch(r.Value)
		}
		chain := ""
		if len(r.Chain) > 1 {
			chain = " → " + strings.Join(r.Chain[1:], " → ")
		}
		fmt.Fprintf(w, "%-*s  %-*s  %s%s%s\n", nameW, r.Name, typeW, r.Type, swatch, r.Value, chain)
	}
	return nil
}

// columnWidths calculates the max width needed for the name and type columns.
func columnWidths(rows []Row) (name, typ int) {
	name, typ = 4, 4
	for _, r := range rows {
		if len(r.Name) > name {
			name = len(r.Name)
		}
		if len(r.Type) > typ {
			typ = len(r.Type)
		}
	}
	return
}

// JSON renders rows as a JSON array to w.
func JSON(w io.Writer, rows []Row) error {
	type rowOutput struct {
		Name        string `json:"name"`
		Value       string `json:"value"`
		Type        string `json:"type,omitempty"`
		Description string `json:"description,omitempty"`
	}

	output := make([]rowOutput, 0, len(rows))
	for _, r := range rows {
		typ := r.Type
		if typ == "-" {
			typ = ""
		}
		output = append(output, rowOutput{
			Name:        r.Name,
			Value:       r.Value,
			Type:        typ,
			Description: r.Description,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// CSS renders rows as a :root block of custom properties to w.
func CSS(w io.Writer, rows []Row) error {
	fmt.Fprintln(w, ":root {")
	for _, r := range rows {
		fmt.Fprintf(w, "  %s: %s;\n", r.Name, r.Value)
	}
	fmt.Fprintln(w, "}")
	return nil
}

// Names renders just the token names, one per line.
func Names(w io.Writer, rows []Row) error {
	for _, r := range rows {
		fmt.Fprintln(w, r.Name)
	}
	return nil
}

// Markdown renders rows as markdown tables grouped by type.
func Markdown(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}

	// Group rows by type, preserving order of first occurrence
	typeOrder := make([]string, 0)
	byType := make(map[string][]Row)
	for _, r := range rows {
		if _, exists := byType[r.Type]; !exists {
			typeOrder = append(typeOrder, r.Type)
		}
		byType[r.Type] = append(byType[r.Type], r)
	}

	caser := cases.Title(language.English)

	first := true
	for _, typ := range typeOrder {
		group := byType[typ]
		if !first {
			fmt.Fprintln(w)
		}
		first = false

		heading := typ
		if heading == "-" {
			heading = "untyped"
		}
		fmt.Fprintf(w, "## %s\n\n", caser.String(heading))

		nameW, valW := 4, 5
		for _, r := range group {
			if len(r.Name) > nameW {
				nameW = len(r.Name)
			}
			if len(r.Value) > valW {
				valW = len(r.Value)
			}
		}

		fmt.Fprintf(w, "| %-*s | %-*s |\n", nameW, "Name", valW, "Value")
		fmt.Fprintf(w, "|-%s-|-%s-|\n", strings.Repeat("-", nameW), strings.Repeat("-", valW))
		for _, r := range group {
			fmt.Fprintf(w, "| %-*s | %-*s |\n", nameW, r.Name, valW, r.Value)
		}
	}
	return nil
}
