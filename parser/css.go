/*
Copyright 2026 The vartab Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"bytes"
	"fmt"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"vartab/fs"
	"vartab/token"
)

// CSSParser extracts custom-property declarations from a stylesheet.
//
// Only `--name: value` declarations inside top-level :root (or html)
// rulesets become tokens, in source order. Ordinary style rules, selector
// matching, and @media breakpoint overrides are the rendering engine's
// territory and are skipped.
type CSSParser struct{}

// NewCSSParser creates a new stylesheet token parser.
func NewCSSParser() *CSSParser {
	return &CSSParser{}
}

// Ordered reports that stylesheet declarations follow source order.
func (p *CSSParser) Ordered() bool { return true }

// rootSelectors are the selectors whose custom properties form the table.
var rootSelectors = map[string]bool{
	":root": true,
	"html":  true,
}

// Parse parses stylesheet data and returns custom-property tokens.
func (p *CSSParser) Parse(data []byte, opts Options) ([]*token.Token, error) {
	input := parse.NewInput(bytes.NewReader(data))
	cp := css.NewParser(input, false)

	var result []*token.Token

	for {
		gt, _, gtData := cp.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := cp.Err(); err != nil && err.Error() != "EOF" {
				return nil, fmt.Errorf("failed to parse stylesheet: %w", err)
			}
			return result, nil

		case css.BeginAtRuleGrammar:
			// @media and friends toggle breakpoint rule sets; that
			// evaluation belongs to the rendering engine.
			skipBlock(cp)

		case css.BeginRulesetGrammar:
			inRoot := hasRootSelector(gtData, cp.Values())
			p.collectDeclarations(cp, input, data, inRoot, opts, &result)
		}
	}
}

// collectDeclarations reads declarations until the ruleset ends, keeping
// custom properties when the ruleset is a root ruleset.
func (p *CSSParser) collectDeclarations(cp *css.Parser, input *parse.Input, data []byte, inRoot bool, opts Options, result *[]*token.Token) {
	for {
		gt, _, gtData := cp.Next()

		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return

		case css.CustomPropertyGrammar:
			if !inRoot {
				continue
			}
			name := strings.TrimPrefix(string(gtData), "--")
			value := rawValue(cp.Values())
			*result = append(*result, &token.Token{
				Name:   name,
				Value:  value,
				Type:   InferType(value),
				Prefix: opts.Prefix,
				Line:   lineAt(data, input.Offset()),
			})
		}
	}
}

// skipBlock skips tokens until the matching end of an at-rule block.
func skipBlock(cp *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := cp.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}

// hasRootSelector reports whether any selector in the ruleset prelude
// addresses the document root.
func hasRootSelector(data []byte, values []css.Token) bool {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}

	for _, s := range strings.Split(sb.String(), ",") {
		if rootSelectors[strings.TrimSpace(s)] {
			return true
		}
	}
	return false
}

// rawValue rebuilds the declaration value text from its tokens.
func rawValue(tokens []css.Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			sb.WriteString(" ")
			continue
		}
		sb.Write(t.Data)
	}
	return strings.TrimSpace(sb.String())
}

// lineAt returns the 1-based line containing byte offset in data.
func lineAt(data []byte, offset int) int {
	if offset > len(data) {
		offset = len(data)
	}
	return 1 + bytes.Count(data[:offset], []byte{'\n'})
}

// ParseFile parses a stylesheet file and returns custom-property tokens.
func (p *CSSParser) ParseFile(filesystem fs.FileSystem, path string, opts Options) ([]*token.Token, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	tokens, err := p.Parse(data, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", path, err)
	}

	for _, t := range tokens {
		t.FilePath = path
	}

	return tokens, nil
}
