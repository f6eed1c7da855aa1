/*
Copyright 2026 The vartab Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"fmt"

	"vartab/fs"
	"vartab/parser"
	"vartab/token"
)

// BuildTable constructs a validated token table from declarations.
//
// Ordered declarations (stylesheets) are defined strictly in source order,
// so a forward reference fails fast with ErrUnknownReference. Unordered
// batches (declaration files, whose mappings carry no author order) are
// dependency-ordered first; only true cycles, duplicates, or references
// to absent names fail. Either way every alias chain in the returned
// table terminates in a literal.
func BuildTable(decls []*token.Token, ordered bool) (*token.Table, error) {
	table := token.NewTable()

	if ordered {
		for _, d := range decls {
			if err := table.Define(d); err != nil {
				return nil, err
			}
		}
		return table, nil
	}

	// Reject duplicates up front; dependency-first definition below would
	// otherwise mask the second declaration.
	byName := make(map[string]*token.Token, len(decls))
	for _, d := range decls {
		if _, exists := byName[d.Name]; exists {
			return nil, fmt.Errorf("%w: %q", token.ErrDuplicateName, d.Name)
		}
		byName[d.Name] = d
	}

	// Sorting defines dependencies before their aliases while independent
	// tokens keep the caller's declaration order. References to absent
	// names survive the sort and are caught by Define.
	graph := BuildDependencyGraph(decls)
	sorted, err := graph.TopologicalSort()
	if err != nil {
		return nil, err
	}

	for _, name := range sorted {
		if err := table.Define(byName[name]); err != nil {
			return nil, err
		}
	}

	return table, nil
}

// OptionsFunc returns the parser options for a given file path.
// config.(*Config).OptionsForFile satisfies it directly.
type OptionsFunc func(path string) parser.Options

// StaticOptions returns an OptionsFunc applying the same options to
// every file.
func StaticOptions(opts parser.Options) OptionsFunc {
	return func(string) parser.Options { return opts }
}

// LoadTable parses the given files and builds a single table from all of
// their declarations. Stylesheets keep source order; if any file is a
// declaration file the combined batch is dependency-ordered instead.
func LoadTable(filesystem fs.FileSystem, files []string, optsFor OptionsFunc) (*token.Table, error) {
	var decls []*token.Token
	ordered := true

	for _, file := range files {
		p := parser.ForPath(file)
		tokens, err := p.ParseFile(filesystem, file, optsFor(file))
		if err != nil {
			return nil, err
		}
		if !p.Ordered() {
			ordered = false
		}
		decls = append(decls, tokens...)
	}

	return BuildTable(decls, ordered)
}
