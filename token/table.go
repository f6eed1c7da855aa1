/*
Copyright 2026 The vartab Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "fmt"

// Table is an ordered mapping from token names to their declarations.
//
// A table is built once by calling Define in declaration order and is
// read-only afterwards. Aliases may only reference tokens defined earlier,
// so every chain in a fully constructed table terminates in a literal.
// Because construction never mutates existing entries, a constructed table
// is safe for any number of concurrent readers without synchronization.
type Table struct {
	order  []string
	byName map[string]*Token
}

// NewTable creates an empty token table.
func NewTable() *Table {
	return &Table{
		byName: make(map[string]*Token),
	}
}

// Define inserts a token into the table.
//
// Returns ErrDuplicateName if the name is already defined, and
// ErrUnknownReference if the token is an alias whose target has not been
// defined yet. The forward-reference prohibition keeps construction
// acyclic by itself: a token cannot name itself or anything later.
func (t *Table) Define(tok *Token) error {
	if _, exists := t.byName[tok.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateName, tok.Name)
	}
	if target, ok := AliasTarget(tok.Value); ok {
		if _, exists := t.byName[target]; !exists {
			return fmt.Errorf("%w: %q references %q", ErrUnknownReference, tok.Name, target)
		}
	}
	t.byName[tok.Name] = tok
	t.order = append(t.order, tok.Name)
	return nil
}

// Get returns the token declared under name.
func (t *Table) Get(name string) (*Token, bool) {
	tok, ok := t.byName[name]
	return tok, ok
}

// Resolve follows the alias chain from name to its terminal literal value.
//
// Returns ErrUnknownToken if name (or any name along the chain) is absent,
// and ErrCycle if the chain revisits a name. The visited set makes the
// walk terminate within Len() steps regardless of table contents; Define's
// ordering rule should make the cycle branch unreachable, but resolution
// still guards against it.
func (t *Table) Resolve(name string) (string, error) {
	literal, _, err := t.ResolveChain(name)
	return literal, err
}

// ResolveChain resolves name and also returns the chain of names visited,
// starting with name itself and ending at the token holding the literal.
func (t *Table) ResolveChain(name string) (string, []string, error) {
	visited := make(map[string]bool, len(t.order))
	chain := []string{}

	current := name
	for {
		if visited[current] {
			return "", chain, fmt.Errorf("%w: %q revisits %q", ErrCycle, name, current)
		}
		visited[current] = true
		chain = append(chain, current)

		tok, ok := t.byName[current]
		if !ok {
			return "", chain, fmt.Errorf("%w: %q", ErrUnknownToken, current)
		}

		target, isAlias := AliasTarget(tok.Value)
		if !isAlias {
			return tok.Value, chain, nil
		}
		current = target
	}
}

// Len returns the number of tokens in the table.
func (t *Table) Len() int {
	return len(t.order)
}

// Names returns the token names in declaration order.
func (t *Table) Names() []string {
	names := make([]string, len(t.order))
	copy(names, t.order)
	return names
}

// All returns the tokens in declaration order.
func (t *Table) All() []*Token {
	tokens := make([]*Token, 0, len(t.order))
	for _, name := range t.order {
		tokens = append(tokens, t.byName[name])
	}
	return tokens
}
