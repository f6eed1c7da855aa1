/*
Copyright 2026 The vartab Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver builds validated token tables from declarations.
package resolver

import (
	"fmt"

	"vartab/token"
)

// DependencyGraph is a directed graph of alias dependencies between tokens.
// Nodes keep the order their declarations were added in, so traversals are
// deterministic.
type DependencyGraph struct {
	dependencies map[string][]string
	dependents   map[string][]string
	nodes        map[string]bool
	order        []string
}

// BuildDependencyGraph builds a dependency graph from declarations.
// An edge a -> b means token a aliases token b.
func BuildDependencyGraph(decls []*token.Token) *DependencyGraph {
	graph := &DependencyGraph{
		dependencies: make(map[string][]string),
		dependents:   make(map[string][]string),
		nodes:        make(map[string]bool),
	}

	for _, d := range decls {
		if !graph.nodes[d.Name] {
			graph.nodes[d.Name] = true
			graph.order = append(graph.order, d.Name)
		}
	}

	for _, d := range decls {
		if target, ok := token.AliasTarget(d.Value); ok {
			graph.dependencies[d.Name] = append(graph.dependencies[d.Name], target)
			graph.dependents[target] = append(graph.dependents[target], d.Name)
		}
	}

	return graph
}

// Dependencies returns the tokens that the given token aliases.
func (g *DependencyGraph) Dependencies(name string) []string {
	if deps, ok := g.dependencies[name]; ok {
		return deps
	}
	return []string{}
}

// Dependents returns the tokens that alias the given token.
func (g *DependencyGraph) Dependents(name string) []string {
	if deps, ok := g.dependents[name]; ok {
		return deps
	}
	return []string{}
}

// FindCycle returns the cycle path if one exists, or nil if no cycle.
func (g *DependencyGraph) FindCycle() []string {
	visited := make(map[string]bool)
	recStack := make(map[string]bool)
	path := []string{}

	for _, node := range g.order {
		if cycle := g.findCycleDFS(node, visited, recStack, path); cycle != nil {
			return cycle
		}
	}
	return nil
}

func (g *DependencyGraph) findCycleDFS(node string, visited, recStack map[string]bool, path []string) []string {
	if recStack[node] {
		cycleStart := -1
		for i, n := range path {
			if n == node {
				cycleStart = i
				break
			}
		}
		if cycleStart == -1 {
			panic(fmt.Sprintf("cycle detection invariant violated: node %q in recStack but not in path %v", node, path))
		}
		return append(path[cycleStart:], node)
	}
	if visited[node] {
		return nil
	}

	visited[node] = true
	recStack[node] = true
	path = append(path, node)

	for _, dep := range g.dependencies[node] {
		if !g.nodes[dep] {
			// Absent targets are caught by Table.Define.
			continue
		}
		if cycle := g.findCycleDFS(dep, visited, recStack, path); cycle != nil {
			return cycle
		}
	}

	recStack[node] = false
	return nil
}

// TopologicalSort returns token names in dependency order (aliased tokens
// before the aliases that reference them); independent tokens keep the
// order they were declared in. Returns ErrCycle if the graph contains a
// circular reference.
func (g *DependencyGraph) TopologicalSort() ([]string, error) {
	if cycle := g.FindCycle(); cycle != nil {
		return nil, fmt.Errorf("%w: %v", token.ErrCycle, cycle)
	}

	visited := make(map[string]bool)
	result := []string{}

	for _, node := range g.order {
		if !visited[node] {
			g.topologicalSortDFS(node, visited, &result)
		}
	}

	return result, nil
}

func (g *DependencyGraph) topologicalSortDFS(node string, visited map[string]bool, stack *[]string) {
	visited[node] = true

	for _, dep := range g.dependencies[node] {
		if g.nodes[dep] && !visited[dep] {
			g.topologicalSortDFS(dep, visited, stack)
		}
	}

	*stack = append(*stack, node)
}
