/*
Copyright 2026 The vartab Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for vartab.
package config

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"vartab/parser"
)

// Config represents the vartab configuration.
type Config struct {
	// Prefix is the global CSS variable prefix.
	Prefix string `yaml:"prefix" json:"prefix"`

	// Files specifies token files to load (paths or globs).
	Files []FileSpec `yaml:"files" json:"files"`

	// Format is the default output format for listing commands.
	Format string `yaml:"format" json:"format"`
}

// FileSpec represents a token file specification.
// It can be specified as a simple string path or as an object with overrides.
type FileSpec struct {
	// Path is the file path (supports globs).
	Path string `yaml:"path" json:"path"`

	// Prefix overrides the global CSS variable prefix for this file.
	Prefix string `yaml:"prefix" json:"prefix"`
}

// UnmarshalYAML handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.Path = node.Value
		return nil
	}

	type rawFileSpec FileSpec
	return node.Decode((*rawFileSpec)(f))
}

// UnmarshalJSON handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Path = s
		return nil
	}

	type rawFileSpec FileSpec
	return json.Unmarshal(data, (*rawFileSpec)(f))
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Prefix: "",
		Files:  nil,
		Format: "",
	}
}

// OptionsForFile returns parser.Options with configuration applied.
// File-level overrides take precedence over global config.
func (c *Config) OptionsForFile(path string) parser.Options {
	opts := parser.Options{
		Prefix: c.Prefix,
	}

	for _, spec := range c.Files {
		if spec.Path == path {
			if spec.Prefix != "" {
				opts.Prefix = spec.Prefix
			}
			break
		}
	}

	return opts
}

// FilePaths returns the list of file paths from all FileSpecs.
func (c *Config) FilePaths() []string {
	paths := make([]string, 0, len(c.Files))
	for _, spec := range c.Files {
		paths = append(paths, spec.Path)
	}
	return paths
}
