/*
Copyright 2026 The vartab Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil provides testing utilities for vartab.
package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"vartab/internal/mapfs"
)

// NewFixtureFS loads fixture files from testdata and returns a MapFileSystem
// with files mapped to the specified root path.
func NewFixtureFS(t *testing.T, fixtureDir string, rootPath string) *mapfs.MapFileSystem {
	t.Helper()

	mfs := mapfs.New()

	fixturePath := findFixture(t, fixtureDir)

	err := filepath.WalkDir(fixturePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(fixturePath, path)
		if err != nil {
			return err
		}

		mfs.AddFile(filepath.Join(rootPath, relPath), string(content), 0644)
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to load fixtures from %s: %v", fixtureDir, err)
	}

	return mfs
}

// LoadFixtureFile reads a single fixture file and returns its content.
func LoadFixtureFile(t *testing.T, fixturePath string) []byte {
	t.Helper()
	content, err := os.ReadFile(findFixture(t, fixturePath))
	if err != nil {
		t.Fatalf("Failed to read fixture %s: %v", fixturePath, err)
	}
	return content
}

// findFixture locates a path under testdata, trying parent directories
// since go test runs each package from its own directory.
func findFixture(t *testing.T, name string) string {
	t.Helper()

	possiblePaths := []string{
		filepath.Join("testdata", name),
		filepath.Join("..", "testdata", name),
		filepath.Join("..", "..", "testdata", name),
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	t.Fatalf("Could not find fixture %s (tried all paths)", name)
	return ""
}
