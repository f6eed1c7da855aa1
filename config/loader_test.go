/*
Copyright 2026 The vartab Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vartab/config"
	"vartab/internal/mapfs"
	"vartab/resolver"
)

func TestLoad_YAML(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile(".config/vartab.yaml", `prefix: site
format: css
files:
  - theme/site.css
  - path: theme/brand.yaml
    prefix: brand
`, 0644)

	cfg, err := config.Load(mfs, ".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	require.Equal(t, "site", cfg.Prefix)
	require.Equal(t, "css", cfg.Format)
	require.Equal(t, []string{"theme/site.css", "theme/brand.yaml"}, cfg.FilePaths())
}

func TestLoad_JSON(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile(".config/vartab.json", `{"prefix": "site", "files": ["theme/site.css"]}`, 0644)

	cfg, err := config.Load(mfs, ".")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	require.Equal(t, "site", cfg.Prefix)
}

func TestLoad_Missing(t *testing.T) {
	cfg, err := config.Load(mapfs.New(), ".")
	require.NoError(t, err)
	require.Nil(t, cfg)
}

func TestLoadOrDefault(t *testing.T) {
	cfg := config.LoadOrDefault(mapfs.New(), ".")
	require.NotNil(t, cfg)
	require.Empty(t, cfg.Prefix)
}

func TestOptionsForFile(t *testing.T) {
	cfg := &config.Config{
		Prefix: "site",
		Files: []config.FileSpec{
			{Path: "theme/brand.yaml", Prefix: "brand"},
			{Path: "theme/site.css"},
		},
	}

	require.Equal(t, "brand", cfg.OptionsForFile("theme/brand.yaml").Prefix)
	require.Equal(t, "site", cfg.OptionsForFile("theme/site.css").Prefix)
	require.Equal(t, "site", cfg.OptionsForFile("other.css").Prefix)
}

func TestExpandFiles_Glob(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("theme/site.css", ":root {}", 0644)
	mfs.AddFile("theme/nested/brand.css", ":root {}", 0644)
	mfs.AddFile("theme/readme.txt", "", 0644)

	cfg := &config.Config{
		Files: []config.FileSpec{{Path: "theme/**/*.css"}},
	}

	files, err := cfg.ExpandFiles(mfs, ".")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"theme/site.css", "theme/nested/brand.css"}, files)
}

func TestExpandFiles_Literal(t *testing.T) {
	cfg := &config.Config{
		Files: []config.FileSpec{{Path: "theme/site.css"}},
	}

	files, err := cfg.ExpandFiles(mapfs.New(), ".")
	require.NoError(t, err)
	require.Equal(t, []string{"theme/site.css"}, files)
}

func TestOptionsForFile_AppliesDuringLoad(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile(".config/vartab.yaml", `prefix: site
files:
  - theme/site.css
  - path: theme/brand.css
    prefix: brand
`, 0644)
	mfs.AddFile("theme/site.css", ":root { --gutter: 16px; }", 0644)
	mfs.AddFile("theme/brand.css", ":root { --primary: #0B0B45; }", 0644)

	cfg, err := config.Load(mfs, ".")
	require.NoError(t, err)

	table, err := resolver.LoadTable(mfs, cfg.FilePaths(), cfg.OptionsForFile)
	require.NoError(t, err)

	gutter, ok := table.Get("gutter")
	require.True(t, ok)
	require.Equal(t, "--site-gutter", gutter.CSSVariableName())

	primary, ok := table.Get("primary")
	require.True(t, ok)
	require.Equal(t, "--brand-primary", primary.CSSVariableName())
}
