/*
Copyright 2026 The vartab Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package search provides the search command for vartab.
package search

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"vartab/cmd/render"
	"vartab/config"
	"vartab/fs"
	"vartab/parser"
	"vartab/resolver"
)

// Cmd is the search cobra command.
var Cmd = &cobra.Command{
	Use:   "search <query> [files...]",
	Short: "Search tokens by name, value, or type",
	Long:  `Search tokens by name, value, or type with optional regex support.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  run,
}

func init() {
	Cmd.Flags().Bool("name", false, "Search names only")
	Cmd.Flags().Bool("value", false, "Search values only")
	Cmd.Flags().String("type", "", "Filter by token type")
	Cmd.Flags().Bool("regex", false, "Query is a regex")
	Cmd.Flags().Bool("resolved", false, "Show resolved values")
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, json, names")
}

func run(cmd *cobra.Command, args []string) error {
	query := args[0]

	nameOnly, _ := cmd.Flags().GetBool("name")
	valueOnly, _ := cmd.Flags().GetBool("value")
	typeFilter, _ := cmd.Flags().GetString("type")
	useRegex, _ := cmd.Flags().GetBool("regex")
	resolved, _ := cmd.Flags().GetBool("resolved")
	format, _ := cmd.Flags().GetString("format")

	var pattern *regexp.Regexp
	var err error
	if useRegex {
		pattern, err = regexp.Compile(query)
		if err != nil {
			return fmt.Errorf("invalid regex: %w", err)
		}
	}

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	files := args[1:]
	if len(files) == 0 {
		expanded, err := cfg.ExpandFiles(filesystem, ".")
		if err != nil {
			return fmt.Errorf("error expanding config files: %w", err)
		}
		files = expanded
	}
	if len(files) == 0 {
		return fmt.Errorf("no files specified and no files found in config")
	}

	table, err := resolver.LoadTable(filesystem, files, flagOptions(cfg))
	if err != nil {
		return err
	}

	rows, err := render.ComputeRows(table, resolved)
	if err != nil {
		return err
	}

	matched := make([]render.Row, 0, len(rows))
	for _, r := range rows {
		if typeFilter != "" && r.Type != typeFilter {
			continue
		}
		if matches(r, query, pattern, nameOnly, valueOnly) {
			matched = append(matched, r)
		}
	}

	switch format {
	case "json":
		return render.JSON(os.Stdout, matched)
	case "names":
		return render.Names(os.Stdout, matched)
	default:
		return render.Table(os.Stdout, matched)
	}
}

// flagOptions layers the --prefix flag over per-file config options.
func flagOptions(cfg *config.Config) resolver.OptionsFunc {
	return func(path string) parser.Options {
		opts := cfg.OptionsForFile(path)
		if flagPrefix := viper.GetString("prefix"); flagPrefix != "" {
			opts.Prefix = flagPrefix
		}
		return opts
	}
}

func matches(r render.Row, query string, pattern *regexp.Regexp, nameOnly, valueOnly bool) bool {
	fields := make([]string, 0, 3)
	switch {
	case nameOnly:
		fields = append(fields, r.Name)
	case valueOnly:
		fields = append(fields, r.Value)
	default:
		fields = append(fields, r.Name, r.Value, r.Type)
	}

	for _, field := range fields {
		if pattern != nil {
			if pattern.MatchString(field) {
				return true
			}
		} else if strings.Contains(strings.ToLower(field), strings.ToLower(query)) {
			return true
		}
	}
	return false
}
