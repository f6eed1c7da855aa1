/*
Copyright 2026 The vartab Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for vartab.
package list

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"vartab/cmd/render"
	"vartab/config"
	"vartab/fs"
	"vartab/parser"
	"vartab/resolver"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list [files...]",
	Short: "List tokens from token files",
	Long:  `List all tokens from stylesheets and declaration files with optional filtering and formatting.`,
	Args:  cobra.ArbitraryArgs,
	RunE:  run,
}

func init() {
	Cmd.Flags().String("type", "", "Filter by token type")
	Cmd.Flags().Bool("resolved", false, "Show resolved values")
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, json, css, names, markdown")
}

func run(cmd *cobra.Command, args []string) error {
	typeFilter, _ := cmd.Flags().GetString("type")
	resolved, _ := cmd.Flags().GetBool("resolved")
	format, _ := cmd.Flags().GetString("format")

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	files := args
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

	if !cmd.Flags().Changed("format") && cfg.Format != "" {
		format = cfg.Format
	}

	table, err := resolver.LoadTable(filesystem, files, flagOptions(cfg))
	if err != nil {
		return err
	}

	rows, err := render.ComputeRows(table, resolved)
	if err != nil {
		return err
	}

	if typeFilter != "" {
		filtered := make([]render.Row, 0, len(rows))
		for _, r := range rows {
			if r.Type == typeFilter {
				filtered = append(filtered, r)
			}
		}
		rows = filtered
	}

	switch format {
	case "json":
		return render.JSON(os.Stdout, rows)
	case "css":
		return render.CSS(os.Stdout, rows)
	case "names":
		return render.Names(os.Stdout, rows)
	case "markdown":
		return render.Markdown(os.Stdout, rows)
	default:
		return render.Table(os.Stdout, rows)
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
