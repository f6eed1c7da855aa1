/*
Copyright 2026 The vartab Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for vartab.
package validate

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"vartab/config"
	"vartab/fs"
	"vartab/internal/logger"
	"vartab/parser"
	"vartab/resolver"
	"vartab/token"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate token files",
	Long: `Validate token files: every name declared once, every reference
pointing at an earlier declaration, and every alias chain terminating
in a literal value.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("quiet", false, "Only output errors")
}

func run(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")

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

	optsFor := flagOptions(cfg)

	hasErrors := false
	var decls []*token.Token
	ordered := true

	for _, file := range files {
		if !quiet {
			logger.Info("Validating %s...", file)
		}

		p := parser.ForPath(file)
		tokens, err := p.ParseFile(filesystem, file, optsFor(file))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing %s: %v\n", file, err)
			hasErrors = true
			continue
		}
		if !p.Ordered() {
			ordered = false
		}
		decls = append(decls, tokens...)
	}

	table, err := resolver.BuildTable(decls, ordered)
	if err != nil {
		reportTableError(decls, err)
		hasErrors = true
	} else {
		// BuildTable already resolved unordered batches; ordered ones
		// still need every chain walked to the end.
		for _, name := range table.Names() {
			if _, resolveErr := table.Resolve(name); resolveErr != nil {
				reportTableError(decls, resolveErr)
				hasErrors = true
			}
		}
	}

	if hasErrors {
		return fmt.Errorf("validation failed")
	}

	if !quiet {
		fmt.Printf("✓ %d tokens valid across %d files\n", len(decls), len(files))
	}
	return nil
}

// reportTableError prints a table construction error, locating the
// offending declaration when the error names a token present in decls.
func reportTableError(decls []*token.Token, err error) {
	for _, d := range decls {
		if tokenNamed(err, d.Name) {
			fmt.Fprintf(os.Stderr, "%s:%d: %v\n", d.FilePath, d.Line, err)
			return
		}
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

func tokenNamed(err error, name string) bool {
	return name != "" && strings.Contains(err.Error(), fmt.Sprintf("%q", name))
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
