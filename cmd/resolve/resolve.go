/*
Copyright 2026 The vartab Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolve provides the resolve command for vartab.
package resolve

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"vartab/config"
	"vartab/fs"
	"vartab/parser"
	"vartab/resolver"
	"vartab/token"
)

// Cmd is the resolve cobra command.
var Cmd = &cobra.Command{
	Use:   "resolve <name> [files...]",
	Short: "Resolve a token to its literal value",
	Long: `Resolve a token by name, following its alias chain until a literal
value is reached, and print that literal.`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("chain", false, "Show the full alias chain")
}

func run(cmd *cobra.Command, args []string) error {
	name := normalizeName(args[0])
	showChain, _ := cmd.Flags().GetBool("chain")

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

	if showChain {
		literal, chain, err := table.ResolveChain(name)
		if err != nil {
			return err
		}
		links := make([]string, len(chain))
		for i, n := range chain {
			links[i] = token.VarReference(n)
		}
		fmt.Printf("%s → %s\n", strings.Join(links, " → "), literal)
		return nil
	}

	literal, err := table.Resolve(name)
	if err != nil {
		return err
	}
	fmt.Println(literal)
	return nil
}

// normalizeName accepts bare names, --custom-property names, and var()
// references, reducing them all to the bare token name.
func normalizeName(arg string) string {
	if target, ok := token.AliasTarget(arg); ok {
		return target
	}
	return strings.TrimPrefix(arg, "--")
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
