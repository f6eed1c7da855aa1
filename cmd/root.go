/*
Copyright 2026 The vartab Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for vartab.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"vartab/cmd/list"
	"vartab/cmd/resolve"
	"vartab/cmd/search"
	"vartab/cmd/validate"
	"vartab/cmd/version"
)

var rootCmd = &cobra.Command{
	Use:   "vartab",
	Short: "Load and resolve design token tables",
	Long:  `vartab builds a validated table of design tokens from stylesheets and declaration files, resolving alias chains to their literal values.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("prefix", "p", "", "CSS variable prefix for token names")
	_ = viper.BindPFlag("prefix", rootCmd.PersistentFlags().Lookup("prefix"))
	viper.SetEnvPrefix("VARTAB")
	viper.AutomaticEnv()

	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(resolve.Cmd)
	rootCmd.AddCommand(search.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
