package cmd

import (
	"fmt"
	"os"

	"github.com/alglib/alglib/color"
	"github.com/alglib/alglib/config"
	"github.com/alglib/alglib/style"
	"github.com/alglib/alglib/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only show variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Only show variables that are unset")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

// envNames returns every environment variable the playground reads, sorted.
func envNames() []string {
	names := lo.Map(lo.Values(config.Default), func(f config.Field, _ int) string {
		return f.Env()
	})
	names = append(names, where.EnvConfigPath)
	slices.Sort(names)
	return names
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the environment variables the playground reads",
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))
		out := cmd.OutOrStdout()

		for _, env := range envNames() {
			value, present := os.LookupEnv(env)
			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			fmt.Fprint(out, style.New().Bold(true).Foreground(color.Purple).Render(env), "=")
			if present {
				fmt.Fprintln(out, style.Fg(color.Green)(value))
			} else {
				fmt.Fprintln(out, style.Fg(color.Red)("unset"))
			}
		}
	},
}
