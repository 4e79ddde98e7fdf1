// Package cmd implements the alglib command-line playground.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/alglib/alglib/color"
	"github.com/alglib/alglib/constant"
	"github.com/alglib/alglib/icon"
	"github.com/alglib/alglib/key"
	"github.com/alglib/alglib/log"
	"github.com/alglib/alglib/style"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the icon variant (emoji, kaomoji, plain, squares, nerd)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
}

var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Replay container operation scripts against stacks, queues, lists and vectors",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.Cyan).Render("    - generic containers and a playground to watch them work"),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("no-color")) || !viper.GetBool(key.CliColored) {
			style.Disable()
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("version")) {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// exit is replaced in tests.
var exit = os.Exit

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		exit(1)
	}
}
