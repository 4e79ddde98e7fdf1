package cmd

import (
	"fmt"

	"github.com/alglib/alglib/color"
	"github.com/alglib/alglib/style"
	"github.com/alglib/alglib/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

type whereTarget struct {
	name     string
	where    func() string
	argLong  string
	argShort mo.Option[string]
}

var wherePaths = []*whereTarget{
	{"Config", where.Config, "config", mo.Some("c")},
	{"Config file", where.ConfigFile, "config-file", mo.Some("f")},
	{"Logs", where.Logs, "logs", mo.Some("l")},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, n := range wherePaths {
		if short, ok := n.argShort.Get(); ok {
			whereCmd.Flags().BoolP(n.argLong, short, false, n.name+" path")
		} else {
			whereCmd.Flags().Bool(n.argLong, false, n.name+" path")
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(wherePaths, func(t *whereTarget, _ int) string {
		return t.argLong
	})...)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where the playground keeps its config and logs",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		headerStyle := style.New().Bold(true).Foreground(color.Purple).Render

		for _, n := range wherePaths {
			if lo.Must(cmd.Flags().GetBool(n.argLong)) {
				fmt.Fprintln(out, n.where())
				return
			}
		}

		for i, n := range wherePaths {
			fmt.Fprintf(out, "%s %s\n", headerStyle(n.name+"?"), style.Fg(color.Yellow)("--"+n.argLong))
			fmt.Fprintln(out, n.where())

			if i < len(wherePaths)-1 {
				fmt.Fprintln(out)
			}
		}
	},
}
