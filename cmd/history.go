package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/alglib/alglib/color"
	"github.com/alglib/alglib/history"
	"github.com/alglib/alglib/icon"
	"github.com/alglib/alglib/style"
	"github.com/alglib/alglib/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	historyCmd.Flags().Bool("clear", false, "Forget every remembered replay")
	historyCmd.Flags().IntP("limit", "n", 10, "Show at most this many replays, newest first")
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently replayed scripts",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		if lo.Must(cmd.Flags().GetBool("clear")) {
			handleErr(history.Clear())
			fmt.Fprintf(out, "%s history cleared\n", style.Fg(color.Green)(icon.Get(icon.Success)))
			return
		}

		entries, err := history.Get()
		handleErr(err)

		slices.Reverse(entries)
		if limit := lo.Must(cmd.Flags().GetInt("limit")); limit >= 0 && len(entries) > limit {
			entries = entries[:limit]
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(out).Encode(entries))
			return
		}

		if len(entries) == 0 {
			fmt.Fprintln(out, style.Faint("no replays yet"))
			return
		}

		for _, e := range entries {
			status := style.Fg(color.Green)(icon.Get(icon.Success))
			if e.Failed+e.Invalid > 0 {
				status = style.Fg(color.Red)(icon.Get(icon.Fail))
			}

			fmt.Fprintf(out, "%s %s %s %s %s\n",
				status,
				style.Faint(e.At.Format("2006-01-02 15:04")),
				style.Bold(e.Script),
				style.Fg(color.Purple)(e.Container),
				style.Faint(fmt.Sprintf("%s, %s",
					util.Quantify(e.Steps, "step", "steps"),
					util.Quantify(e.Failed+e.Invalid, "problem", "problems"),
				)),
			)
		}
	},
}
