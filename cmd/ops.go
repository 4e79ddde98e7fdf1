package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/alglib/alglib/color"
	"github.com/alglib/alglib/key"
	"github.com/alglib/alglib/runner"
	"github.com/alglib/alglib/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(opsCmd)

	opsCmd.Flags().StringP("filter", "f", "", "Only show operations fuzzy matching this text")
	opsCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
}

var opsCmd = &cobra.Command{
	Use:               "ops [container]",
	Short:             "List the script operations a container accepts",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionKinds,
	Run: func(cmd *cobra.Command, args []string) {
		name := viper.GetString(key.RunnerContainer)
		if len(args) == 1 {
			name = args[0]
		}

		kind, err := runner.ParseKind(name)
		handleErr(err)

		ops, err := runner.Operations(kind)
		handleErr(err)

		if filter := lo.Must(cmd.Flags().GetString("filter")); filter != "" {
			names, err := runner.SuggestOperations(kind, filter)
			handleErr(err)

			byName := lo.KeyBy(ops, func(o runner.Operation) string { return o.Name })
			ops = lo.Map(names, func(n string, _ int) runner.Operation { return byName[n] })
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(ops))
			return
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, style.Title(string(kind)))
		for _, o := range ops {
			fmt.Fprintf(out, "  %s\n", style.Fg(color.Yellow)(o.Usage()))
		}
	},
}
