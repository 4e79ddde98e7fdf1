package cmd

import (
	"encoding/json"
	"io"
	"time"

	"github.com/alglib/alglib/filesystem"
	"github.com/alglib/alglib/history"
	"github.com/alglib/alglib/key"
	"github.com/alglib/alglib/log"
	"github.com/alglib/alglib/runner"
	"github.com/alglib/alglib/script"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func completionKinds(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Map(runner.Kinds(), func(k runner.Kind, _ int) string { return string(k) }), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("container", "c", "", "Container to replay the script against")
	lo.Must0(viper.BindPFlag(key.RunnerContainer, runCmd.Flags().Lookup("container")))
	lo.Must0(runCmd.RegisterFlagCompletionFunc("container", completionKinds))

	runCmd.Flags().IntP("capacity", "n", 0, "Capacity of the array stack or circular queue")
	lo.Must0(viper.BindPFlag(key.RunnerCapacity, runCmd.Flags().Lookup("capacity")))

	runCmd.Flags().Int("vector-capacity", 0, "Initial capacity of the vector")
	lo.Must0(viper.BindPFlag(key.RunnerVectorCapacity, runCmd.Flags().Lookup("vector-capacity")))

	runCmd.Flags().Bool("stop-on-error", false, "Stop at the first failed or invalid line")
	lo.Must0(viper.BindPFlag(key.RunnerStopOnError, runCmd.Flags().Lookup("stop-on-error")))

	runCmd.Flags().Bool("no-snapshot", false, "Do not record the container contents after each step")
	runCmd.Flags().BoolP("json", "j", false, "Write the report as JSON")
	runCmd.Flags().Bool("schema", false, "Print the JSON schema of the report and exit")
	runCmd.Flags().StringP("output", "o", "", "Write the report to a file instead of stdout")
}

var runCmd = &cobra.Command{
	Use:   "run [script|-]",
	Short: "Replay an operation script against a container",
	Long: `Replay an operation script against a freshly built container and report every step.

A script holds one operation per line, for example:

  push 3
  push "two words"   # quoted arguments keep their spaces
  pop

Reads standard input when the script is "-" or omitted.
Use "alglib ops <container>" to list the operations each container accepts.`,
	Args:    cobra.MaximumNArgs(1),
	Example: "  alglib run ops.txt --container circular-queue --capacity 3\n  echo 'push 1' | alglib run --json",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("schema")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(runner.Schema()))
			return
		}

		options, err := runner.DefaultOptions()
		handleErr(err)

		options.Ops, err = readScript(cmd.InOrStdin(), args)
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("no-snapshot")) {
			options.Snapshot = false
		}
		options.Json = lo.Must(cmd.Flags().GetBool("json"))

		out, closeOut, err := openOutput(cmd.OutOrStdout(), lo.Must(cmd.Flags().GetString("output")))
		handleErr(err)
		options.Out = out

		report, err := runner.Run(options)
		handleErr(closeOut())
		if report != nil && viper.GetBool(key.RunnerHistory) {
			remember(args, report)
		}
		if errors.Is(err, runner.ErrStopped) {
			exit(2)
			return
		}
		handleErr(err)
	},
}

// openOutput returns stdout unless path names a file to create.
func openOutput(stdout io.Writer, path string) (io.Writer, func() error, error) {
	if path == "" {
		return stdout, func() error { return nil }, nil
	}

	f, err := filesystem.API().Create(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "create %s", path)
	}
	return f, f.Close, nil
}

func remember(args []string, report *runner.Report) {
	name := "-"
	if len(args) == 1 {
		name = args[0]
	}

	err := history.Save(&history.Entry{
		Script:    name,
		Container: string(report.Kind),
		Steps:     len(report.Steps),
		Failed:    report.Count(runner.StatusFailed),
		Invalid:   report.Count(runner.StatusInvalid),
		Stopped:   report.Stopped,
		At:        time.Now(),
	})
	if err != nil {
		log.Warnf("history: %s", err)
	}
}

func readScript(stdin io.Reader, args []string) ([]script.Op, error) {
	if len(args) == 0 || args[0] == "-" {
		return script.Parse(stdin)
	}
	return script.ParseFile(args[0])
}
