package runner

import (
	"fmt"
	"io"
	"strings"

	"github.com/alglib/alglib/color"
	"github.com/alglib/alglib/icon"
	"github.com/alglib/alglib/style"
	"github.com/alglib/alglib/util"
	"github.com/samber/lo"
)

func contents(items []string) string {
	if len(items) == 0 {
		return icon.Get(icon.Empty)
	}
	return "[" + strings.Join(items, " ") + "]"
}

func writeText(out io.Writer, report *Report) error {
	var b strings.Builder

	header := string(report.Kind)
	if report.Capacity > 0 {
		header += fmt.Sprintf(" (capacity %d)", report.Capacity)
	}
	b.WriteString(style.Title(header))
	b.WriteString("\n\n")

	width := util.Max(lo.Map(report.Steps, func(s Step, _ int) int { return len([]rune(s.Op.String())) })...)
	for _, s := range report.Steps {
		op := util.PadRight(s.Op.String(), width)
		line := style.Faint(fmt.Sprintf("%4d", s.Op.Line))

		switch s.Status {
		case StatusOK:
			fmt.Fprintf(&b, "%s %s %s", line, style.Fg(color.Green)(icon.Get(icon.Success)), op)
			if value, ok := s.Output.Get(); ok {
				fmt.Fprintf(&b, " %s %s", icon.Get(icon.Arrow), style.Bold(value))
			}
		case StatusFailed:
			fmt.Fprintf(&b, "%s %s %s %s %s",
				line,
				style.Fg(color.Red)(icon.Get(icon.Fail)),
				op,
				style.Tag(color.White, color.Red)(s.Kind.String()),
				s.Message,
			)
		case StatusInvalid:
			fmt.Fprintf(&b, "%s %s %s %s",
				line,
				style.Fg(color.Yellow)(icon.Get(icon.Invalid)),
				op,
				style.Fg(color.Yellow)(s.Message),
			)
		}

		if snapshot, ok := s.Snapshot.Get(); ok {
			fmt.Fprintf(&b, "  %s", style.Faint(contents(snapshot)))
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	fmt.Fprintf(&b, "%s, %s, %s\n",
		util.Quantify(len(report.Steps), "step", "steps"),
		util.Quantify(report.Count(StatusFailed), "failure", "failures"),
		util.Quantify(report.Count(StatusInvalid), "invalid line", "invalid lines"),
	)
	if report.Stopped {
		b.WriteString(style.ErrorTitle("stopped at the first failure"))
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "%s %s\n", style.Bold("final"), contents(report.Final))

	_, err := io.WriteString(out, b.String())
	return err
}
