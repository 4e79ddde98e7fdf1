package runner

import (
	"fmt"
	"strings"

	"github.com/alglib/alglib/errs"
	"github.com/alglib/alglib/log"
	"github.com/alglib/alglib/script"
	"github.com/cockroachdb/errors"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// ErrStopped is returned by Run when StopOnError ends a replay early.
var ErrStopped = errors.New("replay stopped")

// Status is the outcome of a single step.
type Status string

const (
	// StatusOK means the operation ran and the container accepted it.
	StatusOK Status = "ok"
	// StatusFailed means the container rejected the operation with one of the errs kinds.
	StatusFailed Status = "failed"
	// StatusInvalid means the line never reached the container: unknown name, wrong arity or a malformed argument.
	StatusInvalid Status = "invalid"
)

// Step records one replayed operation.
type Step struct {
	Op     script.Op
	Status Status
	// Output holds the value a query produced. Mutations produce none.
	Output mo.Option[string]
	// Kind classifies a failed step. It is errs.KindNone otherwise.
	Kind    errs.Kind
	Message string
	// Snapshot is the container contents after the step: bottom to top for stacks, front to rear otherwise.
	Snapshot mo.Option[[]string]
}

// Report is the result of a replay.
type Report struct {
	Kind     Kind
	Capacity int
	Steps    []Step
	// Final is the container contents once the replay ended.
	Final []string
	// Stopped is set when StopOnError cut the replay short.
	Stopped bool
}

// Count returns how many steps ended with status.
func (r *Report) Count(status Status) int {
	return lo.CountBy(r.Steps, func(s Step) bool { return s.Status == status })
}

// Run replays options.Ops against a fresh container of options.Kind and writes the report to options.Out.
// Container failures are recorded in the report. Run only fails when the container cannot be built,
// the report cannot be written, or StopOnError stops the replay, in which case the partial report is
// still returned and written.
func Run(options *Options) (*Report, error) {
	e, err := newEngine(options.Kind, options.Capacity, options.VectorCapacity)
	if err != nil {
		return nil, err
	}

	report := &Report{Kind: options.Kind}
	if options.Kind.Bounded() {
		report.Capacity = options.Capacity
	} else if options.Kind == Vector {
		report.Capacity = options.VectorCapacity
	}

	var stopErr error
	for _, op := range options.Ops {
		step := e.apply(op)
		if options.Snapshot {
			step.Snapshot = mo.Some(e.snapshot())
		}
		report.Steps = append(report.Steps, step)

		if step.Status == StatusOK {
			log.Debugf("runner: %s line %d: %s", options.Kind, op.Line, op)
			continue
		}

		log.Warnf("runner: %s line %d: %s: %s", options.Kind, op.Line, op, step.Message)
		if options.StopOnError {
			report.Stopped = true
			stopErr = errors.Wrapf(ErrStopped, "line %d: %s", op.Line, step.Message)
			break
		}
	}
	report.Final = e.snapshot()

	if options.Out != nil {
		if options.Json {
			err = writeJson(options.Out, report)
		} else {
			err = writeText(options.Out, report)
		}
		if err != nil {
			return report, errors.Wrap(err, "write report")
		}
	}

	return report, stopErr
}

func (e *engine) apply(op script.Op) Step {
	step := Step{Op: op, Status: StatusOK, Output: none()}

	h, ok := e.handlers[op.Name]
	if !ok {
		step.Status = StatusInvalid
		step.Message = e.unknown(op.Name)
		return step
	}

	if len(op.Args) != len(h.params) {
		step.Status = StatusInvalid
		step.Message = fmt.Sprintf(
			"%s expects %d argument(s), got %d: %s",
			op.Name, len(h.params), len(op.Args),
			Operation{Name: op.Name, Params: h.params}.Usage(),
		)
		return step
	}

	out, err := h.call(op.Args)
	switch {
	case err == nil:
		step.Output = out
	case errors.Is(err, ErrBadArgument):
		step.Status = StatusInvalid
		step.Message = fmt.Sprintf("%s: %s", op.Name, err)
	default:
		step.Status = StatusFailed
		step.Kind = errs.KindOf(err)
		step.Message = err.Error()
	}

	return step
}

func (e *engine) unknown(name string) string {
	names := lo.Keys(e.handlers)
	closest := lo.MinBy(names, func(a, b string) bool {
		da, db := levenshtein.Distance(name, a), levenshtein.Distance(name, b)
		if da == db {
			return a < b
		}
		return da < db
	})

	msg := fmt.Sprintf("unknown operation %q for %s", name, e.kind)
	if closest != "" && levenshtein.Distance(name, closest) <= len(closest)/2 {
		msg += fmt.Sprintf(", did you mean %s?", closest)
	} else {
		msg += " (" + strings.Join(lo.Map(e.operations(), func(o Operation, _ int) string { return o.Name }), ", ") + ")"
	}
	return msg
}
