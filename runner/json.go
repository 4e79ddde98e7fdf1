package runner

import (
	"encoding/json"
	"io"
	"reflect"

	"github.com/alglib/alglib/errs"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
)

// JsonStep is the JSON form of a Step.
type JsonStep struct {
	Line   int      `json:"line" jsonschema:"description=1-based script line"`
	Op     string   `json:"op"`
	Name   string   `json:"name"`
	Args   []string `json:"args,omitempty"`
	Status Status   `json:"status" jsonschema:"enum=ok,enum=failed,enum=invalid"`
	// Output is null for mutations.
	Output *string `json:"output"`
	Error  string  `json:"error,omitempty" jsonschema:"enum=EmptyError,enum=CapacityExceeded,enum=IndexOutOfRange,enum=ItemNotFound,enum=AllocationFailure,enum=Unknown"`
	// Message explains failed and invalid steps.
	Message  string   `json:"message,omitempty"`
	Snapshot []string `json:"snapshot,omitempty"`
}

// JsonReport is the JSON form of a Report.
type JsonReport struct {
	Container Kind       `json:"container"`
	Capacity  int        `json:"capacity,omitempty"`
	Steps     []JsonStep `json:"steps"`
	Final     []string   `json:"final"`
	Failed    int        `json:"failed"`
	Invalid   int        `json:"invalid"`
	Stopped   bool       `json:"stopped"`
}

func asJson(report *Report) *JsonReport {
	steps := lo.Map(report.Steps, func(s Step, _ int) JsonStep {
		step := JsonStep{
			Line:     s.Op.Line,
			Op:       s.Op.String(),
			Name:     s.Op.Name,
			Args:     s.Op.Args,
			Status:   s.Status,
			Output:   s.Output.ToPointer(),
			Message:  s.Message,
			Snapshot: s.Snapshot.OrEmpty(),
		}
		if s.Kind != errs.KindNone {
			step.Error = s.Kind.String()
		}
		return step
	})

	return &JsonReport{
		Container: report.Kind,
		Capacity:  report.Capacity,
		Steps:     steps,
		Final:     report.Final,
		Failed:    report.Count(StatusFailed),
		Invalid:   report.Count(StatusInvalid),
		Stopped:   report.Stopped,
	}
}

func writeJson(out io.Writer, report *Report) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(asJson(report))
}

// Schema returns the JSON schema of the report written with Options.Json.
func Schema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		switch t.Name() {
		case "JsonReport":
			return "Report"
		case "JsonStep":
			return "Step"
		}
		return t.Name()
	}
	return reflector.Reflect(&JsonReport{})
}
