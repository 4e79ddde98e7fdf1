package runner

import (
	"io"

	"github.com/alglib/alglib/key"
	"github.com/alglib/alglib/script"
	"github.com/spf13/viper"
)

// Options controls a replay.
type Options struct {
	// Out receives the rendered report. Nothing is written when nil.
	Out  io.Writer
	Json bool

	Kind Kind
	// Capacity sizes ArrayStack and CircularQueue.
	Capacity int
	// VectorCapacity is the number of slots the vector starts with.
	VectorCapacity int

	Ops         []script.Op
	Snapshot    bool
	StopOnError bool
}

// DefaultOptions reads the runner settings from the configuration.
func DefaultOptions() (*Options, error) {
	kind, err := ParseKind(viper.GetString(key.RunnerContainer))
	if err != nil {
		return nil, err
	}

	return &Options{
		Kind:           kind,
		Capacity:       viper.GetInt(key.RunnerCapacity),
		VectorCapacity: viper.GetInt(key.RunnerVectorCapacity),
		Snapshot:       viper.GetBool(key.RunnerSnapshot),
		StopOnError:    viper.GetBool(key.RunnerStopOnError),
	}, nil
}
