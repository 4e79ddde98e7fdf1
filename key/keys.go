// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 11

// Script Replay - these keys configure how the playground builds containers and reports each step.
const (
	RunnerContainer      = "runner.container"
	RunnerCapacity       = "runner.capacity"
	RunnerVectorCapacity = "runner.vector_capacity"
	RunnerSnapshot       = "runner.snapshot"
	RunnerStopOnError    = "runner.stop_on_error"
	RunnerHistory        = "runner.history"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the terminal presentation.
const (
	CliColored = "cli.colored"
)
