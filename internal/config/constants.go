package config

// Environment prefix for every timekeeper setting.
const EnvPrefix = "TIMEKEEPER"

const (
	keyUnit        = "unit"
	keyTemplate    = "template"
	keyRuns        = "runs"
	keyChildOutput = "child_output"
	keyMetricsAddr = "metrics_addr"
	keyOutput      = "output"
	keyLogLevel    = "log_level"
)

// Defaults applied when a setting is not present in the environment.
const (
	DefaultUnit     = "auto"
	DefaultRuns     = 10
	DefaultOutput   = OutputStdout
	DefaultLogLevel = "info"
)

// Special OUTPUT values. Anything else is treated as a file path.
const (
	OutputStdout = "stdout"
	OutputStderr = "stderr"
)
