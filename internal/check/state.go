// Package check evaluates a status query against configured thresholds and renders
// the monitoring plugin report line.
package check

// State is the plugin classification. Its numeric value is the process exit code
// expected by Nagios compatible monitoring systems and must not change.
type State int

// Plugin states in exit code order.
const (
	OK State = iota
	Warning
	Critical
	Unknown
)

// ExitCode returns the process exit code for the state.
func (s State) ExitCode() int {
	if s < OK || s > Unknown {
		return int(Unknown)
	}

	return int(s)
}

// String returns the upper-case state name used in the report line.
func (s State) String() string {
	switch s {
	case OK:
		return "OK"
	case Warning:
		return "WARNING"
	case Critical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// Threshold is an optional latency bound in milliseconds. The zero value is disabled.
type Threshold struct {
	value   float64
	enabled bool
}

// Limit returns an enabled threshold.
func Limit(ms float64) Threshold {
	return Threshold{value: ms, enabled: true}
}

// Enabled reports whether the threshold takes part in evaluation.
func (t Threshold) Enabled() bool {
	return t.enabled
}

// Value returns the bound; it is meaningless for a disabled threshold.
func (t Threshold) Value() float64 {
	return t.value
}

// Exceeded reports whether ms is strictly above an enabled threshold.
func (t Threshold) Exceeded(ms float64) bool {
	return t.enabled && ms > t.value
}

// String renders the threshold for perfdata, empty when disabled.
func (t Threshold) String() string {
	if !t.enabled {
		return ""
	}

	return formatFloat(t.value)
}
