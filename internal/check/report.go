package check

import (
	"strconv"
	"strings"
)

// pluginName prefixes every report line.
const pluginName = "MINECRAFT"

// PerfData is the machine readable part of the report.
type PerfData struct {
	Warning  Threshold
	Critical Threshold
	Online   int
	Max      int
	Latency  float64
}

// String renders perfdata in the fixed order consumed by graphing tools:
//
//	players=<online>;0;0;0;<max> time=<latency>ms;<warn>;<crit>;0.0
func (p PerfData) String() string {
	var b strings.Builder
	b.WriteString("players=")
	b.WriteString(strconv.Itoa(p.Online))
	b.WriteString(";0;0;0;")
	b.WriteString(strconv.Itoa(p.Max))
	b.WriteString(" time=")
	b.WriteString(formatFloat(p.Latency))
	b.WriteString("ms;")
	b.WriteString(p.Warning.String())
	b.WriteByte(';')
	b.WriteString(p.Critical.String())
	b.WriteString(";0.0")

	return b.String()
}

// Report is the evaluation result: a state, a human readable summary and optional perfdata.
type Report struct {
	Perf    *PerfData
	Summary string
	State   State
}

// String renders the single plugin output line.
func (r Report) String() string {
	line := pluginName + " " + r.State.String() + ": " + r.Summary
	if r.Perf != nil {
		line += " |" + r.Perf.String()
	}

	return line
}

// ExitCode returns the process exit code for the report.
func (r Report) ExitCode() int {
	return r.State.ExitCode()
}

// Invalid returns the report used when the command line cannot be parsed.
func Invalid() Report {
	return Report{State: Unknown, Summary: "Invalid arguments"}
}

// formatFloat prints a float with at least one fractional digit (50 -> "50.0", 12.34 -> "12.34").
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}

	return s
}

// motdReplacer keeps server supplied text on one line and away from the perfdata separator.
var motdReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "|", "/")

func sanitize(s string) string {
	return strings.TrimSpace(motdReplacer.Replace(s))
}
