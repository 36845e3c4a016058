package check

import (
	"fmt"
	"strings"

	"github.com/woozymasta/mcprobe/internal/probe"
)

// DefaultMOTD is the description of a freshly installed vanilla server.
const DefaultMOTD = "A Minecraft Server"

// Config holds the evaluation parameters for a single run.
type Config struct {
	ExpectedMOTD string
	Warning      Threshold
	Critical     Threshold
	WarnOnFull   bool
}

// DefaultConfig returns the stock thresholds: warn above 100 ms, critical above 200 ms.
func DefaultConfig() Config {
	return Config{
		ExpectedMOTD: DefaultMOTD,
		Warning:      Limit(100),
		Critical:     Limit(200),
	}
}

// Evaluate classifies a query result. Checks run in a fixed order and the first
// match wins: query failure, MOTD mismatch, critical latency, warning latency,
// full server. Evaluate is pure and defined for every input.
func Evaluate(res probe.Result, cfg Config) Report {
	if !res.OK() {
		reason := probe.FailureConnection.Reason()
		if res.Failure != nil {
			reason = res.Failure.Kind.Reason()
		}
		return Report{State: Critical, Summary: reason}
	}

	st := res.Status
	perf := &PerfData{
		Online:   st.PlayersOnline,
		Max:      st.PlayersMax,
		Latency:  st.Latency,
		Warning:  cfg.Warning,
		Critical: cfg.Critical,
	}
	players := fmt.Sprintf("%d/%d players online", st.PlayersOnline, st.PlayersMax)
	latency := formatFloat(st.Latency)

	switch {
	case !strings.Contains(st.Description, cfg.ExpectedMOTD):
		return Report{State: Warning, Summary: "Unexpected MOTD: " + sanitize(st.Description), Perf: perf}

	case cfg.Critical.Exceeded(st.Latency):
		return Report{State: Critical, Summary: players + " but latency too high (" + latency + " ms)", Perf: perf}

	case cfg.Warning.Exceeded(st.Latency):
		return Report{State: Warning, Summary: players + " but latency too high (" + latency + " ms)", Perf: perf}

	case cfg.WarnOnFull && st.Full():
		return Report{State: Warning, Summary: players + ", " + latency + " ms", Perf: perf}
	}

	return Report{State: OK, Summary: players + ", " + latency + " ms", Perf: perf}
}
