package check

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/woozymasta/mcprobe/internal/models"
	"github.com/woozymasta/mcprobe/internal/probe"
)

func status(motd string, online, maxPlayers int, latency float64) probe.Result {
	return probe.Succeeded(models.ServerStatus{
		Description:   motd,
		PlayersOnline: online,
		PlayersMax:    maxPlayers,
		Latency:       latency,
	})
}

func TestEvaluate(t *testing.T) {
	full := DefaultConfig()
	full.WarnOnFull = true

	tests := []struct {
		name  string
		res   probe.Result
		cfg   Config
		state State
		line  string
	}{
		{
			name:  "ok",
			res:   status(DefaultMOTD, 5, 20, 50.0),
			cfg:   DefaultConfig(),
			state: OK,
			line:  "MINECRAFT OK: 5/20 players online, 50.0 ms |players=5;0;0;0;20 time=50.0ms;100.0;200.0;0.0",
		},
		{
			name:  "critical latency",
			res:   status(DefaultMOTD, 5, 20, 250.0),
			cfg:   DefaultConfig(),
			state: Critical,
			line:  "MINECRAFT CRITICAL: 5/20 players online but latency too high (250.0 ms) |players=5;0;0;0;20 time=250.0ms;100.0;200.0;0.0",
		},
		{
			name:  "warning latency",
			res:   status(DefaultMOTD, 5, 20, 150.0),
			cfg:   DefaultConfig(),
			state: Warning,
			line:  "MINECRAFT WARNING: 5/20 players online but latency too high (150.0 ms) |players=5;0;0;0;20 time=150.0ms;100.0;200.0;0.0",
		},
		{
			name:  "latency equal to critical is only warning",
			res:   status(DefaultMOTD, 5, 20, 200.0),
			cfg:   DefaultConfig(),
			state: Warning,
		},
		{
			name:  "latency equal to warning is ok",
			res:   status(DefaultMOTD, 5, 20, 100.0),
			cfg:   DefaultConfig(),
			state: OK,
		},
		{
			name:  "motd mismatch wins over good latency",
			res:   status("Some Other Server", 5, 20, 10.0),
			cfg:   DefaultConfig(),
			state: Warning,
			line:  "MINECRAFT WARNING: Unexpected MOTD: Some Other Server |players=5;0;0;0;20 time=10.0ms;100.0;200.0;0.0",
		},
		{
			name:  "motd mismatch wins over critical latency",
			res:   status("Some Other Server", 5, 20, 900.0),
			cfg:   DefaultConfig(),
			state: Warning,
		},
		{
			name:  "motd substring match",
			res:   status("Welcome to A Minecraft Server!", 1, 10, 1.5),
			cfg:   DefaultConfig(),
			state: OK,
			line:  "MINECRAFT OK: 1/10 players online, 1.5 ms |players=1;0;0;0;10 time=1.5ms;100.0;200.0;0.0",
		},
		{
			name:  "motd match is case sensitive",
			res:   status("a minecraft server", 1, 10, 1.5),
			cfg:   DefaultConfig(),
			state: Warning,
		},
		{
			name:  "full server warns when enabled",
			res:   status(DefaultMOTD, 20, 20, 10.0),
			cfg:   full,
			state: Warning,
			line:  "MINECRAFT WARNING: 20/20 players online, 10.0 ms |players=20;0;0;0;20 time=10.0ms;100.0;200.0;0.0",
		},
		{
			name:  "full server ok when disabled",
			res:   status(DefaultMOTD, 20, 20, 10.0),
			cfg:   DefaultConfig(),
			state: OK,
		},
		{
			name:  "critical latency wins over full",
			res:   status(DefaultMOTD, 20, 20, 250.0),
			cfg:   full,
			state: Critical,
		},
		{
			name:  "timeout",
			res:   probe.Failed(probe.FailureTimeout, os.ErrDeadlineExceeded),
			cfg:   DefaultConfig(),
			state: Critical,
			line:  "MINECRAFT CRITICAL: Connection timed out",
		},
		{
			name:  "connection refused",
			res:   probe.Failed(probe.FailureConnection, errors.New("refused")),
			cfg:   DefaultConfig(),
			state: Critical,
			line:  "MINECRAFT CRITICAL: Connection failed",
		},
		{
			name:  "protocol error",
			res:   probe.Failed(probe.FailureProtocol, errors.New("bad packet")),
			cfg:   DefaultConfig(),
			state: Critical,
			line:  "MINECRAFT CRITICAL: Invalid server response",
		},
		{
			name:  "empty result",
			res:   probe.Result{},
			cfg:   DefaultConfig(),
			state: Critical,
			line:  "MINECRAFT CRITICAL: Connection failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.res, tt.cfg)
			if got.State != tt.state {
				t.Fatalf("state = %s, want %s (line %q)", got.State, tt.state, got.String())
			}
			if tt.line != "" && got.String() != tt.line {
				t.Errorf("line mismatch\n got: %q\nwant: %q", got.String(), tt.line)
			}
			if got.ExitCode() != int(tt.state) {
				t.Errorf("exit code = %d, want %d", got.ExitCode(), int(tt.state))
			}
		})
	}
}

func TestEvaluateFailureIgnoresThresholds(t *testing.T) {
	cfgs := []Config{
		DefaultConfig(),
		{ExpectedMOTD: "x", WarnOnFull: true},
		{Warning: Limit(0.01), Critical: Limit(0.02)},
	}

	for i, cfg := range cfgs {
		got := Evaluate(probe.Failed(probe.FailureTimeout, nil), cfg)
		if got.State != Critical {
			t.Errorf("case %d: state = %s, want CRITICAL", i, got.State)
		}
		if got.Perf != nil {
			t.Errorf("case %d: unexpected perfdata on failure", i)
		}
	}
}

func TestEvaluateDisabledThresholds(t *testing.T) {
	cfg := Config{ExpectedMOTD: DefaultMOTD}

	got := Evaluate(status(DefaultMOTD, 3, 10, 5000), cfg)
	if got.State != OK {
		t.Fatalf("state = %s, want OK", got.State)
	}

	want := "time=5000.0ms;;;0.0"
	if !strings.HasSuffix(got.String(), want) {
		t.Errorf("line %q does not end with %q", got.String(), want)
	}

	cfg.Critical = Limit(1000)
	if got := Evaluate(status(DefaultMOTD, 3, 10, 5000), cfg); got.State != Critical {
		t.Errorf("critical only: state = %s, want CRITICAL", got.State)
	}
}

func TestEvaluateSanitizesMOTD(t *testing.T) {
	got := Evaluate(status("Line one\nLine|two", 0, 10, 1), DefaultConfig())

	line := got.String()
	if strings.Contains(line, "\n") {
		t.Fatalf("line contains newline: %q", line)
	}
	if strings.Count(line, "|") != 1 {
		t.Fatalf("line must contain exactly one perfdata separator: %q", line)
	}
	if !strings.Contains(line, "Unexpected MOTD: Line one Line/two |") {
		t.Errorf("unexpected summary: %q", line)
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	res := status(DefaultMOTD, 7, 8, 123.45)
	cfg := DefaultConfig()

	first := Evaluate(res, cfg)
	second := Evaluate(res, cfg)
	if first.String() != second.String() || first.State != second.State {
		t.Fatalf("evaluation is not stable: %q vs %q", first, second)
	}
}

func TestInvalid(t *testing.T) {
	got := Invalid()
	if got.String() != "MINECRAFT UNKNOWN: Invalid arguments" {
		t.Errorf("unexpected line %q", got.String())
	}
	if got.ExitCode() != 3 {
		t.Errorf("exit code = %d, want 3", got.ExitCode())
	}
}
