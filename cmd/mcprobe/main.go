// main is the entry point of the mcprobe monitoring plugin.
// It parses the configuration, queries the Minecraft server once, evaluates the status
// and prints a single report line, exiting with the Nagios compatible state code.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
	"github.com/woozymasta/mcprobe/internal/check"
	"github.com/woozymasta/mcprobe/internal/config"
	"github.com/woozymasta/mcprobe/internal/logger"
	"github.com/woozymasta/mcprobe/internal/probe"
	"github.com/woozymasta/mcprobe/internal/vars"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, probe.QueryServer))
}

// run executes a single check and returns the process exit code.
func run(args []string, stdout io.Writer, query probe.QueryFunc) int {
	cfg, err := config.Parse(args)
	if err != nil {
		report := check.Invalid()

		// usage first, then the plugin line so monitoring still sees UNKNOWN
		if flags.WroteHelp(err) {
			_, _ = fmt.Fprintln(stdout, err.Error())
		} else {
			_, _ = fmt.Fprintln(os.Stderr, err.Error())
		}

		_, _ = fmt.Fprintln(stdout, report.String())
		return report.ExitCode()
	}

	if cfg.Version {
		vars.Print(stdout)
		return check.Unknown.ExitCode()
	}

	logger.Setup(cfg.Logger, cfg.Verbose)
	log.Debug().
		Str("agent", vars.UserAgent()).
		Str("host", cfg.Server.Hostname).
		Int("port", cfg.Server.Port).
		Msg("Starting check")

	res := probe.Query(query, cfg.Server.Hostname, cfg.Server.Port, cfg.Query())
	report := check.Evaluate(res, cfg.Check())

	log.Debug().
		Str("state", report.State.String()).
		Int("exit_code", report.ExitCode()).
		Msg("Check finished")

	_, _ = fmt.Fprintln(stdout, report.String())
	return report.ExitCode()
}
