// Package config handles the parsing and validation of the plugin configuration
// from command-line arguments and environment variables.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/woozymasta/mcprobe/internal/check"
	"github.com/woozymasta/mcprobe/internal/logger"
	"github.com/woozymasta/mcprobe/internal/probe"
)

// Config represents the complete plugin flags configuration.
type Config struct {
	// betteralign:ignore

	Server    Server        `group:"Server Options" env-namespace:"MCPROBE"`
	Threshold Thresholds    `group:"Threshold Options" env-namespace:"MCPROBE"`
	Logger    logger.Config `group:"Logger Options" namespace:"log" env-namespace:"MCPROBE_LOG"`

	Verbose bool `short:"v" long:"verbose" env:"MCPROBE_VERBOSE" description:"Show details for command-line debugging on stderr"`
	Version bool `long:"version" description:"Print version and build info"`
}

// Server holds the target server configuration.
type Server struct {
	// betteralign:ignore

	Hostname string  `short:"H" long:"hostname" env:"HOSTNAME" value-name:"ADDRESS" description:"Host name or IP address (required)"`
	Port     int     `short:"p" long:"port" env:"PORT" value-name:"INTEGER" description:"Port number" default:"25565"`
	Timeout  float64 `short:"t" long:"timeout" env:"TIMEOUT" value-name:"DOUBLE" description:"Seconds before connection times out" default:"1.0"`
}

// Thresholds holds the evaluation parameters.
type Thresholds struct {
	// betteralign:ignore

	MOTD       string  `short:"m" long:"motd" env:"MOTD" value-name:"STRING" description:"Expected MOTD substring in server response" default:"A Minecraft Server"`
	WarnOnFull bool    `short:"f" long:"warn-on-full" env:"WARN_ON_FULL" description:"Generate warning if server is full"`
	Warning    float64 `short:"w" long:"warning" env:"WARNING" value-name:"DOUBLE" description:"Response time to result in warning status (milliseconds)" default:"100.0"`
	Critical   float64 `short:"c" long:"critical" env:"CRITICAL" value-name:"DOUBLE" description:"Response time to result in critical status (milliseconds)" default:"200.0"`
}

// ArgumentError reports malformed or missing command line input.
type ArgumentError struct {
	Err error
}

// Error implements error.
func (e *ArgumentError) Error() string {
	return "invalid arguments: " + e.Err.Error()
}

// Unwrap returns the underlying parse or validation error.
func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// Parse reads the configuration from args and environment variables.
//
// A help request is returned as the go-flags *flags.Error of type flags.ErrHelp whose
// message is the rendered usage. Every other failure is an *ArgumentError.
func Parse(args []string) (*Config, error) {
	var cfg Config
	parser := flags.NewParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	parser.NamespaceDelimiter = "-"
	parser.Name = "mcprobe"
	parser.ShortDescription = "Minecraft server health check"
	parser.LongDescription = "This plugin will try to connect to a Minecraft server and report its status."

	rest, err := parser.ParseArgs(args)
	if err != nil {
		if flags.WroteHelp(err) {
			return nil, err
		}

		return nil, &ArgumentError{Err: err}
	}

	// --version does not need a target
	if cfg.Version {
		return &cfg, nil
	}

	if len(rest) > 0 {
		return nil, &ArgumentError{Err: fmt.Errorf("unexpected arguments: %s", strings.Join(rest, " "))}
	}

	if err := cfg.Validate(); err != nil {
		return nil, &ArgumentError{Err: err}
	}

	return &cfg, nil
}

// Validate checks value ranges that go-flags cannot express.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Server.Hostname) == "" {
		errs = append(errs, errors.New("hostname must not be empty"))
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range 1-65535", c.Server.Port))
	}
	if !validTimeout(c.Server.Timeout) {
		errs = append(errs, fmt.Errorf("timeout must be between 1ns and %s, got %v", time.Duration(math.MaxInt64), c.Server.Timeout))
	}
	if !validThreshold(c.Threshold.Warning) {
		errs = append(errs, fmt.Errorf("warning threshold must be positive and finite, got %v", c.Threshold.Warning))
	}
	if !validThreshold(c.Threshold.Critical) {
		errs = append(errs, fmt.Errorf("critical threshold must be positive and finite, got %v", c.Threshold.Critical))
	}

	return errors.Join(errs...)
}

// validTimeout reports whether seconds converts to a non-zero time.Duration without overflow.
func validTimeout(seconds float64) bool {
	if !(seconds > 0) || math.IsInf(seconds, 0) {
		return false
	}

	ns := seconds * float64(time.Second)
	return ns >= 1 && ns < math.MaxInt64
}

func validThreshold(ms float64) bool {
	return ms > 0 && !math.IsInf(ms, 0)
}

// Check returns the evaluator configuration.
func (c *Config) Check() check.Config {
	return check.Config{
		ExpectedMOTD: c.Threshold.MOTD,
		WarnOnFull:   c.Threshold.WarnOnFull,
		Warning:      check.Limit(c.Threshold.Warning),
		Critical:     check.Limit(c.Threshold.Critical),
	}
}

// Query returns the status ping options.
func (c *Config) Query() probe.Options {
	return probe.Options{
		Timeout: time.Duration(c.Server.Timeout * float64(time.Second)),
	}
}
