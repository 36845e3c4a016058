// Package vars holds build-time variables populated via the linker (ldflags).
//
// Binaries built with plain `go install` carry no ldflags; for those the module
// version and VCS revision recorded by the Go toolchain are used instead.
package vars

import (
	"fmt"
	"io"
	"runtime/debug"
	"strconv"
	"time"
)

// License of the project
const License = "AGPL-3.0"

var (
	// Name of the plugin as shown in --version output
	Name = "mcprobe"

	// Version of application (git tag), e.g. v1.2.3
	Version = "dev"

	// Commit is the git commit, full or short SHA
	Commit = "unknown"

	// Revision build, count of commits
	Revision = 0

	// BuildTime is the build start time, RFC3339 UTC
	BuildTime time.Time

	// URL to repository (https)
	URL = "https://github.com/woozymasta/mcprobe"

	_revision  string
	_buildTime string
)

func init() {
	if n, err := strconv.Atoi(_revision); err == nil {
		Revision = n
	}
	if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
		BuildTime = t.UTC()
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		applyBuildInfo(info)
	}
}

// applyBuildInfo fills values the linker left at their defaults.
func applyBuildInfo(info *debug.BuildInfo) {
	if Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if Commit == "unknown" && s.Value != "" {
				Commit = s.Value
			}
		case "vcs.time":
			if BuildTime.IsZero() {
				if t, err := time.Parse(time.RFC3339, s.Value); err == nil {
					BuildTime = t.UTC()
				}
			}
		}
	}
}

// String returns the one line version banner, e.g.
// "mcprobe v1.2.3 (commit da15c17, revision 42, built 2024-05-01T10:00:00Z)".
func String() string {
	s := Name + " " + Version + " (commit " + CommitShort()
	if Revision > 0 {
		s += ", revision " + strconv.Itoa(Revision)
	}
	if !BuildTime.IsZero() {
		s += ", built " + BuildTime.Format(time.RFC3339)
	}

	return s + ")"
}

// Print writes the version banner followed by the project URL and license.
func Print(w io.Writer) {
	_, _ = fmt.Fprintf(w, "%s\n%s, license %s\n", String(), URL, License)
}

// UserAgent returns a short "name/version" identifier used in diagnostics.
func UserAgent() string {
	return Name + "/" + Version
}

// CommitShort returns the first 7 characters of the git commit hash.
func CommitShort() string {
	if len(Commit) > 7 {
		return Commit[:7]
	}

	return Commit
}
