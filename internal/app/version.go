package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit, and BuildTime are set via ldflags at build time.
// Example: go build -ldflags "-X github.com/heartmarshall/todo-backend/internal/app.Version=1.0.0"
// Commit and BuildTime fall back to the VCS stamp of the binary when unset.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns a formatted version string for startup logs and health endpoints.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if info, ok := debug.ReadBuildInfo(); ok {
		commit, built = vcsStamp(info.Settings, commit, built)
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit, built)
}

// vcsStamp fills the "unknown" values from vcs.revision and vcs.time.
func vcsStamp(settings []debug.BuildSetting, commit, built string) (string, string) {
	for _, s := range settings {
		switch {
		case s.Key == "vcs.revision" && commit == "unknown" && s.Value != "":
			commit = s.Value
			if len(commit) > 12 {
				commit = commit[:12]
			}
		case s.Key == "vcs.time" && built == "unknown" && s.Value != "":
			built = s.Value
		}
	}
	return commit, built
}
