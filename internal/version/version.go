// Package version carries build metadata, set with -ldflags "-X".
package version

import (
	"runtime"
	"runtime/debug"
)

var (
	Version   = "dev"             // ex: v0.1.0
	Commit    = ""                // ex: abcd123, falls back to the VCS stamp
	BuildDate = ""                // ex: 2025-08-11T18:42:00Z, falls back to the commit time
	GoVersion = runtime.Version() // go version
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if Commit == "" && len(s.Value) >= 7 {
				Commit = s.Value[:7]
			}
		case "vcs.time":
			if BuildDate == "" {
				BuildDate = s.Value
			}
		}
	}
}

// String renders the build metadata on one line.
func String() string {
	commit, built := Commit, BuildDate
	if commit == "" {
		commit = "none"
	}
	if built == "" {
		built = "unknown"
	}
	return "MakerHub " + Version + " (commit=" + commit + ", built=" + built + ", go=" + GoVersion + ")"
}
