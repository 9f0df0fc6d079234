package seisfile

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version is the release of the seisfile reader.
const Version = "0.1.0"

// VersionInfo identifies the build of a binary using seisfile.
type VersionInfo struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
}

// Set with -ldflags "-X github.com/simonhull/seisfile.gitCommit=...".
var (
	gitCommit = ""
	buildTime = ""
)

// GetVersionInfo reports the library version and the commit and time the
// binary was built from. Values set through -ldflags win over the VCS stamps
// recorded by the go command; missing values read "unknown".
func GetVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch {
			case s.Key == "vcs.revision" && info.GitCommit == "":
				info.GitCommit = s.Value
			case s.Key == "vcs.time" && info.BuildTime == "":
				info.BuildTime = s.Value
			}
		}
	}

	if info.GitCommit == "" {
		info.GitCommit = "unknown"
	}
	if info.BuildTime == "" {
		info.BuildTime = "unknown"
	}
	return info
}

// String renders the info as "v0.1.0 (commit abc123, built ..., go1.x)".
func (v VersionInfo) String() string {
	commit := v.GitCommit
	if len(commit) > 12 {
		commit = commit[:12]
	}
	return fmt.Sprintf("v%s (commit %s, built %s, %s)", v.Version, commit, v.BuildTime, v.GoVersion)
}
