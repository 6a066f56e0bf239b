package exifmeta

import "runtime/debug"

// Version is the semantic version of the exifmeta library.
const Version = "0.1.0"

// VersionInfo describes the running build.
type VersionInfo struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
}

// Populated with -ldflags, for example:
//
//	go build -ldflags="-X github.com/simonhull/exifmeta.gitCommit=$(git rev-parse HEAD) \
//	  -X github.com/simonhull/exifmeta.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	gitCommit string
	buildTime string
)

// GetVersionInfo reports the library version and build details. Commit and
// build time come from -ldflags when set, otherwise from the VCS stamp the
// go command embeds in module builds; anything unavailable is "unknown".
func GetVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: "unknown",
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = bi.GoVersion
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
