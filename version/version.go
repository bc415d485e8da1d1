package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// These variables are populated by the Go linker during the build process.
var (
	Version   = "dev"     // Overridden by the Git tag
	Commit    = "none"    // Overridden by the Git commit hash
	BuildDate = "unknown" // Overridden by the build timestamp
)

// Info holds all the versioning information.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// GetInfo returns a struct populated with the version information. Binaries
// built with `go install` carry no linker flags, so the module version from
// the build info is used instead of "dev".
func GetInfo() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
	if info.Version == "dev" {
		if bi, ok := debug.ReadBuildInfo(); ok {
			info.Version = moduleVersion(bi, info.Version)
		}
	}
	return info
}

func moduleVersion(bi *debug.BuildInfo, fallback string) string {
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		return v
	}
	return fallback
}

// String returns a formatted string of the version information.
func (i Info) String() string {
	return fmt.Sprintf(
		"Version:\t%s\nCommit:\t\t%s\nBuild Date:\t%s\nGo Version:\t%s\nPlatform:\t%s",
		i.Version, i.Commit, i.BuildDate, i.GoVersion, i.Platform,
	)
}
