// Package misc keeps program identification in a single place.
package misc

import (
	"runtime/debug"
)

const appName = "objkit"

// populated by linker: -ldflags "-X objkit/misc.version=... -X objkit/misc.gitHash=..."
var (
	version = "dev"
	gitHash = ""
)

func GetAppName() string {
	return appName
}

// GetVersion returns program version, falls back to module version from
// build info when not set by linker.
func GetVersion() string {
	if version != "dev" {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return version
}

// GetGitHash returns source revision program was built from.
func GetGitHash() string {
	if len(gitHash) > 0 {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
