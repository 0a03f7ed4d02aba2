// Package misc keeps program identity information.
package misc

import (
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
)

// Set at build time with -ldflags "-X cssed/misc.version=... -X cssed/misc.gitHash=..."
var (
	version = ""
	gitHash = ""
)

const appName = "cssed"

// GetAppName returns name of the program, derived from executable if possible.
func GetAppName() string {
	if len(os.Args) == 0 {
		return appName
	}
	base := filepath.Base(os.Args[0])
	if strings.HasSuffix(base, ".test") || strings.HasSuffix(base, ".test.exe") {
		return appName
	}
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" || name == "." {
		return appName
	}
	return name
}

// GetVersion returns program version.
func GetVersion() string {
	if version != "" {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return "dev"
}

// GetGitHash returns short hash of the commit program was built from.
func GetGitHash() string {
	if gitHash != "" {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 7 {
				return s.Value[:7]
			}
		}
	}
	return "unknown"
}
