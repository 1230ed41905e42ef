// Package version reports the build metadata stamped into a strtab binary.
package version

import "runtime/debug"

// Overridden by the release build via -ldflags, e.g.
//
//	go build -ldflags "-X strtab/version.Tag=v1.0.0 -X strtab/version.GitCommit=abc1234"
//
// GitCommit and BuildTime fall back to the VCS stamps the Go toolchain
// embeds when built from a checkout.
var (
	Tag       = "dev"
	GitCommit = ""
	BuildTime = ""
)

// String returns a one-line banner with tag, commit, and build time.
func String() string {
	commit := orStamp(GitCommit, "vcs.revision")
	if len(commit) > 8 {
		commit = commit[:8]
	}
	built := orStamp(BuildTime, "vcs.time")
	return "strtab " + Tag + " (commit " + commit + ", built " + built + ")"
}

// orStamp prefers the ldflags value, then the named build-info setting,
// then "unknown".
func orStamp(ldflag, key string) string {
	if ldflag != "" {
		return ldflag
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == key && s.Value != "" {
				return s.Value
			}
		}
	}
	return "unknown"
}
