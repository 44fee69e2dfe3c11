package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/nao1215/datecheck/internal/config"
)

// Version information set at build time via ldflags.
var (
	version = ""
	commit  = ""
	date    = ""
)

// getVersion returns version string.
// Priority: ldflags > debug.ReadBuildInfo > "(devel)"
func getVersion() string {
	if version != "" {
		return version
	}
	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		if buildInfo.Main.Version != "" {
			return buildInfo.Main.Version
		}
	}
	return "(devel)"
}

// buildSetting returns a VCS setting recorded by the Go toolchain.
func buildSetting(key string) (string, bool) {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}
	for _, setting := range buildInfo.Settings {
		if setting.Key == key {
			return setting.Value, true
		}
	}
	return "", false
}

// getCommit returns the short commit hash.
// Priority: ldflags > vcs.revision > "unknown"
func getCommit() string {
	if commit != "" {
		return commit
	}
	if revision, ok := buildSetting("vcs.revision"); ok {
		if len(revision) > 7 {
			return revision[:7]
		}
		return revision
	}
	return "unknown"
}

// getDate returns build date.
// Priority: ldflags > vcs.time > "unknown"
func getDate() string {
	if date != "" {
		return date
	}
	if vcsTime, ok := buildSetting("vcs.time"); ok {
		return vcsTime
	}
	return "unknown"
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the version, commit hash, and build date of datecheck.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", config.AppName, getVersion())
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", getCommit())
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", getDate())
		},
	}
}
