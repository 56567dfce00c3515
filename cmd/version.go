package cmd

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// Version returns a `version` command to be added to any cobra (root) command.
func Version(name string) *cobra.Command {
	name = strings.TrimSpace(name)

	short := "Print version"
	prefix := "version"

	if name != "" {
		short = "Print " + name + " version"
		prefix = name + " version"
	}

	return &cobra.Command{
		Use:                   "version",
		Short:                 short,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		Run: func(cmd *cobra.Command, _ []string) {
			hash, ts := getVersionHashAndTimestamp()

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s from %s\n", prefix, hash, ts)
		},
	}
}

// getVersionHashAndTimestamp returns the last git hash and commit timestamp.
// Binaries built from uncommitted code report @latest and the current time.
func getVersionHashAndTimestamp() (string, string) {
	info := readBuildInfo()

	if info.modified || info.hash == "" {
		return "@latest", time.Now().UTC().Format(time.RFC3339)
	}

	return info.hash, info.time
}

type buildInfo struct {
	hash     string
	time     string
	modified bool
}

// readBuildInfo returns the vcs information embedded by `go build`.
// `go run` and `go test` do not contain that info.
func readBuildInfo() buildInfo {
	var info buildInfo

	build, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	for _, setting := range build.Settings {
		switch setting.Key {
		case "vcs.revision":
			info.hash = setting.Value
		case "vcs.time":
			info.time = setting.Value
		case "vcs.modified":
			info.modified = setting.Value == "true"
		}
	}

	return info
}
