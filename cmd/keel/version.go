package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"keel/internal/version"
)

var (
	versionShowHash bool
	versionShowDate bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShowHash, "hash", false, "include git commit hash")
	versionCmd.Flags().BoolVar(&versionShowDate, "date", false, "include build timestamp")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show keel build fingerprints",
	RunE: func(cmd *cobra.Command, args []string) error {
		configureColor(cmd)
		out := cmd.OutOrStdout()
		v := strings.TrimSpace(version.Version)
		if v == "" {
			v = "dev"
		}
		fmt.Fprintf(out, "keel %s\n", v)
		if versionShowHash {
			fmt.Fprintf(out, "commit: %s\n", valueOrUnknown(version.GitCommit))
		}
		if versionShowDate {
			fmt.Fprintf(out, "built:  %s\n", valueOrUnknown(version.BuildDate))
		}
		return nil
	},
}

func valueOrUnknown(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return "unknown"
	}
	return s
}
