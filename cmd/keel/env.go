package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"keel/internal/lang"
)

var envConfigPath string

func init() {
	envCmd.Flags().StringVar(&envConfigPath, "config", "", "path to a keel.toml options file")
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the effective language options",
	RunE: func(cmd *cobra.Command, args []string) error {
		configureColor(cmd)
		opts := lang.Default()
		origin := "defaults"
		if envConfigPath != "" {
			loaded, err := lang.Load(envConfigPath)
			if err != nil {
				return err
			}
			opts = loaded
			origin = envConfigPath
		}

		out := cmd.OutOrStdout()
		heading := color.New(color.Bold)
		fmt.Fprintf(out, "%s (%s)\n", heading.Sprint("language options"), origin)
		fmt.Fprintf(out, "  pointer-bits          %d\n", opts.PointerBits)
		fmt.Fprintf(out, "  max-diagnostics       %d\n", opts.MaxDiagnostics)
		fmt.Fprintf(out, "  normalize-identifiers %t\n", opts.NormalizeIdentifiers)
		return nil
	},
}
