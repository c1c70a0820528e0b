package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"keel/internal/ast"
	"keel/internal/census"
	"keel/internal/diag"
	"keel/internal/lang"
)

var (
	censusConfigPath string
	censusOutPath    string
	censusInPath     string
)

func init() {
	censusCmd.Flags().StringVar(&censusConfigPath, "config", "", "path to a keel.toml options file")
	censusCmd.Flags().StringVar(&censusOutPath, "out", "", "write the census as msgpack to this path")
	censusCmd.Flags().StringVar(&censusInPath, "in", "", "render a previously written census instead of bootstrapping")
}

var censusCmd = &cobra.Command{
	Use:   "census",
	Short: "Report what a freshly bootstrapped type context contains",
	RunE: func(cmd *cobra.Command, args []string) error {
		configureColor(cmd)

		var snap census.Snapshot
		if censusInPath != "" {
			loaded, err := census.ReadFile(censusInPath)
			if err != nil {
				return err
			}
			snap = loaded
		} else {
			opts := lang.Default()
			if censusConfigPath != "" {
				loaded, err := lang.Load(censusConfigPath)
				if err != nil {
					return err
				}
				opts = loaded
			}
			c := ast.NewContext(opts, diag.NewBag(opts.MaxDiagnostics))
			snap = census.Take(c)
			c.Release()
		}

		renderCensus(cmd, snap)
		if censusOutPath != "" {
			if err := snap.WriteFile(censusOutPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", censusOutPath)
		}
		return nil
	},
}

func renderCensus(cmd *cobra.Command, snap census.Snapshot) {
	out := cmd.OutOrStdout()
	heading := color.New(color.Bold)
	kindColor := color.New(color.FgCyan)

	fmt.Fprintln(out, heading.Sprint("type context census"))
	kinds := make([]string, 0, len(snap.TypesByKind))
	for kind := range snap.TypesByKind {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		fmt.Fprintf(out, "  %-16s %d\n", kindColor.Sprint(kind), snap.TypesByKind[kind])
	}
	fmt.Fprintf(out, "types total: %d\n", snap.TypesTotal)
	fmt.Fprintf(out, "identifiers: %d\n", snap.Identifiers)
	fmt.Fprintf(out, "arena: %d bytes, %d pinned nodes\n", snap.ArenaBytes, snap.ArenaPins)
}
