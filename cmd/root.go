package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexiusacademia/goconduit/internal/version"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "goconduit",
	Short: "Partially-full circular conduit hydraulics",
	Long: `goconduit - Go Circular Conduit Hydraulics

A CLI tool for open-channel flow in partially-full circular conduits
(culverts, sewers, storm drains) using Manning's equation.

Given the diameter D, slope So and Manning roughness n, and either a
discharge Q or a water depth h, it computes:
  - Uniform (normal) flow depth and properties
  - Critical flow depth and properties
  - Full-pipe discharge and the maximum conveyance before full flow
  - Rating curves and dimensionless section property curves

All quantities are SI (m, s, m³/s) with g = 9.806 m/s².`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(
			tint.NewHandler(os.Stderr, &tint.Options{
				Level:      level,
				TimeFormat: "15:04:05",
			}),
		))
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   goconduit v%-45s║\n", version.Version)
		fmt.Println("  ║   Go Circular Conduit Hydraulics                          ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Uniform and critical depth for a given discharge")
		fmt.Println("    • Flow properties at a given depth")
		fmt.Println("    • Full-pipe discharge and maximum conveyance")
		fmt.Println("    • Rating curve and dimensionless property curves")
		fmt.Println()
		fmt.Println("  Use 'goconduit --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log solver diagnostics")
}
