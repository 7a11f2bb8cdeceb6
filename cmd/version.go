package cmd

import (
	"fmt"

	"github.com/alexiusacademia/goconduit/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of goconduit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("goconduit v%s\n", version.Version)
		fmt.Printf("Built %s from commit %s\n", version.BuildTime, version.GitCommit)
		fmt.Println("Circular conduit hydraulics (Manning's equation)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
