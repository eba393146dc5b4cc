package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "termpick",
	Short: "Pick, configure and launch terminal profiles",
	Long:  "termpick aggregates configured, auto-detected and plugin-contributed terminal profiles into a single picker, launches the chosen shell, and manages the per-platform default profile.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: open the picker
		return pickCmd.RunE(cmd, args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("termpick %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(defaultCmd)
	rootCmd.AddCommand(listCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
