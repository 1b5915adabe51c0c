package main

import (
	"fmt"
	"os"
	"unicode"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// formatVersion adds 'v' prefix if version starts with a digit
func formatVersion(ver string) string {
	if len(ver) > 0 && unicode.IsDigit(rune(ver[0])) {
		return "v" + ver
	}
	return ver
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "blecore",
	Short: "Bluetooth Low Energy attribute table and channel tool",
	Long: `Bluetooth Low Energy (BLE) core tool that provides:

- Dump GATT attribute tables (built-in or loaded from a YAML profile)
- List service groups the way a Read By Group Type request sees them
- Print the RF channel map with frequencies and whitening seeds
- Simulate advertising events cycling through channels 37, 38 and 39`,
	Version: formatVersion(version),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", FormatUserError(err))
		os.Exit(1)
	}
}

func init() {
	// Silence Cobra's "Error:" prefix - main() prints clean errors
	rootCmd.SilenceErrors = true

	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(channelsCmd)
	rootCmd.AddCommand(advertiseCmd)

	// Global flags
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML configuration file")

	rootCmd.Flags().BoolP("version", "v", false, "Show version information")
	rootCmd.SetVersionTemplate(fmt.Sprintf("blecore {{.Version}} (commit %s, built %s)\n", commit, date))
}
