// Padmap is a key-mapping utility for Wacom tablet pads.
//
// It reads a declarative key-mapping document (YAML or JSON), audits the
// current button mappings of the matching tablet device via the external
// xsetwacom utility, and - only when discrepancies are found - offers to
// apply the desired mappings, re-checking until the device state converges
// or the operator declines.
//
// Usage:
//
//	padmap [keymap-file] [command]
//
// Running without arguments audits and reconciles using the first mapping
// file found in the default locations. See 'padmap --help' for available
// commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/korvala/padmap/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "padmap [keymap-file]",
	Short: "Wacom tablet key-mapping utility",
	Long: `Audit and apply declarative key mappings for Wacom tablet pads.

Reads a mapping document naming a device and its desired button mappings,
checks whether the mappings are already in effect via xsetwacom, and offers
to apply them when they are not.

If no keymap file is given, a prioritized list of default locations is tried:
the user config directory, the path in $PADMAP_KEYMAP, then /etc/padmap.

The xsetwacom utility must be installed for this tool to work.`,
	Version: version.Version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runApply,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("padmap %s (commit: %s)\n", version.Version, version.Commit)
	},
}
