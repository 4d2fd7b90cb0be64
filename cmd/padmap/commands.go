package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/korvala/padmap/internal/logging"
	"github.com/korvala/padmap/internal/mapping"
	"github.com/korvala/padmap/internal/reconcile"
	"github.com/korvala/padmap/internal/ui"
	"github.com/korvala/padmap/internal/xsetwacom"
)

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(devicesCmd)
}

// runEnv is everything a resolved run needs: a working xsetwacom client, the
// loaded mapping document, and the run-scoped device id.
type runEnv struct {
	client   *xsetwacom.Client
	document *mapping.Document
	deviceID string
}

// prepareRun resolves the external tool, the mapping document, and the
// target device. Every failure here is fatal but informational: the message
// is printed and ok is false, and the caller returns nil so the process
// terminates cleanly without partial application.
func prepareRun(args []string) (*runEnv, bool) {
	client, err := xsetwacom.NewClient(logging.GetLogger())
	if err != nil {
		fmt.Println(err)
		return nil, false
	}

	explicit := ""
	if len(args) > 0 {
		explicit = args[0]
	}

	doc, path, err := mapping.Find(explicit)
	if errors.Is(err, mapping.ErrNoMappingFile) {
		fmt.Println("No mapping file.")
		return nil, false
	}
	var invalid *mapping.InvalidMappingError
	if errors.As(err, &invalid) {
		fmt.Printf("Failed to parse file: %s\n", invalid.Path)
		logging.Debug("mapping file rejected", zap.Error(err))
		return nil, false
	}
	if err != nil {
		fmt.Println(err)
		return nil, false
	}

	logging.Debug("loaded mapping document",
		zap.String("path", path),
		zap.String("device", doc.Descriptor.Name),
		zap.Int("rules", len(doc.Rules)),
	)

	id, err := client.FindDevice(doc.Descriptor)
	if err != nil {
		fmt.Println(err)
		return nil, false
	}

	return &runEnv{client: client, document: doc, deviceID: id}, true
}

// runApply is the root command: the full check/apply/confirm loop.
func runApply(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeFromEnv(); err != nil {
		return err
	}
	defer logging.Sync()

	env, ok := prepareRun(args)
	if !ok {
		return nil
	}

	prompter := ui.NewPrompter()
	rec := reconcile.New(env.client, prompter, os.Stdout, logging.GetLogger())

	outcome, err := rec.Run(env.deviceID, env.document)
	if err != nil {
		logging.Debug("reconciliation ended on prompt error", zap.Error(err))
	}
	logging.Info("run finished", zap.String("outcome", outcome.String()))
	return nil
}

// checkCmd audits the device without prompting or writing
var checkCmd = &cobra.Command{
	Use:   "check [keymap-file]",
	Short: "Audit current mappings without applying anything",
	Long: `Check whether the desired key mappings are currently in effect.

Prints one row per mapping rule showing the expected value (and label, if
any) for matching rules, or the observed vs. expected values for mismatched
rules. Never prompts and never writes to the device.`,
	Example: `  # Audit using the default mapping file locations
  padmap check

  # Audit a specific mapping file
  padmap check ~/tablet/intuos-pad.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeFromEnv(); err != nil {
		return err
	}
	defer logging.Sync()

	env, ok := prepareRun(args)
	if !ok {
		return nil
	}

	rec := reconcile.New(env.client, ui.NewPrompter(), os.Stdout, logging.GetLogger())
	rec.Check(env.deviceID, env.document)
	return nil
}

// devicesCmd lists everything the external tool can see
var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List attached tablet devices",
	Long: `List all devices reported by 'xsetwacom --list devices'.

Useful for finding the exact name and type strings a mapping document must
carry: device matching is exact and case-sensitive.`,
	Args: cobra.NoArgs,
	RunE: runDevices,
}

func runDevices(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeFromEnv(); err != nil {
		return err
	}
	defer logging.Sync()

	client, err := xsetwacom.NewClient(logging.GetLogger())
	if err != nil {
		fmt.Println(err)
		return nil
	}

	devices, err := client.ListDevices()
	if err != nil {
		fmt.Printf("Failed to list devices: %v\n", err)
		return nil
	}

	if len(devices) == 0 {
		fmt.Println("No devices found.")
		fmt.Println("\nTroubleshooting:")
		fmt.Println("  - Ensure the tablet is plugged in")
		fmt.Println("  - Check that the wacom X11 driver is installed")
		fmt.Println("  - Try 'xsetwacom --list devices' directly")
		return nil
	}

	fmt.Printf("Found %d device(s):\n\n", len(devices))
	for i, d := range devices {
		fmt.Printf("%d. %s\n", i+1, d.Name)
		fmt.Printf("   ID:   %s\n", d.ID)
		fmt.Printf("   Type: %s\n", d.Type)
		fmt.Println()
	}

	fmt.Println(ui.MutedStyle.Render("Use the name and type strings verbatim in your mapping document."))
	return nil
}
