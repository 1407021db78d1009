// Package cli implements the igdmock command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "igdmock",
	Short: "igdmock is a mock UPnP Internet Gateway Device",
	Long: `igdmock emulates a UPnP Internet Gateway Device for testing IGD clients.
It serves the device description, answers WANIPConnection and
WANCommonInterfaceConfig control actions according to configured mocks,
and optionally responds to SSDP discovery probes.

Mock behaviors can be declared in a YAML or JSON configuration file, or
registered programmatically through the engine package.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes a subcommand by name with the given arguments. The Run*
// wrappers use it so the binary's command registry can stay a plain map.
func run(name string, args []string) error {
	rootCmd.SetArgs(append([]string{name}, args...))
	return rootCmd.Execute()
}
