// igdmock CLI - Command-line interface for the mock Internet Gateway Device
package main

import (
	"fmt"
	"os"

	"github.com/getmockd/igdmock/pkg/cli"
)

// Build-time variables set via ldflags
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// Command represents a registered CLI command.
type Command struct {
	Name  string
	Short string
	Run   func(args []string) error
}

// buildRegistry creates the command registry with all CLI commands.
func buildRegistry() map[string]*Command {
	reg := make(map[string]*Command)
	for _, cmd := range commands() {
		reg[cmd.Name] = cmd
	}
	return reg
}

func commands() []*Command {
	return []*Command{
		{Name: "serve", Short: "Start the mock gateway (default command)", Run: cli.RunServe},
		{Name: "version", Short: "Show version information", Run: func(args []string) error {
			return cli.RunVersion(cli.BuildInfo{Version: Version, Commit: Commit, BuildDate: BuildDate}, args)
		}},
	}
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	reg := buildRegistry()

	command := ""
	var cmdArgs []string

	switch {
	case len(args) == 0:
		// No args at all, run serve.
		command = "serve"
	case args[0] == "" || args[0][0] == '-':
		switch args[0] {
		case "--help", "-h":
			printUsage()
			return nil
		case "--version", "-v":
			return cli.RunVersion(cli.BuildInfo{Version: Version, Commit: Commit, BuildDate: BuildDate}, nil)
		default:
			// Other flags, run serve with them.
			command = "serve"
			cmdArgs = args
		}
	default:
		if _, ok := reg[args[0]]; !ok {
			return fmt.Errorf("unknown command: %s\n\nRun 'igdmock --help' for usage", args[0])
		}
		command = args[0]
		cmdArgs = args[1:]
	}

	return reg[command].Run(cmdArgs)
}

func printUsage() {
	fmt.Print("igdmock - Mock UPnP Internet Gateway Device for testing IGD clients\n\n")
	fmt.Print("Usage:\n")
	fmt.Print("  igdmock                        Start the mock gateway with defaults\n")
	fmt.Print("  igdmock <command> [flags]      Run a specific command\n")
	fmt.Print("  igdmock --help                 Show this help message\n\n")

	fmt.Print("Commands:\n")
	for _, cmd := range commands() {
		fmt.Printf("  %-12s %s\n", cmd.Name, cmd.Short)
	}

	fmt.Print(`
Global Flags:
  -h, --help      Show this help message
  -v, --version   Show version information

Examples:
  # Start the gateway with defaults
  igdmock

  # Start from a configuration file on a custom port
  igdmock serve --config gateway.yaml --port 3000

  # Disable SSDP discovery
  igdmock serve --ssdp=false
`)
}
