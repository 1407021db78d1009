package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/getmockd/igdmock/pkg/config"
	"github.com/getmockd/igdmock/pkg/device"
	"github.com/getmockd/igdmock/pkg/engine"
	"github.com/getmockd/igdmock/pkg/logging"
)

// shutdownTimeout is the maximum time to wait for graceful shutdown.
const shutdownTimeout = 10 * time.Second

// serveFlagVals is the package-level instance bound to cobra flags.
var serveFlagVals serveFlags

type serveFlags struct {
	configFile string
	port       int
	bind       string
	ssdp       bool
	ssdpPort   int
	logLevel   string
	logFormat  string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the mock gateway (foreground)",
	Long: `Start the mock gateway and run until interrupted.

Defaults come from the configuration file when --config is given;
flags set on the command line win over the file.`,
	Example: `  # Start with defaults on port 8080
  igdmock serve

  # Start from a configuration file on a custom port
  igdmock serve --config gateway.yaml --port 3000

  # Answer discovery probes on a non-standard SSDP port
  igdmock serve --ssdp --ssdp-port 1901`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd, &serveFlagVals)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	f := &serveFlagVals
	serveCmd.Flags().StringVarP(&f.configFile, "config", "c", "", "Path to configuration file (.yaml, .yml, .json)")
	serveCmd.Flags().IntVarP(&f.port, "port", "p", 8080, "HTTP server port (0 = ephemeral)")
	serveCmd.Flags().StringVar(&f.bind, "bind", "127.0.0.1", "HTTP bind address")
	serveCmd.Flags().BoolVar(&f.ssdp, "ssdp", true, "Answer SSDP discovery probes")
	serveCmd.Flags().IntVar(&f.ssdpPort, "ssdp-port", 1900, "SSDP listen port")
	serveCmd.Flags().StringVar(&f.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	serveCmd.Flags().StringVar(&f.logFormat, "log-format", "text", "Log format (text, json)")
}

func runServe(cmd *cobra.Command, f *serveFlags) error {
	cfg := config.DefaultConfig()
	if f.configFile != "" {
		loaded, err := config.Load(f.configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Flags set explicitly override the file.
	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.HTTPPort = f.port
	}
	if flags.Changed("bind") {
		cfg.BindAddress = f.bind
	}
	if flags.Changed("ssdp") {
		cfg.SSDP.Enabled = f.ssdp
	}
	if flags.Changed("ssdp-port") {
		cfg.SSDP.Port = f.ssdpPort
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = f.logFormat
	}

	logger := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.Log.Level),
		Format: logging.ParseFormat(cfg.Log.Format),
	})

	opts := []engine.Option{
		engine.WithHTTPPort(cfg.HTTPPort),
		engine.WithBindAddress(cfg.BindAddress),
		engine.WithSSDP(cfg.SSDP.Enabled),
		engine.WithSSDPPort(cfg.SSDP.Port),
		engine.WithIdentity(device.Identity{
			FriendlyName: cfg.Device.FriendlyName,
			Manufacturer: cfg.Device.Manufacturer,
			ModelName:    cfg.Device.ModelName,
			UDN:          cfg.Device.UDN,
		}),
		engine.WithLogger(logger),
	}
	if cfg.LogCapacity > 0 {
		opts = append(opts, engine.WithLogCapacity(cfg.LogCapacity))
	}
	srv := engine.NewServer(opts...)

	mocks, err := cfg.Build()
	if err != nil {
		return err
	}
	for _, m := range mocks {
		srv.Registry().Register(m)
	}

	if err := srv.Start(context.Background()); err != nil {
		return err
	}
	logger.Info("mock gateway ready",
		"description", srv.DescriptionURL(),
		"control", srv.ControlURL(),
		"mocks", srv.Registry().Mocks())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("shutting down", "signal", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Stop(ctx)
}

// RunServe runs the serve command with the given arguments.
func RunServe(args []string) error {
	return run("serve", args)
}
