package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/truthlinked/go-sdk/pkg/client"
	"github.com/truthlinked/go-sdk/pkg/defs"
)

type rootFlags struct {
	baseURL    string
	licenseKey string
	configFile string
	envFile    string
	timeout    time.Duration
	jsonOutput bool
	verbose    bool
	logLevel   string
	logFormat  string
}

// app carries the resolved configuration into subcommands.
type app struct {
	flags rootFlags
	cfg   *cliConfig
	log   *slog.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "truthlinked",
		Short:         "Command-line client for the TruthLinked API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := defs.ParseLogLevelStr(a.flags.logLevel)
			if err != nil {
				return err
			}
			if a.flags.verbose {
				level = defs.LogLevelDebug
			}
			format, err := defs.ParseHandlerTypeStr(a.flags.logFormat)
			if err != nil {
				return err
			}
			a.log = defs.NewLogger(os.Stderr, level, format)

			// Local commands work without credentials or a server.
			if cmd.Name() == "nonce" || cmd.Name() == "sign" {
				return nil
			}

			cfg, err := loadConfig(&a.flags)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.flags.baseURL, "base-url", "", "API base URL (env "+envBaseURL+")")
	root.PersistentFlags().StringVar(&a.flags.licenseKey, "license-key", "", "license key (env "+envLicenseKey+")")
	root.PersistentFlags().StringVar(&a.flags.configFile, "config", "", "config file (default ~/.truthlinked.yaml)")
	root.PersistentFlags().StringVar(&a.flags.envFile, "env-file", "", "load environment variables from this file")
	root.PersistentFlags().DurationVar(&a.flags.timeout, "timeout", 0, "request timeout")
	root.PersistentFlags().BoolVar(&a.flags.jsonOutput, "json", false, "print raw JSON instead of formatted output")
	root.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", string(defs.LogLevelWarn), "log level: debug|info|warn|error")
	root.PersistentFlags().StringVar(&a.flags.logFormat, "log-format", string(defs.TextHandler), "log format: text|json")

	root.AddCommand(
		newHealthCommand(a),
		newUsageCommand(a),
		newShadowCommand(a),
		newAuditCommand(a),
		newComplianceCommand(a),
		newSignCommand(a),
		newNonceCommand(a),
	)

	return root
}

func (a *app) newClient() (*client.Client, error) {
	return client.New(a.cfg.BaseURL, a.cfg.LicenseKey,
		client.WithTimeout(a.cfg.Timeout),
		client.WithLogger(a.log),
		client.WithUserAgent("truthlinked-cli/"+client.Version),
	)
}
