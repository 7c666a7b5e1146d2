package commands

import (
	"fmt"

	"github.com/ncobase/relaypage/config"
	"github.com/ncobase/relaypage/logging"
	"github.com/ncobase/relaypage/version"
	"github.com/spf13/cobra"
)

// app carries what the root command prepares for its subcommands.
type app struct {
	configFile string
	cfg        *config.Config
	logger     *logging.Logger
	cleanup    []func()
}

func (a *app) init() error {
	cfg, err := config.Init(a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.logger = logging.StandardLogger()
	a.logger.SetVersion(version.GetVersionInfo().Version)
	logCleanup, err := a.logger.Init(cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.cleanup = append(a.cleanup, logCleanup)
	return nil
}

func (a *app) close() {
	for i := len(a.cleanup) - 1; i >= 0; i-- {
		a.cleanup[i]()
	}
	a.cleanup = nil
}

// NewRootCmd creates the root command. The returned cleanup flushes logs
// and must be called once Execute returns.
func NewRootCmd() (*cobra.Command, func()) {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "relaypage",
		Short:         "Relay-style cursor pagination over JSON, YAML, SQL and Redis datasets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}
	rootCmd.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "config file path (default: search /etc/relaypage, $HOME/.relaypage, .)")

	rootCmd.AddCommand(
		newPaginateCommand(a),
		newServeCommand(a),
		newKeygenCommand(),
		newVersionCommand(),
	)

	return rootCmd, a.close
}
