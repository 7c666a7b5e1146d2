package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/relaypage/config"
	"github.com/ncobase/relaypage/dataset"
	"github.com/ncobase/relaypage/paging"
	"github.com/ncobase/relaypage/server"
	"github.com/ncobase/relaypage/tracing"
	"github.com/spf13/cobra"
)

func newServeCommand(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the configured dataset over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			shutdown, err := tracing.NewTracer(ctx, a.cfg.Tracer)
			if err != nil {
				return err
			}
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					a.logger.Errorf(ctx, "failed to shut down tracer: %v", err)
				}
			}()

			switch a.cfg.RunMode {
			case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
				gin.SetMode(a.cfg.RunMode)
			}

			p, err := paging.NewPaginator(ctx, a.cfg.Paging, a.logger)
			if err != nil {
				return err
			}
			source := dataset.NewSource(a.cfg.Dataset, a.logger)
			if _, err := source.Get(ctx); err != nil {
				return err
			}

			config.Watch(func(*config.Config) {
				a.logger.Infof(ctx, "config changed, dataset will be reloaded")
				source.Invalidate()
			}, func(err error) {
				a.logger.Errorf(ctx, "failed to reload config: %v", err)
			})

			if addr == "" {
				addr = a.cfg.Server.Addr()
			}
			return server.New(p, source, a.logger).Run(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from server.host and server.port)")
	return cmd
}
