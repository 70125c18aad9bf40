package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pborges/qmc/internal/config"
	"github.com/pborges/qmc/internal/server"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var (
		cfgFile string
		addr    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the minimizer over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Address = addr
			}
			logger := root.logger
			if cfg.Debug && !root.debug {
				if logger, err = newLogger(true); err != nil {
					return err
				}
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

			srv, err := server.New(
				server.WithLogger(logger),
				server.WithConfig(cfg),
				server.WithRegistry(reg),
			)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("starting server",
				zap.String("address", cfg.Server.Address),
				zap.Strings("allowedOrigins", cfg.CORS.AllowedOrigins),
				zap.Bool("metrics", cfg.Metrics.Enabled))
			return srv.Run(ctx)
		},
	}
	cmd.Flags().StringVarP(&cfgFile, "config", "c", "", "Path to a YAML configuration file")
	cmd.Flags().StringVar(&addr, "addr", config.Default().Server.Address, "Listen address, overrides the configuration file")
	return cmd
}
