package cli

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/questify/questify/internal/engine"
	"github.com/questify/questify/internal/metrics"
	"github.com/questify/questify/internal/server"
)

var serveAddr string

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Serve the document collection over a JSON HTTP API.

Endpoints cover document management, search, statistics, a liveness probe,
and Prometheus metrics. The listen address comes from the configuration
unless overridden with --addr.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (host:port)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	m := metrics.New(prometheus.DefaultRegisterer)

	eng, cfg, cleanup, err := openEngine(cmd.Context(), engine.WithMetrics(m))
	if err != nil {
		return err
	}
	defer cleanup()

	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	log := logrus.WithField("component", "server")
	return server.New(eng, log).ListenAndServe(addr)
}
