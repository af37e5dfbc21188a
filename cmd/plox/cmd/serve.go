package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"Plox/internal/server"
)

func newServeCmd(opts *options) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start the HTTP API.

Endpoints:
  GET  /health    liveness check
  POST /tokenize  {"source": "..."} -> token stream
  POST /parse     {"source": "..."} -> rendered expression tree`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = opts.cfg.Server.Addr
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Listening on %s\n", addr)
			return server.Start(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from [server] addr)")
	return cmd
}
