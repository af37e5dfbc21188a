package cmd

import (
	"github.com/spf13/cobra"

	"Plox/internal/frontend"
)

func newReplCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive prompt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return frontend.NewRepl(opts.cfg, cmd.OutOrStdout()).Start()
		},
	}
}
