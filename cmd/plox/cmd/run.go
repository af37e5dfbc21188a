package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"Plox/internal/frontend"
	l "Plox/internal/logger"
)

func newRunCmd(opts *options) *cobra.Command {
	var showTokens bool

	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Parse a file and print its expression tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(cmd, opts, args[0], showTokens)
		},
	}

	cmd.Flags().BoolVarP(&showTokens, "tokens", "t", false, "print the token stream before the tree")
	return cmd
}

func runFile(cmd *cobra.Command, opts *options, path string, showTokens bool) error {
	logger := l.Get("cli")

	source, err := readSource(path)
	if err != nil {
		return err
	}

	res, err := frontend.Run(source, opts.printerOptions()...)
	if err != nil {
		logger.Error("Lexing %s failed: %v", path, err)
		return fmt.Errorf("%s:%w", path, err)
	}

	logger.Info("Parsed %s", path)
	fmt.Fprintln(cmd.OutOrStdout(), frontend.FormatResult(res, showTokens))
	return nil
}
