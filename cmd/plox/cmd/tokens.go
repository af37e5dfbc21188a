package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"Plox/internal/frontend"
	"Plox/internal/lexer"
)

func newTokensCmd(opts *options) *cobra.Command {
	var (
		expr   string
		format string
	)

	cmd := &cobra.Command{
		Use:   "tokens [FILE]",
		Short: "Print the token stream of a file or expression",
		Args: func(cmd *cobra.Command, args []string) error {
			if expr != "" && len(args) > 0 {
				return errors.New("give either FILE or --expr, not both")
			}
			if expr == "" && len(args) != 1 {
				return errors.New("requires a FILE argument or --expr")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := frontend.ParseFormat(format)
			if err != nil {
				return err
			}

			source := expr
			if len(args) == 1 {
				if source, err = readSource(args[0]); err != nil {
					return err
				}
			}

			lx := lexer.New(source)
			tokens, err := lx.Tokenize()
			if err != nil {
				return err
			}

			out, err := frontend.FormatTokens(tokens, f)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)

			for _, diag := range lx.Diagnostics() {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", diag)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&expr, "expr", "e", "", "tokenize this expression instead of a file")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json or yaml")
	return cmd
}
