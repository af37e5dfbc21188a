package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"Plox/internal/config"
	"Plox/internal/frontend"
	l "Plox/internal/logger"
	"Plox/internal/printer"
)

type options struct {
	cfgFile string
	verbose bool
	cfg     *config.Config
}

func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "plox [FILE]",
		Short: "Plox - expression lexer, parser and tree printer",
		Long: `Plox tokenizes and parses expressions and prints the resulting tree.

With a FILE argument the file is parsed and its tree printed.
Without arguments an interactive prompt is started.

Commands:
  run     Parse a file and print its expression tree
  tokens  Print the token stream of a file or expression
  repl    Start the interactive prompt
  serve   Start the HTTP API`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return fmt.Errorf("%s takes in a single argument only", cmd.Root().Name())
			}
			return nil
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return runFile(cmd, opts, args[0], false)
			}
			return frontend.NewRepl(opts.cfg, cmd.OutOrStdout()).Start()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default: $PLOX_CONFIG or ./plox.toml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")

	rootCmd.AddCommand(
		newRunCmd(opts),
		newTokensCmd(opts),
		newReplCmd(opts),
		newServeCmd(opts),
	)

	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}

func (o *options) setup() error {
	var err error
	if o.cfgFile != "" {
		o.cfg, err = config.Load(o.cfgFile)
	} else {
		o.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if o.verbose {
		o.cfg.Log.Level = l.DEBUG.String()
	}

	if err := frontend.SetupLoggers(o.cfg); err != nil {
		return fmt.Errorf("failed to set up loggers: %w", err)
	}
	l.Get("cli").Debug("Loaded config, log dir %s", o.cfg.Log.Dir)
	return nil
}

func (o *options) printerOptions() []printer.Option {
	if o.cfg.Render.Color {
		return []printer.Option{printer.WithStyles(printer.DefaultStyles())}
	}
	return nil
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
