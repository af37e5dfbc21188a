package frontend

import (
	"Plox/internal/config"
	"Plox/internal/logger"
)

// LoggerNames lists the named loggers the packages look up.
var LoggerNames = []string{"lexer", "parser", "repl", "server", "cli"}

// SetupLoggers registers every named logger in the configured directory.
func SetupLoggers(cfg *config.Config) error {
	for _, name := range LoggerNames {
		if _, err := logger.New(name, cfg.Log.Dir, cfg.LogLevel()); err != nil {
			return err
		}
	}
	return nil
}
