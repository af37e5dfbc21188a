package main

import (
	"flag"
	"fmt"
	"os"

	"Plox/helpers"
	"Plox/internal/config"
	"Plox/internal/frontend"
	l "Plox/internal/logger"
	"Plox/internal/server"
	"Plox/internal/tui"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	addr := flag.String("addr", cfg.Server.Addr, "Plox server address")
	serve := flag.Bool("serve", false, "start a server in-process before connecting")
	flag.Parse()

	if err := frontend.SetupLoggers(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "Error setting up loggers:", err)
		os.Exit(1)
	}
	logger := l.Get("cli")

	if *serve {
		listen, err := server.ListenAddr(*addr)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		go func() {
			if err := server.Start(listen); err != nil {
				logger.Error("In-process server failed: %v", err)
			}
		}()
		if err := helpers.WaitForServer(*addr, 50); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		logger.Info("Started in-process server on %s", *addr)
	}

	if err := tui.Run(*addr); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
