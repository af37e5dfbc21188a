package main

import (
	"os"

	"Plox/cmd/plox/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
