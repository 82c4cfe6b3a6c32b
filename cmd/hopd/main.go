package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"hopd/internal/cmd"
)

// Overridden at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	err := fang.Execute(
		context.Background(),
		cmd.NewRootCmd(),
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt),
	)
	if err != nil {
		os.Exit(1)
	}
}
