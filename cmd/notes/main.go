// Package main is the entry point for the notes CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"notes/internal/cli"
	"notes/internal/commands"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	// nil factory opens the configured store
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
