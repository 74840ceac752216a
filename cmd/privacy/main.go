package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/benx421/privacy-go/internal/cli"
	"github.com/benx421/privacy-go/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(cli.ExitError)
	}

	logger := cfg.Logger.NewLogger(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := cli.Run(ctx, cfg.Client, logger, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	os.Exit(code)
}
