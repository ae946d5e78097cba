package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/luismoralesarg/micro-log/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.New().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
