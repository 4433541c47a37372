package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/malusev998/currency-rates/cli/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Execute(&cmd.Config{Ctx: ctx}); err != nil {
		stop()
		os.Exit(1)
	}
}
