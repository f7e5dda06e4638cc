package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/extremtechniker/mailtxt/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cmd.RootCommand()
	root.AddCommand(cmd.ApiCommand())
	root.AddCommand(cmd.TokenCommand())
	root.AddCommand(cmd.HistoryCommand())

	if err := root.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
