package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"moviegrip/cmd"
)

func main() {
	// Cancel on interrupt so running commands can shut down cleanly
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cmd.NewRootCommand().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
