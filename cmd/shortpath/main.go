package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/shortpath/internal/cli"
)

var version = "dev"

func main() {
	os.Exit(run())
}

// run executes the CLI with a context cancelled on Ctrl+C. The deferred
// cleanup finishes before main exits.
func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer func() {
		signal.Stop(interrupts)
		cancel()
	}()
	go func() {
		select {
		case <-interrupts:
			cancel()
		case <-ctx.Done():
		}
	}()

	return cli.Execute(ctx, version)
}
