// Package main is the entry point for the peek CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kk-code-lab/peek/internal/cli"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	return cli.Execute(ctx, info, cli.Environment{}, os.Args[1:])
}
