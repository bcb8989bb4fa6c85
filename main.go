package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"createblogpost/cli"
)

// version is set at build time via ldflags.
var version = "1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, version, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
