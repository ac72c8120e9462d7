// Command minihostsd serves the local command API used by the desktop
// front-end. It listens on the loopback address from the configuration
// until interrupted.
//
// Usage:
//
//	minihostsd [--config=path/to/minihosts.yaml]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/minihosts/internal/app"
)

func main() {
	configPath := flag.String("config", "", "path to config file (overrides CONFIG_PATH)")
	flag.Parse()

	if *configPath != "" {
		os.Setenv("CONFIG_PATH", *configPath) //nolint:errcheck
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "minihostsd: %v\n", err)
		os.Exit(1)
	}
}
