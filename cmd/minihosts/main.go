// Command minihosts manages hosts groups from the terminal. It works on the
// same files as the desktop front-end and does not need minihostsd running.
//
// Usage:
//
//	minihosts [-v] <command> [args]
//
// Commands:
//
//	list [-system]        list groups
//	add <name>            create a group, switched on
//	rename <id> <name>    rename a group
//	on <id> | off <id>    switch a group on or off
//	rm <id>               delete a group
//	show <id>             print the rules of a group
//	edit <id> <file|->    replace the rules of a group from a file or stdin
//	apply                 write enabled groups into the hosts file
//	version               print the build version
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/heartmarshall/minihosts/internal/app"
	"github.com/heartmarshall/minihosts/internal/config"
)

func main() {
	verbose := flag.Bool("v", false, "log at the configured level instead of warn")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
	}
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, *verbose, flag.Args()); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
		}
		fmt.Fprintf(os.Stderr, "minihosts: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, verbose bool, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if !verbose {
		cfg.Log.Level = "warn"
	}

	out, err := app.OpenLogOutput(cfg.Log)
	if err != nil {
		return err
	}
	defer out.Close()
	logger := app.NewLogger(out, cfg.Log)

	svcs, err := app.NewServices(ctx, cfg, logger)
	if err != nil {
		return err
	}

	c := &cli{
		groups: svcs.Groups,
		hosts:  svcs.Hosts,
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
	return c.run(ctx, args)
}

const usage = `Usage: minihosts [-v] <command> [args]

Commands:
  list [-system]        list groups
  add <name>            create a group, switched on
  rename <id> <name>    rename a group
  on <id> | off <id>    switch a group on or off
  rm <id>               delete a group
  show <id>             print the rules of a group
  edit <id> <file|->    replace the rules of a group from a file or stdin
  apply                 write enabled groups into the hosts file
  version               print the build version
`
