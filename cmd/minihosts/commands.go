package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/heartmarshall/minihosts/internal/app"
	"github.com/heartmarshall/minihosts/internal/domain"
	"github.com/heartmarshall/minihosts/internal/service/group"
	"github.com/heartmarshall/minihosts/internal/service/hosts"
)

var errUsage = errors.New("invalid usage")

type groupService interface {
	List(ctx context.Context, includeSystem bool) (domain.GroupList, error)
	Add(ctx context.Context, input group.AddGroupInput) (int, error)
	Rename(ctx context.Context, input group.RenameGroupInput) error
	SetStatus(ctx context.Context, input group.SetStatusInput) error
	SoftDelete(ctx context.Context, id int) error
	Detail(ctx context.Context, id int) (domain.GroupDetail, error)
	UpdateDetail(ctx context.Context, input group.UpdateDetailInput) (domain.GroupDetail, error)
}

type hostsService interface {
	Apply(ctx context.Context) (hosts.ApplyResult, error)
}

type cli struct {
	groups groupService
	hosts  hostsService
	stdin  io.Reader
	stdout io.Writer
}

func (c *cli) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "list":
		return c.list(ctx, rest)
	case "add":
		return c.add(ctx, rest)
	case "rename":
		return c.rename(ctx, rest)
	case "on":
		return c.setStatus(ctx, rest, domain.StatusOn)
	case "off":
		return c.setStatus(ctx, rest, domain.StatusOff)
	case "rm":
		return c.remove(ctx, rest)
	case "show":
		return c.show(ctx, rest)
	case "edit":
		return c.edit(ctx, rest)
	case "apply":
		return c.apply(ctx)
	case "version":
		fmt.Fprintln(c.stdout, app.BuildVersion())
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func (c *cli) list(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	system := fs.Bool("system", false, "include the system group")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	list, err := c.groups.List(ctx, *system)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(c.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATUS\tUPDATED\tNAME")
	for _, g := range list {
		updated := time.Unix(g.UpdateTime, 0).Format(time.DateTime)
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", g.ID, g.Status, updated, g.Name)
	}
	return tw.Flush()
}

func (c *cli) add(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: add <name>", errUsage)
	}

	id, err := c.groups.Add(ctx, group.AddGroupInput{Name: strings.Join(args, " ")})
	if err != nil {
		return err
	}

	fmt.Fprintln(c.stdout, id)
	return nil
}

func (c *cli) rename(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: rename <id> <name>", errUsage)
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	return c.groups.Rename(ctx, group.RenameGroupInput{ID: id, Name: strings.Join(args[1:], " ")})
}

func (c *cli) setStatus(ctx context.Context, args []string, status domain.Status) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: %s <id>", errUsage, strings.ToLower(status.String()))
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	return c.groups.SetStatus(ctx, group.SetStatusInput{ID: id, Status: status})
}

func (c *cli) remove(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: rm <id>", errUsage)
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	return c.groups.SoftDelete(ctx, id)
}

func (c *cli) show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: show <id>", errUsage)
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	d, err := c.groups.Detail(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprint(c.stdout, d.Content)
	if d.Content != "" && !strings.HasSuffix(d.Content, "\n") {
		fmt.Fprintln(c.stdout)
	}
	return nil
}

func (c *cli) edit(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: edit <id> <file|->", errUsage)
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	var content []byte
	if args[1] == "-" {
		content, err = io.ReadAll(c.stdin)
	} else {
		content, err = os.ReadFile(args[1])
	}
	if err != nil {
		return fmt.Errorf("read rules: %w", err)
	}

	_, err = c.groups.UpdateDetail(ctx, group.UpdateDetailInput{ID: id, Content: string(content)})
	return err
}

func (c *cli) apply(ctx context.Context) error {
	res, err := c.hosts.Apply(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.stdout, "applied %d group(s)\n", res.Applied)
	return nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("%w: invalid group id %q", errUsage, s)
	}
	return id, nil
}
