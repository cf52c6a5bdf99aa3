package group

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/eln-tools/labfolder-go/internal/cmd/base"
)

type Command struct {
	*base.Command

	flags base.SessionFlags
}

func (c *Command) Synopsis() string {
	return "List the members of a group"
}

func (c *Command) Help() string {
	return `Usage: labfolder group -group=<id>

  Fetches a group's membership tree and prints every member together with
  their user id and group-membership id. The membership id is what ownership
  transfers and membership removals operate on.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("group", flag.ExitOnError))
	c.flags.Register(f)
	return f
}

func (c *Command) Run(args []string) int {
	ui := c.UI

	if err := c.Flags().Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	sess, err := c.OpenSession(ctx, c.flags)
	if err != nil {
		ui.Error(fmt.Sprintf("error opening session: %v", err))
		return 1
	}
	defer sess.Close(ctx)

	g, err := sess.SelectGroup(ctx)
	if err != nil {
		ui.Error(fmt.Sprintf("error fetching group: %v", err))
		return 1
	}

	ui.Output(fmt.Sprintf("%s (id %s)", g.Name, g.ID))
	ui.Output(fmt.Sprintf("%d members:", len(g.Members)))
	for _, m := range g.Members {
		ui.Output(fmt.Sprintf("  %s  user=%s membership=%s", m.String(), m.ID, m.GroupMembershipID))
	}

	return 0
}
