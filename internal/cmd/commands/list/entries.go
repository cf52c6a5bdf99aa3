package list

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/eln-tools/labfolder-go/internal/cmd/base"
)

type EntriesCommand struct {
	*base.Command

	flags listFlags
}

func (c *EntriesCommand) Synopsis() string {
	return "List notebook entries"
}

func (c *EntriesCommand) Help() string {
	return `Usage: labfolder entries

  Lists the notebook entries in the projects owned by the logged-in user, or
  by another group member when -owner is given. The owner's projects are
  always resolved in full; -limit caps only the entries.` +
		c.Flags().Help()
}

func (c *EntriesCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("entries", flag.ExitOnError))
	c.flags.register(f)
	return f
}

func (c *EntriesCommand) Run(args []string) int {
	ui := c.UI

	if err := c.Flags().Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	sess, err := c.OpenSession(ctx, c.flags.SessionFlags)
	if err != nil {
		ui.Error(fmt.Sprintf("error opening session: %v", err))
		return 1
	}
	defer sess.Close(ctx)

	owner, err := resolveOwner(ctx, sess, c.flags.owner)
	if err != nil {
		ui.Error(fmt.Sprintf("error resolving owner: %v", err))
		return 1
	}

	entries, projects, err := sess.Client.ListEntries(ctx, owner, c.flags.limit)
	if err != nil {
		ui.Error(fmt.Sprintf("error listing entries: %v", err))
		return 1
	}

	for _, e := range entries {
		ui.Output(e.String())
	}
	ui.Info(fmt.Sprintf("%d entries across %d projects", len(entries), len(projects)))

	return 0
}
