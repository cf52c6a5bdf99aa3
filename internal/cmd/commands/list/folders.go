package list

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/eln-tools/labfolder-go/internal/cmd/base"
)

type FoldersCommand struct {
	*base.Command

	flags listFlags
}

func (c *FoldersCommand) Synopsis() string {
	return "List folders"
}

func (c *FoldersCommand) Help() string {
	return `Usage: labfolder folders

  Lists the folders owned by the logged-in user, or by another group member
  when -owner is given.` +
		c.Flags().Help()
}

func (c *FoldersCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("folders", flag.ExitOnError))
	c.flags.register(f)
	return f
}

func (c *FoldersCommand) Run(args []string) int {
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

	folders, err := sess.Client.ListFolders(ctx, owner, c.flags.limit)
	if err != nil {
		ui.Error(fmt.Sprintf("error listing folders: %v", err))
		return 1
	}

	for _, f := range folders {
		ui.Output(f.String())
	}
	ui.Info(fmt.Sprintf("%d folders", len(folders)))

	return 0
}
