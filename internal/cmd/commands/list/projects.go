package list

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/eln-tools/labfolder-go/internal/cmd/base"
)

type ProjectsCommand struct {
	*base.Command

	flags listFlags
}

func (c *ProjectsCommand) Synopsis() string {
	return "List projects"
}

func (c *ProjectsCommand) Help() string {
	return `Usage: labfolder projects

  Lists the projects owned by the logged-in user, or by another group member
  when -owner is given.` +
		c.Flags().Help()
}

func (c *ProjectsCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("projects", flag.ExitOnError))
	c.flags.register(f)
	return f
}

func (c *ProjectsCommand) Run(args []string) int {
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

	projects, err := sess.Client.ListProjects(ctx, owner, c.flags.limit)
	if err != nil {
		ui.Error(fmt.Sprintf("error listing projects: %v", err))
		return 1
	}

	for _, p := range projects {
		ui.Output(p.String())
	}
	ui.Info(fmt.Sprintf("%d projects", len(projects)))

	return 0
}
