package removemember

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

	flags     base.SessionFlags
	flagEmail string
	flagYes   bool
}

func (c *Command) Synopsis() string {
	return "Remove a member from a group"
}

func (c *Command) Help() string {
	return `Usage: labfolder remove-member -group=<id> -email=<email>

  Removes a member from a group by deleting their group membership. Records
  owned by the member are not touched; transfer them with set-owner first if
  the group should keep access. Asks for confirmation unless -yes is given.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("remove-member", flag.ExitOnError))
	c.flags.Register(f)
	f.StringVar(
		&c.flagEmail, "email", "",
		"(Required) Email of the member to remove.",
	)
	f.BoolVar(
		&c.flagYes, "yes", false,
		"Skip the confirmation prompt.",
	)
	return f
}

func (c *Command) Run(args []string) int {
	ui := c.UI

	if err := c.Flags().Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	// Validate flags.
	if c.flagEmail == "" {
		ui.Error("email flag is required")
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
		ui.Error(fmt.Sprintf("error selecting group: %v", err))
		return 1
	}
	member, err := sess.Member(c.flagEmail)
	if err != nil {
		ui.Error(fmt.Sprintf("error resolving member: %v", err))
		return 1
	}

	// Confirm before deleting the membership.
	if !c.flagYes {
		answer, err := ui.Ask(fmt.Sprintf(
			"Remove %s from %s? Only 'yes' proceeds:", member.String(), g.Name))
		if err != nil {
			ui.Error(fmt.Sprintf("error reading confirmation: %v", err))
			return 1
		}
		if answer != "yes" {
			ui.Warn("removal aborted")
			return 1
		}
	}

	if err := sess.Client.RemoveGroupMember(ctx, member); err != nil {
		ui.Error(fmt.Sprintf("error removing member: %v", err))
		return 1
	}

	ui.Info(fmt.Sprintf("%s removed from %s", member.String(), g.Name))
	return 0
}
