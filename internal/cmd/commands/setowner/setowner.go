package setowner

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/eln-tools/labfolder-go/internal/cmd/base"
	"github.com/eln-tools/labfolder-go/pkg/labfolder"
)

type Command struct {
	*base.Command

	flags    base.SessionFlags
	flagKind string
	flagID   string
	flagTo   string
}

func (c *Command) Synopsis() string {
	return "Transfer ownership of a folder or project"
}

func (c *Command) Help() string {
	return `Usage: labfolder set-owner -kind=<folder|project> -id=<record id> -to=<email>

  Transfers ownership of a folder or project to another member of the group.
  The new owner is looked up by email in the group's membership tree, so a
  group must be set. Entries cannot change owner.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("set-owner", flag.ExitOnError))
	c.flags.Register(f)
	f.StringVar(
		&c.flagKind, "kind", "",
		"(Required) Record kind: folder or project.",
	)
	f.StringVar(
		&c.flagID, "id", "",
		"(Required) Id of the record to transfer.",
	)
	f.StringVar(
		&c.flagTo, "to", "",
		"(Required) Email of the new owner.",
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
	if c.flagKind == "" || c.flagID == "" || c.flagTo == "" {
		ui.Error("kind, id, and to flags are all required")
		return 1
	}

	kind, err := labfolder.ParseKind(c.flagKind)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	record, err := labfolder.NewRecord(kind, c.flagID)
	if err != nil {
		ui.Error(err.Error())
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

	// Resolve the new owner in the group tree.
	if _, err := sess.SelectGroup(ctx); err != nil {
		ui.Error(fmt.Sprintf("error selecting group: %v", err))
		return 1
	}
	newOwner, err := sess.Member(c.flagTo)
	if err != nil {
		ui.Error(fmt.Sprintf("error resolving new owner: %v", err))
		return 1
	}

	if err := sess.Client.SetOwner(ctx, record, newOwner); err != nil {
		ui.Error(fmt.Sprintf("error transferring ownership: %v", err))
		return 1
	}

	ui.Info(fmt.Sprintf("%s %s now owned by %s", kind, c.flagID, newOwner.String()))
	return 0
}
