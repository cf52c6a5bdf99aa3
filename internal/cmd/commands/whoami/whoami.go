package whoami

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/eln-tools/labfolder-go/internal/cmd/base"
)

type Command struct {
	*base.Command

	flags base.SessionFlags
}

func (c *Command) Synopsis() string {
	return "Show the logged-in user"
}

func (c *Command) Help() string {
	return `Usage: labfolder whoami

  Logs in, prints the account profile and the session token expiry, and logs
  out again. Useful for checking credentials and connectivity.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("whoami", flag.ExitOnError))
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

	me := sess.Client.Me()
	ui.Output(me.String())
	ui.Output(fmt.Sprintf("User id: %s", me.ID))
	if expiry, ok := sess.Client.TokenExpiresAt(); ok {
		ui.Output(fmt.Sprintf("Session expires: %s", expiry.Local().Format(time.RFC1123)))
	}

	return 0
}
