package export

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/pkg/browser"

	"github.com/eln-tools/labfolder-go/internal/cmd/base"
	"github.com/eln-tools/labfolder-go/pkg/labfolder"
)

type Command struct {
	*base.Command

	flags    base.SessionFlags
	flagKind string
	flagID   string
	flagOpen bool
}

func (c *Command) Synopsis() string {
	return "Queue a PDF export of an entry or project"
}

func (c *Command) Help() string {
	return `Usage: labfolder export -kind=<entry|project> -id=<record id>

  Queues an asynchronous PDF export. The server renders the file in the
  background and places it in the web application's export area; this
  command returns as soon as the job is accepted. Folders cannot be
  exported.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("export", flag.ExitOnError))
	c.flags.Register(f)
	f.StringVar(
		&c.flagKind, "kind", "",
		"(Required) Record kind: entry or project.",
	)
	f.StringVar(
		&c.flagID, "id", "",
		"(Required) Id of the record to export.",
	)
	f.BoolVar(
		&c.flagOpen, "open", false,
		"Open the web application in a browser after queueing.",
	)
	return f
}

// webURL derives the web application address from the API base URL.
func webURL(apiBase string) string {
	return strings.TrimSuffix(strings.TrimSuffix(apiBase, "/"), "/api/v2")
}

func (c *Command) Run(args []string) int {
	ui := c.UI

	if err := c.Flags().Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	// Validate flags.
	if c.flagKind == "" || c.flagID == "" {
		ui.Error("kind and id flags are required")
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

	if err := sess.Client.ExportPDF(ctx, record); err != nil {
		ui.Error(fmt.Sprintf("error queueing export: %v", err))
		return 1
	}

	ui.Info(fmt.Sprintf("PDF export queued for %s %s", kind, c.flagID))
	ui.Info("The file will appear in the web application's export area once rendered.")

	// Launch browser if enabled.
	if c.flagOpen {
		if err := browser.OpenURL(webURL(sess.Client.BaseURL())); err != nil {
			ui.Warn(fmt.Sprintf("could not open browser: %v", err))
		}
	}

	return 0
}
