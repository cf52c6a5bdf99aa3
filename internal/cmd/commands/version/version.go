package version

import (
	"github.com/eln-tools/labfolder-go/internal/cmd/base"
	buildversion "github.com/eln-tools/labfolder-go/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the CLI version"
}

func (c *Command) Help() string {
	return "Usage: labfolder version\n"
}

func (c *Command) Run(args []string) int {
	c.UI.Output(buildversion.Version)
	return 0
}
