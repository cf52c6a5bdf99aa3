// Package base carries the pieces shared by every CLI command: the user
// interface, the logger, flag-set help rendering, and the session bootstrap
// that logs in before a command runs and logs out after.
package base

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
)

// Command is embedded in every CLI command.
type Command struct {
	UI  cli.Ui
	Log hclog.Logger
}
