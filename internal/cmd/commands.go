package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/eln-tools/labfolder-go/internal/cmd/base"
	"github.com/eln-tools/labfolder-go/internal/cmd/commands/export"
	"github.com/eln-tools/labfolder-go/internal/cmd/commands/group"
	"github.com/eln-tools/labfolder-go/internal/cmd/commands/list"
	"github.com/eln-tools/labfolder-go/internal/cmd/commands/removemember"
	"github.com/eln-tools/labfolder-go/internal/cmd/commands/setowner"
	versioncmd "github.com/eln-tools/labfolder-go/internal/cmd/commands/version"
	"github.com/eln-tools/labfolder-go/internal/cmd/commands/whoami"
)

// Commands maps CLI subcommand names to their factories.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	b := &base.Command{
		UI:  ui,
		Log: log,
	}

	Commands = map[string]cli.CommandFactory{
		"whoami": func() (cli.Command, error) {
			return &whoami.Command{Command: b}, nil
		},
		"group": func() (cli.Command, error) {
			return &group.Command{Command: b}, nil
		},
		"projects": func() (cli.Command, error) {
			return &list.ProjectsCommand{Command: b}, nil
		},
		"folders": func() (cli.Command, error) {
			return &list.FoldersCommand{Command: b}, nil
		},
		"entries": func() (cli.Command, error) {
			return &list.EntriesCommand{Command: b}, nil
		},
		"set-owner": func() (cli.Command, error) {
			return &setowner.Command{Command: b}, nil
		},
		"remove-member": func() (cli.Command, error) {
			return &removemember.Command{Command: b}, nil
		},
		"export": func() (cli.Command, error) {
			return &export.Command{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &versioncmd.Command{Command: b}, nil
		},
	}
}
