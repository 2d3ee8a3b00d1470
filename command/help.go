package command

import (
	"github.com/kurobane/frontdoor/logger"
	"github.com/ysugimoto/go-args"
)

// Help is the struct that displays global command usage.
type Help struct {
	Command
}

func NewHelp() *Help {
	return &Help{}
}

func (h *Help) Run(ctx *args.Context) error {
	logger.Println(h.Help())
	return nil
}

func (h *Help) Help() string {
	help := `
Usage:
  $ frontdoor [subcommand] [options]

SubCommands:
  init    : Initialize project, write Frontdoor.toml and a handler skeleton
  synth   : Assemble and synthesize the stack (default subcommand)
  version : Show binary release version

Options:
  -h, --help: Show help

To see subcommand help, run "frontdoor [subcommand] help".`

	return commandHeader() + help
}
