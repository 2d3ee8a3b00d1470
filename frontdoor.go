package main

import (
	"os"

	"github.com/kurobane/frontdoor/command"
	"github.com/kurobane/frontdoor/logger"
	"github.com/ysugimoto/go-args"
)

var Version = "dev"

func main() {
	ctx := args.New().
		Alias("help", "h", nil).
		Alias("name", "n", "").
		Alias("profile", "", "").
		Alias("region", "", "").
		Alias("runtime", "", "").
		Alias("stage", "s", "").
		Alias("force", "", nil).
		Parse(os.Args[1:])

	var cmd command.Command
	switch ctx.At(0) {
	case command.INIT:
		cmd = command.NewInit()
	case command.VERSION:
		cmd = command.NewVersion(Version)
	case command.HELP:
		cmd = command.NewHelp()
	case command.SYNTH, "":
		// The cdk CLI runs this binary with no arguments.
		cmd = command.NewSynth()
	default:
		cmd = command.NewHelp()
	}

	if ctx.Has("help") || ctx.At(1) == "help" {
		logger.Println(cmd.Help())
		return
	}
	if err := cmd.Run(ctx); err != nil {
		logger.WithNamespace("frontdoor").Error(err.Error())
		os.Exit(1)
	}
}
