package command

import (
	"github.com/ysugimoto/go-args"
)

const (
	INIT    = "init"
	SYNTH   = "synth"
	VERSION = "version"
	HELP    = "help"
)

type Command interface {
	Run(ctx *args.Context) error
	Help() string
}

func commandHeader() string {
	return `========================================
 frontdoor: declarative serverless ingress
========================================`
}
