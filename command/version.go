package command

import (
	"github.com/kurobane/frontdoor/logger"
	"github.com/ysugimoto/go-args"
)

// Version is the struct that displays version info.
type Version struct {
	Command
	version string
}

func NewVersion(version string) *Version {
	return &Version{
		version: version,
	}
}

func (v *Version) Run(ctx *args.Context) error {
	logger.Println(v.Help())
	return nil
}

func (v *Version) Help() string {
	return v.version
}
