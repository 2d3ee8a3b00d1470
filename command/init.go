package command

import (
	"os"

	"path/filepath"

	"github.com/kurobane/frontdoor/assets"
	"github.com/kurobane/frontdoor/config"
	"github.com/kurobane/frontdoor/entity"
	"github.com/kurobane/frontdoor/input"
	"github.com/kurobane/frontdoor/logger"
	"github.com/pkg/errors"
	"github.com/ysugimoto/go-args"
)

type Init struct {
	Command
	log *logger.Logger
}

func NewInit() *Init {
	return &Init{
		log: logger.WithNamespace("frontdoor.init"),
	}
}

// Run scaffolds a new project: prompts for the few values that differ
// per deployment, writes Frontdoor.toml with defaults for the rest, and
// drops a handler skeleton plus cdk.json so "cdk synth" works
// immediately.
func (i *Init) Run(ctx *args.Context) error {
	c := config.Load()
	if c.Exists() && !ctx.Has("force") {
		i.log.Info("Config file found. Project has already initialized.")
		return nil
	}

	if name := ctx.String("name"); name != "" {
		c.Project.Name = name
	} else {
		c.Project.Name = input.String("Project name", c.Project.Name)
	}
	c.Project.Region = input.String("Region", c.Project.Region)
	c.Project.Profile = ctx.String("profile")

	if r := ctx.String("runtime"); r != "" {
		c.Function.Runtime = r
	} else if r := input.Choice("Choose the function runtime", entity.Runtimes); r != "" {
		c.Function.Runtime = r
	}
	c.Function.Name = c.Project.Name + "-handler"
	c.Firewall.Enabled = input.Bool("Attach a rate-limiting firewall to the gateway?")

	if err := i.scaffold(c); err != nil {
		debugTrace(err)
		return errors.Wrap(err, "Failed to scaffold project files")
	}
	if err := c.Write(); err != nil {
		debugTrace(err)
		return errors.Wrap(err, "Failed to write configuration")
	}
	i.log.Infof("Project %s initialized successfully!\n", c.Project.Name)
	return nil
}

// scaffold writes the handler skeleton and cdk.json when absent,
// keeping whatever the user already has.
func (i *Init) scaffold(c *config.Config) error {
	codeDir := filepath.Join(c.Root, c.Function.CodePath)
	if err := os.MkdirAll(codeDir, 0755); err != nil {
		return err
	}
	mainPath := filepath.Join(codeDir, "main.go")
	if _, err := os.Stat(mainPath); err != nil {
		if err := os.WriteFile(mainPath, assets.MustRead("main.go.template"), 0644); err != nil {
			return err
		}
	}
	cdkPath := filepath.Join(c.Root, "cdk.json")
	if _, err := os.Stat(cdkPath); err != nil {
		if err := os.WriteFile(cdkPath, assets.MustRead("cdk.json.template"), 0644); err != nil {
			return err
		}
	}
	return nil
}

func (i *Init) Help() string {
	return commandHeader() + `
init - Initialize a frontdoor project in the current directory.

Usage:
  $ frontdoor init [options]

Options:
  -n, --name    : Project name (prompted when not supplied)
  --profile     : AWS shared credentials profile
  --runtime     : Function runtime (prompted when not supplied)
  --force       : Re-initialize even when Frontdoor.toml exists`
}
