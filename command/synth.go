package command

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"
	"github.com/pkg/errors"
	"github.com/ysugimoto/go-args"

	"github.com/kurobane/frontdoor/config"
	"github.com/kurobane/frontdoor/logger"
	"github.com/kurobane/frontdoor/stack"
)

type Synth struct {
	Command
	log *logger.Logger
}

func NewSynth() *Synth {
	return &Synth{
		log: logger.WithNamespace("frontdoor.synth"),
	}
}

// Run assembles the resource graph from configuration and synthesizes
// it. The cdk CLI invokes this entry with no arguments; deployment of
// the produced assembly stays with that external engine.
func (s *Synth) Run(ctx *args.Context) error {
	c := config.Load()
	if !c.Exists() {
		return exception("Configuration file could not be found. Run \"frontdoor init\" first.")
	}
	if p := ctx.String("profile"); p != "" {
		c.Project.Profile = p
	}
	if r := ctx.String("region"); r != "" {
		c.Project.Region = r
	}
	if st := ctx.String("stage"); st != "" {
		c.Gateway.Stage = st
	}
	if err := c.Validate(); err != nil {
		debugTrace(err)
		return errors.Wrap(err, "Invalid configuration")
	}

	defer jsii.Close()
	app := awscdk.NewApp(nil)
	stack.NewFrontdoorStack(app, c.Project.StackName(), &stack.FrontdoorStackProps{
		StackProps: awscdk.StackProps{
			Env:         stackEnv(c),
			Description: jsii.String("Serverless HTTP ingress: gateway, handler and table in an isolated network"),
		},
		Project:  c.Project,
		Network:  c.Network,
		Table:    c.Table,
		Function: c.Function,
		Gateway:  c.Gateway,
		Firewall: c.Firewall,
		Alarms:   c.Alarms,
	})
	app.Synth(nil)

	s.log.Infof("Stack %s synthesized\n", c.Project.StackName())
	return nil
}

// stackEnv pins the deployment scope when account or region is
// configured, and leaves the stack environment-agnostic otherwise.
func stackEnv(c *config.Config) *awscdk.Environment {
	if c.Project.Account == "" && c.Project.Region == "" {
		return nil
	}
	env := &awscdk.Environment{}
	if c.Project.Account != "" {
		env.Account = jsii.String(c.Project.Account)
	}
	if c.Project.Region != "" {
		env.Region = jsii.String(c.Project.Region)
	}
	return env
}

func (s *Synth) Help() string {
	return commandHeader() + `
synth - Assemble the resource graph and synthesize the deployment
        artifact. This is also the default subcommand, so the cdk CLI
        can run the binary directly.

Usage:
  $ frontdoor synth [options]

Options:
  --profile   : Override the AWS profile
  --region    : Override the region
  -s, --stage : Override the gateway stage name`
}
