package stack

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsapigateway"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsdynamodb"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsec2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/kurobane/frontdoor/entity"
)

// FrontdoorStackProps carries every descriptor the stack assembles.
// StackProps is passed through to the provisioning engine untouched.
type FrontdoorStackProps struct {
	awscdk.StackProps
	Project  entity.Project
	Network  entity.Network
	Table    entity.Table
	Function entity.Function
	Gateway  entity.Gateway
	Firewall entity.Firewall
	Alarms   entity.Alarms
}

// FrontdoorStack exposes the wired resources for callers and tests.
type FrontdoorStack struct {
	awscdk.Stack
	Vpc     awsec2.Vpc
	Table   awsdynamodb.Table
	Handler awslambda.Function
	Api     awsapigateway.LambdaRestApi
}

// NewFrontdoorStack builds the full resource graph in dependency order:
// network, table endpoint, table, handler, gateway, firewall, alarms.
// Nothing here talks to the provider; the returned graph is inert until
// an external deployment resolves it.
func NewFrontdoorStack(scope constructs.Construct, id string, props *FrontdoorStackProps) *FrontdoorStack {
	stack := awscdk.NewStack(scope, jsii.String(id), &props.StackProps)

	vpc := newNetwork(stack, props.Network)
	table := newTable(stack, props.Table)
	handler := newHandler(stack, vpc, table, props.Function)
	api := newGateway(stack, handler, props.Gateway)
	if props.Firewall.Enabled {
		attachFirewall(stack, api, props.Project, props.Firewall)
	}
	newAlarms(stack, table, handler, api, props.Function, props.Alarms)

	return &FrontdoorStack{
		Stack:   stack,
		Vpc:     vpc,
		Table:   table,
		Handler: handler,
		Api:     api,
	}
}
