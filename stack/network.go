package stack

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsec2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslogs"
	"github.com/aws/jsii-runtime-go"

	"github.com/kurobane/frontdoor/entity"
)

// endpointActions is the fixed allow-list attached to the table endpoint.
// Traffic through the endpoint may reach no other DynamoDB API.
var endpointActions = []string{
	"dynamodb:DescribeStream",
	"dynamodb:DescribeTable",
	"dynamodb:Get*",
	"dynamodb:Query",
	"dynamodb:Scan",
	"dynamodb:CreateTable",
	"dynamodb:Delete*",
	"dynamodb:Update*",
	"dynamodb:PutItem",
}

// newNetwork provisions the isolated VPC the handler runs in. Subnets
// have no internet route; the only egress is the DynamoDB gateway
// endpoint, and all traffic is flow-logged.
func newNetwork(stack awscdk.Stack, cfg entity.Network) awsec2.Vpc {
	vpc := awsec2.NewVpc(stack, jsii.String("Ingress"), &awsec2.VpcProps{
		IpAddresses: awsec2.IpAddresses_Cidr(jsii.String(cfg.Cidr)),
		SubnetConfiguration: &[]*awsec2.SubnetConfiguration{
			{
				Name:       jsii.String("private"),
				SubnetType: awsec2.SubnetType_PRIVATE_ISOLATED,
				CidrMask:   jsii.Number(float64(cfg.SubnetMask)),
			},
		},
	})

	flowLogs := awslogs.NewLogGroup(stack, jsii.String("VpcFlowLogs"), &awslogs.LogGroupProps{
		Retention: retentionDays(cfg.FlowLogRetentionDays),
	})
	vpc.AddFlowLog(jsii.String("FlowLog"), &awsec2.FlowLogOptions{
		Destination: awsec2.FlowLogDestination_ToCloudWatchLogs(flowLogs, nil),
		TrafficType: awsec2.FlowLogTrafficType_ALL,
	})

	endpoint := vpc.AddGatewayEndpoint(jsii.String("TableEndpoint"), &awsec2.GatewayVpcEndpointOptions{
		Service: awsec2.GatewayVpcEndpointAwsService_DYNAMODB(),
	})
	endpoint.AddToPolicy(awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
		Principals: &[]awsiam.IPrincipal{awsiam.NewAnyPrincipal()},
		Actions:    jsii.Strings(endpointActions...),
		Resources:  jsii.Strings("*"),
	}))

	return vpc
}
