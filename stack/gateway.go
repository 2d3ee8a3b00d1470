package stack

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsapigateway"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslogs"
	"github.com/aws/jsii-runtime-go"

	"github.com/kurobane/frontdoor/entity"
)

// newGateway provisions the HTTP front door. Every route proxies to the
// handler; the stage carries throttling, tracing and JSON access logs.
func newGateway(stack awscdk.Stack, handler awslambda.Function, cfg entity.Gateway) awsapigateway.LambdaRestApi {
	accessLogs := awslogs.NewLogGroup(stack, jsii.String("GatewayAccessLogs"), &awslogs.LogGroupProps{
		Retention: retentionDays(cfg.LogRetentionDays),
	})

	return awsapigateway.NewLambdaRestApi(stack, jsii.String("Endpoint"), &awsapigateway.LambdaRestApiProps{
		Handler: handler,
		DeployOptions: &awsapigateway.StageOptions{
			StageName:            jsii.String(cfg.Stage),
			TracingEnabled:       jsii.Bool(cfg.Tracing),
			ThrottlingRateLimit:  jsii.Number(float64(cfg.RateLimit)),
			ThrottlingBurstLimit: jsii.Number(float64(cfg.BurstLimit)),
			AccessLogDestination: awsapigateway.NewLogGroupLogDestination(accessLogs),
			AccessLogFormat: awsapigateway.AccessLogFormat_JsonWithStandardFields(&awsapigateway.JsonWithStandardFieldProps{
				Caller:         jsii.Bool(true),
				HttpMethod:     jsii.Bool(true),
				Ip:             jsii.Bool(true),
				Protocol:       jsii.Bool(true),
				RequestTime:    jsii.Bool(true),
				ResourcePath:   jsii.Bool(true),
				ResponseLength: jsii.Bool(true),
				Status:         jsii.Bool(true),
				User:           jsii.Bool(true),
			}),
		},
	})
}
