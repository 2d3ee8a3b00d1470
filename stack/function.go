package stack

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsdynamodb"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsec2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/jsii-runtime-go"

	"github.com/kurobane/frontdoor/entity"
)

// newHandler provisions the compute function inside the isolated
// subnets, grants it table write access, and injects the generated
// table name into its environment.
func newHandler(stack awscdk.Stack, vpc awsec2.Vpc, table awsdynamodb.Table, cfg entity.Function) awslambda.Function {
	props := &awslambda.FunctionProps{
		FunctionName: jsii.String(cfg.Name),
		Runtime:      runtime(cfg.Runtime),
		Handler:      jsii.String(cfg.Handler),
		Code:         awslambda.Code_FromAsset(jsii.String(cfg.CodePath), nil),
		Vpc:          vpc,
		VpcSubnets: &awsec2.SubnetSelection{
			SubnetType: awsec2.SubnetType_PRIVATE_ISOLATED,
		},
		MemorySize:   jsii.Number(float64(cfg.MemorySize)),
		Timeout:      awscdk.Duration_Seconds(jsii.Number(float64(cfg.Timeout))),
		Tracing:      tracing(cfg.Tracing),
		LogRetention: retentionDays(cfg.LogRetentionDays),
	}
	if cfg.HasReservedConcurrency() {
		props.ReservedConcurrentExecutions = jsii.Number(float64(cfg.ReservedConcurrency))
	}

	fn := awslambda.NewFunction(stack, jsii.String("ApiHandler"), props)

	table.GrantWriteData(fn)
	fn.AddEnvironment(jsii.String("TABLE_NAME"), table.TableName(), nil)

	return fn
}

func runtime(name string) awslambda.Runtime {
	switch name {
	case "provided.al2":
		return awslambda.Runtime_PROVIDED_AL2()
	case "python3.12":
		return awslambda.Runtime_PYTHON_3_12()
	case "nodejs20.x":
		return awslambda.Runtime_NODEJS_20_X()
	default:
		return awslambda.Runtime_PROVIDED_AL2023()
	}
}

func tracing(enabled bool) awslambda.Tracing {
	if enabled {
		return awslambda.Tracing_ACTIVE
	}
	return awslambda.Tracing_DISABLED
}
