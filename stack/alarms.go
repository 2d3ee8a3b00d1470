package stack

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsapigateway"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudwatch"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsdynamodb"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslambda"
	"github.com/aws/jsii-runtime-go"

	"github.com/kurobane/frontdoor/entity"
)

// concurrencyAlarmRatio places the concurrency alarm below the
// reservation so throttling is visible before the pool is exhausted.
const concurrencyAlarmRatio = 0.8

// newAlarms wires one threshold alarm per monitored failure mode. Every
// metric belongs to a resource created earlier in the same pass.
func newAlarms(
	stack awscdk.Stack,
	table awsdynamodb.Table,
	handler awslambda.Function,
	api awsapigateway.LambdaRestApi,
	fn entity.Function,
	cfg entity.Alarms,
) {
	awscloudwatch.NewAlarm(stack, jsii.String("FunctionErrorAlarm"), &awscloudwatch.AlarmProps{
		Metric:            handler.MetricErrors(nil),
		Threshold:         jsii.Number(cfg.FunctionErrors.Threshold),
		EvaluationPeriods: jsii.Number(float64(cfg.FunctionErrors.Periods)),
		AlarmDescription:  jsii.String("Handler execution errors"),
	})

	awscloudwatch.NewAlarm(stack, jsii.String("FunctionThrottleAlarm"), &awscloudwatch.AlarmProps{
		Metric:            handler.MetricThrottles(nil),
		Threshold:         jsii.Number(cfg.FunctionThrottles.Threshold),
		EvaluationPeriods: jsii.Number(float64(cfg.FunctionThrottles.Periods)),
		AlarmDescription:  jsii.String("Handler invocations throttled"),
	})

	awscloudwatch.NewAlarm(stack, jsii.String("GatewayServerErrorAlarm"), &awscloudwatch.AlarmProps{
		Metric:            api.MetricServerError(nil),
		Threshold:         jsii.Number(cfg.GatewayServerErrors.Threshold),
		EvaluationPeriods: jsii.Number(float64(cfg.GatewayServerErrors.Periods)),
		AlarmDescription:  jsii.String("Gateway 5xx responses"),
	})

	awscloudwatch.NewAlarm(stack, jsii.String("TableUserErrorAlarm"), &awscloudwatch.AlarmProps{
		Metric:            table.MetricUserErrors(nil),
		Threshold:         jsii.Number(cfg.TableUserErrors.Threshold),
		EvaluationPeriods: jsii.Number(float64(cfg.TableUserErrors.Periods)),
		AlarmDescription:  jsii.String("Table request errors"),
	})

	awscloudwatch.NewAlarm(stack, jsii.String("TableWriteThrottleAlarm"), &awscloudwatch.AlarmProps{
		Metric:            table.Metric(jsii.String("WriteThrottleEvents"), nil),
		Threshold:         jsii.Number(cfg.TableWriteThrottles.Threshold),
		EvaluationPeriods: jsii.Number(float64(cfg.TableWriteThrottles.Periods)),
		AlarmDescription:  jsii.String("Table write throttle events"),
	})

	if fn.HasReservedConcurrency() {
		awscloudwatch.NewAlarm(stack, jsii.String("FunctionConcurrencyAlarm"), &awscloudwatch.AlarmProps{
			Metric: handler.Metric(jsii.String("ConcurrentExecutions"), &awscloudwatch.MetricOptions{
				Statistic: jsii.String("Maximum"),
			}),
			Threshold:         jsii.Number(concurrencyAlarmRatio * float64(fn.ReservedConcurrency)),
			EvaluationPeriods: jsii.Number(1),
			AlarmDescription:  jsii.String("Handler nearing its concurrency reservation"),
		})
	}
}
