package stack

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsdynamodb"
	"github.com/aws/jsii-runtime-go"

	"github.com/kurobane/frontdoor/entity"
)

// newTable provisions the key-value table with a fixed single string
// partition key, provisioned throughput, and write autoscaling around
// the base capacity.
func newTable(stack awscdk.Stack, cfg entity.Table) awsdynamodb.Table {
	props := &awsdynamodb.TableProps{
		PartitionKey: &awsdynamodb.Attribute{
			Name: jsii.String(cfg.PartitionKey),
			Type: awsdynamodb.AttributeType_STRING,
		},
		BillingMode:         awsdynamodb.BillingMode_PROVISIONED,
		ReadCapacity:        jsii.Number(float64(cfg.ReadCapacity)),
		WriteCapacity:       jsii.Number(float64(cfg.WriteCapacity)),
		PointInTimeRecovery: jsii.Bool(cfg.PointInTimeRecovery),
	}
	if cfg.Name != "" {
		// Leave naming to CloudFormation unless pinned in configuration.
		props.TableName = jsii.String(cfg.Name)
	}
	if view, ok := streamView(cfg.Stream); ok {
		props.Stream = view
	}

	table := awsdynamodb.NewTable(stack, jsii.String("Table"), props)

	scaling := table.AutoScaleWriteCapacity(&awsdynamodb.EnableScalingProps{
		MinCapacity: jsii.Number(float64(cfg.MinWriteCapacity)),
		MaxCapacity: jsii.Number(float64(cfg.MaxWriteCapacity)),
	})
	scaling.ScaleOnUtilization(&awsdynamodb.UtilizationScalingProps{
		TargetUtilizationPercent: jsii.Number(float64(cfg.TargetUtilization)),
	})

	return table
}

func streamView(name string) (awsdynamodb.StreamViewType, bool) {
	switch name {
	case "NEW_IMAGE":
		return awsdynamodb.StreamViewType_NEW_IMAGE, true
	case "OLD_IMAGE":
		return awsdynamodb.StreamViewType_OLD_IMAGE, true
	case "NEW_AND_OLD_IMAGES":
		return awsdynamodb.StreamViewType_NEW_AND_OLD_IMAGES, true
	case "KEYS_ONLY":
		return awsdynamodb.StreamViewType_KEYS_ONLY, true
	}
	return "", false
}
