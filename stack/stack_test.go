package stack

import (
	"encoding/json"
	"fmt"
	"regexp"
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/assertions"
	"github.com/aws/jsii-runtime-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kurobane/frontdoor/config"
	"github.com/kurobane/frontdoor/entity"
)

// synth builds a stack from the default configuration, applies the
// given overrides, and returns the synthesized template.
func synth(t *testing.T, mutate func(*FrontdoorStackProps)) assertions.Template {
	t.Helper()

	c := config.Defaults()
	props := &FrontdoorStackProps{
		Project:  c.Project,
		Network:  c.Network,
		Table:    c.Table,
		Function: c.Function,
		Gateway:  c.Gateway,
		Firewall: c.Firewall,
		Alarms:   c.Alarms,
	}
	props.Function.CodePath = "testdata/handler"
	if mutate != nil {
		mutate(props)
	}

	app := awscdk.NewApp(nil)
	s := NewFrontdoorStack(app, "test-stack", props)
	return assertions.Template_FromStack(s.Stack, nil)
}

// logicalID returns the logical id of the only resource of the given
// type in the template.
func logicalID(t *testing.T, template assertions.Template, resourceType string) string {
	t.Helper()
	found := template.FindResources(jsii.String(resourceType), nil)
	require.Len(t, *found, 1, "expected exactly one %s", resourceType)
	for id := range *found {
		return id
	}
	return ""
}

func TestTableCapacityBounds(t *testing.T) {
	template := synth(t, nil)

	template.HasResourceProperties(jsii.String("AWS::DynamoDB::Table"), map[string]interface{}{
		"BillingMode": "PROVISIONED",
		"ProvisionedThroughput": map[string]interface{}{
			"ReadCapacityUnits":  5,
			"WriteCapacityUnits": 100,
		},
		"PointInTimeRecoverySpecification": map[string]interface{}{
			"PointInTimeRecoveryEnabled": true,
		},
		"StreamSpecification": map[string]interface{}{
			"StreamViewType": "NEW_AND_OLD_IMAGES",
		},
	})

	template.HasResourceProperties(jsii.String("AWS::ApplicationAutoScaling::ScalableTarget"), map[string]interface{}{
		"MinCapacity":       10,
		"MaxCapacity":       200,
		"ScalableDimension": "dynamodb:table:WriteCapacityUnits",
	})
	template.HasResourceProperties(jsii.String("AWS::ApplicationAutoScaling::ScalingPolicy"), map[string]interface{}{
		"TargetTrackingScalingPolicyConfiguration": assertions.Match_ObjectLike(&map[string]interface{}{
			"TargetValue": 70,
		}),
	})

	// min <= base <= max, and the range is wider than a single point.
	cfg := config.Defaults().Table
	assert.True(t, cfg.CapacityRangeValid())
	assert.LessOrEqual(t, cfg.MinWriteCapacity, cfg.WriteCapacity)
	assert.LessOrEqual(t, cfg.WriteCapacity, cfg.MaxWriteCapacity)
}

func TestNetworkHasNoInternetRoute(t *testing.T) {
	template := synth(t, nil)

	template.ResourceCountIs(jsii.String("AWS::EC2::InternetGateway"), jsii.Number(0))
	template.ResourceCountIs(jsii.String("AWS::EC2::NatGateway"), jsii.Number(0))
	template.ResourceCountIs(jsii.String("AWS::EC2::FlowLog"), jsii.Number(1))

	subnets := template.FindResources(jsii.String("AWS::EC2::Subnet"), nil)
	assert.NotEmpty(t, *subnets)
}

func TestEndpointPolicyRestrictsActions(t *testing.T) {
	template := synth(t, nil)

	template.HasResourceProperties(jsii.String("AWS::EC2::VPCEndpoint"), map[string]interface{}{
		"PolicyDocument": assertions.Match_ObjectLike(&map[string]interface{}{
			"Statement": assertions.Match_ArrayWith(&[]interface{}{
				assertions.Match_ObjectLike(&map[string]interface{}{
					"Action": []interface{}{
						"dynamodb:DescribeStream",
						"dynamodb:DescribeTable",
						"dynamodb:Get*",
						"dynamodb:Query",
						"dynamodb:Scan",
						"dynamodb:CreateTable",
						"dynamodb:Delete*",
						"dynamodb:Update*",
						"dynamodb:PutItem",
					},
					"Effect":   "Allow",
					"Resource": "*",
				}),
			}),
		}),
	})
}

func TestHandlerWiring(t *testing.T) {
	template := synth(t, nil)
	tableID := logicalID(t, template, "AWS::DynamoDB::Table")

	template.HasResourceProperties(jsii.String("AWS::Lambda::Function"), map[string]interface{}{
		"MemorySize": 1024,
		"Timeout":    300,
		"TracingConfig": map[string]interface{}{
			"Mode": "Active",
		},
		"VpcConfig": assertions.Match_ObjectLike(&map[string]interface{}{
			"SubnetIds": assertions.Match_AnyValue(),
		}),
		"Environment": assertions.Match_ObjectLike(&map[string]interface{}{
			"Variables": assertions.Match_ObjectLike(&map[string]interface{}{
				"TABLE_NAME": map[string]interface{}{"Ref": tableID},
			}),
		}),
	})

	// The generated role may write to the table, nothing broader.
	template.HasResourceProperties(jsii.String("AWS::IAM::Policy"), map[string]interface{}{
		"PolicyDocument": assertions.Match_ObjectLike(&map[string]interface{}{
			"Statement": assertions.Match_ArrayWith(&[]interface{}{
				assertions.Match_ObjectLike(&map[string]interface{}{
					"Action": assertions.Match_ArrayWith(&[]interface{}{
						"dynamodb:PutItem",
					}),
				}),
			}),
		}),
	})
}

func TestHandlerConcurrencyReservation(t *testing.T) {
	template := synth(t, func(p *FrontdoorStackProps) {
		p.Function.ReservedConcurrency = 150
	})

	template.HasResourceProperties(jsii.String("AWS::Lambda::Function"), map[string]interface{}{
		"ReservedConcurrentExecutions": 150,
	})

	// The reservation stays below what the throttled stage can drive.
	g := config.Defaults().Gateway
	fn := entity.Function{ReservedConcurrency: 150}
	assert.True(t, g.FitsReservation(fn))
	assert.Less(t, fn.ReservedConcurrency, g.SustainedCapacity())
}

func TestGatewayStageSettings(t *testing.T) {
	template := synth(t, nil)

	template.HasResourceProperties(jsii.String("AWS::ApiGateway::Stage"), map[string]interface{}{
		"StageName":      "prod",
		"TracingEnabled": true,
		"MethodSettings": assertions.Match_ArrayWith(&[]interface{}{
			assertions.Match_ObjectLike(&map[string]interface{}{
				"HttpMethod":           "*",
				"ResourcePath":         "/*",
				"ThrottlingRateLimit":  100,
				"ThrottlingBurstLimit": 200,
			}),
		}),
		"AccessLogSetting": assertions.Match_ObjectLike(&map[string]interface{}{
			"DestinationArn": assertions.Match_AnyValue(),
		}),
	})
}

func TestFirewallDisabledByDefault(t *testing.T) {
	template := synth(t, nil)

	template.ResourceCountIs(jsii.String("AWS::WAFv2::WebACL"), jsii.Number(0))
	template.ResourceCountIs(jsii.String("AWS::WAFv2::WebACLAssociation"), jsii.Number(0))
}

func TestFirewallAssociatesGatewayStage(t *testing.T) {
	template := synth(t, func(p *FrontdoorStackProps) {
		p.Firewall.Enabled = true
		p.Firewall.RateLimit = 500
	})

	template.HasResourceProperties(jsii.String("AWS::WAFv2::WebACL"), map[string]interface{}{
		"Scope": "REGIONAL",
		"Rules": assertions.Match_ArrayWith(&[]interface{}{
			assertions.Match_ObjectLike(&map[string]interface{}{
				"Statement": map[string]interface{}{
					"RateBasedStatement": map[string]interface{}{
						"AggregateKeyType": "IP",
						"Limit":            500,
					},
				},
			}),
		}),
	})

	// The association must point at the very stage the gateway deploys.
	stageID := logicalID(t, template, "AWS::ApiGateway::Stage")
	assocs := template.FindResources(jsii.String("AWS::WAFv2::WebACLAssociation"), nil)
	require.Len(t, *assocs, 1)
	for _, assoc := range *assocs {
		raw, err := json.Marshal(assoc)
		require.NoError(t, err)
		assert.Contains(t, string(raw), fmt.Sprintf("%q", stageID))
	}
}

func TestAlarmsCoverEveryFailureMode(t *testing.T) {
	template := synth(t, nil)

	// No reservation, so no concurrency alarm.
	template.ResourceCountIs(jsii.String("AWS::CloudWatch::Alarm"), jsii.Number(5))

	for _, tc := range []struct {
		namespace string
		metric    string
		threshold int
		periods   int
	}{
		{"AWS/Lambda", "Errors", 1, 1},
		{"AWS/Lambda", "Throttles", 1, 1},
		{"AWS/ApiGateway", "5XXError", 5, 2},
		{"AWS/DynamoDB", "UserErrors", 10, 2},
		{"AWS/DynamoDB", "WriteThrottleEvents", 5, 2},
	} {
		template.HasResourceProperties(jsii.String("AWS::CloudWatch::Alarm"), map[string]interface{}{
			"Namespace":         tc.namespace,
			"MetricName":        tc.metric,
			"Threshold":         tc.threshold,
			"EvaluationPeriods": tc.periods,
		})
	}
}

func TestConcurrencyAlarmRequiresReservation(t *testing.T) {
	template := synth(t, func(p *FrontdoorStackProps) {
		p.Function.ReservedConcurrency = 150
	})

	template.ResourceCountIs(jsii.String("AWS::CloudWatch::Alarm"), jsii.Number(6))
	template.HasResourceProperties(jsii.String("AWS::CloudWatch::Alarm"), map[string]interface{}{
		"Namespace":  "AWS/Lambda",
		"MetricName": "ConcurrentExecutions",
		"Statistic":  "Maximum",
		"Threshold":  120,
	})
}

var refPattern = regexp.MustCompile(`"Ref":\s*"([A-Za-z0-9]+)"`)

func TestAlarmDimensionsReferencePresentResources(t *testing.T) {
	template := synth(t, nil)

	resources := (*template.ToJSON())["Resources"].(map[string]interface{})
	alarms := template.FindResources(jsii.String("AWS::CloudWatch::Alarm"), nil)
	require.NotEmpty(t, *alarms)

	for id, alarm := range *alarms {
		raw, err := json.Marshal(alarm)
		require.NoError(t, err)
		for _, m := range refPattern.FindAllStringSubmatch(string(raw), -1) {
			_, ok := resources[m[1]]
			assert.True(t, ok, "alarm %s references missing resource %s", id, m[1])
		}
	}
}
