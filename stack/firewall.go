package stack

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsapigateway"
	"github.com/aws/aws-cdk-go/awscdk/v2/awswafv2"
	"github.com/aws/jsii-runtime-go"

	"github.com/kurobane/frontdoor/entity"
)

// attachFirewall provisions a regional web ACL with a single rate-based
// rule keyed by client address and associates it with the stage the
// gateway deploys.
func attachFirewall(stack awscdk.Stack, api awsapigateway.LambdaRestApi, project entity.Project, cfg entity.Firewall) awswafv2.CfnWebACL {
	acl := awswafv2.NewCfnWebACL(stack, jsii.String("EdgeAcl"), &awswafv2.CfnWebACLProps{
		Scope: jsii.String("REGIONAL"),
		DefaultAction: &awswafv2.CfnWebACL_DefaultActionProperty{
			Allow: &awswafv2.CfnWebACL_AllowActionProperty{},
		},
		VisibilityConfig: &awswafv2.CfnWebACL_VisibilityConfigProperty{
			CloudWatchMetricsEnabled: jsii.Bool(true),
			MetricName:               jsii.String(project.Name + "-acl"),
			SampledRequestsEnabled:   jsii.Bool(true),
		},
		Rules: []interface{}{
			&awswafv2.CfnWebACL_RuleProperty{
				Name:     jsii.String("rate-limit-per-ip"),
				Priority: jsii.Number(0),
				Action: &awswafv2.CfnWebACL_RuleActionProperty{
					Block: &awswafv2.CfnWebACL_BlockActionProperty{},
				},
				Statement: &awswafv2.CfnWebACL_StatementProperty{
					RateBasedStatement: &awswafv2.CfnWebACL_RateBasedStatementProperty{
						AggregateKeyType: jsii.String("IP"),
						Limit:            jsii.Number(float64(cfg.RateLimit)),
					},
				},
				VisibilityConfig: &awswafv2.CfnWebACL_VisibilityConfigProperty{
					CloudWatchMetricsEnabled: jsii.Bool(true),
					MetricName:               jsii.String("rate-limit-per-ip"),
					SampledRequestsEnabled:   jsii.Bool(true),
				},
			},
		},
	})

	awswafv2.NewCfnWebACLAssociation(stack, jsii.String("EdgeAclAssociation"), &awswafv2.CfnWebACLAssociationProps{
		ResourceArn: api.DeploymentStage().StageArn(),
		WebAclArn:   acl.AttrArn(),
	})

	return acl
}
