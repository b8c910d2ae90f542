package utils

import (
	"os"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"
)

// CdkEnv resolves the AWS environment (account+region) a stack deploys into.
// The configured constants are the baseline; CDK_DEPLOY_* variables override
// them, and CDK_DEFAULT_* fills whatever is still missing (the values the CDK
// CLI derives from the active credentials).
// See https://docs.aws.amazon.com/cdk/latest/guide/environments.html
func CdkEnv(account, region string) *awscdk.Environment {
	if v := os.Getenv("CDK_DEPLOY_ACCOUNT"); v != "" {
		account = v
	}
	if v := os.Getenv("CDK_DEPLOY_REGION"); v != "" {
		region = v
	}
	if account == "" {
		account = os.Getenv("CDK_DEFAULT_ACCOUNT")
	}
	if region == "" {
		region = os.Getenv("CDK_DEFAULT_REGION")
	}

	return &awscdk.Environment{
		Account: jsii.String(account),
		Region:  jsii.String(region),
	}
}
