package stacks_test

import (
	"encoding/json"
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/assertions"
	"github.com/aws/jsii-runtime-go"
	"github.com/stretchr/testify/require"

	"github.com/baps-dev/ai-frontend-infra/stacks"
)

func synthPipelineStack(t *testing.T) assertions.Template {
	t.Helper()

	app := awscdk.NewApp(nil)
	c := testConstants()

	stack := stacks.NewPipelineStack(app, "TestPipeline", &stacks.PipelineStackProps{
		StackProps: awscdk.StackProps{
			Env: &awscdk.Environment{
				Account: jsii.String(c.Account),
				Region:  jsii.String(c.Region),
			},
		},
		Constants: c,
		Certs:     testCertProvider(t, c),
	})

	return assertions.Template_FromStack(stack, nil)
}

func TestPipelineStack_EngineAndName(t *testing.T) {
	template := synthPipelineStack(t)

	template.ResourceCountIs(jsii.String("AWS::CodePipeline::Pipeline"), jsii.Number(1))
	template.HasResourceProperties(jsii.String("AWS::CodePipeline::Pipeline"), map[string]interface{}{
		"Name":         "ai-frontend-pipeline",
		"PipelineType": "V2",
	})
}

func TestPipelineStack_SourcesBothRepositories(t *testing.T) {
	template := synthPipelineStack(t)

	raw, err := json.Marshal(template.ToJSON())
	require.NoError(t, err)

	body := string(raw)
	require.Contains(t, body, "baps-dev/ai-frontend-infra")
	require.Contains(t, body, "baps-dev/ai-frontend")
}

func TestPipelineStack_BuildLogRetention(t *testing.T) {
	template := synthPipelineStack(t)

	template.HasResourceProperties(jsii.String("AWS::Logs::LogGroup"), map[string]interface{}{
		"RetentionInDays": 30,
	})
}

func TestPipelineStack_BuildProjects(t *testing.T) {
	template := synthPipelineStack(t)

	// Synth, BuildFrontend and PublishSite each back onto a project.
	projects := template.FindResources(jsii.String("AWS::CodeBuild::Project"), nil)
	require.GreaterOrEqual(t, len(*projects), 3)
}

func TestPipelineStack_PublishPolicyScopedToSiteBucket(t *testing.T) {
	template := synthPipelineStack(t)

	raw, err := json.Marshal(template.ToJSON())
	require.NoError(t, err)

	body := string(raw)
	require.Contains(t, body, "arn:aws:s3:::ai-frontend-web-123456789012-us-east-1")
	require.Contains(t, body, "cloudfront:CreateInvalidation")
}
