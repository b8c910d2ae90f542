package stacks

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscodebuild"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscodepipeline"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsiam"
	"github.com/aws/aws-cdk-go/awscdk/v2/awslogs"
	"github.com/aws/aws-cdk-go/awscdk/v2/pipelines"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/baps-dev/ai-frontend-infra/config"
	"github.com/baps-dev/ai-frontend-infra/lib/cdklogger"
	"github.com/baps-dev/ai-frontend-infra/lib/cert/provider"
	"github.com/baps-dev/ai-frontend-infra/scripts/renderer"
)

type PipelineStackProps struct {
	awscdk.StackProps
	Constants config.Constants
	Certs     provider.CertProvider
}

// NewPipelineStack declares the two-source deployment pipeline: synthesize
// this repository, deploy the web stack, and around that deploy stage build
// the frontend (pre) and publish it into the provisioned bucket (post).
func NewPipelineStack(scope constructs.Construct, id string, props *PipelineStackProps) awscdk.Stack {
	stack := awscdk.NewStack(scope, jsii.String(id), &props.StackProps)
	c := props.Constants

	infraSource := pipelines.CodePipelineSource_Connection(
		jsii.String(c.InfraRepo), jsii.String(c.InfraBranch),
		&pipelines.ConnectionSourceOptions{ConnectionArn: jsii.String(c.ConnectionArn)},
	)
	frontendSource := pipelines.CodePipelineSource_Connection(
		jsii.String(c.FrontendRepo), jsii.String(c.FrontendBranch),
		&pipelines.ConnectionSourceOptions{ConnectionArn: jsii.String(c.ConnectionArn)},
	)

	logGroup := awslogs.NewLogGroup(stack, jsii.String("BuildLogs"), &awslogs.LogGroupProps{
		Retention:     awslogs.RetentionDays_ONE_MONTH,
		RemovalPolicy: awscdk.RemovalPolicy_DESTROY,
	})

	// The synth worker only reads deployment secrets; everything else it
	// needs ships with the source.
	synth := pipelines.NewCodeBuildStep(jsii.String("Synth"), &pipelines.CodeBuildStepProps{
		Input: infraSource,
		Commands: jsii.Strings(
			"npm install -g aws-cdk",
			"go mod download",
			"cdk synth",
		),
		RolePolicyStatements: &[]awsiam.PolicyStatement{
			awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
				Actions:   jsii.Strings("secretsmanager:GetSecretValue"),
				Resources: jsii.Strings(fmt.Sprintf("arn:aws:secretsmanager:%s:%s:secret:ai-frontend/*", c.Region, c.Account)),
			}),
		},
	})

	pipeline := pipelines.NewCodePipeline(stack, jsii.String("Pipeline"), &pipelines.CodePipelineProps{
		PipelineName: jsii.String(c.PipelineName),
		Synth:        synth,
		CodeBuildDefaults: &pipelines.CodeBuildOptions{
			BuildEnvironment: &awscodebuild.BuildEnvironment{
				BuildImage:  awscodebuild.LinuxBuildImage_STANDARD_7_0(),
				ComputeType: awscodebuild.ComputeType_SMALL,
			},
			Logging: &awscodebuild.LoggingOptions{
				CloudWatch: &awscodebuild.CloudWatchLoggingOptions{
					LogGroup: logGroup,
				},
			},
		},
	})

	webStage := NewWebStage(stack, "Web", &WebStageProps{
		StageProps: awscdk.StageProps{Env: props.StackProps.Env},
		Constants:  c,
		Certs:      props.Certs,
	})

	// Build the frontend before the deploy so a broken build never touches
	// infrastructure. The staging script probes the conventional output
	// directories and normalizes them into one primary output.
	build := pipelines.NewCodeBuildStep(jsii.String("BuildFrontend"), &pipelines.CodeBuildStepProps{
		Input: frontendSource,
		Commands: jsii.Strings(
			"npm ci",
			"npm run build",
			renderer.MustRender(renderer.TplStageArtifacts, renderer.DefaultStageArtifactsData()),
		),
		PrimaryOutputDirectory: jsii.String(renderer.StagingDir),
		RolePolicyStatements: &[]awsiam.PolicyStatement{
			awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
				Actions:   jsii.Strings("ssm:GetParameter", "ssm:GetParameters"),
				Resources: jsii.Strings(fmt.Sprintf("arn:aws:ssm:%s:%s:parameter/ai-frontend/*", c.Region, c.Account)),
			}),
		},
	})

	// Publish runs after the deploy because its bucket name and
	// distribution ID are physical outputs of the web stack; the pipeline
	// engine cannot order it any earlier.
	publish := pipelines.NewCodeBuildStep(jsii.String("PublishSite"), &pipelines.CodeBuildStepProps{
		Input: build.PrimaryOutput(),
		EnvFromCfnOutputs: &map[string]awscdk.CfnOutput{
			renderer.EnvBucketName:     webStage.Web.BucketName,
			renderer.EnvDistributionID: webStage.Web.DistributionID,
		},
		Commands: jsii.Strings(
			renderer.MustRender(renderer.TplPublishSite, renderer.DefaultPublishSiteData()),
		),
		RolePolicyStatements: &[]awsiam.PolicyStatement{
			awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
				Actions: jsii.Strings(
					"s3:ListBucket",
					"s3:GetObject",
					"s3:PutObject",
					"s3:DeleteObject",
				),
				Resources: jsii.Strings(
					fmt.Sprintf("arn:aws:s3:::%s", c.BucketName()),
					fmt.Sprintf("arn:aws:s3:::%s/*", c.BucketName()),
				),
			}),
			awsiam.NewPolicyStatement(&awsiam.PolicyStatementProps{
				Actions:   jsii.Strings("cloudfront:CreateInvalidation"),
				Resources: jsii.Strings(fmt.Sprintf("arn:aws:cloudfront::%s:distribution/*", c.Account)),
			}),
		},
	})

	pipeline.AddStage(webStage.Stage, &pipelines.AddStageOpts{
		Pre:  &[]pipelines.Step{build},
		Post: &[]pipelines.Step{publish},
	})

	// Constructs are only materialized by BuildPipeline; the V2 engine is
	// set through an escape hatch because the pipelines module does not
	// expose it.
	pipeline.BuildPipeline()
	cfnPipeline := pipeline.Pipeline().Node().DefaultChild().(awscodepipeline.CfnPipeline)
	cfnPipeline.AddPropertyOverride(jsii.String("PipelineType"), jsii.String("V2"))

	awscdk.NewCfnOutput(stack, jsii.String("PipelineConsoleUrl"), &awscdk.CfnOutputProps{
		Value: jsii.String(fmt.Sprintf(
			"https://%s.console.aws.amazon.com/codesuite/codepipeline/pipelines/%s/view?region=%s",
			c.Region, c.PipelineName, c.Region)),
		Description: jsii.String("CodePipeline console URL"),
	})

	cdklogger.LogInfo(stack, "Pipeline %s: %s@%s (infra) + %s@%s (frontend)",
		c.PipelineName, c.InfraRepo, c.InfraBranch, c.FrontendRepo, c.FrontendBranch)

	return stack
}
