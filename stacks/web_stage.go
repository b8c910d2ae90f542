package stacks

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/baps-dev/ai-frontend-infra/config"
	"github.com/baps-dev/ai-frontend-infra/lib/cert/provider"
)

type WebStageProps struct {
	awscdk.StageProps
	Constants config.Constants
	Certs     provider.CertProvider
}

// WebStage wraps the WebStack as a deployable pipeline unit and re-exposes
// the stack whose outputs the publish step consumes.
type WebStage struct {
	awscdk.Stage
	Web *WebStack
}

func NewWebStage(scope constructs.Construct, id string, props *WebStageProps) *WebStage {
	stage := awscdk.NewStage(scope, jsii.String(id), &props.StageProps)

	web := NewWebStack(stage, config.WithStackSuffix(stage, "AiFrontend-Web"), &WebStackProps{
		StackProps: awscdk.StackProps{
			Description: jsii.String("Static frontend serving infrastructure: bucket, distribution, web ACL, DNS"),
		},
		Constants: props.Constants,
		Certs:     props.Certs,
	})

	return &WebStage{Stage: stage, Web: web}
}
