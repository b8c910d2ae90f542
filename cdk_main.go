package main

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"

	"github.com/baps-dev/ai-frontend-infra/config"
	"github.com/baps-dev/ai-frontend-infra/lib/cert/provider"
	"github.com/baps-dev/ai-frontend-infra/lib/utils"
	"github.com/baps-dev/ai-frontend-infra/stacks"
)

func main() {
	defer jsii.Close()

	app := awscdk.NewApp(nil)

	constants := config.MustLoadConstants()

	certs, err := provider.NewFromArn(constants.CertificateArn)
	if err != nil {
		panic(fmt.Errorf("certificate provider: %w", err))
	}

	env := utils.CdkEnv(constants.Account, constants.Region)

	stacks.NewPipelineStack(app, config.WithStackSuffix(app, "AiFrontend-Pipeline"), &stacks.PipelineStackProps{
		StackProps: awscdk.StackProps{
			Env:         env,
			Description: jsii.String("Deployment pipeline for the ai.baps.org frontend"),
		},
		Constants: constants,
		Certs:     certs,
	})

	// Standalone mode exposes the web stack directly for `cdk deploy`
	// and `cdk diff` without routing through the pipeline.
	if config.IsStandalone(app) {
		stacks.NewWebStack(app, config.WithStackSuffix(app, "AiFrontend-Web"), &stacks.WebStackProps{
			StackProps: awscdk.StackProps{
				Env:         env,
				Description: jsii.String("Static frontend for ai.baps.org"),
			},
			Constants: constants,
			Certs:     certs,
		})
	}

	app.Synth(nil)
}
