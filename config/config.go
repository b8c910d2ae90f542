package config

import (
	"fmt"

	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/baps-dev/ai-frontend-infra/config/domain"
)

// WithStackSuffix appends the 'stackSuffix' CDK context value to a stack
// name, letting several copies of the stacks coexist in one account
// (e.g. `cdk deploy -c stackSuffix=pr42`).
func WithStackSuffix(scope constructs.Construct, name string) string {
	if v, ok := scope.Node().TryGetContext(jsii.String("stackSuffix")).(string); ok && v != "" {
		return name + "-" + v
	}
	return name
}

// GetStage reads the deployment stage from CDK context. Absence means prod.
func GetStage(scope constructs.Construct) domain.StageType {
	raw := scope.Node().TryGetContext(jsii.String("stage"))
	if raw == nil {
		return domain.StageProd
	}
	s, ok := raw.(string)
	if !ok {
		panic(fmt.Sprintf("context \"stage\" must be a string, got %T", raw))
	}
	switch domain.StageType(s) {
	case domain.StageProd, domain.StageDev:
		return domain.StageType(s)
	}
	panic(fmt.Sprintf("invalid stage=%q - allowed: prod | dev", s))
}

// GetDevPrefix reads the dev domain prefix from CDK context. Required by
// domain.Spec when the stage is dev.
func GetDevPrefix(scope constructs.Construct) string {
	if v, ok := scope.Node().TryGetContext(jsii.String("devPrefix")).(string); ok {
		return v
	}
	return ""
}

// IsStandalone reports whether the web stack should also be declared
// directly on the app, outside the pipeline, for local diffing.
func IsStandalone(scope constructs.Construct) bool {
	switch v := scope.Node().TryGetContext(jsii.String("standalone")).(type) {
	case bool:
		return v
	case string:
		return v == "true"
	}
	return false
}
