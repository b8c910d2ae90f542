// Package cdklogger routes synth-time diagnostics both into the CDK
// construct metadata (so `cdk synth`/`cdk diff` surface them next to the
// resource that produced them) and onto the console via zap.
package cdklogger

import (
	"fmt"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"go.uber.org/zap"
)

var console = newConsole()

func newConsole() *zap.SugaredLogger {
	l, err := zap.NewDevelopment(zap.AddCallerSkip(2))
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return l.Sugar()
}

// annotate prefixes the message with the construct's tree path so annotations
// emitted on the same scope stay distinguishable in synth output.
func annotate(scope constructs.Construct, format string, args ...interface{}) (string, awscdk.Annotations) {
	message := fmt.Sprintf(format, args...)
	if path := scope.Node().Path(); path != nil && *path != "" {
		message = fmt.Sprintf("[%s] %s", *path, message)
	}
	return message, awscdk.Annotations_Of(scope)
}

// LogInfo adds an INFO level message to the construct's metadata.
func LogInfo(scope constructs.Construct, format string, args ...interface{}) {
	msg, ann := annotate(scope, format, args...)
	ann.AddInfo(jsii.String(msg))
	console.Info(msg)
}

// LogWarning adds a WARNING level message to the construct's metadata.
// Warnings fail synthesis under `cdk synth --strict`.
func LogWarning(scope constructs.Construct, format string, args ...interface{}) {
	msg, ann := annotate(scope, format, args...)
	ann.AddWarning(jsii.String(msg))
	console.Warn(msg)
}

// LogError adds an ERROR level message to the construct's metadata.
// Any error annotation makes synthesis fail.
func LogError(scope constructs.Construct, format string, args ...interface{}) {
	msg, ann := annotate(scope, format, args...)
	ann.AddError(jsii.String(msg))
	console.Error(msg)
}
