// Command stack-outputs prints the CloudFormation outputs of a deployed
// stack, one KEY=VALUE pair per line. It is the companion to the web stack:
// after a pipeline run, operators use it to grab the site URL, bucket name
// and distribution ID without opening the console.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"go.uber.org/zap"
)

func main() {
	stackName := flag.String("stack", "AiFrontend-Web", "CloudFormation stack name")
	region := flag.String("region", "us-east-1", "AWS region the stack lives in")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Sugar()

	sess, err := session.NewSession(&aws.Config{Region: region})
	if err != nil {
		log.Fatalw("creating session", "error", err)
	}

	outputs, err := stackOutputs(cloudformation.New(sess), *stackName)
	if err != nil {
		log.Fatalw("describing stack", "stack", *stackName, "region", *region, "error", err)
	}
	if len(outputs) == 0 {
		log.Warnw("stack has no outputs", "stack", *stackName)
		return
	}

	keys := make([]string, 0, len(outputs))
	for k := range outputs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s=%s\n", k, outputs[k])
	}
}

func stackOutputs(cfn *cloudformation.CloudFormation, stackName string) (map[string]string, error) {
	resp, err := cfn.DescribeStacks(&cloudformation.DescribeStacksInput{
		StackName: aws.String(stackName),
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Stacks) == 0 {
		return nil, fmt.Errorf("stack %q not found", stackName)
	}

	outputs := make(map[string]string, len(resp.Stacks[0].Outputs))
	for _, o := range resp.Stacks[0].Outputs {
		outputs[aws.StringValue(o.OutputKey)] = aws.StringValue(o.OutputValue)
	}
	return outputs, nil
}
