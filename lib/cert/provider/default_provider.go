package provider

import (
	"fmt"
	"strings"

	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// arnProvider references a pre-issued ACM certificate by ARN.
type arnProvider struct {
	arn string
}

// NewFromArn returns a CertProvider backed by an existing certificate.
// The ARN's region segment must be EdgeRegion: the certificate is consumed
// by a CloudFront distribution and its control plane only accepts edge
// certificates from there.
func NewFromArn(arn string) (CertProvider, error) {
	prefix := fmt.Sprintf("arn:aws:acm:%s:", EdgeRegion)
	if !strings.HasPrefix(arn, prefix) {
		return nil, fmt.Errorf("certificate %q is not in %s: CloudFront viewer certificates must be issued there", arn, EdgeRegion)
	}
	return &arnProvider{arn: arn}, nil
}

// Get imports the certificate into the given scope. No resource is created;
// a lookup of a missing ARN fails at deploy time, reported by the provider.
func (p *arnProvider) Get(scope constructs.Construct, id string) awscertificatemanager.ICertificate {
	return awscertificatemanager.Certificate_FromCertificateArn(scope, jsii.String(id), jsii.String(p.arn))
}
