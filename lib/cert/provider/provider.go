package provider

import (
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/constructs-go/constructs/v10"
)

// EdgeRegion is where CloudFront expects viewer certificates to live,
// regardless of the region the rest of the stack deploys into.
const EdgeRegion = "us-east-1"

// CertProvider resolves the TLS certificate bound to the CDN distribution.
type CertProvider interface {
	// Get returns the viewer certificate. Implementations must return a
	// certificate residing in EdgeRegion; CloudFront rejects anything else.
	Get(scope constructs.Construct, id string) awscertificatemanager.ICertificate
}
