package domain

import (
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/constructs-go/constructs/v10"
	jsii "github.com/aws/jsii-runtime-go"

	"github.com/baps-dev/ai-frontend-infra/lib/cdklogger"
	"github.com/baps-dev/ai-frontend-infra/lib/cert/provider"
)

// HostedDomainProps holds inputs for creating a HostedDomain construct.
type HostedDomainProps struct {
	Spec     Spec
	ZoneID   string // Route53 hosted zone ID for Spec.Base
	ZoneName string // hosted zone name, must equal Spec.Base
	Certs    provider.CertProvider
}

// HostedDomain binds a Route53 hosted zone reference and the edge TLS
// certificate for a given FQDN. It exposes FQDN and DomainName tokens for
// other constructs to consume.
type HostedDomain struct {
	constructs.Construct
	Zone       awsroute53.IHostedZone
	Cert       awscertificatemanager.ICertificate
	FQDN       string
	DomainName *string // DomainName token for callsites needing a *string
}

// NewHostedDomain references the hosted zone by its attributes (no context
// lookup, the zone ID is part of the configuration constants) and resolves
// the certificate through the given provider.
func NewHostedDomain(scope constructs.Construct, id string, props *HostedDomainProps) *HostedDomain {
	hdConstruct := constructs.NewConstruct(scope, jsii.String(id))
	hd := &HostedDomain{Construct: hdConstruct}

	hd.FQDN = *props.Spec.FQDN()
	hd.DomainName = jsii.String(hd.FQDN)

	hd.Zone = awsroute53.HostedZone_FromHostedZoneAttributes(hdConstruct, jsii.String("Zone"), &awsroute53.HostedZoneAttributes{
		HostedZoneId: jsii.String(props.ZoneID),
		ZoneName:     jsii.String(props.ZoneName),
	})

	cdklogger.LogInfo(hdConstruct, "Hosted domain configured. FQDN: %s, Zone: %s", hd.FQDN, props.ZoneName)

	hd.Cert = props.Certs.Get(hdConstruct, "Cert")

	return hd
}

// AddAliasRecord creates an A record in the hosted zone pointing the
// domain's FQDN to the given alias target.
func (h *HostedDomain) AddAliasRecord(id string, target awsroute53.RecordTarget) awsroute53.ARecord {
	return awsroute53.NewARecord(h.Construct, jsii.String(id), &awsroute53.ARecordProps{
		Zone:       h.Zone,
		RecordName: jsii.String(h.FQDN),
		Target:     target,
	})
}
