package stacks

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/baps-dev/ai-frontend-infra/config"
	"github.com/baps-dev/ai-frontend-infra/config/domain"
	"github.com/baps-dev/ai-frontend-infra/lib/cdklogger"
	"github.com/baps-dev/ai-frontend-infra/lib/cert/provider"
	"github.com/baps-dev/ai-frontend-infra/lib/constructs/edgefirewall"
	"github.com/baps-dev/ai-frontend-infra/lib/constructs/staticsite"
)

type WebStackProps struct {
	awscdk.StackProps
	Constants config.Constants
	Certs     provider.CertProvider
}

// WebStack declares the serving infrastructure for the static frontend:
// bucket → distribution (+ firewall association) → DNS record. Its outputs
// are exposed as typed fields so the pipeline consumes them without relying
// on stringly-typed export names.
type WebStack struct {
	awscdk.Stack

	BucketName         awscdk.CfnOutput
	DistributionID     awscdk.CfnOutput
	DistributionDomain awscdk.CfnOutput
	WebACLArn          awscdk.CfnOutput
	SiteURL            awscdk.CfnOutput
	CdnURL             awscdk.CfnOutput
}

func NewWebStack(scope constructs.Construct, id string, props *WebStackProps) *WebStack {
	stack := awscdk.NewStack(scope, jsii.String(id), &props.StackProps)
	c := props.Constants

	// CLOUDFRONT-scoped web ACLs are created through us-east-1 only;
	// a stack deployed elsewhere is rejected by the provider at apply time.
	if config.IsStackInSynthesis(stack) && c.Region != provider.EdgeRegion {
		cdklogger.LogWarning(stack, "stack region is %s but the CLOUDFRONT-scoped web ACL requires %s", c.Region, provider.EdgeRegion)
	}

	hd := domain.NewHostedDomain(stack, "Domain", &domain.HostedDomainProps{
		Spec: domain.Spec{
			Base:      c.HostedZoneName,
			Sub:       c.SiteSub,
			Stage:     config.GetStage(stack),
			DevPrefix: config.GetDevPrefix(stack),
		},
		ZoneID:   c.HostedZoneID,
		ZoneName: c.HostedZoneName,
		Certs:    props.Certs,
	})

	fw := edgefirewall.NewEdgeFirewall(stack, "Firewall", &edgefirewall.EdgeFirewallProps{
		Name: c.WebACLName,
	})

	site := staticsite.NewStaticSite(stack, "Site", &staticsite.StaticSiteProps{
		Domain:     hd,
		BucketName: c.BucketName(),
		WebACLArn:  fw.Arn(),
	})

	web := &WebStack{Stack: stack}
	web.BucketName = output(stack, "BucketName", site.Bucket.BucketName(), "Name of the site bucket")
	web.DistributionID = output(stack, "DistributionId", site.Distribution.DistributionId(), "CloudFront distribution ID")
	web.DistributionDomain = output(stack, "DistributionDomainName", site.Distribution.DistributionDomainName(), "CloudFront distribution domain name")
	web.WebACLArn = output(stack, "WebAclArn", fw.Arn(), "Web ACL ARN attached to the distribution")
	web.SiteURL = output(stack, "SiteUrl", jsii.String("https://"+hd.FQDN), "Site URL on the custom domain")
	web.CdnURL = output(stack, "CdnUrl", jsii.Sprintf("https://%s", *site.Distribution.DistributionDomainName()), "Site URL on the distribution domain")

	return web
}

func output(scope constructs.Construct, id string, value *string, description string) awscdk.CfnOutput {
	return awscdk.NewCfnOutput(scope, jsii.String(id), &awscdk.CfnOutputProps{
		Value:       value,
		Description: jsii.String(description),
	})
}
