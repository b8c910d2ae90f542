// Package staticsite declares the serving topology for the built frontend:
// a private versioned bucket fronted by a CloudFront distribution reached
// through an origin access control, plus the DNS alias for the site domain.
package staticsite

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfrontorigins"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53targets"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	"github.com/baps-dev/ai-frontend-infra/config/domain"
)

// Non-current bucket object versions are kept this long before expiring.
// Current versions are never expired; the bucket mirrors the latest build.
const noncurrentVersionRetentionDays = 30

// SPA fallback responses are cached briefly so a fixed 404 propagates fast.
const errorResponseTTLMinutes = 5

// StaticSiteProps holds inputs for the StaticSite construct.
type StaticSiteProps struct {
	// Domain supplies the zone, the edge certificate and the site FQDN.
	Domain *domain.HostedDomain
	// BucketName is the derived physical name (prefix-account-region).
	BucketName string
	// WebACLArn associates a CLOUDFRONT-scoped web ACL with the
	// distribution. Empty means no firewall attached.
	WebACLArn *string
}

// StaticSite wires bucket → distribution → alias record and exposes the
// pieces other constructs report on.
type StaticSite struct {
	constructs.Construct
	Bucket       awss3.IBucket
	Distribution awscloudfront.Distribution
	AliasRecord  awsroute53.ARecord
}

// NewStaticSite declares the resource graph. The distribution is created
// administratively disabled: traffic is only served after an explicit
// follow-up toggle of Enabled, a deliberate safety gate for new
// environments.
func NewStaticSite(scope constructs.Construct, id string, props *StaticSiteProps) *StaticSite {
	siteConstruct := constructs.NewConstruct(scope, jsii.String(id))
	site := &StaticSite{Construct: siteConstruct}

	// The bucket holds the only copy of the published site, so it is
	// retained even through a stack teardown. Every publish run is a full
	// mirror; versioning plus the noncurrent expiry window keeps a month
	// of rollback headroom without unbounded growth.
	site.Bucket = awss3.NewBucket(siteConstruct, jsii.String("Bucket"), &awss3.BucketProps{
		BucketName:        jsii.String(props.BucketName),
		Versioned:         jsii.Bool(true),
		Encryption:        awss3.BucketEncryption_S3_MANAGED,
		BlockPublicAccess: awss3.BlockPublicAccess_BLOCK_ALL(),
		EnforceSSL:        jsii.Bool(true),
		RemovalPolicy:     awscdk.RemovalPolicy_RETAIN,
		LifecycleRules: &[]*awss3.LifecycleRule{
			{
				Id:                          jsii.String("expire-noncurrent"),
				NoncurrentVersionExpiration: awscdk.Duration_Days(jsii.Number(noncurrentVersionRetentionDays)),
			},
		},
	})

	// Origin access control is the only path into the bucket; direct
	// object URLs stay access-denied.
	origin := awscloudfrontorigins.S3BucketOrigin_WithOriginAccessControl(site.Bucket, nil)

	site.Distribution = awscloudfront.NewDistribution(siteConstruct, jsii.String("Distribution"), &awscloudfront.DistributionProps{
		DefaultBehavior: &awscloudfront.BehaviorOptions{
			Origin:                origin,
			ViewerProtocolPolicy:  awscloudfront.ViewerProtocolPolicy_REDIRECT_TO_HTTPS,
			AllowedMethods:        awscloudfront.AllowedMethods_ALLOW_GET_HEAD_OPTIONS(),
			CachedMethods:         awscloudfront.CachedMethods_CACHE_GET_HEAD_OPTIONS(),
			Compress:              jsii.Bool(true),
			CachePolicy:           awscloudfront.CachePolicy_CACHING_OPTIMIZED(),
			ResponseHeadersPolicy: awscloudfront.ResponseHeadersPolicy_SECURITY_HEADERS(),
		},
		DefaultRootObject: jsii.String("index.html"),
		DomainNames:       &[]*string{props.Domain.DomainName},
		Certificate:       props.Domain.Cert,
		// The frontend routes client-side; rewrite bucket misses to the
		// app shell so deep links resolve without server-side awareness.
		ErrorResponses: &[]*awscloudfront.ErrorResponse{
			spaFallback(403),
			spaFallback(404),
		},
		PriceClass: awscloudfront.PriceClass_PRICE_CLASS_ALL,
		WebAclId:   props.WebACLArn,
		// Provisioned but not yet serving; flip explicitly once the first
		// publish has landed.
		Enabled: jsii.Bool(false),
	})

	site.AliasRecord = props.Domain.AddAliasRecord("SiteAlias",
		awsroute53.RecordTarget_FromAlias(awsroute53targets.NewCloudFrontTarget(site.Distribution)))

	return site
}

func spaFallback(status float64) *awscloudfront.ErrorResponse {
	return &awscloudfront.ErrorResponse{
		HttpStatus:         jsii.Number(status),
		ResponseHttpStatus: jsii.Number(200),
		ResponsePagePath:   jsii.String("/index.html"),
		Ttl:                awscdk.Duration_Minutes(jsii.Number(errorResponseTTLMinutes)),
	}
}
