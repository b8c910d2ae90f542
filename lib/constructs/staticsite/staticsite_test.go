package staticsite_test

import (
	"encoding/json"
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/assertions"
	"github.com/aws/jsii-runtime-go"
	"github.com/stretchr/testify/require"

	"github.com/baps-dev/ai-frontend-infra/config/domain"
	"github.com/baps-dev/ai-frontend-infra/lib/cert/provider"
	"github.com/baps-dev/ai-frontend-infra/lib/constructs/staticsite"
)

const testCertArn = "arn:aws:acm:us-east-1:123456789012:certificate/5f1a6d29-8e3b-4c7d-9f02-b6e4a1d83c55"

func synthSite(t *testing.T) assertions.Template {
	t.Helper()

	app := awscdk.NewApp(nil)
	stack := awscdk.NewStack(app, jsii.String("TestStack"), &awscdk.StackProps{
		Env: &awscdk.Environment{
			Account: jsii.String("123456789012"),
			Region:  jsii.String("us-east-1"),
		},
	})

	certs, err := provider.NewFromArn(testCertArn)
	require.NoError(t, err)

	hd := domain.NewHostedDomain(stack, "Domain", &domain.HostedDomainProps{
		Spec:     domain.Spec{Base: "baps.org", Sub: "ai", Stage: domain.StageProd},
		ZoneID:   "Z04921873MPS94NHYB1RC",
		ZoneName: "baps.org",
		Certs:    certs,
	})

	staticsite.NewStaticSite(stack, "Site", &staticsite.StaticSiteProps{
		Domain:     hd,
		BucketName: "ai-frontend-web-123456789012-us-east-1",
		WebACLArn:  jsii.String("arn:aws:wafv2:us-east-1:123456789012:global/webacl/test/0000"),
	})

	return assertions.Template_FromStack(stack, nil)
}

func TestStaticSite_BucketIsPrivateAndRetained(t *testing.T) {
	template := synthSite(t)

	template.HasResourceProperties(jsii.String("AWS::S3::Bucket"), map[string]interface{}{
		"BucketName": "ai-frontend-web-123456789012-us-east-1",
		"PublicAccessBlockConfiguration": map[string]interface{}{
			"BlockPublicAcls":       true,
			"BlockPublicPolicy":     true,
			"IgnorePublicAcls":      true,
			"RestrictPublicBuckets": true,
		},
		"VersioningConfiguration": map[string]interface{}{"Status": "Enabled"},
		"LifecycleConfiguration": map[string]interface{}{
			"Rules": []interface{}{
				map[string]interface{}{
					"Id":                          "expire-noncurrent",
					"NoncurrentVersionExpiration": map[string]interface{}{"NoncurrentDays": 30},
					"Status":                      "Enabled",
				},
			},
		},
	})

	// The bucket outlives stack teardown.
	template.HasResource(jsii.String("AWS::S3::Bucket"), map[string]interface{}{
		"DeletionPolicy":      "Retain",
		"UpdateReplacePolicy": "Retain",
	})
}

func TestStaticSite_OriginOnlyThroughAccessControl(t *testing.T) {
	template := synthSite(t)

	template.ResourceCountIs(jsii.String("AWS::CloudFront::OriginAccessControl"), jsii.Number(1))

	// The bucket policy must grant the CloudFront service principal, and
	// nothing grants public read.
	raw, err := json.Marshal(template.ToJSON())
	require.NoError(t, err)
	require.Contains(t, string(raw), "cloudfront.amazonaws.com")
	require.NotContains(t, string(raw), `"Principal":"*"`)
}

func TestStaticSite_DistributionDefaults(t *testing.T) {
	template := synthSite(t)

	template.HasResourceProperties(jsii.String("AWS::CloudFront::Distribution"), map[string]interface{}{
		"DistributionConfig": assertions.Match_ObjectLike(&map[string]interface{}{
			"Enabled":           false,
			"Aliases":           []interface{}{"ai.baps.org"},
			"DefaultRootObject": "index.html",
			"PriceClass":        "PriceClass_All",
			"WebACLId":          "arn:aws:wafv2:us-east-1:123456789012:global/webacl/test/0000",
			"DefaultCacheBehavior": assertions.Match_ObjectLike(&map[string]interface{}{
				"ViewerProtocolPolicy": "redirect-to-https",
				"AllowedMethods":       []interface{}{"GET", "HEAD", "OPTIONS"},
				"CachedMethods":        []interface{}{"GET", "HEAD", "OPTIONS"},
				"Compress":             true,
			}),
			"CustomErrorResponses": []interface{}{
				map[string]interface{}{
					"ErrorCode":          403,
					"ResponseCode":       200,
					"ResponsePagePath":   "/index.html",
					"ErrorCachingMinTTL": 300,
				},
				map[string]interface{}{
					"ErrorCode":          404,
					"ResponseCode":       200,
					"ResponsePagePath":   "/index.html",
					"ErrorCachingMinTTL": 300,
				},
			},
		}),
	})
}

func TestStaticSite_AliasTargetsDistribution(t *testing.T) {
	template := synthSite(t)

	dists := template.FindResources(jsii.String("AWS::CloudFront::Distribution"), nil)
	require.Len(t, *dists, 1)
	var distLogicalID string
	for id := range *dists {
		distLogicalID = id
	}

	// Referential consistency: the record's alias target is the
	// distribution's own domain name.
	template.HasResourceProperties(jsii.String("AWS::Route53::RecordSet"), map[string]interface{}{
		"Name":         "ai.baps.org.",
		"Type":         "A",
		"HostedZoneId": "Z04921873MPS94NHYB1RC",
		"AliasTarget": assertions.Match_ObjectLike(&map[string]interface{}{
			"DNSName": map[string]interface{}{
				"Fn::GetAtt": []interface{}{distLogicalID, "DomainName"},
			},
		}),
	})
}

func TestStaticSite_SynthIsIdempotent(t *testing.T) {
	first, err := json.Marshal(synthSite(t).ToJSON())
	require.NoError(t, err)
	second, err := json.Marshal(synthSite(t).ToJSON())
	require.NoError(t, err)

	require.JSONEq(t, string(first), string(second))
}
