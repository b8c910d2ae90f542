package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureToml = `
account          = "835841263983"
region           = "us-east-1"
hosted_zone_id   = "Z04921873MPS94NHYB1RC"
hosted_zone_name = "baps.org"
site_sub         = "ai"
certificate_arn  = "arn:aws:acm:us-east-1:835841263983:certificate/5f1a6d29-8e3b-4c7d-9f02-b6e4a1d83c55"
connection_arn   = "arn:aws:codeconnections:us-east-1:835841263983:connection/2b9c1e04-7a5f-4d36-8c21-f08d94ae6b17"
infra_repo       = "baps-dev/ai-frontend-infra"
infra_branch     = "main"
frontend_repo    = "baps-dev/ai-frontend"
frontend_branch  = "main"
pipeline_name    = "ai-frontend-pipeline"
bucket_prefix    = "ai-frontend-web"
web_acl_name     = "ai-frontend-edge-acl"
`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConstantsFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConstants(t *testing.T) {
	c, err := LoadConstants(writeFixture(t, fixtureToml))
	require.NoError(t, err)

	assert.Equal(t, "ai.baps.org", c.SiteFQDN())
	assert.Equal(t, "ai-frontend-web-835841263983-us-east-1", c.BucketName())
	assert.Equal(t, "baps-dev/ai-frontend", c.FrontendRepo)
}

func TestLoadConstants_EnvOverride(t *testing.T) {
	t.Setenv("FRONTEND_BRANCH", "release")

	c, err := LoadConstants(writeFixture(t, fixtureToml))
	require.NoError(t, err)
	assert.Equal(t, "release", c.FrontendBranch)
}

func TestLoadConstants_MissingField(t *testing.T) {
	// Drop the certificate line; validation must reject the table.
	broken := `
account          = "835841263983"
region           = "us-east-1"
hosted_zone_id   = "Z04921873MPS94NHYB1RC"
hosted_zone_name = "baps.org"
site_sub         = "ai"
connection_arn   = "arn:aws:codeconnections:us-east-1:835841263983:connection/2b9c1e04"
infra_repo       = "baps-dev/ai-frontend-infra"
infra_branch     = "main"
frontend_repo    = "baps-dev/ai-frontend"
frontend_branch  = "main"
pipeline_name    = "ai-frontend-pipeline"
bucket_prefix    = "ai-frontend-web"
web_acl_name     = "ai-frontend-edge-acl"
`
	_, err := LoadConstants(writeFixture(t, broken))
	require.Error(t, err)
	require.ErrorContains(t, err, "CertificateArn")
}

func TestLoadConstants_RejectsForeignArn(t *testing.T) {
	t.Setenv("CERTIFICATE_ARN", "not-an-arn")

	_, err := LoadConstants(writeFixture(t, fixtureToml))
	require.Error(t, err)
}
