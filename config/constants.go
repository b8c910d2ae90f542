package config

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"

	"github.com/baps-dev/ai-frontend-infra/lib/utils"
)

// ConstantsFile is the identifier table checked in at the repository root.
const ConstantsFile = "deploy.toml"

// Constants is the static identifier table consumed by both the web stack
// and the pipeline stack. It is loaded once per synthesis and injected into
// the stacks; nothing mutates it afterwards.
type Constants struct {
	Account string `toml:"account" env:"DEPLOY_ACCOUNT" validate:"required,numeric,len=12"`
	Region  string `toml:"region" env:"DEPLOY_REGION" validate:"required"`

	HostedZoneID   string `toml:"hosted_zone_id" env:"HOSTED_ZONE_ID" validate:"required"`
	HostedZoneName string `toml:"hosted_zone_name" env:"HOSTED_ZONE_NAME" validate:"required,fqdn"`
	// SiteSub is the leaf subdomain the site is served from, e.g. "ai"
	// under zone "baps.org" → ai.baps.org.
	SiteSub string `toml:"site_sub" env:"SITE_SUB" validate:"required,hostname"`

	// CertificateArn must reference a us-east-1 certificate; the cert
	// provider enforces that when the stacks are assembled.
	CertificateArn string `toml:"certificate_arn" env:"CERTIFICATE_ARN" validate:"required,startswith=arn:aws:acm:"`
	// ConnectionArn is the CodeStar connection authorizing source pulls.
	ConnectionArn string `toml:"connection_arn" env:"CONNECTION_ARN" validate:"required,startswith=arn:aws:"`

	InfraRepo      string `toml:"infra_repo" env:"INFRA_REPO" validate:"required,contains=/"`
	InfraBranch    string `toml:"infra_branch" env:"INFRA_BRANCH" validate:"required"`
	FrontendRepo   string `toml:"frontend_repo" env:"FRONTEND_REPO" validate:"required,contains=/"`
	FrontendBranch string `toml:"frontend_branch" env:"FRONTEND_BRANCH" validate:"required"`

	PipelineName string `toml:"pipeline_name" env:"PIPELINE_NAME" validate:"required"`
	BucketPrefix string `toml:"bucket_prefix" env:"BUCKET_PREFIX" validate:"required,lowercase"`
	WebACLName   string `toml:"web_acl_name" env:"WEB_ACL_NAME" validate:"required"`
}

// SiteFQDN is the custom domain the distribution serves, for prod stages.
// Dev stages derive their FQDN through domain.Spec instead.
func (c Constants) SiteFQDN() string {
	return c.SiteSub + "." + c.HostedZoneName
}

// BucketName derives the storage bucket name from the prefix, account and
// region, keeping it globally unique and recognizable in listings.
func (c Constants) BucketName() string {
	return fmt.Sprintf("%s-%s-%s", c.BucketPrefix, c.Account, c.Region)
}

// LoadConstants reads the identifier table: deploy.toml first, then
// environment variable overrides, then validation.
func LoadConstants(path string) (Constants, error) {
	var c Constants
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return c, fmt.Errorf("decoding %s: %w", path, err)
	}
	if err := env.Parse(&c); err != nil {
		return c, fmt.Errorf("applying env overrides: %w", err)
	}
	if err := validator.New().Struct(c); err != nil {
		return c, fmt.Errorf("validating %s: %w", path, err)
	}
	return c, nil
}

// MustLoadConstants locates deploy.toml at the repository root and panics on
// any load or validation failure: a bad identifier table is synth-time
// misuse, not a recoverable condition.
func MustLoadConstants() Constants {
	path := filepath.Join(utils.ProjectRootDir(), ConstantsFile)
	c, err := LoadConstants(path)
	if err != nil {
		panic(err)
	}
	return c
}
