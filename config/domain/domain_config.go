package domain

import (
	"strings"

	jsii "github.com/aws/jsii-runtime-go"
)

// StageType defines allowed deployment stages.
type StageType string

const (
	// StageProd is the production stage
	StageProd StageType = "prod"
	// StageDev is the development stage
	StageDev StageType = "dev"
)

// Spec encapsulates the stage, the leaf subdomain of the site, and (for dev)
// a mandatory DevPrefix. It builds FQDNs by prepending labels before the
// hosted zone's base domain, e.g. Sub "ai" + Base "baps.org" → "ai.baps.org",
// and "ai.pr42.baps.org" for a dev deployment prefixed "pr42".
type Spec struct {
	Base      string // hosted zone apex, e.g. "baps.org"
	Sub       string // optional leaf subdomain
	Stage     StageType
	DevPrefix string // required when Stage==StageDev
}

// fqdnParts returns labels in order: Sub (if any), DevPrefix (dev only), Base.
func (s Spec) fqdnParts() []string {
	if s.Base == "" {
		panic("Spec.Base (hosted zone name) must be set")
	}
	if s.Stage == StageProd && s.DevPrefix != "" {
		panic("DevPrefix must be empty for prod stages")
	}
	parts := []string{}
	if s.Sub != "" {
		parts = append(parts, s.Sub)
	}
	if s.Stage == StageDev {
		if s.DevPrefix == "" {
			panic("dev deployments must set Spec.DevPrefix")
		}
		parts = append(parts, s.DevPrefix)
	}
	return append(parts, s.Base)
}

// FQDN returns the fully-qualified domain by joining fqdnParts with a dot.
func (s Spec) FQDN() *string {
	return jsii.String(strings.Join(s.fqdnParts(), "."))
}

// Subdomain returns a fully-qualified subdomain for the given label,
// prepended to the Spec's FQDN parts.
func (s Spec) Subdomain(label string) *string {
	parts := append([]string{label}, s.fqdnParts()...)
	return jsii.String(strings.Join(parts, "."))
}
