package renderer

// TemplateName represents a known template filename.
type TemplateName string

// Constants for known template filenames.
const (
	TplStageArtifacts TemplateName = "stage_artifacts.sh.tmpl"
	TplPublishSite    TemplateName = "publish_site.sh.tmpl"
)

// StagingDir is the normalized directory the frontend build step exposes as
// its primary output.
const StagingDir = "site"

// Environment variable names the publish step receives from the deploy
// stage's stack outputs.
const (
	EnvBucketName     = "BUCKET_NAME"
	EnvDistributionID = "DISTRIBUTION_ID"
)

// BuildOutputCandidates are the conventional frontend build output
// directories, probed in order; every existing one is copied into the
// staging directory.
func BuildOutputCandidates() []string {
	return []string{"out", "dist", "build"}
}

// StageArtifactsData holds the data required by TplStageArtifacts.
type StageArtifactsData struct {
	Candidates []string
	Dest       string
}

// DefaultStageArtifactsData wires the conventional candidates and staging
// directory together.
func DefaultStageArtifactsData() StageArtifactsData {
	return StageArtifactsData{
		Candidates: BuildOutputCandidates(),
		Dest:       StagingDir,
	}
}

// PublishSiteData holds the data required by TplPublishSite. The Ref fields
// are shell expansions of the variables CodeBuild injects from the deploy
// stage outputs.
type PublishSiteData struct {
	BucketRef       string
	DistributionRef string
}

// DefaultPublishSiteData references the standard output-variable names.
func DefaultPublishSiteData() PublishSiteData {
	return PublishSiteData{
		BucketRef:       "${" + EnvBucketName + "}",
		DistributionRef: "${" + EnvDistributionID + "}",
	}
}
