package resources

import "context"

// MarketplaceDriver abstracts submitting a new AMI product version to the
// marketplace catalog
//
//counterfeiter:generate . MarketplaceDriver
type MarketplaceDriver interface {
	// SubmitVersion starts a change set for the new version and waits for
	// the submission to be accepted. Submitting an already-existing version
	// title is a no-op.
	SubmitVersion(context.Context, MarketplaceSubmission) error
}

// MarketplaceSecurityGroup describes one ingress rule recommended for the
// product
type MarketplaceSecurityGroup struct {
	FromPort   int64
	IPProtocol string
	IPRanges   []string
	ToPort     int64
}

// MarketplaceSubmission describes a new AMI product version
type MarketplaceSubmission struct {
	ImageID                 string
	EntityID                string
	AccessRoleArn           string
	VersionTitle            string
	ReleaseNotes            string
	UserName                string
	ScanningPort            int64
	OSName                  string
	OSVersion               string
	UsageInstructions       string
	RecommendedInstanceType string
	SecurityGroups          []MarketplaceSecurityGroup
	Tags                    map[string]string
}
