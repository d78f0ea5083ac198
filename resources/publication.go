package resources

import "context"

// PublicationDriver abstracts the post-creation visibility and sharing
// operations on an image and its backing snapshot
//
//counterfeiter:generate . PublicationDriver
type PublicationDriver interface {
	// MakePublic grants the launch permission group "all" on the image and
	// the createVolumePermission group "all" on its root snapshot. One-way;
	// nothing is ever made private again.
	MakePublic(context.Context, Image) error
	// Share grants launch permissions to the given targets. Re-granting an
	// already-granted target is a platform-level no-op.
	Share(context.Context, Image, ShareTargets) error
}

// ShareTargets are the resolved launch-permission grantees for the running
// partition
type ShareTargets struct {
	AccountIDs             []string
	OrganizationArns       []string
	OrganizationalUnitArns []string
}

// Empty reports whether there is nothing to share with
func (s ShareTargets) Empty() bool {
	return len(s.AccountIDs) == 0 && len(s.OrganizationArns) == 0 && len(s.OrganizationalUnitArns) == 0
}
