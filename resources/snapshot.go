package resources

import "context"

// SnapshotDriver abstracts the creation or reuse of an EBS snapshot in a
// single region
//
//counterfeiter:generate . SnapshotDriver
type SnapshotDriver interface {
	EnsureSnapshot(context.Context, SnapshotDriverConfig) (Snapshot, error)
}

// SnapshotCopyDriver replicates a snapshot into the driver's region from a
// source region
//
//counterfeiter:generate . SnapshotCopyDriver
type SnapshotCopyDriver interface {
	EnsureCopy(context.Context, SnapshotCopyDriverConfig) (Snapshot, error)
}

// Snapshot represents an EBS snapshot which can be used to register an image
type Snapshot struct {
	ID     string
	Region string
	// Reused is true when the snapshot already existed in the region
	Reused bool
}

// SnapshotDriverConfig describes the snapshot to look up by name or import
// from the stored object
type SnapshotDriverConfig struct {
	// Name is the fingerprint-derived snapshot name used as the tag:Name
	// lookup key
	Name       string
	BucketName string
	ObjectKey  string
	Tags       map[string]string
}

// SnapshotCopyDriverConfig describes a cross-region snapshot copy
type SnapshotCopyDriverConfig struct {
	Name             string
	SourceRegion     string
	SourceSnapshotID string
	Tags             map[string]string
}
