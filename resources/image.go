package resources

import "context"

// ImageDriver abstracts registration and lookup of AMIs in a single region
//
//counterfeiter:generate . ImageDriver
type ImageDriver interface {
	// EnsureImage registers the image when absent and returns the existing
	// one untouched when present. Configuration drift on an existing image
	// is deliberately not reconciled.
	EnsureImage(context.Context, ImageDriverConfig) (Image, error)
	// FindImage looks the image up by its exact name. The second return
	// value is false when no image exists.
	FindImage(ctx context.Context, name string) (Image, bool, error)
	DeregisterImage(ctx context.Context, image Image) error
}

// Image represents a registered AMI
type Image struct {
	ID     string
	Region string
	// SnapshotID is the snapshot backing the image's root device, when known
	SnapshotID string
	Public     bool
	// Reused is true when the image already existed and registration was
	// skipped
	Reused bool
}

// ImageDriverConfig describes the image to look up or register
type ImageDriverConfig struct {
	Name            string
	Description     string
	Architecture    string
	BootMode        string
	SnapshotID      string
	RootDeviceName  string
	VolumeType      string
	VolumeSizeGB    int64
	BillingProducts []string
	TpmSupport      string
	ImdsSupport     string
	UefiData        string
	Tags            map[string]string
}
