package driverset

import (
	"context"
	"fmt"
	"io"
	"log"

	"ami-publisher/resources"
)

// NewDryRunFactory wraps a Factory so that every mutating driver call only
// logs what it would do and returns a synthetic resource. Read-only drivers
// (identity, region listing, image lookup) pass through to the wrapped
// factory, so a dry run still talks to the platform for lookups.
func NewDryRunFactory(logDest io.Writer, wrapped Factory) Factory {
	return &dryRunFactory{
		wrapped: wrapped,
		logger:  log.New(logDest, "DryRun ", log.LstdFlags),
	}
}

type dryRunFactory struct {
	wrapped Factory
	logger  *log.Logger
}

func (f *dryRunFactory) ForRegion(region string) StandardRegionDriverSet {
	return &dryRunRegionDriverSet{
		wrapped: f.wrapped.ForRegion(region),
		region:  region,
		logger:  f.logger,
	}
}

func (f *dryRunFactory) ObjectDriver() resources.ObjectDriver {
	return &dryRunObjectDriver{logger: f.logger}
}

func (f *dryRunFactory) MarketplaceDriver() resources.MarketplaceDriver {
	return &dryRunMarketplaceDriver{logger: f.logger}
}

func (f *dryRunFactory) IdentityDriver() resources.IdentityDriver {
	return f.wrapped.IdentityDriver()
}

func (f *dryRunFactory) RegionLister() resources.RegionLister {
	return f.wrapped.RegionLister()
}

type dryRunRegionDriverSet struct {
	wrapped StandardRegionDriverSet
	region  string
	logger  *log.Logger
}

func (s *dryRunRegionDriverSet) SnapshotDriver() resources.SnapshotDriver {
	return &dryRunSnapshotDriver{region: s.region, logger: s.logger}
}

func (s *dryRunRegionDriverSet) SnapshotCopyDriver() resources.SnapshotCopyDriver {
	return &dryRunSnapshotDriver{region: s.region, logger: s.logger}
}

func (s *dryRunRegionDriverSet) ImageDriver() resources.ImageDriver {
	return &dryRunImageDriver{wrapped: s.wrapped.ImageDriver(), region: s.region, logger: s.logger}
}

func (s *dryRunRegionDriverSet) PublicationDriver() resources.PublicationDriver {
	return &dryRunPublicationDriver{region: s.region, logger: s.logger}
}

func (s *dryRunRegionDriverSet) ParameterDriver() resources.ParameterDriver {
	return &dryRunParameterDriver{region: s.region, logger: s.logger}
}

func (s *dryRunRegionDriverSet) NotificationDriver() resources.NotificationDriver {
	return &dryRunNotificationDriver{region: s.region, logger: s.logger}
}

type dryRunObjectDriver struct {
	logger *log.Logger
}

func (d *dryRunObjectDriver) EnsureUploaded(ctx context.Context, driverConfig resources.ObjectDriverConfig) (resources.StoredObject, error) {
	d.logger.Printf("would upload %s to s3://%s/%s\n", driverConfig.LocalPath, driverConfig.BucketName, driverConfig.Key)
	return resources.StoredObject{Bucket: driverConfig.BucketName, Key: driverConfig.Key}, nil
}

type dryRunSnapshotDriver struct {
	region string
	logger *log.Logger
}

func (d *dryRunSnapshotDriver) EnsureSnapshot(ctx context.Context, driverConfig resources.SnapshotDriverConfig) (resources.Snapshot, error) {
	d.logger.Printf("would import snapshot '%s' from s3://%s/%s in region %s\n",
		driverConfig.Name, driverConfig.BucketName, driverConfig.ObjectKey, d.region)
	return resources.Snapshot{ID: syntheticID("snap", d.region), Region: d.region}, nil
}

func (d *dryRunSnapshotDriver) EnsureCopy(ctx context.Context, driverConfig resources.SnapshotCopyDriverConfig) (resources.Snapshot, error) {
	d.logger.Printf("would copy snapshot %s from %s to %s as '%s'\n",
		driverConfig.SourceSnapshotID, driverConfig.SourceRegion, d.region, driverConfig.Name)
	return resources.Snapshot{ID: syntheticID("snap", d.region), Region: d.region}, nil
}

type dryRunImageDriver struct {
	wrapped resources.ImageDriver
	region  string
	logger  *log.Logger
}

func (d *dryRunImageDriver) FindImage(ctx context.Context, name string) (resources.Image, bool, error) {
	return d.wrapped.FindImage(ctx, name)
}

func (d *dryRunImageDriver) EnsureImage(ctx context.Context, driverConfig resources.ImageDriverConfig) (resources.Image, error) {
	existing, found, err := d.wrapped.FindImage(ctx, driverConfig.Name)
	if err != nil {
		return resources.Image{}, err
	}
	if found {
		d.logger.Printf("image '%s' already exists (%s) in region %s. nothing to do\n", driverConfig.Name, existing.ID, d.region)
		return existing, nil
	}

	d.logger.Printf("would register image '%s' from snapshot %s in region %s\n",
		driverConfig.Name, driverConfig.SnapshotID, d.region)
	return resources.Image{
		ID:         syntheticID("ami", d.region),
		Region:     d.region,
		SnapshotID: driverConfig.SnapshotID,
	}, nil
}

func (d *dryRunImageDriver) DeregisterImage(ctx context.Context, image resources.Image) error {
	d.logger.Printf("would deregister image %s in region %s\n", image.ID, d.region)
	return nil
}

type dryRunPublicationDriver struct {
	region string
	logger *log.Logger
}

func (d *dryRunPublicationDriver) MakePublic(ctx context.Context, image resources.Image) error {
	d.logger.Printf("would make image %s (snapshot %s) public in region %s\n", image.ID, image.SnapshotID, d.region)
	return nil
}

func (d *dryRunPublicationDriver) Share(ctx context.Context, image resources.Image, targets resources.ShareTargets) error {
	if targets.Empty() {
		return nil
	}
	d.logger.Printf("would share image %s in region %s with %d accounts and %d organizations\n",
		image.ID, d.region, len(targets.AccountIDs), len(targets.OrganizationArns)+len(targets.OrganizationalUnitArns))
	return nil
}

type dryRunParameterDriver struct {
	region string
	logger *log.Logger
}

func (d *dryRunParameterDriver) PushParameter(ctx context.Context, parameter resources.Parameter) (bool, error) {
	d.logger.Printf("would set parameter %s to %s in region %s\n", parameter.Name, parameter.Value, d.region)
	return false, nil
}

type dryRunNotificationDriver struct {
	region string
	logger *log.Logger
}

func (d *dryRunNotificationDriver) PublishNotification(ctx context.Context, notification resources.Notification) error {
	d.logger.Printf("would publish notification '%s' to topic %s in region %s\n",
		notification.Subject, notification.TopicName, d.region)
	return nil
}

type dryRunMarketplaceDriver struct {
	logger *log.Logger
}

func (d *dryRunMarketplaceDriver) SubmitVersion(ctx context.Context, submission resources.MarketplaceSubmission) error {
	d.logger.Printf("would submit version '%s' (image: %s) to marketplace entity %s\n",
		submission.VersionTitle, submission.ImageID, submission.EntityID)
	return nil
}

func syntheticID(prefix string, region string) string {
	return fmt.Sprintf("%s-dryrun-%s", prefix, region)
}
