package publisher

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"ami-publisher/collection"
	"ami-publisher/config"
	"ami-publisher/driverset"
	"ami-publisher/resources"

	"golang.org/x/sync/errgroup"
)

// regionConcurrency bounds the per-image fan-out over regions
const regionConcurrency = 10

// ImagePublisher drives the whole lifecycle of one configured image: the
// snapshot pipeline, the per-region registrations and the publication side
// effects
type ImagePublisher struct {
	Name    string
	context *Context
	logger  *log.Logger
}

func NewImagePublisher(logDest io.Writer, pubContext *Context, name string) *ImagePublisher {
	return &ImagePublisher{
		Name:    name,
		context: pubContext,
		logger:  log.New(logDest, "ImagePublisher ", log.LstdFlags),
	}
}

// Create ensures the image exists in all its regions: snapshot in the
// bucket region, snapshot copies in the remaining regions, one registered
// image per region, launch permissions for the configured share targets.
// Failed regions are reported but do not stop the remaining regions.
func (p *ImagePublisher) Create(ctx context.Context, factory driverset.Factory, object resources.StoredObject) (map[string]resources.Image, error) {
	createStartTime := time.Now()
	defer func(startTime time.Time) {
		p.logger.Printf("completed Create() for image %s in %f minutes\n", p.Name, time.Since(startTime).Minutes())
	}(createStartTime)

	cfg := p.context.Config()
	imageConfig := cfg.Images[p.Name]

	regions, err := p.context.ImageRegions(ctx, p.Name)
	if err != nil {
		return nil, fmt.Errorf("resolving regions for image %s: %s", p.Name, err)
	}

	snapshotName := p.context.SnapshotName(p.Name)
	tags := p.context.Tags(p.Name)
	sourceRegion := cfg.S3.BucketRegion

	sourceSnapshot, err := factory.ForRegion(sourceRegion).SnapshotDriver().EnsureSnapshot(ctx, resources.SnapshotDriverConfig{
		Name:       snapshotName,
		BucketName: object.Bucket,
		ObjectKey:  object.Key,
		Tags:       tags,
	})
	if err != nil {
		return nil, fmt.Errorf("creating snapshot '%s' in region %s: %s", snapshotName, sourceRegion, err)
	}

	snapshotLock := sync.Mutex{}
	snapshots := map[string]resources.Snapshot{sourceRegion: sourceSnapshot}
	errCol := collection.Error{}

	copyGroup := errgroup.Group{}
	copyGroup.SetLimit(regionConcurrency)
	for _, region := range regions {
		if region == sourceRegion {
			continue
		}
		region := region
		copyGroup.Go(func() error {
			snapshot, copyErr := factory.ForRegion(region).SnapshotCopyDriver().EnsureCopy(ctx, resources.SnapshotCopyDriverConfig{
				Name:             snapshotName,
				SourceRegion:     sourceRegion,
				SourceSnapshotID: sourceSnapshot.ID,
				Tags:             tags,
			})
			if copyErr != nil {
				errCol.Add(fmt.Sprintf("%s/%s", p.Name, region), copyErr)
				return nil
			}
			snapshotLock.Lock()
			snapshots[region] = snapshot
			snapshotLock.Unlock()
			return nil
		})
	}
	copyGroup.Wait() //nolint:errcheck

	imageLock := sync.Mutex{}
	images := map[string]resources.Image{}

	registerGroup := errgroup.Group{}
	registerGroup.SetLimit(regionConcurrency)
	for _, region := range regions {
		snapshot, ok := snapshots[region]
		if !ok {
			// snapshot copy already failed for this region
			continue
		}
		region := region
		registerGroup.Go(func() error {
			image, registerErr := factory.ForRegion(region).ImageDriver().EnsureImage(ctx, resources.ImageDriverConfig{
				Name:            p.Name,
				Description:     imageConfig.Description,
				Architecture:    cfg.Source.Architecture,
				BootMode:        imageConfig.BootMode,
				SnapshotID:      snapshot.ID,
				RootDeviceName:  imageConfig.RootDeviceName,
				VolumeType:      imageConfig.RootDeviceVolumeType,
				VolumeSizeGB:    imageConfig.RootDeviceVolumeSize,
				BillingProducts: imageConfig.BillingProducts,
				TpmSupport:      imageConfig.TpmSupport,
				ImdsSupport:     imageConfig.ImdsSupport,
				UefiData:        imageConfig.UefiData,
				Tags:            tags,
			})
			if registerErr != nil {
				errCol.Add(fmt.Sprintf("%s/%s", p.Name, region), registerErr)
				return nil
			}
			imageLock.Lock()
			images[region] = image
			imageLock.Unlock()
			return nil
		})
	}
	registerGroup.Wait() //nolint:errcheck

	shareTargets := p.context.ShareTargets(p.Name)
	if !shareTargets.Empty() {
		for region, image := range images {
			err := factory.ForRegion(region).PublicationDriver().Share(ctx, image, shareTargets)
			if err != nil {
				errCol.Add(fmt.Sprintf("%s/%s", p.Name, region), err)
			}
		}
	}

	return images, errCol.Error()
}

// List reports the image's ID per region, with an empty ID for regions the
// image does not exist in
func (p *ImagePublisher) List(ctx context.Context, factory driverset.Factory) (map[string]resources.Image, error) {
	regions, err := p.context.ImageRegions(ctx, p.Name)
	if err != nil {
		return nil, fmt.Errorf("resolving regions for image %s: %s", p.Name, err)
	}

	imageLock := sync.Mutex{}
	images := map[string]resources.Image{}
	errCol := collection.Error{}

	listGroup := errgroup.Group{}
	listGroup.SetLimit(regionConcurrency)
	for _, region := range regions {
		region := region
		listGroup.Go(func() error {
			image, found, findErr := factory.ForRegion(region).ImageDriver().FindImage(ctx, p.Name)
			if findErr != nil {
				errCol.Add(fmt.Sprintf("%s/%s", p.Name, region), findErr)
				return nil
			}
			imageLock.Lock()
			if found {
				images[region] = image
			} else {
				images[region] = resources.Image{Region: region}
			}
			imageLock.Unlock()
			return nil
		})
	}
	listGroup.Wait() //nolint:errcheck

	return images, errCol.Error()
}

// Publish runs the side effects making the image consumable: public launch
// permissions, a marketplace version submission, parameter-store entries
// and topic notifications. Temporary images are never published.
func (p *ImagePublisher) Publish(ctx context.Context, factory driverset.Factory) error {
	imageConfig := p.context.Config().Images[p.Name]

	if imageConfig.Temporary {
		p.logger.Printf("image %s marked as temporary. do not publish\n", p.Name)
		return nil
	}

	regions, err := p.context.ImageRegions(ctx, p.Name)
	if err != nil {
		return fmt.Errorf("resolving regions for image %s: %s", p.Name, err)
	}

	errCol := collection.Error{}

	if imageConfig.Public {
		p.makePublic(ctx, factory, regions, &errCol)

		if imageConfig.Marketplace != nil {
			if p.context.Identity().Partition != config.DefaultPartition {
				p.logger.Printf("marketplace catalog not available in partition %s. not submitting %s\n",
					p.context.Identity().Partition, p.Name)
			} else if err := p.submitToMarketplace(ctx, factory); err != nil {
				errCol.Add(p.Name+"/marketplace", err)
			}
		}
	} else {
		p.logger.Printf("image %s not marked as public. do not make public\n", p.Name)
	}

	if len(imageConfig.SSMParameters) > 0 {
		p.pushParameters(ctx, factory, regions, &errCol)
	}

	for _, notification := range imageConfig.SNS {
		p.notify(ctx, factory, notification.TopicName, notification.Subject, notification.Message, notification.Regions, &errCol)
	}

	return errCol.Error()
}

// Cleanup deregisters the image in all its regions when it is marked
// temporary. A temporary image that ended up public is left alone; it
// should never have been public in the first place.
func (p *ImagePublisher) Cleanup(ctx context.Context, factory driverset.Factory) error {
	imageConfig := p.context.Config().Images[p.Name]

	if !imageConfig.Temporary {
		p.logger.Printf("image %s not marked as temporary. no cleanup\n", p.Name)
		return nil
	}

	regions, err := p.context.ImageRegions(ctx, p.Name)
	if err != nil {
		return fmt.Errorf("resolving regions for image %s: %s", p.Name, err)
	}

	errCol := collection.Error{}

	for _, region := range regions {
		imageDriver := factory.ForRegion(region).ImageDriver()
		image, found, err := imageDriver.FindImage(ctx, p.Name)
		if err != nil {
			errCol.Add(fmt.Sprintf("%s/%s", p.Name, region), err)
			continue
		}
		if !found {
			continue
		}
		if image.Public {
			p.logger.Printf("no cleanup for %s in %s because image (%s) is public\n", p.Name, region, image.ID)
			continue
		}
		err = imageDriver.DeregisterImage(ctx, image)
		if err != nil {
			errCol.Add(fmt.Sprintf("%s/%s", p.Name, region), err)
		}
	}

	return errCol.Error()
}

func (p *ImagePublisher) makePublic(ctx context.Context, factory driverset.Factory, regions []string, errCol *collection.Error) {
	publicGroup := errgroup.Group{}
	publicGroup.SetLimit(regionConcurrency)
	for _, region := range regions {
		region := region
		publicGroup.Go(func() error {
			ds := factory.ForRegion(region)
			image, found, err := ds.ImageDriver().FindImage(ctx, p.Name)
			if err != nil {
				errCol.Add(fmt.Sprintf("%s/%s", p.Name, region), err)
				return nil
			}
			if !found {
				p.logger.Printf("image %s not available in region %s. can not make public\n", p.Name, region)
				return nil
			}
			err = ds.PublicationDriver().MakePublic(ctx, image)
			if err != nil {
				errCol.Add(fmt.Sprintf("%s/%s", p.Name, region), err)
			}
			return nil
		})
	}
	publicGroup.Wait() //nolint:errcheck
}

// submitToMarketplace requests a new product version with the image from
// the marketplace region
func (p *ImagePublisher) submitToMarketplace(ctx context.Context, factory driverset.Factory) error {
	marketplaceConfig := p.context.Config().Images[p.Name].Marketplace

	image, found, err := factory.ForRegion(driverset.MarketplaceRegion).ImageDriver().FindImage(ctx, p.Name)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("image %s not available in region %s. can not submit to marketplace",
			p.Name, driverset.MarketplaceRegion)
	}

	securityGroups := make([]resources.MarketplaceSecurityGroup, 0, len(marketplaceConfig.SecurityGroups))
	for _, sg := range marketplaceConfig.SecurityGroups {
		securityGroups = append(securityGroups, resources.MarketplaceSecurityGroup{
			FromPort:   sg.FromPort,
			IPProtocol: sg.IPProtocol,
			IPRanges:   sg.IPRanges,
			ToPort:     sg.ToPort,
		})
	}

	return factory.MarketplaceDriver().SubmitVersion(ctx, resources.MarketplaceSubmission{
		ImageID:                 image.ID,
		EntityID:                marketplaceConfig.EntityID,
		AccessRoleArn:           marketplaceConfig.AccessRoleArn,
		VersionTitle:            marketplaceConfig.VersionTitle,
		ReleaseNotes:            marketplaceConfig.ReleaseNotes,
		UserName:                marketplaceConfig.UserName,
		ScanningPort:            marketplaceConfig.ScanningPort,
		OSName:                  marketplaceConfig.OSName,
		OSVersion:               marketplaceConfig.OSVersion,
		UsageInstructions:       marketplaceConfig.UsageInstructions,
		RecommendedInstanceType: marketplaceConfig.RecommendedInstanceType,
		SecurityGroups:          securityGroups,
		Tags:                    p.context.Tags(p.Name),
	})
}

// pushParameters writes the region's image ID into each configured
// parameter, region by region
func (p *ImagePublisher) pushParameters(ctx context.Context, factory driverset.Factory, regions []string, errCol *collection.Error) {
	parameters := p.context.Config().Images[p.Name].SSMParameters
	tags := p.context.Tags(p.Name)

	for _, region := range regions {
		ds := factory.ForRegion(region)
		image, found, err := ds.ImageDriver().FindImage(ctx, p.Name)
		if err != nil {
			errCol.Add(fmt.Sprintf("%s/%s", p.Name, region), err)
			continue
		}
		if !found {
			p.logger.Printf("image %s not available in region %s. no parameters pushed\n", p.Name, region)
			continue
		}

		for _, parameter := range parameters {
			_, err := ds.ParameterDriver().PushParameter(ctx, resources.Parameter{
				Name:           parameter.Name,
				Description:    parameter.Description,
				Value:          image.ID,
				AllowOverwrite: parameter.AllowOverwrite,
				Tags:           tags,
			})
			if err != nil {
				errCol.Add(fmt.Sprintf("%s/%s", p.Name, region), err)
			}
		}
	}
}

func (p *ImagePublisher) notify(ctx context.Context, factory driverset.Factory, topicName string, subject string, message map[string]string, allowlist []string, errCol *collection.Error) {
	regions, err := p.context.NotificationRegions(ctx, allowlist)
	if err != nil {
		errCol.Add(p.Name+"/sns", err)
		return
	}

	for _, region := range regions {
		err := factory.ForRegion(region).NotificationDriver().PublishNotification(ctx, resources.Notification{
			TopicName: topicName,
			Subject:   subject,
			Body:      message,
		})
		if err != nil {
			errCol.Add(fmt.Sprintf("%s/%s", p.Name, region), err)
		}
	}
}
