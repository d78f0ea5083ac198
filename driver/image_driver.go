package driver

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"ami-publisher/config"
	"ami-publisher/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ec2"
)

var _ resources.ImageDriver = &SDKImageDriver{}

// SDKImageDriver registers and looks up AMIs in a single region. The image
// name is the uniqueness anchor: repeated runs with unchanged configuration
// find the existing image and skip registration entirely.
type SDKImageDriver struct {
	ec2Client *ec2.EC2
	region    string
	logger    *log.Logger
}

// NewImageDriver creates a SDKImageDriver for one region
func NewImageDriver(logDest io.Writer, creds config.Credentials) *SDKImageDriver {
	logger := log.New(logDest, "SDKImageDriver ", log.LstdFlags)

	awsConfig := creds.GetAwsConfig().
		WithLogger(newDriverLogger(logger))

	ec2Client := ec2.New(session.Must(session.NewSession(awsConfig)))

	return &SDKImageDriver{
		ec2Client: ec2Client,
		region:    creds.Region,
		logger:    logger,
	}
}

// FindImage looks up the image with the exact given name owned by the
// caller. More than one match is a fatal ambiguity.
func (d *SDKImageDriver) FindImage(ctx context.Context, name string) (resources.Image, bool, error) {
	resp, err := d.ec2Client.DescribeImagesWithContext(ctx, &ec2.DescribeImagesInput{
		Filters: []*ec2.Filter{
			{
				Name:   aws.String("name"),
				Values: []*string{aws.String(name)},
			},
		},
		Owners: []*string{aws.String("self")},
	})
	if err != nil {
		return resources.Image{}, false, fmt.Errorf("describing images with name '%s' in region %s: %s", name, d.region, err)
	}

	switch len(resp.Images) {
	case 0:
		return resources.Image{}, false, nil
	case 1:
		image := resp.Images[0]
		return resources.Image{
			ID:         aws.StringValue(image.ImageId),
			Region:     d.region,
			SnapshotID: rootDeviceSnapshotID(image),
			Public:     aws.BoolValue(image.Public),
			Reused:     true,
		}, true, nil
	default:
		ids := make([]string, 0, len(resp.Images))
		for _, image := range resp.Images {
			ids = append(ids, aws.StringValue(image.ImageId))
		}
		return resources.Image{}, false, &resources.AmbiguityError{
			Resource: "image",
			Key:      name,
			Region:   d.region,
			IDs:      ids,
		}
	}
}

// EnsureImage registers the image when absent and waits for it to become
// available. An existing image is returned untouched: configuration changes
// after creation are deliberately never applied.
func (d *SDKImageDriver) EnsureImage(ctx context.Context, driverConfig resources.ImageDriverConfig) (resources.Image, error) {
	createStartTime := time.Now()
	defer func(startTime time.Time) {
		d.logger.Printf("completed EnsureImage() in %f minutes\n", time.Since(startTime).Minutes())
	}(createStartTime)

	existing, found, err := d.FindImage(ctx, driverConfig.Name)
	if err != nil {
		return resources.Image{}, err
	}
	if found {
		if existing.SnapshotID != "" && driverConfig.SnapshotID != "" && existing.SnapshotID != driverConfig.SnapshotID {
			d.logger.Printf("image with name '%s' already exists (%s) in region %s but the root device snapshot is unexpected (got %s, expected %s)\n",
				driverConfig.Name, existing.ID, d.region, existing.SnapshotID, driverConfig.SnapshotID)
		} else {
			d.logger.Printf("image with name '%s' already exists (%s) in region %s\n", driverConfig.Name, existing.ID, d.region)
		}
		return existing, nil
	}

	d.logger.Printf("registering image '%s' from snapshot %s in region %s\n", driverConfig.Name, driverConfig.SnapshotID, d.region)

	reqInput := &ec2.RegisterImageInput{
		Name:           aws.String(driverConfig.Name),
		Description:    aws.String(driverConfig.Description),
		Architecture:   aws.String(driverConfig.Architecture),
		RootDeviceName: aws.String(driverConfig.RootDeviceName),
		BlockDeviceMappings: []*ec2.BlockDeviceMapping{
			{
				DeviceName: aws.String(driverConfig.RootDeviceName),
				Ebs: &ec2.EbsBlockDevice{
					SnapshotId: aws.String(driverConfig.SnapshotID),
					VolumeType: aws.String(driverConfig.VolumeType),
					VolumeSize: aws.Int64(driverConfig.VolumeSizeGB),
				},
			},
			{
				DeviceName:  aws.String("/dev/sdb"),
				VirtualName: aws.String("ephemeral0"),
			},
		},
		EnaSupport:         aws.Bool(true),
		SriovNetSupport:    aws.String("simple"),
		VirtualizationType: aws.String("hvm"),
		BootMode:           aws.String(driverConfig.BootMode),
	}

	if driverConfig.TpmSupport != "" {
		reqInput.TpmSupport = aws.String(driverConfig.TpmSupport)
	}
	if driverConfig.ImdsSupport != "" {
		reqInput.ImdsSupport = aws.String(driverConfig.ImdsSupport)
	}
	if driverConfig.UefiData != "" {
		uefiData, err := os.ReadFile(driverConfig.UefiData)
		if err != nil {
			return resources.Image{}, fmt.Errorf("reading uefi data from %s: %s", driverConfig.UefiData, err)
		}
		reqInput.UefiData = aws.String(string(uefiData))
	}
	if len(driverConfig.BillingProducts) > 0 {
		reqInput.BillingProducts = aws.StringSlice(driverConfig.BillingProducts)
	}

	reqOutput, err := d.ec2Client.RegisterImageWithContext(ctx, reqInput)
	if err != nil {
		return resources.Image{}, fmt.Errorf("registering image '%s': %s", driverConfig.Name, err)
	}

	amiID := aws.StringValue(reqOutput.ImageId)
	if amiID == "" {
		return resources.Image{}, fmt.Errorf("image ID empty registering '%s'", driverConfig.Name)
	}

	_, err = d.ec2Client.CreateTagsWithContext(ctx, &ec2.CreateTagsInput{
		Resources: []*string{aws.String(amiID)},
		Tags:      ec2TagsWithName(driverConfig.Tags, driverConfig.Name),
	})
	if err != nil {
		return resources.Image{}, fmt.Errorf("tagging image %s: %s", amiID, err)
	}

	d.logger.Printf("waiting for image %s to exist\n", amiID)
	err = d.ec2Client.WaitUntilImageExistsWithContext(ctx, &ec2.DescribeImagesInput{
		ImageIds: []*string{aws.String(amiID)},
	})
	if err != nil {
		return resources.Image{}, fmt.Errorf("waiting for image %s to exist: %s", amiID, err)
	}

	d.logger.Printf("waiting for image %s to be available\n", amiID)
	err = d.ec2Client.WaitUntilImageAvailableWithContext(ctx, &ec2.DescribeImagesInput{
		ImageIds: []*string{aws.String(amiID)},
	})
	if err != nil {
		return resources.Image{}, fmt.Errorf("waiting for image %s to be available: %s", amiID, err)
	}

	return resources.Image{
		ID:         amiID,
		Region:     d.region,
		SnapshotID: driverConfig.SnapshotID,
	}, nil
}

// DeregisterImage removes a (temporary) image. The backing snapshot is left
// in place.
func (d *SDKImageDriver) DeregisterImage(ctx context.Context, image resources.Image) error {
	_, err := d.ec2Client.DeregisterImageWithContext(ctx, &ec2.DeregisterImageInput{
		ImageId: aws.String(image.ID),
	})
	if err != nil {
		return fmt.Errorf("deregistering image %s in region %s: %s", image.ID, d.region, err)
	}

	d.logger.Printf("deregistered image %s in region %s\n", image.ID, d.region)
	return nil
}

// rootDeviceSnapshotID digs the root device's backing snapshot out of an
// image description; "" when the root device has no EBS section
func rootDeviceSnapshotID(image *ec2.Image) string {
	rootDeviceName := aws.StringValue(image.RootDeviceName)
	if rootDeviceName == "" {
		return ""
	}
	for _, bdm := range image.BlockDeviceMappings {
		if aws.StringValue(bdm.DeviceName) == rootDeviceName && bdm.Ebs != nil {
			return aws.StringValue(bdm.Ebs.SnapshotId)
		}
	}
	return ""
}
