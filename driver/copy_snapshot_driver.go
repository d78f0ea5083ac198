package driver

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"ami-publisher/config"
	"ami-publisher/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ec2"
)

var _ resources.SnapshotCopyDriver = &SDKSnapshotCopyDriver{}

// SDKSnapshotCopyDriver mirrors a snapshot into its region by cross-region
// copy, reusing a snapshot already tagged with the same name
type SDKSnapshotCopyDriver struct {
	ec2Client *ec2.EC2
	region    string
	logger    *log.Logger
}

// NewSnapshotCopyDriver creates a SDKSnapshotCopyDriver for the destination
// region in creds
func NewSnapshotCopyDriver(logDest io.Writer, creds config.Credentials) *SDKSnapshotCopyDriver {
	logger := log.New(logDest, "SDKSnapshotCopyDriver ", log.LstdFlags)

	awsConfig := creds.GetAwsConfig().
		WithLogger(newDriverLogger(logger))

	ec2Client := ec2.New(session.Must(session.NewSession(awsConfig)))

	return &SDKSnapshotCopyDriver{
		ec2Client: ec2Client,
		region:    creds.Region,
		logger:    logger,
	}
}

// EnsureCopy copies the source snapshot into the driver's region unless a
// snapshot tagged with the same name already exists there
func (d *SDKSnapshotCopyDriver) EnsureCopy(ctx context.Context, driverConfig resources.SnapshotCopyDriverConfig) (resources.Snapshot, error) {
	createStartTime := time.Now()
	defer func(startTime time.Time) {
		d.logger.Printf("completed EnsureCopy() in %f minutes\n", time.Since(startTime).Minutes())
	}(createStartTime)

	snapshotID, found, err := findSnapshotByName(ctx, d.ec2Client, d.region, driverConfig.Name)
	if err != nil {
		return resources.Snapshot{}, err
	}
	if found {
		d.logger.Printf("snapshot with name '%s' already exists (%s) in destination region %s\n",
			driverConfig.Name, snapshotID, d.region)
		return resources.Snapshot{ID: snapshotID, Region: d.region, Reused: true}, nil
	}

	d.logger.Printf("copying snapshot %s from %s to %s\n", driverConfig.SourceSnapshotID, driverConfig.SourceRegion, d.region)

	resp, err := d.ec2Client.CopySnapshotWithContext(ctx, &ec2.CopySnapshotInput{
		SourceRegion:     aws.String(driverConfig.SourceRegion),
		SourceSnapshotId: aws.String(driverConfig.SourceSnapshotID),
		TagSpecifications: []*ec2.TagSpecification{
			{
				ResourceType: aws.String(ec2.ResourceTypeSnapshot),
				Tags:         ec2TagsWithName(driverConfig.Tags, driverConfig.Name),
			},
		},
	})
	if err != nil {
		return resources.Snapshot{}, fmt.Errorf("copying snapshot %s from %s to %s: %s",
			driverConfig.SourceSnapshotID, driverConfig.SourceRegion, d.region, err)
	}

	err = d.ec2Client.WaitUntilSnapshotCompletedWithContext(ctx, &ec2.DescribeSnapshotsInput{
		SnapshotIds: []*string{resp.SnapshotId},
	})
	if err != nil {
		return resources.Snapshot{}, fmt.Errorf("waiting for copied snapshot %s to complete: %s", *resp.SnapshotId, err)
	}

	d.logger.Printf("copied snapshot %s into %s as %s\n", driverConfig.SourceSnapshotID, d.region, *resp.SnapshotId)

	return resources.Snapshot{ID: *resp.SnapshotId, Region: d.region}, nil
}
