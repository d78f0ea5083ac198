package driver

import (
	"context"
	"fmt"
	"io"
	"log"

	"ami-publisher/config"
	"ami-publisher/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ec2"
)

const publicGroup = "all"

var _ resources.PublicationDriver = &SDKPublicationDriver{}

// SDKPublicationDriver applies visibility and sharing to images and their
// backing snapshots in a single region
type SDKPublicationDriver struct {
	ec2Client *ec2.EC2
	region    string
	logger    *log.Logger
}

// NewPublicationDriver creates a SDKPublicationDriver for one region
func NewPublicationDriver(logDest io.Writer, creds config.Credentials) *SDKPublicationDriver {
	logger := log.New(logDest, "SDKPublicationDriver ", log.LstdFlags)

	awsConfig := creds.GetAwsConfig().
		WithLogger(newDriverLogger(logger))

	ec2Client := ec2.New(session.Must(session.NewSession(awsConfig)))

	return &SDKPublicationDriver{
		ec2Client: ec2Client,
		region:    creds.Region,
		logger:    logger,
	}
}

// MakePublic grants launch permission to everyone on the image and volume
// creation to everyone on its root snapshot. Granting an already-granted
// permission is a platform no-op, so this is safe to repeat.
func (d *SDKPublicationDriver) MakePublic(ctx context.Context, image resources.Image) error {
	_, err := d.ec2Client.ModifyImageAttributeWithContext(ctx, &ec2.ModifyImageAttributeInput{
		ImageId: aws.String(image.ID),
		LaunchPermission: &ec2.LaunchPermissionModifications{
			Add: []*ec2.LaunchPermission{
				{Group: aws.String(publicGroup)},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("making image %s public in region %s: %s", image.ID, d.region, err)
	}

	d.logger.Printf("image %s in region %s is public now\n", image.ID, d.region)

	if image.SnapshotID == "" {
		return fmt.Errorf("snapshot for image %s not known in region %s. can not make it public", image.ID, d.region)
	}

	_, err = d.ec2Client.ModifySnapshotAttributeWithContext(ctx, &ec2.ModifySnapshotAttributeInput{
		SnapshotId:    aws.String(image.SnapshotID),
		Attribute:     aws.String("createVolumePermission"),
		OperationType: aws.String("add"),
		GroupNames:    []*string{aws.String(publicGroup)},
	})
	if err != nil {
		return fmt.Errorf("making snapshot %s public in region %s: %s", image.SnapshotID, d.region, err)
	}

	d.logger.Printf("snapshot %s (%s) in region %s is public now\n", image.SnapshotID, image.ID, d.region)
	return nil
}

// Share grants launch permission on the image to the given accounts and
// organizations, and volume creation on the root snapshot to the accounts.
// Organization grants do not apply to snapshots; the platform only supports
// account IDs there.
func (d *SDKPublicationDriver) Share(ctx context.Context, image resources.Image, targets resources.ShareTargets) error {
	if targets.Empty() {
		return nil
	}

	var launchPermissions []*ec2.LaunchPermission
	for _, accountID := range targets.AccountIDs {
		launchPermissions = append(launchPermissions, &ec2.LaunchPermission{UserId: aws.String(accountID)})
	}
	for _, arn := range targets.OrganizationArns {
		launchPermissions = append(launchPermissions, &ec2.LaunchPermission{OrganizationArn: aws.String(arn)})
	}
	for _, arn := range targets.OrganizationalUnitArns {
		launchPermissions = append(launchPermissions, &ec2.LaunchPermission{OrganizationalUnitArn: aws.String(arn)})
	}

	_, err := d.ec2Client.ModifyImageAttributeWithContext(ctx, &ec2.ModifyImageAttributeInput{
		ImageId: aws.String(image.ID),
		LaunchPermission: &ec2.LaunchPermissionModifications{
			Add: launchPermissions,
		},
	})
	if err != nil {
		return fmt.Errorf("sharing image %s in region %s: %s", image.ID, d.region, err)
	}

	if image.SnapshotID != "" && len(targets.AccountIDs) > 0 {
		var volumePermissions []*ec2.CreateVolumePermission
		for _, accountID := range targets.AccountIDs {
			volumePermissions = append(volumePermissions, &ec2.CreateVolumePermission{UserId: aws.String(accountID)})
		}

		_, err = d.ec2Client.ModifySnapshotAttributeWithContext(ctx, &ec2.ModifySnapshotAttributeInput{
			SnapshotId: aws.String(image.SnapshotID),
			Attribute:  aws.String("createVolumePermission"),
			CreateVolumePermission: &ec2.CreateVolumePermissionModifications{
				Add: volumePermissions,
			},
		})
		if err != nil {
			return fmt.Errorf("sharing snapshot %s in region %s: %s", image.SnapshotID, d.region, err)
		}
	}

	d.logger.Printf("shared image %s (snapshot %s) in region %s\n", image.ID, image.SnapshotID, d.region)
	return nil
}
