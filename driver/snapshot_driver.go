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
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ec2"
)

// source images are uploaded as vmdk; the import task needs to know
const diskImageFormat = "vmdk"

var _ resources.SnapshotDriver = &SDKSnapshotDriver{}

// SDKSnapshotDriver creates an EBS snapshot in its region by importing the
// stored object, or reuses the snapshot already tagged with the same name
type SDKSnapshotDriver struct {
	ec2Client *ec2.EC2
	region    string
	logger    *log.Logger
}

// NewSnapshotDriver creates a SDKSnapshotDriver for snapshots in one region
func NewSnapshotDriver(logDest io.Writer, creds config.Credentials) *SDKSnapshotDriver {
	logger := log.New(logDest, "SDKSnapshotDriver ", log.LstdFlags)

	awsConfig := creds.GetAwsConfig().
		WithLogger(newDriverLogger(logger))

	ec2Client := ec2.New(session.Must(session.NewSession(awsConfig)))

	return &SDKSnapshotDriver{
		ec2Client: ec2Client,
		region:    creds.Region,
		logger:    logger,
	}
}

// EnsureSnapshot returns the snapshot tagged with driverConfig.Name,
// importing it from the stored object when absent. Exactly one existing
// snapshot is reused as-is; more than one is a fatal ambiguity.
func (d *SDKSnapshotDriver) EnsureSnapshot(ctx context.Context, driverConfig resources.SnapshotDriverConfig) (resources.Snapshot, error) {
	createStartTime := time.Now()
	defer func(startTime time.Time) {
		d.logger.Printf("completed EnsureSnapshot() in %f minutes\n", time.Since(startTime).Minutes())
	}(createStartTime)

	snapshotID, found, err := findSnapshotByName(ctx, d.ec2Client, d.region, driverConfig.Name)
	if err != nil {
		return resources.Snapshot{}, err
	}
	if found {
		d.logger.Printf("snapshot with name '%s' already exists (%s) in region %s\n", driverConfig.Name, snapshotID, d.region)
		return resources.Snapshot{ID: snapshotID, Region: d.region, Reused: true}, nil
	}

	tags := ec2TagsWithName(driverConfig.Tags, driverConfig.Name)

	importTaskID, err := d.findImportSnapshotTask(ctx, driverConfig.Name)
	if err != nil {
		return resources.Snapshot{}, err
	}
	if importTaskID == "" {
		reqOutput, err := d.ec2Client.ImportSnapshotWithContext(ctx, &ec2.ImportSnapshotInput{
			DiskContainer: &ec2.SnapshotDiskContainer{
				Format: aws.String(diskImageFormat),
				UserBucket: &ec2.UserBucket{
					S3Bucket: aws.String(driverConfig.BucketName),
					S3Key:    aws.String(driverConfig.ObjectKey),
				},
			},
			TagSpecifications: []*ec2.TagSpecification{
				{
					ResourceType: aws.String(ec2.ResourceTypeImportSnapshotTask),
					Tags:         tags,
				},
			},
		})
		if err != nil {
			return resources.Snapshot{}, fmt.Errorf("creating import snapshot task: %s", err)
		}
		importTaskID = *reqOutput.ImportTaskId
	} else {
		d.logger.Printf("import snapshot task (%s) with name '%s' exists in region %s. resuming wait\n",
			importTaskID, driverConfig.Name, d.region)
	}

	d.logger.Printf("waiting on ImportSnapshot task %s\n", importTaskID)

	taskFilter := &ec2.DescribeImportSnapshotTasksInput{
		ImportTaskIds: []*string{aws.String(importTaskID)},
	}

	waitStartTime := time.Now()
	err = d.waitUntilImportSnapshotTaskCompleted(ctx, taskFilter)
	if err != nil {
		return resources.Snapshot{}, fmt.Errorf("waiting for snapshot import to complete: %s", err)
	}

	d.logger.Printf("waited on import task %s for %f minutes\n", importTaskID, time.Since(waitStartTime).Minutes())

	describeOutput, err := d.ec2Client.DescribeImportSnapshotTasksWithContext(ctx, taskFilter)
	if err != nil {
		return resources.Snapshot{}, fmt.Errorf("describing snapshot from import snapshot task %s: %s", importTaskID, err)
	}

	if len(describeOutput.ImportSnapshotTasks) == 0 || describeOutput.ImportSnapshotTasks[0].SnapshotTaskDetail == nil {
		return resources.Snapshot{}, fmt.Errorf("snapshot ID empty for import task: %s", importTaskID)
	}
	snapshotIDptr := describeOutput.ImportSnapshotTasks[0].SnapshotTaskDetail.SnapshotId
	if snapshotIDptr == nil {
		return resources.Snapshot{}, fmt.Errorf("snapshot ID empty for import task: %s", importTaskID)
	}

	// tag before waiting for completion so concurrent lookups already see
	// the name
	_, err = d.ec2Client.CreateTagsWithContext(ctx, &ec2.CreateTagsInput{
		Resources: []*string{snapshotIDptr},
		Tags:      tags,
	})
	if err != nil {
		return resources.Snapshot{}, fmt.Errorf("tagging snapshot %s: %s", *snapshotIDptr, err)
	}

	err = d.ec2Client.WaitUntilSnapshotCompletedWithContext(ctx, &ec2.DescribeSnapshotsInput{
		SnapshotIds: []*string{snapshotIDptr},
	})
	if err != nil {
		return resources.Snapshot{}, fmt.Errorf("waiting for snapshot %s to complete: %s", *snapshotIDptr, err)
	}

	d.logger.Printf("created snapshot %s in region %s\n", *snapshotIDptr, d.region)

	return resources.Snapshot{ID: *snapshotIDptr, Region: d.region}, nil
}

// findImportSnapshotTask returns the ID of an in-flight import task tagged
// with the snapshot name, or "" when there is none. Deleted and completed
// tasks are ignored: the snapshot lookup already ran, so a completed task
// whose snapshot disappeared is of no use.
func (d *SDKSnapshotDriver) findImportSnapshotTask(ctx context.Context, snapshotName string) (string, error) {
	resp, err := d.ec2Client.DescribeImportSnapshotTasksWithContext(ctx, &ec2.DescribeImportSnapshotTasksInput{
		Filters: []*ec2.Filter{
			{
				Name:   aws.String("tag:Name"),
				Values: []*string{aws.String(snapshotName)},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("describing import snapshot tasks for '%s': %s", snapshotName, err)
	}

	var taskIDs []string
	for _, task := range resp.ImportSnapshotTasks {
		if task.SnapshotTaskDetail == nil {
			continue
		}
		status := aws.StringValue(task.SnapshotTaskDetail.Status)
		if status == "deleted" || status == "deleting" || status == "completed" {
			continue
		}
		taskIDs = append(taskIDs, aws.StringValue(task.ImportTaskId))
	}

	switch len(taskIDs) {
	case 0:
		return "", nil
	case 1:
		return taskIDs[0], nil
	default:
		return "", &resources.AmbiguityError{
			Resource: "import snapshot task",
			Key:      snapshotName,
			Region:   d.region,
			IDs:      taskIDs,
		}
	}
}

func (d *SDKSnapshotDriver) waitUntilImportSnapshotTaskCompleted(ctx context.Context, input *ec2.DescribeImportSnapshotTasksInput) error {
	w := request.Waiter{
		Name:        "WaitUntilImportSnapshotTasksCompleted",
		MaxAttempts: 90,
		Delay:       request.ConstantWaiterDelay(30 * time.Second),
		Acceptors: []request.WaiterAcceptor{
			{
				State:    request.SuccessWaiterState,
				Matcher:  request.PathAllWaiterMatch,
				Argument: "ImportSnapshotTasks[].SnapshotTaskDetail.Status",
				Expected: "completed",
			},
			{
				State:    request.FailureWaiterState,
				Matcher:  request.PathAnyWaiterMatch,
				Argument: "ImportSnapshotTasks[].SnapshotTaskDetail.Status",
				Expected: "deleted",
			},
			{
				State:    request.FailureWaiterState,
				Matcher:  request.PathAnyWaiterMatch,
				Argument: "ImportSnapshotTasks[].SnapshotTaskDetail.Status",
				Expected: "deleting",
			},
		},
		Logger: d.ec2Client.Config.Logger,
		NewRequest: func(opts []request.Option) (*request.Request, error) {
			var inCpy *ec2.DescribeImportSnapshotTasksInput
			if input != nil {
				tmp := *input
				inCpy = &tmp
			}
			req, _ := d.ec2Client.DescribeImportSnapshotTasksRequest(inCpy)
			req.SetContext(ctx)
			req.ApplyOptions(opts...)
			return req, nil
		},
	}

	return w.WaitWithContext(ctx)
}

// findSnapshotByName looks up the one snapshot tagged Name=name owned by the
// caller. Pending snapshots count: a snapshot mid-import must not trigger a
// second import. More than one match is a fatal ambiguity.
func findSnapshotByName(ctx context.Context, ec2Client *ec2.EC2, region string, name string) (string, bool, error) {
	resp, err := ec2Client.DescribeSnapshotsWithContext(ctx, &ec2.DescribeSnapshotsInput{
		Filters: []*ec2.Filter{
			{
				Name:   aws.String("tag:Name"),
				Values: []*string{aws.String(name)},
			},
			{
				Name:   aws.String("status"),
				Values: []*string{aws.String("pending"), aws.String("completed")},
			},
		},
		OwnerIds: []*string{aws.String("self")},
	})
	if err != nil {
		return "", false, fmt.Errorf("describing snapshots with name '%s' in region %s: %s", name, region, err)
	}

	switch len(resp.Snapshots) {
	case 0:
		return "", false, nil
	case 1:
		return aws.StringValue(resp.Snapshots[0].SnapshotId), true, nil
	default:
		ids := make([]string, 0, len(resp.Snapshots))
		for _, snapshot := range resp.Snapshots {
			ids = append(ids, aws.StringValue(snapshot.SnapshotId))
		}
		return "", false, &resources.AmbiguityError{
			Resource: "snapshot",
			Key:      name,
			Region:   region,
			IDs:      ids,
		}
	}
}

func ec2TagsWithName(tags map[string]string, name string) []*ec2.Tag {
	out := make([]*ec2.Tag, 0, len(tags)+1)
	for key, value := range tags {
		out = append(out, &ec2.Tag{Key: aws.String(key), Value: aws.String(value)})
	}
	out = append(out, &ec2.Tag{Key: aws.String("Name"), Value: aws.String(name)})
	return out
}
