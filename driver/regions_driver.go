package driver

import (
	"context"
	"fmt"
	"io"
	"log"
	"sort"

	"ami-publisher/config"
	"ami-publisher/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ec2"
)

var _ resources.RegionLister = &SDKRegionLister{}

// SDKRegionLister enumerates the regions enabled for the calling account
type SDKRegionLister struct {
	ec2Client *ec2.EC2
	logger    *log.Logger
}

// NewRegionLister creates a SDKRegionLister
func NewRegionLister(logDest io.Writer, creds config.Credentials) *SDKRegionLister {
	logger := log.New(logDest, "SDKRegionLister ", log.LstdFlags)

	awsConfig := creds.GetAwsConfig().
		WithLogger(newDriverLogger(logger))

	ec2Client := ec2.New(session.Must(session.NewSession(awsConfig)))

	return &SDKRegionLister{
		ec2Client: ec2Client,
		logger:    logger,
	}
}

// Regions returns the sorted names of all regions enabled for the account
func (d *SDKRegionLister) Regions(ctx context.Context) ([]string, error) {
	resp, err := d.ec2Client.DescribeRegionsWithContext(ctx, &ec2.DescribeRegionsInput{})
	if err != nil {
		return nil, fmt.Errorf("describing regions: %s", err)
	}

	regions := make([]string, 0, len(resp.Regions))
	for _, region := range resp.Regions {
		regions = append(regions, aws.StringValue(region.RegionName))
	}
	sort.Strings(regions)

	return regions, nil
}
