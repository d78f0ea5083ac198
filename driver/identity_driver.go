package driver

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"ami-publisher/config"
	"ami-publisher/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sts"
)

var _ resources.IdentityDriver = &SDKIdentityDriver{}

// SDKIdentityDriver resolves the calling account and partition via STS
type SDKIdentityDriver struct {
	stsClient *sts.STS
	logger    *log.Logger
}

// NewIdentityDriver creates a SDKIdentityDriver
func NewIdentityDriver(logDest io.Writer, creds config.Credentials) *SDKIdentityDriver {
	logger := log.New(logDest, "SDKIdentityDriver ", log.LstdFlags)

	awsConfig := creds.GetAwsConfig().
		WithLogger(newDriverLogger(logger))

	stsClient := sts.New(session.Must(session.NewSession(awsConfig)))

	return &SDKIdentityDriver{
		stsClient: stsClient,
		logger:    logger,
	}
}

// Identity returns the caller's account ID and partition. The partition is
// taken from the caller ARN (arn:<partition>:...).
func (d *SDKIdentityDriver) Identity(ctx context.Context) (resources.Identity, error) {
	resp, err := d.stsClient.GetCallerIdentityWithContext(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return resources.Identity{}, fmt.Errorf("getting caller identity: %s", err)
	}

	arnParts := strings.Split(aws.StringValue(resp.Arn), ":")
	if len(arnParts) < 2 || arnParts[1] == "" {
		return resources.Identity{}, fmt.Errorf("caller ARN '%s' has no partition", aws.StringValue(resp.Arn))
	}

	identity := resources.Identity{
		Account:   aws.StringValue(resp.Account),
		Partition: arnParts[1],
	}

	d.logger.Printf("running as account %s in partition %s\n", identity.Account, identity.Partition)
	return identity, nil
}
