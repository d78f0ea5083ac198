package driver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"regexp"
	"time"

	"ami-publisher/config"
	"ami-publisher/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/marketplacecatalog"
	uuid "github.com/satori/go.uuid"
)

const marketplaceCatalog = "AWSMarketplace"

// change set names may only contain alphanumerics, whitespace and _+=.:@-
var changeSetNameDisallowed = regexp.MustCompile(`[^\w\s+=.:@-]`)

var _ resources.MarketplaceDriver = &SDKMarketplaceDriver{}

// SDKMarketplaceDriver submits new AMI product versions to the marketplace
// catalog. The catalog API only lives in the partition's marketplace region
// (us-east-1 for the commercial partition).
type SDKMarketplaceDriver struct {
	catalogClient *marketplacecatalog.MarketplaceCatalog
	logger        *log.Logger
}

// NewMarketplaceDriver creates a SDKMarketplaceDriver bound to the catalog
// region in creds
func NewMarketplaceDriver(logDest io.Writer, creds config.Credentials) *SDKMarketplaceDriver {
	logger := log.New(logDest, "SDKMarketplaceDriver ", log.LstdFlags)

	awsConfig := creds.GetAwsConfig().
		WithLogger(newDriverLogger(logger))

	catalogClient := marketplacecatalog.New(session.Must(session.NewSession(awsConfig)))

	return &SDKMarketplaceDriver{
		catalogClient: catalogClient,
		logger:        logger,
	}
}

type entityDetails struct {
	Versions []struct {
		VersionTitle string `json:"VersionTitle"`
	} `json:"Versions"`
}

// SubmitVersion starts a change set adding the image as a new product
// version and waits until the submission is accepted (the change set leaves
// the PREPARING state). Full marketplace publication is a longer external
// workflow and is not awaited. A version title that already exists on the
// entity is a no-op.
func (d *SDKMarketplaceDriver) SubmitVersion(ctx context.Context, submission resources.MarketplaceSubmission) error {
	entity, err := d.catalogClient.DescribeEntityWithContext(ctx, &marketplacecatalog.DescribeEntityInput{
		Catalog:  aws.String(marketplaceCatalog),
		EntityId: aws.String(submission.EntityID),
	})
	if err != nil {
		return fmt.Errorf("describing marketplace entity %s: %s", submission.EntityID, err)
	}

	details := entityDetails{}
	if entity.Details != nil {
		if err := json.Unmarshal([]byte(*entity.Details), &details); err != nil {
			return fmt.Errorf("parsing marketplace entity %s details: %s", submission.EntityID, err)
		}
	}
	for _, version := range details.Versions {
		if version.VersionTitle == submission.VersionTitle {
			d.logger.Printf("marketplace version '%s' already exists on entity %s. nothing to submit\n",
				submission.VersionTitle, submission.EntityID)
			return nil
		}
	}

	changeDetails, err := json.Marshal(newVersionChangeDetails(submission))
	if err != nil {
		return fmt.Errorf("marshaling marketplace change details: %s", err)
	}

	var changeSetTags []*marketplacecatalog.Tag
	for key, value := range submission.Tags {
		changeSetTags = append(changeSetTags, &marketplacecatalog.Tag{
			Key:   aws.String(key),
			Value: aws.String(value),
		})
	}

	changeSetName := changeSetNameDisallowed.ReplaceAllString(
		fmt.Sprintf("New version request for %s", submission.VersionTitle), "")

	resp, err := d.catalogClient.StartChangeSetWithContext(ctx, &marketplacecatalog.StartChangeSetInput{
		Catalog:            aws.String(marketplaceCatalog),
		ChangeSetName:      aws.String(changeSetName),
		ChangeSetTags:      changeSetTags,
		ClientRequestToken: aws.String(uuid.NewV4().String()),
		ChangeSet: []*marketplacecatalog.Change{
			{
				ChangeType: aws.String("AddDeliveryOptions"),
				Entity: &marketplacecatalog.Entity{
					Identifier: aws.String(submission.EntityID),
					Type:       aws.String("AmiProduct@1.0"),
				},
				Details: aws.String(string(changeDetails)),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("starting marketplace change set for version '%s': %s", submission.VersionTitle, err)
	}

	d.logger.Printf("new version '%s' (image: %s) for entity %s requested (changeset-id: %s)\n",
		submission.VersionTitle, submission.ImageID, submission.EntityID, aws.StringValue(resp.ChangeSetId))

	return d.waitUntilSubmissionAccepted(ctx, aws.StringValue(resp.ChangeSetId))
}

// waitUntilSubmissionAccepted polls the change set with backoff until it
// leaves PREPARING. APPLYING and SUCCEEDED both count as accepted.
func (d *SDKMarketplaceDriver) waitUntilSubmissionAccepted(ctx context.Context, changeSetID string) error {
	const maxAttempts = 40
	delay := 15 * time.Second

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		resp, err := d.catalogClient.DescribeChangeSetWithContext(ctx, &marketplacecatalog.DescribeChangeSetInput{
			Catalog:     aws.String(marketplaceCatalog),
			ChangeSetId: aws.String(changeSetID),
		})
		if err != nil {
			return fmt.Errorf("describing marketplace change set %s: %s", changeSetID, err)
		}

		switch aws.StringValue(resp.Status) {
		case marketplacecatalog.ChangeStatusPreparing:
			// still being validated, keep polling
		case marketplacecatalog.ChangeStatusFailed, marketplacecatalog.ChangeStatusCancelled:
			return fmt.Errorf("marketplace change set %s reached state %s: %s %s",
				changeSetID, aws.StringValue(resp.Status),
				aws.StringValue(resp.FailureCode), aws.StringValue(resp.FailureDescription))
		default:
			d.logger.Printf("marketplace change set %s accepted (state %s)\n", changeSetID, aws.StringValue(resp.Status))
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		if delay < 2*time.Minute {
			delay = delay * 2
		}
	}

	return fmt.Errorf("marketplace change set %s still preparing after %d attempts", changeSetID, maxAttempts)
}

func newVersionChangeDetails(submission resources.MarketplaceSubmission) map[string]interface{} {
	securityGroups := make([]map[string]interface{}, 0, len(submission.SecurityGroups))
	for _, sg := range submission.SecurityGroups {
		securityGroups = append(securityGroups, map[string]interface{}{
			"IpProtocol": sg.IPProtocol,
			"IpRanges":   sg.IPRanges,
			"FromPort":   sg.FromPort,
			"ToPort":     sg.ToPort,
		})
	}

	return map[string]interface{}{
		"Version": map[string]interface{}{
			"VersionTitle": submission.VersionTitle,
			"ReleaseNotes": submission.ReleaseNotes,
		},
		"DeliveryOptions": []map[string]interface{}{
			{
				"Details": map[string]interface{}{
					"AmiDeliveryOptionDetails": map[string]interface{}{
						"AmiSource": map[string]interface{}{
							"AmiId":                  submission.ImageID,
							"AccessRoleArn":          submission.AccessRoleArn,
							"UserName":               submission.UserName,
							"OperatingSystemName":    submission.OSName,
							"OperatingSystemVersion": submission.OSVersion,
						},
						"UsageInstructions":       submission.UsageInstructions,
						"RecommendedInstanceType": submission.RecommendedInstanceType,
						"SecurityGroups":          securityGroups,
					},
				},
			},
		},
	}
}
