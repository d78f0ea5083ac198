package driver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"ami-publisher/config"
	"ami-publisher/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sns"
)

var _ resources.NotificationDriver = &SDKNotificationDriver{}

// SDKNotificationDriver publishes release notifications to SNS topics in one
// region. Topic ARNs are built from the caller identity rather than looked
// up, so publishing to a topic that does not exist fails at publish time.
type SDKNotificationDriver struct {
	snsClient *sns.SNS
	identity  resources.Identity
	region    string
	logger    *log.Logger
}

// NewNotificationDriver creates a SDKNotificationDriver for one region on
// behalf of the given caller identity
func NewNotificationDriver(logDest io.Writer, creds config.Credentials, identity resources.Identity) *SDKNotificationDriver {
	logger := log.New(logDest, "SDKNotificationDriver ", log.LstdFlags)

	awsConfig := creds.GetAwsConfig().
		WithLogger(newDriverLogger(logger))

	snsClient := sns.New(session.Must(session.NewSession(awsConfig)))

	return &SDKNotificationDriver{
		snsClient: snsClient,
		identity:  identity,
		region:    creds.Region,
		logger:    logger,
	}
}

// PublishNotification sends the notification body to the topic as a
// per-protocol JSON message
func (d *SDKNotificationDriver) PublishNotification(ctx context.Context, notification resources.Notification) error {
	topicArn := fmt.Sprintf("arn:%s:sns:%s:%s:%s",
		d.identity.Partition, d.region, d.identity.Account, notification.TopicName)

	message, err := json.Marshal(notification.Body)
	if err != nil {
		return fmt.Errorf("marshaling notification message for topic %s: %s", notification.TopicName, err)
	}

	_, err = d.snsClient.PublishWithContext(ctx, &sns.PublishInput{
		TopicArn:         aws.String(topicArn),
		Subject:          aws.String(notification.Subject),
		Message:          aws.String(string(message)),
		MessageStructure: aws.String("json"),
	})
	if err != nil {
		return fmt.Errorf("publishing to topic %s: %s", topicArn, err)
	}

	d.logger.Printf("published notification '%s' to %s\n", notification.Subject, topicArn)
	return nil
}
