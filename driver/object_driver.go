package driver

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"ami-publisher/config"
	"ami-publisher/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

var _ resources.ObjectDriver = &SDKObjectDriver{}

// SDKObjectDriver uploads the source machine image to S3 under its
// content-addressed key, skipping the upload when the key already exists
type SDKObjectDriver struct {
	s3Client *s3.S3
	logger   *log.Logger
}

// NewObjectDriver creates a SDKObjectDriver for content-addressed S3 uploads
func NewObjectDriver(logDest io.Writer, creds config.Credentials) *SDKObjectDriver {
	logger := log.New(logDest, "SDKObjectDriver ", log.LstdFlags)

	awsConfig := creds.GetAwsConfig().
		WithLogger(newDriverLogger(logger))

	awsConfig.Retryer = NewS3RetryerWithRetries(50)

	s3Client := s3.New(session.Must(session.NewSession(awsConfig)))

	return &SDKObjectDriver{
		s3Client: s3Client,
		logger:   logger,
	}
}

// EnsureUploaded uploads the file at driverConfig.LocalPath to the bucket
// under driverConfig.Key unless an object with that key already exists.
// An existing object is trusted by key alone; the key is a content digest so
// a match means the bytes are already there.
func (d *SDKObjectDriver) EnsureUploaded(ctx context.Context, driverConfig resources.ObjectDriverConfig) (resources.StoredObject, error) {
	createStartTime := time.Now()
	defer func(startTime time.Time) {
		d.logger.Printf("completed EnsureUploaded() in %f minutes\n", time.Since(startTime).Minutes())
	}(createStartTime)

	_, err := d.s3Client.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(driverConfig.BucketName),
		Key:    aws.String(driverConfig.Key),
	})
	if err == nil {
		d.logger.Printf("object s3://%s/%s already exists. nothing to upload\n", driverConfig.BucketName, driverConfig.Key)
		return resources.StoredObject{
			Bucket: driverConfig.BucketName,
			Key:    driverConfig.Key,
			Reused: true,
		}, nil
	}
	if !isNotFound(err) {
		return resources.StoredObject{}, fmt.Errorf("checking for object s3://%s/%s: %s", driverConfig.BucketName, driverConfig.Key, err)
	}

	f, err := os.Open(driverConfig.LocalPath)
	if err != nil {
		return resources.StoredObject{}, fmt.Errorf("opening machine image for upload: %s", err)
	}
	defer f.Close() //nolint:errcheck

	d.logger.Printf("uploading image to s3://%s/%s\n", driverConfig.BucketName, driverConfig.Key)

	uploadStartTime := time.Now()
	uploader := s3manager.NewUploaderWithClient(d.s3Client, func(u *s3manager.Uploader) {
		// keep completed parts around so an interrupted upload can be
		// resumed; a bucket lifecycle rule is expected to reap abandoned
		// multipart uploads
		u.LeavePartsOnError = true
	})
	_, err = uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Body:   f,
		Bucket: aws.String(driverConfig.BucketName),
		Key:    aws.String(driverConfig.Key),
	})
	if err != nil {
		return resources.StoredObject{}, fmt.Errorf("uploading machine image to S3: %s", err)
	}

	d.logger.Printf("finished uploading image to s3 after %f minutes\n", time.Since(uploadStartTime).Minutes())

	if len(driverConfig.Tags) > 0 {
		tagSet := make([]*s3.Tag, 0, len(driverConfig.Tags))
		for key, value := range driverConfig.Tags {
			tagSet = append(tagSet, &s3.Tag{Key: aws.String(key), Value: aws.String(value)})
		}
		_, err = d.s3Client.PutObjectTaggingWithContext(ctx, &s3.PutObjectTaggingInput{
			Bucket:  aws.String(driverConfig.BucketName),
			Key:     aws.String(driverConfig.Key),
			Tagging: &s3.Tagging{TagSet: tagSet},
		})
		if err != nil {
			return resources.StoredObject{}, fmt.Errorf("tagging object s3://%s/%s: %s", driverConfig.BucketName, driverConfig.Key, err)
		}
	}

	return resources.StoredObject{
		Bucket: driverConfig.BucketName,
		Key:    driverConfig.Key,
	}, nil
}

func isNotFound(err error) bool {
	if reqErr, ok := err.(awserr.RequestFailure); ok {
		return reqErr.StatusCode() == http.StatusNotFound
	}
	return false
}
