package driver

import (
	"context"
	"fmt"
	"io"
	"log"

	"ami-publisher/config"
	"ami-publisher/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ssm"
)

var _ resources.ParameterDriver = &SDKParameterDriver{}

// SDKParameterDriver pushes image IDs into the SSM parameter store of one
// region
type SDKParameterDriver struct {
	ssmClient *ssm.SSM
	region    string
	logger    *log.Logger
}

// NewParameterDriver creates a SDKParameterDriver for one region
func NewParameterDriver(logDest io.Writer, creds config.Credentials) *SDKParameterDriver {
	logger := log.New(logDest, "SDKParameterDriver ", log.LstdFlags)

	awsConfig := creds.GetAwsConfig().
		WithLogger(newDriverLogger(logger))

	ssmClient := ssm.New(session.Must(session.NewSession(awsConfig)))

	return &SDKParameterDriver{
		ssmClient: ssmClient,
		region:    creds.Region,
		logger:    logger,
	}
}

// PushParameter writes the parameter and reports whether a write happened.
// Without AllowOverwrite an already existing parameter is left untouched,
// whatever its current value.
func (d *SDKParameterDriver) PushParameter(ctx context.Context, parameter resources.Parameter) (bool, error) {
	if !parameter.AllowOverwrite {
		_, err := d.ssmClient.GetParameterWithContext(ctx, &ssm.GetParameterInput{
			Name: aws.String(parameter.Name),
		})
		if err == nil {
			d.logger.Printf("parameter %s already exists in region %s and overwrite is not allowed\n", parameter.Name, d.region)
			return false, nil
		}
		if awsErr, ok := err.(awserr.Error); !ok || awsErr.Code() != ssm.ErrCodeParameterNotFound {
			return false, fmt.Errorf("getting parameter %s in region %s: %s", parameter.Name, d.region, err)
		}
	}

	putInput := &ssm.PutParameterInput{
		Name:        aws.String(parameter.Name),
		Description: aws.String(parameter.Description),
		Value:       aws.String(parameter.Value),
		Type:        aws.String(ssm.ParameterTypeString),
		DataType:    aws.String("aws:ec2:image"),
		Overwrite:   aws.Bool(parameter.AllowOverwrite),
	}
	// the API rejects tags combined with an overwrite
	if !parameter.AllowOverwrite {
		for key, value := range parameter.Tags {
			putInput.Tags = append(putInput.Tags, &ssm.Tag{Key: aws.String(key), Value: aws.String(value)})
		}
	}

	_, err := d.ssmClient.PutParameterWithContext(ctx, putInput)
	if err != nil {
		return false, fmt.Errorf("putting parameter %s in region %s: %s", parameter.Name, d.region, err)
	}

	d.logger.Printf("parameter %s set to %s in region %s\n", parameter.Name, parameter.Value, d.region)
	return true, nil
}
