package driverset

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

import (
	"io"

	"ami-publisher/config"
	"ami-publisher/driver"
	"ami-publisher/resources"
)

//counterfeiter:generate . StandardRegionDriverSet

// StandardRegionDriverSet bundles the drivers operating on one region
type StandardRegionDriverSet interface {
	SnapshotDriver() resources.SnapshotDriver
	SnapshotCopyDriver() resources.SnapshotCopyDriver
	ImageDriver() resources.ImageDriver
	PublicationDriver() resources.PublicationDriver
	ParameterDriver() resources.ParameterDriver
	NotificationDriver() resources.NotificationDriver
}

type standardRegionDriverSet struct {
	snapshotDriver     *driver.SDKSnapshotDriver
	snapshotCopyDriver *driver.SDKSnapshotCopyDriver
	imageDriver        *driver.SDKImageDriver
	publicationDriver  *driver.SDKPublicationDriver
	parameterDriver    *driver.SDKParameterDriver
	notificationDriver *driver.SDKNotificationDriver
}

func NewStandardRegionDriverSet(logDest io.Writer, creds config.Credentials, identity resources.Identity) StandardRegionDriverSet {
	return &standardRegionDriverSet{
		snapshotDriver:     driver.NewSnapshotDriver(logDest, creds),
		snapshotCopyDriver: driver.NewSnapshotCopyDriver(logDest, creds),
		imageDriver:        driver.NewImageDriver(logDest, creds),
		publicationDriver:  driver.NewPublicationDriver(logDest, creds),
		parameterDriver:    driver.NewParameterDriver(logDest, creds),
		notificationDriver: driver.NewNotificationDriver(logDest, creds, identity),
	}
}

func (s *standardRegionDriverSet) SnapshotDriver() resources.SnapshotDriver {
	return s.snapshotDriver
}

func (s *standardRegionDriverSet) SnapshotCopyDriver() resources.SnapshotCopyDriver {
	return s.snapshotCopyDriver
}

func (s *standardRegionDriverSet) ImageDriver() resources.ImageDriver {
	return s.imageDriver
}

func (s *standardRegionDriverSet) PublicationDriver() resources.PublicationDriver {
	return s.publicationDriver
}

func (s *standardRegionDriverSet) ParameterDriver() resources.ParameterDriver {
	return s.parameterDriver
}

func (s *standardRegionDriverSet) NotificationDriver() resources.NotificationDriver {
	return s.notificationDriver
}
