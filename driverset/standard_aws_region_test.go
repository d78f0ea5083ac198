package driverset_test

import (
	"ami-publisher/config"
	"ami-publisher/driver"
	"ami-publisher/driverset"
	"ami-publisher/resources"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("StandardRegionDriverSet", func() {
	It("returns drivers of the correct type", func() {
		creds := config.Credentials{AccessKey: "access-key", SecretKey: "secret-key", Region: "us-east-1"}
		identity := resources.Identity{Account: "123456789012", Partition: "aws"}
		ds := driverset.NewStandardRegionDriverSet(GinkgoWriter, creds, identity)

		Expect(ds.SnapshotDriver()).To(BeAssignableToTypeOf(&driver.SDKSnapshotDriver{}))
		Expect(ds.SnapshotCopyDriver()).To(BeAssignableToTypeOf(&driver.SDKSnapshotCopyDriver{}))
		Expect(ds.ImageDriver()).To(BeAssignableToTypeOf(&driver.SDKImageDriver{}))
		Expect(ds.PublicationDriver()).To(BeAssignableToTypeOf(&driver.SDKPublicationDriver{}))
		Expect(ds.ParameterDriver()).To(BeAssignableToTypeOf(&driver.SDKParameterDriver{}))
		Expect(ds.NotificationDriver()).To(BeAssignableToTypeOf(&driver.SDKNotificationDriver{}))
	})
})

var _ = Describe("Factory", func() {
	It("hands out one driver set per region", func() {
		creds := config.Credentials{AccessKey: "access-key", SecretKey: "secret-key", Region: "us-east-1"}
		identity := resources.Identity{Account: "123456789012", Partition: "aws"}
		factory := driverset.NewFactory(GinkgoWriter, creds, identity)

		setOne := factory.ForRegion("eu-west-1")
		setTwo := factory.ForRegion("eu-west-1")
		setOther := factory.ForRegion("us-east-1")

		Expect(setOne).To(BeIdenticalTo(setTwo))
		Expect(setOne).ToNot(BeIdenticalTo(setOther))
	})
})
