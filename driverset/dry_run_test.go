package driverset_test

import (
	"context"

	"ami-publisher/driverset"
	"ami-publisher/driverset/driversetfakes"
	"ami-publisher/resources"
	"ami-publisher/resources/resourcesfakes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DryRunFactory", func() {
	var (
		wrapped    *driversetfakes.FakeFactory
		wrappedSet *driversetfakes.FakeStandardRegionDriverSet
		factory    driverset.Factory
	)

	BeforeEach(func() {
		wrapped = &driversetfakes.FakeFactory{}
		wrappedSet = &driversetfakes.FakeStandardRegionDriverSet{}
		wrapped.ForRegionReturns(wrappedSet)
		factory = driverset.NewDryRunFactory(GinkgoWriter, wrapped)
	})

	It("returns a synthetic object without uploading", func() {
		object, err := factory.ObjectDriver().EnsureUploaded(context.Background(), resources.ObjectDriverConfig{
			LocalPath:  "/images/source.vmdk",
			BucketName: "publish-bucket",
			Key:        "abc123",
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(object.Bucket).To(Equal("publish-bucket"))
		Expect(object.Key).To(Equal("abc123"))
		Expect(wrapped.ObjectDriverCallCount()).To(BeZero())
	})

	It("returns synthetic snapshots without importing or copying", func() {
		ds := factory.ForRegion("us-east-1")

		snapshot, err := ds.SnapshotDriver().EnsureSnapshot(context.Background(), resources.SnapshotDriverConfig{Name: "snap-name"})
		Expect(err).ToNot(HaveOccurred())
		Expect(snapshot.Region).To(Equal("us-east-1"))
		Expect(snapshot.ID).ToNot(BeEmpty())

		copied, err := ds.SnapshotCopyDriver().EnsureCopy(context.Background(), resources.SnapshotCopyDriverConfig{Name: "snap-name"})
		Expect(err).ToNot(HaveOccurred())
		Expect(copied.Region).To(Equal("us-east-1"))

		Expect(wrappedSet.SnapshotDriverCallCount()).To(BeZero())
		Expect(wrappedSet.SnapshotCopyDriverCallCount()).To(BeZero())
	})

	Describe("image driver", func() {
		var wrappedImages *resourcesfakes.FakeImageDriver

		BeforeEach(func() {
			wrappedImages = &resourcesfakes.FakeImageDriver{}
			wrappedSet.ImageDriverReturns(wrappedImages)
		})

		It("passes lookups through to the real driver", func() {
			wrappedImages.FindImageReturns(resources.Image{ID: "ami-1", Region: "us-east-1"}, true, nil)

			image, found, err := factory.ForRegion("us-east-1").ImageDriver().FindImage(context.Background(), "img-a")
			Expect(err).ToNot(HaveOccurred())
			Expect(found).To(BeTrue())
			Expect(image.ID).To(Equal("ami-1"))
		})

		It("returns the existing image without registering", func() {
			wrappedImages.FindImageReturns(resources.Image{ID: "ami-1", Region: "us-east-1", Reused: true}, true, nil)

			image, err := factory.ForRegion("us-east-1").ImageDriver().EnsureImage(context.Background(), resources.ImageDriverConfig{Name: "img-a"})
			Expect(err).ToNot(HaveOccurred())
			Expect(image.ID).To(Equal("ami-1"))
			Expect(wrappedImages.EnsureImageCallCount()).To(BeZero())
		})

		It("returns a synthetic image when none exists", func() {
			wrappedImages.FindImageReturns(resources.Image{}, false, nil)

			image, err := factory.ForRegion("us-east-1").ImageDriver().EnsureImage(context.Background(), resources.ImageDriverConfig{
				Name:       "img-a",
				SnapshotID: "snap-1",
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(image.Region).To(Equal("us-east-1"))
			Expect(image.SnapshotID).To(Equal("snap-1"))
			Expect(wrappedImages.EnsureImageCallCount()).To(BeZero())
		})

		It("does not deregister anything", func() {
			err := factory.ForRegion("us-east-1").ImageDriver().DeregisterImage(context.Background(), resources.Image{ID: "ami-1"})
			Expect(err).ToNot(HaveOccurred())
			Expect(wrappedImages.DeregisterImageCallCount()).To(BeZero())
		})
	})

	It("does not change visibility or sharing", func() {
		ds := factory.ForRegion("us-east-1")

		Expect(ds.PublicationDriver().MakePublic(context.Background(), resources.Image{ID: "ami-1"})).To(Succeed())
		Expect(ds.PublicationDriver().Share(context.Background(), resources.Image{ID: "ami-1"}, resources.ShareTargets{
			AccountIDs: []string{"210987654321"},
		})).To(Succeed())

		Expect(wrappedSet.PublicationDriverCallCount()).To(BeZero())
	})

	It("reports parameters as not written", func() {
		written, err := factory.ForRegion("us-east-1").ParameterDriver().PushParameter(context.Background(), resources.Parameter{
			Name:  "/images/latest",
			Value: "ami-1",
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(written).To(BeFalse())
		Expect(wrappedSet.ParameterDriverCallCount()).To(BeZero())
	})

	It("does not publish notifications or marketplace versions", func() {
		Expect(factory.ForRegion("us-east-1").NotificationDriver().PublishNotification(context.Background(), resources.Notification{
			TopicName: "new-images",
		})).To(Succeed())
		Expect(factory.MarketplaceDriver().SubmitVersion(context.Background(), resources.MarketplaceSubmission{
			EntityID: "entity-1",
		})).To(Succeed())

		Expect(wrappedSet.NotificationDriverCallCount()).To(BeZero())
		Expect(wrapped.MarketplaceDriverCallCount()).To(BeZero())
	})

	It("passes identity and region listing through", func() {
		identityDriver := &resourcesfakes.FakeIdentityDriver{}
		regionLister := &resourcesfakes.FakeRegionLister{}
		wrapped.IdentityDriverReturns(identityDriver)
		wrapped.RegionListerReturns(regionLister)

		Expect(factory.IdentityDriver()).To(BeIdenticalTo(identityDriver))
		Expect(factory.RegionLister()).To(BeIdenticalTo(regionLister))
	})
})
