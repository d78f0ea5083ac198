package publisher_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"ami-publisher/config"
	"ami-publisher/fingerprint"
	"ami-publisher/publisher"
	"ami-publisher/resources"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Publisher", func() {
	var (
		h            *harness
		cfg          config.Config
		identity     resources.Identity
		sourceDigest string
	)

	newImage := func(modify func(*config.Image)) config.Image {
		image := config.Image{
			Description:          "test image",
			Regions:              []string{"us-east-1", "eu-west-1"},
			BootMode:             config.BootModeUefi,
			RootDeviceName:       "/dev/sda1",
			RootDeviceVolumeType: "gp3",
			RootDeviceVolumeSize: 8,
		}
		if modify != nil {
			modify(&image)
		}
		return image
	}

	pubContext := func() *publisher.Context {
		pc, err := publisher.NewContext(GinkgoWriter, cfg, identity, h.regionLister)
		Expect(err).ToNot(HaveOccurred())
		return pc
	}

	BeforeEach(func() {
		h = newHarness("us-east-1", "eu-west-1")
		identity = resources.Identity{Account: "123456789012", Partition: "aws"}

		sourcePath := filepath.Join(GinkgoT().TempDir(), "source.vmdk")
		Expect(os.WriteFile(sourcePath, []byte("image-bytes"), 0600)).To(Succeed())

		var err error
		sourceDigest, err = fingerprint.File(sourcePath)
		Expect(err).ToNot(HaveOccurred())

		cfg = config.Config{
			S3:     config.S3{BucketName: "publish-bucket", BucketRegion: "us-east-1"},
			Source: config.Source{Path: sourcePath, Architecture: config.ArchitectureX86},
			Images: map[string]config.Image{
				"img-a": newImage(nil),
			},
		}
	})

	Describe("Create", func() {
		It("uploads the source once under its content-addressed key", func() {
			_, err := publisher.Create(context.Background(), GinkgoWriter, pubContext(), h.factory, "")
			Expect(err).ToNot(HaveOccurred())

			Expect(h.object.EnsureUploadedCallCount()).To(Equal(1))
			_, objectConfig := h.object.EnsureUploadedArgsForCall(0)
			Expect(objectConfig.BucketName).To(Equal("publish-bucket"))
			Expect(objectConfig.Key).To(Equal(sourceDigest))
			Expect(objectConfig.LocalPath).To(Equal(cfg.Source.Path))
		})

		It("creates the snapshot in the bucket region and copies it to the others", func() {
			_, err := publisher.Create(context.Background(), GinkgoWriter, pubContext(), h.factory, "")
			Expect(err).ToNot(HaveOccurred())

			Expect(h.regions["us-east-1"].snapshot.EnsureSnapshotCallCount()).To(Equal(1))
			_, snapshotConfig := h.regions["us-east-1"].snapshot.EnsureSnapshotArgsForCall(0)
			Expect(snapshotConfig.Name).To(Equal(sourceDigest))
			Expect(snapshotConfig.BucketName).To(Equal("publish-bucket"))
			Expect(snapshotConfig.ObjectKey).To(Equal(sourceDigest))

			Expect(h.regions["eu-west-1"].snapshot.EnsureSnapshotCallCount()).To(BeZero())
			Expect(h.regions["eu-west-1"].snapshotCopy.EnsureCopyCallCount()).To(Equal(1))
			_, copyConfig := h.regions["eu-west-1"].snapshotCopy.EnsureCopyArgsForCall(0)
			Expect(copyConfig.Name).To(Equal(sourceDigest))
			Expect(copyConfig.SourceRegion).To(Equal("us-east-1"))
			Expect(copyConfig.SourceSnapshotID).To(Equal("snap-us-east-1"))
		})

		It("registers the image in every region from the region's snapshot", func() {
			results, err := publisher.Create(context.Background(), GinkgoWriter, pubContext(), h.factory, "")
			Expect(err).ToNot(HaveOccurred())

			for _, region := range []string{"us-east-1", "eu-west-1"} {
				Expect(h.regions[region].image.EnsureImageCallCount()).To(Equal(1))
				_, imageConfig := h.regions[region].image.EnsureImageArgsForCall(0)
				Expect(imageConfig.Name).To(Equal("img-a"))
				Expect(imageConfig.Description).To(Equal("test image"))
				Expect(imageConfig.Architecture).To(Equal(config.ArchitectureX86))
				Expect(imageConfig.BootMode).To(Equal(config.BootModeUefi))
				Expect(imageConfig.SnapshotID).To(Equal("snap-" + region))
				Expect(imageConfig.RootDeviceName).To(Equal("/dev/sda1"))
				Expect(imageConfig.VolumeType).To(Equal("gp3"))
				Expect(imageConfig.VolumeSizeGB).To(Equal(int64(8)))
			}

			Expect(results.ByName()).To(Equal(map[string]map[string]string{
				"img-a": {"us-east-1": "ami-us-east-1", "eu-west-1": "ami-eu-west-1"},
			}))
		})

		It("tags every resource with the source fingerprint", func() {
			_, err := publisher.Create(context.Background(), GinkgoWriter, pubContext(), h.factory, "")
			Expect(err).ToNot(HaveOccurred())

			_, snapshotConfig := h.regions["us-east-1"].snapshot.EnsureSnapshotArgsForCall(0)
			Expect(snapshotConfig.Tags).To(HaveKeyWithValue("ami-publisher:source:filename", "source.vmdk"))
			Expect(snapshotConfig.Tags).To(HaveKeyWithValue("ami-publisher:source:architecture", "x86_64"))
			Expect(snapshotConfig.Tags).To(HaveKeyWithValue("ami-publisher:source:sha256", sourceDigest))
		})

		It("does not share images when no share targets are configured", func() {
			_, err := publisher.Create(context.Background(), GinkgoWriter, pubContext(), h.factory, "")
			Expect(err).ToNot(HaveOccurred())

			Expect(h.regions["us-east-1"].publication.ShareCallCount()).To(BeZero())
			Expect(h.regions["eu-west-1"].publication.ShareCallCount()).To(BeZero())
		})

		It("shares images with the targets of the running partition", func() {
			cfg.Images["img-a"] = newImage(func(image *config.Image) {
				image.Share = []string{"210987654321", "aws-cn:999999999999"}
			})

			_, err := publisher.Create(context.Background(), GinkgoWriter, pubContext(), h.factory, "")
			Expect(err).ToNot(HaveOccurred())

			for _, region := range []string{"us-east-1", "eu-west-1"} {
				Expect(h.regions[region].publication.ShareCallCount()).To(Equal(1))
				_, image, targets := h.regions[region].publication.ShareArgsForCall(0)
				Expect(image.ID).To(Equal("ami-" + region))
				Expect(targets.AccountIDs).To(Equal([]string{"210987654321"}))
				Expect(targets.OrganizationArns).To(BeEmpty())
			}
		})

		It("derives a salted snapshot name for images with a separate snapshot", func() {
			cfg.Images["img-a"] = newImage(func(image *config.Image) {
				image.SeparateSnapshot = true
			})

			_, err := publisher.Create(context.Background(), GinkgoWriter, pubContext(), h.factory, "")
			Expect(err).ToNot(HaveOccurred())

			_, snapshotConfig := h.regions["us-east-1"].snapshot.EnsureSnapshotArgsForCall(0)
			Expect(snapshotConfig.Name).To(Equal(fingerprint.SnapshotName(sourceDigest, "img-a", true, nil)))
			Expect(snapshotConfig.Name).ToNot(Equal(sourceDigest))
		})

		It("only handles images of the requested group", func() {
			cfg.Images = map[string]config.Image{
				"img-a": newImage(func(image *config.Image) { image.Groups = []string{"group-1"} }),
				"img-b": newImage(func(image *config.Image) { image.Groups = []string{"group-2"} }),
			}

			results, err := publisher.Create(context.Background(), GinkgoWriter, pubContext(), h.factory, "group-1")
			Expect(err).ToNot(HaveOccurred())

			Expect(results.ByName()).To(HaveKey("img-a"))
			Expect(results.ByName()).ToNot(HaveKey("img-b"))
			Expect(results.ByGroup()).To(HaveKey("group-1"))
			Expect(results.ByGroup()).ToNot(HaveKey("group-2"))
		})

		It("records group membership in the grouped view", func() {
			cfg.Images["img-a"] = newImage(func(image *config.Image) {
				image.Groups = []string{"group-1", "group-2"}
			})

			results, err := publisher.Create(context.Background(), GinkgoWriter, pubContext(), h.factory, "")
			Expect(err).ToNot(HaveOccurred())

			byGroup := results.ByGroup()
			Expect(byGroup["group-1"]["img-a"]).To(HaveKeyWithValue("us-east-1", "ami-us-east-1"))
			Expect(byGroup["group-2"]["img-a"]).To(HaveKeyWithValue("us-east-1", "ami-us-east-1"))
		})

		It("keeps handling the remaining images when one fails", func() {
			cfg.Images = map[string]config.Image{
				"img-a": newImage(func(image *config.Image) { image.SeparateSnapshot = true }),
				"img-b": newImage(nil),
			}
			h.regions["us-east-1"].snapshot.EnsureSnapshotStub = func(_ context.Context, c resources.SnapshotDriverConfig) (resources.Snapshot, error) {
				if c.Name != sourceDigest {
					return resources.Snapshot{}, errors.New("import failed")
				}
				return resources.Snapshot{ID: "snap-us-east-1", Region: "us-east-1"}, nil
			}

			results, err := publisher.Create(context.Background(), GinkgoWriter, pubContext(), h.factory, "")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("img-a"))
			Expect(err.Error()).To(ContainSubstring("import failed"))

			Expect(results.ByName()).To(HaveKey("img-b"))
			Expect(results.ByName()).ToNot(HaveKey("img-a"))
		})

		It("keeps registering the other regions when one region's copy fails", func() {
			h.regions["eu-west-1"].snapshotCopy.EnsureCopyReturns(resources.Snapshot{}, errors.New("copy failed"))

			results, err := publisher.Create(context.Background(), GinkgoWriter, pubContext(), h.factory, "")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("img-a/eu-west-1"))

			Expect(h.regions["us-east-1"].image.EnsureImageCallCount()).To(Equal(1))
			Expect(h.regions["eu-west-1"].image.EnsureImageCallCount()).To(BeZero())
			Expect(results.ByName()["img-a"]).To(HaveKeyWithValue("us-east-1", "ami-us-east-1"))
			Expect(results.ByName()["img-a"]).ToNot(HaveKey("eu-west-1"))
		})

		It("fails without touching snapshots when the upload fails", func() {
			h.object.EnsureUploadedStub = nil
			h.object.EnsureUploadedReturns(resources.StoredObject{}, errors.New("upload failed"))

			_, err := publisher.Create(context.Background(), GinkgoWriter, pubContext(), h.factory, "")
			Expect(err).To(MatchError(ContainSubstring("upload failed")))
			Expect(h.regions["us-east-1"].snapshot.EnsureSnapshotCallCount()).To(BeZero())
		})
	})

	Describe("List", func() {
		It("reports the image ID per region and an empty ID where missing", func() {
			h.regions["us-east-1"].image.FindImageReturns(resources.Image{ID: "ami-1", Region: "us-east-1"}, true, nil)
			h.regions["eu-west-1"].image.FindImageReturns(resources.Image{}, false, nil)

			results, err := publisher.List(context.Background(), GinkgoWriter, pubContext(), h.factory, "")
			Expect(err).ToNot(HaveOccurred())

			Expect(results.ByName()).To(Equal(map[string]map[string]string{
				"img-a": {"us-east-1": "ami-1", "eu-west-1": ""},
			}))
		})

		It("does not modify anything", func() {
			results, err := publisher.List(context.Background(), GinkgoWriter, pubContext(), h.factory, "")
			Expect(err).ToNot(HaveOccurred())
			Expect(results).ToNot(BeNil())

			Expect(h.object.EnsureUploadedCallCount()).To(BeZero())
			for _, region := range []string{"us-east-1", "eu-west-1"} {
				Expect(h.regions[region].snapshot.EnsureSnapshotCallCount()).To(BeZero())
				Expect(h.regions[region].image.EnsureImageCallCount()).To(BeZero())
			}
		})
	})

	Describe("Publish", func() {
		BeforeEach(func() {
			for region, fakes := range h.regions {
				region := region
				fakes.image.FindImageStub = func(_ context.Context, name string) (resources.Image, bool, error) {
					return resources.Image{ID: "ami-" + region, Region: region, SnapshotID: "snap-" + region}, true, nil
				}
			}
		})

		It("makes public images and their snapshots public in every region", func() {
			cfg.Images["img-a"] = newImage(func(image *config.Image) { image.Public = true })

			err := publisher.Publish(context.Background(), GinkgoWriter, pubContext(), h.factory, "")
			Expect(err).ToNot(HaveOccurred())

			for _, region := range []string{"us-east-1", "eu-west-1"} {
				Expect(h.regions[region].publication.MakePublicCallCount()).To(Equal(1))
				_, image := h.regions[region].publication.MakePublicArgsForCall(0)
				Expect(image.ID).To(Equal("ami-" + region))
			}
		})

		It("never publishes temporary images", func() {
			cfg.Images["img-a"] = newImage(func(image *config.Image) {
				image.Public = true
				image.Temporary = true
			})

			err := publisher.Publish(context.Background(), GinkgoWriter, pubContext(), h.factory, "")
			Expect(err).ToNot(HaveOccurred())

			for _, region := range []string{"us-east-1", "eu-west-1"} {
				Expect(h.regions[region].publication.MakePublicCallCount()).To(BeZero())
				Expect(h.regions[region].parameter.PushParameterCallCount()).To(BeZero())
				Expect(h.regions[region].notification.PublishNotificationCallCount()).To(BeZero())
			}
		})

		It("does not make private images public", func() {
			err := publisher.Publish(context.Background(), GinkgoWriter, pubContext(), h.factory, "")
			Expect(err).ToNot(HaveOccurred())

			for _, region := range []string{"us-east-1", "eu-west-1"} {
				Expect(h.regions[region].publication.MakePublicCallCount()).To(BeZero())
			}
		})

		It("submits a marketplace version with the marketplace region's image", func() {
			cfg.Images["img-a"] = newImage(func(image *config.Image) {
				image.Public = true
				image.Marketplace = &config.Marketplace{
					EntityID:                "entity-1",
					AccessRoleArn:           "arn:aws:iam::123456789012:role/marketplace",
					VersionTitle:            "1.0.0",
					ReleaseNotes:            "notes",
					UserName:                "ubuntu",
					ScanningPort:            22,
					OSName:                  "UBUNTU",
					OSVersion:               "24.04",
					UsageInstructions:       "boot it",
					RecommendedInstanceType: "t3.medium",
				}
			})

			err := publisher.Publish(context.Background(), GinkgoWriter, pubContext(), h.factory, "")
			Expect(err).ToNot(HaveOccurred())

			Expect(h.marketplace.SubmitVersionCallCount()).To(Equal(1))
			_, submission := h.marketplace.SubmitVersionArgsForCall(0)
			Expect(submission.ImageID).To(Equal("ami-us-east-1"))
			Expect(submission.EntityID).To(Equal("entity-1"))
			Expect(submission.VersionTitle).To(Equal("1.0.0"))
		})

		It("does not submit to the marketplace outside the commercial partition", func() {
			h = newHarness("cn-north-1")
			identity = resources.Identity{Account: "123456789012", Partition: "aws-cn"}
			h.regions["cn-north-1"].image.FindImageReturns(resources.Image{ID: "ami-cn-north-1", Region: "cn-north-1"}, true, nil)

			cfg.Images["img-a"] = newImage(func(image *config.Image) {
				image.Regions = []string{"cn-north-1"}
				image.Public = true
				image.Marketplace = &config.Marketplace{EntityID: "entity-1"}
			})

			err := publisher.Publish(context.Background(), GinkgoWriter, pubContext(), h.factory, "")
			Expect(err).ToNot(HaveOccurred())

			Expect(h.marketplace.SubmitVersionCallCount()).To(BeZero())
			Expect(h.regions["cn-north-1"].publication.MakePublicCallCount()).To(Equal(1))
		})

		It("does not submit to the marketplace for non-public images", func() {
			cfg.Images["img-a"] = newImage(func(image *config.Image) {
				image.Marketplace = &config.Marketplace{EntityID: "entity-1"}
			})

			err := publisher.Publish(context.Background(), GinkgoWriter, pubContext(), h.factory, "")
			Expect(err).ToNot(HaveOccurred())
			Expect(h.marketplace.SubmitVersionCallCount()).To(BeZero())
		})

		It("pushes each parameter with the region's image ID", func() {
			cfg.Images["img-a"] = newImage(func(image *config.Image) {
				image.SSMParameters = []config.SSMParameter{
					{Name: "/images/latest", Description: "latest image", AllowOverwrite: true},
				}
			})

			err := publisher.Publish(context.Background(), GinkgoWriter, pubContext(), h.factory, "")
			Expect(err).ToNot(HaveOccurred())

			for _, region := range []string{"us-east-1", "eu-west-1"} {
				Expect(h.regions[region].parameter.PushParameterCallCount()).To(Equal(1))
				_, parameter := h.regions[region].parameter.PushParameterArgsForCall(0)
				Expect(parameter.Name).To(Equal("/images/latest"))
				Expect(parameter.Value).To(Equal("ami-" + region))
				Expect(parameter.AllowOverwrite).To(BeTrue())
			}
		})

		It("notifies topics only in the allowlisted regions of the partition", func() {
			cfg.Images["img-a"] = newImage(func(image *config.Image) {
				image.SNS = []config.SNSNotification{
					{
						TopicName: "new-images",
						Subject:   "new image available",
						Message:   map[string]string{config.SNSProtocolDefault: "the new image is out"},
						Regions:   []string{"eu-west-1", "us-west-2"},
					},
				}
			})

			err := publisher.Publish(context.Background(), GinkgoWriter, pubContext(), h.factory, "")
			Expect(err).ToNot(HaveOccurred())

			Expect(h.regions["us-east-1"].notification.PublishNotificationCallCount()).To(BeZero())
			Expect(h.regions["eu-west-1"].notification.PublishNotificationCallCount()).To(Equal(1))
			_, notification := h.regions["eu-west-1"].notification.PublishNotificationArgsForCall(0)
			Expect(notification.TopicName).To(Equal("new-images"))
			Expect(notification.Subject).To(Equal("new image available"))
			Expect(notification.Body).To(HaveKeyWithValue("default", "the new image is out"))
		})

		It("collects failures per image and region", func() {
			cfg.Images["img-a"] = newImage(func(image *config.Image) { image.Public = true })
			h.regions["eu-west-1"].publication.MakePublicReturns(errors.New("not allowed"))

			err := publisher.Publish(context.Background(), GinkgoWriter, pubContext(), h.factory, "")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("img-a/eu-west-1: not allowed"))

			Expect(h.regions["us-east-1"].publication.MakePublicCallCount()).To(Equal(1))
		})
	})

	Describe("Cleanup", func() {
		It("deregisters temporary images in every region", func() {
			cfg.Images["img-a"] = newImage(func(image *config.Image) { image.Temporary = true })
			for region, fakes := range h.regions {
				fakes.image.FindImageReturns(resources.Image{ID: "ami-" + region, Region: region}, true, nil)
			}

			err := publisher.Cleanup(context.Background(), GinkgoWriter, pubContext(), h.factory, "")
			Expect(err).ToNot(HaveOccurred())

			for _, region := range []string{"us-east-1", "eu-west-1"} {
				Expect(h.regions[region].image.DeregisterImageCallCount()).To(Equal(1))
				_, image := h.regions[region].image.DeregisterImageArgsForCall(0)
				Expect(image.ID).To(Equal("ami-" + region))
			}
		})

		It("leaves public images alone even when marked temporary", func() {
			cfg.Images["img-a"] = newImage(func(image *config.Image) { image.Temporary = true })
			for region, fakes := range h.regions {
				fakes.image.FindImageReturns(resources.Image{ID: "ami-" + region, Region: region, Public: true}, true, nil)
			}

			err := publisher.Cleanup(context.Background(), GinkgoWriter, pubContext(), h.factory, "")
			Expect(err).ToNot(HaveOccurred())

			for _, region := range []string{"us-east-1", "eu-west-1"} {
				Expect(h.regions[region].image.DeregisterImageCallCount()).To(BeZero())
			}
		})

		It("never touches non-temporary images", func() {
			err := publisher.Cleanup(context.Background(), GinkgoWriter, pubContext(), h.factory, "")
			Expect(err).ToNot(HaveOccurred())

			for _, region := range []string{"us-east-1", "eu-west-1"} {
				Expect(h.regions[region].image.FindImageCallCount()).To(BeZero())
				Expect(h.regions[region].image.DeregisterImageCallCount()).To(BeZero())
			}
		})

		It("skips regions the image does not exist in", func() {
			cfg.Images["img-a"] = newImage(func(image *config.Image) { image.Temporary = true })
			h.regions["us-east-1"].image.FindImageReturns(resources.Image{ID: "ami-us-east-1", Region: "us-east-1"}, true, nil)
			h.regions["eu-west-1"].image.FindImageReturns(resources.Image{}, false, nil)

			err := publisher.Cleanup(context.Background(), GinkgoWriter, pubContext(), h.factory, "")
			Expect(err).ToNot(HaveOccurred())

			Expect(h.regions["us-east-1"].image.DeregisterImageCallCount()).To(Equal(1))
			Expect(h.regions["eu-west-1"].image.DeregisterImageCallCount()).To(BeZero())
		})
	})
})
