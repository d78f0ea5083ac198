package publisher_test

import (
	"context"
	"os"
	"path/filepath"

	"ami-publisher/config"
	"ami-publisher/publisher"
	"ami-publisher/resources"
	"ami-publisher/resources/resourcesfakes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Context", func() {
	var (
		cfg          config.Config
		identity     resources.Identity
		regionLister *resourcesfakes.FakeRegionLister
	)

	newContext := func() *publisher.Context {
		pc, err := publisher.NewContext(GinkgoWriter, cfg, identity, regionLister)
		Expect(err).ToNot(HaveOccurred())
		return pc
	}

	BeforeEach(func() {
		sourcePath := filepath.Join(GinkgoT().TempDir(), "source.vmdk")
		Expect(os.WriteFile(sourcePath, []byte("image-bytes"), 0600)).To(Succeed())

		identity = resources.Identity{Account: "123456789012", Partition: "aws"}
		regionLister = &resourcesfakes.FakeRegionLister{}
		regionLister.RegionsReturns([]string{"eu-west-1", "us-east-1"}, nil)

		cfg = config.Config{
			S3:     config.S3{BucketName: "publish-bucket", BucketRegion: "us-east-1"},
			Source: config.Source{Path: sourcePath, Architecture: config.ArchitectureX86},
			Images: map[string]config.Image{
				"img-a": {BootMode: config.BootModeUefi},
			},
		}
	})

	It("errors when the source file can not be fingerprinted", func() {
		cfg.Source.Path = filepath.Join(GinkgoT().TempDir(), "missing.vmdk")
		_, err := publisher.NewContext(GinkgoWriter, cfg, identity, regionLister)
		Expect(err).To(MatchError(ContainSubstring("fingerprinting source")))
	})

	It("uses the source digest as the object key", func() {
		pc := newContext()
		Expect(pc.ObjectKey()).To(Equal(pc.SourceDigest()))
		Expect(pc.SourceDigest()).To(HaveLen(64))
	})

	Describe("Tags", func() {
		It("lets image tags override config tags and config tags override source tags", func() {
			cfg.Tags = map[string]string{
				"team":                          "platform",
				"ami-publisher:source:filename": "overridden-by-config",
			}
			image := cfg.Images["img-a"]
			image.Tags = map[string]string{"team": "imaging"}
			cfg.Images["img-a"] = image

			tags := newContext().Tags("img-a")
			Expect(tags).To(HaveKeyWithValue("team", "imaging"))
			Expect(tags).To(HaveKeyWithValue("ami-publisher:source:filename", "overridden-by-config"))
			Expect(tags).To(HaveKeyWithValue("ami-publisher:source:architecture", "x86_64"))
		})
	})

	Describe("ImageRegions", func() {
		It("returns the configured regions untouched", func() {
			image := cfg.Images["img-a"]
			image.Regions = []string{"ap-southeast-2"}
			cfg.Images["img-a"] = image

			regions, err := newContext().ImageRegions(context.Background(), "img-a")
			Expect(err).ToNot(HaveOccurred())
			Expect(regions).To(Equal([]string{"ap-southeast-2"}))
			Expect(regionLister.RegionsCallCount()).To(BeZero())
		})

		It("falls back to all enabled regions", func() {
			regions, err := newContext().ImageRegions(context.Background(), "img-a")
			Expect(err).ToNot(HaveOccurred())
			Expect(regions).To(Equal([]string{"eu-west-1", "us-east-1"}))
		})

		It("queries the enabled regions only once", func() {
			pc := newContext()
			_, err := pc.ImageRegions(context.Background(), "img-a")
			Expect(err).ToNot(HaveOccurred())
			_, err = pc.ImageRegions(context.Background(), "img-a")
			Expect(err).ToNot(HaveOccurred())
			Expect(regionLister.RegionsCallCount()).To(Equal(1))
		})
	})

	Describe("NotificationRegions", func() {
		It("returns all enabled regions for an empty allowlist", func() {
			regions, err := newContext().NotificationRegions(context.Background(), nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(regions).To(Equal([]string{"eu-west-1", "us-east-1"}))
		})

		It("drops allowlisted regions outside the partition", func() {
			regions, err := newContext().NotificationRegions(context.Background(), []string{"us-east-1", "us-iso-east-1"})
			Expect(err).ToNot(HaveOccurred())
			Expect(regions).To(Equal([]string{"us-east-1"}))
		})
	})

	Describe("ShareTargets", func() {
		It("keeps only targets of the running partition", func() {
			image := cfg.Images["img-a"]
			image.Share = []string{
				"210987654321",
				"aws:555555555555",
				"aws-cn:999999999999",
				"arn:aws:organizations::123456789012:organization/o-123example",
				"arn:aws:organizations::123456789012:ou/o-123example/ou-456",
			}
			cfg.Images["img-a"] = image

			targets := newContext().ShareTargets("img-a")
			Expect(targets.AccountIDs).To(Equal([]string{"210987654321", "555555555555"}))
			Expect(targets.OrganizationArns).To(Equal([]string{"arn:aws:organizations::123456789012:organization/o-123example"}))
			Expect(targets.OrganizationalUnitArns).To(Equal([]string{"arn:aws:organizations::123456789012:ou/o-123example/ou-456"}))
		})

		It("is empty when every target belongs to another partition", func() {
			image := cfg.Images["img-a"]
			image.Share = []string{"aws-cn:999999999999"}
			cfg.Images["img-a"] = image

			Expect(newContext().ShareTargets("img-a").Empty()).To(BeTrue())
		})
	})

	Describe("SnapshotName", func() {
		It("is the source digest for plain images", func() {
			pc := newContext()
			Expect(pc.SnapshotName("img-a")).To(Equal(pc.SourceDigest()))
		})

		It("is salted for images with billing products", func() {
			image := cfg.Images["img-a"]
			image.BillingProducts = []string{"bp-1"}
			cfg.Images["img-a"] = image

			pc := newContext()
			Expect(pc.SnapshotName("img-a")).ToNot(Equal(pc.SourceDigest()))
		})
	})
})
