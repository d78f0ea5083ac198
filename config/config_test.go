package config_test

import (
	"strings"

	"ami-publisher/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func parseConfig(s string) (config.Config, error) {
	return config.NewFromReader(strings.NewReader(s), nil)
}

func parseConfigWithMapping(s string, mapping map[string]string) (config.Config, error) {
	return config.NewFromReader(strings.NewReader(s), mapping)
}

var _ = Describe("Config", func() {
	baseYAML := `
ami-publisher:
  s3:
    bucket_name: publish-bucket
    bucket_region: us-east-1
  source:
    path: /images/source.vmdk
    architecture: x86_64
  images:
    img-a:
      description: Image A
      boot_mode: uefi
`

	It("parses a minimal valid configuration", func() {
		c, err := parseConfig(baseYAML)
		Expect(err).ToNot(HaveOccurred())
		Expect(c.S3.BucketName).To(Equal("publish-bucket"))
		Expect(c.S3.BucketRegion).To(Equal("us-east-1"))
		Expect(c.Source.Path).To(Equal("/images/source.vmdk"))
		Expect(c.Source.Architecture).To(Equal(config.ArchitectureX86))
		Expect(c.Images).To(HaveKey("img-a"))
	})

	It("applies root device defaults per image", func() {
		c, err := parseConfig(baseYAML)
		Expect(err).ToNot(HaveOccurred())

		image := c.Images["img-a"]
		Expect(image.RootDeviceName).To(Equal("/dev/sda1"))
		Expect(image.RootDeviceVolumeType).To(Equal("gp3"))
		Expect(image.RootDeviceVolumeSize).To(Equal(int64(8)))
	})

	It("rejects unknown fields", func() {
		_, err := parseConfig(`
ami-publisher:
  s3:
    bucket_name: publish-bucket
    bucket_regio: us-east-1
  source:
    path: /images/source.vmdk
    architecture: x86_64
  images:
    img-a:
      boot_mode: uefi
`)
		Expect(err).To(HaveOccurred())
	})

	It("requires a bucket name", func() {
		_, err := parseConfig(`
ami-publisher:
  source:
    path: /images/source.vmdk
    architecture: x86_64
  images:
    img-a:
      boot_mode: uefi
`)
		Expect(err).To(MatchError(ContainSubstring("bucket_name must be specified")))
	})

	It("requires a known source architecture", func() {
		_, err := parseConfig(strings.Replace(baseYAML, "x86_64", "i386", 1))
		Expect(err).To(MatchError(ContainSubstring("architecture must be one of")))
	})

	It("requires at least one image", func() {
		_, err := parseConfig(`
ami-publisher:
  s3:
    bucket_name: publish-bucket
  source:
    path: /images/source.vmdk
    architecture: x86_64
`)
		Expect(err).To(MatchError(ContainSubstring("images must be specified")))
	})

	It("requires a known boot mode", func() {
		_, err := parseConfig(strings.Replace(baseYAML, "boot_mode: uefi", "boot_mode: bios", 1))
		Expect(err).To(MatchError(ContainSubstring("boot_mode must be one of")))
	})

	It("requires uefi boot for arm64 images", func() {
		yaml := strings.Replace(baseYAML, "x86_64", "arm64", 1)
		yaml = strings.Replace(yaml, "boot_mode: uefi", "boot_mode: legacy-bios", 1)
		_, err := parseConfig(yaml)
		Expect(err).To(MatchError(ContainSubstring("boot_mode must be 'uefi' for arm64")))
	})

	It("requires uefi boot for tpm support", func() {
		yaml := strings.Replace(baseYAML, "boot_mode: uefi", "boot_mode: legacy-bios\n      tpm_support: v2.0", 1)
		_, err := parseConfig(yaml)
		Expect(err).To(MatchError(ContainSubstring("tpm_support requires boot_mode 'uefi'")))
	})

	It("only accepts v2.0 for imds support", func() {
		yaml := strings.Replace(baseYAML, "boot_mode: uefi", "boot_mode: uefi\n      imds_support: v1.0", 1)
		_, err := parseConfig(yaml)
		Expect(err).To(MatchError(ContainSubstring("imds_support must be 'v2.0'")))
	})

	It("only accepts gp2 and gp3 root volumes", func() {
		yaml := strings.Replace(baseYAML, "boot_mode: uefi", "boot_mode: uefi\n      root_device_volume_type: io1", 1)
		_, err := parseConfig(yaml)
		Expect(err).To(MatchError(ContainSubstring("root_device_volume_type must be one of")))
	})

	Context("share targets", func() {
		It("accepts plain and partition-qualified account IDs", func() {
			yaml := strings.Replace(baseYAML, "boot_mode: uefi",
				"boot_mode: uefi\n      share: ['123456789012', 'aws-cn:210987654321']", 1)
			_, err := parseConfig(yaml)
			Expect(err).ToNot(HaveOccurred())
		})

		It("rejects unknown partitions", func() {
			yaml := strings.Replace(baseYAML, "boot_mode: uefi",
				"boot_mode: uefi\n      share: ['aws-iso:123456789012']", 1)
			_, err := parseConfig(yaml)
			Expect(err).To(MatchError(ContainSubstring("share partition must be one of")))
		})

		It("rejects malformed account IDs", func() {
			yaml := strings.Replace(baseYAML, "boot_mode: uefi",
				"boot_mode: uefi\n      share: ['12345']", 1)
			_, err := parseConfig(yaml)
			Expect(err).To(MatchError(ContainSubstring("must be 12 digits")))
		})

		It("accepts organization ARNs", func() {
			yaml := strings.Replace(baseYAML, "boot_mode: uefi",
				"boot_mode: uefi\n      share: ['arn:aws:organizations::123456789012:organization/o-123example']", 1)
			_, err := parseConfig(yaml)
			Expect(err).ToNot(HaveOccurred())
		})
	})

	Context("marketplace", func() {
		marketplaceYAML := `
ami-publisher:
  s3:
    bucket_name: publish-bucket
    bucket_region: us-east-1
  source:
    path: /images/source.vmdk
    architecture: x86_64
  images:
    img-a:
      boot_mode: uefi
      marketplace:
        entity_id: entity-1
        access_role_arn: arn:aws:iam::123456789012:role/marketplace
        version_title: 1.0.0
        release_notes: notes
        user_name: ubuntu
        os_name: UBUNTU
        os_version: "24.04"
        usage_instructions: boot it
        recommended_instance_type: t3.medium
`

		It("parses a complete marketplace section and defaults the scanning port", func() {
			c, err := parseConfig(marketplaceYAML)
			Expect(err).ToNot(HaveOccurred())
			Expect(c.Images["img-a"].Marketplace.ScanningPort).To(Equal(int64(22)))
		})

		It("requires every marketplace field", func() {
			yaml := strings.Replace(marketplaceYAML, "        release_notes: notes\n", "", 1)
			_, err := parseConfig(yaml)
			Expect(err).To(MatchError(ContainSubstring("release_notes must be specified for marketplace")))
		})
	})

	Context("sns", func() {
		snsYAML := `
ami-publisher:
  s3:
    bucket_name: publish-bucket
    bucket_region: us-east-1
  source:
    path: /images/source.vmdk
    architecture: x86_64
  images:
    img-a:
      boot_mode: uefi
      sns:
        - topic_name: new-images
          subject: new image available
          message:
            default: the new image is out
`

		It("parses a valid sns section", func() {
			c, err := parseConfig(snsYAML)
			Expect(err).ToNot(HaveOccurred())
			Expect(c.Images["img-a"].SNS).To(HaveLen(1))
			Expect(c.Images["img-a"].SNS[0].TopicName).To(Equal("new-images"))
		})

		It("requires a topic name", func() {
			yaml := strings.Replace(snsYAML, "topic_name: new-images", "topic_name: ''", 1)
			_, err := parseConfig(yaml)
			Expect(err).To(MatchError(ContainSubstring("topic_name must be specified")))
		})

		It("limits the subject to 99 characters", func() {
			yaml := strings.Replace(snsYAML, "subject: new image available",
				"subject: "+strings.Repeat("x", 100), 1)
			_, err := parseConfig(yaml)
			Expect(err).To(MatchError(ContainSubstring("must be 1-99 characters")))
		})

		It("requires a default message body", func() {
			yaml := strings.Replace(snsYAML, "default: the new image is out", "email: the new image is out", 1)
			_, err := parseConfig(yaml)
			Expect(err).To(MatchError(ContainSubstring("requires a 'default' body")))
		})

		It("rejects unsupported message protocols", func() {
			yaml := strings.Replace(snsYAML, "message:\n            default: the new image is out",
				"message:\n            default: the new image is out\n            sms: short", 1)
			_, err := parseConfig(yaml)
			Expect(err).To(MatchError(ContainSubstring("protocol 'sms'")))
		})
	})

	Context("template substitution", func() {
		templatedYAML := `
ami-publisher:
  s3:
    bucket_name: $bucket
    bucket_region: us-east-1
  source:
    path: /images/source.vmdk
    architecture: x86_64
  images:
    img-${serial}:
      boot_mode: uefi
`

		It("substitutes tokens from the mapping", func() {
			c, err := parseConfigWithMapping(templatedYAML, map[string]string{
				"bucket": "mapped-bucket",
				"serial": "20260829",
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(c.S3.BucketName).To(Equal("mapped-bucket"))
			Expect(c.Images).To(HaveKey("img-20260829"))
		})

		It("errors on unresolved tokens", func() {
			_, err := parseConfigWithMapping(templatedYAML, map[string]string{"bucket": "mapped-bucket"})
			Expect(err).To(MatchError(ContainSubstring("unresolved template tokens in config: serial")))
		})
	})

	It("returns image names in sorted order", func() {
		c, err := parseConfig(`
ami-publisher:
  s3:
    bucket_name: publish-bucket
  source:
    path: /images/source.vmdk
    architecture: x86_64
  images:
    img-c:
      boot_mode: uefi
    img-a:
      boot_mode: uefi
    img-b:
      boot_mode: uefi
`)
		Expect(err).ToNot(HaveOccurred())
		Expect(c.ImageNames()).To(Equal([]string{"img-a", "img-b", "img-c"}))
	})
})

var _ = Describe("SplitPartition", func() {
	It("splits a partition-qualified value", func() {
		partition, resource := config.SplitPartition("aws-cn:123456789012")
		Expect(partition).To(Equal("aws-cn"))
		Expect(resource).To(Equal("123456789012"))
	})

	It("assumes the default partition for unqualified values", func() {
		partition, resource := config.SplitPartition("123456789012")
		Expect(partition).To(Equal(config.DefaultPartition))
		Expect(resource).To(Equal("123456789012"))
	})

	It("keeps ARNs intact", func() {
		arn := "arn:aws:organizations::123456789012:organization/o-123example"
		partition, resource := config.SplitPartition(arn)
		Expect(partition).To(Equal(config.DefaultPartition))
		Expect(resource).To(Equal(arn))
	})
})
