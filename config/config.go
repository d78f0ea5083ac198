package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/credentials/ec2rolecreds"
	"github.com/aws/aws-sdk-go/aws/credentials/stscreds"
	"github.com/aws/aws-sdk-go/aws/ec2metadata"
	"github.com/aws/aws-sdk-go/aws/session"
	yaml "gopkg.in/yaml.v2"
)

const (
	ArchitectureX86 = "x86_64"
	ArchitectureArm = "arm64"
)

const (
	BootModeLegacy        = "legacy-bios"
	BootModeUefi          = "uefi"
	BootModeUefiPreferred = "uefi-preferred"
)

const (
	SNSProtocolDefault = "default"
	SNSProtocolEmail   = "email"
)

// DefaultPartition is assumed for share targets without an explicit
// partition qualifier.
const DefaultPartition = "aws"

var validPartitions = map[string]bool{
	"aws":        true,
	"aws-cn":     true,
	"aws-us-gov": true,
}

var accountIDPattern = regexp.MustCompile(`^[0-9]{12}$`)

// Convention:
// 1. required
// 2. optional, defaulted
// 3. optional
type S3 struct {
	BucketName   string `yaml:"bucket_name"`
	BucketRegion string `yaml:"bucket_region"`
}

type Source struct {
	Path         string `yaml:"path"`
	Architecture string `yaml:"architecture"`
}

type MarketplaceSecurityGroup struct {
	FromPort   int64    `yaml:"from_port"`
	IPProtocol string   `yaml:"ip_protocol"`
	IPRanges   []string `yaml:"ip_ranges"`
	ToPort     int64    `yaml:"to_port"`
}

// Marketplace carries everything needed to request a new AMI product
// version from the marketplace catalog.
type Marketplace struct {
	EntityID                string                     `yaml:"entity_id"`
	AccessRoleArn           string                     `yaml:"access_role_arn"`
	VersionTitle            string                     `yaml:"version_title"`
	ReleaseNotes            string                     `yaml:"release_notes"`
	UserName                string                     `yaml:"user_name"`
	ScanningPort            int64                      `yaml:"scanning_port"`
	OSName                  string                     `yaml:"os_name"`
	OSVersion               string                     `yaml:"os_version"`
	UsageInstructions       string                     `yaml:"usage_instructions"`
	RecommendedInstanceType string                     `yaml:"recommended_instance_type"`
	SecurityGroups          []MarketplaceSecurityGroup `yaml:"security_groups"`
}

type SSMParameter struct {
	Name           string `yaml:"name"`
	Description    string `yaml:"description"`
	AllowOverwrite bool   `yaml:"allow_overwrite"`
}

// SNSNotification describes one topic to notify after publication. Message
// maps delivery protocols to message bodies; the "default" body is required
// and used for any protocol without an override.
type SNSNotification struct {
	TopicName string            `yaml:"topic_name"`
	Subject   string            `yaml:"subject"`
	Message   map[string]string `yaml:"message"`
	Regions   []string          `yaml:"regions"`
}

type Image struct {
	Description          string            `yaml:"description"`
	Regions              []string          `yaml:"regions"`
	SeparateSnapshot     bool              `yaml:"separate_snapshot"`
	BillingProducts      []string          `yaml:"billing_products"`
	BootMode             string            `yaml:"boot_mode"`
	RootDeviceName       string            `yaml:"root_device_name"`
	RootDeviceVolumeType string            `yaml:"root_device_volume_type"`
	RootDeviceVolumeSize int64             `yaml:"root_device_volume_size"`
	UefiData             string            `yaml:"uefi_data"`
	TpmSupport           string            `yaml:"tpm_support"`
	ImdsSupport          string            `yaml:"imds_support"`
	Share                []string          `yaml:"share"`
	Temporary            bool              `yaml:"temporary"`
	Public               bool              `yaml:"public"`
	Marketplace          *Marketplace      `yaml:"marketplace"`
	SSMParameters        []SSMParameter    `yaml:"ssm_parameter"`
	Groups               []string          `yaml:"groups"`
	Tags                 map[string]string `yaml:"tags"`
	SNS                  []SNSNotification `yaml:"sns"`
}

type Credentials struct {
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	RoleArn   string `yaml:"role_arn"`
	Region    string `yaml:"-"`
}

type Config struct {
	S3          S3                `yaml:"s3"`
	Source      Source            `yaml:"source"`
	Images      map[string]Image  `yaml:"images"`
	Tags        map[string]string `yaml:"tags"`
	Credentials Credentials       `yaml:"credentials"`
}

// document is the top-level YAML structure; everything lives below a single
// root key so config files are self-identifying.
type document struct {
	Publisher Config `yaml:"ami-publisher"`
}

// NewFromReader parses and validates a configuration. Any $token or ${token}
// reference in the raw document is substituted from mapping before parsing;
// an unresolved token is an error, the pipeline must never see one.
func NewFromReader(r io.Reader, mapping map[string]string) (Config, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Config{}, err
	}

	substituted, err := substitute(string(b), mapping)
	if err != nil {
		return Config{}, err
	}

	doc := document{}
	err = yaml.UnmarshalStrict([]byte(substituted), &doc)
	if err != nil {
		return Config{}, err
	}

	c := doc.Publisher
	c.applyDefaults()

	err = c.validate()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}

// Load reads the optional template mapping and the configuration file.
// Relative paths in the config are resolved against the config file's
// directory. A non-empty bucketRegion overrides the configured one.
func Load(configPath string, mappingPath string, bucketRegion string) (Config, error) {
	mapping := map[string]string{}
	if mappingPath != "" {
		mb, err := os.ReadFile(mappingPath)
		if err != nil {
			return Config{}, fmt.Errorf("reading template mapping file: %s", err)
		}
		if err := yaml.Unmarshal(mb, &mapping); err != nil {
			return Config{}, fmt.Errorf("parsing template mapping file: %s", err)
		}
	}

	f, err := os.Open(configPath)
	if err != nil {
		return Config{}, fmt.Errorf("opening config file: %s", err)
	}
	defer f.Close() //nolint:errcheck

	c, err := NewFromReader(f, mapping)
	if err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %s", configPath, err)
	}

	if !filepath.IsAbs(c.Source.Path) {
		c.Source.Path = filepath.Join(filepath.Dir(configPath), c.Source.Path)
	}
	for name, image := range c.Images {
		if image.UefiData != "" && !filepath.IsAbs(image.UefiData) {
			image.UefiData = filepath.Join(filepath.Dir(configPath), image.UefiData)
			c.Images[name] = image
		}
	}

	if bucketRegion != "" {
		c.S3.BucketRegion = bucketRegion
	}
	if c.S3.BucketRegion == "" {
		return Config{}, errors.New("bucket_region must be specified for s3 (config or -region flag)")
	}
	c.Credentials.Region = c.S3.BucketRegion

	return c, nil
}

func substitute(raw string, mapping map[string]string) (string, error) {
	var missing []string
	expanded := os.Expand(raw, func(token string) string {
		val, ok := mapping[token]
		if !ok {
			missing = append(missing, token)
		}
		return val
	})
	if len(missing) > 0 {
		sort.Strings(missing)
		return "", fmt.Errorf("unresolved template tokens in config: %s", strings.Join(missing, ", "))
	}
	return expanded, nil
}

func (c *Config) applyDefaults() {
	for name, image := range c.Images {
		if image.RootDeviceName == "" {
			image.RootDeviceName = "/dev/sda1"
		}
		if image.RootDeviceVolumeType == "" {
			image.RootDeviceVolumeType = "gp3"
		}
		if image.RootDeviceVolumeSize == 0 {
			image.RootDeviceVolumeSize = 8
		}
		if image.Marketplace != nil && image.Marketplace.ScanningPort == 0 {
			image.Marketplace.ScanningPort = 22
		}
		c.Images[name] = image
	}
}

// ImageNames returns the configured image names in stable (sorted) order.
func (c *Config) ImageNames() []string {
	names := make([]string, 0, len(c.Images))
	for name := range c.Images {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Config) validate() error {
	if c.S3.BucketName == "" {
		return errors.New("bucket_name must be specified for s3")
	}

	if c.Source.Path == "" {
		return errors.New("path must be specified for source")
	}

	validArchitecture := map[string]bool{
		ArchitectureX86: true,
		ArchitectureArm: true,
	}
	if !validArchitecture[c.Source.Architecture] {
		return errors.New("source architecture must be one of: ['x86_64', 'arm64']")
	}

	if len(c.Images) == 0 {
		return errors.New("images must be specified")
	}

	for _, name := range c.ImageNames() {
		image := c.Images[name]
		err := image.validate(name, c.Source.Architecture)
		if err != nil {
			return err
		}
	}

	return nil
}

func (i *Image) validate(name string, architecture string) error {
	validBootMode := map[string]bool{
		BootModeLegacy:        true,
		BootModeUefi:          true,
		BootModeUefiPreferred: true,
	}
	if !validBootMode[i.BootMode] {
		return fmt.Errorf("image %s: boot_mode must be one of: ['legacy-bios', 'uefi', 'uefi-preferred']", name)
	}

	if architecture == ArchitectureArm && i.BootMode != BootModeUefi {
		return fmt.Errorf("image %s: boot_mode must be 'uefi' for arm64 images", name)
	}

	if i.TpmSupport != "" && i.TpmSupport != "v2.0" {
		return fmt.Errorf("image %s: tpm_support must be 'v2.0' when set", name)
	}

	if i.TpmSupport != "" && i.BootMode != BootModeUefi {
		return fmt.Errorf("image %s: tpm_support requires boot_mode 'uefi'", name)
	}

	if i.ImdsSupport != "" && i.ImdsSupport != "v2.0" {
		return fmt.Errorf("image %s: imds_support must be 'v2.0' when set", name)
	}

	validVolumeType := map[string]bool{
		"gp2": true,
		"gp3": true,
	}
	if !validVolumeType[i.RootDeviceVolumeType] {
		return fmt.Errorf("image %s: root_device_volume_type must be one of: ['gp2', 'gp3']", name)
	}

	for _, target := range i.Share {
		err := validateShareTarget(name, target)
		if err != nil {
			return err
		}
	}

	if i.Marketplace != nil {
		err := i.Marketplace.validate(name)
		if err != nil {
			return err
		}
	}

	for _, p := range i.SSMParameters {
		if p.Name == "" {
			return fmt.Errorf("image %s: name must be specified for ssm_parameter entries", name)
		}
	}

	for _, n := range i.SNS {
		err := n.validate(name)
		if err != nil {
			return err
		}
	}

	return nil
}

func validateShareTarget(imageName string, target string) error {
	partition, resource := SplitPartition(target)

	if !validPartitions[partition] {
		return fmt.Errorf("image %s: share partition must be one of: ['aws', 'aws-cn', 'aws-us-gov']", imageName)
	}

	// organization and organizational-unit ARNs are passed through as-is
	if strings.HasPrefix(resource, "arn:") {
		return nil
	}

	if !accountIDPattern.MatchString(resource) {
		return fmt.Errorf("image %s: share account ID '%s' must be 12 digits", imageName, resource)
	}

	return nil
}

func (m *Marketplace) validate(imageName string) error {
	required := map[string]string{
		"entity_id":                 m.EntityID,
		"access_role_arn":           m.AccessRoleArn,
		"version_title":             m.VersionTitle,
		"release_notes":             m.ReleaseNotes,
		"user_name":                 m.UserName,
		"os_name":                   m.OSName,
		"os_version":                m.OSVersion,
		"usage_instructions":        m.UsageInstructions,
		"recommended_instance_type": m.RecommendedInstanceType,
	}

	fields := make([]string, 0, len(required))
	for field := range required {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		if required[field] == "" {
			return fmt.Errorf("image %s: %s must be specified for marketplace", imageName, field)
		}
	}

	return nil
}

func (n *SNSNotification) validate(imageName string) error {
	if n.TopicName == "" {
		return fmt.Errorf("image %s: topic_name must be specified for sns entries", imageName)
	}

	if len(n.Subject) == 0 || len(n.Subject) > 99 {
		return fmt.Errorf("image %s: sns subject for topic %s must be 1-99 characters", imageName, n.TopicName)
	}

	if _, ok := n.Message[SNSProtocolDefault]; !ok {
		return fmt.Errorf("image %s: sns message for topic %s requires a 'default' body", imageName, n.TopicName)
	}

	validProtocol := map[string]bool{
		SNSProtocolDefault: true,
		SNSProtocolEmail:   true,
	}
	for protocol := range n.Message {
		if !validProtocol[protocol] {
			return fmt.Errorf("image %s: sns message protocol '%s' for topic %s is not supported", imageName, protocol, n.TopicName)
		}
	}

	return nil
}

// SplitPartition splits a partition-qualified value ("aws-cn:123456789012")
// into partition and resource. Unqualified values belong to the default
// commercial partition.
func SplitPartition(val string) (string, string) {
	if strings.HasPrefix(val, "arn:") {
		return DefaultPartition, val
	}
	partition, resource, found := strings.Cut(val, ":")
	if !found {
		return DefaultPartition, val
	}
	return partition, resource
}

func (configCredentials *Credentials) GetAwsConfig() *aws.Config {
	var awsCredentials *credentials.Credentials

	if configCredentials.AccessKey != "" && configCredentials.SecretKey != "" {
		awsCredentials = credentials.NewStaticCredentialsFromCreds(
			credentials.Value{AccessKeyID: configCredentials.AccessKey, SecretAccessKey: configCredentials.SecretKey},
		)

		if configCredentials.RoleArn != "" {
			staticConfig := aws.NewConfig().WithRegion(configCredentials.Region).WithCredentials(awsCredentials)
			awsCredentials = stscreds.NewCredentials(
				session.Must(session.NewSession(staticConfig)),
				configCredentials.RoleArn,
			)
		}
	} else {
		awsCredentials = credentials.NewCredentials(&ec2rolecreds.EC2RoleProvider{
			Client: ec2metadata.New(session.Must(session.NewSession())),
		})
	}

	return aws.NewConfig().WithRegion(configCredentials.Region).WithCredentials(awsCredentials)
}

// ForRegion returns a copy of the credentials bound to another region.
func (configCredentials Credentials) ForRegion(region string) Credentials {
	configCredentials.Region = region
	return configCredentials
}
