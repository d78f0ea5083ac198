package publisher

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"ami-publisher/config"
	"ami-publisher/fingerprint"
	"ami-publisher/resources"
)

const (
	tagSourceFilename     = "ami-publisher:source:filename"
	tagSourceArchitecture = "ami-publisher:source:architecture"
	tagSourceDigest       = "ami-publisher:source:sha256"
)

// Context carries everything derived once per run that the per-image
// publishers share: the source fingerprint, the caller identity and the
// region topology of the partition.
type Context struct {
	cfg          config.Config
	sourceDigest string
	identity     resources.Identity
	regionLister resources.RegionLister
	logger       *log.Logger

	lock       sync.Mutex
	allRegions []string
}

// NewContext fingerprints the source file and binds the run to the given
// identity
func NewContext(logDest io.Writer, cfg config.Config, identity resources.Identity, regionLister resources.RegionLister) (*Context, error) {
	sourceDigest, err := fingerprint.File(cfg.Source.Path)
	if err != nil {
		return nil, fmt.Errorf("fingerprinting source %s: %s", cfg.Source.Path, err)
	}

	return &Context{
		cfg:          cfg,
		sourceDigest: sourceDigest,
		identity:     identity,
		regionLister: regionLister,
		logger:       log.New(logDest, "Publisher ", log.LstdFlags),
	}, nil
}

func (c *Context) Config() config.Config {
	return c.cfg
}

func (c *Context) Identity() resources.Identity {
	return c.identity
}

// SourceDigest is the sha256 hexdigest of the source file
func (c *Context) SourceDigest() string {
	return c.sourceDigest
}

// ObjectKey is the content-addressed key of the source in the bucket: the
// digest itself, so an unchanged source maps to the same object
func (c *Context) ObjectKey() string {
	return c.sourceDigest
}

// SnapshotName derives the lookup name for the image's snapshot from the
// source digest and the image's snapshot-affecting configuration
func (c *Context) SnapshotName(imageName string) string {
	image := c.cfg.Images[imageName]
	return fingerprint.SnapshotName(c.sourceDigest, imageName, image.SeparateSnapshot, image.BillingProducts)
}

// Tags merges the source tags, the config-wide tags and the image specific
// tags. Image tags win over config tags, config tags win over source tags.
func (c *Context) Tags(imageName string) map[string]string {
	tags := map[string]string{
		tagSourceFilename:     filepath.Base(c.cfg.Source.Path),
		tagSourceArchitecture: c.cfg.Source.Architecture,
		tagSourceDigest:       c.sourceDigest,
	}
	for key, value := range c.cfg.Tags {
		tags[key] = value
	}
	for key, value := range c.cfg.Images[imageName].Tags {
		tags[key] = value
	}
	return tags
}

// ImageRegions returns the regions the image is handled in: the configured
// regions as-is, or every region enabled in the partition when none are
// configured
func (c *Context) ImageRegions(ctx context.Context, imageName string) ([]string, error) {
	image := c.cfg.Images[imageName]
	if len(image.Regions) > 0 {
		return image.Regions, nil
	}
	return c.enabledRegions(ctx)
}

// NotificationRegions intersects the allowlist with the regions enabled in
// the partition, or returns all enabled regions for an empty allowlist.
// Allowlisted regions outside the partition are ignored with a warning.
func (c *Context) NotificationRegions(ctx context.Context, allowlist []string) ([]string, error) {
	enabled, err := c.enabledRegions(ctx)
	if err != nil {
		return nil, err
	}
	if len(allowlist) == 0 {
		return enabled, nil
	}

	enabledSet := map[string]bool{}
	for _, region := range enabled {
		enabledSet[region] = true
	}

	var regions []string
	var ignored []string
	for _, region := range allowlist {
		if enabledSet[region] {
			regions = append(regions, region)
		} else {
			ignored = append(ignored, region)
		}
	}
	if len(ignored) > 0 {
		sort.Strings(ignored)
		c.logger.Printf("regions %s are not available in the current partition. ignoring those\n",
			strings.Join(ignored, ", "))
	}
	return regions, nil
}

// ShareTargets resolves the image's share list against the running
// partition. Targets qualified for another partition are dropped; plain
// account IDs belong to the default partition.
func (c *Context) ShareTargets(imageName string) resources.ShareTargets {
	targets := resources.ShareTargets{}
	for _, entry := range c.cfg.Images[imageName].Share {
		partition, resource := config.SplitPartition(entry)
		if strings.HasPrefix(resource, "arn:") {
			partition = arnPartition(resource)
		}
		if partition != c.identity.Partition {
			c.logger.Printf("skipping share target %s (partition %s, running in %s)\n",
				entry, partition, c.identity.Partition)
			continue
		}

		switch {
		case strings.Contains(resource, ":organization/"):
			targets.OrganizationArns = append(targets.OrganizationArns, resource)
		case strings.Contains(resource, ":ou/"):
			targets.OrganizationalUnitArns = append(targets.OrganizationalUnitArns, resource)
		default:
			targets.AccountIDs = append(targets.AccountIDs, resource)
		}
	}
	return targets
}

func (c *Context) enabledRegions(ctx context.Context) ([]string, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.allRegions == nil {
		regions, err := c.regionLister.Regions(ctx)
		if err != nil {
			return nil, err
		}
		c.allRegions = regions
	}
	return c.allRegions, nil
}

func arnPartition(arn string) string {
	parts := strings.SplitN(arn, ":", 3)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
