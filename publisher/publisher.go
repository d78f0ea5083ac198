package publisher

import (
	"context"
	"fmt"
	"io"
	"log"

	"ami-publisher/collection"
	"ami-publisher/driverset"
	"ami-publisher/resources"

	"golang.org/x/sync/errgroup"
)

// imageConcurrency bounds how many configured images are handled at once
const imageConcurrency = 4

// Create uploads the source once and ensures every selected image exists in
// all its regions. Images failing along the way are reported without
// stopping the others; the returned result covers the regions that
// succeeded.
func Create(ctx context.Context, logDest io.Writer, pubContext *Context, factory driverset.Factory, group string) (*collection.Result, error) {
	cfg := pubContext.Config()

	names := selectImages(logDest, pubContext, group)
	if len(names) == 0 {
		return &collection.Result{}, nil
	}

	object, err := factory.ObjectDriver().EnsureUploaded(ctx, resources.ObjectDriverConfig{
		LocalPath:  cfg.Source.Path,
		BucketName: cfg.S3.BucketName,
		Key:        pubContext.ObjectKey(),
		Tags:       pubContext.Tags(""),
	})
	if err != nil {
		return nil, fmt.Errorf("uploading source: %s", err)
	}

	results := &collection.Result{}
	errCol := collection.Error{}

	imageGroup := errgroup.Group{}
	imageGroup.SetLimit(imageConcurrency)
	for _, name := range names {
		name := name
		imageGroup.Go(func() error {
			images, createErr := NewImagePublisher(logDest, pubContext, name).Create(ctx, factory, object)
			if createErr != nil {
				errCol.Add(name, createErr)
			}
			record(results, pubContext, group, name, images)
			return nil
		})
	}
	imageGroup.Wait() //nolint:errcheck

	return results, errCol.Error()
}

// List reports the image IDs for every selected image and region without
// changing anything. Regions an image is missing from show an empty ID.
func List(ctx context.Context, logDest io.Writer, pubContext *Context, factory driverset.Factory, group string) (*collection.Result, error) {
	results := &collection.Result{}
	errCol := collection.Error{}

	imageGroup := errgroup.Group{}
	imageGroup.SetLimit(imageConcurrency)
	for _, name := range selectImages(logDest, pubContext, group) {
		name := name
		imageGroup.Go(func() error {
			images, listErr := NewImagePublisher(logDest, pubContext, name).List(ctx, factory)
			if listErr != nil {
				errCol.Add(name, listErr)
			}
			record(results, pubContext, group, name, images)
			return nil
		})
	}
	imageGroup.Wait() //nolint:errcheck

	return results, errCol.Error()
}

// Publish runs the publication side effects for every selected image
func Publish(ctx context.Context, logDest io.Writer, pubContext *Context, factory driverset.Factory, group string) error {
	errCol := collection.Error{}

	imageGroup := errgroup.Group{}
	imageGroup.SetLimit(imageConcurrency)
	for _, name := range selectImages(logDest, pubContext, group) {
		name := name
		imageGroup.Go(func() error {
			err := NewImagePublisher(logDest, pubContext, name).Publish(ctx, factory)
			if err != nil {
				errCol.Add(name, err)
			}
			return nil
		})
	}
	imageGroup.Wait() //nolint:errcheck

	return errCol.Error()
}

// Cleanup deregisters the selected temporary images
func Cleanup(ctx context.Context, logDest io.Writer, pubContext *Context, factory driverset.Factory, group string) error {
	errCol := collection.Error{}

	imageGroup := errgroup.Group{}
	imageGroup.SetLimit(imageConcurrency)
	for _, name := range selectImages(logDest, pubContext, group) {
		name := name
		imageGroup.Go(func() error {
			err := NewImagePublisher(logDest, pubContext, name).Cleanup(ctx, factory)
			if err != nil {
				errCol.Add(name, err)
			}
			return nil
		})
	}
	imageGroup.Wait() //nolint:errcheck

	return errCol.Error()
}

// selectImages returns the configured image names in stable order, limited
// to the given group when one is set
func selectImages(logDest io.Writer, pubContext *Context, group string) []string {
	cfg := pubContext.Config()
	logger := log.New(logDest, "Publisher ", log.LstdFlags)

	var names []string
	for _, name := range cfg.ImageNames() {
		if group != "" && !contains(cfg.Images[name].Groups, group) {
			logger.Printf("skipping image %s because not part of group %s\n", name, group)
			continue
		}
		names = append(names, name)
	}
	return names
}

// record fills both result views from one image's per-region outcome
func record(results *collection.Result, pubContext *Context, group string, name string, images map[string]resources.Image) {
	imageGroups := pubContext.Config().Images[name].Groups

	for region, image := range images {
		results.AddImage(name, region, image.ID)
		for _, imageGroup := range imageGroups {
			if group != "" && imageGroup != group {
				continue
			}
			results.AddGroupImage(imageGroup, name, region, image.ID)
		}
	}
}

func contains(list []string, val string) bool {
	for _, entry := range list {
		if entry == val {
			return true
		}
	}
	return false
}
