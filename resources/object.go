package resources

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

import "context"

// ObjectDriver abstracts the content-addressed upload of the source machine
// image to object storage
//
//counterfeiter:generate . ObjectDriver
type ObjectDriver interface {
	EnsureUploaded(context.Context, ObjectDriverConfig) (StoredObject, error)
}

// StoredObject represents the uploaded machine image in the object store
type StoredObject struct {
	Bucket string
	Key    string
	// Reused is true when the object already existed and nothing was uploaded
	Reused bool
}

// ObjectDriverConfig identifies the local file and its content-addressed
// destination key
type ObjectDriverConfig struct {
	LocalPath  string
	BucketName string
	Key        string
	Tags       map[string]string
}
