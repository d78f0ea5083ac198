package resources

import "context"

// ParameterDriver abstracts pushing image identifiers to the parameter store
//
//counterfeiter:generate . ParameterDriver
type ParameterDriver interface {
	// PushParameter writes the parameter and reports whether a write
	// happened. An existing parameter with AllowOverwrite unset is left
	// untouched and reported as not written, never as an error.
	PushParameter(context.Context, Parameter) (bool, error)
}

// Parameter is one parameter-store entry holding an image ID
type Parameter struct {
	Name           string
	Description    string
	Value          string
	AllowOverwrite bool
	Tags           map[string]string
}

// NotificationDriver abstracts publishing a notification to a pub/sub topic
//
//counterfeiter:generate . NotificationDriver
type NotificationDriver interface {
	PublishNotification(context.Context, Notification) error
}

// Notification is one message for one topic in the driver's region. Body
// maps delivery protocols to message bodies; the "default" body is required.
type Notification struct {
	TopicName string
	Subject   string
	Body      map[string]string
}

// IdentityDriver resolves the account and partition the run operates in
//
//counterfeiter:generate . IdentityDriver
type IdentityDriver interface {
	Identity(context.Context) (Identity, error)
}

// Identity is the caller's account and partition
type Identity struct {
	Account   string
	Partition string
}

// RegionLister enumerates the regions available in the current partition
//
//counterfeiter:generate . RegionLister
type RegionLister interface {
	Regions(context.Context) ([]string, error)
}
