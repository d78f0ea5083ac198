package resources

import (
	"fmt"
	"strings"
)

// AmbiguityError reports that a lookup which must resolve to at most one
// resource matched several. The pipeline refuses to guess which one is
// canonical; the conflicting resources have to be cleaned up out-of-band.
type AmbiguityError struct {
	Resource string
	Key      string
	Region   string
	IDs      []string
}

func (e *AmbiguityError) Error() string {
	return fmt.Sprintf("found %d %ss (%s) matching '%s' in region %s, there should be at most 1",
		len(e.IDs), e.Resource, strings.Join(e.IDs, ", "), e.Key, e.Region)
}
