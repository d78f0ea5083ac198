package driverset

import (
	"io"
	"sync"

	"ami-publisher/config"
	"ami-publisher/driver"
	"ami-publisher/resources"
)

// MarketplaceRegion is where the marketplace catalog API is served; the
// image submitted to the marketplace must exist there
const MarketplaceRegion = "us-east-1"

//counterfeiter:generate . Factory

// Factory hands out the per-region driver sets and the account-scoped
// drivers that are not bound to a publication region
type Factory interface {
	ForRegion(region string) StandardRegionDriverSet
	ObjectDriver() resources.ObjectDriver
	MarketplaceDriver() resources.MarketplaceDriver
	IdentityDriver() resources.IdentityDriver
	RegionLister() resources.RegionLister
}

type standardFactory struct {
	logDest  io.Writer
	creds    config.Credentials
	identity resources.Identity

	lock       sync.Mutex
	regionSets map[string]StandardRegionDriverSet
}

// NewFactory creates a Factory building SDK-backed drivers on the given
// credentials. The identity scopes drivers that need the calling account.
func NewFactory(logDest io.Writer, creds config.Credentials, identity resources.Identity) Factory {
	return &standardFactory{
		logDest:    logDest,
		creds:      creds,
		identity:   identity,
		regionSets: map[string]StandardRegionDriverSet{},
	}
}

func (f *standardFactory) ForRegion(region string) StandardRegionDriverSet {
	f.lock.Lock()
	defer f.lock.Unlock()

	if set, ok := f.regionSets[region]; ok {
		return set
	}

	set := NewStandardRegionDriverSet(f.logDest, f.creds.ForRegion(region), f.identity)
	f.regionSets[region] = set
	return set
}

func (f *standardFactory) ObjectDriver() resources.ObjectDriver {
	return driver.NewObjectDriver(f.logDest, f.creds)
}

func (f *standardFactory) MarketplaceDriver() resources.MarketplaceDriver {
	return driver.NewMarketplaceDriver(f.logDest, f.creds.ForRegion(MarketplaceRegion))
}

func (f *standardFactory) IdentityDriver() resources.IdentityDriver {
	return driver.NewIdentityDriver(f.logDest, f.creds)
}

func (f *standardFactory) RegionLister() resources.RegionLister {
	return driver.NewRegionLister(f.logDest, f.creds)
}
