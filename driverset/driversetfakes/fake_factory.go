// Code generated by counterfeiter. DO NOT EDIT.
package driversetfakes

import (
	"ami-publisher/driverset"
	"ami-publisher/resources"
	"sync"
)

type FakeFactory struct {
	ForRegionStub        func(string) driverset.StandardRegionDriverSet
	forRegionMutex       sync.RWMutex
	forRegionArgsForCall []struct {
		arg1 string
	}
	forRegionReturns struct {
		result1 driverset.StandardRegionDriverSet
	}
	forRegionReturnsOnCall map[int]struct {
		result1 driverset.StandardRegionDriverSet
	}
	IdentityDriverStub        func() resources.IdentityDriver
	identityDriverMutex       sync.RWMutex
	identityDriverArgsForCall []struct {
	}
	identityDriverReturns struct {
		result1 resources.IdentityDriver
	}
	identityDriverReturnsOnCall map[int]struct {
		result1 resources.IdentityDriver
	}
	MarketplaceDriverStub        func() resources.MarketplaceDriver
	marketplaceDriverMutex       sync.RWMutex
	marketplaceDriverArgsForCall []struct {
	}
	marketplaceDriverReturns struct {
		result1 resources.MarketplaceDriver
	}
	marketplaceDriverReturnsOnCall map[int]struct {
		result1 resources.MarketplaceDriver
	}
	ObjectDriverStub        func() resources.ObjectDriver
	objectDriverMutex       sync.RWMutex
	objectDriverArgsForCall []struct {
	}
	objectDriverReturns struct {
		result1 resources.ObjectDriver
	}
	objectDriverReturnsOnCall map[int]struct {
		result1 resources.ObjectDriver
	}
	RegionListerStub        func() resources.RegionLister
	regionListerMutex       sync.RWMutex
	regionListerArgsForCall []struct {
	}
	regionListerReturns struct {
		result1 resources.RegionLister
	}
	regionListerReturnsOnCall map[int]struct {
		result1 resources.RegionLister
	}
	invocations      map[string][][]interface{}
	invocationsMutex sync.RWMutex
}

func (fake *FakeFactory) ForRegion(arg1 string) driverset.StandardRegionDriverSet {
	fake.forRegionMutex.Lock()
	ret, specificReturn := fake.forRegionReturnsOnCall[len(fake.forRegionArgsForCall)]
	fake.forRegionArgsForCall = append(fake.forRegionArgsForCall, struct {
		arg1 string
	}{arg1})
	stub := fake.ForRegionStub
	fakeReturns := fake.forRegionReturns
	fake.recordInvocation("ForRegion", []interface{}{arg1})
	fake.forRegionMutex.Unlock()
	if stub != nil {
		return stub(arg1)
	}
	if specificReturn {
		return ret.result1
	}
	return fakeReturns.result1
}

func (fake *FakeFactory) ForRegionCallCount() int {
	fake.forRegionMutex.RLock()
	defer fake.forRegionMutex.RUnlock()
	return len(fake.forRegionArgsForCall)
}

func (fake *FakeFactory) ForRegionCalls(stub func(string) driverset.StandardRegionDriverSet) {
	fake.forRegionMutex.Lock()
	defer fake.forRegionMutex.Unlock()
	fake.ForRegionStub = stub
}

func (fake *FakeFactory) ForRegionArgsForCall(i int) string {
	fake.forRegionMutex.RLock()
	defer fake.forRegionMutex.RUnlock()
	argsForCall := fake.forRegionArgsForCall[i]
	return argsForCall.arg1
}

func (fake *FakeFactory) ForRegionReturns(result1 driverset.StandardRegionDriverSet) {
	fake.forRegionMutex.Lock()
	defer fake.forRegionMutex.Unlock()
	fake.ForRegionStub = nil
	fake.forRegionReturns = struct {
		result1 driverset.StandardRegionDriverSet
	}{result1}
}

func (fake *FakeFactory) ForRegionReturnsOnCall(i int, result1 driverset.StandardRegionDriverSet) {
	fake.forRegionMutex.Lock()
	defer fake.forRegionMutex.Unlock()
	fake.ForRegionStub = nil
	if fake.forRegionReturnsOnCall == nil {
		fake.forRegionReturnsOnCall = make(map[int]struct {
			result1 driverset.StandardRegionDriverSet
		})
	}
	fake.forRegionReturnsOnCall[i] = struct {
		result1 driverset.StandardRegionDriverSet
	}{result1}
}

func (fake *FakeFactory) IdentityDriver() resources.IdentityDriver {
	fake.identityDriverMutex.Lock()
	ret, specificReturn := fake.identityDriverReturnsOnCall[len(fake.identityDriverArgsForCall)]
	fake.identityDriverArgsForCall = append(fake.identityDriverArgsForCall, struct {
	}{})
	stub := fake.IdentityDriverStub
	fakeReturns := fake.identityDriverReturns
	fake.recordInvocation("IdentityDriver", []interface{}{})
	fake.identityDriverMutex.Unlock()
	if stub != nil {
		return stub()
	}
	if specificReturn {
		return ret.result1
	}
	return fakeReturns.result1
}

func (fake *FakeFactory) IdentityDriverCallCount() int {
	fake.identityDriverMutex.RLock()
	defer fake.identityDriverMutex.RUnlock()
	return len(fake.identityDriverArgsForCall)
}

func (fake *FakeFactory) IdentityDriverCalls(stub func() resources.IdentityDriver) {
	fake.identityDriverMutex.Lock()
	defer fake.identityDriverMutex.Unlock()
	fake.IdentityDriverStub = stub
}

func (fake *FakeFactory) IdentityDriverReturns(result1 resources.IdentityDriver) {
	fake.identityDriverMutex.Lock()
	defer fake.identityDriverMutex.Unlock()
	fake.IdentityDriverStub = nil
	fake.identityDriverReturns = struct {
		result1 resources.IdentityDriver
	}{result1}
}

func (fake *FakeFactory) IdentityDriverReturnsOnCall(i int, result1 resources.IdentityDriver) {
	fake.identityDriverMutex.Lock()
	defer fake.identityDriverMutex.Unlock()
	fake.IdentityDriverStub = nil
	if fake.identityDriverReturnsOnCall == nil {
		fake.identityDriverReturnsOnCall = make(map[int]struct {
			result1 resources.IdentityDriver
		})
	}
	fake.identityDriverReturnsOnCall[i] = struct {
		result1 resources.IdentityDriver
	}{result1}
}

func (fake *FakeFactory) MarketplaceDriver() resources.MarketplaceDriver {
	fake.marketplaceDriverMutex.Lock()
	ret, specificReturn := fake.marketplaceDriverReturnsOnCall[len(fake.marketplaceDriverArgsForCall)]
	fake.marketplaceDriverArgsForCall = append(fake.marketplaceDriverArgsForCall, struct {
	}{})
	stub := fake.MarketplaceDriverStub
	fakeReturns := fake.marketplaceDriverReturns
	fake.recordInvocation("MarketplaceDriver", []interface{}{})
	fake.marketplaceDriverMutex.Unlock()
	if stub != nil {
		return stub()
	}
	if specificReturn {
		return ret.result1
	}
	return fakeReturns.result1
}

func (fake *FakeFactory) MarketplaceDriverCallCount() int {
	fake.marketplaceDriverMutex.RLock()
	defer fake.marketplaceDriverMutex.RUnlock()
	return len(fake.marketplaceDriverArgsForCall)
}

func (fake *FakeFactory) MarketplaceDriverCalls(stub func() resources.MarketplaceDriver) {
	fake.marketplaceDriverMutex.Lock()
	defer fake.marketplaceDriverMutex.Unlock()
	fake.MarketplaceDriverStub = stub
}

func (fake *FakeFactory) MarketplaceDriverReturns(result1 resources.MarketplaceDriver) {
	fake.marketplaceDriverMutex.Lock()
	defer fake.marketplaceDriverMutex.Unlock()
	fake.MarketplaceDriverStub = nil
	fake.marketplaceDriverReturns = struct {
		result1 resources.MarketplaceDriver
	}{result1}
}

func (fake *FakeFactory) MarketplaceDriverReturnsOnCall(i int, result1 resources.MarketplaceDriver) {
	fake.marketplaceDriverMutex.Lock()
	defer fake.marketplaceDriverMutex.Unlock()
	fake.MarketplaceDriverStub = nil
	if fake.marketplaceDriverReturnsOnCall == nil {
		fake.marketplaceDriverReturnsOnCall = make(map[int]struct {
			result1 resources.MarketplaceDriver
		})
	}
	fake.marketplaceDriverReturnsOnCall[i] = struct {
		result1 resources.MarketplaceDriver
	}{result1}
}

func (fake *FakeFactory) ObjectDriver() resources.ObjectDriver {
	fake.objectDriverMutex.Lock()
	ret, specificReturn := fake.objectDriverReturnsOnCall[len(fake.objectDriverArgsForCall)]
	fake.objectDriverArgsForCall = append(fake.objectDriverArgsForCall, struct {
	}{})
	stub := fake.ObjectDriverStub
	fakeReturns := fake.objectDriverReturns
	fake.recordInvocation("ObjectDriver", []interface{}{})
	fake.objectDriverMutex.Unlock()
	if stub != nil {
		return stub()
	}
	if specificReturn {
		return ret.result1
	}
	return fakeReturns.result1
}

func (fake *FakeFactory) ObjectDriverCallCount() int {
	fake.objectDriverMutex.RLock()
	defer fake.objectDriverMutex.RUnlock()
	return len(fake.objectDriverArgsForCall)
}

func (fake *FakeFactory) ObjectDriverCalls(stub func() resources.ObjectDriver) {
	fake.objectDriverMutex.Lock()
	defer fake.objectDriverMutex.Unlock()
	fake.ObjectDriverStub = stub
}

func (fake *FakeFactory) ObjectDriverReturns(result1 resources.ObjectDriver) {
	fake.objectDriverMutex.Lock()
	defer fake.objectDriverMutex.Unlock()
	fake.ObjectDriverStub = nil
	fake.objectDriverReturns = struct {
		result1 resources.ObjectDriver
	}{result1}
}

func (fake *FakeFactory) ObjectDriverReturnsOnCall(i int, result1 resources.ObjectDriver) {
	fake.objectDriverMutex.Lock()
	defer fake.objectDriverMutex.Unlock()
	fake.ObjectDriverStub = nil
	if fake.objectDriverReturnsOnCall == nil {
		fake.objectDriverReturnsOnCall = make(map[int]struct {
			result1 resources.ObjectDriver
		})
	}
	fake.objectDriverReturnsOnCall[i] = struct {
		result1 resources.ObjectDriver
	}{result1}
}

func (fake *FakeFactory) RegionLister() resources.RegionLister {
	fake.regionListerMutex.Lock()
	ret, specificReturn := fake.regionListerReturnsOnCall[len(fake.regionListerArgsForCall)]
	fake.regionListerArgsForCall = append(fake.regionListerArgsForCall, struct {
	}{})
	stub := fake.RegionListerStub
	fakeReturns := fake.regionListerReturns
	fake.recordInvocation("RegionLister", []interface{}{})
	fake.regionListerMutex.Unlock()
	if stub != nil {
		return stub()
	}
	if specificReturn {
		return ret.result1
	}
	return fakeReturns.result1
}

func (fake *FakeFactory) RegionListerCallCount() int {
	fake.regionListerMutex.RLock()
	defer fake.regionListerMutex.RUnlock()
	return len(fake.regionListerArgsForCall)
}

func (fake *FakeFactory) RegionListerCalls(stub func() resources.RegionLister) {
	fake.regionListerMutex.Lock()
	defer fake.regionListerMutex.Unlock()
	fake.RegionListerStub = stub
}

func (fake *FakeFactory) RegionListerReturns(result1 resources.RegionLister) {
	fake.regionListerMutex.Lock()
	defer fake.regionListerMutex.Unlock()
	fake.RegionListerStub = nil
	fake.regionListerReturns = struct {
		result1 resources.RegionLister
	}{result1}
}

func (fake *FakeFactory) RegionListerReturnsOnCall(i int, result1 resources.RegionLister) {
	fake.regionListerMutex.Lock()
	defer fake.regionListerMutex.Unlock()
	fake.RegionListerStub = nil
	if fake.regionListerReturnsOnCall == nil {
		fake.regionListerReturnsOnCall = make(map[int]struct {
			result1 resources.RegionLister
		})
	}
	fake.regionListerReturnsOnCall[i] = struct {
		result1 resources.RegionLister
	}{result1}
}

func (fake *FakeFactory) Invocations() map[string][][]interface{} {
	fake.invocationsMutex.RLock()
	defer fake.invocationsMutex.RUnlock()
	fake.forRegionMutex.RLock()
	defer fake.forRegionMutex.RUnlock()
	fake.identityDriverMutex.RLock()
	defer fake.identityDriverMutex.RUnlock()
	fake.marketplaceDriverMutex.RLock()
	defer fake.marketplaceDriverMutex.RUnlock()
	fake.objectDriverMutex.RLock()
	defer fake.objectDriverMutex.RUnlock()
	fake.regionListerMutex.RLock()
	defer fake.regionListerMutex.RUnlock()
	copiedInvocations := map[string][][]interface{}{}
	for key, value := range fake.invocations {
		copiedInvocations[key] = value
	}
	return copiedInvocations
}

func (fake *FakeFactory) recordInvocation(key string, args []interface{}) {
	fake.invocationsMutex.Lock()
	defer fake.invocationsMutex.Unlock()
	if fake.invocations == nil {
		fake.invocations = map[string][][]interface{}{}
	}
	if fake.invocations[key] == nil {
		fake.invocations[key] = [][]interface{}{}
	}
	fake.invocations[key] = append(fake.invocations[key], args)
}

var _ driverset.Factory = new(FakeFactory)
