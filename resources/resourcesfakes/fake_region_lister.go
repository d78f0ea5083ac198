// Code generated by counterfeiter. DO NOT EDIT.
package resourcesfakes

import (
	"ami-publisher/resources"
	"context"
	"sync"
)

type FakeRegionLister struct {
	RegionsStub        func(context.Context) ([]string, error)
	regionsMutex       sync.RWMutex
	regionsArgsForCall []struct {
		arg1 context.Context
	}
	regionsReturns struct {
		result1 []string
		result2 error
	}
	regionsReturnsOnCall map[int]struct {
		result1 []string
		result2 error
	}
	invocations      map[string][][]interface{}
	invocationsMutex sync.RWMutex
}

func (fake *FakeRegionLister) Regions(arg1 context.Context) ([]string, error) {
	fake.regionsMutex.Lock()
	ret, specificReturn := fake.regionsReturnsOnCall[len(fake.regionsArgsForCall)]
	fake.regionsArgsForCall = append(fake.regionsArgsForCall, struct {
		arg1 context.Context
	}{arg1})
	stub := fake.RegionsStub
	fakeReturns := fake.regionsReturns
	fake.recordInvocation("Regions", []interface{}{arg1})
	fake.regionsMutex.Unlock()
	if stub != nil {
		return stub(arg1)
	}
	if specificReturn {
		return ret.result1, ret.result2
	}
	return fakeReturns.result1, fakeReturns.result2
}

func (fake *FakeRegionLister) RegionsCallCount() int {
	fake.regionsMutex.RLock()
	defer fake.regionsMutex.RUnlock()
	return len(fake.regionsArgsForCall)
}

func (fake *FakeRegionLister) RegionsCalls(stub func(context.Context) ([]string, error)) {
	fake.regionsMutex.Lock()
	defer fake.regionsMutex.Unlock()
	fake.RegionsStub = stub
}

func (fake *FakeRegionLister) RegionsArgsForCall(i int) context.Context {
	fake.regionsMutex.RLock()
	defer fake.regionsMutex.RUnlock()
	argsForCall := fake.regionsArgsForCall[i]
	return argsForCall.arg1
}

func (fake *FakeRegionLister) RegionsReturns(result1 []string, result2 error) {
	fake.regionsMutex.Lock()
	defer fake.regionsMutex.Unlock()
	fake.RegionsStub = nil
	fake.regionsReturns = struct {
		result1 []string
		result2 error
	}{result1, result2}
}

func (fake *FakeRegionLister) RegionsReturnsOnCall(i int, result1 []string, result2 error) {
	fake.regionsMutex.Lock()
	defer fake.regionsMutex.Unlock()
	fake.RegionsStub = nil
	if fake.regionsReturnsOnCall == nil {
		fake.regionsReturnsOnCall = make(map[int]struct {
			result1 []string
			result2 error
		})
	}
	fake.regionsReturnsOnCall[i] = struct {
		result1 []string
		result2 error
	}{result1, result2}
}

func (fake *FakeRegionLister) Invocations() map[string][][]interface{} {
	fake.invocationsMutex.RLock()
	defer fake.invocationsMutex.RUnlock()
	fake.regionsMutex.RLock()
	defer fake.regionsMutex.RUnlock()
	copiedInvocations := map[string][][]interface{}{}
	for key, value := range fake.invocations {
		copiedInvocations[key] = value
	}
	return copiedInvocations
}

func (fake *FakeRegionLister) recordInvocation(key string, args []interface{}) {
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

var _ resources.RegionLister = new(FakeRegionLister)
