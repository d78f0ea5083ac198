// Code generated by counterfeiter. DO NOT EDIT.
package resourcesfakes

import (
	"ami-publisher/resources"
	"context"
	"sync"
)

type FakeMarketplaceDriver struct {
	SubmitVersionStub        func(context.Context, resources.MarketplaceSubmission) error
	submitVersionMutex       sync.RWMutex
	submitVersionArgsForCall []struct {
		arg1 context.Context
		arg2 resources.MarketplaceSubmission
	}
	submitVersionReturns struct {
		result1 error
	}
	submitVersionReturnsOnCall map[int]struct {
		result1 error
	}
	invocations      map[string][][]interface{}
	invocationsMutex sync.RWMutex
}

func (fake *FakeMarketplaceDriver) SubmitVersion(arg1 context.Context, arg2 resources.MarketplaceSubmission) error {
	fake.submitVersionMutex.Lock()
	ret, specificReturn := fake.submitVersionReturnsOnCall[len(fake.submitVersionArgsForCall)]
	fake.submitVersionArgsForCall = append(fake.submitVersionArgsForCall, struct {
		arg1 context.Context
		arg2 resources.MarketplaceSubmission
	}{arg1, arg2})
	stub := fake.SubmitVersionStub
	fakeReturns := fake.submitVersionReturns
	fake.recordInvocation("SubmitVersion", []interface{}{arg1, arg2})
	fake.submitVersionMutex.Unlock()
	if stub != nil {
		return stub(arg1, arg2)
	}
	if specificReturn {
		return ret.result1
	}
	return fakeReturns.result1
}

func (fake *FakeMarketplaceDriver) SubmitVersionCallCount() int {
	fake.submitVersionMutex.RLock()
	defer fake.submitVersionMutex.RUnlock()
	return len(fake.submitVersionArgsForCall)
}

func (fake *FakeMarketplaceDriver) SubmitVersionCalls(stub func(context.Context, resources.MarketplaceSubmission) error) {
	fake.submitVersionMutex.Lock()
	defer fake.submitVersionMutex.Unlock()
	fake.SubmitVersionStub = stub
}

func (fake *FakeMarketplaceDriver) SubmitVersionArgsForCall(i int) (context.Context, resources.MarketplaceSubmission) {
	fake.submitVersionMutex.RLock()
	defer fake.submitVersionMutex.RUnlock()
	argsForCall := fake.submitVersionArgsForCall[i]
	return argsForCall.arg1, argsForCall.arg2
}

func (fake *FakeMarketplaceDriver) SubmitVersionReturns(result1 error) {
	fake.submitVersionMutex.Lock()
	defer fake.submitVersionMutex.Unlock()
	fake.SubmitVersionStub = nil
	fake.submitVersionReturns = struct {
		result1 error
	}{result1}
}

func (fake *FakeMarketplaceDriver) SubmitVersionReturnsOnCall(i int, result1 error) {
	fake.submitVersionMutex.Lock()
	defer fake.submitVersionMutex.Unlock()
	fake.SubmitVersionStub = nil
	if fake.submitVersionReturnsOnCall == nil {
		fake.submitVersionReturnsOnCall = make(map[int]struct {
			result1 error
		})
	}
	fake.submitVersionReturnsOnCall[i] = struct {
		result1 error
	}{result1}
}

func (fake *FakeMarketplaceDriver) Invocations() map[string][][]interface{} {
	fake.invocationsMutex.RLock()
	defer fake.invocationsMutex.RUnlock()
	fake.submitVersionMutex.RLock()
	defer fake.submitVersionMutex.RUnlock()
	copiedInvocations := map[string][][]interface{}{}
	for key, value := range fake.invocations {
		copiedInvocations[key] = value
	}
	return copiedInvocations
}

func (fake *FakeMarketplaceDriver) recordInvocation(key string, args []interface{}) {
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

var _ resources.MarketplaceDriver = new(FakeMarketplaceDriver)
