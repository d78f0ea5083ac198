// Code generated by counterfeiter. DO NOT EDIT.
package resourcesfakes

import (
	"ami-publisher/resources"
	"context"
	"sync"
)

type FakeIdentityDriver struct {
	IdentityStub        func(context.Context) (resources.Identity, error)
	identityMutex       sync.RWMutex
	identityArgsForCall []struct {
		arg1 context.Context
	}
	identityReturns struct {
		result1 resources.Identity
		result2 error
	}
	identityReturnsOnCall map[int]struct {
		result1 resources.Identity
		result2 error
	}
	invocations      map[string][][]interface{}
	invocationsMutex sync.RWMutex
}

func (fake *FakeIdentityDriver) Identity(arg1 context.Context) (resources.Identity, error) {
	fake.identityMutex.Lock()
	ret, specificReturn := fake.identityReturnsOnCall[len(fake.identityArgsForCall)]
	fake.identityArgsForCall = append(fake.identityArgsForCall, struct {
		arg1 context.Context
	}{arg1})
	stub := fake.IdentityStub
	fakeReturns := fake.identityReturns
	fake.recordInvocation("Identity", []interface{}{arg1})
	fake.identityMutex.Unlock()
	if stub != nil {
		return stub(arg1)
	}
	if specificReturn {
		return ret.result1, ret.result2
	}
	return fakeReturns.result1, fakeReturns.result2
}

func (fake *FakeIdentityDriver) IdentityCallCount() int {
	fake.identityMutex.RLock()
	defer fake.identityMutex.RUnlock()
	return len(fake.identityArgsForCall)
}

func (fake *FakeIdentityDriver) IdentityCalls(stub func(context.Context) (resources.Identity, error)) {
	fake.identityMutex.Lock()
	defer fake.identityMutex.Unlock()
	fake.IdentityStub = stub
}

func (fake *FakeIdentityDriver) IdentityArgsForCall(i int) context.Context {
	fake.identityMutex.RLock()
	defer fake.identityMutex.RUnlock()
	argsForCall := fake.identityArgsForCall[i]
	return argsForCall.arg1
}

func (fake *FakeIdentityDriver) IdentityReturns(result1 resources.Identity, result2 error) {
	fake.identityMutex.Lock()
	defer fake.identityMutex.Unlock()
	fake.IdentityStub = nil
	fake.identityReturns = struct {
		result1 resources.Identity
		result2 error
	}{result1, result2}
}

func (fake *FakeIdentityDriver) IdentityReturnsOnCall(i int, result1 resources.Identity, result2 error) {
	fake.identityMutex.Lock()
	defer fake.identityMutex.Unlock()
	fake.IdentityStub = nil
	if fake.identityReturnsOnCall == nil {
		fake.identityReturnsOnCall = make(map[int]struct {
			result1 resources.Identity
			result2 error
		})
	}
	fake.identityReturnsOnCall[i] = struct {
		result1 resources.Identity
		result2 error
	}{result1, result2}
}

func (fake *FakeIdentityDriver) Invocations() map[string][][]interface{} {
	fake.invocationsMutex.RLock()
	defer fake.invocationsMutex.RUnlock()
	fake.identityMutex.RLock()
	defer fake.identityMutex.RUnlock()
	copiedInvocations := map[string][][]interface{}{}
	for key, value := range fake.invocations {
		copiedInvocations[key] = value
	}
	return copiedInvocations
}

func (fake *FakeIdentityDriver) recordInvocation(key string, args []interface{}) {
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

var _ resources.IdentityDriver = new(FakeIdentityDriver)
