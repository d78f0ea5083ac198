// Code generated by counterfeiter. DO NOT EDIT.
package resourcesfakes

import (
	"ami-publisher/resources"
	"context"
	"sync"
)

type FakeObjectDriver struct {
	EnsureUploadedStub        func(context.Context, resources.ObjectDriverConfig) (resources.StoredObject, error)
	ensureUploadedMutex       sync.RWMutex
	ensureUploadedArgsForCall []struct {
		arg1 context.Context
		arg2 resources.ObjectDriverConfig
	}
	ensureUploadedReturns struct {
		result1 resources.StoredObject
		result2 error
	}
	ensureUploadedReturnsOnCall map[int]struct {
		result1 resources.StoredObject
		result2 error
	}
	invocations      map[string][][]interface{}
	invocationsMutex sync.RWMutex
}

func (fake *FakeObjectDriver) EnsureUploaded(arg1 context.Context, arg2 resources.ObjectDriverConfig) (resources.StoredObject, error) {
	fake.ensureUploadedMutex.Lock()
	ret, specificReturn := fake.ensureUploadedReturnsOnCall[len(fake.ensureUploadedArgsForCall)]
	fake.ensureUploadedArgsForCall = append(fake.ensureUploadedArgsForCall, struct {
		arg1 context.Context
		arg2 resources.ObjectDriverConfig
	}{arg1, arg2})
	stub := fake.EnsureUploadedStub
	fakeReturns := fake.ensureUploadedReturns
	fake.recordInvocation("EnsureUploaded", []interface{}{arg1, arg2})
	fake.ensureUploadedMutex.Unlock()
	if stub != nil {
		return stub(arg1, arg2)
	}
	if specificReturn {
		return ret.result1, ret.result2
	}
	return fakeReturns.result1, fakeReturns.result2
}

func (fake *FakeObjectDriver) EnsureUploadedCallCount() int {
	fake.ensureUploadedMutex.RLock()
	defer fake.ensureUploadedMutex.RUnlock()
	return len(fake.ensureUploadedArgsForCall)
}

func (fake *FakeObjectDriver) EnsureUploadedCalls(stub func(context.Context, resources.ObjectDriverConfig) (resources.StoredObject, error)) {
	fake.ensureUploadedMutex.Lock()
	defer fake.ensureUploadedMutex.Unlock()
	fake.EnsureUploadedStub = stub
}

func (fake *FakeObjectDriver) EnsureUploadedArgsForCall(i int) (context.Context, resources.ObjectDriverConfig) {
	fake.ensureUploadedMutex.RLock()
	defer fake.ensureUploadedMutex.RUnlock()
	argsForCall := fake.ensureUploadedArgsForCall[i]
	return argsForCall.arg1, argsForCall.arg2
}

func (fake *FakeObjectDriver) EnsureUploadedReturns(result1 resources.StoredObject, result2 error) {
	fake.ensureUploadedMutex.Lock()
	defer fake.ensureUploadedMutex.Unlock()
	fake.EnsureUploadedStub = nil
	fake.ensureUploadedReturns = struct {
		result1 resources.StoredObject
		result2 error
	}{result1, result2}
}

func (fake *FakeObjectDriver) EnsureUploadedReturnsOnCall(i int, result1 resources.StoredObject, result2 error) {
	fake.ensureUploadedMutex.Lock()
	defer fake.ensureUploadedMutex.Unlock()
	fake.EnsureUploadedStub = nil
	if fake.ensureUploadedReturnsOnCall == nil {
		fake.ensureUploadedReturnsOnCall = make(map[int]struct {
			result1 resources.StoredObject
			result2 error
		})
	}
	fake.ensureUploadedReturnsOnCall[i] = struct {
		result1 resources.StoredObject
		result2 error
	}{result1, result2}
}

func (fake *FakeObjectDriver) Invocations() map[string][][]interface{} {
	fake.invocationsMutex.RLock()
	defer fake.invocationsMutex.RUnlock()
	fake.ensureUploadedMutex.RLock()
	defer fake.ensureUploadedMutex.RUnlock()
	copiedInvocations := map[string][][]interface{}{}
	for key, value := range fake.invocations {
		copiedInvocations[key] = value
	}
	return copiedInvocations
}

func (fake *FakeObjectDriver) recordInvocation(key string, args []interface{}) {
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

var _ resources.ObjectDriver = new(FakeObjectDriver)
