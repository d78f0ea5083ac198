// Code generated by counterfeiter. DO NOT EDIT.
package resourcesfakes

import (
	"ami-publisher/resources"
	"context"
	"sync"
)

type FakePublicationDriver struct {
	MakePublicStub        func(context.Context, resources.Image) error
	makePublicMutex       sync.RWMutex
	makePublicArgsForCall []struct {
		arg1 context.Context
		arg2 resources.Image
	}
	makePublicReturns struct {
		result1 error
	}
	makePublicReturnsOnCall map[int]struct {
		result1 error
	}
	ShareStub        func(context.Context, resources.Image, resources.ShareTargets) error
	shareMutex       sync.RWMutex
	shareArgsForCall []struct {
		arg1 context.Context
		arg2 resources.Image
		arg3 resources.ShareTargets
	}
	shareReturns struct {
		result1 error
	}
	shareReturnsOnCall map[int]struct {
		result1 error
	}
	invocations      map[string][][]interface{}
	invocationsMutex sync.RWMutex
}

func (fake *FakePublicationDriver) MakePublic(arg1 context.Context, arg2 resources.Image) error {
	fake.makePublicMutex.Lock()
	ret, specificReturn := fake.makePublicReturnsOnCall[len(fake.makePublicArgsForCall)]
	fake.makePublicArgsForCall = append(fake.makePublicArgsForCall, struct {
		arg1 context.Context
		arg2 resources.Image
	}{arg1, arg2})
	stub := fake.MakePublicStub
	fakeReturns := fake.makePublicReturns
	fake.recordInvocation("MakePublic", []interface{}{arg1, arg2})
	fake.makePublicMutex.Unlock()
	if stub != nil {
		return stub(arg1, arg2)
	}
	if specificReturn {
		return ret.result1
	}
	return fakeReturns.result1
}

func (fake *FakePublicationDriver) MakePublicCallCount() int {
	fake.makePublicMutex.RLock()
	defer fake.makePublicMutex.RUnlock()
	return len(fake.makePublicArgsForCall)
}

func (fake *FakePublicationDriver) MakePublicCalls(stub func(context.Context, resources.Image) error) {
	fake.makePublicMutex.Lock()
	defer fake.makePublicMutex.Unlock()
	fake.MakePublicStub = stub
}

func (fake *FakePublicationDriver) MakePublicArgsForCall(i int) (context.Context, resources.Image) {
	fake.makePublicMutex.RLock()
	defer fake.makePublicMutex.RUnlock()
	argsForCall := fake.makePublicArgsForCall[i]
	return argsForCall.arg1, argsForCall.arg2
}

func (fake *FakePublicationDriver) MakePublicReturns(result1 error) {
	fake.makePublicMutex.Lock()
	defer fake.makePublicMutex.Unlock()
	fake.MakePublicStub = nil
	fake.makePublicReturns = struct {
		result1 error
	}{result1}
}

func (fake *FakePublicationDriver) MakePublicReturnsOnCall(i int, result1 error) {
	fake.makePublicMutex.Lock()
	defer fake.makePublicMutex.Unlock()
	fake.MakePublicStub = nil
	if fake.makePublicReturnsOnCall == nil {
		fake.makePublicReturnsOnCall = make(map[int]struct {
			result1 error
		})
	}
	fake.makePublicReturnsOnCall[i] = struct {
		result1 error
	}{result1}
}

func (fake *FakePublicationDriver) Share(arg1 context.Context, arg2 resources.Image, arg3 resources.ShareTargets) error {
	fake.shareMutex.Lock()
	ret, specificReturn := fake.shareReturnsOnCall[len(fake.shareArgsForCall)]
	fake.shareArgsForCall = append(fake.shareArgsForCall, struct {
		arg1 context.Context
		arg2 resources.Image
		arg3 resources.ShareTargets
	}{arg1, arg2, arg3})
	stub := fake.ShareStub
	fakeReturns := fake.shareReturns
	fake.recordInvocation("Share", []interface{}{arg1, arg2, arg3})
	fake.shareMutex.Unlock()
	if stub != nil {
		return stub(arg1, arg2, arg3)
	}
	if specificReturn {
		return ret.result1
	}
	return fakeReturns.result1
}

func (fake *FakePublicationDriver) ShareCallCount() int {
	fake.shareMutex.RLock()
	defer fake.shareMutex.RUnlock()
	return len(fake.shareArgsForCall)
}

func (fake *FakePublicationDriver) ShareCalls(stub func(context.Context, resources.Image, resources.ShareTargets) error) {
	fake.shareMutex.Lock()
	defer fake.shareMutex.Unlock()
	fake.ShareStub = stub
}

func (fake *FakePublicationDriver) ShareArgsForCall(i int) (context.Context, resources.Image, resources.ShareTargets) {
	fake.shareMutex.RLock()
	defer fake.shareMutex.RUnlock()
	argsForCall := fake.shareArgsForCall[i]
	return argsForCall.arg1, argsForCall.arg2, argsForCall.arg3
}

func (fake *FakePublicationDriver) ShareReturns(result1 error) {
	fake.shareMutex.Lock()
	defer fake.shareMutex.Unlock()
	fake.ShareStub = nil
	fake.shareReturns = struct {
		result1 error
	}{result1}
}

func (fake *FakePublicationDriver) ShareReturnsOnCall(i int, result1 error) {
	fake.shareMutex.Lock()
	defer fake.shareMutex.Unlock()
	fake.ShareStub = nil
	if fake.shareReturnsOnCall == nil {
		fake.shareReturnsOnCall = make(map[int]struct {
			result1 error
		})
	}
	fake.shareReturnsOnCall[i] = struct {
		result1 error
	}{result1}
}

func (fake *FakePublicationDriver) Invocations() map[string][][]interface{} {
	fake.invocationsMutex.RLock()
	defer fake.invocationsMutex.RUnlock()
	fake.makePublicMutex.RLock()
	defer fake.makePublicMutex.RUnlock()
	fake.shareMutex.RLock()
	defer fake.shareMutex.RUnlock()
	copiedInvocations := map[string][][]interface{}{}
	for key, value := range fake.invocations {
		copiedInvocations[key] = value
	}
	return copiedInvocations
}

func (fake *FakePublicationDriver) recordInvocation(key string, args []interface{}) {
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

var _ resources.PublicationDriver = new(FakePublicationDriver)
