// Code generated by counterfeiter. DO NOT EDIT.
package resourcesfakes

import (
	"ami-publisher/resources"
	"context"
	"sync"
)

type FakeSnapshotCopyDriver struct {
	EnsureCopyStub        func(context.Context, resources.SnapshotCopyDriverConfig) (resources.Snapshot, error)
	ensureCopyMutex       sync.RWMutex
	ensureCopyArgsForCall []struct {
		arg1 context.Context
		arg2 resources.SnapshotCopyDriverConfig
	}
	ensureCopyReturns struct {
		result1 resources.Snapshot
		result2 error
	}
	ensureCopyReturnsOnCall map[int]struct {
		result1 resources.Snapshot
		result2 error
	}
	invocations      map[string][][]interface{}
	invocationsMutex sync.RWMutex
}

func (fake *FakeSnapshotCopyDriver) EnsureCopy(arg1 context.Context, arg2 resources.SnapshotCopyDriverConfig) (resources.Snapshot, error) {
	fake.ensureCopyMutex.Lock()
	ret, specificReturn := fake.ensureCopyReturnsOnCall[len(fake.ensureCopyArgsForCall)]
	fake.ensureCopyArgsForCall = append(fake.ensureCopyArgsForCall, struct {
		arg1 context.Context
		arg2 resources.SnapshotCopyDriverConfig
	}{arg1, arg2})
	stub := fake.EnsureCopyStub
	fakeReturns := fake.ensureCopyReturns
	fake.recordInvocation("EnsureCopy", []interface{}{arg1, arg2})
	fake.ensureCopyMutex.Unlock()
	if stub != nil {
		return stub(arg1, arg2)
	}
	if specificReturn {
		return ret.result1, ret.result2
	}
	return fakeReturns.result1, fakeReturns.result2
}

func (fake *FakeSnapshotCopyDriver) EnsureCopyCallCount() int {
	fake.ensureCopyMutex.RLock()
	defer fake.ensureCopyMutex.RUnlock()
	return len(fake.ensureCopyArgsForCall)
}

func (fake *FakeSnapshotCopyDriver) EnsureCopyCalls(stub func(context.Context, resources.SnapshotCopyDriverConfig) (resources.Snapshot, error)) {
	fake.ensureCopyMutex.Lock()
	defer fake.ensureCopyMutex.Unlock()
	fake.EnsureCopyStub = stub
}

func (fake *FakeSnapshotCopyDriver) EnsureCopyArgsForCall(i int) (context.Context, resources.SnapshotCopyDriverConfig) {
	fake.ensureCopyMutex.RLock()
	defer fake.ensureCopyMutex.RUnlock()
	argsForCall := fake.ensureCopyArgsForCall[i]
	return argsForCall.arg1, argsForCall.arg2
}

func (fake *FakeSnapshotCopyDriver) EnsureCopyReturns(result1 resources.Snapshot, result2 error) {
	fake.ensureCopyMutex.Lock()
	defer fake.ensureCopyMutex.Unlock()
	fake.EnsureCopyStub = nil
	fake.ensureCopyReturns = struct {
		result1 resources.Snapshot
		result2 error
	}{result1, result2}
}

func (fake *FakeSnapshotCopyDriver) EnsureCopyReturnsOnCall(i int, result1 resources.Snapshot, result2 error) {
	fake.ensureCopyMutex.Lock()
	defer fake.ensureCopyMutex.Unlock()
	fake.EnsureCopyStub = nil
	if fake.ensureCopyReturnsOnCall == nil {
		fake.ensureCopyReturnsOnCall = make(map[int]struct {
			result1 resources.Snapshot
			result2 error
		})
	}
	fake.ensureCopyReturnsOnCall[i] = struct {
		result1 resources.Snapshot
		result2 error
	}{result1, result2}
}

func (fake *FakeSnapshotCopyDriver) Invocations() map[string][][]interface{} {
	fake.invocationsMutex.RLock()
	defer fake.invocationsMutex.RUnlock()
	fake.ensureCopyMutex.RLock()
	defer fake.ensureCopyMutex.RUnlock()
	copiedInvocations := map[string][][]interface{}{}
	for key, value := range fake.invocations {
		copiedInvocations[key] = value
	}
	return copiedInvocations
}

func (fake *FakeSnapshotCopyDriver) recordInvocation(key string, args []interface{}) {
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

var _ resources.SnapshotCopyDriver = new(FakeSnapshotCopyDriver)
