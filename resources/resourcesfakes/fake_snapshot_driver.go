// Code generated by counterfeiter. DO NOT EDIT.
package resourcesfakes

import (
	"ami-publisher/resources"
	"context"
	"sync"
)

type FakeSnapshotDriver struct {
	EnsureSnapshotStub        func(context.Context, resources.SnapshotDriverConfig) (resources.Snapshot, error)
	ensureSnapshotMutex       sync.RWMutex
	ensureSnapshotArgsForCall []struct {
		arg1 context.Context
		arg2 resources.SnapshotDriverConfig
	}
	ensureSnapshotReturns struct {
		result1 resources.Snapshot
		result2 error
	}
	ensureSnapshotReturnsOnCall map[int]struct {
		result1 resources.Snapshot
		result2 error
	}
	invocations      map[string][][]interface{}
	invocationsMutex sync.RWMutex
}

func (fake *FakeSnapshotDriver) EnsureSnapshot(arg1 context.Context, arg2 resources.SnapshotDriverConfig) (resources.Snapshot, error) {
	fake.ensureSnapshotMutex.Lock()
	ret, specificReturn := fake.ensureSnapshotReturnsOnCall[len(fake.ensureSnapshotArgsForCall)]
	fake.ensureSnapshotArgsForCall = append(fake.ensureSnapshotArgsForCall, struct {
		arg1 context.Context
		arg2 resources.SnapshotDriverConfig
	}{arg1, arg2})
	stub := fake.EnsureSnapshotStub
	fakeReturns := fake.ensureSnapshotReturns
	fake.recordInvocation("EnsureSnapshot", []interface{}{arg1, arg2})
	fake.ensureSnapshotMutex.Unlock()
	if stub != nil {
		return stub(arg1, arg2)
	}
	if specificReturn {
		return ret.result1, ret.result2
	}
	return fakeReturns.result1, fakeReturns.result2
}

func (fake *FakeSnapshotDriver) EnsureSnapshotCallCount() int {
	fake.ensureSnapshotMutex.RLock()
	defer fake.ensureSnapshotMutex.RUnlock()
	return len(fake.ensureSnapshotArgsForCall)
}

func (fake *FakeSnapshotDriver) EnsureSnapshotCalls(stub func(context.Context, resources.SnapshotDriverConfig) (resources.Snapshot, error)) {
	fake.ensureSnapshotMutex.Lock()
	defer fake.ensureSnapshotMutex.Unlock()
	fake.EnsureSnapshotStub = stub
}

func (fake *FakeSnapshotDriver) EnsureSnapshotArgsForCall(i int) (context.Context, resources.SnapshotDriverConfig) {
	fake.ensureSnapshotMutex.RLock()
	defer fake.ensureSnapshotMutex.RUnlock()
	argsForCall := fake.ensureSnapshotArgsForCall[i]
	return argsForCall.arg1, argsForCall.arg2
}

func (fake *FakeSnapshotDriver) EnsureSnapshotReturns(result1 resources.Snapshot, result2 error) {
	fake.ensureSnapshotMutex.Lock()
	defer fake.ensureSnapshotMutex.Unlock()
	fake.EnsureSnapshotStub = nil
	fake.ensureSnapshotReturns = struct {
		result1 resources.Snapshot
		result2 error
	}{result1, result2}
}

func (fake *FakeSnapshotDriver) EnsureSnapshotReturnsOnCall(i int, result1 resources.Snapshot, result2 error) {
	fake.ensureSnapshotMutex.Lock()
	defer fake.ensureSnapshotMutex.Unlock()
	fake.EnsureSnapshotStub = nil
	if fake.ensureSnapshotReturnsOnCall == nil {
		fake.ensureSnapshotReturnsOnCall = make(map[int]struct {
			result1 resources.Snapshot
			result2 error
		})
	}
	fake.ensureSnapshotReturnsOnCall[i] = struct {
		result1 resources.Snapshot
		result2 error
	}{result1, result2}
}

func (fake *FakeSnapshotDriver) Invocations() map[string][][]interface{} {
	fake.invocationsMutex.RLock()
	defer fake.invocationsMutex.RUnlock()
	fake.ensureSnapshotMutex.RLock()
	defer fake.ensureSnapshotMutex.RUnlock()
	copiedInvocations := map[string][][]interface{}{}
	for key, value := range fake.invocations {
		copiedInvocations[key] = value
	}
	return copiedInvocations
}

func (fake *FakeSnapshotDriver) recordInvocation(key string, args []interface{}) {
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

var _ resources.SnapshotDriver = new(FakeSnapshotDriver)
