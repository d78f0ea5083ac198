// Code generated by counterfeiter. DO NOT EDIT.
package driversetfakes

import (
	"ami-publisher/driverset"
	"ami-publisher/resources"
	"sync"
)

type FakeStandardRegionDriverSet struct {
	ImageDriverStub        func() resources.ImageDriver
	imageDriverMutex       sync.RWMutex
	imageDriverArgsForCall []struct {
	}
	imageDriverReturns struct {
		result1 resources.ImageDriver
	}
	imageDriverReturnsOnCall map[int]struct {
		result1 resources.ImageDriver
	}
	NotificationDriverStub        func() resources.NotificationDriver
	notificationDriverMutex       sync.RWMutex
	notificationDriverArgsForCall []struct {
	}
	notificationDriverReturns struct {
		result1 resources.NotificationDriver
	}
	notificationDriverReturnsOnCall map[int]struct {
		result1 resources.NotificationDriver
	}
	ParameterDriverStub        func() resources.ParameterDriver
	parameterDriverMutex       sync.RWMutex
	parameterDriverArgsForCall []struct {
	}
	parameterDriverReturns struct {
		result1 resources.ParameterDriver
	}
	parameterDriverReturnsOnCall map[int]struct {
		result1 resources.ParameterDriver
	}
	PublicationDriverStub        func() resources.PublicationDriver
	publicationDriverMutex       sync.RWMutex
	publicationDriverArgsForCall []struct {
	}
	publicationDriverReturns struct {
		result1 resources.PublicationDriver
	}
	publicationDriverReturnsOnCall map[int]struct {
		result1 resources.PublicationDriver
	}
	SnapshotCopyDriverStub        func() resources.SnapshotCopyDriver
	snapshotCopyDriverMutex       sync.RWMutex
	snapshotCopyDriverArgsForCall []struct {
	}
	snapshotCopyDriverReturns struct {
		result1 resources.SnapshotCopyDriver
	}
	snapshotCopyDriverReturnsOnCall map[int]struct {
		result1 resources.SnapshotCopyDriver
	}
	SnapshotDriverStub        func() resources.SnapshotDriver
	snapshotDriverMutex       sync.RWMutex
	snapshotDriverArgsForCall []struct {
	}
	snapshotDriverReturns struct {
		result1 resources.SnapshotDriver
	}
	snapshotDriverReturnsOnCall map[int]struct {
		result1 resources.SnapshotDriver
	}
	invocations      map[string][][]interface{}
	invocationsMutex sync.RWMutex
}

func (fake *FakeStandardRegionDriverSet) ImageDriver() resources.ImageDriver {
	fake.imageDriverMutex.Lock()
	ret, specificReturn := fake.imageDriverReturnsOnCall[len(fake.imageDriverArgsForCall)]
	fake.imageDriverArgsForCall = append(fake.imageDriverArgsForCall, struct {
	}{})
	stub := fake.ImageDriverStub
	fakeReturns := fake.imageDriverReturns
	fake.recordInvocation("ImageDriver", []interface{}{})
	fake.imageDriverMutex.Unlock()
	if stub != nil {
		return stub()
	}
	if specificReturn {
		return ret.result1
	}
	return fakeReturns.result1
}

func (fake *FakeStandardRegionDriverSet) ImageDriverCallCount() int {
	fake.imageDriverMutex.RLock()
	defer fake.imageDriverMutex.RUnlock()
	return len(fake.imageDriverArgsForCall)
}

func (fake *FakeStandardRegionDriverSet) ImageDriverCalls(stub func() resources.ImageDriver) {
	fake.imageDriverMutex.Lock()
	defer fake.imageDriverMutex.Unlock()
	fake.ImageDriverStub = stub
}

func (fake *FakeStandardRegionDriverSet) ImageDriverReturns(result1 resources.ImageDriver) {
	fake.imageDriverMutex.Lock()
	defer fake.imageDriverMutex.Unlock()
	fake.ImageDriverStub = nil
	fake.imageDriverReturns = struct {
		result1 resources.ImageDriver
	}{result1}
}

func (fake *FakeStandardRegionDriverSet) ImageDriverReturnsOnCall(i int, result1 resources.ImageDriver) {
	fake.imageDriverMutex.Lock()
	defer fake.imageDriverMutex.Unlock()
	fake.ImageDriverStub = nil
	if fake.imageDriverReturnsOnCall == nil {
		fake.imageDriverReturnsOnCall = make(map[int]struct {
			result1 resources.ImageDriver
		})
	}
	fake.imageDriverReturnsOnCall[i] = struct {
		result1 resources.ImageDriver
	}{result1}
}

func (fake *FakeStandardRegionDriverSet) NotificationDriver() resources.NotificationDriver {
	fake.notificationDriverMutex.Lock()
	ret, specificReturn := fake.notificationDriverReturnsOnCall[len(fake.notificationDriverArgsForCall)]
	fake.notificationDriverArgsForCall = append(fake.notificationDriverArgsForCall, struct {
	}{})
	stub := fake.NotificationDriverStub
	fakeReturns := fake.notificationDriverReturns
	fake.recordInvocation("NotificationDriver", []interface{}{})
	fake.notificationDriverMutex.Unlock()
	if stub != nil {
		return stub()
	}
	if specificReturn {
		return ret.result1
	}
	return fakeReturns.result1
}

func (fake *FakeStandardRegionDriverSet) NotificationDriverCallCount() int {
	fake.notificationDriverMutex.RLock()
	defer fake.notificationDriverMutex.RUnlock()
	return len(fake.notificationDriverArgsForCall)
}

func (fake *FakeStandardRegionDriverSet) NotificationDriverCalls(stub func() resources.NotificationDriver) {
	fake.notificationDriverMutex.Lock()
	defer fake.notificationDriverMutex.Unlock()
	fake.NotificationDriverStub = stub
}

func (fake *FakeStandardRegionDriverSet) NotificationDriverReturns(result1 resources.NotificationDriver) {
	fake.notificationDriverMutex.Lock()
	defer fake.notificationDriverMutex.Unlock()
	fake.NotificationDriverStub = nil
	fake.notificationDriverReturns = struct {
		result1 resources.NotificationDriver
	}{result1}
}

func (fake *FakeStandardRegionDriverSet) NotificationDriverReturnsOnCall(i int, result1 resources.NotificationDriver) {
	fake.notificationDriverMutex.Lock()
	defer fake.notificationDriverMutex.Unlock()
	fake.NotificationDriverStub = nil
	if fake.notificationDriverReturnsOnCall == nil {
		fake.notificationDriverReturnsOnCall = make(map[int]struct {
			result1 resources.NotificationDriver
		})
	}
	fake.notificationDriverReturnsOnCall[i] = struct {
		result1 resources.NotificationDriver
	}{result1}
}

func (fake *FakeStandardRegionDriverSet) ParameterDriver() resources.ParameterDriver {
	fake.parameterDriverMutex.Lock()
	ret, specificReturn := fake.parameterDriverReturnsOnCall[len(fake.parameterDriverArgsForCall)]
	fake.parameterDriverArgsForCall = append(fake.parameterDriverArgsForCall, struct {
	}{})
	stub := fake.ParameterDriverStub
	fakeReturns := fake.parameterDriverReturns
	fake.recordInvocation("ParameterDriver", []interface{}{})
	fake.parameterDriverMutex.Unlock()
	if stub != nil {
		return stub()
	}
	if specificReturn {
		return ret.result1
	}
	return fakeReturns.result1
}

func (fake *FakeStandardRegionDriverSet) ParameterDriverCallCount() int {
	fake.parameterDriverMutex.RLock()
	defer fake.parameterDriverMutex.RUnlock()
	return len(fake.parameterDriverArgsForCall)
}

func (fake *FakeStandardRegionDriverSet) ParameterDriverCalls(stub func() resources.ParameterDriver) {
	fake.parameterDriverMutex.Lock()
	defer fake.parameterDriverMutex.Unlock()
	fake.ParameterDriverStub = stub
}

func (fake *FakeStandardRegionDriverSet) ParameterDriverReturns(result1 resources.ParameterDriver) {
	fake.parameterDriverMutex.Lock()
	defer fake.parameterDriverMutex.Unlock()
	fake.ParameterDriverStub = nil
	fake.parameterDriverReturns = struct {
		result1 resources.ParameterDriver
	}{result1}
}

func (fake *FakeStandardRegionDriverSet) ParameterDriverReturnsOnCall(i int, result1 resources.ParameterDriver) {
	fake.parameterDriverMutex.Lock()
	defer fake.parameterDriverMutex.Unlock()
	fake.ParameterDriverStub = nil
	if fake.parameterDriverReturnsOnCall == nil {
		fake.parameterDriverReturnsOnCall = make(map[int]struct {
			result1 resources.ParameterDriver
		})
	}
	fake.parameterDriverReturnsOnCall[i] = struct {
		result1 resources.ParameterDriver
	}{result1}
}

func (fake *FakeStandardRegionDriverSet) PublicationDriver() resources.PublicationDriver {
	fake.publicationDriverMutex.Lock()
	ret, specificReturn := fake.publicationDriverReturnsOnCall[len(fake.publicationDriverArgsForCall)]
	fake.publicationDriverArgsForCall = append(fake.publicationDriverArgsForCall, struct {
	}{})
	stub := fake.PublicationDriverStub
	fakeReturns := fake.publicationDriverReturns
	fake.recordInvocation("PublicationDriver", []interface{}{})
	fake.publicationDriverMutex.Unlock()
	if stub != nil {
		return stub()
	}
	if specificReturn {
		return ret.result1
	}
	return fakeReturns.result1
}

func (fake *FakeStandardRegionDriverSet) PublicationDriverCallCount() int {
	fake.publicationDriverMutex.RLock()
	defer fake.publicationDriverMutex.RUnlock()
	return len(fake.publicationDriverArgsForCall)
}

func (fake *FakeStandardRegionDriverSet) PublicationDriverCalls(stub func() resources.PublicationDriver) {
	fake.publicationDriverMutex.Lock()
	defer fake.publicationDriverMutex.Unlock()
	fake.PublicationDriverStub = stub
}

func (fake *FakeStandardRegionDriverSet) PublicationDriverReturns(result1 resources.PublicationDriver) {
	fake.publicationDriverMutex.Lock()
	defer fake.publicationDriverMutex.Unlock()
	fake.PublicationDriverStub = nil
	fake.publicationDriverReturns = struct {
		result1 resources.PublicationDriver
	}{result1}
}

func (fake *FakeStandardRegionDriverSet) PublicationDriverReturnsOnCall(i int, result1 resources.PublicationDriver) {
	fake.publicationDriverMutex.Lock()
	defer fake.publicationDriverMutex.Unlock()
	fake.PublicationDriverStub = nil
	if fake.publicationDriverReturnsOnCall == nil {
		fake.publicationDriverReturnsOnCall = make(map[int]struct {
			result1 resources.PublicationDriver
		})
	}
	fake.publicationDriverReturnsOnCall[i] = struct {
		result1 resources.PublicationDriver
	}{result1}
}

func (fake *FakeStandardRegionDriverSet) SnapshotCopyDriver() resources.SnapshotCopyDriver {
	fake.snapshotCopyDriverMutex.Lock()
	ret, specificReturn := fake.snapshotCopyDriverReturnsOnCall[len(fake.snapshotCopyDriverArgsForCall)]
	fake.snapshotCopyDriverArgsForCall = append(fake.snapshotCopyDriverArgsForCall, struct {
	}{})
	stub := fake.SnapshotCopyDriverStub
	fakeReturns := fake.snapshotCopyDriverReturns
	fake.recordInvocation("SnapshotCopyDriver", []interface{}{})
	fake.snapshotCopyDriverMutex.Unlock()
	if stub != nil {
		return stub()
	}
	if specificReturn {
		return ret.result1
	}
	return fakeReturns.result1
}

func (fake *FakeStandardRegionDriverSet) SnapshotCopyDriverCallCount() int {
	fake.snapshotCopyDriverMutex.RLock()
	defer fake.snapshotCopyDriverMutex.RUnlock()
	return len(fake.snapshotCopyDriverArgsForCall)
}

func (fake *FakeStandardRegionDriverSet) SnapshotCopyDriverCalls(stub func() resources.SnapshotCopyDriver) {
	fake.snapshotCopyDriverMutex.Lock()
	defer fake.snapshotCopyDriverMutex.Unlock()
	fake.SnapshotCopyDriverStub = stub
}

func (fake *FakeStandardRegionDriverSet) SnapshotCopyDriverReturns(result1 resources.SnapshotCopyDriver) {
	fake.snapshotCopyDriverMutex.Lock()
	defer fake.snapshotCopyDriverMutex.Unlock()
	fake.SnapshotCopyDriverStub = nil
	fake.snapshotCopyDriverReturns = struct {
		result1 resources.SnapshotCopyDriver
	}{result1}
}

func (fake *FakeStandardRegionDriverSet) SnapshotCopyDriverReturnsOnCall(i int, result1 resources.SnapshotCopyDriver) {
	fake.snapshotCopyDriverMutex.Lock()
	defer fake.snapshotCopyDriverMutex.Unlock()
	fake.SnapshotCopyDriverStub = nil
	if fake.snapshotCopyDriverReturnsOnCall == nil {
		fake.snapshotCopyDriverReturnsOnCall = make(map[int]struct {
			result1 resources.SnapshotCopyDriver
		})
	}
	fake.snapshotCopyDriverReturnsOnCall[i] = struct {
		result1 resources.SnapshotCopyDriver
	}{result1}
}

func (fake *FakeStandardRegionDriverSet) SnapshotDriver() resources.SnapshotDriver {
	fake.snapshotDriverMutex.Lock()
	ret, specificReturn := fake.snapshotDriverReturnsOnCall[len(fake.snapshotDriverArgsForCall)]
	fake.snapshotDriverArgsForCall = append(fake.snapshotDriverArgsForCall, struct {
	}{})
	stub := fake.SnapshotDriverStub
	fakeReturns := fake.snapshotDriverReturns
	fake.recordInvocation("SnapshotDriver", []interface{}{})
	fake.snapshotDriverMutex.Unlock()
	if stub != nil {
		return stub()
	}
	if specificReturn {
		return ret.result1
	}
	return fakeReturns.result1
}

func (fake *FakeStandardRegionDriverSet) SnapshotDriverCallCount() int {
	fake.snapshotDriverMutex.RLock()
	defer fake.snapshotDriverMutex.RUnlock()
	return len(fake.snapshotDriverArgsForCall)
}

func (fake *FakeStandardRegionDriverSet) SnapshotDriverCalls(stub func() resources.SnapshotDriver) {
	fake.snapshotDriverMutex.Lock()
	defer fake.snapshotDriverMutex.Unlock()
	fake.SnapshotDriverStub = stub
}

func (fake *FakeStandardRegionDriverSet) SnapshotDriverReturns(result1 resources.SnapshotDriver) {
	fake.snapshotDriverMutex.Lock()
	defer fake.snapshotDriverMutex.Unlock()
	fake.SnapshotDriverStub = nil
	fake.snapshotDriverReturns = struct {
		result1 resources.SnapshotDriver
	}{result1}
}

func (fake *FakeStandardRegionDriverSet) SnapshotDriverReturnsOnCall(i int, result1 resources.SnapshotDriver) {
	fake.snapshotDriverMutex.Lock()
	defer fake.snapshotDriverMutex.Unlock()
	fake.SnapshotDriverStub = nil
	if fake.snapshotDriverReturnsOnCall == nil {
		fake.snapshotDriverReturnsOnCall = make(map[int]struct {
			result1 resources.SnapshotDriver
		})
	}
	fake.snapshotDriverReturnsOnCall[i] = struct {
		result1 resources.SnapshotDriver
	}{result1}
}

func (fake *FakeStandardRegionDriverSet) Invocations() map[string][][]interface{} {
	fake.invocationsMutex.RLock()
	defer fake.invocationsMutex.RUnlock()
	fake.imageDriverMutex.RLock()
	defer fake.imageDriverMutex.RUnlock()
	fake.notificationDriverMutex.RLock()
	defer fake.notificationDriverMutex.RUnlock()
	fake.parameterDriverMutex.RLock()
	defer fake.parameterDriverMutex.RUnlock()
	fake.publicationDriverMutex.RLock()
	defer fake.publicationDriverMutex.RUnlock()
	fake.snapshotCopyDriverMutex.RLock()
	defer fake.snapshotCopyDriverMutex.RUnlock()
	fake.snapshotDriverMutex.RLock()
	defer fake.snapshotDriverMutex.RUnlock()
	copiedInvocations := map[string][][]interface{}{}
	for key, value := range fake.invocations {
		copiedInvocations[key] = value
	}
	return copiedInvocations
}

func (fake *FakeStandardRegionDriverSet) recordInvocation(key string, args []interface{}) {
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

var _ driverset.StandardRegionDriverSet = new(FakeStandardRegionDriverSet)
