// Code generated by counterfeiter. DO NOT EDIT.
package resourcesfakes

import (
	"ami-publisher/resources"
	"context"
	"sync"
)

type FakeNotificationDriver struct {
	PublishNotificationStub        func(context.Context, resources.Notification) error
	publishNotificationMutex       sync.RWMutex
	publishNotificationArgsForCall []struct {
		arg1 context.Context
		arg2 resources.Notification
	}
	publishNotificationReturns struct {
		result1 error
	}
	publishNotificationReturnsOnCall map[int]struct {
		result1 error
	}
	invocations      map[string][][]interface{}
	invocationsMutex sync.RWMutex
}

func (fake *FakeNotificationDriver) PublishNotification(arg1 context.Context, arg2 resources.Notification) error {
	fake.publishNotificationMutex.Lock()
	ret, specificReturn := fake.publishNotificationReturnsOnCall[len(fake.publishNotificationArgsForCall)]
	fake.publishNotificationArgsForCall = append(fake.publishNotificationArgsForCall, struct {
		arg1 context.Context
		arg2 resources.Notification
	}{arg1, arg2})
	stub := fake.PublishNotificationStub
	fakeReturns := fake.publishNotificationReturns
	fake.recordInvocation("PublishNotification", []interface{}{arg1, arg2})
	fake.publishNotificationMutex.Unlock()
	if stub != nil {
		return stub(arg1, arg2)
	}
	if specificReturn {
		return ret.result1
	}
	return fakeReturns.result1
}

func (fake *FakeNotificationDriver) PublishNotificationCallCount() int {
	fake.publishNotificationMutex.RLock()
	defer fake.publishNotificationMutex.RUnlock()
	return len(fake.publishNotificationArgsForCall)
}

func (fake *FakeNotificationDriver) PublishNotificationCalls(stub func(context.Context, resources.Notification) error) {
	fake.publishNotificationMutex.Lock()
	defer fake.publishNotificationMutex.Unlock()
	fake.PublishNotificationStub = stub
}

func (fake *FakeNotificationDriver) PublishNotificationArgsForCall(i int) (context.Context, resources.Notification) {
	fake.publishNotificationMutex.RLock()
	defer fake.publishNotificationMutex.RUnlock()
	argsForCall := fake.publishNotificationArgsForCall[i]
	return argsForCall.arg1, argsForCall.arg2
}

func (fake *FakeNotificationDriver) PublishNotificationReturns(result1 error) {
	fake.publishNotificationMutex.Lock()
	defer fake.publishNotificationMutex.Unlock()
	fake.PublishNotificationStub = nil
	fake.publishNotificationReturns = struct {
		result1 error
	}{result1}
}

func (fake *FakeNotificationDriver) PublishNotificationReturnsOnCall(i int, result1 error) {
	fake.publishNotificationMutex.Lock()
	defer fake.publishNotificationMutex.Unlock()
	fake.PublishNotificationStub = nil
	if fake.publishNotificationReturnsOnCall == nil {
		fake.publishNotificationReturnsOnCall = make(map[int]struct {
			result1 error
		})
	}
	fake.publishNotificationReturnsOnCall[i] = struct {
		result1 error
	}{result1}
}

func (fake *FakeNotificationDriver) Invocations() map[string][][]interface{} {
	fake.invocationsMutex.RLock()
	defer fake.invocationsMutex.RUnlock()
	fake.publishNotificationMutex.RLock()
	defer fake.publishNotificationMutex.RUnlock()
	copiedInvocations := map[string][][]interface{}{}
	for key, value := range fake.invocations {
		copiedInvocations[key] = value
	}
	return copiedInvocations
}

func (fake *FakeNotificationDriver) recordInvocation(key string, args []interface{}) {
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

var _ resources.NotificationDriver = new(FakeNotificationDriver)
