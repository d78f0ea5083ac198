// Code generated by counterfeiter. DO NOT EDIT.
package resourcesfakes

import (
	"ami-publisher/resources"
	"context"
	"sync"
)

type FakeParameterDriver struct {
	PushParameterStub        func(context.Context, resources.Parameter) (bool, error)
	pushParameterMutex       sync.RWMutex
	pushParameterArgsForCall []struct {
		arg1 context.Context
		arg2 resources.Parameter
	}
	pushParameterReturns struct {
		result1 bool
		result2 error
	}
	pushParameterReturnsOnCall map[int]struct {
		result1 bool
		result2 error
	}
	invocations      map[string][][]interface{}
	invocationsMutex sync.RWMutex
}

func (fake *FakeParameterDriver) PushParameter(arg1 context.Context, arg2 resources.Parameter) (bool, error) {
	fake.pushParameterMutex.Lock()
	ret, specificReturn := fake.pushParameterReturnsOnCall[len(fake.pushParameterArgsForCall)]
	fake.pushParameterArgsForCall = append(fake.pushParameterArgsForCall, struct {
		arg1 context.Context
		arg2 resources.Parameter
	}{arg1, arg2})
	stub := fake.PushParameterStub
	fakeReturns := fake.pushParameterReturns
	fake.recordInvocation("PushParameter", []interface{}{arg1, arg2})
	fake.pushParameterMutex.Unlock()
	if stub != nil {
		return stub(arg1, arg2)
	}
	if specificReturn {
		return ret.result1, ret.result2
	}
	return fakeReturns.result1, fakeReturns.result2
}

func (fake *FakeParameterDriver) PushParameterCallCount() int {
	fake.pushParameterMutex.RLock()
	defer fake.pushParameterMutex.RUnlock()
	return len(fake.pushParameterArgsForCall)
}

func (fake *FakeParameterDriver) PushParameterCalls(stub func(context.Context, resources.Parameter) (bool, error)) {
	fake.pushParameterMutex.Lock()
	defer fake.pushParameterMutex.Unlock()
	fake.PushParameterStub = stub
}

func (fake *FakeParameterDriver) PushParameterArgsForCall(i int) (context.Context, resources.Parameter) {
	fake.pushParameterMutex.RLock()
	defer fake.pushParameterMutex.RUnlock()
	argsForCall := fake.pushParameterArgsForCall[i]
	return argsForCall.arg1, argsForCall.arg2
}

func (fake *FakeParameterDriver) PushParameterReturns(result1 bool, result2 error) {
	fake.pushParameterMutex.Lock()
	defer fake.pushParameterMutex.Unlock()
	fake.PushParameterStub = nil
	fake.pushParameterReturns = struct {
		result1 bool
		result2 error
	}{result1, result2}
}

func (fake *FakeParameterDriver) PushParameterReturnsOnCall(i int, result1 bool, result2 error) {
	fake.pushParameterMutex.Lock()
	defer fake.pushParameterMutex.Unlock()
	fake.PushParameterStub = nil
	if fake.pushParameterReturnsOnCall == nil {
		fake.pushParameterReturnsOnCall = make(map[int]struct {
			result1 bool
			result2 error
		})
	}
	fake.pushParameterReturnsOnCall[i] = struct {
		result1 bool
		result2 error
	}{result1, result2}
}

func (fake *FakeParameterDriver) Invocations() map[string][][]interface{} {
	fake.invocationsMutex.RLock()
	defer fake.invocationsMutex.RUnlock()
	fake.pushParameterMutex.RLock()
	defer fake.pushParameterMutex.RUnlock()
	copiedInvocations := map[string][][]interface{}{}
	for key, value := range fake.invocations {
		copiedInvocations[key] = value
	}
	return copiedInvocations
}

func (fake *FakeParameterDriver) recordInvocation(key string, args []interface{}) {
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

var _ resources.ParameterDriver = new(FakeParameterDriver)
