// Code generated by counterfeiter. DO NOT EDIT.
package resourcesfakes

import (
	"ami-publisher/resources"
	"context"
	"sync"
)

type FakeImageDriver struct {
	DeregisterImageStub        func(context.Context, resources.Image) error
	deregisterImageMutex       sync.RWMutex
	deregisterImageArgsForCall []struct {
		arg1 context.Context
		arg2 resources.Image
	}
	deregisterImageReturns struct {
		result1 error
	}
	deregisterImageReturnsOnCall map[int]struct {
		result1 error
	}
	EnsureImageStub        func(context.Context, resources.ImageDriverConfig) (resources.Image, error)
	ensureImageMutex       sync.RWMutex
	ensureImageArgsForCall []struct {
		arg1 context.Context
		arg2 resources.ImageDriverConfig
	}
	ensureImageReturns struct {
		result1 resources.Image
		result2 error
	}
	ensureImageReturnsOnCall map[int]struct {
		result1 resources.Image
		result2 error
	}
	FindImageStub        func(context.Context, string) (resources.Image, bool, error)
	findImageMutex       sync.RWMutex
	findImageArgsForCall []struct {
		arg1 context.Context
		arg2 string
	}
	findImageReturns struct {
		result1 resources.Image
		result2 bool
		result3 error
	}
	findImageReturnsOnCall map[int]struct {
		result1 resources.Image
		result2 bool
		result3 error
	}
	invocations      map[string][][]interface{}
	invocationsMutex sync.RWMutex
}

func (fake *FakeImageDriver) DeregisterImage(arg1 context.Context, arg2 resources.Image) error {
	fake.deregisterImageMutex.Lock()
	ret, specificReturn := fake.deregisterImageReturnsOnCall[len(fake.deregisterImageArgsForCall)]
	fake.deregisterImageArgsForCall = append(fake.deregisterImageArgsForCall, struct {
		arg1 context.Context
		arg2 resources.Image
	}{arg1, arg2})
	stub := fake.DeregisterImageStub
	fakeReturns := fake.deregisterImageReturns
	fake.recordInvocation("DeregisterImage", []interface{}{arg1, arg2})
	fake.deregisterImageMutex.Unlock()
	if stub != nil {
		return stub(arg1, arg2)
	}
	if specificReturn {
		return ret.result1
	}
	return fakeReturns.result1
}

func (fake *FakeImageDriver) DeregisterImageCallCount() int {
	fake.deregisterImageMutex.RLock()
	defer fake.deregisterImageMutex.RUnlock()
	return len(fake.deregisterImageArgsForCall)
}

func (fake *FakeImageDriver) DeregisterImageCalls(stub func(context.Context, resources.Image) error) {
	fake.deregisterImageMutex.Lock()
	defer fake.deregisterImageMutex.Unlock()
	fake.DeregisterImageStub = stub
}

func (fake *FakeImageDriver) DeregisterImageArgsForCall(i int) (context.Context, resources.Image) {
	fake.deregisterImageMutex.RLock()
	defer fake.deregisterImageMutex.RUnlock()
	argsForCall := fake.deregisterImageArgsForCall[i]
	return argsForCall.arg1, argsForCall.arg2
}

func (fake *FakeImageDriver) DeregisterImageReturns(result1 error) {
	fake.deregisterImageMutex.Lock()
	defer fake.deregisterImageMutex.Unlock()
	fake.DeregisterImageStub = nil
	fake.deregisterImageReturns = struct {
		result1 error
	}{result1}
}

func (fake *FakeImageDriver) DeregisterImageReturnsOnCall(i int, result1 error) {
	fake.deregisterImageMutex.Lock()
	defer fake.deregisterImageMutex.Unlock()
	fake.DeregisterImageStub = nil
	if fake.deregisterImageReturnsOnCall == nil {
		fake.deregisterImageReturnsOnCall = make(map[int]struct {
			result1 error
		})
	}
	fake.deregisterImageReturnsOnCall[i] = struct {
		result1 error
	}{result1}
}

func (fake *FakeImageDriver) EnsureImage(arg1 context.Context, arg2 resources.ImageDriverConfig) (resources.Image, error) {
	fake.ensureImageMutex.Lock()
	ret, specificReturn := fake.ensureImageReturnsOnCall[len(fake.ensureImageArgsForCall)]
	fake.ensureImageArgsForCall = append(fake.ensureImageArgsForCall, struct {
		arg1 context.Context
		arg2 resources.ImageDriverConfig
	}{arg1, arg2})
	stub := fake.EnsureImageStub
	fakeReturns := fake.ensureImageReturns
	fake.recordInvocation("EnsureImage", []interface{}{arg1, arg2})
	fake.ensureImageMutex.Unlock()
	if stub != nil {
		return stub(arg1, arg2)
	}
	if specificReturn {
		return ret.result1, ret.result2
	}
	return fakeReturns.result1, fakeReturns.result2
}

func (fake *FakeImageDriver) EnsureImageCallCount() int {
	fake.ensureImageMutex.RLock()
	defer fake.ensureImageMutex.RUnlock()
	return len(fake.ensureImageArgsForCall)
}

func (fake *FakeImageDriver) EnsureImageCalls(stub func(context.Context, resources.ImageDriverConfig) (resources.Image, error)) {
	fake.ensureImageMutex.Lock()
	defer fake.ensureImageMutex.Unlock()
	fake.EnsureImageStub = stub
}

func (fake *FakeImageDriver) EnsureImageArgsForCall(i int) (context.Context, resources.ImageDriverConfig) {
	fake.ensureImageMutex.RLock()
	defer fake.ensureImageMutex.RUnlock()
	argsForCall := fake.ensureImageArgsForCall[i]
	return argsForCall.arg1, argsForCall.arg2
}

func (fake *FakeImageDriver) EnsureImageReturns(result1 resources.Image, result2 error) {
	fake.ensureImageMutex.Lock()
	defer fake.ensureImageMutex.Unlock()
	fake.EnsureImageStub = nil
	fake.ensureImageReturns = struct {
		result1 resources.Image
		result2 error
	}{result1, result2}
}

func (fake *FakeImageDriver) EnsureImageReturnsOnCall(i int, result1 resources.Image, result2 error) {
	fake.ensureImageMutex.Lock()
	defer fake.ensureImageMutex.Unlock()
	fake.EnsureImageStub = nil
	if fake.ensureImageReturnsOnCall == nil {
		fake.ensureImageReturnsOnCall = make(map[int]struct {
			result1 resources.Image
			result2 error
		})
	}
	fake.ensureImageReturnsOnCall[i] = struct {
		result1 resources.Image
		result2 error
	}{result1, result2}
}

func (fake *FakeImageDriver) FindImage(arg1 context.Context, arg2 string) (resources.Image, bool, error) {
	fake.findImageMutex.Lock()
	ret, specificReturn := fake.findImageReturnsOnCall[len(fake.findImageArgsForCall)]
	fake.findImageArgsForCall = append(fake.findImageArgsForCall, struct {
		arg1 context.Context
		arg2 string
	}{arg1, arg2})
	stub := fake.FindImageStub
	fakeReturns := fake.findImageReturns
	fake.recordInvocation("FindImage", []interface{}{arg1, arg2})
	fake.findImageMutex.Unlock()
	if stub != nil {
		return stub(arg1, arg2)
	}
	if specificReturn {
		return ret.result1, ret.result2, ret.result3
	}
	return fakeReturns.result1, fakeReturns.result2, fakeReturns.result3
}

func (fake *FakeImageDriver) FindImageCallCount() int {
	fake.findImageMutex.RLock()
	defer fake.findImageMutex.RUnlock()
	return len(fake.findImageArgsForCall)
}

func (fake *FakeImageDriver) FindImageCalls(stub func(context.Context, string) (resources.Image, bool, error)) {
	fake.findImageMutex.Lock()
	defer fake.findImageMutex.Unlock()
	fake.FindImageStub = stub
}

func (fake *FakeImageDriver) FindImageArgsForCall(i int) (context.Context, string) {
	fake.findImageMutex.RLock()
	defer fake.findImageMutex.RUnlock()
	argsForCall := fake.findImageArgsForCall[i]
	return argsForCall.arg1, argsForCall.arg2
}

func (fake *FakeImageDriver) FindImageReturns(result1 resources.Image, result2 bool, result3 error) {
	fake.findImageMutex.Lock()
	defer fake.findImageMutex.Unlock()
	fake.FindImageStub = nil
	fake.findImageReturns = struct {
		result1 resources.Image
		result2 bool
		result3 error
	}{result1, result2, result3}
}

func (fake *FakeImageDriver) FindImageReturnsOnCall(i int, result1 resources.Image, result2 bool, result3 error) {
	fake.findImageMutex.Lock()
	defer fake.findImageMutex.Unlock()
	fake.FindImageStub = nil
	if fake.findImageReturnsOnCall == nil {
		fake.findImageReturnsOnCall = make(map[int]struct {
			result1 resources.Image
			result2 bool
			result3 error
		})
	}
	fake.findImageReturnsOnCall[i] = struct {
		result1 resources.Image
		result2 bool
		result3 error
	}{result1, result2, result3}
}

func (fake *FakeImageDriver) Invocations() map[string][][]interface{} {
	fake.invocationsMutex.RLock()
	defer fake.invocationsMutex.RUnlock()
	fake.deregisterImageMutex.RLock()
	defer fake.deregisterImageMutex.RUnlock()
	fake.ensureImageMutex.RLock()
	defer fake.ensureImageMutex.RUnlock()
	fake.findImageMutex.RLock()
	defer fake.findImageMutex.RUnlock()
	copiedInvocations := map[string][][]interface{}{}
	for key, value := range fake.invocations {
		copiedInvocations[key] = value
	}
	return copiedInvocations
}

func (fake *FakeImageDriver) recordInvocation(key string, args []interface{}) {
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

var _ resources.ImageDriver = new(FakeImageDriver)
