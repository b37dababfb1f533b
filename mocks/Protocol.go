package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pdf/gomaxsun/common"
)

type Protocol struct {
	mock.Mock
}

// ScanDevices provides a mock function with given fields: ctx
func (_m *Protocol) ScanDevices(ctx context.Context) ([]common.DeviceInfo, error) {
	ret := _m.Called(ctx)

	var r0 []common.DeviceInfo
	if rf, ok := ret.Get(0).(func(context.Context) []common.DeviceInfo); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]common.DeviceInfo)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ApplyEffect provides a mock function with given fields: ctx, effect
func (_m *Protocol) ApplyEffect(ctx context.Context, effect common.Effect) error {
	ret := _m.Called(ctx, effect)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, common.Effect) error); ok {
		r0 = rf(ctx, effect)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// GetSyncStatusList provides a mock function with given fields: ctx
func (_m *Protocol) GetSyncStatusList(ctx context.Context) ([]bool, error) {
	ret := _m.Called(ctx)

	var r0 []bool
	if rf, ok := ret.Get(0).(func(context.Context) []bool); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]bool)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SetSyncStatus provides a mock function with given fields: ctx, status
func (_m *Protocol) SetSyncStatus(ctx context.Context, status []bool) error {
	ret := _m.Called(ctx, status)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, []bool) error); ok {
		r0 = rf(ctx, status)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Close provides a mock function with given fields:
func (_m *Protocol) Close() error {
	ret := _m.Called()

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
