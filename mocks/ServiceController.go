package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/pdf/gomaxsun/common"
)

type ServiceController struct {
	mock.Mock
}

// Status provides a mock function with given fields:
func (_m *ServiceController) Status() (common.ServiceState, error) {
	ret := _m.Called()

	var r0 common.ServiceState
	if rf, ok := ret.Get(0).(func() common.ServiceState); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(common.ServiceState)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func() error); ok {
		r1 = rf()
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Start provides a mock function with given fields:
func (_m *ServiceController) Start() error {
	ret := _m.Called()

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Close provides a mock function with given fields:
func (_m *ServiceController) Close() error {
	ret := _m.Called()

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
