//go:build windows

package service

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/svc"
	"golang.org/x/sys/windows/svc/mgr"

	"github.com/pdf/gomaxsun/common"
)

type controller struct {
	name string
	m    *mgr.Mgr
	s    *mgr.Service
}

// Open connects to the service manager and opens the service called name.
// Controlling services requires administrator rights.
func Open(name string) (common.ServiceController, error) {
	m, err := mgr.Connect()
	if err != nil {
		return nil, mapError(err, `connect to service manager`)
	}
	s, err := m.OpenService(name)
	if err != nil {
		_ = m.Disconnect()
		return nil, mapError(err, `open service `+name)
	}
	return &controller{name: name, m: m, s: s}, nil
}

func (c *controller) Status() (common.ServiceState, error) {
	status, err := c.s.Query()
	if err != nil {
		return common.ServiceUnknown, mapError(err, `query service `+c.name)
	}
	return stateOf(status.State), nil
}

func (c *controller) Start() error {
	err := c.s.Start()
	if errors.Is(err, windows.ERROR_SERVICE_ALREADY_RUNNING) {
		return nil
	}
	if err != nil {
		return mapError(err, `start service `+c.name)
	}
	return nil
}

func (c *controller) Close() error {
	err := c.s.Close()
	if dErr := c.m.Disconnect(); err == nil {
		err = dErr
	}
	return err
}

func stateOf(s svc.State) common.ServiceState {
	switch s {
	case svc.Stopped:
		return common.ServiceStopped
	case svc.StartPending:
		return common.ServiceStartPending
	case svc.StopPending:
		return common.ServiceStopPending
	case svc.Running:
		return common.ServiceRunning
	case svc.ContinuePending:
		return common.ServiceContinuePending
	case svc.PausePending:
		return common.ServicePausePending
	case svc.Paused:
		return common.ServicePaused
	}
	return common.ServiceUnknown
}

func mapError(err error, msg string) error {
	switch {
	case errors.Is(err, windows.ERROR_ACCESS_DENIED):
		return errors.Wrapf(common.ErrPermissionDenied, `%s: %v`, msg, err)
	case errors.Is(err, windows.ERROR_SERVICE_DOES_NOT_EXIST):
		return errors.Wrapf(common.ErrServiceUnavailable, `%s: %v`, msg, err)
	}
	return errors.Wrap(err, msg)
}
