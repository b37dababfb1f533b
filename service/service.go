// Package service makes sure the MaxsunSync background service is running
// before any channel is opened.
package service

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/pdf/gomaxsun/common"
)

// DefaultName is the name the sync service is registered under
const DefaultName = `CppWindowsService`

// EnsureRunning starts the service behind ctl unless it already reports
// running, and waits up to timeout for it to get there, querying its status
// every pollInterval.  Nothing but a status query happens when the service is
// already running.
func EnsureRunning(ctx context.Context, ctl common.ServiceController, timeout, pollInterval time.Duration) error {
	state, err := ctl.Status()
	if err != nil {
		return errors.Wrap(err, `query service status`)
	}
	if state == common.ServiceRunning {
		common.Log.Debugf("Service already running")
		return nil
	}

	if state != common.ServiceStartPending {
		common.Log.Infof("Service is %v, starting it", state)
		if err := ctl.Start(); err != nil {
			return errors.Wrap(err, `start service`)
		}
	}

	if timeout <= 0 {
		timeout = common.DefaultServiceTimeout
	}
	if pollInterval <= 0 {
		pollInterval = common.DefaultServicePollInterval
	}
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	tick := time.NewTicker(pollInterval)
	defer tick.Stop()

	for {
		select {
		case <-tick.C:
			state, err = ctl.Status()
			if err != nil {
				return errors.Wrap(err, `query service status`)
			}
			if state == common.ServiceRunning {
				common.Log.Infof("Service running")
				return nil
			}
			common.Log.Debugf("Waiting for service, currently %v", state)
		case <-deadline.C:
			return errors.Wrapf(common.ErrServiceUnavailable, `service still %v after %v`, state, timeout)
		case <-ctx.Done():
			return errors.Wrapf(common.ErrServiceUnavailable, `service still %v: %v`, state, ctx.Err())
		}
	}
}
