package gomaxsun

import (
	"context"
	"sync"
	"time"

	"github.com/pdf/gomaxsun/common"
	"github.com/pdf/gomaxsun/service"
)

// Client provides a simple interface for controlling the MaxsunSync service.
// Always use NewClient() to obtain a Client instance.
//
// Every operation is a blocking exchange with the service.  Client is safe for
// concurrent use, but concurrent ApplyEffect calls reach the lighting hardware
// in no particular order.
type Client struct {
	protocol            common.Protocol
	timeout             time.Duration
	serviceTimeout      time.Duration
	servicePollInterval time.Duration
	subscriptions       map[string]*common.Subscription
	closed              bool
	sync.RWMutex
}

var _ common.Client = (*Client)(nil)

// CheckService makes sure the service behind ctl is running, starting it and
// waiting for up to the service timeout if it is not.  It returns
// common.ErrServiceUnavailable if the service does not come up in time, and
// common.ErrPermissionDenied without administrator privileges.
func (c *Client) CheckService(ctl common.ServiceController) error {
	if err := c.checkClosed(); err != nil {
		return err
	}
	c.RLock()
	timeout, interval := c.serviceTimeout, c.servicePollInterval
	c.RUnlock()

	return service.EnsureRunning(context.Background(), ctl, timeout, interval)
}

// ScanDevices returns the devices currently known to the service
func (c *Client) ScanDevices() ([]common.DeviceInfo, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	ctx, cancel := c.context()
	defer cancel()

	devices, err := c.protocol.ScanDevices(ctx)
	if err != nil {
		return nil, err
	}
	common.Log.Debugf("Scanned %d devices", len(devices))
	c.publish(common.EventDevicesScanned{Devices: append([]common.DeviceInfo(nil), devices...)})
	return devices, nil
}

// ApplyEffect applies effect to all synchronized devices.  This performs a
// device scan before sending the effect, and both exchanges share the client
// timeout.
func (c *Client) ApplyEffect(effect common.Effect) error {
	if err := c.checkClosed(); err != nil {
		return err
	}
	ctx, cancel := c.context()
	defer cancel()

	if err := c.protocol.ApplyEffect(ctx, effect); err != nil {
		return err
	}
	common.Log.Debugf("Applied %v effect", effect.Mode)
	c.publish(common.EventEffectApplied{Effect: effect})
	return nil
}

// ApplyEffectForSleep turns synchronized lighting off, see common.SleepEffect
func (c *Client) ApplyEffectForSleep() error {
	return c.ApplyEffect(common.SleepEffect())
}

// GetSyncStatusList returns the sync flag of each device, in scan order
func (c *Client) GetSyncStatusList() ([]bool, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	ctx, cancel := c.context()
	defer cancel()

	status, err := c.protocol.GetSyncStatusList(ctx)
	if err != nil {
		return nil, err
	}
	c.publish(common.EventSyncStatusUpdated{Status: append([]bool(nil), status...)})
	return status, nil
}

// SetSyncStatus sets the sync flag of each device, in scan order.  The
// service does not confirm the change, so true only means that the request
// was delivered.
func (c *Client) SetSyncStatus(status []bool) (bool, error) {
	if err := c.checkClosed(); err != nil {
		return false, err
	}
	ctx, cancel := c.context()
	defer cancel()

	if err := c.protocol.SetSyncStatus(ctx, status); err != nil {
		return false, err
	}
	c.publish(common.EventSyncStatusUpdated{Status: append([]bool(nil), status...)})
	return true, nil
}

// NewSubscription returns a new *common.Subscription for receiving events
// from this client.
func (c *Client) NewSubscription() (*common.Subscription, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	sub := common.NewSubscription(c)
	c.Lock()
	c.subscriptions[sub.ID()] = sub
	c.Unlock()
	return sub, nil
}

// CloseSubscription is a callback for handling the closing of subscriptions.
func (c *Client) CloseSubscription(sub *common.Subscription) error {
	c.Lock()
	defer c.Unlock()
	if _, ok := c.subscriptions[sub.ID()]; !ok {
		return common.ErrNotFound
	}
	delete(c.subscriptions, sub.ID())
	return nil
}

// SetTimeout sets the time that client operations wait for the service before
// returning an error.  A zero timeout waits forever.
func (c *Client) SetTimeout(timeout time.Duration) {
	c.Lock()
	c.timeout = timeout
	c.Unlock()
}

// GetTimeout returns the currently configured timeout period for operations on
// this client
func (c *Client) GetTimeout() time.Duration {
	c.RLock()
	defer c.RUnlock()
	return c.timeout
}

// SetServiceTimeout sets how long CheckService waits for the service to start
func (c *Client) SetServiceTimeout(timeout time.Duration) {
	c.Lock()
	c.serviceTimeout = timeout
	c.Unlock()
}

// GetServiceTimeout returns the currently configured service start timeout
func (c *Client) GetServiceTimeout() time.Duration {
	c.RLock()
	defer c.RUnlock()
	return c.serviceTimeout
}

// SetServicePollInterval sets how often CheckService queries the service while
// waiting for it to start
func (c *Client) SetServicePollInterval(interval time.Duration) {
	c.Lock()
	c.servicePollInterval = interval
	c.Unlock()
}

// Close signals the termination of this client, closes all subscriptions and
// cleans up resources
func (c *Client) Close() error {
	c.Lock()
	if c.closed {
		c.Unlock()
		return common.ErrClosed
	}
	c.closed = true
	subs := make([]*common.Subscription, 0, len(c.subscriptions))
	for _, sub := range c.subscriptions {
		subs = append(subs, sub)
	}
	c.Unlock()

	for _, sub := range subs {
		if err := sub.Close(); err != nil {
			common.Log.Warnf("Failed closing subscription %s: %v", sub.ID(), err)
		}
	}

	return c.protocol.Close()
}

func (c *Client) checkClosed() error {
	c.RLock()
	defer c.RUnlock()
	if c.closed {
		return common.ErrClosed
	}
	return nil
}

func (c *Client) context() (context.Context, context.CancelFunc) {
	timeout := c.GetTimeout()
	if timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), timeout)
}

func (c *Client) publish(event interface{}) {
	c.RLock()
	subs := make([]*common.Subscription, 0, len(c.subscriptions))
	for _, sub := range c.subscriptions {
		subs = append(subs, sub)
	}
	c.RUnlock()

	for _, sub := range subs {
		if err := sub.Write(event); err != nil {
			common.Log.Warnf("Failed publishing %T to subscription %s: %v", event, sub.ID(), err)
		}
	}
}
