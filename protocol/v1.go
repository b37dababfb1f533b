package protocol

import (
	"context"
	"sync"

	"github.com/kr/pretty"
	"github.com/pkg/errors"

	"github.com/pdf/gomaxsun/common"
	"github.com/pdf/gomaxsun/protocol/v1/packet"
	"github.com/pdf/gomaxsun/protocol/v1/pipe"
	"github.com/pdf/gomaxsun/protocol/v1/shared"
)

// V1 implements the MaxsunSync pipe protocol.  Every call opens its own
// channel, so a V1 may be shared between goroutines, but concurrent
// ApplyEffect calls are not ordered with respect to each other.
type V1 struct {
	// Dialer opens the service's channels.  Defaults to the host's named pipe
	// dialer.
	Dialer pipe.Dialer
	// ScanFilter is sent with every scan request.  The service ignores it at
	// present.
	ScanFilter packet.ScanFilter
	closed     bool
	sync.RWMutex
}

func (p *V1) dialer() (pipe.Dialer, error) {
	p.RLock()
	closed, d := p.closed, p.Dialer
	p.RUnlock()
	if closed {
		return nil, common.ErrClosed
	}
	if d != nil {
		return d, nil
	}

	p.Lock()
	defer p.Unlock()
	if p.Dialer == nil {
		p.Dialer = pipe.NewDialer()
	}
	return p.Dialer, nil
}

// ScanDevices asks the service for its devices
func (p *V1) ScanDevices(ctx context.Context) ([]common.DeviceInfo, error) {
	d, err := p.dialer()
	if err != nil {
		return nil, err
	}

	var devices []common.DeviceInfo
	err = pipe.WithChannel(ctx, d, shared.ChannelScanDevice, shared.InOut, func(ch pipe.Channel) error {
		if err := pipe.Write(ch, packet.EncodeScanRequest(p.ScanFilter)); err != nil {
			return err
		}
		resp, err := pipe.ReadResponse(ctx, ch, shared.ResponseBufferSize)
		if err != nil {
			return err
		}
		common.Log.Debugf("Scan response: %q", resp)
		devices, err = packet.DecodeScanResponse(resp)
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, `scan devices`)
	}

	return devices, nil
}

// ApplyEffect scans the devices to build the sync summary, then sends the
// effect record.  The service does not acknowledge the record.
func (p *V1) ApplyEffect(ctx context.Context, effect common.Effect) error {
	d, err := p.dialer()
	if err != nil {
		return err
	}

	devices, err := p.ScanDevices(ctx)
	if err != nil {
		return errors.Wrap(err, `apply effect`)
	}

	data := packet.NewEffectData(effect, packet.EncodeSyncString(devices))
	payload, err := data.MarshalBinary()
	if err != nil {
		return errors.Wrap(err, `apply effect`)
	}
	common.Log.Debugf("Sending effect: %# v", pretty.Formatter(data))

	err = pipe.WithChannel(ctx, d, shared.ChannelApplyEffect, shared.Out, func(ch pipe.Channel) error {
		return pipe.Write(ch, payload)
	})
	if err != nil {
		return errors.Wrap(err, `apply effect`)
	}

	return nil
}

// GetSyncStatusList reads the sync flag of every device
func (p *V1) GetSyncStatusList(ctx context.Context) ([]bool, error) {
	d, err := p.dialer()
	if err != nil {
		return nil, err
	}

	var status []bool
	err = pipe.WithChannel(ctx, d, shared.ChannelSyncStatus, shared.InOut, func(ch pipe.Channel) error {
		if err := pipe.Write(ch, packet.EncodeSyncStatusQuery()); err != nil {
			return err
		}
		resp, err := pipe.ReadResponse(ctx, ch, shared.ResponseBufferSize)
		if err != nil {
			return err
		}
		common.Log.Debugf("Sync status response: %q", resp)
		status = packet.DecodeSyncStatus(resp)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, `get sync status`)
	}

	return status, nil
}

// SetSyncStatus writes the sync flags.  The service sends no reply, so
// success only means the request was written.
func (p *V1) SetSyncStatus(ctx context.Context, status []bool) error {
	d, err := p.dialer()
	if err != nil {
		return err
	}

	payload := packet.EncodeSyncStatus(status)
	err = pipe.WithChannel(ctx, d, shared.ChannelSyncStatus, shared.InOut, func(ch pipe.Channel) error {
		common.Log.Debugf("Setting sync status: %s", payload)
		return pipe.Write(ch, payload)
	})
	if err != nil {
		return errors.Wrap(err, `set sync status`)
	}

	return nil
}

// Close closes the protocol driver, no further communication with the protocol
// is possible
func (p *V1) Close() error {
	p.Lock()
	defer p.Unlock()
	if p.closed {
		return common.ErrClosed
	}
	p.closed = true
	return nil
}
