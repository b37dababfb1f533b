package common

import "context"

// Protocol defines the interface between the Client and a protocol
// implementation.  Each call is a complete exchange with the service, nothing
// is cached between calls.
type Protocol interface {
	// ScanDevices asks the service for the devices it controls, in service
	// order
	ScanDevices(ctx context.Context) ([]DeviceInfo, error)
	// ApplyEffect sends effect to all synchronized devices
	ApplyEffect(ctx context.Context, effect Effect) error
	// GetSyncStatusList returns the sync flag of every device, in scan order
	GetSyncStatusList(ctx context.Context) ([]bool, error)
	// SetSyncStatus replaces the sync flags of all devices, positionally
	SetSyncStatus(ctx context.Context, status []bool) error
	// Close closes the protocol driver, no further communication with the
	// protocol is possible
	Close() error
}
