package common

// EventDevicesScanned is emitted by a Client after a successful device scan
type EventDevicesScanned struct {
	Devices []DeviceInfo
}

// EventEffectApplied is emitted by a Client when an effect has been sent to
// the service
type EventEffectApplied struct {
	Effect Effect
}

// EventSyncStatusUpdated is emitted by a Client when the sync status list has
// been read from, or written to the service
type EventSyncStatusUpdated struct {
	Status []bool
}
