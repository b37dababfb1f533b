package common

// Client defines the operations exposed to consumers of the gomaxsun client
type Client interface {
	SubscriptionTarget
	CheckService(ctl ServiceController) error
	ScanDevices() ([]DeviceInfo, error)
	ApplyEffect(effect Effect) error
	ApplyEffectForSleep() error
	GetSyncStatusList() ([]bool, error)
	SetSyncStatus(status []bool) (bool, error)
	Close() error
}
