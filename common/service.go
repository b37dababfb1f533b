package common

import "fmt"

// ServiceState mirrors the states reported by the host's service manager
type ServiceState int

const (
	// ServiceUnknown is reported when the state could not be determined
	ServiceUnknown ServiceState = iota
	// ServiceStopped means the service is not running
	ServiceStopped
	// ServiceStartPending means the service is starting
	ServiceStartPending
	// ServiceStopPending means the service is stopping
	ServiceStopPending
	// ServiceRunning means the service is accepting requests
	ServiceRunning
	// ServiceContinuePending means the service is resuming from pause
	ServiceContinuePending
	// ServicePausePending means the service is pausing
	ServicePausePending
	// ServicePaused means the service is paused
	ServicePaused
)

func (s ServiceState) String() string {
	switch s {
	case ServiceStopped:
		return `stopped`
	case ServiceStartPending:
		return `start pending`
	case ServiceStopPending:
		return `stop pending`
	case ServiceRunning:
		return `running`
	case ServiceContinuePending:
		return `continue pending`
	case ServicePausePending:
		return `pause pending`
	case ServicePaused:
		return `paused`
	case ServiceUnknown:
		return `unknown`
	}
	return fmt.Sprintf(`ServiceState(%d)`, int(s))
}

// ServiceController queries and starts the background sync service
type ServiceController interface {
	// Status returns the current state of the service
	Status() (ServiceState, error)
	// Start requests that the service be started, without waiting for it
	Start() error
	// Close releases the handle to the service
	Close() error
}
