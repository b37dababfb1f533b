package common

import "time"

const (
	// DefaultTimeout is the default duration after which operations time out
	DefaultTimeout = 5 * time.Second
	// DefaultServiceTimeout is how long the service supervisor waits for the
	// service to report running after starting it
	DefaultServiceTimeout = 30 * time.Second
	// DefaultServicePollInterval is the interval between service status
	// queries while waiting for it to start
	DefaultServicePollInterval = 250 * time.Millisecond
)
