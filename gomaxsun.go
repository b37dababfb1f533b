// Copyright 2015 Peter Fern
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE file

// Package gomaxsun provides a simple Go interface to the MaxsunSync lighting
// service.
//
// MaxsunSync must be installed, and its service must be running (see
// Client.CheckService).  The service only exists on Windows, and controlling
// it requires administrator privileges.
//
// Also included in cmd/maxsun is a small CLI utility that allows interacting
// with the service from the command line.
package gomaxsun

import (
	"github.com/pdf/gomaxsun/common"
	"github.com/pdf/gomaxsun/protocol"
)

const (
	// VERSION of this library
	VERSION = `0.1.0`
)

// NewClient returns a pointer to a new Client using the protocol p.  A nil
// protocol selects protocol.V1 over the host's named pipes.  No channel is
// opened until the first operation.
func NewClient(p common.Protocol) *Client {
	if p == nil {
		p = &protocol.V1{}
	}
	return &Client{
		protocol:            p,
		timeout:             common.DefaultTimeout,
		serviceTimeout:      common.DefaultServiceTimeout,
		servicePollInterval: common.DefaultServicePollInterval,
		subscriptions:       make(map[string]*common.Subscription),
	}
}

// SetLogger allows assigning a custom levelled logger that conforms to the
// common.Logger interface.  Defaults to common.StubLogger, which does no
// logging at all.
func SetLogger(logger common.Logger) {
	common.SetLogger(logger)
}
