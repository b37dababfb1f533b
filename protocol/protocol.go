// Package protocol implements the MaxsunSync local pipe protocol.
//
// This package is not designed to used directly by end users, other than to
// specify a protocol version, or a custom pipe dialer, when creating a new
// Client from the gomaxsun package.
//
// The currently implemented protocol versions are:
//   V1
package protocol

import "github.com/pdf/gomaxsun/common"

var _ common.Protocol = (*V1)(nil)
