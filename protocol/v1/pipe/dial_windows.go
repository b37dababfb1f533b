//go:build windows

package pipe

import (
	"context"

	winio "github.com/Microsoft/go-winio"
	"golang.org/x/sys/windows"

	"github.com/pdf/gomaxsun/protocol/v1/shared"
)

type namedPipeDialer struct{}

// NewDialer returns a Dialer for the local named pipes of the service
func NewDialer() Dialer {
	return namedPipeDialer{}
}

// Dial opens \\.\pipe\<name>.  Out channels are opened write-only.
func (namedPipeDialer) Dial(ctx context.Context, name string, dir shared.Direction) (Channel, error) {
	var access uint32 = windows.GENERIC_READ | windows.GENERIC_WRITE
	if dir == shared.Out {
		access = windows.GENERIC_WRITE
	}
	conn, err := winio.DialPipeAccess(ctx, Path(name), access)
	if err != nil {
		return nil, err
	}
	return conn, nil
}
