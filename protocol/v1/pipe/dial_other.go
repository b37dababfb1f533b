//go:build !windows

package pipe

import (
	"context"

	"github.com/pkg/errors"

	"github.com/pdf/gomaxsun/common"
	"github.com/pdf/gomaxsun/protocol/v1/shared"
)

type unsupportedDialer struct{}

// NewDialer returns a Dialer that always fails, the service only exists on
// Windows hosts
func NewDialer() Dialer {
	return unsupportedDialer{}
}

func (unsupportedDialer) Dial(ctx context.Context, name string, dir shared.Direction) (Channel, error) {
	return nil, errors.Wrapf(common.ErrUnsupportedPlatform, `named pipe %s`, Path(name))
}
