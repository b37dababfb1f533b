//go:build !windows

package service

import (
	"github.com/pkg/errors"

	"github.com/pdf/gomaxsun/common"
)

// Open always fails on this platform, the sync service only exists on Windows
func Open(name string) (common.ServiceController, error) {
	return nil, errors.Wrapf(common.ErrUnsupportedPlatform, `service %s`, name)
}
