// Package pipe implements the channel transport of the MaxsunSync protocol:
// one local named pipe per request, opened, used and closed by a single
// operation.
//
// This package is not designed to be accessed by end users, all interaction
// should occur via the Client in the gomaxsun package.
package pipe

import (
	"context"
	"io"
	"io/fs"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/pdf/gomaxsun/common"
	"github.com/pdf/gomaxsun/protocol/v1/shared"
)

// Channel is an open connection to one of the service's named channels
type Channel interface {
	io.ReadWriteCloser
}

// Dialer opens named channels
type Dialer interface {
	// Dial opens a fresh channel called name.  Implementations make exactly one
	// connection attempt.
	Dial(ctx context.Context, name string, dir shared.Direction) (Channel, error)
}

// DialerFunc adapts a function to the Dialer interface
type DialerFunc func(ctx context.Context, name string, dir shared.Direction) (Channel, error)

// Dial calls f
func (f DialerFunc) Dial(ctx context.Context, name string, dir shared.Direction) (Channel, error) {
	return f(ctx, name, dir)
}

type readDeadliner interface {
	SetReadDeadline(t time.Time) error
}

// Path returns the local named pipe path for the channel name
func Path(name string) string {
	return shared.PipePrefix + name
}

// WithChannel opens the channel name, hands it to body and closes it again on
// every path out of body.  A close failure is only reported when body
// succeeded.
func WithChannel(ctx context.Context, d Dialer, name string, dir shared.Direction, body func(Channel) error) (err error) {
	ch, err := dial(ctx, d, name, dir)
	if err != nil {
		return err
	}
	common.Log.Debugf("Opened channel %s (%v)", name, dir)
	defer func() {
		closeErr := ch.Close()
		if err == nil && closeErr != nil {
			err = errors.Wrapf(closeErr, `closing channel %s`, name)
		}
		common.Log.Debugf("Closed channel %s", name)
	}()

	return body(ch)
}

func dial(ctx context.Context, d Dialer, name string, dir shared.Direction) (Channel, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrapf(common.ErrTimeout, `opening channel %s: %v`, name, err)
	}
	ch, err := d.Dial(ctx, name, dir)
	if err == nil {
		return ch, nil
	}
	switch {
	case errors.Is(err, common.ErrPermissionDenied), errors.Is(err, common.ErrUnsupportedPlatform):
		return nil, errors.Wrapf(err, `opening channel %s`, name)
	case errors.Is(err, fs.ErrPermission):
		return nil, errors.Wrapf(common.ErrPermissionDenied, `opening channel %s: %v`, name, err)
	case ctx.Err() != nil:
		return nil, errors.Wrapf(common.ErrTimeout, `opening channel %s: %v`, name, err)
	}
	return nil, errors.Wrapf(common.ErrConnectFailed, `opening channel %s: %v`, name, err)
}

// Write sends payload over ch in a single write
func Write(ch Channel, payload []byte) error {
	n, err := ch.Write(payload)
	if err != nil {
		return errors.Wrap(err, `writing request`)
	}
	if n != len(payload) {
		return errors.Wrapf(io.ErrShortWrite, `wrote %d of %d bytes`, n, len(payload))
	}
	return nil
}

// ReadResponse reads from ch until a read returns data, and returns that data
// as the complete response.  Responses are expected to fit in a single read of
// size bytes.  When ctx ends first the read is interrupted and ErrTimeout is
// returned.  Without a deadline on ctx this may block forever.
func ReadResponse(ctx context.Context, ch Channel, size int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(common.ErrTimeout, err.Error())
	}

	var expired atomic.Bool
	stop := context.AfterFunc(ctx, func() {
		expired.Store(true)
		if rd, ok := ch.(readDeadliner); ok && rd.SetReadDeadline(time.Now()) == nil {
			return
		}
		_ = ch.Close()
	})
	defer stop()

	buf := make([]byte, size)
	for {
		n, err := ch.Read(buf)
		if n > 0 {
			return buf[:n], nil
		}
		if expired.Load() {
			return nil, errors.Wrap(common.ErrTimeout, `waiting for response`)
		}
		if err != nil {
			return nil, errors.Wrap(err, `reading response`)
		}
	}
}
