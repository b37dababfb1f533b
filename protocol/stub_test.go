package protocol_test

import (
	"context"
	"errors"
	"io"
	"net"
	"sync"

	"github.com/pdf/gomaxsun/protocol/v1/packet"
	"github.com/pdf/gomaxsun/protocol/v1/pipe"
	"github.com/pdf/gomaxsun/protocol/v1/shared"
)

type request struct {
	name    string
	dir     shared.Direction
	payload []byte
}

// stubService answers on in-memory pipes the way the sync service answers on
// its named pipes.  Channels are served one at a time, in dial order.
type stubService struct {
	scanResponse []byte
	silent       bool
	dialErr      error

	mu       sync.Mutex
	syncBits []byte
	requests []request
	wg       sync.WaitGroup
}

func (s *stubService) dialer() pipe.Dialer {
	return pipe.DialerFunc(s.dial)
}

func (s *stubService) dial(ctx context.Context, name string, dir shared.Direction) (pipe.Channel, error) {
	s.wg.Wait()
	if s.dialErr != nil {
		return nil, s.dialErr
	}
	client, server := net.Pipe()
	s.wg.Add(1)
	go s.serve(server, name, dir)
	return client, nil
}

func (s *stubService) serve(conn net.Conn, name string, dir shared.Direction) {
	defer s.wg.Done()
	defer conn.Close()

	buf := make([]byte, shared.ResponseBufferSize)
	n, err := conn.Read(buf)
	if err != nil {
		return
	}
	payload := append([]byte(nil), buf[:n]...)

	s.mu.Lock()
	s.requests = append(s.requests, request{name: name, dir: dir, payload: payload})
	s.mu.Unlock()

	if s.silent {
		_, _ = io.Copy(io.Discard, conn)
		return
	}

	switch name {
	case shared.ChannelScanDevice:
		_, _ = conn.Write(s.scanResponse)
	case shared.ChannelSyncStatus:
		if string(payload) == shared.SyncStatusQuery {
			s.mu.Lock()
			bits := append([]byte(nil), s.syncBits...)
			s.mu.Unlock()
			_, _ = conn.Write(bits)
			return
		}
		s.mu.Lock()
		s.syncBits = packet.EncodeSyncStatus(packet.DecodeSyncStatus(payload))
		s.mu.Unlock()
	}
}

// wait blocks until every served channel has finished
func (s *stubService) wait() {
	s.wg.Wait()
}

func (s *stubService) received() []request {
	s.wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]request(nil), s.requests...)
}

var errRefused = errors.New(`pipe busy`)
