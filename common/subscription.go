package common

import (
	"sync"
	"time"

	uuid "github.com/satori/go.uuid"
)

const subscriptionChanSize = 16

// SubscriptionTarget defines the interface between a subscription and its
// target object
type SubscriptionTarget interface {
	NewSubscription() (*Subscription, error)
	CloseSubscription(*Subscription) error
}

// Subscription exposes an event channel for consumers, and attaches to a
// SubscriptionTarget, that will feed it with events
type Subscription struct {
	events   chan interface{}
	quitChan chan struct{}
	id       uuid.UUID
	target   SubscriptionTarget
	quitOnce sync.Once
	mu       sync.RWMutex
	closed   bool
}

// ID returns the unique ID for this subscription
func (s *Subscription) ID() string {
	return s.id.String()
}

// Events returns a chan reader for reading events published to this
// subscription
func (s *Subscription) Events() <-chan interface{} {
	return s.events
}

// Write pushes an event onto the events channel, giving up with ErrTimeout if
// the consumer does not keep up within DefaultTimeout
func (s *Subscription) Write(event interface{}) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}

	timeout := time.NewTimer(DefaultTimeout)
	defer timeout.Stop()
	select {
	case s.events <- event:
		return nil
	case <-s.quitChan:
		return ErrClosed
	case <-timeout.C:
		return ErrTimeout
	}
}

// Close cleans up resources and notifies the target that the subscription
// should no longer be used.  Subscriptions that are not drained must be
// closed, or publishing operations will stall until the write timeout.
func (s *Subscription) Close() error {
	// quitChan releases a Write blocked on a full channel before we take the
	// write lock
	s.mu.RLock()
	closed := s.closed
	s.mu.RUnlock()
	if closed {
		Log.Warnf(`subscription %s already closed`, s.ID())
		return ErrClosed
	}
	s.quitOnce.Do(func() { close(s.quitChan) })

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	s.closed = true
	close(s.events)
	s.mu.Unlock()

	return s.target.CloseSubscription(s)
}

// NewSubscription returns a *Subscription attached to the specified target
func NewSubscription(target SubscriptionTarget) *Subscription {
	return &Subscription{
		events:   make(chan interface{}, subscriptionChanSize),
		quitChan: make(chan struct{}),
		id:       uuid.NewV4(),
		target:   target,
	}
}
