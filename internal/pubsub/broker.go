package pubsub

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

const defaultBufferSize = 64

// Broker fans published events out to every subscriber.
//
// By default publishing never blocks: a subscriber whose buffer is full
// misses the event, and the miss is counted in Dropped. A blocking broker
// instead waits for room in each subscriber's buffer, so a subscriber that
// keeps reading sees every event. A blocked Publish is released when that
// subscriber's context is cancelled or the broker is closed.
type Broker[T any] struct {
	mu         sync.RWMutex
	subs       map[*subscription[T]]struct{}
	done       chan struct{}
	closeOnce  sync.Once
	bufferSize int
	blocking   bool
	dropped    atomic.Uint64
}

type subscription[T any] struct {
	ch   chan Event[T]
	gone chan struct{}
}

// Option configures a Broker.
type Option func(*options)

type options struct {
	bufferSize int
	blocking   bool
}

// WithBufferSize sets the per-subscriber buffer. Non-positive sizes use the
// default (64).
func WithBufferSize(size int) Option {
	return func(o *options) {
		o.bufferSize = size
	}
}

// WithBlockingDelivery makes Publish wait for subscribers instead of
// dropping events.
func WithBlockingDelivery() Option {
	return func(o *options) {
		o.blocking = true
	}
}

// NewBroker creates a broker with the default per-subscriber buffer (64).
func NewBroker[T any](opts ...Option) *Broker[T] {
	o := options{bufferSize: defaultBufferSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.bufferSize <= 0 {
		o.bufferSize = defaultBufferSize
	}
	return &Broker[T]{
		subs:       make(map[*subscription[T]]struct{}),
		done:       make(chan struct{}),
		bufferSize: o.bufferSize,
		blocking:   o.blocking,
	}
}

// NewBrokerWithBuffer creates a non-blocking broker with a custom
// per-subscriber buffer.
func NewBrokerWithBuffer[T any](size int) *Broker[T] {
	return NewBroker[T](WithBufferSize(size))
}

// Subscribe registers a subscriber. The returned channel is closed when ctx
// is cancelled or the broker is closed.
func (b *Broker[T]) Subscribe(ctx context.Context) <-chan Event[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.Closed() {
		ch := make(chan Event[T])
		close(ch)
		return ch
	}

	sub := &subscription[T]{
		ch:   make(chan Event[T], b.bufferSize),
		gone: make(chan struct{}),
	}
	b.subs[sub] = struct{}{}

	go func() {
		select {
		case <-ctx.Done():
		case <-b.done:
			return
		}
		// Release any Publish blocked on this subscriber before taking the
		// write lock it holds a read lock against.
		close(sub.gone)
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.Closed() {
			return
		}
		delete(b.subs, sub)
		close(sub.ch)
	}()

	return sub.ch
}

// Publish sends an event to all subscribers.
func (b *Broker[T]) Publish(eventType EventType, payload T) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.Closed() {
		return
	}

	event := Event[T]{
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now(),
	}
	for sub := range b.subs {
		if b.blocking {
			select {
			case sub.ch <- event:
			case <-sub.gone:
			case <-b.done:
				return
			}
			continue
		}
		select {
		case sub.ch <- event:
		default:
			b.dropped.Add(1)
		}
	}
}

// Close shuts the broker down and closes every subscriber channel. Events
// already buffered can still be read. Safe to call more than once.
func (b *Broker[T]) Close() {
	b.closeOnce.Do(func() { close(b.done) })

	b.mu.Lock()
	defer b.mu.Unlock()
	for sub := range b.subs {
		close(sub.ch)
	}
	b.subs = nil
}

// Closed reports whether Close has been called.
func (b *Broker[T]) Closed() bool {
	select {
	case <-b.done:
		return true
	default:
		return false
	}
}

// SubscriberCount returns the number of active subscribers.
func (b *Broker[T]) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Dropped returns how many deliveries were skipped because a subscriber's
// buffer was full. A blocking broker never drops.
func (b *Broker[T]) Dropped() uint64 {
	return b.dropped.Load()
}
