package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/lraycheva/core-sub003/internal/log"
	"github.com/lraycheva/core-sub003/internal/pubsub"
)

var (
	// ErrPublisherClosed is returned when raising on a closed Publisher.
	ErrPublisherClosed = errors.New("event publisher closed")
	// ErrInvalidAction is returned for an action outside its type's enum.
	ErrInvalidAction = errors.New("invalid event action")
)

// Publisher is the base Emitter. It validates each event and fans it out on
// a pubsub.Broker to every subscriber.
type Publisher struct {
	broker *pubsub.Broker[Event]
}

var _ Emitter = (*Publisher)(nil)

// PublisherOption configures a Publisher.
type PublisherOption func(*publisherOptions)

type publisherOptions struct {
	blocking bool
}

// WithBlockingDelivery makes the Publisher wait for room in each
// subscriber's buffer rather than drop events. Every subscriber must keep
// reading until it cancels its subscription or the Publisher is closed.
func WithBlockingDelivery() PublisherOption {
	return func(o *publisherOptions) {
		o.blocking = true
	}
}

// NewPublisher creates a Publisher whose subscribers buffer up to bufferSize
// events. A non-positive size uses the broker default.
func NewPublisher(bufferSize int, opts ...PublisherOption) *Publisher {
	var o publisherOptions
	for _, opt := range opts {
		opt(&o)
	}
	brokerOpts := []pubsub.Option{pubsub.WithBufferSize(bufferSize)}
	if o.blocking {
		brokerOpts = append(brokerOpts, pubsub.WithBlockingDelivery())
	}
	return &Publisher{broker: pubsub.NewBroker[Event](brokerOpts...)}
}

func (p *Publisher) RaiseWindowEvent(event WindowEvent) error {
	return p.publish(TypeWindow, event.Action, event.EntityID(), event.Payload)
}

func (p *Publisher) RaiseContainerEvent(event ContainerEvent) error {
	return p.publish(TypeContainer, event.Action, event.EntityID(), event.Payload)
}

func (p *Publisher) RaiseWorkspaceEvent(event WorkspaceEvent) error {
	return p.publish(TypeWorkspace, event.Action, event.EntityID(), event.Payload)
}

func (p *Publisher) RaiseFrameEvent(event FrameEvent) error {
	return p.publish(TypeFrame, event.Action, event.EntityID(), event.Payload)
}

// Subscribe returns a channel of published events, closed when ctx is done
// or the Publisher is closed.
func (p *Publisher) Subscribe(ctx context.Context) <-chan pubsub.Event[Event] {
	return p.broker.Subscribe(ctx)
}

// Close stops the Publisher and closes every subscription.
func (p *Publisher) Close() {
	p.broker.Close()
}

// Dropped returns how many deliveries slow subscribers missed. Always zero
// with WithBlockingDelivery.
func (p *Publisher) Dropped() uint64 {
	return p.broker.Dropped()
}

func (p *Publisher) publish(t Type, action Action, id string, payload any) error {
	if !action.Valid(t) {
		return fmt.Errorf("%w: %q is not a %s action", ErrInvalidAction, action, t)
	}
	if p.broker.Closed() {
		return ErrPublisherClosed
	}
	p.broker.Publish(brokerEventType(action), Event{
		Type:     t,
		Action:   action,
		EntityID: id,
		Payload:  payload,
	})
	log.Debug(log.CatEvents, "event published", "type", t, "action", action, "id", id)
	return nil
}

// brokerEventType maps lifecycle actions onto the broker's
// created/updated/deleted tags.
func brokerEventType(action Action) pubsub.EventType {
	switch action {
	case ActionAdded, ActionOpened, ActionLoaded:
		return pubsub.CreatedEvent
	case ActionRemoved, ActionClosed:
		return pubsub.DeletedEvent
	default:
		return pubsub.UpdatedEvent
	}
}
