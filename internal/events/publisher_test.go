package events_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lraycheva/core-sub003/internal/events"
	"github.com/lraycheva/core-sub003/internal/pubsub"
)

func windowEvent(id string, action events.Action) events.WindowEvent {
	return events.WindowEvent{
		Action:  action,
		Payload: events.WindowPayload{WindowSummary: events.WindowSummary{ItemID: id}},
	}
}

func receive(t *testing.T, ch <-chan pubsub.Event[events.Event]) pubsub.Event[events.Event] {
	t.Helper()
	select {
	case ev, ok := <-ch:
		require.True(t, ok, "subscription closed")
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return pubsub.Event[events.Event]{}
	}
}

func TestPublisher_DeliversToSubscribers(t *testing.T) {
	p := events.NewPublisher(8)
	defer p.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := p.Subscribe(ctx)

	require.NoError(t, p.RaiseWindowEvent(windowEvent("w1", events.ActionAdded)))

	ev := receive(t, ch)
	require.Equal(t, pubsub.CreatedEvent, ev.Type)
	require.Equal(t, events.TypeWindow, ev.Payload.Type)
	require.Equal(t, events.ActionAdded, ev.Payload.Action)
	require.Equal(t, "w1", ev.Payload.EntityID)
	payload, ok := ev.Payload.Payload.(events.WindowPayload)
	require.True(t, ok)
	require.Equal(t, "w1", payload.WindowSummary.ItemID)
}

func TestPublisher_AllTypes(t *testing.T) {
	p := events.NewPublisher(8)
	defer p.Close()
	ch := p.Subscribe(context.Background())

	require.NoError(t, p.RaiseContainerEvent(events.ContainerEvent{
		Action:  events.ActionChildrenUpdate,
		Payload: events.ContainerPayload{ContainerSummary: events.ContainerSummary{ItemID: "c1"}},
	}))
	require.NoError(t, p.RaiseWorkspaceEvent(events.WorkspaceEvent{
		Action:  events.ActionClosed,
		Payload: events.WorkspacePayload{WorkspaceSummary: events.WorkspaceSummary{ID: "ws1"}},
	}))
	require.NoError(t, p.RaiseFrameEvent(events.FrameEvent{
		Action:  events.ActionFocus,
		Payload: events.FramePayload{FrameSummary: events.FrameSummary{ID: "f1"}},
	}))

	got := []events.Event{receive(t, ch).Payload, receive(t, ch).Payload, receive(t, ch).Payload}
	require.Equal(t, "c1", got[0].EntityID)
	require.Equal(t, events.TypeWorkspace, got[1].Type)
	require.Equal(t, events.TypeFrame, got[2].Type)
	require.Equal(t, "f1", got[2].EntityID)
}

func TestPublisher_RejectsInvalidAction(t *testing.T) {
	p := events.NewPublisher(0)
	defer p.Close()

	err := p.RaiseFrameEvent(events.FrameEvent{Action: events.ActionLockConfigurationChanged})
	require.ErrorIs(t, err, events.ErrInvalidAction)
	require.ErrorContains(t, err, "frame")
}

func TestPublisher_Closed(t *testing.T) {
	p := events.NewPublisher(0)
	ch := p.Subscribe(context.Background())
	p.Close()
	p.Close()

	_, ok := <-ch
	require.False(t, ok)
	require.ErrorIs(t, p.RaiseWindowEvent(windowEvent("w1", events.ActionFocus)), events.ErrPublisherClosed)
}

func TestPublisher_BlockingDeliveryKeepsEveryEvent(t *testing.T) {
	p := events.NewPublisher(1, events.WithBlockingDelivery())
	defer p.Close()
	ch := p.Subscribe(context.Background())

	const total = 300
	errs := make(chan error, 1)
	go func() {
		for i := 0; i < total; i++ {
			if err := p.RaiseWindowEvent(windowEvent("w", events.ActionLockConfigurationChanged)); err != nil {
				errs <- err
				return
			}
		}
		errs <- nil
	}()

	for i := 0; i < total; i++ {
		receive(t, ch)
	}
	require.NoError(t, <-errs)
	require.Zero(t, p.Dropped())
}
