package workspaces

import (
	"errors"

	"github.com/lraycheva/core-sub003/internal/events"
	"github.com/lraycheva/core-sub003/internal/layout"
)

// outbox collects events while the Manager holds its lock. They are raised
// in order once the lock is released.
type outbox struct {
	raises []func(events.Emitter) error
}

func (o *outbox) window(action events.Action, s events.WindowSummary) {
	o.raises = append(o.raises, func(e events.Emitter) error {
		return e.RaiseWindowEvent(events.WindowEvent{
			Action:  action,
			Payload: events.WindowPayload{WindowSummary: s},
		})
	})
}

func (o *outbox) container(action events.Action, s events.ContainerSummary) {
	o.raises = append(o.raises, func(e events.Emitter) error {
		return e.RaiseContainerEvent(events.ContainerEvent{
			Action:  action,
			Payload: events.ContainerPayload{ContainerSummary: s},
		})
	})
}

func (o *outbox) workspace(action events.Action, s events.WorkspaceSummary, snapshot *layout.Node) {
	o.raises = append(o.raises, func(e events.Emitter) error {
		return e.RaiseWorkspaceEvent(events.WorkspaceEvent{
			Action:  action,
			Payload: events.WorkspacePayload{WorkspaceSummary: s, WorkspaceSnapshot: snapshot},
		})
	})
}

func (o *outbox) frame(action events.Action, s events.FrameSummary, b events.FrameBounds) {
	o.raises = append(o.raises, func(e events.Emitter) error {
		return e.RaiseFrameEvent(events.FrameEvent{
			Action:  action,
			Payload: events.FramePayload{FrameSummary: s, FrameBounds: b},
		})
	})
}

// deliver raises everything collected. Every event is attempted; the
// failures are joined.
func (o *outbox) deliver(e events.Emitter) error {
	var errs []error
	for _, raise := range o.raises {
		if err := raise(e); err != nil {
			errs = append(errs, err)
		}
	}
	o.raises = nil
	return errors.Join(errs...)
}
