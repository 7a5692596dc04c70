package workspaces

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/lraycheva/core-sub003/internal/events"
	"github.com/lraycheva/core-sub003/internal/log"
)

// FrameOptions configures a new frame. An empty ID gets a generated one.
type FrameOptions struct {
	ID     string
	Bounds events.FrameBounds
}

// FrameHello is what a host frame announces once it is ready to receive
// workspaces.
type FrameHello struct {
	FrameID string
	Bounds  events.FrameBounds
}

// OpenFrame registers a frame and raises frame opened.
func (m *Manager) OpenFrame(ctx context.Context, opts FrameOptions) (events.FrameSummary, error) {
	if err := ctx.Err(); err != nil {
		return events.FrameSummary{}, err
	}
	id := opts.ID
	if id == "" {
		id = m.newID()
	}

	m.mu.Lock()
	if _, exists := m.frames[id]; exists {
		m.mu.Unlock()
		return events.FrameSummary{}, fmt.Errorf("%w: %q", ErrFrameExists, id)
	}
	f := &frame{id: id, bounds: opts.Bounds}
	m.frames[id] = f
	summary := m.frameSummary(f)
	var o outbox
	o.frame(events.ActionOpened, summary, f.bounds)
	m.mu.Unlock()

	log.Info(log.CatFrames, "frame opened", "frame", id)
	return summary, o.deliver(m.bundler)
}

// CloseFrame closes every workspace of the frame, then the frame itself.
func (m *Manager) CloseFrame(ctx context.Context, frameID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	f, ok := m.frames[frameID]
	if !ok {
		m.mu.Unlock()
		return frameNotFound(frameID)
	}
	var o outbox
	o.frame(events.ActionClosing, m.frameSummary(f), f.bounds)
	for _, wsID := range slices.Clone(f.workspaces) {
		m.closeWorkspaceLocked(&o, m.workspaces[wsID], false)
	}
	delete(m.frames, frameID)
	o.frame(events.ActionClosed, m.frameSummary(f), f.bounds)
	m.mu.Unlock()

	log.Info(log.CatFrames, "frame closed", "frame", frameID)
	return o.deliver(m.bundler)
}

// FocusFrame marks frameID as the focused frame.
func (m *Manager) FocusFrame(ctx context.Context, frameID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	target, ok := m.frames[frameID]
	if !ok {
		m.mu.Unlock()
		return frameNotFound(frameID)
	}
	var o outbox
	if !target.focused {
		for _, f := range m.frames {
			f.focused = false
		}
		target.focused = true
		o.frame(events.ActionFocus, m.frameSummary(target), target.bounds)
	}
	m.mu.Unlock()

	return o.deliver(m.bundler)
}

// Frames returns a summary of every open frame, ordered by id.
func (m *Manager) Frames() []events.FrameSummary {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]events.FrameSummary, 0, len(m.frames))
	for _, f := range m.frames {
		out = append(out, m.frameSummary(f))
	}
	slices.SortFunc(out, func(a, b events.FrameSummary) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// AnnounceFrame delivers a hello to whoever waits for that frame. A hello
// nobody is waiting for is parked until it is claimed or expires.
func (m *Manager) AnnounceFrame(hello FrameHello) {
	m.mu.Lock()
	waiters := m.waiters[hello.FrameID]
	if len(waiters) > 0 {
		ch := waiters[0]
		m.waiters[hello.FrameID] = waiters[1:]
		if len(m.waiters[hello.FrameID]) == 0 {
			delete(m.waiters, hello.FrameID)
		}
		m.mu.Unlock()
		ch <- hello
		log.Debug(log.CatFrames, "frame hello delivered", "frame", hello.FrameID)
		return
	}
	m.hellos.Add(hello)
	m.mu.Unlock()
	log.Debug(log.CatFrames, "frame hello parked", "frame", hello.FrameID)
}

// WaitForFrame returns the hello of frameID, waiting for it if it has not
// been announced yet.
func (m *Manager) WaitForFrame(ctx context.Context, frameID string) (FrameHello, error) {
	m.mu.Lock()
	var (
		found   FrameHello
		claimed bool
	)
	for _, h := range m.hellos.Flush() {
		if !claimed && h.FrameID == frameID {
			found, claimed = h, true
			continue
		}
		m.hellos.Add(h)
	}
	if claimed {
		m.mu.Unlock()
		return found, nil
	}
	ch := make(chan FrameHello, 1)
	m.waiters[frameID] = append(m.waiters[frameID], ch)
	m.mu.Unlock()

	select {
	case hello := <-ch:
		return hello, nil
	case <-ctx.Done():
		m.dropWaiter(frameID, ch)
		// The hello may have arrived while giving up.
		select {
		case hello := <-ch:
			return hello, nil
		default:
		}
		return FrameHello{}, fmt.Errorf("waiting for frame %q: %w", frameID, ctx.Err())
	}
}

func (m *Manager) dropWaiter(frameID string, ch chan FrameHello) {
	m.mu.Lock()
	defer m.mu.Unlock()
	waiters := slices.DeleteFunc(m.waiters[frameID], func(c chan FrameHello) bool { return c == ch })
	if len(waiters) == 0 {
		delete(m.waiters, frameID)
		return
	}
	m.waiters[frameID] = waiters
}
