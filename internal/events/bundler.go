package events

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/lraycheva/core-sub003/internal/log"
)

// Bundler wraps an Emitter and coalesces lock-configuration-changed events.
//
// Window, container and workspace events each have an independent grouping
// window. While a type is grouping, its lock-configuration-changed events
// are held per entity id with the last payload winning; every other action
// passes straight through. Groups nest: every Start must be paired with an
// End, and the held events are emitted, one per id, when the outermost group
// ends. Frame events are never grouped.
type Bundler struct {
	sink Emitter

	mu         sync.Mutex
	windows    group[WindowEvent]
	containers group[ContainerEvent]
	workspaces group[WorkspaceEvent]
}

var _ Emitter = (*Bundler)(nil)

type group[E any] struct {
	depth   int
	pending map[string]E
}

func (g *group[E]) active() bool {
	return g.depth > 0
}

// hold buffers e if the group is active. It reports false when e should be
// passed through.
func (g *group[E]) hold(id string, action Action, e E) bool {
	if !g.active() || action != ActionLockConfigurationChanged {
		return false
	}
	g.pending[id] = e
	return true
}

func (g *group[E]) start() {
	if g.depth == 0 {
		g.pending = make(map[string]E)
	}
	g.depth++
}

// end closes one level of grouping. It hands back the buffer only when the
// outermost level closes; an unmatched end is ignored.
func (g *group[E]) end() map[string]E {
	if g.depth == 0 {
		return nil
	}
	g.depth--
	if g.depth > 0 {
		return nil
	}
	pending := g.pending
	g.pending = nil
	return pending
}

// NewBundler creates a Bundler raising onto sink.
func NewBundler(sink Emitter) *Bundler {
	return &Bundler{sink: sink}
}

// RaiseWindowEvent holds a window lock change while windows are grouping and
// raises anything else on the sink.
func (b *Bundler) RaiseWindowEvent(event WindowEvent) error {
	b.mu.Lock()
	held := b.windows.hold(event.EntityID(), event.Action, event)
	b.mu.Unlock()
	if held {
		return nil
	}
	return b.sink.RaiseWindowEvent(event)
}

// RaiseContainerEvent holds a container lock change while containers are
// grouping and raises anything else on the sink.
func (b *Bundler) RaiseContainerEvent(event ContainerEvent) error {
	b.mu.Lock()
	held := b.containers.hold(event.EntityID(), event.Action, event)
	b.mu.Unlock()
	if held {
		return nil
	}
	return b.sink.RaiseContainerEvent(event)
}

// RaiseWorkspaceEvent holds a workspace lock change while workspaces are
// grouping and raises anything else on the sink.
func (b *Bundler) RaiseWorkspaceEvent(event WorkspaceEvent) error {
	b.mu.Lock()
	held := b.workspaces.hold(event.EntityID(), event.Action, event)
	b.mu.Unlock()
	if held {
		return nil
	}
	return b.sink.RaiseWorkspaceEvent(event)
}

// RaiseFrameEvent raises on the sink directly.
func (b *Bundler) RaiseFrameEvent(event FrameEvent) error {
	return b.sink.RaiseFrameEvent(event)
}

// StartWindowLockConfigurationChangedGrouping opens a level of window lock
// change grouping.
func (b *Bundler) StartWindowLockConfigurationChangedGrouping() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.windows.start()
}

// EndWindowLockConfigurationChangedGrouping closes a level of window
// grouping. Closing the last level emits one event per buffered window.
func (b *Bundler) EndWindowLockConfigurationChangedGrouping() {
	b.mu.Lock()
	pending := b.windows.end()
	b.mu.Unlock()
	flush(TypeWindow, pending, b.sink.RaiseWindowEvent)
}

// StartContainerLockConfigurationChangedGrouping opens a level of container
// lock change grouping.
func (b *Bundler) StartContainerLockConfigurationChangedGrouping() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.containers.start()
}

// EndContainerLockConfigurationChangedGrouping closes a level of container
// grouping. Closing the last level emits one event per buffered container.
func (b *Bundler) EndContainerLockConfigurationChangedGrouping() {
	b.mu.Lock()
	pending := b.containers.end()
	b.mu.Unlock()
	flush(TypeContainer, pending, b.sink.RaiseContainerEvent)
}

// StartWorkspaceLockConfigurationChangedGrouping opens a level of workspace
// lock change grouping.
func (b *Bundler) StartWorkspaceLockConfigurationChangedGrouping() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.workspaces.start()
}

// EndWorkspaceLockConfigurationChangedGrouping closes a level of workspace
// grouping. Closing the last level emits one event per buffered workspace.
func (b *Bundler) EndWorkspaceLockConfigurationChangedGrouping() {
	b.mu.Lock()
	pending := b.workspaces.end()
	b.mu.Unlock()
	flush(TypeWorkspace, pending, b.sink.RaiseWorkspaceEvent)
}

// Grouping reports whether t is currently grouping.
func (b *Bundler) Grouping(t Type) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch t {
	case TypeWindow:
		return b.windows.active()
	case TypeContainer:
		return b.containers.active()
	case TypeWorkspace:
		return b.workspaces.active()
	default:
		return false
	}
}

// Pending returns how many events of type t are buffered.
func (b *Bundler) Pending(t Type) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch t {
	case TypeWindow:
		return len(b.windows.pending)
	case TypeContainer:
		return len(b.containers.pending)
	case TypeWorkspace:
		return len(b.workspaces.pending)
	default:
		return 0
	}
}

// GroupLockChanges runs fn inside one level of grouping for all three types
// and closes that level afterwards, even if fn fails or panics. Held events
// are emitted once no other group of the type is still open, so overlapping
// calls each see at most one event per id.
func (b *Bundler) GroupLockChanges(fn func() error) error {
	b.mu.Lock()
	b.windows.start()
	b.containers.start()
	b.workspaces.start()
	b.mu.Unlock()

	defer func() {
		b.EndWorkspaceLockConfigurationChangedGrouping()
		b.EndContainerLockConfigurationChangedGrouping()
		b.EndWindowLockConfigurationChangedGrouping()
	}()
	return fn()
}

// flush raises every buffered event in id order. Failures are logged and do
// not stop the remaining events.
func flush[E any](t Type, pending map[string]E, raise func(E) error) {
	if len(pending) == 0 {
		return
	}
	log.Debug(log.CatEvents, "flushing grouped lock changes", "type", t, "count", len(pending))
	for _, id := range slices.Sorted(maps.Keys(pending)) {
		if err := raiseSafely(raise, pending[id]); err != nil {
			log.ErrorErr(log.CatEvents, "grouped lock change not delivered", err, "type", t, "id", id)
		}
	}
}

func raiseSafely[E any](raise func(E) error, e E) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic raising event: %v", r)
		}
	}()
	return raise(e)
}
