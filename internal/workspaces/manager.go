// Package workspaces is an in-memory owner of frames and workspaces. It keeps
// the live layout trees, applies lock commands issued by the locker and
// raises lifecycle events through an events.Bundler.
package workspaces

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/lraycheva/core-sub003/internal/events"
	"github.com/lraycheva/core-sub003/internal/layout"
	"github.com/lraycheva/core-sub003/internal/layoutstore"
	"github.com/lraycheva/core-sub003/internal/locker"
	"github.com/lraycheva/core-sub003/internal/timedcache"
	"github.com/lraycheva/core-sub003/internal/tracing"
)

type frame struct {
	id         string
	bounds     events.FrameBounds
	focused    bool
	workspaces []string
}

type workspace struct {
	root       *layout.Node
	frameID    string
	layoutName string
}

// Manager owns the live state. It is safe for concurrent use.
type Manager struct {
	mu         sync.Mutex
	frames     map[string]*frame
	workspaces map[string]*workspace
	waiters    map[string][]chan FrameHello

	bundler *events.Bundler
	locker  *locker.Locker
	store   layoutstore.Store
	hellos  *timedcache.Cache[FrameHello]
	tracer  trace.Tracer
	newID   func() string

	helloTTL time.Duration
}

var _ locker.Manager = (*Manager)(nil)

// Option configures a Manager.
type Option func(*Manager)

// WithStore enables RestoreWorkspace and SaveWorkspace.
func WithStore(store layoutstore.Store) Option {
	return func(m *Manager) { m.store = store }
}

// WithTracer records spans for structural operations and lock application.
func WithTracer(t trace.Tracer) Option {
	return func(m *Manager) { m.tracer = t }
}

// WithHelloTTL sets how long an unclaimed frame hello is kept.
func WithHelloTTL(ttl time.Duration) Option {
	return func(m *Manager) { m.helloTTL = ttl }
}

// WithIDGenerator replaces uuid generation for live node and frame ids.
func WithIDGenerator(fn func() string) Option {
	return func(m *Manager) { m.newID = fn }
}

// New creates a Manager raising events onto sink through a Bundler.
func New(sink events.Emitter, opts ...Option) *Manager {
	m := &Manager{
		frames:     make(map[string]*frame),
		workspaces: make(map[string]*workspace),
		waiters:    make(map[string][]chan FrameHello),
		bundler:    events.NewBundler(sink),
		newID:      uuid.NewString,
		helloTTL:   timedcache.DefaultElementTTL,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.tracer = tracing.OrNoop(m.tracer)
	m.hellos = timedcache.New[FrameHello](timedcache.WithTTL(m.helloTTL), timedcache.WithName("frame-hellos"))
	m.locker = locker.New(m, locker.WithTracer(m.tracer))
	return m
}

// Bundler returns the event bundler in front of the sink, for callers that
// group their own bulk changes.
func (m *Manager) Bundler() *events.Bundler {
	return m.bundler
}

// Snapshot returns a copy of the live tree of a workspace.
func (m *Manager) Snapshot(workspaceID string) (*layout.Node, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ws, ok := m.workspaces[workspaceID]
	if !ok {
		return nil, workspaceNotFound(workspaceID)
	}
	return ws.root.Clone(), nil
}

// Workspaces returns summaries of the workspaces in a frame, in tab order.
func (m *Manager) Workspaces(frameID string) ([]events.WorkspaceSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.frames[frameID]
	if !ok {
		return nil, frameNotFound(frameID)
	}
	out := make([]events.WorkspaceSummary, 0, len(f.workspaces))
	for _, id := range f.workspaces {
		out = append(out, m.workspaceSummary(m.workspaces[id]))
	}
	return out, nil
}

// location is where an item sits in the live state.
type location struct {
	ws     *workspace
	node   *layout.Node
	parent *layout.Node
	index  int
}

// locate finds an item by id in any workspace. Callers hold m.mu.
func (m *Manager) locate(itemID string) (location, bool) {
	for _, ws := range m.workspaces {
		node := layout.FindNodeByID(ws.root, itemID)
		if node == nil {
			continue
		}
		parent, idx := layout.FindParent(ws.root, itemID)
		return location{ws: ws, node: node, parent: parent, index: idx}, true
	}
	return location{}, false
}

func (m *Manager) frameSummary(f *frame) events.FrameSummary {
	return events.FrameSummary{ID: f.id, Focused: f.focused, Workspaces: len(f.workspaces)}
}

func (m *Manager) workspaceSummary(ws *workspace) events.WorkspaceSummary {
	idx := -1
	if f, ok := m.frames[ws.frameID]; ok {
		idx = slices.Index(f.workspaces, ws.root.ID)
	}
	return events.WorkspaceSummary{
		ID:            ws.root.ID,
		FrameID:       ws.frameID,
		Title:         ws.root.Config.Title,
		LayoutName:    ws.layoutName,
		PositionIndex: idx,
		Selected:      ws.root.Config.IsSelected,
		Config:        ws.root.Clone().Config,
	}
}

func windowSummary(ws *workspace, n, parent *layout.Node, idx int) events.WindowSummary {
	s := events.WindowSummary{
		ItemID:        n.ID,
		WindowID:      n.Config.WindowID,
		FrameID:       ws.frameID,
		WorkspaceID:   ws.root.ID,
		PositionIndex: idx,
		AppName:       n.Config.AppName,
		Title:         n.Config.Title,
		URL:           n.Config.URL,
		Focused:       n.Config.IsFocused,
		Maximized:     n.Config.IsMaximized,
		Config:        n.Clone().Config,
	}
	if parent != nil {
		s.ParentID = parent.ID
	}
	return s
}

func containerSummary(ws *workspace, n, parent *layout.Node, idx int) events.ContainerSummary {
	s := events.ContainerSummary{
		ItemID:        n.ID,
		Type:          n.Type,
		FrameID:       ws.frameID,
		WorkspaceID:   ws.root.ID,
		PositionIndex: idx,
		Config:        n.Clone().Config,
	}
	if parent != nil {
		s.ParentID = parent.ID
	}
	return s
}

// announceSubtree queues added events for every node of a new subtree, in
// pre-order.
func announceSubtree(o *outbox, ws *workspace, n, parent *layout.Node, idx int) {
	switch {
	case n.Type == layout.TypeWindow:
		o.window(events.ActionAdded, windowSummary(ws, n, parent, idx))
		return
	case n.Type != layout.TypeWorkspace:
		o.container(events.ActionAdded, containerSummary(ws, n, parent, idx))
	}
	for i, child := range n.Children {
		announceSubtree(o, ws, child, n, i)
	}
}

// instantiate turns a definition into a live subtree: fresh ids everywhere,
// position indexes set and lock flags cleared. Locks reach the live tree only
// through lock commands.
func (m *Manager) instantiate(def *layout.Node) *layout.Node {
	live := def.Clone()
	layout.Walk(live, func(n *layout.Node) bool {
		n.ID = m.newID()
		n.Config.LockFlags = layout.LockFlags{}
		if n.Type == layout.TypeWindow && n.Config.WindowID == "" {
			n.Config.WindowID = m.newID()
		}
		reindex(n)
		return true
	})
	return live
}

func reindex(n *layout.Node) {
	for i, child := range n.Children {
		child.Config.PositionIndex = i
	}
}

func countNodes(n *layout.Node) int {
	count := 0
	layout.Walk(n, func(*layout.Node) bool {
		count++
		return true
	})
	return count
}
