package workspaces

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/lraycheva/core-sub003/internal/events"
	"github.com/lraycheva/core-sub003/internal/layout"
	"github.com/lraycheva/core-sub003/internal/layoutstore"
	"github.com/lraycheva/core-sub003/internal/log"
	"github.com/lraycheva/core-sub003/internal/tracing"
)

// CreateWorkspace opens a workspace from definition in a frame, selects it
// and then applies the definition's lock configuration. The returned tree is
// the live snapshot after locking.
func (m *Manager) CreateWorkspace(ctx context.Context, frameID string, definition *layout.Node) (*layout.Node, error) {
	return m.createWorkspace(ctx, frameID, definition, "")
}

// RestoreWorkspace creates a workspace from a layout saved in the store.
func (m *Manager) RestoreWorkspace(ctx context.Context, frameID, layoutName string) (_ *layout.Node, err error) {
	ctx, span := m.tracer.Start(ctx, tracing.SpanRestoreWorkspace, trace.WithAttributes(
		attribute.String(tracing.AttrFrameID, frameID),
		attribute.String(tracing.AttrLayoutName, layoutName),
	))
	defer func() { tracing.EndSpan(span, err) }()

	if m.store == nil {
		return nil, ErrNoStore
	}
	saved, err := m.store.Get(ctx, layoutName)
	if err != nil {
		return nil, fmt.Errorf("restoring workspace: %w", err)
	}
	return m.createWorkspace(ctx, frameID, saved.Definition, layoutName)
}

// SaveWorkspace stores the live workspace as a named layout. Ids and
// transient window state are dropped; lock flags are kept.
func (m *Manager) SaveWorkspace(ctx context.Context, workspaceID, layoutName string) error {
	if m.store == nil {
		return ErrNoStore
	}
	m.mu.Lock()
	ws, ok := m.workspaces[workspaceID]
	if !ok {
		m.mu.Unlock()
		return workspaceNotFound(workspaceID)
	}
	def := toDefinition(ws.root)
	m.mu.Unlock()

	if err := m.store.Save(ctx, layoutstore.Layout{Name: layoutName, Definition: def}); err != nil {
		return fmt.Errorf("saving workspace %q: %w", workspaceID, err)
	}

	m.mu.Lock()
	if ws, ok := m.workspaces[workspaceID]; ok {
		ws.layoutName = layoutName
	}
	m.mu.Unlock()
	log.Info(log.CatManager, "workspace saved", "workspace", workspaceID, "layout", layoutName)
	return nil
}

func toDefinition(live *layout.Node) *layout.Node {
	def := live.Clone()
	layout.Walk(def, func(n *layout.Node) bool {
		n.ID = ""
		n.Config.WindowID = ""
		n.Config.PositionIndex = 0
		n.Config.IsFocused = false
		n.Config.IsMaximized = false
		n.Config.IsSelected = false
		return true
	})
	return def
}

func (m *Manager) createWorkspace(ctx context.Context, frameID string, definition *layout.Node, layoutName string) (_ *layout.Node, err error) {
	ctx, span := m.tracer.Start(ctx, tracing.SpanCreateWorkspace, trace.WithAttributes(
		attribute.String(tracing.AttrFrameID, frameID),
	))
	defer func() { tracing.EndSpan(span, err) }()

	if definition == nil || definition.Type != layout.TypeWorkspace {
		return nil, fmt.Errorf("%w: expected a workspace root", ErrInvalidDefinition)
	}
	if err := definition.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}

	m.mu.Lock()
	f, ok := m.frames[frameID]
	if !ok {
		m.mu.Unlock()
		return nil, frameNotFound(frameID)
	}
	root := m.instantiate(definition)
	ws := &workspace{root: root, frameID: frameID, layoutName: layoutName}
	m.workspaces[root.ID] = ws
	f.workspaces = append(f.workspaces, root.ID)
	root.Config.PositionIndex = len(f.workspaces) - 1

	var o outbox
	o.workspace(events.ActionOpened, m.workspaceSummary(ws), root.Clone())
	announceSubtree(&o, ws, root, nil, 0)
	m.selectLocked(&o, ws)
	snapshot := root.Clone()
	m.mu.Unlock()

	span.SetAttributes(
		attribute.String(tracing.AttrWorkspaceID, root.ID),
		attribute.Int(tracing.AttrNodeCount, countNodes(root)),
	)
	log.Info(log.CatManager, "workspace created", "workspace", root.ID, "frame", frameID, "nodes", countNodes(root))

	deliverErr := o.deliver(m.bundler)
	lockErr := m.bundler.GroupLockChanges(func() error {
		return m.locker.ApplyLockConfiguration(ctx, definition, snapshot)
	})
	if err := errors.Join(deliverErr, lockErr); err != nil {
		return nil, fmt.Errorf("creating workspace %q: %w", root.ID, err)
	}
	return m.Snapshot(root.ID)
}

// UpdateLocks applies definition's lock configuration to a live workspace.
// The definition must mirror the workspace's shape. Lock change events are
// grouped for the duration, so each changed item is reported once.
func (m *Manager) UpdateLocks(ctx context.Context, workspaceID string, definition *layout.Node) (err error) {
	ctx, span := m.tracer.Start(ctx, tracing.SpanUpdateLocks, trace.WithAttributes(
		attribute.String(tracing.AttrWorkspaceID, workspaceID),
	))
	defer func() { tracing.EndSpan(span, err) }()

	if definition == nil || definition.Type != layout.TypeWorkspace {
		return fmt.Errorf("%w: expected a workspace root", ErrInvalidDefinition)
	}
	if err := definition.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	snapshot, err := m.Snapshot(workspaceID)
	if err != nil {
		return err
	}
	return m.bundler.GroupLockChanges(func() error {
		return m.locker.ApplyLockConfiguration(ctx, definition, snapshot)
	})
}

// AddContainer appends a row, column or group subtree under parentID and
// applies the subtree's lock configuration.
func (m *Manager) AddContainer(ctx context.Context, workspaceID, parentID string, definition *layout.Node) (_ *layout.Node, err error) {
	ctx, span := m.tracer.Start(ctx, tracing.SpanAddContainer, trace.WithAttributes(
		attribute.String(tracing.AttrWorkspaceID, workspaceID),
		attribute.String(tracing.AttrItemID, parentID),
	))
	defer func() { tracing.EndSpan(span, err) }()

	if definition == nil || !definition.Type.IsContainer() || definition.Type == layout.TypeWorkspace {
		return nil, fmt.Errorf("%w: expected a row, column or group", ErrInvalidDefinition)
	}
	if err := definition.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}

	live, wsSnapshot, err := m.attach(workspaceID, parentID, definition)
	if err != nil {
		return nil, err
	}

	lockErr := m.bundler.GroupLockChanges(func() error {
		return m.locker.ApplyContainerLockConfiguration(ctx, definition, wsSnapshot, live.ID)
	})
	if lockErr != nil {
		return nil, fmt.Errorf("adding container %q: %w", live.ID, lockErr)
	}
	return m.item(live.ID)
}

// AddWindow appends a window under parentID and applies its lock
// configuration.
func (m *Manager) AddWindow(ctx context.Context, workspaceID, parentID string, definition *layout.Node) (_ *layout.Node, err error) {
	ctx, span := m.tracer.Start(ctx, tracing.SpanAddWindow, trace.WithAttributes(
		attribute.String(tracing.AttrWorkspaceID, workspaceID),
		attribute.String(tracing.AttrItemID, parentID),
	))
	defer func() { tracing.EndSpan(span, err) }()

	if definition == nil || definition.Type != layout.TypeWindow || len(definition.Children) > 0 {
		return nil, fmt.Errorf("%w: expected a window", ErrInvalidDefinition)
	}

	live, _, err := m.attach(workspaceID, parentID, definition)
	if err != nil {
		return nil, err
	}

	// The live id with the definition's flags.
	window := &layout.Node{ID: live.ID, Type: layout.TypeWindow, Config: definition.Config}
	if err := m.locker.ApplyWindowLockConfiguration(ctx, window); err != nil {
		return nil, fmt.Errorf("adding window %q: %w", live.ID, err)
	}
	return m.item(live.ID)
}

// attach instantiates definition under parentID, raises the added events
// and returns the new live subtree with a snapshot of the whole workspace.
func (m *Manager) attach(workspaceID, parentID string, definition *layout.Node) (*layout.Node, *layout.Node, error) {
	m.mu.Lock()
	ws, ok := m.workspaces[workspaceID]
	if !ok {
		m.mu.Unlock()
		return nil, nil, workspaceNotFound(workspaceID)
	}
	parent := layout.FindNodeByID(ws.root, parentID)
	if parent == nil {
		m.mu.Unlock()
		return nil, nil, itemNotFound(parentID)
	}
	if !parent.IsContainer() {
		m.mu.Unlock()
		return nil, nil, fmt.Errorf("%w: %q is a %s", ErrInvalidParent, parentID, parent.Type)
	}

	live := m.instantiate(definition)
	idx := len(parent.Children)
	live.Config.PositionIndex = idx
	parent.Children = append(parent.Children, live)

	var o outbox
	announceSubtree(&o, ws, live, parent, idx)
	m.childrenUpdatedLocked(&o, ws, parent)
	wsSnapshot := ws.root.Clone()
	m.mu.Unlock()

	log.Debug(log.CatManager, "item attached", "workspace", workspaceID, "parent", parentID, "item", live.ID, "type", live.Type)
	if err := o.deliver(m.bundler); err != nil {
		return nil, nil, err
	}
	return live, wsSnapshot, nil
}

// childrenUpdatedLocked queues childrenUpdate for a container. The workspace
// root has no container events.
func (m *Manager) childrenUpdatedLocked(o *outbox, ws *workspace, parent *layout.Node) {
	if parent.Type == layout.TypeWorkspace {
		return
	}
	grandparent, idx := layout.FindParent(ws.root, parent.ID)
	o.container(events.ActionChildrenUpdate, containerSummary(ws, parent, grandparent, idx))
}

// item returns a copy of a live subtree.
func (m *Manager) item(itemID string) (*layout.Node, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	loc, ok := m.locate(itemID)
	if !ok {
		return nil, itemNotFound(itemID)
	}
	return loc.node.Clone(), nil
}

// SelectWorkspace makes a workspace the selected tab of its frame.
func (m *Manager) SelectWorkspace(ctx context.Context, workspaceID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	ws, ok := m.workspaces[workspaceID]
	if !ok {
		m.mu.Unlock()
		return workspaceNotFound(workspaceID)
	}
	var o outbox
	m.selectLocked(&o, ws)
	m.mu.Unlock()
	return o.deliver(m.bundler)
}

func (m *Manager) selectLocked(o *outbox, ws *workspace) {
	if ws.root.Config.IsSelected {
		return
	}
	if f, ok := m.frames[ws.frameID]; ok {
		for _, id := range f.workspaces {
			m.workspaces[id].root.Config.IsSelected = false
		}
	}
	ws.root.Config.IsSelected = true
	o.workspace(events.ActionSelected, m.workspaceSummary(ws), ws.root.Clone())
}

// CloseWorkspace closes a workspace. When it was selected, the last
// remaining workspace of the frame becomes selected.
func (m *Manager) CloseWorkspace(ctx context.Context, workspaceID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	ws, ok := m.workspaces[workspaceID]
	if !ok {
		m.mu.Unlock()
		return workspaceNotFound(workspaceID)
	}
	var o outbox
	m.closeWorkspaceLocked(&o, ws, true)
	m.mu.Unlock()

	log.Info(log.CatManager, "workspace closed", "workspace", workspaceID)
	return o.deliver(m.bundler)
}

func (m *Manager) closeWorkspaceLocked(o *outbox, ws *workspace, reselect bool) {
	o.workspace(events.ActionClosing, m.workspaceSummary(ws), nil)
	summary := m.workspaceSummary(ws)
	wasSelected := ws.root.Config.IsSelected

	delete(m.workspaces, ws.root.ID)
	f, ok := m.frames[ws.frameID]
	if ok {
		f.workspaces = slices.DeleteFunc(f.workspaces, func(id string) bool { return id == ws.root.ID })
		for i, id := range f.workspaces {
			m.workspaces[id].root.Config.PositionIndex = i
		}
	}
	o.workspace(events.ActionClosed, summary, nil)

	if reselect && wasSelected && ok && len(f.workspaces) > 0 {
		m.selectLocked(o, m.workspaces[f.workspaces[len(f.workspaces)-1]])
	}
}

// FocusWindow gives a window the focus. Any other focused window loses it.
func (m *Manager) FocusWindow(ctx context.Context, windowID string) error {
	return m.mutateWindow(ctx, windowID, func(o *outbox, loc location) {
		if loc.node.Config.IsFocused {
			return
		}
		for _, ws := range m.workspaces {
			for _, w := range layout.Windows(ws.root) {
				w.Config.IsFocused = false
			}
		}
		loc.node.Config.IsFocused = true
		o.window(events.ActionFocus, windowSummary(loc.ws, loc.node, loc.parent, loc.index))
	})
}

// MaximizeWindow maximizes a window, restoring any other maximized window of
// the same workspace first.
func (m *Manager) MaximizeWindow(ctx context.Context, windowID string) error {
	return m.mutateWindow(ctx, windowID, func(o *outbox, loc location) {
		if loc.node.Config.IsMaximized {
			return
		}
		for _, w := range layout.Windows(loc.ws.root) {
			if w.Config.IsMaximized {
				w.Config.IsMaximized = false
				parent, idx := layout.FindParent(loc.ws.root, w.ID)
				o.window(events.ActionRestored, windowSummary(loc.ws, w, parent, idx))
			}
		}
		loc.node.Config.IsMaximized = true
		o.window(events.ActionMaximized, windowSummary(loc.ws, loc.node, loc.parent, loc.index))
	})
}

// RestoreWindow undoes MaximizeWindow.
func (m *Manager) RestoreWindow(ctx context.Context, windowID string) error {
	return m.mutateWindow(ctx, windowID, func(o *outbox, loc location) {
		if !loc.node.Config.IsMaximized {
			return
		}
		loc.node.Config.IsMaximized = false
		o.window(events.ActionRestored, windowSummary(loc.ws, loc.node, loc.parent, loc.index))
	})
}

// RemoveWindow takes a window out of its container.
func (m *Manager) RemoveWindow(ctx context.Context, windowID string) error {
	return m.mutateWindow(ctx, windowID, func(o *outbox, loc location) {
		o.window(events.ActionRemoved, windowSummary(loc.ws, loc.node, loc.parent, loc.index))
		loc.parent.Children = slices.Delete(loc.parent.Children, loc.index, loc.index+1)
		reindex(loc.parent)
		m.childrenUpdatedLocked(o, loc.ws, loc.parent)
	})
}

func (m *Manager) mutateWindow(ctx context.Context, windowID string, fn func(o *outbox, loc location)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	loc, ok := m.locate(windowID)
	if !ok {
		m.mu.Unlock()
		return itemNotFound(windowID)
	}
	if loc.node.Type != layout.TypeWindow {
		m.mu.Unlock()
		return wrongType(windowID, loc.node.Type, layout.TypeWindow)
	}
	var o outbox
	fn(&o, loc)
	m.mu.Unlock()
	return o.deliver(m.bundler)
}
