package workspaces

import (
	"context"

	"github.com/lraycheva/core-sub003/internal/events"
	"github.com/lraycheva/core-sub003/internal/layout"
	"github.com/lraycheva/core-sub003/internal/locker"
	"github.com/lraycheva/core-sub003/internal/log"
)

// LockWindow merges the set window flags into the live window.
func (m *Manager) LockWindow(ctx context.Context, args locker.WindowLockArgs) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	loc, ok := m.locate(args.WindowPlacementID)
	if !ok {
		m.mu.Unlock()
		return itemNotFound(args.WindowPlacementID)
	}
	if loc.node.Type != layout.TypeWindow {
		m.mu.Unlock()
		return wrongType(args.WindowPlacementID, loc.node.Type, layout.TypeWindow)
	}

	var o outbox
	before := loc.node.Config.LockFlags
	args.Config.Merge(&loc.node.Config.LockFlags)
	if loc.node.Config.LockFlags != before {
		o.window(events.ActionLockConfigurationChanged, windowSummary(loc.ws, loc.node, loc.parent, loc.index))
	}
	m.mu.Unlock()

	return o.deliver(m.bundler)
}

// LockContainer merges the set container flags into the live container.
func (m *Manager) LockContainer(ctx context.Context, args locker.ContainerLockArgs) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	loc, ok := m.locate(args.ItemID)
	if !ok {
		m.mu.Unlock()
		return itemNotFound(args.ItemID)
	}
	if loc.node.Type != args.Type || !loc.node.IsContainer() || loc.node.Type == layout.TypeWorkspace {
		m.mu.Unlock()
		return wrongType(args.ItemID, loc.node.Type, args.Type)
	}

	var o outbox
	before := loc.node.Config.LockFlags
	args.Config.Merge(&loc.node.Config.LockFlags)
	if loc.node.Config.LockFlags != before {
		o.container(events.ActionLockConfigurationChanged, containerSummary(loc.ws, loc.node, loc.parent, loc.index))
	}
	m.mu.Unlock()

	return o.deliver(m.bundler)
}

// cascade pushes a workspace-wide switch down to every item of one type.
type cascade struct {
	source func(layout.WorkspaceLocks) layout.Flag
	target layout.Type
	flag   func(*layout.LockFlags) *layout.Flag
}

var workspaceCascades = []cascade{
	{
		source: func(w layout.WorkspaceLocks) layout.Flag { return w.ShowWindowCloseButtons },
		target: layout.TypeWindow,
		flag:   func(l *layout.LockFlags) *layout.Flag { return &l.ShowCloseButton },
	},
	{
		source: func(w layout.WorkspaceLocks) layout.Flag { return w.AllowWindowReorder },
		target: layout.TypeWindow,
		flag:   func(l *layout.LockFlags) *layout.Flag { return &l.AllowReorder },
	},
	{
		source: func(w layout.WorkspaceLocks) layout.Flag { return w.ShowEjectButtons },
		target: layout.TypeGroup,
		flag:   func(l *layout.LockFlags) *layout.Flag { return &l.ShowExtractButton },
	},
	{
		source: func(w layout.WorkspaceLocks) layout.Flag { return w.ShowAddWindowButtons },
		target: layout.TypeGroup,
		flag:   func(l *layout.LockFlags) *layout.Flag { return &l.ShowAddWindowButton },
	},
}

// LockWorkspace merges the set workspace flags into the live workspace root.
// Workspace-wide window and group switches are pushed down to every window
// or group, each of which reports its own lock change.
func (m *Manager) LockWorkspace(ctx context.Context, args locker.WorkspaceLockArgs) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	ws, ok := m.workspaces[args.WorkspaceID]
	if !ok {
		m.mu.Unlock()
		return workspaceNotFound(args.WorkspaceID)
	}

	root := ws.root
	before := root.Config.LockFlags
	args.Config.Merge(&root.Config.LockFlags)
	rootChanged := root.Config.LockFlags != before

	var descendants outbox
	changed := 0
	walkWithParent(root, nil, 0, func(n, parent *layout.Node, idx int) {
		if n == root {
			return
		}
		prev := n.Config.LockFlags
		for _, c := range workspaceCascades {
			if v := c.source(args.Config); v.IsSet() && n.Type == c.target {
				*c.flag(&n.Config.LockFlags) = v
			}
		}
		if n.Config.LockFlags == prev {
			return
		}
		changed++
		if n.Type == layout.TypeWindow {
			descendants.window(events.ActionLockConfigurationChanged, windowSummary(ws, n, parent, idx))
		} else {
			descendants.container(events.ActionLockConfigurationChanged, containerSummary(ws, n, parent, idx))
		}
	})

	var o outbox
	if rootChanged {
		o.workspace(events.ActionLockConfigurationChanged, m.workspaceSummary(ws), root.Clone())
	}
	o.raises = append(o.raises, descendants.raises...)
	m.mu.Unlock()

	if changed > 0 {
		log.Debug(log.CatManager, "workspace locks cascaded", "workspace", args.WorkspaceID, "items", changed)
	}
	return o.deliver(m.bundler)
}

func walkWithParent(n, parent *layout.Node, idx int, fn func(n, parent *layout.Node, idx int)) {
	fn(n, parent, idx)
	for i, child := range n.Children {
		walkWithParent(child, n, i, fn)
	}
}
