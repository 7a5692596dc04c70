// Package locker pushes lock configuration from a layout definition onto the
// live workspace tree. It walks the definition and the snapshot side by side,
// pairing nodes by position, and asks the Manager to lock every node whose
// definition sets at least one lock property. The Locker keeps no lock state
// of its own.
package locker

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/lraycheva/core-sub003/internal/layout"
	"github.com/lraycheva/core-sub003/internal/log"
	"github.com/lraycheva/core-sub003/internal/tracing"
)

// WindowLockArgs locks a single window placement.
type WindowLockArgs struct {
	WindowPlacementID string
	Config            layout.WindowLocks
}

// ContainerLockArgs locks a row, column or group.
type ContainerLockArgs struct {
	ItemID string
	Type   layout.Type
	Config layout.ContainerLocks
}

// WorkspaceLockArgs locks a workspace root.
type WorkspaceLockArgs struct {
	WorkspaceID string
	Config      layout.WorkspaceLocks
}

// Manager owns the applied lock state. Implementations must be safe for
// concurrent use and idempotent under repeated identical calls.
type Manager interface {
	LockWindow(ctx context.Context, args WindowLockArgs) error
	LockContainer(ctx context.Context, args ContainerLockArgs) error
	LockWorkspace(ctx context.Context, args WorkspaceLockArgs) error
}

// Locker propagates lock configuration to a Manager.
type Locker struct {
	manager Manager
	tracer  trace.Tracer
}

// Option configures a Locker.
type Option func(*Locker)

// WithTracer records a span per entry point call.
func WithTracer(t trace.Tracer) Option {
	return func(l *Locker) {
		l.tracer = t
	}
}

// New creates a Locker issuing commands to manager.
func New(manager Manager, opts ...Option) *Locker {
	l := &Locker{manager: manager}
	for _, opt := range opts {
		opt(l)
	}
	l.tracer = tracing.OrNoop(l.tracer)
	return l
}

// ApplyLockConfiguration walks definition and snapshot in lock-step and
// issues a lock command for every node whose definition sets a lock property
// of its type. A parent's command is issued before its children are visited;
// sibling subtrees are visited concurrently. A shape mismatch aborts the
// affected branch with a *StructuralMismatchError. Commands already issued
// stay applied.
func (l *Locker) ApplyLockConfiguration(ctx context.Context, definition, snapshot *layout.Node) (err error) {
	ctx, span := l.tracer.Start(ctx, tracing.SpanApplyLocks)
	w := &walk{locker: l, span: span}
	defer func() {
		span.SetAttributes(attribute.Int64(tracing.AttrLockCount, w.issued.Load()))
		tracing.EndSpan(span, err)
	}()
	if snapshot != nil {
		span.SetAttributes(attribute.String(tracing.AttrWorkspaceID, snapshot.ID))
	}

	if definition == nil {
		return nil
	}
	if err := w.concurrent(ctx, definition, snapshot, nil); err != nil {
		log.ErrorErr(log.CatLock, "lock configuration aborted", err, "issued", w.issued.Load())
		return err
	}
	log.Debug(log.CatLock, "lock configuration applied", "root", snapshot.ID, "issued", w.issued.Load())
	return nil
}

// ApplyWindowLockConfiguration locks a single window from its own config,
// without any tree walk. Nothing is issued when no window property is set.
func (l *Locker) ApplyWindowLockConfiguration(ctx context.Context, window *layout.Node) (err error) {
	ctx, span := l.tracer.Start(ctx, tracing.SpanApplyWindowLocks)
	defer func() { tracing.EndSpan(span, err) }()

	if window == nil {
		return fmt.Errorf("lock window: nil window")
	}
	if window.Type != layout.TypeWindow {
		return fmt.Errorf("lock window: item %q is a %s", window.ID, window.Type)
	}
	span.SetAttributes(attribute.String(tracing.AttrItemID, window.ID))

	w := &walk{locker: l, span: span}
	return w.lock(ctx, window, window)
}

// ApplyContainerLockConfiguration finds rootItemID in workspace and applies
// definition to the subtree rooted there. Unlike ApplyLockConfiguration the
// walk is sequential, so every command has been issued when it returns.
// rootItemID must exist in workspace; a miss is returned as a plain error.
func (l *Locker) ApplyContainerLockConfiguration(ctx context.Context, definition, workspace *layout.Node, rootItemID string) (err error) {
	ctx, span := l.tracer.Start(ctx, tracing.SpanApplyContainerLocks)
	w := &walk{locker: l, span: span}
	defer func() {
		span.SetAttributes(attribute.Int64(tracing.AttrLockCount, w.issued.Load()))
		tracing.EndSpan(span, err)
	}()
	span.SetAttributes(attribute.String(tracing.AttrItemID, rootItemID))

	root := layout.FindNodeByID(workspace, rootItemID)
	if root == nil {
		return fmt.Errorf("lock container: item %q not found in workspace snapshot", rootItemID)
	}
	if definition == nil {
		return nil
	}
	if err := w.sequential(ctx, definition, root, nil); err != nil {
		log.ErrorErr(log.CatLock, "container lock configuration aborted", err, "root", rootItemID, "issued", w.issued.Load())
		return err
	}
	return nil
}

// walk is the state of a single traversal.
type walk struct {
	locker *Locker
	span   trace.Span
	issued atomic.Int64
}

func (w *walk) concurrent(ctx context.Context, def, snap *layout.Node, path []int) error {
	if err := w.visit(ctx, def, snap, path); err != nil {
		return err
	}
	if len(def.Children) == 0 {
		return nil
	}

	errs := make([]error, len(def.Children))
	var wg sync.WaitGroup
	for i := range def.Children {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = w.concurrent(ctx, def.Children[i], snap.Children[i], childPath(path, i))
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func (w *walk) sequential(ctx context.Context, def, snap *layout.Node, path []int) error {
	if err := w.visit(ctx, def, snap, path); err != nil {
		return err
	}
	for i := range def.Children {
		if err := w.sequential(ctx, def.Children[i], snap.Children[i], childPath(path, i)); err != nil {
			return err
		}
	}
	return nil
}

// visit checks the pair's shape and locks the snapshot node if needed.
func (w *walk) visit(ctx context.Context, def, snap *layout.Node, path []int) error {
	if err := checkShape(def, snap, path); err != nil {
		w.span.AddEvent(tracing.EventStructuralMismatch, trace.WithAttributes(
			attribute.String("path", FormatPath(path)),
		))
		log.Warn(log.CatLock, "structural mismatch", "path", FormatPath(path), "error", err)
		return err
	}
	return w.lock(ctx, def, snap)
}

// lock issues the command matching snap's type when def sets any of that
// type's lock properties.
func (w *walk) lock(ctx context.Context, def, snap *layout.Node) error {
	m := w.locker.manager
	var err error

	switch {
	case snap.Type == layout.TypeWindow:
		cfg := def.Config.Window()
		if !cfg.AnySet() {
			return nil
		}
		err = m.LockWindow(ctx, WindowLockArgs{WindowPlacementID: snap.ID, Config: cfg})
	case snap.Type == layout.TypeWorkspace:
		cfg := def.Config.Workspace()
		if !cfg.AnySet() {
			return nil
		}
		err = m.LockWorkspace(ctx, WorkspaceLockArgs{WorkspaceID: snap.ID, Config: cfg})
	case snap.Type.IsContainer():
		cfg := def.Config.Container()
		if !cfg.AnySet() {
			return nil
		}
		err = m.LockContainer(ctx, ContainerLockArgs{ItemID: snap.ID, Type: snap.Type, Config: cfg})
	default:
		return fmt.Errorf("lock: item %q has unknown type %q", snap.ID, snap.Type)
	}
	if err != nil {
		return fmt.Errorf("lock %s %q: %w", snap.Type, snap.ID, err)
	}

	w.issued.Add(1)
	w.span.AddEvent(tracing.EventLockIssued, trace.WithAttributes(
		attribute.String(tracing.AttrItemID, snap.ID),
		attribute.String(tracing.AttrItemType, string(snap.Type)),
	))
	log.Debug(log.CatLock, "lock issued", "item", snap.ID, "type", snap.Type,
		"properties", layout.SetLockProperties(snap.Type, def.Config.LockFlags))
	return nil
}

func childPath(path []int, i int) []int {
	return append(slices.Clip(path), i)
}
