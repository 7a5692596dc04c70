package tracing

import (
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span attribute keys.
const (
	AttrWorkspaceID = "workspace.id"
	AttrFrameID     = "frame.id"
	AttrItemID      = "item.id"
	AttrItemType    = "item.type"
	AttrLayoutName  = "layout.name"
	AttrLockCount   = "lock.commands"
	AttrNodeCount   = "layout.nodes"
)

// Span names.
const (
	SpanApplyLocks          = "lock.apply"
	SpanApplyContainerLocks = "lock.apply_container"
	SpanApplyWindowLocks    = "lock.apply_window"
	SpanCreateWorkspace     = "workspace.create"
	SpanRestoreWorkspace    = "workspace.restore"
	SpanUpdateLocks         = "workspace.update_locks"
	SpanAddContainer        = "workspace.add_container"
	SpanAddWindow           = "workspace.add_window"
)

// Span event names.
const (
	EventLockIssued         = "lock.issued"
	EventStructuralMismatch = "lock.structural_mismatch"
)

// EndSpan records err on span, if any, and ends it.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
