package events

import "github.com/lraycheva/core-sub003/internal/layout"

// Payloads are full snapshots of the entity at the time the event is
// raised, never deltas.

// WindowSummary describes a window placement.
type WindowSummary struct {
	ItemID        string        `json:"itemId"`
	WindowID      string        `json:"windowId,omitempty"`
	FrameID       string        `json:"frameId"`
	WorkspaceID   string        `json:"workspaceId"`
	ParentID      string        `json:"parentId"`
	PositionIndex int           `json:"positionIndex"`
	AppName       string        `json:"appName,omitempty"`
	Title         string        `json:"title,omitempty"`
	URL           string        `json:"url,omitempty"`
	Focused       bool          `json:"focused"`
	Maximized     bool          `json:"maximized"`
	Config        layout.Config `json:"config"`
}

// ContainerSummary describes a row, column or group.
type ContainerSummary struct {
	ItemID        string        `json:"itemId"`
	Type          layout.Type   `json:"type"`
	FrameID       string        `json:"frameId"`
	WorkspaceID   string        `json:"workspaceId"`
	ParentID      string        `json:"parentId"`
	PositionIndex int           `json:"positionIndex"`
	Config        layout.Config `json:"config"`
}

// WorkspaceSummary describes a workspace root.
type WorkspaceSummary struct {
	ID            string        `json:"id"`
	FrameID       string        `json:"frameId"`
	Title         string        `json:"title,omitempty"`
	LayoutName    string        `json:"layoutName,omitempty"`
	PositionIndex int           `json:"positionIndex"`
	Selected      bool          `json:"selected"`
	Config        layout.Config `json:"config"`
}

// FrameSummary describes a host frame.
type FrameSummary struct {
	ID         string `json:"id"`
	Focused    bool   `json:"focused"`
	Workspaces int    `json:"workspaces"`
}

// FrameBounds is a frame's position and size in screen pixels.
type FrameBounds struct {
	Top    int `json:"top"`
	Left   int `json:"left"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

type WindowPayload struct {
	WindowSummary WindowSummary `json:"windowSummary"`
}

type ContainerPayload struct {
	ContainerSummary ContainerSummary `json:"containerSummary"`
}

type WorkspacePayload struct {
	WorkspaceSummary  WorkspaceSummary `json:"workspaceSummary"`
	WorkspaceSnapshot *layout.Node     `json:"workspaceSnapshot,omitempty"`
}

type FramePayload struct {
	FrameSummary FrameSummary `json:"frameSummary"`
	FrameBounds  FrameBounds  `json:"frameBounds"`
}

type WindowEvent struct {
	Action  Action
	Payload WindowPayload
}

// EntityID returns the window placement id.
func (e WindowEvent) EntityID() string { return e.Payload.WindowSummary.ItemID }

type ContainerEvent struct {
	Action  Action
	Payload ContainerPayload
}

// EntityID returns the container item id.
func (e ContainerEvent) EntityID() string { return e.Payload.ContainerSummary.ItemID }

type WorkspaceEvent struct {
	Action  Action
	Payload WorkspacePayload
}

// EntityID returns the workspace id.
func (e WorkspaceEvent) EntityID() string { return e.Payload.WorkspaceSummary.ID }

type FrameEvent struct {
	Action  Action
	Payload FramePayload
}

// EntityID returns the frame id.
func (e FrameEvent) EntityID() string { return e.Payload.FrameSummary.ID }

// Event is the type-erased form delivered to subscribers. Payload holds one
// of WindowPayload, ContainerPayload, WorkspacePayload or FramePayload.
type Event struct {
	Type     Type   `json:"type"`
	Action   Action `json:"action"`
	EntityID string `json:"entityId"`
	Payload  any    `json:"payload"`
}
