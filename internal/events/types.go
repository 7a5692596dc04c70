// Package events defines the workspace event taxonomy, the Emitter contract,
// a broker-backed Publisher and the Bundler that coalesces
// lock-configuration-changed events during bulk operations.
package events

import "slices"

// Type is the kind of entity an event describes.
type Type string

const (
	TypeWindow    Type = "window"
	TypeContainer Type = "container"
	TypeWorkspace Type = "workspace"
	TypeFrame     Type = "frame"
)

// Action is what happened to the entity. The set of valid actions depends on
// the event Type.
type Action string

const (
	ActionAdded                    Action = "added"
	ActionLoaded                   Action = "loaded"
	ActionRemoved                  Action = "removed"
	ActionFocus                    Action = "focus"
	ActionContainerChanged         Action = "containerChanged"
	ActionMaximized                Action = "maximized"
	ActionRestored                 Action = "restored"
	ActionChildrenUpdate           Action = "childrenUpdate"
	ActionOpened                   Action = "opened"
	ActionClosing                  Action = "closing"
	ActionClosed                   Action = "closed"
	ActionSelected                 Action = "selected"
	ActionLockConfigurationChanged Action = "lock-configuration-changed"
)

var actionsByType = map[Type][]Action{
	TypeWindow: {
		ActionAdded, ActionLoaded, ActionRemoved, ActionFocus, ActionContainerChanged,
		ActionMaximized, ActionRestored, ActionLockConfigurationChanged,
	},
	TypeContainer: {
		ActionAdded, ActionRemoved, ActionChildrenUpdate, ActionLockConfigurationChanged,
	},
	TypeWorkspace: {
		ActionOpened, ActionClosing, ActionClosed, ActionSelected, ActionLockConfigurationChanged,
	},
	TypeFrame: {
		ActionOpened, ActionClosing, ActionClosed, ActionFocus,
	},
}

// Actions returns the actions valid for t, or nil for an unknown type.
func Actions(t Type) []Action {
	return slices.Clone(actionsByType[t])
}

// Valid reports whether a is one of t's actions.
func (a Action) Valid(t Type) bool {
	return slices.Contains(actionsByType[t], a)
}

// Valid reports whether t is a known event type.
func (t Type) Valid() bool {
	_, ok := actionsByType[t]
	return ok
}
