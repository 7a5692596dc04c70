// Package layout defines the workspace layout tree shared by definitions and
// live snapshots, plus the lock properties each node type recognizes.
package layout

import (
	"fmt"
	"maps"
)

// Type identifies the shape of a layout node.
type Type string

const (
	TypeWorkspace Type = "workspace"
	TypeRow       Type = "row"
	TypeColumn    Type = "column"
	TypeGroup     Type = "group"
	TypeWindow    Type = "window"
)

// Valid reports whether t is one of the known node types.
func (t Type) Valid() bool {
	switch t {
	case TypeWorkspace, TypeRow, TypeColumn, TypeGroup, TypeWindow:
		return true
	default:
		return false
	}
}

// IsContainer reports whether nodes of this type hold children.
// The workspace root is a container too.
func (t Type) IsContainer() bool {
	return t == TypeWorkspace || t == TypeRow || t == TypeColumn || t == TypeGroup
}

// UnmarshalText rejects unknown node types at decode time.
func (t *Type) UnmarshalText(text []byte) error {
	v := Type(text)
	if !v.Valid() {
		return fmt.Errorf("unknown node type %q", string(text))
	}
	*t = v
	return nil
}

// Config is the per-node configuration. Descriptive fields are only
// meaningful for some node types; lock flags are inlined.
type Config struct {
	Title         string         `json:"title,omitempty" yaml:"title,omitempty"`
	AppName       string         `json:"appName,omitempty" yaml:"appName,omitempty"`
	WindowID      string         `json:"windowId,omitempty" yaml:"windowId,omitempty"`
	URL           string         `json:"url,omitempty" yaml:"url,omitempty"`
	Context       map[string]any `json:"context,omitempty" yaml:"context,omitempty"`
	PositionIndex int            `json:"positionIndex,omitempty" yaml:"positionIndex,omitempty"`
	IsMaximized   bool           `json:"isMaximized,omitempty" yaml:"isMaximized,omitempty"`
	IsFocused     bool           `json:"isFocused,omitempty" yaml:"isFocused,omitempty"`
	IsSelected    bool           `json:"isSelected,omitempty" yaml:"isSelected,omitempty"`

	LockFlags `yaml:",inline"`
}

// Node is a single item of a layout tree. Definition trees may leave ID
// empty; snapshot trees always carry one.
type Node struct {
	ID       string  `json:"id,omitempty" yaml:"id,omitempty"`
	Type     Type    `json:"type" yaml:"type"`
	Config   Config  `json:"config,omitzero" yaml:"config,omitempty"`
	Children []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// IsContainer reports whether the node may hold children.
func (n *Node) IsContainer() bool {
	return n.Type.IsContainer()
}

// Clone returns a deep copy of the subtree rooted at n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{
		ID:     n.ID,
		Type:   n.Type,
		Config: n.Config,
	}
	if n.Config.Context != nil {
		out.Config.Context = maps.Clone(n.Config.Context)
	}
	if len(n.Children) > 0 {
		out.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			out.Children[i] = child.Clone()
		}
	}
	return out
}

// Validate checks that the tree is well formed: known types, windows without
// children, a workspace only at the root.
func (n *Node) Validate() error {
	return n.validate(true)
}

func (n *Node) validate(root bool) error {
	if n == nil {
		return fmt.Errorf("nil node")
	}
	if !n.Type.Valid() {
		return fmt.Errorf("node %q: unknown type %q", n.ID, n.Type)
	}
	if n.Type == TypeWorkspace && !root {
		return fmt.Errorf("node %q: workspace can only be the root", n.ID)
	}
	if n.Type == TypeWindow && len(n.Children) > 0 {
		return fmt.Errorf("node %q: window cannot have children", n.ID)
	}
	for i, child := range n.Children {
		if err := child.validate(false); err != nil {
			return fmt.Errorf("child %d: %w", i, err)
		}
	}
	return nil
}
