package layout

// LockFlags is the union of every lock property any node type recognizes.
// Which of them matter for a node depends on its Type; see LockProperties.
type LockFlags struct {
	ShowCloseButton          Flag `json:"showCloseButton,omitzero" yaml:"showCloseButton,omitempty"`
	AllowExtract             Flag `json:"allowExtract,omitzero" yaml:"allowExtract,omitempty"`
	AllowReorder             Flag `json:"allowReorder,omitzero" yaml:"allowReorder,omitempty"`
	AllowDrop                Flag `json:"allowDrop,omitzero" yaml:"allowDrop,omitempty"`
	AllowDropLeft            Flag `json:"allowDropLeft,omitzero" yaml:"allowDropLeft,omitempty"`
	AllowDropTop             Flag `json:"allowDropTop,omitzero" yaml:"allowDropTop,omitempty"`
	AllowDropRight           Flag `json:"allowDropRight,omitzero" yaml:"allowDropRight,omitempty"`
	AllowDropBottom          Flag `json:"allowDropBottom,omitzero" yaml:"allowDropBottom,omitempty"`
	AllowDropHeader          Flag `json:"allowDropHeader,omitzero" yaml:"allowDropHeader,omitempty"`
	ShowExtractButton        Flag `json:"showExtractButton,omitzero" yaml:"showExtractButton,omitempty"`
	ShowMaximizeButton       Flag `json:"showMaximizeButton,omitzero" yaml:"showMaximizeButton,omitempty"`
	ShowAddWindowButton      Flag `json:"showAddWindowButton,omitzero" yaml:"showAddWindowButton,omitempty"`
	AllowSplitters           Flag `json:"allowSplitters,omitzero" yaml:"allowSplitters,omitempty"`
	ShowSaveButton           Flag `json:"showSaveButton,omitzero" yaml:"showSaveButton,omitempty"`
	AllowWorkspaceTabReorder Flag `json:"allowWorkspaceTabReorder,omitzero" yaml:"allowWorkspaceTabReorder,omitempty"`
	AllowWindowReorder       Flag `json:"allowWindowReorder,omitzero" yaml:"allowWindowReorder,omitempty"`
	ShowWindowCloseButtons   Flag `json:"showWindowCloseButtons,omitzero" yaml:"showWindowCloseButtons,omitempty"`
	ShowEjectButtons         Flag `json:"showEjectButtons,omitzero" yaml:"showEjectButtons,omitempty"`
	ShowAddWindowButtons     Flag `json:"showAddWindowButtons,omitzero" yaml:"showAddWindowButtons,omitempty"`
}

// WindowLocks are the lock properties of a window.
type WindowLocks struct {
	ShowCloseButton Flag `json:"showCloseButton,omitzero"`
	AllowExtract    Flag `json:"allowExtract,omitzero"`
	AllowReorder    Flag `json:"allowReorder,omitzero"`
}

// ContainerLocks are the lock properties of a row, column or group.
type ContainerLocks struct {
	AllowDrop           Flag `json:"allowDrop,omitzero"`
	AllowDropLeft       Flag `json:"allowDropLeft,omitzero"`
	AllowDropTop        Flag `json:"allowDropTop,omitzero"`
	AllowDropRight      Flag `json:"allowDropRight,omitzero"`
	AllowDropBottom     Flag `json:"allowDropBottom,omitzero"`
	AllowDropHeader     Flag `json:"allowDropHeader,omitzero"`
	AllowExtract        Flag `json:"allowExtract,omitzero"`
	AllowReorder        Flag `json:"allowReorder,omitzero"`
	ShowExtractButton   Flag `json:"showExtractButton,omitzero"`
	ShowMaximizeButton  Flag `json:"showMaximizeButton,omitzero"`
	ShowAddWindowButton Flag `json:"showAddWindowButton,omitzero"`
	AllowSplitters      Flag `json:"allowSplitters,omitzero"`
}

// WorkspaceLocks are the lock properties of a workspace root: every container
// property plus the workspace-wide switches.
type WorkspaceLocks struct {
	ContainerLocks

	ShowCloseButton          Flag `json:"showCloseButton,omitzero"`
	ShowSaveButton           Flag `json:"showSaveButton,omitzero"`
	AllowWorkspaceTabReorder Flag `json:"allowWorkspaceTabReorder,omitzero"`
	AllowWindowReorder       Flag `json:"allowWindowReorder,omitzero"`
	ShowWindowCloseButtons   Flag `json:"showWindowCloseButtons,omitzero"`
	ShowEjectButtons         Flag `json:"showEjectButtons,omitzero"`
	ShowAddWindowButtons     Flag `json:"showAddWindowButtons,omitzero"`
}

// Window projects the window lock properties.
func (l LockFlags) Window() WindowLocks {
	return WindowLocks{
		ShowCloseButton: l.ShowCloseButton,
		AllowExtract:    l.AllowExtract,
		AllowReorder:    l.AllowReorder,
	}
}

// Container projects the container lock properties.
func (l LockFlags) Container() ContainerLocks {
	return ContainerLocks{
		AllowDrop:           l.AllowDrop,
		AllowDropLeft:       l.AllowDropLeft,
		AllowDropTop:        l.AllowDropTop,
		AllowDropRight:      l.AllowDropRight,
		AllowDropBottom:     l.AllowDropBottom,
		AllowDropHeader:     l.AllowDropHeader,
		AllowExtract:        l.AllowExtract,
		AllowReorder:        l.AllowReorder,
		ShowExtractButton:   l.ShowExtractButton,
		ShowMaximizeButton:  l.ShowMaximizeButton,
		ShowAddWindowButton: l.ShowAddWindowButton,
		AllowSplitters:      l.AllowSplitters,
	}
}

// Workspace projects the workspace lock properties.
func (l LockFlags) Workspace() WorkspaceLocks {
	return WorkspaceLocks{
		ContainerLocks:           l.Container(),
		ShowCloseButton:          l.ShowCloseButton,
		ShowSaveButton:           l.ShowSaveButton,
		AllowWorkspaceTabReorder: l.AllowWorkspaceTabReorder,
		AllowWindowReorder:       l.AllowWindowReorder,
		ShowWindowCloseButtons:   l.ShowWindowCloseButtons,
		ShowEjectButtons:         l.ShowEjectButtons,
		ShowAddWindowButtons:     l.ShowAddWindowButtons,
	}
}

// AnySet reports whether at least one window property is set.
func (w WindowLocks) AnySet() bool {
	return w.ShowCloseButton.IsSet() || w.AllowExtract.IsSet() || w.AllowReorder.IsSet()
}

// Merge copies the set properties of w into dst and leaves the rest alone.
func (w WindowLocks) Merge(dst *LockFlags) {
	mergeFlag(&dst.ShowCloseButton, w.ShowCloseButton)
	mergeFlag(&dst.AllowExtract, w.AllowExtract)
	mergeFlag(&dst.AllowReorder, w.AllowReorder)
}

// AnySet reports whether at least one container property is set.
func (c ContainerLocks) AnySet() bool {
	for _, f := range c.flags() {
		if f.IsSet() {
			return true
		}
	}
	return false
}

// Merge copies the set properties of c into dst and leaves the rest alone.
func (c ContainerLocks) Merge(dst *LockFlags) {
	mergeFlag(&dst.AllowDrop, c.AllowDrop)
	mergeFlag(&dst.AllowDropLeft, c.AllowDropLeft)
	mergeFlag(&dst.AllowDropTop, c.AllowDropTop)
	mergeFlag(&dst.AllowDropRight, c.AllowDropRight)
	mergeFlag(&dst.AllowDropBottom, c.AllowDropBottom)
	mergeFlag(&dst.AllowDropHeader, c.AllowDropHeader)
	mergeFlag(&dst.AllowExtract, c.AllowExtract)
	mergeFlag(&dst.AllowReorder, c.AllowReorder)
	mergeFlag(&dst.ShowExtractButton, c.ShowExtractButton)
	mergeFlag(&dst.ShowMaximizeButton, c.ShowMaximizeButton)
	mergeFlag(&dst.ShowAddWindowButton, c.ShowAddWindowButton)
	mergeFlag(&dst.AllowSplitters, c.AllowSplitters)
}

func (c ContainerLocks) flags() []Flag {
	return []Flag{
		c.AllowDrop, c.AllowDropLeft, c.AllowDropTop, c.AllowDropRight,
		c.AllowDropBottom, c.AllowDropHeader, c.AllowExtract, c.AllowReorder,
		c.ShowExtractButton, c.ShowMaximizeButton, c.ShowAddWindowButton,
		c.AllowSplitters,
	}
}

// AnySet reports whether at least one workspace property is set.
func (w WorkspaceLocks) AnySet() bool {
	if w.ContainerLocks.AnySet() {
		return true
	}
	for _, f := range []Flag{
		w.ShowCloseButton, w.ShowSaveButton, w.AllowWorkspaceTabReorder,
		w.AllowWindowReorder, w.ShowWindowCloseButtons, w.ShowEjectButtons,
		w.ShowAddWindowButtons,
	} {
		if f.IsSet() {
			return true
		}
	}
	return false
}

// Merge copies the set properties of w into dst and leaves the rest alone.
func (w WorkspaceLocks) Merge(dst *LockFlags) {
	w.ContainerLocks.Merge(dst)
	mergeFlag(&dst.ShowCloseButton, w.ShowCloseButton)
	mergeFlag(&dst.ShowSaveButton, w.ShowSaveButton)
	mergeFlag(&dst.AllowWorkspaceTabReorder, w.AllowWorkspaceTabReorder)
	mergeFlag(&dst.AllowWindowReorder, w.AllowWindowReorder)
	mergeFlag(&dst.ShowWindowCloseButtons, w.ShowWindowCloseButtons)
	mergeFlag(&dst.ShowEjectButtons, w.ShowEjectButtons)
	mergeFlag(&dst.ShowAddWindowButtons, w.ShowAddWindowButtons)
}

func mergeFlag(dst *Flag, src Flag) {
	if src.IsSet() {
		*dst = src
	}
}

type lockProperty struct {
	name string
	get  func(LockFlags) Flag
}

var windowProperties = []lockProperty{
	{"showCloseButton", func(l LockFlags) Flag { return l.ShowCloseButton }},
	{"allowExtract", func(l LockFlags) Flag { return l.AllowExtract }},
	{"allowReorder", func(l LockFlags) Flag { return l.AllowReorder }},
}

var containerProperties = []lockProperty{
	{"allowDrop", func(l LockFlags) Flag { return l.AllowDrop }},
	{"allowDropLeft", func(l LockFlags) Flag { return l.AllowDropLeft }},
	{"allowDropTop", func(l LockFlags) Flag { return l.AllowDropTop }},
	{"allowDropRight", func(l LockFlags) Flag { return l.AllowDropRight }},
	{"allowDropBottom", func(l LockFlags) Flag { return l.AllowDropBottom }},
	{"allowDropHeader", func(l LockFlags) Flag { return l.AllowDropHeader }},
	{"allowExtract", func(l LockFlags) Flag { return l.AllowExtract }},
	{"allowReorder", func(l LockFlags) Flag { return l.AllowReorder }},
	{"showExtractButton", func(l LockFlags) Flag { return l.ShowExtractButton }},
	{"showMaximizeButton", func(l LockFlags) Flag { return l.ShowMaximizeButton }},
	{"showAddWindowButton", func(l LockFlags) Flag { return l.ShowAddWindowButton }},
	{"allowSplitters", func(l LockFlags) Flag { return l.AllowSplitters }},
}

var workspaceOnlyProperties = []lockProperty{
	{"showCloseButton", func(l LockFlags) Flag { return l.ShowCloseButton }},
	{"showSaveButton", func(l LockFlags) Flag { return l.ShowSaveButton }},
	{"allowWorkspaceTabReorder", func(l LockFlags) Flag { return l.AllowWorkspaceTabReorder }},
	{"allowWindowReorder", func(l LockFlags) Flag { return l.AllowWindowReorder }},
	{"showWindowCloseButtons", func(l LockFlags) Flag { return l.ShowWindowCloseButtons }},
	{"showEjectButtons", func(l LockFlags) Flag { return l.ShowEjectButtons }},
	{"showAddWindowButtons", func(l LockFlags) Flag { return l.ShowAddWindowButtons }},
}

func propertiesOf(t Type) []lockProperty {
	switch t {
	case TypeWindow:
		return windowProperties
	case TypeRow, TypeColumn, TypeGroup:
		return containerProperties
	case TypeWorkspace:
		out := make([]lockProperty, 0, len(containerProperties)+len(workspaceOnlyProperties))
		out = append(out, containerProperties...)
		return append(out, workspaceOnlyProperties...)
	default:
		return nil
	}
}

// LockProperties returns the names of the lock properties recognized for t.
func LockProperties(t Type) []string {
	props := propertiesOf(t)
	names := make([]string, len(props))
	for i, p := range props {
		names[i] = p.name
	}
	return names
}

// SetLockProperties returns the recognized properties of t that are set in
// flags, in declaration order.
func SetLockProperties(t Type, flags LockFlags) []string {
	var names []string
	for _, p := range propertiesOf(t) {
		if p.get(flags).IsSet() {
			names = append(names, p.name)
		}
	}
	return names
}
