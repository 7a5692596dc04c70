package events

// Emitter accepts raised events. Publisher and Bundler both implement it.
type Emitter interface {
	RaiseWindowEvent(event WindowEvent) error
	RaiseContainerEvent(event ContainerEvent) error
	RaiseWorkspaceEvent(event WorkspaceEvent) error
	RaiseFrameEvent(event FrameEvent) error
}
