package testutil

import "github.com/lraycheva/core-sub003/internal/layout"

// NodeOption configures a node during builder setup.
type NodeOption func(*layout.Node)

// ID sets the node id, for snapshot trees.
func ID(id string) NodeOption {
	return func(n *layout.Node) { n.ID = id }
}

// Title sets the display title.
func Title(title string) NodeOption {
	return func(n *layout.Node) { n.Config.Title = title }
}

// AppName sets the window's application name.
func AppName(name string) NodeOption {
	return func(n *layout.Node) { n.Config.AppName = name }
}

// URL sets the window url.
func URL(url string) NodeOption {
	return func(n *layout.Node) { n.Config.URL = url }
}

// Locks replaces every lock flag at once.
func Locks(flags layout.LockFlags) NodeOption {
	return func(n *layout.Node) { n.Config.LockFlags = flags }
}

func ShowCloseButton(v bool) NodeOption {
	return func(n *layout.Node) { n.Config.ShowCloseButton = layout.FlagOf(v) }
}

func AllowExtract(v bool) NodeOption {
	return func(n *layout.Node) { n.Config.AllowExtract = layout.FlagOf(v) }
}

func AllowReorder(v bool) NodeOption {
	return func(n *layout.Node) { n.Config.AllowReorder = layout.FlagOf(v) }
}

func AllowDrop(v bool) NodeOption {
	return func(n *layout.Node) { n.Config.AllowDrop = layout.FlagOf(v) }
}

func AllowSplitters(v bool) NodeOption {
	return func(n *layout.Node) { n.Config.AllowSplitters = layout.FlagOf(v) }
}

func ShowMaximizeButton(v bool) NodeOption {
	return func(n *layout.Node) { n.Config.ShowMaximizeButton = layout.FlagOf(v) }
}

func ShowSaveButton(v bool) NodeOption {
	return func(n *layout.Node) { n.Config.ShowSaveButton = layout.FlagOf(v) }
}

func AllowWindowReorder(v bool) NodeOption {
	return func(n *layout.Node) { n.Config.AllowWindowReorder = layout.FlagOf(v) }
}

func ShowWindowCloseButtons(v bool) NodeOption {
	return func(n *layout.Node) { n.Config.ShowWindowCloseButtons = layout.FlagOf(v) }
}

func ShowEjectButtons(v bool) NodeOption {
	return func(n *layout.Node) { n.Config.ShowEjectButtons = layout.FlagOf(v) }
}

func ShowAddWindowButtons(v bool) NodeOption {
	return func(n *layout.Node) { n.Config.ShowAddWindowButtons = layout.FlagOf(v) }
}
