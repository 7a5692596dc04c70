// Package testutil provides builders for layout trees and a throwaway
// layout store for tests.
package testutil

import "github.com/lraycheva/core-sub003/internal/layout"

// Builder accumulates a definition or snapshot node and its children.
type Builder struct {
	node     layout.Node
	children []*Builder
}

func newBuilder(t layout.Type, opts []NodeOption) *Builder {
	b := &Builder{node: layout.Node{Type: t}}
	for _, opt := range opts {
		opt(&b.node)
	}
	return b
}

// Workspace starts a workspace root.
func Workspace(opts ...NodeOption) *Builder { return newBuilder(layout.TypeWorkspace, opts) }

// Row starts a row container.
func Row(opts ...NodeOption) *Builder { return newBuilder(layout.TypeRow, opts) }

// Column starts a column container.
func Column(opts ...NodeOption) *Builder { return newBuilder(layout.TypeColumn, opts) }

// Group starts a tab group.
func Group(opts ...NodeOption) *Builder { return newBuilder(layout.TypeGroup, opts) }

// Window starts a window leaf.
func Window(opts ...NodeOption) *Builder { return newBuilder(layout.TypeWindow, opts) }

// With appends children.
func (b *Builder) With(children ...*Builder) *Builder {
	b.children = append(b.children, children...)
	return b
}

// Build returns a fresh tree; calling it twice yields independent trees.
func (b *Builder) Build() *layout.Node {
	n := b.node.Clone()
	for _, c := range b.children {
		n.Children = append(n.Children, c.Build())
	}
	return n
}
