package layout

import (
	"strings"
)

// Outline renders the shape of tree one node per line, indented by depth:
//
//	workspace
//	  row
//	    group
//	      window [allowReorder]
//
// IDs are left out so a definition and its snapshot produce the same outline
// when their shapes agree. Set lock properties are listed in brackets.
func Outline(tree *Node) string {
	var b strings.Builder
	writeOutline(&b, tree, 0)
	return b.String()
}

func writeOutline(b *strings.Builder, n *Node, depth int) {
	if n == nil {
		return
	}
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(string(n.Type))
	if set := SetLockProperties(n.Type, n.Config.LockFlags); len(set) > 0 {
		b.WriteString(" [")
		b.WriteString(strings.Join(set, " "))
		b.WriteString("]")
	}
	b.WriteByte('\n')
	for _, child := range n.Children {
		writeOutline(b, child, depth+1)
	}
}
