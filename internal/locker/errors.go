package locker

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lraycheva/core-sub003/internal/layout"
)

// ErrStructuralMismatch matches every *StructuralMismatchError via errors.Is.
var ErrStructuralMismatch = errors.New("definition does not match snapshot structure")

// StructuralMismatchError reports where a definition tree stopped lining up
// with its snapshot. Path holds the child indexes from the traversal root.
type StructuralMismatchError struct {
	Path           []int
	SnapshotID     string
	DefinitionType layout.Type
	SnapshotType   layout.Type
	DefinitionKids int
	SnapshotKids   int
	MissingNode    bool
}

func (e *StructuralMismatchError) Error() string {
	var detail string
	switch {
	case e.MissingNode:
		detail = fmt.Sprintf("definition has a %s with no snapshot counterpart", e.DefinitionType)
	case e.DefinitionType != e.SnapshotType:
		detail = fmt.Sprintf("definition has a %s, snapshot item %q is a %s", e.DefinitionType, e.SnapshotID, e.SnapshotType)
	default:
		detail = fmt.Sprintf("definition %s has %d children, snapshot item %q has %d",
			e.DefinitionType, e.DefinitionKids, e.SnapshotID, e.SnapshotKids)
	}
	return fmt.Sprintf("structural mismatch at %s: %s", FormatPath(e.Path), detail)
}

// Is lets errors.Is(err, ErrStructuralMismatch) match.
func (e *StructuralMismatchError) Is(target error) bool {
	return target == ErrStructuralMismatch
}

// FormatPath renders a child-index path as "/0/2/1", or "/" for the root.
func FormatPath(path []int) string {
	if len(path) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, idx := range path {
		b.WriteByte('/')
		b.WriteString(strconv.Itoa(idx))
	}
	return b.String()
}

// checkShape verifies the paired nodes agree on type and child count.
func checkShape(def, snap *layout.Node, path []int) error {
	if snap == nil {
		return &StructuralMismatchError{
			Path:           path,
			DefinitionType: def.Type,
			MissingNode:    true,
		}
	}
	if def.Type != snap.Type || len(def.Children) != len(snap.Children) {
		return &StructuralMismatchError{
			Path:           path,
			SnapshotID:     snap.ID,
			DefinitionType: def.Type,
			SnapshotType:   snap.Type,
			DefinitionKids: len(def.Children),
			SnapshotKids:   len(snap.Children),
		}
	}
	return nil
}
