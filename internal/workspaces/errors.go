package workspaces

import (
	"errors"
	"fmt"

	"github.com/lraycheva/core-sub003/internal/layout"
)

var (
	ErrWorkspaceNotFound = errors.New("workspace not found")
	ErrFrameNotFound     = errors.New("frame not found")
	ErrFrameExists       = errors.New("frame already open")
	ErrItemNotFound      = errors.New("item not found")
	ErrWrongItemType     = errors.New("wrong item type")
	// ErrInvalidParent is returned when a node cannot be added under the
	// requested parent.
	ErrInvalidParent = errors.New("invalid parent")
	// ErrInvalidDefinition is returned for a definition of the wrong type or
	// shape for the operation.
	ErrInvalidDefinition = errors.New("invalid definition")
	// ErrNoStore is returned by layout operations on a Manager created
	// without a layout store.
	ErrNoStore = errors.New("no layout store configured")
)

func workspaceNotFound(id string) error {
	return fmt.Errorf("%w: %q", ErrWorkspaceNotFound, id)
}

func frameNotFound(id string) error {
	return fmt.Errorf("%w: %q", ErrFrameNotFound, id)
}

func itemNotFound(id string) error {
	return fmt.Errorf("%w: %q", ErrItemNotFound, id)
}

func wrongType(id string, got, want layout.Type) error {
	return fmt.Errorf("%w: %q is a %s, not a %s", ErrWrongItemType, id, got, want)
}
