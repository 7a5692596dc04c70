// Package layoutstore persists named layout definitions.
package layoutstore

import (
	"context"
	"errors"
	"time"

	"github.com/lraycheva/core-sub003/internal/layout"
)

var (
	// ErrLayoutNotFound is returned when no layout has the requested name.
	ErrLayoutNotFound = errors.New("layout not found")
	// ErrInvalidLayout is returned when saving a layout without a name or
	// with an invalid definition.
	ErrInvalidLayout = errors.New("invalid layout")
)

// Layout is a named definition tree.
type Layout struct {
	Name        string
	Description string
	Definition  *layout.Node
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Store saves and loads layouts by name.
type Store interface {
	// Save inserts the layout or replaces the one with the same name.
	Save(ctx context.Context, l Layout) error
	Get(ctx context.Context, name string) (Layout, error)
	// List returns every layout ordered by name.
	List(ctx context.Context) ([]Layout, error)
	Delete(ctx context.Context, name string) error
}
