package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lraycheva/core-sub003/internal/layoutstore"
)

// NewTestStore opens a layout store in a temporary directory. It is closed
// when the test ends.
func NewTestStore(t *testing.T) *layoutstore.SQLiteStore {
	t.Helper()
	store, err := layoutstore.Open(filepath.Join(t.TempDir(), "layouts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}
