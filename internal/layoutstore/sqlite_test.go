package layoutstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lraycheva/core-sub003/internal/layout"
	"github.com/lraycheva/core-sub003/internal/layoutstore"
	"github.com/lraycheva/core-sub003/internal/testutil"
)

func TestSQLiteStore_SaveAndGet(t *testing.T) {
	store := testutil.NewTestStore(t)
	ctx := context.Background()
	def := testutil.DashboardDefinition()

	require.NoError(t, store.Save(ctx, layoutstore.Layout{Name: "dash", Description: "two columns", Definition: def}))

	got, err := store.Get(ctx, "dash")
	require.NoError(t, err)
	require.Equal(t, "dash", got.Name)
	require.Equal(t, "two columns", got.Description)
	require.Equal(t, layout.Outline(def), layout.Outline(got.Definition))
	require.Equal(t, layout.FlagFalse, got.Definition.Children[0].Children[0].Children[0].Config.AllowDrop)
	require.Equal(t, "chart", got.Definition.Children[0].Children[0].Children[0].Children[0].Config.AppName)
	require.False(t, got.CreatedAt.IsZero())
}

func TestSQLiteStore_SaveReplaces(t *testing.T) {
	store := testutil.NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, layoutstore.Layout{Name: "x", Definition: testutil.ScenarioDefinition()}))
	first, err := store.Get(ctx, "x")
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, layoutstore.Layout{Name: "x", Definition: testutil.DashboardDefinition()}))
	second, err := store.Get(ctx, "x")
	require.NoError(t, err)

	require.Equal(t, layout.Outline(testutil.DashboardDefinition()), layout.Outline(second.Definition))
	require.Equal(t, first.CreatedAt, second.CreatedAt)
	require.False(t, second.UpdatedAt.Before(first.UpdatedAt))
}

func TestSQLiteStore_List(t *testing.T) {
	store := testutil.NewTestStore(t)
	ctx := context.Background()

	all, err := store.List(ctx)
	require.NoError(t, err)
	require.Empty(t, all)

	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, store.Save(ctx, layoutstore.Layout{Name: name, Definition: testutil.ScenarioDefinition()}))
	}
	all, err = store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "alpha", all[0].Name)
	require.Equal(t, "mid", all[1].Name)
	require.Equal(t, "zeta", all[2].Name)
}

func TestSQLiteStore_Delete(t *testing.T) {
	store := testutil.NewTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, layoutstore.Layout{Name: "gone", Definition: testutil.ScenarioDefinition()}))

	require.NoError(t, store.Delete(ctx, "gone"))
	_, err := store.Get(ctx, "gone")
	require.ErrorIs(t, err, layoutstore.ErrLayoutNotFound)
	require.ErrorIs(t, store.Delete(ctx, "gone"), layoutstore.ErrLayoutNotFound)
}

func TestSQLiteStore_RejectsInvalid(t *testing.T) {
	store := testutil.NewTestStore(t)
	ctx := context.Background()

	require.ErrorIs(t, store.Save(ctx, layoutstore.Layout{Definition: testutil.ScenarioDefinition()}), layoutstore.ErrInvalidLayout)
	require.ErrorIs(t, store.Save(ctx, layoutstore.Layout{Name: "empty"}), layoutstore.ErrInvalidLayout)

	bad := &layout.Node{Type: layout.TypeRow, Children: []*layout.Node{{Type: layout.TypeWorkspace}}}
	require.ErrorIs(t, store.Save(ctx, layoutstore.Layout{Name: "bad", Definition: bad}), layoutstore.ErrInvalidLayout)
}

func TestOpen_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "layouts.db")
	ctx := context.Background()

	store, err := layoutstore.Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, layoutstore.Layout{Name: "kept", Definition: testutil.ScenarioDefinition()}))
	require.NoError(t, store.Close())

	reopened, err := layoutstore.Open(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	got, err := reopened.Get(ctx, "kept")
	require.NoError(t, err)
	require.Equal(t, layout.TypeWorkspace, got.Definition.Type)
}

func TestOpen_InMemory(t *testing.T) {
	store, err := layoutstore.Open(":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	require.NoError(t, store.Save(context.Background(), layoutstore.Layout{Name: "m", Definition: testutil.ScenarioDefinition()}))
	_, err = store.Get(context.Background(), "m")
	require.NoError(t, err)
}
