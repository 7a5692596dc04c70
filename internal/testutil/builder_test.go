package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lraycheva/core-sub003/internal/layout"
)

func TestBuilder_BuildsIndependentTrees(t *testing.T) {
	b := Workspace().With(Group(AllowDrop(false)).With(Window()))

	first, second := b.Build(), b.Build()
	first.Children[0].Config.Title = "changed"

	require.Empty(t, second.Children[0].Config.Title)
	require.Equal(t, layout.FlagFalse, second.Children[0].Config.AllowDrop)
}

func TestPresets_AreValid(t *testing.T) {
	require.NoError(t, ScenarioDefinition().Validate())
	require.NoError(t, DashboardDefinition().Validate())
	require.Len(t, layout.Windows(DashboardDefinition()), 3)
}
