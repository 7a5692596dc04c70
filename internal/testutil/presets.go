package testutil

import "github.com/lraycheva/core-sub003/internal/layout"

// ScenarioDefinition is a workspace hiding its save button, holding one row
// with one group with one reorderable window.
func ScenarioDefinition() *layout.Node {
	return Workspace(ShowSaveButton(false)).With(
		Row().With(
			Group().With(
				Window(AppName("notes"), AllowReorder(true)),
			),
		),
	).Build()
}

// DashboardDefinition has two columns: a locked group with two windows and
// a plain group with one.
//
//	workspace
//	  row
//	    column
//	      group [allowDrop allowSplitters]
//	        window [showCloseButton]
//	        window
//	    column
//	      group
//	        window
func DashboardDefinition() *layout.Node {
	return Workspace(Title("dashboard")).With(
		Row().With(
			Column().With(
				Group(AllowDrop(false), AllowSplitters(false)).With(
					Window(AppName("chart"), ShowCloseButton(false)),
					Window(AppName("blotter")),
				),
			),
			Column().With(
				Group().With(
					Window(AppName("news")),
				),
			),
		),
	).Build()
}
