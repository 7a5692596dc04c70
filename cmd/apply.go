package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lraycheva/core-sub003/internal/layout"
	"github.com/lraycheva/core-sub003/internal/workspaces"
)

var (
	applyRaw     bool
	applyOutline bool
)

var applyCmd = &cobra.Command{
	Use:   "apply <layout-file>",
	Short: "Create a workspace from a layout file and print its events",
	Long: `Open a frame, create a workspace from the layout definition and push
every lock property the definition sets onto the live items.

Each published event is printed as one JSON line prefixed with a
"[type:action]" tag. Layout files may be YAML or JSON.

Examples:
  workspaces apply dashboard.yaml
  workspaces apply --raw dashboard.json | jq 'select(.action == "lock-configuration-changed")'`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().BoolVar(&applyRaw, "raw", false, "print bare JSON lines without tags")
	applyCmd.Flags().BoolVar(&applyOutline, "outline", false, "print the resulting snapshot outline after the events")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	definition, err := layout.DecodeFile(args[0])
	if err != nil {
		return err
	}

	s, err := openSession(false)
	if err != nil {
		return err
	}
	s.stream(cmd.OutOrStdout(), applyRaw)

	snapshot, applyErr := applyDefinition(cmd.Context(), s.manager, definition)
	if err := s.Close(context.Background()); err != nil && applyErr == nil {
		applyErr = err
	}
	if applyErr != nil {
		return applyErr
	}

	if applyOutline {
		printOutline(cmd.OutOrStdout(), snapshot)
	}
	return nil
}

// applyDefinition opens a frame and creates a workspace from definition in it.
func applyDefinition(ctx context.Context, m *workspaces.Manager, definition *layout.Node) (*layout.Node, error) {
	frame, err := m.OpenFrame(ctx, workspaces.FrameOptions{})
	if err != nil {
		return nil, err
	}
	snapshot, err := m.CreateWorkspace(ctx, frame.ID, definition)
	if err != nil {
		return nil, fmt.Errorf("creating workspace: %w", err)
	}
	return snapshot, nil
}

func printOutline(w io.Writer, tree *layout.Node) {
	_, _ = fmt.Fprint(w, layout.Outline(tree))
}
