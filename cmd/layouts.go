package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lraycheva/core-sub003/internal/layout"
	"github.com/lraycheva/core-sub003/internal/layoutstore"
	"github.com/lraycheva/core-sub003/internal/presentation"
	"github.com/lraycheva/core-sub003/internal/workspaces"
)

var (
	layoutDescription string
	restoreRaw        bool
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "Manage saved layouts",
	Long: `Save, list, show, delete and restore named layouts kept in the layout
store (store.path in the config, default ~/.config/workspaces/layouts.db).`,
}

var layoutsSaveCmd = &cobra.Command{
	Use:   "save <name> <layout-file>",
	Short: "Save a layout file under a name, replacing any existing layout",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		definition, err := layout.DecodeFile(args[1])
		if err != nil {
			return err
		}
		return withStore(func(store layoutstore.Store) error {
			l := layoutstore.Layout{Name: args[0], Description: layoutDescription, Definition: definition}
			if err := store.Save(cmd.Context(), l); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "saved layout %q\n", args[0])
			return nil
		})
	},
}

var layoutsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved layouts as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store layoutstore.Store) error {
			layouts, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			return presentation.NewFormatter(cmd.OutOrStdout()).FormatLayouts(presentation.FromLayouts(layouts))
		})
	},
}

var layoutsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a saved layout with its definition as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store layoutstore.Store) error {
			l, err := store.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return presentation.NewFormatter(cmd.OutOrStdout()).FormatLayout(presentation.FromLayoutDetail(l))
		})
	},
}

var layoutsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved layout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(store layoutstore.Store) error {
			if err := store.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted layout %q\n", args[0])
			return nil
		})
	},
}

var layoutsRestoreCmd = &cobra.Command{
	Use:   "restore <name>",
	Short: "Create a workspace from a saved layout and print its events",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(true)
		if err != nil {
			return err
		}
		s.stream(cmd.OutOrStdout(), restoreRaw)

		restoreErr := func() error {
			ctx := cmd.Context()
			frame, err := s.manager.OpenFrame(ctx, workspaces.FrameOptions{})
			if err != nil {
				return err
			}
			_, err = s.manager.RestoreWorkspace(ctx, frame.ID, args[0])
			return err
		}()
		if err := s.Close(context.Background()); err != nil && restoreErr == nil {
			restoreErr = err
		}
		return restoreErr
	},
}

func init() {
	layoutsSaveCmd.Flags().StringVarP(&layoutDescription, "description", "d", "", "layout description")
	layoutsRestoreCmd.Flags().BoolVar(&restoreRaw, "raw", false, "print bare JSON lines without tags")

	layoutsCmd.AddCommand(layoutsSaveCmd, layoutsListCmd, layoutsShowCmd, layoutsDeleteCmd, layoutsRestoreCmd)
	rootCmd.AddCommand(layoutsCmd)
}

func withStore(fn func(store layoutstore.Store) error) error {
	store, err := layoutstore.Open(cfg.StorePath())
	if err != nil {
		return err
	}
	return errors.Join(fn(store), store.Close())
}
