package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lraycheva/core-sub003/internal/layout"
	"github.com/lraycheva/core-sub003/internal/log"
	"github.com/lraycheva/core-sub003/internal/watcher"
	"github.com/lraycheva/core-sub003/internal/workspaces"
)

var watchRaw bool

var watchCmd = &cobra.Command{
	Use:   "watch <layout-file>",
	Short: "Apply a layout file and reapply its locks whenever it changes",
	Long: `Apply the layout like "apply", then keep watching the file. Each time it
is saved the lock configuration is pushed onto the live workspace again.

Only lock properties are reapplied. A change to the shape of the layout is
reported and ignored until the file matches the live workspace again.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&watchRaw, "raw", false, "print bare JSON lines without tags")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]
	definition, err := layout.DecodeFile(path)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := openSession(false)
	if err != nil {
		return err
	}
	s.stream(cmd.OutOrStdout(), watchRaw)

	runErr := func() error {
		snapshot, err := applyDefinition(ctx, s.manager, definition)
		if err != nil {
			return err
		}

		w, err := watcher.New(watcher.Config{Path: path, Debounce: cfg.Watch.Debounce})
		if err != nil {
			return err
		}
		defer func() { _ = w.Stop() }()
		changes, err := w.Start()
		if err != nil {
			return err
		}

		watchLayout(ctx, s.manager, snapshot.ID, path, changes, cmd.ErrOrStderr())
		return nil
	}()

	if err := s.Close(context.Background()); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

// watchLayout reapplies the lock configuration in path to the workspace each
// time changes fires, until ctx is done or changes is closed. Failures are
// reported to errOut and watching continues.
func watchLayout(ctx context.Context, m *workspaces.Manager, workspaceID, path string, changes <-chan struct{}, errOut io.Writer) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-changes:
			if !ok {
				return
			}
			if err := reapply(ctx, m, workspaceID, path); err != nil {
				log.ErrorErr(log.CatCLI, "Reapplying layout failed", err, "path", path)
				_, _ = fmt.Fprintf(errOut, "reapply %s: %v\n", path, err)
			}
		}
	}
}

func reapply(ctx context.Context, m *workspaces.Manager, workspaceID, path string) error {
	definition, err := layout.DecodeFile(path)
	if err != nil {
		return err
	}
	log.Info(log.CatCLI, "Reapplying lock configuration", "path", path, "workspace", workspaceID)
	return m.UpdateLocks(ctx, workspaceID, definition)
}
