package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/lraycheva/core-sub003/internal/layout"
	"github.com/lraycheva/core-sub003/internal/layoutstore"
)

var diffSaved string

var diffCmd = &cobra.Command{
	Use:   "diff <layout-file> [<layout-file>]",
	Short: "Compare the shape and locks of two layouts",
	Long: `Print a line diff of two layout outlines. An outline lists one node per
line, indented by depth, with the lock properties it sets. IDs are ignored.

Compare two files, or one file against a saved layout with --saved.

Examples:
  workspaces diff old.yaml new.yaml
  workspaces diff new.yaml --saved dashboard`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().StringVar(&diffSaved, "saved", "", "compare against this saved layout")
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	if (diffSaved == "") == (len(args) == 1) {
		return fmt.Errorf("diff needs two layout files, or one file and --saved")
	}

	var from *layout.Node
	if diffSaved != "" {
		err := withStore(func(store layoutstore.Store) error {
			l, err := store.Get(cmd.Context(), diffSaved)
			from = l.Definition
			return err
		})
		if err != nil {
			return err
		}
	} else {
		var err error
		if from, err = layout.DecodeFile(args[0]); err != nil {
			return err
		}
	}

	to, err := layout.DecodeFile(args[len(args)-1])
	if err != nil {
		return err
	}

	if !writeOutlineDiff(cmd.OutOrStdout(), layout.Outline(from), layout.Outline(to)) {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "layouts match")
	}
	return nil
}

// writeOutlineDiff writes a unified-style line diff of two outlines and
// reports whether they differ.
func writeOutlineDiff(w io.Writer, from, to string) bool {
	if from == to {
		return false
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			_, _ = fmt.Fprint(w, prefix+line)
		}
	}
	return true
}
