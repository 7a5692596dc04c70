package cmd

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/lraycheva/core-sub003/internal/events"
	"github.com/lraycheva/core-sub003/internal/layout"
	"github.com/lraycheva/core-sub003/internal/testutil"
)

type cli struct {
	t      *testing.T
	dir    string
	config string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(fmt.Sprintf("store:\n  path: %s\n", filepath.Join(dir, "layouts.db"))), 0o600))
	return &cli{t: t, dir: dir, config: configPath}
}

func (c *cli) run(args ...string) (string, error) {
	c.t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--config", c.config}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

// writeLayout writes tree as JSON into the test directory.
func (c *cli) writeLayout(name string, tree *layout.Node) string {
	c.t.Helper()
	data, err := json.Marshal(tree)
	require.NoError(c.t, err)
	path := filepath.Join(c.dir, name)
	require.NoError(c.t, os.WriteFile(path, data, 0o600))
	return path
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func decodeLines(t *testing.T, out string) []events.Event {
	t.Helper()
	var got []events.Event
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		if !strings.HasPrefix(sc.Text(), "{") {
			continue
		}
		var e events.Event
		require.NoError(t, json.Unmarshal(sc.Bytes(), &e), sc.Text())
		got = append(got, e)
	}
	return got
}

func lockChanges(evs []events.Event) []string {
	var out []string
	for _, e := range evs {
		if e.Action == events.ActionLockConfigurationChanged {
			out = append(out, string(e.Type))
		}
	}
	return out
}

func TestApply_ScenarioRaisesLockEvents(t *testing.T) {
	c := newCLI(t)
	path := c.writeLayout("scenario.json", testutil.ScenarioDefinition())

	out, err := c.run("apply", "--raw", path)
	require.NoError(t, err)

	evs := decodeLines(t, out)
	require.NotEmpty(t, evs)
	require.Equal(t, events.TypeFrame, evs[0].Type)
	require.Equal(t, events.ActionOpened, evs[0].Action)
	require.ElementsMatch(t, []string{"workspace", "window"}, lockChanges(evs))
}

func TestApply_LargeLayoutStreamsEveryEvent(t *testing.T) {
	c := newCLI(t)

	const windows = 300
	group := testutil.Group()
	for i := 0; i < windows; i++ {
		group.With(testutil.Window(testutil.AppName(fmt.Sprintf("app-%d", i)), testutil.AllowReorder(true)))
	}
	path := c.writeLayout("large.json", testutil.Workspace().With(testutil.Row().With(group)).Build())

	out, err := c.run("apply", "--raw", path)
	require.NoError(t, err)

	var windowChanges int
	for _, kind := range lockChanges(decodeLines(t, out)) {
		if kind == string(events.TypeWindow) {
			windowChanges++
		}
	}
	require.Equal(t, windows, windowChanges)
}

func TestApply_TaggedOutputAndOutline(t *testing.T) {
	c := newCLI(t)
	path := c.writeLayout("scenario.json", testutil.ScenarioDefinition())

	out, err := c.run("apply", "--outline", path)
	require.NoError(t, err)
	require.Contains(t, out, "[frame:opened] ")
	require.Contains(t, out, "[window:lock-configuration-changed] ")
	// The live tree ends up carrying the same locks as the definition.
	require.True(t, strings.HasSuffix(out, layout.Outline(testutil.ScenarioDefinition())), out)
}

func TestApply_InvalidFile(t *testing.T) {
	c := newCLI(t)
	path := filepath.Join(c.dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"type":"window","children":[{"type":"window"}]}`), 0o600))

	_, err := c.run("apply", path)
	require.Error(t, err)

	_, err = c.run("apply", filepath.Join(c.dir, "missing.yaml"))
	require.Error(t, err)
}

func TestInvalidConfigRejected(t *testing.T) {
	c := newCLI(t)
	require.NoError(t, os.WriteFile(c.config, []byte("cache:\n  element_ttl: 0s\n"), 0o600))
	path := c.writeLayout("scenario.json", testutil.ScenarioDefinition())

	_, err := c.run("apply", path)
	require.ErrorContains(t, err, "cache.element_ttl")
}

func TestLogFileFlag(t *testing.T) {
	c := newCLI(t)
	path := c.writeLayout("scenario.json", testutil.ScenarioDefinition())
	logPath := filepath.Join(c.dir, "debug.log")

	_, err := c.run("--log-file", logPath, "--log-level", "debug", "apply", path)
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "[cli] Starting command")
	require.Contains(t, string(data), "[lock]")
}

func TestLayouts_Lifecycle(t *testing.T) {
	c := newCLI(t)
	path := c.writeLayout("dash.json", testutil.DashboardDefinition())

	out, err := c.run("layouts", "save", "dash", path, "-d", "trading")
	require.NoError(t, err)
	require.Contains(t, out, `saved layout "dash"`)

	out, err = c.run("layouts", "list")
	require.NoError(t, err)
	var list []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.Len(t, list, 1)
	require.Equal(t, "dash", list[0]["name"])
	require.Equal(t, "trading", list[0]["description"])
	require.EqualValues(t, 3, list[0]["windows"])

	out, err = c.run("layouts", "show", "dash")
	require.NoError(t, err)
	require.Contains(t, out, `"definition"`)

	out, err = c.run("layouts", "restore", "--raw", "dash")
	require.NoError(t, err)
	evs := decodeLines(t, out)
	var layoutName any
	for _, e := range evs {
		if e.Type == events.TypeWorkspace && e.Action == events.ActionOpened {
			payload := e.Payload.(map[string]any)
			layoutName = payload["workspaceSummary"].(map[string]any)["layoutName"]
		}
	}
	require.Equal(t, "dash", layoutName)
	require.Contains(t, lockChanges(evs), "container")

	_, err = c.run("layouts", "delete", "dash")
	require.NoError(t, err)

	_, err = c.run("layouts", "show", "dash")
	require.Error(t, err)
	_, err = c.run("layouts", "delete", "dash")
	require.Error(t, err)
}

func TestDiff(t *testing.T) {
	c := newCLI(t)
	a := c.writeLayout("a.json", testutil.ScenarioDefinition())
	b := c.writeLayout("b.json", testutil.Workspace(testutil.ShowSaveButton(false)).With(
		testutil.Row().With(
			testutil.Group().With(
				testutil.Window(testutil.AllowReorder(true)),
				testutil.Window(),
			),
		),
	).Build())

	out, err := c.run("diff", a, a)
	require.NoError(t, err)
	require.Equal(t, "layouts match\n", out)

	out, err = c.run("diff", a, b)
	require.NoError(t, err)
	require.Contains(t, out, "+       window\n")
	require.NotContains(t, out, "- ")

	_, err = c.run("diff", a)
	require.Error(t, err)

	_, err = c.run("layouts", "save", "scenario", a)
	require.NoError(t, err)
	out, err = c.run("diff", b, "--saved", "scenario")
	require.NoError(t, err)
	require.Contains(t, out, "+       window\n")
}

func TestWriteOutlineDiff(t *testing.T) {
	var buf bytes.Buffer
	require.False(t, writeOutlineDiff(&buf, "a\n", "a\n"))
	require.Empty(t, buf.String())

	require.True(t, writeOutlineDiff(&buf, "workspace\n  row\n", "workspace\n  column\n"))
	require.Equal(t, "  workspace\n-   row\n+   column\n", buf.String())
}

func TestWatchLayout_ReappliesLocks(t *testing.T) {
	c := newCLI(t)
	_, err := c.run("layouts", "list") // loads cfg
	require.NoError(t, err)

	path := c.writeLayout("scenario.json", testutil.ScenarioDefinition())
	definition, err := layout.DecodeFile(path)
	require.NoError(t, err)

	s, err := openSession(false)
	require.NoError(t, err)
	var out bytes.Buffer
	s.stream(&out, true)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	snapshot, err := applyDefinition(ctx, s.manager, definition)
	require.NoError(t, err)

	// Flip the window lock and break the shape in a second file.
	changed := testutil.Workspace(testutil.ShowSaveButton(false)).With(
		testutil.Row().With(testutil.Group().With(testutil.Window(testutil.AllowReorder(false)))),
	).Build()

	c.writeLayout("scenario.json", changed)
	require.NoError(t, reapply(ctx, s.manager, snapshot.ID, path))

	c.writeLayout("scenario.json", testutil.Workspace().With(testutil.Row()).Build())

	changes := make(chan struct{}, 1)
	changes <- struct{}{}
	close(changes)

	var errOut bytes.Buffer
	done := make(chan struct{})
	go func() {
		watchLayout(ctx, s.manager, snapshot.ID, path, changes, &errOut)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watchLayout did not return after changes closed")
	}
	require.NoError(t, s.Close(context.Background()))

	require.Contains(t, errOut.String(), "structural mismatch")

	var windowLocks int
	for _, e := range decodeLines(t, out.String()) {
		if e.Type == events.TypeWindow && e.Action == events.ActionLockConfigurationChanged {
			windowLocks++
		}
	}
	require.Equal(t, 2, windowLocks, "initial apply plus one reapply")
}
