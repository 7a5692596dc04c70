package events_test

import (
	"bytes"
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/lraycheva/core-sub003/internal/events"
	"github.com/lraycheva/core-sub003/internal/layout"
	"github.com/lraycheva/core-sub003/internal/log"
	"github.com/lraycheva/core-sub003/internal/mocks"
)

// recordingEmitter keeps every raised event in order.
type recordingEmitter struct {
	mu         sync.Mutex
	windows    []events.WindowEvent
	containers []events.ContainerEvent
	workspaces []events.WorkspaceEvent
	frames     []events.FrameEvent
}

func (r *recordingEmitter) RaiseWindowEvent(e events.WindowEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.windows = append(r.windows, e)
	return nil
}

func (r *recordingEmitter) RaiseContainerEvent(e events.ContainerEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.containers = append(r.containers, e)
	return nil
}

func (r *recordingEmitter) RaiseWorkspaceEvent(e events.WorkspaceEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.workspaces = append(r.workspaces, e)
	return nil
}

func (r *recordingEmitter) RaiseFrameEvent(e events.FrameEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, e)
	return nil
}

func lockChanged(id string, showClose layout.Flag) events.WindowEvent {
	return events.WindowEvent{
		Action: events.ActionLockConfigurationChanged,
		Payload: events.WindowPayload{WindowSummary: events.WindowSummary{
			ItemID: id,
			Config: layout.Config{LockFlags: layout.LockFlags{ShowCloseButton: showClose}},
		}},
	}
}

func TestBundler_UngroupedPassesThrough(t *testing.T) {
	sink := mocks.NewMockEmitter(t)
	sink.EXPECT().RaiseWindowEvent(lockChanged("w1", layout.FlagFalse)).Return(nil).Once()
	sink.EXPECT().RaiseWindowEvent(lockChanged("w1", layout.FlagTrue)).Return(nil).Once()

	b := events.NewBundler(sink)
	require.NoError(t, b.RaiseWindowEvent(lockChanged("w1", layout.FlagFalse)))
	require.NoError(t, b.RaiseWindowEvent(lockChanged("w1", layout.FlagTrue)))
}

func TestBundler_LastWriteWins(t *testing.T) {
	sink := &recordingEmitter{}
	b := events.NewBundler(sink)

	b.StartWindowLockConfigurationChangedGrouping()
	require.NoError(t, b.RaiseWindowEvent(lockChanged("w1", layout.FlagFalse)))
	require.NoError(t, b.RaiseWindowEvent(lockChanged("w1", layout.FlagTrue)))
	require.Empty(t, sink.windows)
	require.Equal(t, 1, b.Pending(events.TypeWindow))

	b.EndWindowLockConfigurationChangedGrouping()

	require.Len(t, sink.windows, 1)
	require.Equal(t, layout.FlagTrue, sink.windows[0].Payload.WindowSummary.Config.ShowCloseButton)
	require.False(t, b.Grouping(events.TypeWindow))
	require.Zero(t, b.Pending(events.TypeWindow))
}

func TestBundler_OneEventPerID(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ids := rapid.SliceOfN(rapid.SampledFrom([]string{"w1", "w2", "w3", "w4"}), 1, 40).Draw(t, "ids")
		sink := &recordingEmitter{}
		b := events.NewBundler(sink)

		b.StartWindowLockConfigurationChangedGrouping()
		last := map[string]layout.Flag{}
		for i, id := range ids {
			flag := layout.FlagOf(i%2 == 0)
			last[id] = flag
			require.NoError(t, b.RaiseWindowEvent(lockChanged(id, flag)))
		}
		require.Empty(t, sink.windows)
		b.EndWindowLockConfigurationChangedGrouping()

		require.Len(t, sink.windows, len(last))
		for _, e := range sink.windows {
			summary := e.Payload.WindowSummary
			require.Equal(t, last[summary.ItemID], summary.Config.ShowCloseButton, "id %s", summary.ItemID)
		}
	})
}

func TestBundler_NonLockActionsPassThroughWhileGrouping(t *testing.T) {
	sink := &recordingEmitter{}
	b := events.NewBundler(sink)

	b.StartWindowLockConfigurationChangedGrouping()
	maximized := events.WindowEvent{
		Action:  events.ActionMaximized,
		Payload: events.WindowPayload{WindowSummary: events.WindowSummary{ItemID: "w1", Maximized: true}},
	}
	require.NoError(t, b.RaiseWindowEvent(maximized))

	require.Equal(t, []events.WindowEvent{maximized}, sink.windows)
	b.EndWindowLockConfigurationChangedGrouping()
	require.Len(t, sink.windows, 1)
}

func TestBundler_TypesGroupIndependently(t *testing.T) {
	sink := &recordingEmitter{}
	b := events.NewBundler(sink)

	b.StartContainerLockConfigurationChangedGrouping()
	require.NoError(t, b.RaiseWindowEvent(lockChanged("w1", layout.FlagFalse)))
	require.NoError(t, b.RaiseContainerEvent(events.ContainerEvent{
		Action:  events.ActionLockConfigurationChanged,
		Payload: events.ContainerPayload{ContainerSummary: events.ContainerSummary{ItemID: "c1"}},
	}))
	require.NoError(t, b.RaiseWorkspaceEvent(events.WorkspaceEvent{
		Action:  events.ActionLockConfigurationChanged,
		Payload: events.WorkspacePayload{WorkspaceSummary: events.WorkspaceSummary{ID: "ws1"}},
	}))

	require.Len(t, sink.windows, 1)
	require.Len(t, sink.workspaces, 1)
	require.Empty(t, sink.containers)

	b.EndContainerLockConfigurationChangedGrouping()
	require.Len(t, sink.containers, 1)
}

func TestBundler_FrameEventsNeverGrouped(t *testing.T) {
	sink := mocks.NewMockEmitter(t)
	sink.EXPECT().RaiseFrameEvent(mock.Anything).Return(nil).Once()

	b := events.NewBundler(sink)
	b.StartWindowLockConfigurationChangedGrouping()
	b.StartContainerLockConfigurationChangedGrouping()
	b.StartWorkspaceLockConfigurationChangedGrouping()
	require.NoError(t, b.RaiseFrameEvent(events.FrameEvent{Action: events.ActionFocus}))
}

func TestBundler_NestedGroupsFlushAtOutermostEnd(t *testing.T) {
	sink := &recordingEmitter{}
	b := events.NewBundler(sink)

	b.StartWindowLockConfigurationChangedGrouping()
	require.NoError(t, b.RaiseWindowEvent(lockChanged("w1", layout.FlagFalse)))
	b.StartWindowLockConfigurationChangedGrouping()
	require.Equal(t, 1, b.Pending(events.TypeWindow))

	b.EndWindowLockConfigurationChangedGrouping()
	require.True(t, b.Grouping(events.TypeWindow))
	require.Empty(t, sink.windows)

	b.EndWindowLockConfigurationChangedGrouping()
	require.False(t, b.Grouping(events.TypeWindow))
	require.Len(t, sink.windows, 1)

	// An unmatched End is a no-op.
	b.EndWindowLockConfigurationChangedGrouping()
	require.Len(t, sink.windows, 1)
	require.NoError(t, b.RaiseWindowEvent(lockChanged("w1", layout.FlagTrue)))
	require.Len(t, sink.windows, 2, "ungrouped again after the outermost End")
}

func (r *recordingEmitter) windowCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.windows)
}

func TestBundler_OverlappingGroupLockChanges(t *testing.T) {
	sink := &recordingEmitter{}
	b := events.NewBundler(sink)

	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	firstDone := make(chan error, 1)
	go func() {
		firstDone <- b.GroupLockChanges(func() error {
			close(firstStarted)
			<-releaseFirst
			return b.RaiseWindowEvent(lockChanged("w1", layout.FlagTrue))
		})
	}()
	<-firstStarted

	err := b.GroupLockChanges(func() error {
		require.NoError(t, b.RaiseWindowEvent(lockChanged("w2", layout.FlagFalse)))

		// The first operation finishes while this one is still running.
		close(releaseFirst)
		require.NoError(t, <-firstDone)
		require.Zero(t, sink.windowCount(), "held events must wait for the last open group")

		return b.RaiseWindowEvent(lockChanged("w2", layout.FlagTrue))
	})
	require.NoError(t, err)

	require.Len(t, sink.windows, 2)
	require.Equal(t, "w1", sink.windows[0].EntityID())
	require.Equal(t, "w2", sink.windows[1].EntityID())
	require.Equal(t, layout.FlagTrue, sink.windows[1].Payload.WindowSummary.Config.ShowCloseButton)
	require.False(t, b.Grouping(events.TypeWindow))
}

func TestBundler_FlushFailuresAreLoggedAndBufferCleared(t *testing.T) {
	var buf bytes.Buffer
	log.InitWriter(&buf)
	t.Cleanup(func() { log.InitWriter(nil) })

	sink := mocks.NewMockEmitter(t)
	sink.EXPECT().RaiseWindowEvent(lockChanged("w1", layout.FlagFalse)).Return(errors.New("subscriber gone")).Once()
	sink.EXPECT().RaiseWindowEvent(lockChanged("w2", layout.FlagFalse)).
		Run(func(events.WindowEvent) { panic("bad payload") }).
		Return(nil).
		Once()
	sink.EXPECT().RaiseWindowEvent(lockChanged("w3", layout.FlagFalse)).Return(nil).Once()

	b := events.NewBundler(sink)
	b.StartWindowLockConfigurationChangedGrouping()
	for _, id := range []string{"w1", "w2", "w3"} {
		require.NoError(t, b.RaiseWindowEvent(lockChanged(id, layout.FlagFalse)))
	}

	require.NotPanics(t, b.EndWindowLockConfigurationChangedGrouping)
	require.Zero(t, b.Pending(events.TypeWindow))
	require.False(t, b.Grouping(events.TypeWindow))
	require.Contains(t, buf.String(), "subscriber gone")
	require.Contains(t, buf.String(), "bad payload")
	require.Contains(t, buf.String(), "[events]")
}

func TestBundler_GroupLockChanges(t *testing.T) {
	sink := &recordingEmitter{}
	b := events.NewBundler(sink)

	err := b.GroupLockChanges(func() error {
		for i := range 5 {
			_ = b.RaiseWindowEvent(lockChanged("w1", layout.FlagOf(i%2 == 0)))
			_ = b.RaiseContainerEvent(events.ContainerEvent{
				Action:  events.ActionLockConfigurationChanged,
				Payload: events.ContainerPayload{ContainerSummary: events.ContainerSummary{ItemID: "c" + strconv.Itoa(i%2)}},
			})
		}
		require.True(t, b.Grouping(events.TypeWorkspace))
		return errors.New("partial")
	})

	require.EqualError(t, err, "partial")
	require.Len(t, sink.windows, 1)
	require.Len(t, sink.containers, 2)
	require.Empty(t, sink.workspaces)
	require.False(t, b.Grouping(events.TypeWindow))
}

func TestBundler_GroupLockChangesLeavesOuterGroupOpen(t *testing.T) {
	sink := &recordingEmitter{}
	b := events.NewBundler(sink)

	b.StartWindowLockConfigurationChangedGrouping()
	require.NoError(t, b.GroupLockChanges(func() error {
		return b.RaiseWindowEvent(lockChanged("w1", layout.FlagTrue))
	}))

	require.True(t, b.Grouping(events.TypeWindow))
	require.Empty(t, sink.windows)
	b.EndWindowLockConfigurationChangedGrouping()
	require.Len(t, sink.windows, 1)
}

func TestBundler_OverPublisher(t *testing.T) {
	p := events.NewPublisher(16)
	defer p.Close()
	ch := p.Subscribe(t.Context())
	b := events.NewBundler(p)

	b.StartWindowLockConfigurationChangedGrouping()
	require.NoError(t, b.RaiseWindowEvent(lockChanged("w1", layout.FlagFalse)))
	require.NoError(t, b.RaiseWindowEvent(lockChanged("w2", layout.FlagFalse)))
	require.NoError(t, b.RaiseWindowEvent(lockChanged("w1", layout.FlagTrue)))
	b.EndWindowLockConfigurationChangedGrouping()

	first, second := receive(t, ch).Payload, receive(t, ch).Payload
	require.Equal(t, "w1", first.EntityID)
	require.Equal(t, layout.FlagTrue, first.Payload.(events.WindowPayload).WindowSummary.Config.ShowCloseButton)
	require.Equal(t, "w2", second.EntityID)
	require.Empty(t, ch)
}
