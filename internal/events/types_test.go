package events

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestActionValid(t *testing.T) {
	require.True(t, ActionMaximized.Valid(TypeWindow))
	require.True(t, ActionChildrenUpdate.Valid(TypeContainer))
	require.True(t, ActionSelected.Valid(TypeWorkspace))
	require.True(t, ActionFocus.Valid(TypeFrame))

	require.False(t, ActionMaximized.Valid(TypeContainer))
	require.False(t, ActionLockConfigurationChanged.Valid(TypeFrame))
	require.False(t, ActionSelected.Valid(TypeWindow))
	require.False(t, ActionAdded.Valid(Type("tab")))
}

func TestActions(t *testing.T) {
	require.Len(t, Actions(TypeWindow), 8)
	require.Len(t, Actions(TypeContainer), 4)
	require.Len(t, Actions(TypeWorkspace), 5)
	require.Len(t, Actions(TypeFrame), 4)
	require.Nil(t, Actions(Type("tab")))

	// Callers get a copy.
	a := Actions(TypeFrame)
	a[0] = ActionSelected
	require.Equal(t, ActionOpened, Actions(TypeFrame)[0])
}

func TestBrokerEventType(t *testing.T) {
	require.Equal(t, "created", string(brokerEventType(ActionOpened)))
	require.Equal(t, "deleted", string(brokerEventType(ActionRemoved)))
	require.Equal(t, "updated", string(brokerEventType(ActionLockConfigurationChanged)))
}
