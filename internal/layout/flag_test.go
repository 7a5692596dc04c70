package layout

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFlag_IsSet(t *testing.T) {
	require.False(t, FlagUnset.IsSet())
	require.True(t, FlagFalse.IsSet())
	require.True(t, FlagTrue.IsSet())

	v, ok := FlagFalse.Bool()
	require.True(t, ok)
	require.False(t, v)

	_, ok = FlagUnset.Bool()
	require.False(t, ok)
}

func TestFlag_JSON(t *testing.T) {
	var flags LockFlags
	err := json.Unmarshal([]byte(`{"allowExtract": null, "allowSplitters": false, "showCloseButton": true}`), &flags)
	require.NoError(t, err)

	require.Equal(t, FlagUnset, flags.AllowExtract)
	require.Equal(t, FlagFalse, flags.AllowSplitters)
	require.Equal(t, FlagTrue, flags.ShowCloseButton)

	out, err := json.Marshal(flags)
	require.NoError(t, err)
	require.JSONEq(t, `{"allowSplitters": false, "showCloseButton": true}`, string(out))
}

func TestFlag_JSONRejectsStrings(t *testing.T) {
	var flags LockFlags
	err := json.Unmarshal([]byte(`{"allowExtract": "false"}`), &flags)
	require.Error(t, err)
}

func TestFlag_YAML(t *testing.T) {
	var flags LockFlags
	err := yaml.Unmarshal([]byte("allowExtract: ~\nallowSplitters: false\nshowSaveButton: true\n"), &flags)
	require.NoError(t, err)

	require.Equal(t, FlagUnset, flags.AllowExtract)
	require.Equal(t, FlagFalse, flags.AllowSplitters)
	require.Equal(t, FlagTrue, flags.ShowSaveButton)

	out, err := yaml.Marshal(flags)
	require.NoError(t, err)
	require.Equal(t, "allowSplitters: false\nshowSaveButton: true\n", string(out))
}

func TestFlag_YAMLRejectsNonBoolean(t *testing.T) {
	var flags LockFlags
	err := yaml.Unmarshal([]byte("allowExtract: nope\n"), &flags)
	require.Error(t, err)
}
