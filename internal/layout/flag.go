package layout

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Flag is a tri-state lock property. The zero value is FlagUnset, which means
// "inherit, do not change"; only FlagTrue and FlagFalse count as set.
type Flag uint8

const (
	FlagUnset Flag = iota
	FlagFalse
	FlagTrue
)

// FlagOf returns the set Flag for b.
func FlagOf(b bool) Flag {
	if b {
		return FlagTrue
	}
	return FlagFalse
}

// IsSet reports whether the flag carries an explicit boolean.
func (f Flag) IsSet() bool {
	return f == FlagTrue || f == FlagFalse
}

// Bool returns the flag's value and whether it is set.
func (f Flag) Bool() (value, ok bool) {
	switch f {
	case FlagTrue:
		return true, true
	case FlagFalse:
		return false, true
	default:
		return false, false
	}
}

// IsZero lets yaml omitempty and json omitzero drop unset flags.
func (f Flag) IsZero() bool {
	return f == FlagUnset
}

func (f Flag) String() string {
	switch f {
	case FlagTrue:
		return "true"
	case FlagFalse:
		return "false"
	default:
		return "unset"
	}
}

// MarshalJSON encodes unset as null.
func (f Flag) MarshalJSON() ([]byte, error) {
	switch f {
	case FlagTrue:
		return []byte("true"), nil
	case FlagFalse:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts true, false and null. Anything else is rejected so a
// stray string like "false" is not silently treated as inherit.
func (f *Flag) UnmarshalJSON(data []byte) error {
	var b *bool
	if err := json.Unmarshal(data, &b); err != nil {
		return fmt.Errorf("lock flag must be a boolean or null: %w", err)
	}
	if b == nil {
		*f = FlagUnset
		return nil
	}
	*f = FlagOf(*b)
	return nil
}

// MarshalYAML encodes unset as null.
func (f Flag) MarshalYAML() (any, error) {
	v, ok := f.Bool()
	if !ok {
		return nil, nil
	}
	return v, nil
}

// UnmarshalYAML accepts !!bool and !!null scalars.
func (f *Flag) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: lock flag must be a scalar", node.Line)
	}
	switch node.Tag {
	case "!!null":
		*f = FlagUnset
		return nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return err
		}
		*f = FlagOf(b)
		return nil
	default:
		return fmt.Errorf("line %d: lock flag must be a boolean or null, got %q", node.Line, node.Value)
	}
}
