// Package presentation renders CLI output: JSON documents for layouts and
// tagged JSON lines for the event stream.
package presentation

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/lraycheva/core-sub003/internal/events"
)

var tagColors = map[events.Type]lipgloss.Color{
	events.TypeWindow:    lipgloss.Color("12"),
	events.TypeContainer: lipgloss.Color("13"),
	events.TypeWorkspace: lipgloss.Color("10"),
	events.TypeFrame:     lipgloss.Color("11"),
}

// Formatter handles output formatting
type Formatter struct {
	writer   io.Writer
	renderer *lipgloss.Renderer
	tags     bool
}

// NewFormatter creates a new formatter. Event lines carry a "type:action"
// tag, colored only when writer is a terminal.
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer:   writer,
		renderer: lipgloss.NewRenderer(writer),
		tags:     true,
	}
}

// WithoutTags makes FormatEvent emit bare JSON lines.
func (f *Formatter) WithoutTags() *Formatter {
	f.tags = false
	return f
}

// FormatLayouts formats a list of layouts as JSON
func (f *Formatter) FormatLayouts(layouts []LayoutDTO) error {
	return f.encode(layouts)
}

// FormatLayout formats a single layout with its definition as JSON
func (f *Formatter) FormatLayout(l LayoutDetailDTO) error {
	return f.encode(l)
}

// FormatJSON formats any value as indented JSON
func (f *Formatter) FormatJSON(v any) error {
	return f.encode(v)
}

// FormatEvent writes one event as a single JSON line.
func (f *Formatter) FormatEvent(e events.Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encoding %s event: %w", e.Type, err)
	}
	if !f.tags {
		_, err = fmt.Fprintf(f.writer, "%s\n", data)
		return err
	}
	_, err = fmt.Fprintf(f.writer, "%s %s\n", f.tag(e), data)
	return err
}

func (f *Formatter) tag(e events.Event) string {
	style := f.renderer.NewStyle().Bold(true)
	if c, ok := tagColors[e.Type]; ok {
		style = style.Foreground(c)
	}
	return style.Render(fmt.Sprintf("[%s:%s]", e.Type, e.Action))
}

func (f *Formatter) encode(v any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
