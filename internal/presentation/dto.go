package presentation

import (
	"time"

	"github.com/lraycheva/core-sub003/internal/layout"
	"github.com/lraycheva/core-sub003/internal/layoutstore"
)

// LayoutDTO represents a saved layout for listing.
type LayoutDTO struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Windows     int       `json:"windows"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LayoutDetailDTO is a saved layout including its definition tree.
type LayoutDetailDTO struct {
	LayoutDTO
	Definition *layout.Node `json:"definition"`
}

// FromLayout converts a stored layout to its list DTO.
func FromLayout(l layoutstore.Layout) LayoutDTO {
	return LayoutDTO{
		Name:        l.Name,
		Description: l.Description,
		Windows:     len(layout.Windows(l.Definition)),
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

// FromLayouts converts stored layouts, keeping their order. Never nil.
func FromLayouts(layouts []layoutstore.Layout) []LayoutDTO {
	dtos := make([]LayoutDTO, 0, len(layouts))
	for _, l := range layouts {
		dtos = append(dtos, FromLayout(l))
	}
	return dtos
}

// FromLayoutDetail converts a stored layout including its definition.
func FromLayoutDetail(l layoutstore.Layout) LayoutDetailDTO {
	return LayoutDetailDTO{LayoutDTO: FromLayout(l), Definition: l.Definition}
}
