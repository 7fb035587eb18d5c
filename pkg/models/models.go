// Package models holds data wrappers shared by the view components.
package models

// Selectable is data that can be selected, for example through a checkbox.
type Selectable interface {
	Select()
	Deselect()
	Toggle()
	IsSelected() bool
}

// Selection attaches a selection flag to an item. The flag is unexported,
// so a table row keyed by a *Selection keeps its key when it is toggled.
type Selection[T any] struct {
	Item     T
	selected bool
}

// Select wraps item as an unselected Selection.
func Select[T any](item T) *Selection[T] {
	return &Selection[T]{Item: item}
}

func (s *Selection[T]) Select()          { s.selected = true }
func (s *Selection[T]) Deselect()        { s.selected = false }
func (s *Selection[T]) Toggle()          { s.selected = !s.selected }
func (s *Selection[T]) IsSelected() bool { return s.selected }

// Selected returns the items whose selection flag is set, in order.
func Selected[T any](items []*Selection[T]) []T {
	var out []T
	for _, s := range items {
		if s.selected {
			out = append(out, s.Item)
		}
	}
	return out
}
