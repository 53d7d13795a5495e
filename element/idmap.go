package element

import (
	"fmt"

	"github.com/google/uuid"
)

// IDMap indexes elements by id and rejects collisions.
type IDMap struct {
	byID map[uuid.UUID]*Element
}

func NewIDMap() *IDMap {
	return &IDMap{byID: make(map[uuid.UUID]*Element)}
}

func (m *IDMap) Len() int {
	return len(m.byID)
}

// Add registers e under its current id.
func (m *IDMap) Add(e *Element) error {
	if m.byID == nil {
		m.byID = make(map[uuid.UUID]*Element)
	}
	if prev, ok := m.byID[e.id]; ok && prev != e {
		return fmt.Errorf("%w: %v (%s and %s)", ErrDuplicateID, e.id, prev.kind, e.kind)
	}
	m.byID[e.id] = e
	return nil
}

// Find returns the element registered under id.
func (m *IDMap) Find(id uuid.UUID) (*Element, bool) {
	e, ok := m.byID[id]
	return e, ok
}

// Rebind sets e's id and registers it, failing without change when the id
// is already taken by another element.
func (m *IDMap) Rebind(e *Element, id uuid.UUID) error {
	if prev, ok := m.byID[id]; ok && prev != e {
		return fmt.Errorf("%w: %v (%s and %s)", ErrDuplicateID, id, prev.kind, e.kind)
	}
	old := e.id
	if err := e.SetID(id); err != nil {
		return err
	}
	if m.byID[old] == e {
		delete(m.byID, old)
	}
	return m.Add(e)
}

// Index registers every element of the tree rooted at root.
func Index(root *Element) (*IDMap, error) {
	m := NewIDMap()
	err := Walk(root, func(e *Element, _ int) error {
		return m.Add(e)
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}
