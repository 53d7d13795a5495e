package element

import (
	"fmt"

	"github.com/google/uuid"
)

// Element is one node of a structure tree. The parent pointer is a
// back-reference only: ownership runs from parent to children.
type Element struct {
	id                  uuid.UUID
	idOverridden        bool
	kind                Kind
	DescriptionOverride string

	parent   *Element
	children []*Element
	values   []any
}

// New constructs a detached element of kind k populated with the kind's
// default attribute values.
func New(k Kind) *Element {
	e := newElement(k)
	for i, s := range schemas[k] {
		e.values[i] = s.Default
	}
	return e
}

// NewBlank constructs a detached element whose attributes hold the zero
// value of their type.
func NewBlank(k Kind) *Element {
	e := newElement(k)
	for i, s := range schemas[k] {
		e.values[i] = s.zero()
	}
	return e
}

func newElement(k Kind) *Element {
	if !k.valid() {
		panic(fmt.Sprintf("element: invalid kind %d", byte(k)))
	}
	return &Element{
		id:     uuid.New(),
		kind:   k,
		values: make([]any, len(schemas[k])),
	}
}

func (e *Element) ID() uuid.UUID {
	return e.id
}

// SetID replaces the generated id. It may be called once per element;
// uniqueness across a tree is checked by IDMap.
func (e *Element) SetID(id uuid.UUID) error {
	if e.idOverridden {
		return fmt.Errorf("%w: %v", ErrIDOverridden, e.id)
	}
	e.id = id
	e.idOverridden = true
	return nil
}

func (e *Element) Kind() Kind {
	return e.kind
}

// TypeTag is the document node name of the element.
func (e *Element) TypeTag() string {
	return e.kind.Tag()
}

// DisplayName returns the description override, or the type tag when none
// is set.
func (e *Element) DisplayName() string {
	if e.DescriptionOverride != "" {
		return e.DescriptionOverride
	}
	return e.TypeTag()
}

func (e *Element) String() string {
	return fmt.Sprintf("%s (%v) children:%d", e.DisplayName(), e.id, len(e.children))
}

func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns a copy of the child list in insertion order.
func (e *Element) Children() []*Element {
	out := make([]*Element, len(e.children))
	copy(out, e.children)
	return out
}

func (e *Element) ChildCount() int {
	return len(e.children)
}

// IsLegalChild reports whether c's kind may be added to e.
func (e *Element) IsLegalChild(c *Element) bool {
	if c == nil {
		return false
	}
	return CanContain(e.kind, c.kind)
}

// AddChild appends c to e's children and makes e its parent.
func (e *Element) AddChild(c *Element) error {
	if c == nil {
		return ErrNilElement
	}
	if !e.IsLegalChild(c) {
		return &ContainmentError{Parent: e.kind, Child: c.kind}
	}
	if c.parent != nil {
		return fmt.Errorf("%w: %v is attached to %v", ErrAlreadyAttached, c.id, c.parent.id)
	}
	for p := e; p != nil; p = p.parent {
		if p == c {
			return fmt.Errorf("%w: %v", ErrCycle, c.id)
		}
	}
	e.children = append(e.children, c)
	c.parent = e
	return nil
}

// RemoveChild detaches c from e. The removed subtree is left intact.
func (e *Element) RemoveChild(c *Element) error {
	if c == nil {
		return ErrNilElement
	}
	for i, child := range e.children {
		if child == c {
			copy(e.children[i:], e.children[i+1:])
			e.children[len(e.children)-1] = nil
			e.children = e.children[:len(e.children)-1]
			c.parent = nil
			return nil
		}
	}
	return &NotFoundError{Parent: e.kind, Child: c.id}
}

// Detach removes e from its parent, if it has one.
func (e *Element) Detach() error {
	if e.parent == nil {
		return nil
	}
	return e.parent.RemoveChild(e)
}
