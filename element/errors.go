package element

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrContainment      = errors.New("illegal child")
	ErrNotFound         = errors.New("child not found")
	ErrEnumMapping      = errors.New("no enum member")
	ErrUnknownKind      = errors.New("unknown element kind")
	ErrUnknownAttribute = errors.New("unknown attribute")
	ErrAttributeType    = errors.New("attribute type mismatch")
	ErrAlreadyAttached  = errors.New("element already has a parent")
	ErrCycle            = errors.New("element cannot contain itself")
	ErrIDOverridden     = errors.New("id already overridden")
	ErrDuplicateID      = errors.New("duplicate element id")
	ErrNilElement       = errors.New("nil element")
)

// ContainmentError is returned by AddChild when the parent kind does not
// allow the child kind.
type ContainmentError struct {
	Parent Kind
	Child  Kind
}

func (e *ContainmentError) Error() string {
	return fmt.Sprintf("%s: %s cannot contain %s", ErrContainment, e.Parent, e.Child)
}

func (e *ContainmentError) Is(target error) bool {
	return target == ErrContainment
}

// NotFoundError is returned by RemoveChild when the candidate is not a
// current child of the parent.
type NotFoundError struct {
	Parent Kind
	Child  uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %v is not a child of %s", ErrNotFound, e.Child, e.Parent)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// EnumMappingError reports a literal that has no member in the enum.
type EnumMappingError struct {
	Enum  string
	Value string
}

func (e *EnumMappingError) Error() string {
	return fmt.Sprintf("%s: %s has no member %q", ErrEnumMapping, e.Enum, e.Value)
}

func (e *EnumMappingError) Is(target error) bool {
	return target == ErrEnumMapping
}
