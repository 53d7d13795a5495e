package element

import (
	"fmt"
	"strconv"
	"strings"
)

// Type is the semantic type of an attribute.
type Type byte

const (
	TypeString Type = iota
	TypeDouble
	TypeInt32
	TypeBoolean
	TypeEnum
)

// String returns the type name written to documents. Enumerated attributes
// are written as plain strings.
func (t Type) String() string {
	switch t {
	case TypeDouble:
		return "Double"
	case TypeInt32:
		return "Int32"
	case TypeBoolean:
		return "Boolean"
	}
	return "String"
}

// Spec declares one attribute of a kind.
type Spec struct {
	Name    string
	Type    Type
	Default any
}

// DisplayName is the attribute name with underscores replaced by spaces.
func (s Spec) DisplayName() string {
	return strings.ReplaceAll(s.Name, "_", " ")
}

func (s Spec) zero() any {
	switch s.Type {
	case TypeDouble:
		return float64(0)
	case TypeInt32:
		return int32(0)
	case TypeBoolean:
		return false
	case TypeEnum:
		return s.Default.(EnumValue).withOrdinal(0)
	}
	return ""
}

// Attribute is a declared attribute together with its current value.
type Attribute struct {
	Spec
	Value any
}

// Text renders the value the way documents carry it.
func (a Attribute) Text() string {
	return formatValue(a.Type, a.Value)
}

// Check reports a value that has no document form, an enum ordinal
// outside its enum.
func (a Attribute) Check() error {
	if a.Type != TypeEnum {
		return nil
	}
	if err := Member(a.Value.(EnumValue)); err != nil {
		return fmt.Errorf("%s: %w", a.Name, err)
	}
	return nil
}

func formatValue(t Type, v any) string {
	switch t {
	case TypeDouble:
		return strconv.FormatFloat(v.(float64), 'f', -1, 64)
	case TypeInt32:
		return strconv.FormatInt(int64(v.(int32)), 10)
	case TypeBoolean:
		return strconv.FormatBool(v.(bool))
	case TypeEnum:
		return v.(EnumValue).String()
	}
	return v.(string)
}

// coerce checks v against the spec and converts Go numeric literals to the
// stored representation.
func coerce(s Spec, v any) (any, error) {
	mismatch := func() error {
		return fmt.Errorf("%w: %s is %s, got %T", ErrAttributeType, s.Name, s.Type, v)
	}
	switch s.Type {
	case TypeString:
		if str, ok := v.(string); ok {
			return str, nil
		}
	case TypeDouble:
		switch n := v.(type) {
		case float64:
			return n, nil
		case float32:
			return float64(n), nil
		case int:
			return float64(n), nil
		case int32:
			return float64(n), nil
		case int64:
			return float64(n), nil
		}
	case TypeInt32:
		switch n := v.(type) {
		case int32:
			return n, nil
		case int:
			if int(int32(n)) != n {
				return nil, fmt.Errorf("%w: %s value %d overflows Int32", ErrAttributeType, s.Name, n)
			}
			return int32(n), nil
		}
	case TypeBoolean:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case TypeEnum:
		want := s.Default.(EnumValue).Enum()
		switch e := v.(type) {
		case EnumValue:
			if e.Enum() != want {
				return nil, mismatch()
			}
			if err := Member(e); err != nil {
				return nil, fmt.Errorf("%s: %w", s.Name, err)
			}
			return e, nil
		case string:
			return ParseEnum(s.Default.(EnumValue), e)
		}
	}
	return nil, mismatch()
}

func parseValue(s Spec, text string) (any, error) {
	switch s.Type {
	case TypeDouble:
		f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrAttributeType, s.Name, err)
		}
		return f, nil
	case TypeInt32:
		i, err := strconv.ParseInt(strings.TrimSpace(text), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrAttributeType, s.Name, err)
		}
		return int32(i), nil
	case TypeBoolean:
		b, err := strconv.ParseBool(strings.TrimSpace(text))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrAttributeType, s.Name, err)
		}
		return b, nil
	case TypeEnum:
		return ParseEnum(s.Default.(EnumValue), text)
	}
	return text, nil
}
