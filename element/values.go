package element

import "fmt"

// Attributes returns every declared attribute with its current value, in
// schema order.
func (e *Element) Attributes() []Attribute {
	specs := schemas[e.kind]
	out := make([]Attribute, len(specs))
	for i, s := range specs {
		out[i] = Attribute{Spec: s, Value: e.values[i]}
	}
	return out
}

func (e *Element) lookup(name string) (int, Spec, error) {
	i, s, ok := LookupAttribute(e.kind, name)
	if !ok {
		return -1, Spec{}, fmt.Errorf("%w: %s has no attribute %q", ErrUnknownAttribute, e.kind, name)
	}
	return i, s, nil
}

// Get returns the value of the named attribute.
func (e *Element) Get(name string) (any, bool) {
	i, _, ok := LookupAttribute(e.kind, name)
	if !ok {
		return nil, false
	}
	return e.values[i], true
}

// Set assigns v to the named attribute. Numeric literals are converted to
// the declared type; enumerated attributes also accept their display string.
func (e *Element) Set(name string, v any) error {
	i, s, err := e.lookup(name)
	if err != nil {
		return err
	}
	val, err := coerce(s, v)
	if err != nil {
		return err
	}
	e.values[i] = val
	return nil
}

// SetText parses text according to the declared type of the attribute.
func (e *Element) SetText(name, text string) error {
	i, s, err := e.lookup(name)
	if err != nil {
		return err
	}
	val, err := parseValue(s, text)
	if err != nil {
		return fmt.Errorf("%s.%s: %w", e.kind, s.Name, err)
	}
	e.values[i] = val
	return nil
}

// Format renders the named attribute as document text.
func (e *Element) Format(name string) (string, error) {
	i, s, err := e.lookup(name)
	if err != nil {
		return "", err
	}
	a := Attribute{Spec: s, Value: e.values[i]}
	if err := a.Check(); err != nil {
		return "", fmt.Errorf("%s.%w", e.kind, err)
	}
	return a.Text(), nil
}

// Float returns a Double attribute, or 0 when the attribute is missing or
// of another type.
func (e *Element) Float(name string) float64 {
	v, _ := e.Get(name)
	f, _ := v.(float64)
	return f
}

func (e *Element) Int(name string) int32 {
	v, _ := e.Get(name)
	i, _ := v.(int32)
	return i
}

func (e *Element) Bool(name string) bool {
	v, _ := e.Get(name)
	b, _ := v.(bool)
	return b
}

// Text returns the formatted value of any attribute, or "" when missing.
func (e *Element) Text(name string) string {
	s, _ := e.Format(name)
	return s
}
