package hcldef

import (
	"fmt"

	"github.com/ddvk/ppl/element"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// assign converts val to the declared type of the named attribute and sets
// it on el.
func assign(el *element.Element, name string, val cty.Value) error {
	_, spec, ok := element.LookupAttribute(el.Kind(), name)
	if !ok {
		return fmt.Errorf("%w: %s has no attribute %q", element.ErrUnknownAttribute, el.Kind(), name)
	}
	if val.IsNull() {
		return fmt.Errorf("%s: value must not be null", name)
	}
	if !val.IsWhollyKnown() {
		return fmt.Errorf("%s: value is not known", name)
	}

	var target cty.Type
	switch spec.Type {
	case element.TypeDouble, element.TypeInt32:
		target = cty.Number
	case element.TypeBoolean:
		target = cty.Bool
	default:
		target = cty.String
	}
	val, err := convert.Convert(val, target)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	var v any
	switch spec.Type {
	case element.TypeDouble:
		var f float64
		err = gocty.FromCtyValue(val, &f)
		v = f
	case element.TypeInt32:
		var i int32
		err = gocty.FromCtyValue(val, &i)
		v = i
	case element.TypeBoolean:
		var b bool
		err = gocty.FromCtyValue(val, &b)
		v = b
	default:
		v = val.AsString()
	}
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return el.Set(name, v)
}

func asString(val cty.Value) string {
	if val.IsNull() || !val.IsWhollyKnown() {
		return ""
	}
	s, err := convert.Convert(val, cty.String)
	if err != nil {
		return ""
	}
	return s.AsString()
}
