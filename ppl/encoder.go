// Package ppl reads and writes PPL documents: an XML rendering of an element
// tree where every node carries an ATTRIBUTES block of VALUE entries and a
// PPLChildElements block holding its children.
package ppl

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/ddvk/ppl/element"
)

const (
	tagDocument   = "PPL"
	tagAttributes = "ATTRIBUTES"
	tagValue      = "VALUE"
	tagChildren   = "PPLChildElements"

	attrName        = "NAME"
	attrType        = "TYPE"
	attrID          = "ID"
	attrDescription = "DESCRIPTION"
)

// ErrInvalidText is returned for strings holding characters XML cannot
// carry. encoding/xml would replace them, so the document would not read
// back to the same tree.
var ErrInvalidText = errors.New("text not representable in XML")

// validText reports whether s is UTF-8 made only of XML Char runes.
func validText(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		switch {
		case r == '\t', r == '\n', r == '\r':
		case r >= 0x20 && r <= 0xD7FF:
		case r >= 0xE000 && r <= 0xFFFD:
		case r >= 0x10000 && r <= 0x10FFFF:
		default:
			return false
		}
	}
	return true
}

// Encoder writes element subtrees as PPL XML.
type Encoder struct {
	enc      *xml.Encoder
	elements int
}

func NewEncoder(w io.Writer) *Encoder {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	return &Encoder{enc: enc}
}

// Elements is the number of element nodes written so far.
func (e *Encoder) Elements() int {
	return e.elements
}

// Encode writes el and its descendants, depth-first.
func (e *Encoder) Encode(el *element.Element) error {
	start := xml.StartElement{
		Name: xml.Name{Local: el.TypeTag()},
		Attr: []xml.Attr{{Name: xml.Name{Local: attrID}, Value: el.ID().String()}},
	}
	if el.DescriptionOverride != "" {
		if !validText(el.DescriptionOverride) {
			return fmt.Errorf("%s description: %w", el.Kind(), ErrInvalidText)
		}
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: attrDescription}, Value: el.DescriptionOverride})
	}
	if err := e.enc.EncodeToken(start); err != nil {
		return err
	}
	e.elements++

	if err := e.encodeAttributes(el); err != nil {
		return err
	}

	children := xml.StartElement{Name: xml.Name{Local: tagChildren}}
	if err := e.enc.EncodeToken(children); err != nil {
		return err
	}
	for _, c := range el.Children() {
		if err := e.Encode(c); err != nil {
			return err
		}
	}
	if err := e.enc.EncodeToken(children.End()); err != nil {
		return err
	}
	return e.enc.EncodeToken(start.End())
}

func (e *Encoder) encodeAttributes(el *element.Element) error {
	block := xml.StartElement{Name: xml.Name{Local: tagAttributes}}
	if err := e.enc.EncodeToken(block); err != nil {
		return err
	}
	for _, a := range el.Attributes() {
		if err := a.Check(); err != nil {
			return fmt.Errorf("%s.%w", el.Kind(), err)
		}
		text := a.Text()
		if !validText(text) {
			return fmt.Errorf("%s.%s: %w", el.Kind(), a.Name, ErrInvalidText)
		}
		value := xml.StartElement{
			Name: xml.Name{Local: tagValue},
			Attr: []xml.Attr{
				{Name: xml.Name{Local: attrName}, Value: a.DisplayName()},
				{Name: xml.Name{Local: attrType}, Value: a.Type.String()},
			},
		}
		if err := e.enc.EncodeToken(value); err != nil {
			return err
		}
		if err := e.enc.EncodeToken(xml.CharData(text)); err != nil {
			return err
		}
		if err := e.enc.EncodeToken(value.End()); err != nil {
			return err
		}
	}
	return e.enc.EncodeToken(block.End())
}

// Flush writes buffered output to the underlying writer.
func (e *Encoder) Flush() error {
	return e.enc.Flush()
}
