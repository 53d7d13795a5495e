package ppl

import (
	"bufio"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/ddvk/ppl/element"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/net/html/charset"
)

var (
	ErrNotPPL        = errors.New("not a PPL document")
	ErrMultipleRoots = errors.New("document has more than one root element")
)

// Open reads the PPL document at path.
func Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := Read(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Read parses a PPL document. Element ids are restored from the document
// and must be unique; children are attached through AddChild, so the
// containment rules hold for imported trees too.
func Read(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel
	d := &documentReader{dec: dec, ids: element.NewIDMap()}
	return d.read()
}

type documentReader struct {
	dec *xml.Decoder
	ids *element.IDMap
}

func (d *documentReader) read() (*Document, error) {
	start, err := d.nextStart()
	if err != nil {
		if err == io.EOF {
			return nil, ErrNotPPL
		}
		return nil, err
	}
	if start.Name.Local != tagDocument {
		return nil, fmt.Errorf("%w: root node is %s", ErrNotPPL, start.Name.Local)
	}
	doc := &Document{FormatVersion: DefaultFormatVersion}
	d.readSettings(doc, start)

	for {
		tok, err := d.dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if doc.Root != nil {
				return nil, ErrMultipleRoots
			}
			doc.Root, err = d.readElement(t)
			if err != nil {
				return nil, err
			}
		case xml.EndElement:
			if doc.Root == nil {
				return nil, ErrNoRoot
			}
			log.Debugf("read document with %d elements", d.ids.Len())
			return doc, nil
		}
	}
}

func (d *documentReader) nextStart() (xml.StartElement, error) {
	for {
		tok, err := d.dec.Token()
		if err != nil {
			return xml.StartElement{}, err
		}
		if se, ok := tok.(xml.StartElement); ok {
			return se, nil
		}
	}
}

func (d *documentReader) readSettings(doc *Document, start xml.StartElement) {
	for _, a := range start.Attr {
		switch a.Name.Local {
		case attrDate:
			if t, err := time.Parse(dateLayout, a.Value); err == nil {
				doc.Saved.Date = t
			} else {
				log.Warnf("ignoring document date %q", a.Value)
			}
		case attrUser:
			doc.Saved.User = a.Value
		case attrWorkstation:
			doc.Saved.Workstation = a.Value
		case attrVersion:
			if v, err := strconv.Atoi(a.Value); err == nil {
				doc.FormatVersion = v
			}
		case attrLoadCase:
			if v, err := strconv.Atoi(a.Value); err == nil {
				doc.SelectedLoadCase = v
			}
		}
	}
}

func (d *documentReader) readElement(start xml.StartElement) (*element.Element, error) {
	kind, err := element.KindFromTag(start.Name.Local)
	if err != nil {
		return nil, err
	}
	el := element.New(kind)

	var id uuid.UUID
	for _, a := range start.Attr {
		switch a.Name.Local {
		case attrID:
			if id, err = uuid.Parse(a.Value); err != nil {
				return nil, fmt.Errorf("%s: bad id %q: %w", kind, a.Value, err)
			}
		case attrDescription:
			el.DescriptionOverride = a.Value
		}
	}
	if id != uuid.Nil {
		err = d.ids.Rebind(el, id)
	} else {
		err = d.ids.Add(el)
	}
	if err != nil {
		return nil, err
	}

	for {
		tok, err := d.dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case tagAttributes:
				err = d.readAttributes(el)
			case tagChildren:
				err = d.readChildren(el)
			default:
				log.Warnf("%s: skipping unexpected block %s", kind, t.Name.Local)
				err = d.dec.Skip()
			}
			if err != nil {
				return nil, err
			}
		case xml.EndElement:
			return el, nil
		}
	}
}

type valueNode struct {
	Name string `xml:"NAME,attr"`
	Type string `xml:"TYPE,attr"`
	Text string `xml:",chardata"`
}

func (d *documentReader) readAttributes(el *element.Element) error {
	for {
		tok, err := d.dec.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != tagValue {
				if err := d.dec.Skip(); err != nil {
					return err
				}
				continue
			}
			var v valueNode
			if err := d.dec.DecodeElement(&v, &t); err != nil {
				return err
			}
			if _, spec, ok := element.LookupAttribute(el.Kind(), v.Name); ok && v.Type != "" && v.Type != spec.Type.String() {
				log.Warnf("%s.%s: declared %s, reading as %s", el.Kind(), spec.Name, v.Type, spec.Type)
			}
			if err := el.SetText(v.Name, v.Text); err != nil {
				if errors.Is(err, element.ErrUnknownAttribute) {
					log.Warnf("%s: skipping unknown attribute %q", el.Kind(), v.Name)
					continue
				}
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

func (d *documentReader) readChildren(parent *element.Element) error {
	for {
		tok, err := d.dec.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := d.readElement(t)
			if err != nil {
				return err
			}
			if err := parent.AddChild(child); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}
