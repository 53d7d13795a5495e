package ppl

import (
	"bufio"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ddvk/ppl/element"
	"github.com/ddvk/ppl/metrics"
	log "github.com/sirupsen/logrus"
)

// DefaultFormatVersion is written by documents that do not set one.
const DefaultFormatVersion = 4

const (
	attrDate         = "DATE"
	attrUser         = "USER"
	attrWorkstation  = "WORKSTATION"
	attrVersion      = "VERSION"
	attrLoadCase     = "SELECTED_LOAD_CASE"
	dateLayout       = time.RFC3339
	documentFileMode = 0o644
)

var ErrNoRoot = errors.New("document has no root element")

// Document owns the top-level element of a structure, conventionally a
// Scene, together with the document settings.
type Document struct {
	Root             *element.Element
	SelectedLoadCase int
	FormatVersion    int

	// Saved is the stamp of the last read or write.
	Saved Metadata

	// Metadata supplies the stamp on write. HostMetadata when nil.
	Metadata MetadataFunc
	Recorder metrics.Recorder
}

// New returns a document around root with default settings.
func New(root *element.Element) *Document {
	return &Document{Root: root, FormatVersion: DefaultFormatVersion}
}

// SetRoot replaces the top-level element.
func (d *Document) SetRoot(root *element.Element) {
	d.Root = root
}

func (d *Document) recorder() metrics.Recorder {
	if d.Recorder == nil {
		return metrics.Nop{}
	}
	return d.Recorder
}

func (d *Document) stamp() Metadata {
	if d.Metadata == nil {
		return HostMetadata()
	}
	return d.Metadata()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// WriteTo writes the document node followed by the exported root subtree.
func (d *Document) WriteTo(w io.Writer) (n int64, err error) {
	start := time.Now()
	defer func() { d.recorder().Observe("export", err == nil, time.Since(start)) }()

	if d.Root == nil {
		return 0, ErrNoRoot
	}
	cw := &countingWriter{w: w}
	if _, err = io.WriteString(cw, xml.Header); err != nil {
		return cw.n, err
	}

	md := d.stamp()
	d.Saved = md
	version := d.FormatVersion
	if version == 0 {
		version = DefaultFormatVersion
	}
	root := xml.StartElement{Name: xml.Name{Local: tagDocument}}
	addAttr := func(name, value string) {
		if value != "" {
			root.Attr = append(root.Attr, xml.Attr{Name: xml.Name{Local: name}, Value: value})
		}
	}
	if !md.Date.IsZero() {
		addAttr(attrDate, md.Date.Format(dateLayout))
	}
	addAttr(attrUser, md.User)
	addAttr(attrWorkstation, md.Workstation)
	addAttr(attrVersion, strconv.Itoa(version))
	addAttr(attrLoadCase, strconv.Itoa(d.SelectedLoadCase))

	enc := NewEncoder(cw)
	if err = enc.enc.EncodeToken(root); err != nil {
		return cw.n, err
	}
	if err = enc.Encode(d.Root); err != nil {
		return cw.n, err
	}
	if err = enc.enc.EncodeToken(root.End()); err != nil {
		return cw.n, err
	}
	if err = enc.Flush(); err != nil {
		return cw.n, err
	}
	_, err = io.WriteString(cw, "\n")
	d.recorder().AddElements(enc.Elements())
	log.Debugf("exported %d elements, %d bytes", enc.Elements(), cw.n)
	return cw.n, err
}

// Save writes the document to path. The content goes to a temporary file
// in the same directory which then replaces path, so readers never see a
// partial document.
func (d *Document) Save(path string) (err error) {
	start := time.Now()
	defer func() { d.recorder().Observe("save", err == nil, time.Since(start)) }()

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	bw := bufio.NewWriter(tmp)
	if _, err = d.WriteTo(bw); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err = tmp.Chmod(documentFileMode); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	log.WithField("path", path).Info("saved document")
	return nil
}
