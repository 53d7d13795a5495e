// Package hcldef builds element trees from HCL structure definitions.
//
// Every block is an element, named by its type tag or kind name. Block
// attributes set element attributes and nested blocks become children:
//
//	PPLScene {
//	  WoodPole "Pole 17" {
//	    LengthInInches = feet(40)
//	    Insulator {
//	      Type = "Pin"
//	      Span { CoordinateA = pi }
//	    }
//	  }
//	}
//
// An optional document block carries the document settings.
package hcldef

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ddvk/ppl/element"
	"github.com/ddvk/ppl/ppl"
	"github.com/google/uuid"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	log "github.com/sirupsen/logrus"
)

const (
	blockDocument   = "document"
	attrID          = "id"
	attrDescription = "description"
)

// Structure is a definition file turned into an element tree.
type Structure struct {
	Name             string
	Path             string
	Root             *element.Element
	SelectedLoadCase int
	FormatVersion    int
}

// Document wraps the structure for export.
func (s *Structure) Document() *ppl.Document {
	doc := ppl.New(s.Root)
	doc.SelectedLoadCase = s.SelectedLoadCase
	if s.FormatVersion != 0 {
		doc.FormatVersion = s.FormatVersion
	}
	return doc
}

type documentBlock struct {
	SelectedLoadCase *int `hcl:"selected_load_case,optional"`
	FormatVersion    *int `hcl:"format_version,optional"`
}

// Load parses the definition at path.
func Load(ctx context.Context, path string) (*Structure, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(src, path)
}

// Parse builds a structure from definition source. filename is used for
// diagnostics and to name the structure.
func Parse(src []byte, filename string) (*Structure, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, diags)
	}
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("%s: not native HCL syntax", filename)
	}

	b := &builder{ctx: evalContext(), ids: element.NewIDMap()}
	s := &Structure{
		Name: strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)),
		Path: filename,
	}
	diags = b.file(body, s)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to build %s: %w", filename, diags)
	}
	log.WithField("path", filename).Debugf("built %s with %d elements", s.Root.Kind(), b.ids.Len())
	return s, nil
}

type builder struct {
	ctx *hcl.EvalContext
	ids *element.IDMap
}

func (b *builder) file(body *hclsyntax.Body, s *Structure) hcl.Diagnostics {
	var diags hcl.Diagnostics
	for _, attr := range sortedAttributes(body) {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unexpected attribute",
			Detail:   fmt.Sprintf("Attribute %q must be set inside an element block.", attr.Name),
			Subject:  attr.NameRange.Ptr(),
		})
	}

	var seenDocument bool
	for _, block := range body.Blocks {
		if block.Type == blockDocument {
			if seenDocument {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  `Duplicate "document" block`,
					Detail:   `Only one "document" block is allowed.`,
					Subject:  block.DefRange().Ptr(),
				})
				continue
			}
			seenDocument = true
			diags = append(diags, b.settings(block, s)...)
			continue
		}

		el, elDiags := b.element(block)
		diags = append(diags, elDiags...)
		if el == nil {
			continue
		}
		if s.Root != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Multiple root elements",
				Detail:   fmt.Sprintf("The structure already has a %s root.", s.Root.Kind()),
				Subject:  block.DefRange().Ptr(),
			})
			continue
		}
		s.Root = el
	}
	if diags.HasErrors() {
		return diags
	}
	if s.Root == nil {
		return append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Missing root element",
			Detail:   "A structure needs one element block, usually PPLScene.",
		})
	}

	if s.Root.Kind() != element.Scene && element.CanContain(element.Scene, s.Root.Kind()) {
		scene := element.New(element.Scene)
		if err := scene.AddChild(s.Root); err != nil {
			return append(diags, errorDiag("Invalid structure", err, nil))
		}
		if err := b.ids.Add(scene); err != nil {
			return append(diags, errorDiag("Invalid structure", err, nil))
		}
		s.Root = scene
	}
	return diags
}

func (b *builder) settings(block *hclsyntax.Block, s *Structure) hcl.Diagnostics {
	var doc documentBlock
	diags := gohcl.DecodeBody(block.Body, b.ctx, &doc)
	if doc.SelectedLoadCase != nil {
		s.SelectedLoadCase = *doc.SelectedLoadCase
	}
	if doc.FormatVersion != nil {
		s.FormatVersion = *doc.FormatVersion
	}
	return diags
}

// element builds block and its nested blocks. It returns nil when the block
// itself cannot be turned into an element.
func (b *builder) element(block *hclsyntax.Block) (*element.Element, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	kind, err := element.KindFromTag(block.Type)
	if err != nil {
		return nil, append(diags, errorDiag("Unknown element type", err, block.TypeRange.Ptr()))
	}
	if len(block.Labels) > 1 {
		return nil, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Too many labels",
			Detail:   fmt.Sprintf("A %s block takes at most one label, its description.", kind),
			Subject:  block.LabelRanges[1].Ptr(),
		})
	}

	el := element.New(kind)
	if len(block.Labels) == 1 {
		el.DescriptionOverride = block.Labels[0]
	}

	var idSet bool
	for _, attr := range sortedAttributes(block.Body) {
		val, valDiags := attr.Expr.Value(b.ctx)
		diags = append(diags, valDiags...)
		if valDiags.HasErrors() {
			continue
		}
		switch attr.Name {
		case attrID:
			id, err := uuid.Parse(asString(val))
			if err == nil {
				err = b.ids.Rebind(el, id)
			}
			if err != nil {
				diags = append(diags, errorDiag("Invalid id", err, attr.Expr.Range().Ptr()))
				continue
			}
			idSet = true
		case attrDescription:
			el.DescriptionOverride = asString(val)
		default:
			if err := assign(el, attr.Name, val); err != nil {
				diags = append(diags, errorDiag("Invalid attribute", err, attr.SrcRange.Ptr()))
			}
		}
	}
	if !idSet {
		if err := b.ids.Add(el); err != nil {
			diags = append(diags, errorDiag("Invalid id", err, block.DefRange().Ptr()))
		}
	}

	for _, nested := range block.Body.Blocks {
		child, childDiags := b.element(nested)
		diags = append(diags, childDiags...)
		if child == nil {
			continue
		}
		if err := el.AddChild(child); err != nil {
			diags = append(diags, errorDiag("Invalid nesting", err, nested.DefRange().Ptr()))
		}
	}
	return el, diags
}

func sortedAttributes(body *hclsyntax.Body) []*hclsyntax.Attribute {
	attrs := make([]*hclsyntax.Attribute, 0, len(body.Attributes))
	for _, a := range body.Attributes {
		attrs = append(attrs, a)
	}
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].SrcRange.Start.Byte < attrs[j].SrcRange.Start.Byte
	})
	return attrs
}

func errorDiag(summary string, err error, subject *hcl.Range) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   err.Error(),
		Subject:  subject,
	}
}
