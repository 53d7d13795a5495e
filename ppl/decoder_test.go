package ppl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ddvk/ppl/element"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shape is a comparable snapshot of a subtree.
type shape struct {
	Tag         string
	ID          uuid.UUID
	Description string
	Values      []string
	Children    []shape
}

func snapshot(e *element.Element) shape {
	s := shape{Tag: e.TypeTag(), ID: e.ID(), Description: e.DescriptionOverride}
	for _, a := range e.Attributes() {
		s.Values = append(s.Values, a.Name+"="+a.Text())
	}
	for _, c := range e.Children() {
		s.Children = append(s.Children, snapshot(c))
	}
	return s
}

func TestRead_RoundTrip(t *testing.T) {
	scene := exampleScene(t)
	pole := scene.Children()[0]
	pole.DescriptionOverride = "Pole 17"
	require.NoError(t, pole.Set("Species", element.WesternRedCedar))
	require.NoError(t, pole.Set("Year_Installed", 1987))
	arm := element.New(element.Crossarm)
	require.NoError(t, arm.Set("Offset", true))
	require.NoError(t, pole.AddChild(arm))
	require.NoError(t, pole.AddChild(element.New(element.Notes)))

	doc := New(scene)
	doc.Metadata = fixedMetadata
	doc.SelectedLoadCase = 1
	doc.FormatVersion = 5

	got, err := Read(bytes.NewReader(render(t, doc)))
	require.NoError(t, err)
	if diff := cmp.Diff(snapshot(scene), snapshot(got.Root)); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, got.SelectedLoadCase)
	assert.Equal(t, 5, got.FormatVersion)
	assert.Equal(t, fixedStamp.User, got.Saved.User)
	assert.Equal(t, fixedStamp.Workstation, got.Saved.Workstation)
	assert.True(t, fixedStamp.Date.Equal(got.Saved.Date))

	// parent links are rebuilt
	for _, c := range got.Root.Children() {
		assert.Same(t, got.Root, c.Parent())
	}

	// re-export of the imported tree is identical
	again := New(got.Root)
	again.Metadata = fixedMetadata
	again.SelectedLoadCase = 1
	again.FormatVersion = 5
	assert.Equal(t, string(render(t, doc)), string(render(t, again)))
}

const header = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

func TestRead_Errors(t *testing.T) {
	dup := uuid.New().String()
	testCases := []struct {
		name    string
		input   string
		wantErr error
		match   string
	}{
		{name: "empty", input: "", wantErr: ErrNotPPL},
		{name: "wrong root", input: header + `<SVG/>`, wantErr: ErrNotPPL},
		{name: "no element", input: header + `<PPL></PPL>`, wantErr: ErrNoRoot},
		{
			name:    "two roots",
			input:   header + `<PPL><PPLScene></PPLScene><PPLScene></PPLScene></PPL>`,
			wantErr: ErrMultipleRoots,
		},
		{
			name:    "unknown tag",
			input:   header + `<PPL><Transformer></Transformer></PPL>`,
			wantErr: element.ErrUnknownKind,
		},
		{
			name:    "illegal nesting",
			input:   header + `<PPL><PPLScene><PPLChildElements><Span></Span></PPLChildElements></PPLScene></PPL>`,
			wantErr: element.ErrContainment,
		},
		{
			name: "bad enum",
			input: header + `<PPL><PPLScene><PPLChildElements><WoodPole><ATTRIBUTES>` +
				`<VALUE NAME="Species" TYPE="String">Oak</VALUE></ATTRIBUTES></WoodPole></PPLChildElements></PPLScene></PPL>`,
			wantErr: element.ErrEnumMapping,
		},
		{
			name: "duplicate id",
			input: header + `<PPL><PPLScene ID="` + dup + `"><PPLChildElements>` +
				`<WoodPole ID="` + dup + `"></WoodPole></PPLChildElements></PPLScene></PPL>`,
			wantErr: element.ErrDuplicateID,
		},
		{name: "bad id", input: header + `<PPL><PPLScene ID="nope"></PPLScene></PPL>`, match: "bad id"},
		{name: "truncated", input: header + `<PPL><PPLScene><ATTRIBUTES>`, match: "EOF"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tc.input))
			require.Error(t, err)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			}
			if tc.match != "" {
				assert.Contains(t, err.Error(), tc.match)
			}
		})
	}
}

func TestRead_TolerantOfUnknownBlocks(t *testing.T) {
	input := header + `<PPL VERSION="3">
<PPLScene>
  <ATTRIBUTES>
    <VALUE NAME="Job Name" TYPE="String">J-1</VALUE>
    <VALUE NAME="Crew Size" TYPE="Int32">4</VALUE>
    <COMMENT>ignored</COMMENT>
  </ATTRIBUTES>
  <LAYOUT><X>1</X></LAYOUT>
  <PPLChildElements>
    <WoodPole>
      <ATTRIBUTES><VALUE NAME="Class" TYPE="String">H1</VALUE></ATTRIBUTES>
    </WoodPole>
  </PPLChildElements>
</PPLScene>
</PPL>`
	doc, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 3, doc.FormatVersion)
	assert.Equal(t, "J-1", doc.Root.Text("Job_Name"))
	require.Equal(t, 1, doc.Root.ChildCount())
	pole := doc.Root.Children()[0]
	assert.Equal(t, element.WoodPole, pole.Kind())
	assert.Equal(t, "H1", pole.Text("Class"))
	// attributes absent from the document keep their defaults
	assert.Equal(t, 480.0, pole.Float("LengthInInches"))
	assert.NotEqual(t, uuid.Nil, pole.ID())
}

func TestRead_Latin1(t *testing.T) {
	// "Café" in ISO-8859-1
	input := []byte(`<?xml version="1.0" encoding="ISO-8859-1"?>` +
		`<PPL><PPLScene><ATTRIBUTES><VALUE NAME="Location" TYPE="String">Caf` + "\xe9" +
		`</VALUE></ATTRIBUTES></PPLScene></PPL>`)
	doc, err := Read(bytes.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "Café", doc.Root.Text("Location"))
}

func TestRoundTrip_Text(t *testing.T) {
	testCases := []struct {
		name        string
		location    string
		description string
		wantErr     bool
	}{
		{name: "whitespace and markup", location: "tab\there\r\nnext <&> \"q\"", description: "line\none"},
		{name: "outside the BMP", location: "pole \U0001F50C", description: "\u00e9t\u00e9"},
		{name: "control character", location: "a\x01b\x00c", wantErr: true},
		{name: "control in description", description: "x\x02y", wantErr: true},
		{name: "invalid utf-8", location: "caf\xe9", wantErr: true},
		{name: "noncharacter", location: "\uFFFE", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			scene := element.New(element.Scene)
			require.NoError(t, scene.Set("Location", tc.location))
			scene.DescriptionOverride = tc.description
			doc := New(scene)
			doc.Metadata = fixedMetadata

			var buf bytes.Buffer
			_, err := doc.WriteTo(&buf)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidText)
				return
			}
			require.NoError(t, err)
			back, err := Read(&buf)
			require.NoError(t, err)
			assert.Equal(t, tc.location, back.Root.Text("Location"))
			assert.Equal(t, tc.description, back.Root.DescriptionOverride)
		})
	}
}

func TestRead_DeclaredTypeMismatch(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	input := `<PPL><WoodPole><ATTRIBUTES>` +
		`<VALUE NAME="LengthInInches" TYPE="String">500</VALUE>` +
		`<VALUE NAME="Owner" TYPE="String">Coop</VALUE>` +
		`</ATTRIBUTES></WoodPole></PPL>`
	doc, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 500.0, doc.Root.Float("LengthInInches"))
	assert.Equal(t, "Coop", doc.Root.Text("Owner"))

	var warnings []string
	for _, e := range hook.AllEntries() {
		if e.Level == log.WarnLevel {
			warnings = append(warnings, e.Message)
		}
	}
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "LengthInInches")
	assert.Contains(t, warnings[0], "Double")
}
