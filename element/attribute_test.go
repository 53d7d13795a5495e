package element

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema_DefaultsMatchDeclaredTypes(t *testing.T) {
	for _, k := range Kinds() {
		specs := Schema(k)
		require.NotEmpty(t, specs, k.String())
		names := make(map[string]bool)
		for _, s := range specs {
			require.False(t, names[s.Name], "%s declares %s twice", k, s.Name)
			names[s.Name] = true
			_, err := coerce(s, s.Default)
			require.NoError(t, err, "%s.%s", k, s.Name)
		}
	}
}

func TestAttributes_Defaults(t *testing.T) {
	pole := New(WoodPole)
	assert.Equal(t, 480.0, pole.Float("LengthInInches"))
	v, ok := pole.Get("Class")
	require.True(t, ok)
	assert.Equal(t, Class2, v)
	assert.Equal(t, "2", pole.Text("Class"))

	blank := NewBlank(WoodPole)
	assert.Zero(t, blank.Float("LengthInInches"))
	v, _ = blank.Get("Class")
	assert.Equal(t, ClassH3, v)
	assert.Equal(t, "", blank.Text("Owner"))

	attrs := pole.Attributes()
	require.Len(t, attrs, len(Schema(WoodPole)))
	assert.Equal(t, "Owner", attrs[0].Name)
	assert.Equal(t, "Pole Number", attrs[1].DisplayName())
}

func TestSet(t *testing.T) {
	e := New(Insulator)
	require.NoError(t, e.Set("CoordinateZ", 480))
	assert.Equal(t, 480.0, e.Float("CoordinateZ"))
	require.NoError(t, e.Set("Type", InsulatorDeadEnd))
	assert.Equal(t, "Dead End", e.Text("Type"))
	require.NoError(t, e.Set("Type", "Post"))
	assert.Equal(t, "Post", e.Text("Type"))

	assert.ErrorIs(t, e.Set("Type", "Hook"), ErrEnumMapping)
	assert.ErrorIs(t, e.Set("Type", SpanPrimary), ErrAttributeType)
	assert.ErrorIs(t, e.Set("CoordinateZ", "high"), ErrAttributeType)
	assert.ErrorIs(t, e.Set("Height", 1.0), ErrUnknownAttribute)

	arm := New(Crossarm)
	require.NoError(t, arm.Set("Quantity", 2))
	assert.Equal(t, int32(2), arm.Int("Quantity"))
	assert.ErrorIs(t, arm.Set("Quantity", math.MaxInt64), ErrAttributeType)
	require.NoError(t, arm.Set("Offset", true))
	assert.True(t, arm.Bool("Offset"))
}

func TestSetText(t *testing.T) {
	testCases := []struct {
		name    string
		kind    Kind
		attr    string
		text    string
		want    string
		wantErr error
	}{
		{name: "double", kind: Span, attr: "SpanDistanceInInches", text: "1800", want: "1800"},
		{name: "double fraction", kind: Span, attr: "CoordinateA", text: "3.141592653589793", want: "3.141592653589793"},
		{name: "display name", kind: WoodPole, attr: "Pole Number", text: "P-17", want: "P-17"},
		{name: "int", kind: Crossarm, attr: "Quantity", text: " 3 ", want: "3"},
		{name: "bool", kind: SteelPole, attr: "Galvanized", text: "false", want: "false"},
		{name: "enum display", kind: WoodPole, attr: "Species", text: "Douglas Fir", want: "Douglas Fir"},
		{name: "enum ident", kind: WoodPole, attr: "Species", text: "Douglas_Fir", want: "Douglas Fir"},
		{name: "enum case", kind: WoodPole, attr: "Class", text: "h1", want: "H1"},
		{name: "bad enum", kind: WoodPole, attr: "Species", text: "Oak", wantErr: ErrEnumMapping},
		{name: "bad double", kind: Span, attr: "CoordinateA", text: "north", wantErr: ErrAttributeType},
		{name: "bad int", kind: Crossarm, attr: "Quantity", text: "1.5", wantErr: ErrAttributeType},
		{name: "unknown", kind: Span, attr: "Sag", text: "1", wantErr: ErrUnknownAttribute},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := New(tc.kind)
			err := e.SetText(tc.attr, tc.text)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			got, err := e.Format(tc.attr)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTypeNames(t *testing.T) {
	assert.Equal(t, "String", TypeString.String())
	assert.Equal(t, "Double", TypeDouble.String())
	assert.Equal(t, "Int32", TypeInt32.String())
	assert.Equal(t, "Boolean", TypeBoolean.String())
	assert.Equal(t, "String", TypeEnum.String())
}

func TestFormat_Pi(t *testing.T) {
	e := New(Span)
	require.NoError(t, e.Set("CoordinateA", math.Pi))
	assert.Equal(t, "3.141592653589793", e.Text("CoordinateA"))
}
