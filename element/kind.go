package element

import (
	"fmt"
	"strings"
)

// Kind identifies the concrete variant of an element.
type Kind byte

const (
	Scene Kind = iota
	WoodPole
	SteelPole
	ConcretePole
	CompositePole
	MultiPoleStructure
	Crossarm
	Insulator
	Span
	SpanBundle
	Tap
	SpanAddition
	Clearance
	Anchor
	GuyBrace
	PowerEquipment
	Streetlight
	Riser
	GenericEquipment
	PoleRestoration
	LoadCase
	WoodPoleDamageOrDecay
	Notes

	kindCount
)

var kindNames = [kindCount]string{
	Scene:                 "Scene",
	WoodPole:              "WoodPole",
	SteelPole:             "SteelPole",
	ConcretePole:          "ConcretePole",
	CompositePole:         "CompositePole",
	MultiPoleStructure:    "MultiPoleStructure",
	Crossarm:              "Crossarm",
	Insulator:             "Insulator",
	Span:                  "Span",
	SpanBundle:            "SpanBundle",
	Tap:                   "Tap",
	SpanAddition:          "SpanAddition",
	Clearance:             "Clearance",
	Anchor:                "Anchor",
	GuyBrace:              "GuyBrace",
	PowerEquipment:        "PowerEquipment",
	Streetlight:           "Streetlight",
	Riser:                 "Riser",
	GenericEquipment:      "GenericEquipment",
	PoleRestoration:       "PoleRestoration",
	LoadCase:              "LoadCase",
	WoodPoleDamageOrDecay: "WoodPoleDamageOrDecay",
	Notes:                 "Notes",
}

func (k Kind) valid() bool {
	return k < kindCount
}

func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", byte(k))
	}
	return kindNames[k]
}

// Tag is the document node name of the kind.
func (k Kind) Tag() string {
	switch k {
	case Scene:
		return "PPLScene"
	}
	return k.String()
}

// IsPole reports whether the kind is one of the single pole variants.
func (k Kind) IsPole() bool {
	switch k {
	case WoodPole, SteelPole, ConcretePole, CompositePole:
		return true
	}
	return false
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// KindFromTag resolves a document tag, or a kind name, to its Kind.
func KindFromTag(tag string) (Kind, error) {
	tag = strings.TrimSpace(tag)
	for k := Kind(0); k < kindCount; k++ {
		if k.Tag() == tag || k.String() == tag {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, tag)
}
