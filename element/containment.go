package element

var poleChildren = []Kind{
	Crossarm, PowerEquipment, Streetlight, Insulator, Riser, GenericEquipment,
	Anchor, PoleRestoration, LoadCase, WoodPoleDamageOrDecay, Notes,
}

var steelPoleChildren = []Kind{
	Crossarm, PowerEquipment, Streetlight, Insulator, Riser, GenericEquipment,
	Anchor, LoadCase, Notes,
}

// containment maps each parent kind to the kinds it may directly contain.
var containment = [kindCount][]Kind{
	Scene:                 {WoodPole, MultiPoleStructure},
	WoodPole:              poleChildren,
	ConcretePole:          poleChildren,
	CompositePole:         poleChildren,
	SteelPole:             steelPoleChildren,
	MultiPoleStructure:    {WoodPole, Crossarm, Notes},
	Crossarm:              {Insulator, Notes},
	Insulator:             {Span, SpanBundle, Notes},
	Span:                  {Tap, SpanAddition, Clearance, Notes},
	SpanBundle:            {Span, Tap, SpanAddition, Clearance, Notes},
	Tap:                   {Span, SpanBundle, Notes},
	Anchor:                {GuyBrace, Notes},
	GuyBrace:              {Clearance, Notes},
	GenericEquipment:      {GenericEquipment, Notes},
	LoadCase:              {Notes},
	Notes:                 {Notes},
	PowerEquipment:        {Notes},
	Streetlight:           {Notes},
	Riser:                 {Notes},
	PoleRestoration:       {Notes},
	Clearance:             {Notes},
	SpanAddition:          {Notes},
	WoodPoleDamageOrDecay: {Notes},
}

// CanContain reports whether parent may directly contain child.
func CanContain(parent, child Kind) bool {
	if !parent.valid() {
		return false
	}
	for _, k := range containment[parent] {
		if k == child {
			return true
		}
	}
	return false
}

// AllowedChildren returns the kinds parent may contain, in table order.
func AllowedChildren(parent Kind) []Kind {
	if !parent.valid() {
		return nil
	}
	out := make([]Kind, len(containment[parent]))
	copy(out, containment[parent])
	return out
}
