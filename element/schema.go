package element

func str(name, def string) Spec { return Spec{name, TypeString, def} }
func dbl(name string, def float64) Spec { return Spec{name, TypeDouble, def} }
func i32(name string, def int32) Spec { return Spec{name, TypeInt32, def} }
func boolean(name string, def bool) Spec { return Spec{name, TypeBoolean, def} }
func enum(name string, def EnumValue) Spec { return Spec{name, TypeEnum, def} }

// schemas holds the ordered attribute declarations of every kind. Order is
// document order.
var schemas = [kindCount][]Spec{
	Scene: {
		str("Job_Name", ""),
		str("Location", ""),
		dbl("Latitude", 0),
		dbl("Longitude", 0),
	},
	WoodPole: {
		str("Owner", ""),
		str("Pole_Number", ""),
		str("Pole_Tag", ""),
		enum("Species", SouthernPine),
		enum("Class", Class2),
		dbl("LengthInInches", 480),
		dbl("SettingDepthInInches", 72),
		dbl("GLCircumferenceInInches", 37),
		dbl("LeanAngle", 0),
		dbl("LeanDirection", 0),
		i32("Year_Installed", 0),
	},
	SteelPole: {
		str("Owner", ""),
		str("Pole_Number", ""),
		str("Pole_Tag", ""),
		enum("Shape", ShapeDodecagonal),
		dbl("LengthInInches", 600),
		dbl("SettingDepthInInches", 84),
		dbl("TopDiameterInInches", 6),
		dbl("ButtDiameterInInches", 14),
		dbl("WallThicknessInInches", 0.25),
		boolean("Galvanized", true),
	},
	ConcretePole: {
		str("Owner", ""),
		str("Pole_Number", ""),
		str("Pole_Tag", ""),
		dbl("LengthInInches", 540),
		dbl("SettingDepthInInches", 78),
		dbl("TopDiameterInInches", 8),
		dbl("ButtDiameterInInches", 16),
		boolean("Prestressed", true),
	},
	CompositePole: {
		str("Owner", ""),
		str("Pole_Number", ""),
		str("Pole_Tag", ""),
		str("Manufacturer", ""),
		enum("Class", Class3),
		dbl("LengthInInches", 480),
		dbl("SettingDepthInInches", 72),
	},
	MultiPoleStructure: {
		str("Owner", ""),
		enum("Structure_Type", StructureHFrame),
		dbl("SpacingInInches", 120),
	},
	Crossarm: {
		str("Owner", ""),
		enum("Type", CrossarmWood),
		dbl("LengthInInches", 96),
		dbl("CoordinateZ", 450),
		dbl("CoordinateA", 0),
		boolean("Offset", false),
		i32("Quantity", 1),
	},
	Insulator: {
		str("Owner", ""),
		enum("Type", InsulatorPin),
		dbl("CoordinateX", 0),
		dbl("CoordinateZ", 0),
		dbl("CoordinateA", 0),
		dbl("LengthInInches", 12),
	},
	Span: {
		str("Owner", ""),
		enum("Type", SpanPrimary),
		str("Conductor", ""),
		dbl("SpanDistanceInInches", 1800),
		dbl("CoordinateA", 0),
		dbl("SpanEndHeightDelta", 0),
		dbl("TensionInLbs", 0),
	},
	SpanBundle: {
		str("Owner", ""),
		str("Messenger", ""),
		dbl("SpanDistanceInInches", 1800),
		dbl("CoordinateA", 0),
	},
	Tap: {
		str("Owner", ""),
		dbl("OffsetInInches", 0),
		dbl("CoordinateA", 0),
	},
	SpanAddition: {
		str("Description", ""),
		dbl("OffsetInInches", 0),
		dbl("WeightInLbs", 0),
		dbl("DiameterInInches", 0),
	},
	Clearance: {
		str("Description", ""),
		dbl("RequiredClearanceInInches", 0),
		dbl("MeasuredClearanceInInches", 0),
	},
	Anchor: {
		str("Owner", ""),
		enum("Type", AnchorScrew),
		dbl("CoordinateA", 0),
		dbl("DistanceInInches", 240),
		dbl("RodDiameterInInches", 0.75),
	},
	GuyBrace: {
		str("Owner", ""),
		enum("Type", GuyDown),
		str("Size", "3/8 EHS"),
		dbl("CoordinateZ", 0),
		dbl("CoordinateA", 0),
	},
	PowerEquipment: {
		str("Owner", ""),
		enum("Type", EquipmentTransformer),
		str("Description", ""),
		dbl("CoordinateZ", 0),
		dbl("CoordinateA", 0),
		dbl("WeightInLbs", 0),
	},
	Streetlight: {
		str("Owner", ""),
		dbl("CoordinateZ", 300),
		dbl("CoordinateA", 0),
		dbl("ArmLengthInInches", 72),
		dbl("WeightInLbs", 0),
	},
	Riser: {
		str("Owner", ""),
		dbl("CoordinateZ", 0),
		dbl("CoordinateA", 0),
		dbl("DiameterInInches", 3),
		dbl("LengthInInches", 360),
	},
	GenericEquipment: {
		str("Owner", ""),
		str("Description", ""),
		dbl("CoordinateZ", 0),
		dbl("CoordinateA", 0),
		dbl("WeightInLbs", 0),
		i32("Quantity", 1),
	},
	PoleRestoration: {
		enum("Type", RestorationTruss),
		str("Manufacturer", ""),
		dbl("LengthInInches", 120),
	},
	LoadCase: {
		str("Name", "NESC Grade C"),
		enum("Construction_Grade", GradeC),
		enum("Load_District", DistrictMedium),
		dbl("WindPressurePsf", 4),
		dbl("IceThicknessInInches", 0.25),
		dbl("TemperatureF", 15),
	},
	WoodPoleDamageOrDecay: {
		enum("Type", DecayShellRot),
		dbl("CoordinateZ", 0),
		dbl("CoordinateA", 0),
		dbl("DepthInInches", 0),
		dbl("WidthInInches", 0),
	},
	Notes: {
		str("Note", ""),
		str("Author", ""),
	},
}

// Schema returns the attribute declarations of a kind in document order.
func Schema(k Kind) []Spec {
	if !k.valid() {
		return nil
	}
	out := make([]Spec, len(schemas[k]))
	copy(out, schemas[k])
	return out
}

// LookupAttribute finds a declared attribute by name or display name.
func LookupAttribute(k Kind, name string) (int, Spec, bool) {
	if !k.valid() {
		return -1, Spec{}, false
	}
	for i, s := range schemas[k] {
		if s.Name == name || s.DisplayName() == name {
			return i, s, true
		}
	}
	return -1, Spec{}, false
}
