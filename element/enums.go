package element

type PoleSpecies int

const (
	SouthernPine PoleSpecies = iota
	DouglasFir
	WesternRedCedar
	LodgepolePine
	WesternLarch
	PonderosaPine
)

var poleSpecies = newEnumSet("Species", plain("Southern_Pine", "Douglas_Fir", "Western_Red_Cedar", "Lodgepole_Pine", "Western_Larch", "Ponderosa_Pine")...)

func (p PoleSpecies) String() string { return poleSpecies.Display(int(p)) }
func (p PoleSpecies) Ordinal() int { return int(p) }
func (PoleSpecies) Enum() *EnumSet { return poleSpecies }
func (PoleSpecies) withOrdinal(i int) EnumValue { return PoleSpecies(i) }

// ParsePoleSpecies maps a display string or member name to a PoleSpecies.
func ParsePoleSpecies(s string) (PoleSpecies, error) {
	i, err := poleSpecies.Parse(s)
	return PoleSpecies(i), err
}

type PoleClass int

const (
	ClassH3 PoleClass = iota
	ClassH2
	ClassH1
	Class1
	Class2
	Class3
	Class4
	Class5
	Class6
	Class7
)

var poleClasses = newEnumSet("Class",
	member{"Class_H3", "H3"},
	member{"Class_H2", "H2"},
	member{"Class_H1", "H1"},
	member{"Class_1", "1"},
	member{"Class_2", "2"},
	member{"Class_3", "3"},
	member{"Class_4", "4"},
	member{"Class_5", "5"},
	member{"Class_6", "6"},
	member{"Class_7", "7"},
)

func (p PoleClass) String() string { return poleClasses.Display(int(p)) }
func (p PoleClass) Ordinal() int { return int(p) }
func (PoleClass) Enum() *EnumSet { return poleClasses }
func (PoleClass) withOrdinal(i int) EnumValue { return PoleClass(i) }

// ParsePoleClass maps a display string or member name to a PoleClass.
func ParsePoleClass(s string) (PoleClass, error) {
	i, err := poleClasses.Parse(s)
	return PoleClass(i), err
}

type SteelPoleShape int

const (
	ShapeRound SteelPoleShape = iota
	ShapeOctagonal
	ShapeDodecagonal
)

var steelPoleShapes = newEnumSet("Shape", plain("Round", "Octagonal", "Dodecagonal")...)

func (s SteelPoleShape) String() string { return steelPoleShapes.Display(int(s)) }
func (s SteelPoleShape) Ordinal() int { return int(s) }
func (SteelPoleShape) Enum() *EnumSet { return steelPoleShapes }
func (SteelPoleShape) withOrdinal(i int) EnumValue { return SteelPoleShape(i) }

// ParseSteelPoleShape maps a display string or member name to a SteelPoleShape.
func ParseSteelPoleShape(s string) (SteelPoleShape, error) {
	i, err := steelPoleShapes.Parse(s)
	return SteelPoleShape(i), err
}

type StructureType int

const (
	StructureHFrame StructureType = iota
	StructureAFrame
	StructureThreePole
)

var structureTypes = newEnumSet("StructureType",
	member{"H_Frame", "H-Frame"},
	member{"A_Frame", "A-Frame"},
	member{"Three_Pole", "Three Pole"},
)

func (s StructureType) String() string { return structureTypes.Display(int(s)) }
func (s StructureType) Ordinal() int { return int(s) }
func (StructureType) Enum() *EnumSet { return structureTypes }
func (StructureType) withOrdinal(i int) EnumValue { return StructureType(i) }

// ParseStructureType maps a display string or member name to a StructureType.
func ParseStructureType(s string) (StructureType, error) {
	i, err := structureTypes.Parse(s)
	return StructureType(i), err
}

type CrossarmMaterial int

const (
	CrossarmWood CrossarmMaterial = iota
	CrossarmFiberglass
	CrossarmSteel
)

var crossarmMaterials = newEnumSet("CrossarmMaterial", plain("Wood", "Fiberglass", "Steel")...)

func (c CrossarmMaterial) String() string { return crossarmMaterials.Display(int(c)) }
func (c CrossarmMaterial) Ordinal() int { return int(c) }
func (CrossarmMaterial) Enum() *EnumSet { return crossarmMaterials }
func (CrossarmMaterial) withOrdinal(i int) EnumValue { return CrossarmMaterial(i) }

// ParseCrossarmMaterial maps a display string or member name to a CrossarmMaterial.
func ParseCrossarmMaterial(s string) (CrossarmMaterial, error) {
	i, err := crossarmMaterials.Parse(s)
	return CrossarmMaterial(i), err
}

type InsulatorType int

const (
	InsulatorPin InsulatorType = iota
	InsulatorPost
	InsulatorDeadEnd
	InsulatorSuspension
	InsulatorSpool
	InsulatorBolt
)

var insulatorTypes = newEnumSet("InsulatorType", plain("Pin", "Post", "Dead_End", "Suspension", "Spool", "Bolt")...)

func (i InsulatorType) String() string { return insulatorTypes.Display(int(i)) }
func (i InsulatorType) Ordinal() int { return int(i) }
func (InsulatorType) Enum() *EnumSet { return insulatorTypes }
func (InsulatorType) withOrdinal(i int) EnumValue { return InsulatorType(i) }

// ParseInsulatorType maps a display string or member name to an InsulatorType.
func ParseInsulatorType(s string) (InsulatorType, error) {
	i, err := insulatorTypes.Parse(s)
	return InsulatorType(i), err
}

type SpanType int

const (
	SpanPrimary SpanType = iota
	SpanSecondary
	SpanNeutral
	SpanService
	SpanCommunication
	SpanFiber
)

var spanTypes = newEnumSet("SpanType", plain("Primary", "Secondary", "Neutral", "Service", "Communication", "Fiber_Optic")...)

func (s SpanType) String() string { return spanTypes.Display(int(s)) }
func (s SpanType) Ordinal() int { return int(s) }
func (SpanType) Enum() *EnumSet { return spanTypes }
func (SpanType) withOrdinal(i int) EnumValue { return SpanType(i) }

// ParseSpanType maps a display string or member name to a SpanType.
func ParseSpanType(s string) (SpanType, error) {
	i, err := spanTypes.Parse(s)
	return SpanType(i), err
}

type AnchorType int

const (
	AnchorScrew AnchorType = iota
	AnchorPlate
	AnchorLogDeadman
	AnchorRock
)

var anchorTypes = newEnumSet("AnchorType", plain("Screw", "Plate", "Log_Deadman", "Rock")...)

func (a AnchorType) String() string { return anchorTypes.Display(int(a)) }
func (a AnchorType) Ordinal() int { return int(a) }
func (AnchorType) Enum() *EnumSet { return anchorTypes }
func (AnchorType) withOrdinal(i int) EnumValue { return AnchorType(i) }

// ParseAnchorType maps a display string or member name to an AnchorType.
func ParseAnchorType(s string) (AnchorType, error) {
	i, err := anchorTypes.Parse(s)
	return AnchorType(i), err
}

type GuyBraceType int

const (
	GuyDown GuyBraceType = iota
	GuySpan
	GuySidewalk
	BracePush
)

var guyBraceTypes = newEnumSet("GuyBraceType", plain("Down_Guy", "Span_Guy", "Sidewalk_Guy", "Push_Brace")...)

func (g GuyBraceType) String() string { return guyBraceTypes.Display(int(g)) }
func (g GuyBraceType) Ordinal() int { return int(g) }
func (GuyBraceType) Enum() *EnumSet { return guyBraceTypes }
func (GuyBraceType) withOrdinal(i int) EnumValue { return GuyBraceType(i) }

// ParseGuyBraceType maps a display string or member name to a GuyBraceType.
func ParseGuyBraceType(s string) (GuyBraceType, error) {
	i, err := guyBraceTypes.Parse(s)
	return GuyBraceType(i), err
}

type EquipmentType int

const (
	EquipmentTransformer EquipmentType = iota
	EquipmentRecloser
	EquipmentCapacitor
	EquipmentSwitch
	EquipmentRegulator
)

var equipmentTypes = newEnumSet("EquipmentType", plain("Transformer", "Recloser", "Capacitor", "Switch", "Regulator")...)

func (e EquipmentType) String() string { return equipmentTypes.Display(int(e)) }
func (e EquipmentType) Ordinal() int { return int(e) }
func (EquipmentType) Enum() *EnumSet { return equipmentTypes }
func (EquipmentType) withOrdinal(i int) EnumValue { return EquipmentType(i) }

// ParseEquipmentType maps a display string or member name to an EquipmentType.
func ParseEquipmentType(s string) (EquipmentType, error) {
	i, err := equipmentTypes.Parse(s)
	return EquipmentType(i), err
}

type RestorationType int

const (
	RestorationTruss RestorationType = iota
	RestorationSteel
	RestorationFiberglass
)

var restorationTypes = newEnumSet("RestorationType", plain("Truss", "Steel", "Fiberglass")...)

func (r RestorationType) String() string { return restorationTypes.Display(int(r)) }
func (r RestorationType) Ordinal() int { return int(r) }
func (RestorationType) Enum() *EnumSet { return restorationTypes }
func (RestorationType) withOrdinal(i int) EnumValue { return RestorationType(i) }

// ParseRestorationType maps a display string or member name to a RestorationType.
func ParseRestorationType(s string) (RestorationType, error) {
	i, err := restorationTypes.Parse(s)
	return RestorationType(i), err
}

type ConstructionGrade int

const (
	GradeB ConstructionGrade = iota
	GradeC
	GradeN
)

var constructionGrades = newEnumSet("ConstructionGrade", plain("Grade_B", "Grade_C", "Grade_N")...)

func (c ConstructionGrade) String() string { return constructionGrades.Display(int(c)) }
func (c ConstructionGrade) Ordinal() int { return int(c) }
func (ConstructionGrade) Enum() *EnumSet { return constructionGrades }
func (ConstructionGrade) withOrdinal(i int) EnumValue { return ConstructionGrade(i) }

// ParseConstructionGrade maps a display string or member name to a ConstructionGrade.
func ParseConstructionGrade(s string) (ConstructionGrade, error) {
	i, err := constructionGrades.Parse(s)
	return ConstructionGrade(i), err
}

type LoadDistrict int

const (
	DistrictHeavy LoadDistrict = iota
	DistrictMedium
	DistrictLight
	DistrictExtremeWind
)

var loadDistricts = newEnumSet("LoadDistrict", plain("Heavy", "Medium", "Light", "Extreme_Wind")...)

func (l LoadDistrict) String() string { return loadDistricts.Display(int(l)) }
func (l LoadDistrict) Ordinal() int { return int(l) }
func (LoadDistrict) Enum() *EnumSet { return loadDistricts }
func (LoadDistrict) withOrdinal(i int) EnumValue { return LoadDistrict(i) }

// ParseLoadDistrict maps a display string or member name to a LoadDistrict.
func ParseLoadDistrict(s string) (LoadDistrict, error) {
	i, err := loadDistricts.Parse(s)
	return LoadDistrict(i), err
}

type DecayType int

const (
	DecayShellRot DecayType = iota
	DecayHeartRot
	DecayWoodpecker
	DecayMechanical
)

var decayTypes = newEnumSet("DecayType", plain("Shell_Rot", "Heart_Rot", "Woodpecker", "Mechanical_Damage")...)

func (d DecayType) String() string { return decayTypes.Display(int(d)) }
func (d DecayType) Ordinal() int { return int(d) }
func (DecayType) Enum() *EnumSet { return decayTypes }
func (DecayType) withOrdinal(i int) EnumValue { return DecayType(i) }

// ParseDecayType maps a display string or member name to a DecayType.
func ParseDecayType(s string) (DecayType, error) {
	i, err := decayTypes.Parse(s)
	return DecayType(i), err
}
