package scene

// Kind is the X3D node type of a node.
type Kind int

const (
	KindTransform Kind = iota
	KindShape
	KindRectangle2D
	KindAppearance
	KindMaterial
	KindText
	KindFontStyle
	KindTouchSensor
	KindBooleanTrigger
	KindIntegerSequencer
	KindSwitch
)

var kindInfo = map[Kind]struct {
	name      string
	container string
}{
	KindTransform:        {"Transform", "children"},
	KindShape:            {"Shape", "children"},
	KindRectangle2D:      {"Rectangle2D", "geometry"},
	KindAppearance:       {"Appearance", "appearance"},
	KindMaterial:         {"Material", "material"},
	KindText:             {"Text", "geometry"},
	KindFontStyle:        {"FontStyle", "fontStyle"},
	KindTouchSensor:      {"TouchSensor", "children"},
	KindBooleanTrigger:   {"BooleanTrigger", "children"},
	KindIntegerSequencer: {"IntegerSequencer", "children"},
	KindSwitch:           {"Switch", "children"},
}

// String returns the X3D element name.
func (k Kind) String() string {
	if info, ok := kindInfo[k]; ok {
		return info.name
	}
	return "Unknown"
}

// ContainerField is the parent field a node of this kind fills by default.
func (k Kind) ContainerField() string {
	return kindInfo[k].container
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	_, ok := kindInfo[k]
	return ok
}

// Grouping reports whether nodes of this kind hold a children list.
func (k Kind) Grouping() bool {
	return k == KindTransform || k == KindSwitch
}

// Field names used by the interaction chain and its routes.
const (
	FieldTouchTime      = "touchTime"
	FieldSetTriggerTime = "set_triggerTime"
	FieldTriggerTrue    = "triggerTrue"
	FieldNext           = "next"
	FieldValueChanged   = "value_changed"
	FieldWhichChoice    = "whichChoice"
)
