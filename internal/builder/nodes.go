package builder

import (
	"fmt"

	"github.com/vk/landmarkgrid/internal/scene"
)

// nodeSpec describes a node to create with its fields and children.
type nodeSpec struct {
	kind     scene.Kind
	fields   []scene.Field
	children []nodeSpec
}

func field(name string, v scene.Value) scene.Field {
	return scene.Field{Name: name, Value: v}
}

// create builds spec bottom-up and returns the handle of its top node.
func create(sc scene.Context, spec nodeSpec) (scene.Handle, error) {
	h, err := sc.CreateNode(spec.kind)
	if err != nil {
		return scene.NoHandle, fmt.Errorf("creating %s: %w", spec.kind, err)
	}
	for _, f := range spec.fields {
		if err := sc.SetField(h, f.Name, f.Value); err != nil {
			return scene.NoHandle, fmt.Errorf("setting %s.%s: %w", spec.kind, f.Name, err)
		}
	}
	for _, c := range spec.children {
		ch, err := create(sc, c)
		if err != nil {
			return scene.NoHandle, err
		}
		if err := sc.AppendChild(h, ch); err != nil {
			return scene.NoHandle, err
		}
	}
	return h, nil
}

// rectangleShape is one appearance variant of a cell.
func rectangleShape(size float64, color scene.SFColor) nodeSpec {
	return nodeSpec{
		kind: scene.KindShape,
		children: []nodeSpec{
			{kind: scene.KindRectangle2D, fields: []scene.Field{field("size", scene.SFVec2f{size, size})}},
			materialAppearance(color),
		},
	}
}

func materialAppearance(color scene.SFColor) nodeSpec {
	return nodeSpec{
		kind: scene.KindAppearance,
		children: []nodeSpec{
			{kind: scene.KindMaterial, fields: []scene.Field{field("diffuseColor", color)}},
		},
	}
}

// textLabel is a row label positioned at (x, y).
func textLabel(text string, x, y float64, color scene.SFColor) nodeSpec {
	return nodeSpec{
		kind:   scene.KindTransform,
		fields: []scene.Field{field("translation", scene.SFVec3f{x, y, 0})},
		children: []nodeSpec{{
			kind: scene.KindShape,
			children: []nodeSpec{
				{
					kind:   scene.KindText,
					fields: []scene.Field{field("string", scene.MFString{text})},
					children: []nodeSpec{{
						kind: scene.KindFontStyle,
						fields: []scene.Field{
							field("size", FontSize),
							field("spacing", FontSpacing),
							field("justify", FontJustify),
							field("horizontal", scene.SFBool(false)),
						},
					}},
				},
				materialAppearance(color),
			},
		}},
	}
}
