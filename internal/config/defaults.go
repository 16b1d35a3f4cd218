package config

// DefaultSentinel is the synthetic last row that spans every landmark.
const DefaultSentinel = "All Body Parts"

// DefaultCategories is the fixed, ordered list of anatomical landmark rows.
// Lower_teeth and Hair are left out so the grid holds 46 landmark rows; a
// config file can add them back through layout.categories.
var DefaultCategories = []string{
	"__0", "__2", "__4",
	"Center_lower_vermillion_lip", "Chin", "Glabella",
	"Left_bulbar_conjunctiva", "Left_cheek", "Left_dorsum", "Left_ear",
	"Left_eyebrow", "Left_forehead", "Left_lower_eyelid",
	"Left_lower_vermillion_lip", "Left_nasolabial_cheek", "Left_nostril",
	"Left_pupil", "Left_temple", "Left_upper_cutaneous_lip",
	"Left_upper_eyelid", "Left_upper_vermillion_lip",
	"Left_upper_vermillion_lip001",
	"Mid_forehead", "Mid_nasal_dorsum", "Mid_upper_vermillion_lip",
	"Nasal_tip", "Neck", "Occipital_scalp", "Philtrum",
	"Right_bulbar_conjunctiva", "Right_cheek", "Right_dorsum", "Right_ear",
	"Right_eyebrow", "Right_forehead", "Right_lower_eyelid",
	"Right_lower_vermillion_lip", "Right_nasolabial_cheek", "Right_nostril",
	"Right_pupil", "Right_temple", "Right_upper_cutaneous_lip",
	"Right_upper_eyelid", "Right_upper_vermillion_lip",
	"Tongue", "Upper_teeth",
}

// Default returns the built-in configuration. Root is left empty; it must
// come from a config file or the command line.
func Default() *Generator {
	return &Generator{
		Assets: Assets{
			Prefix:    "Jin",
			Extension: ".x3d",
		},
		Label: LabelRule{StripLeading: 3, StripTrailing: 4},
		Appearance: Appearance{
			VariantA: Color{0, 0, 1},
			VariantB: Color{1, 0, 0},
			Text:     Color{0, 0, 0},
		},
		Layout: Layout{
			CellSize:   2.5,
			Scale:      0.30,
			Sentinel:   DefaultSentinel,
			Categories: append([]string(nil), DefaultCategories...),
		},
		Output: Output{Format: FormatXML},
	}
}
