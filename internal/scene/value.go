package scene

import (
	"strconv"
	"strings"
)

// Value is a typed X3D field value.
type Value interface {
	// Type is the X3D field type name, e.g. "SFVec3f".
	Type() string
	// String is the XML attribute encoding.
	String() string
	// JSON is the value as encoded by the X3D JSON encoding.
	JSON() any
}

type (
	SFBool   bool
	SFInt32  int32
	SFFloat  float64
	SFString string
	SFVec2f  [2]float64
	SFVec3f  [3]float64
	SFColor  [3]float64
	MFInt32  []int32
	MFFloat  []float64
	MFString []string
)

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func joinFloats(fs []float64) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = formatFloat(f)
	}
	return strings.Join(parts, " ")
}

func (SFBool) Type() string     { return "SFBool" }
func (v SFBool) String() string { return strconv.FormatBool(bool(v)) }
func (v SFBool) JSON() any      { return bool(v) }

func (SFInt32) Type() string     { return "SFInt32" }
func (v SFInt32) String() string { return strconv.FormatInt(int64(v), 10) }
func (v SFInt32) JSON() any      { return int32(v) }

func (SFFloat) Type() string     { return "SFFloat" }
func (v SFFloat) String() string { return formatFloat(float64(v)) }
func (v SFFloat) JSON() any      { return float64(v) }

func (SFString) Type() string     { return "SFString" }
func (v SFString) String() string { return string(v) }
func (v SFString) JSON() any      { return string(v) }

func (SFVec2f) Type() string     { return "SFVec2f" }
func (v SFVec2f) String() string { return joinFloats(v[:]) }
func (v SFVec2f) JSON() any      { return []float64{v[0], v[1]} }

func (SFVec3f) Type() string     { return "SFVec3f" }
func (v SFVec3f) String() string { return joinFloats(v[:]) }
func (v SFVec3f) JSON() any      { return []float64{v[0], v[1], v[2]} }

func (SFColor) Type() string     { return "SFColor" }
func (v SFColor) String() string { return joinFloats(v[:]) }
func (v SFColor) JSON() any      { return []float64{v[0], v[1], v[2]} }

func (MFInt32) Type() string { return "MFInt32" }
func (v MFInt32) String() string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.FormatInt(int64(n), 10)
	}
	return strings.Join(parts, " ")
}
func (v MFInt32) JSON() any { return append([]int32{}, v...) }

func (MFFloat) Type() string     { return "MFFloat" }
func (v MFFloat) String() string { return joinFloats(v) }
func (v MFFloat) JSON() any      { return append([]float64{}, v...) }

func (MFString) Type() string { return "MFString" }

// String quotes each element, escaping embedded quotes and backslashes.
func (v MFString) String() string {
	parts := make([]string, len(v))
	for i, s := range v {
		s = strings.ReplaceAll(s, `\`, `\\`)
		s = strings.ReplaceAll(s, `"`, `\"`)
		parts[i] = `"` + s + `"`
	}
	return strings.Join(parts, " ")
}
func (v MFString) JSON() any { return append([]string{}, v...) }
