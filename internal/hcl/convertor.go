package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/landmarkgrid/internal/config"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// evalOptional evaluates an optional attribute expression. ok is false when
// the attribute was omitted (gohcl hands us a static null for that case).
func evalOptional(expr hcl.Expression) (cty.Value, bool, hcl.Diagnostics) {
	if expr == nil {
		return cty.NilVal, false, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, false, diags
	}
	if val.IsNull() {
		return cty.NilVal, false, nil
	}
	return val, true, nil
}

// decodeInto converts val to ty and decodes it into the Go pointer target,
// reporting failures against the expression's source range.
func decodeInto(expr hcl.Expression, val cty.Value, ty cty.Type, target any) hcl.Diagnostics {
	converted, err := convert.Convert(val, ty)
	if err != nil {
		return hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Incorrect attribute value type",
			Detail:   fmt.Sprintf("Cannot convert %s to %s: %s.", val.Type().FriendlyName(), ty.FriendlyName(), err),
			Subject:  expr.Range().Ptr(),
		}}
	}
	if !converted.IsWhollyKnown() {
		return hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Unknown attribute value",
			Detail:   "The value must be known when the config is loaded.",
			Subject:  expr.Range().Ptr(),
		}}
	}
	if err := gocty.FromCtyValue(converted, target); err != nil {
		return hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid attribute value",
			Detail:   err.Error(),
			Subject:  expr.Range().Ptr(),
		}}
	}
	return nil
}

// decodeColor reads an [r, g, b] tuple.
func decodeColor(expr hcl.Expression) (config.Color, bool, hcl.Diagnostics) {
	val, ok, diags := evalOptional(expr)
	if !ok {
		return config.Color{}, false, diags
	}
	var components []float64
	if diags := decodeInto(expr, val, cty.List(cty.Number), &components); diags.HasErrors() {
		return config.Color{}, false, diags
	}
	if len(components) != 3 {
		return config.Color{}, false, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid color",
			Detail:   fmt.Sprintf("A color needs exactly 3 components, got %d.", len(components)),
			Subject:  expr.Range().Ptr(),
		}}
	}
	return config.Color{components[0], components[1], components[2]}, true, nil
}

// decodeStringList reads a list of strings, for example the category rows.
func decodeStringList(expr hcl.Expression) ([]string, bool, hcl.Diagnostics) {
	val, ok, diags := evalOptional(expr)
	if !ok {
		return nil, false, diags
	}
	var out []string
	if diags := decodeInto(expr, val, cty.List(cty.String), &out); diags.HasErrors() {
		return nil, false, diags
	}
	return out, true, nil
}
