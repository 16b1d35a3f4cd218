// internal/nodeid/parser.go
package nodeid

import (
	"fmt"
	"strings"
	"unicode"
)

// parseOrder tries the longest suffixes first; the sensor has none and
// therefore matches last.
var parseOrder = []Role{Sequencer, Trigger, Selector}

// Parse splits an identifier into base and role. A base that itself ends in
// a role suffix is indistinguishable from that role; Parse picks the suffix.
func Parse(rawID string) (*Address, error) {
	if rawID == "" {
		return nil, fmt.Errorf("identifier cannot be empty")
	}
	if strings.IndexFunc(rawID, unicode.IsSpace) >= 0 {
		return nil, fmt.Errorf("identifier %q contains whitespace", rawID)
	}

	for _, r := range parseOrder {
		suffix := r.Suffix()
		if base, ok := strings.CutSuffix(rawID, suffix); ok {
			if base == "" {
				return nil, fmt.Errorf("identifier %q has an empty base", rawID)
			}
			return &Address{Base: base, Role: r}, nil
		}
	}
	return &Address{Base: rawID, Role: Sensor}, nil
}

// invalidRunes are the characters an X3D DEF name may not contain.
const invalidRunes = "\"'#,.[]\\{}"

// Portable reports whether id is usable as an X3D DEF name without escaping
// surprises in viewers: no control characters, no whitespace, none of the
// reserved punctuation, and not starting with a digit, '+' or '-'.
func Portable(id string) bool {
	if id == "" {
		return false
	}
	for i, r := range id {
		if unicode.IsSpace(r) || unicode.IsControl(r) || strings.ContainsRune(invalidRunes, r) {
			return false
		}
		if i == 0 && (unicode.IsDigit(r) || r == '+' || r == '-') {
			return false
		}
	}
	return true
}
