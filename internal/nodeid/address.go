// internal/nodeid/address.go
package nodeid

import (
	"strings"
	"unicode"
)

// FromLabel derives the base identifier of a cell by removing every
// whitespace character from its label.
func FromLabel(label string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, label)
}

// New returns the address of the node playing role in the cell with label.
func New(label string, role Role) *Address {
	return &Address{Base: FromLabel(label), Role: role}
}

// ForCell returns the four addresses of a cell in registration order.
func ForCell(label string) []*Address {
	addrs := make([]*Address, len(Roles))
	for i, r := range Roles {
		addrs[i] = New(label, r)
	}
	return addrs
}

// String serializes the Address into its registry identifier.
func (a *Address) String() string {
	if a == nil {
		return ""
	}
	return a.Base + a.Role.Suffix()
}

// Equal checks for equality between two Address pointers.
func (a *Address) Equal(other *Address) bool {
	if a == nil || other == nil {
		return a == other
	}
	return *a == *other
}
