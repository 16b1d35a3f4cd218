// internal/nodeid/address_test.go
package nodeid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromLabel(t *testing.T) {
	testCases := []struct {
		label string
		want  string
	}{
		{"ABChin", "ABChin"},
		{"ABAll Body Parts", "ABAllBodyParts"},
		{" A\tB\nC ", "ABC"},
		{"A B", "AB"},
		{"", ""},
	}
	for _, tc := range testCases {
		t.Run(tc.label, func(t *testing.T) {
			assert.Equal(t, tc.want, FromLabel(tc.label))
		})
	}
}

func TestAddress_String(t *testing.T) {
	testCases := []struct {
		name        string
		addr        *Address
		expectedStr string
	}{
		{"sensor", &Address{Base: "ABChin", Role: Sensor}, "ABChin"},
		{"selector", &Address{Base: "ABChin", Role: Selector}, "ABChinSwitch"},
		{"sequencer", &Address{Base: "ABChin", Role: Sequencer}, "ABChinIntegerSequencer"},
		{"trigger", &Address{Base: "ABChin", Role: Trigger}, "ABChinBooleanTrigger"},
		{"nil address", nil, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedStr, tc.addr.String())
		})
	}
}

func TestForCell(t *testing.T) {
	var ids []string
	for _, a := range ForCell("AB All Body Parts") {
		ids = append(ids, a.String())
	}
	assert.Equal(t, []string{
		"ABAllBodyParts",
		"ABAllBodyPartsSwitch",
		"ABAllBodyPartsIntegerSequencer",
		"ABAllBodyPartsBooleanTrigger",
	}, ids)
}

func TestAddress_RoundTrip(t *testing.T) {
	testIDs := []string{
		"ABChin",
		"ABChinSwitch",
		"CDLeft_cheekIntegerSequencer",
		"EF__0BooleanTrigger",
	}

	for _, id := range testIDs {
		t.Run(id, func(t *testing.T) {
			addr, err := Parse(id)
			require.NoError(t, err)

			roundTripID := addr.String()
			assert.Equal(t, id, roundTripID)

			roundTripAddr, err := Parse(roundTripID)
			require.NoError(t, err)
			assert.True(t, addr.Equal(roundTripAddr))
		})
	}
}

func TestAddress_Equal(t *testing.T) {
	addr1, _ := Parse("ABChinSwitch")
	addr2 := New("AB Chin", Selector)
	addr3 := New("ABChin", Trigger)
	addr4 := New("ABNose", Selector)

	assert.True(t, addr1.Equal(addr2))
	assert.False(t, addr1.Equal(addr3))
	assert.False(t, addr1.Equal(addr4))
	assert.False(t, addr1.Equal(nil))
	assert.False(t, (*Address)(nil).Equal(addr1))
	assert.True(t, (*Address)(nil).Equal(nil))
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "sensor", Sensor.String())
	assert.Equal(t, "trigger", Trigger.String())
	assert.Equal(t, "unknown", Role(42).String())
	assert.Equal(t, "", Role(42).Suffix())
}
