// internal/nodeid/types.go
package nodeid

// Role names the part a node plays in a cell's interaction chain.
type Role int

const (
	Sensor Role = iota
	Selector
	Sequencer
	Trigger
)

// Roles lists every role in registration order.
var Roles = []Role{Sensor, Selector, Sequencer, Trigger}

// Suffix is the text appended to the base identifier for this role.
func (r Role) Suffix() string {
	switch r {
	case Selector:
		return "Switch"
	case Sequencer:
		return "IntegerSequencer"
	case Trigger:
		return "BooleanTrigger"
	default:
		return ""
	}
}

func (r Role) String() string {
	switch r {
	case Sensor:
		return "sensor"
	case Selector:
		return "selector"
	case Sequencer:
		return "sequencer"
	case Trigger:
		return "trigger"
	default:
		return "unknown"
	}
}

// Address is the structured form of a chain node identifier.
type Address struct {
	Base string
	Role Role
}
