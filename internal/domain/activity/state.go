package activity

// State classifies the user's pointer activity.
// The zero value is Inactive, which is also the state every engine starts in.
type State int

const (
	// Inactive means no qualifying motion has been observed within the
	// configured movement gap.
	Inactive State = iota
	// Active means motion was observed recently.
	Active
)

// String returns the operator-facing name of the state.
func (s State) String() string {
	if s == Active {
		return "ACTIVE"
	}

	return "INACTIVE"
}

// Event is a stimulus consumed by the debounce engine.
type Event int

const (
	// EventMotion signals that a motion pulse arrived.
	EventMotion Event = iota
	// EventTick signals that the poll timeout elapsed with no motion.
	EventTick
)

// Pulse is a unit signal meaning motion was observed at approximately the
// moment it is received. It carries no payload; the receiving side stamps
// the arrival time.
type Pulse struct{}
