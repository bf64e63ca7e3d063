package subscription

// State is the lifecycle state used for transition validation. It
// collapses the stored record into the three states the manager
// reasons about: no record at all, active, inactive.
type State string

const (
	StateNone     State = "none"
	StateActive   State = "active"
	StateInactive State = "inactive"
)

type transition struct {
	From State
	To   State
}

// validTransitions defines all allowed lifecycle transitions.
var validTransitions = map[transition]bool{
	{StateNone, StateActive}:     true, // first subscribe
	{StateActive, StateActive}:   true, // upgrade, downgrade, or renewal
	{StateInactive, StateActive}: true, // re-subscription after lapse
	{StateActive, StateInactive}: true, // external cancellation or expiry
}

// CanTransition checks if a transition from one state to another is valid.
func CanTransition(from, to State) bool {
	return validTransitions[transition{from, to}]
}

// StateOf derives the lifecycle state of a stored record. A nil record
// means the tenant never subscribed.
func StateOf(sub *Subscription) State {
	switch {
	case sub == nil:
		return StateNone
	case sub.Status == StatusActive:
		return StateActive
	default:
		return StateInactive
	}
}
