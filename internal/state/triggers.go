package state

// Trigger represents an event that causes a mode transition.
type Trigger string

const (
	TriggerActivate   Trigger = "activate"
	TriggerDeactivate Trigger = "deactivate"
)

// String returns the string representation of the trigger.
func (t Trigger) String() string {
	return string(t)
}

// TriggerFor returns the trigger that commits the given mode.
func TriggerFor(mode Mode) Trigger {
	if mode == ModeActive {
		return TriggerActivate
	}
	return TriggerDeactivate
}
