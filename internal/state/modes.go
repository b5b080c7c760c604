// Package state provides the finite state machine for a drop-zone's
// activation lifecycle.
package state

// Mode represents the activation state of a drop-zone.
//
// The inactive mode serializes as the empty token so that a mode read
// straight off an element attribute round-trips: an absent or empty
// attribute means inactive.
type Mode string

const (
	ModeActive   Mode = "active"
	ModeInactive Mode = ""
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	return string(m)
}

// IsActive returns true if the mode is the active mode.
func (m Mode) IsActive() bool {
	return m == ModeActive
}

// ParseMode interprets a configured mode token. Any token other than
// "active" (including the empty string) is inactive.
func ParseMode(token string) Mode {
	if token == string(ModeActive) {
		return ModeActive
	}
	return ModeInactive
}
