package model

// Mode represents the externally visible presentation mode of the panel
type Mode string

const (
	// ModePIP means the panel is shown as a small docked overlay
	ModePIP Mode = "PIP"

	// ModeFull means the panel occupies the entire container
	ModeFull Mode = "Full"
)

// String returns the string representation of Mode
func (m Mode) String() string {
	return string(m)
}

// LifecycleState represents the internal lifecycle state of the panel
// system. It is a superset of Mode: StateNone means no panel is registered,
// StateExiting means a dismiss is in progress and interaction is disabled.
type LifecycleState string

const (
	// StateNone means no panel is registered
	StateNone LifecycleState = "None"

	// StatePIP means the active panel is in picture-in-picture mode
	StatePIP LifecycleState = "PIP"

	// StateFull means the active panel is in full-screen mode
	StateFull LifecycleState = "Full"

	// StateExiting means a dismiss is in progress; interactions are disabled
	StateExiting LifecycleState = "Exiting"
)

// String returns the string representation of LifecycleState
func (s LifecycleState) String() string {
	return string(s)
}

// IsActive returns true if a panel is registered and not being dismissed
func (s LifecycleState) IsActive() bool {
	return s == StatePIP || s == StateFull
}

// IsInteractive returns true if drag gestures are meaningful in this state
func (s LifecycleState) IsInteractive() bool {
	return s == StatePIP
}

// Mode returns the presentation mode corresponding to the state. The second
// return value is false for StateNone and StateExiting, which have no
// externally visible mode.
func (s LifecycleState) Mode() (Mode, bool) {
	switch s {
	case StatePIP:
		return ModePIP, true
	case StateFull:
		return ModeFull, true
	default:
		return "", false
	}
}

// StateForMode returns the lifecycle state corresponding to a presentation
// mode.
func StateForMode(m Mode) LifecycleState {
	if m == ModeFull {
		return StateFull
	}
	return StatePIP
}
