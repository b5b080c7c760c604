package state

import (
	"context"
	"sync"

	"github.com/qmuntal/stateless"
)

// TransitionCallback is called when a mode transition occurs.
type TransitionCallback func(ctx context.Context, from, to Mode, trigger Trigger)

// Machine wraps the stateless state machine with drop-zone-specific behavior.
// Re-firing the trigger for the current mode is ignored rather than rejected,
// so committing the same mode twice is a harmless no-op and callbacks only
// fire on genuine transitions.
type Machine struct {
	sm          *stateless.StateMachine
	callbacks   []TransitionCallback
	callbacksMu sync.RWMutex
}

// NewMachine creates a new state machine starting in the given mode.
func NewMachine(initial Mode) *Machine {
	m := &Machine{
		callbacks: make([]TransitionCallback, 0),
	}

	sm := stateless.NewStateMachine(initial)

	sm.Configure(ModeInactive).
		Permit(TriggerActivate, ModeActive).
		Ignore(TriggerDeactivate)

	sm.Configure(ModeActive).
		Permit(TriggerDeactivate, ModeInactive).
		Ignore(TriggerActivate)

	// Set up transition callback
	sm.OnTransitioned(func(ctx context.Context, t stateless.Transition) {
		m.callbacksMu.RLock()
		callbacks := make([]TransitionCallback, len(m.callbacks))
		copy(callbacks, m.callbacks)
		m.callbacksMu.RUnlock()

		from := t.Source.(Mode)
		to := t.Destination.(Mode)
		trigger := t.Trigger.(Trigger)

		for _, cb := range callbacks {
			cb(ctx, from, to, trigger)
		}
	})

	m.sm = sm
	return m
}

// Mode returns the current mode.
func (m *Machine) Mode(ctx context.Context) (Mode, error) {
	mode, err := m.sm.State(ctx)
	if err != nil {
		return ModeInactive, err
	}
	return mode.(Mode), nil
}

// Fire triggers a mode transition.
func (m *Machine) Fire(ctx context.Context, trigger Trigger, args ...any) error {
	return m.sm.FireCtx(ctx, trigger, args...)
}

// Commit fires the trigger that moves the machine into the given mode.
func (m *Machine) Commit(ctx context.Context, mode Mode) error {
	return m.Fire(ctx, TriggerFor(mode))
}

// OnTransition registers a callback to be called on mode transitions.
func (m *Machine) OnTransition(cb TransitionCallback) {
	m.callbacksMu.Lock()
	defer m.callbacksMu.Unlock()
	m.callbacks = append(m.callbacks, cb)
}

// MustMode returns the current mode, panicking on error.
func (m *Machine) MustMode() Mode {
	mode, err := m.Mode(context.Background())
	if err != nil {
		panic(err)
	}
	return mode
}

// IsActive returns true if the machine is in the active mode.
func (m *Machine) IsActive() bool {
	return m.MustMode() == ModeActive
}
