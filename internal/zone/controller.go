package zone

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ayaan-qadri/wagtail/internal/config"
	"github.com/ayaan-qadri/wagtail/internal/state"
)

// ClassTarget is the surface a controller mutates on its bound element.
// *dom.Element satisfies it; a host rendering layer can supply its own.
type ClassTarget interface {
	AddClass(names ...string)
	RemoveClass(names ...string)
}

// Controller manages the activation state of one drop-target region.
//
// The drag-event path (Activate/Deactivate) is debounced through a
// single-slot timer: activation commits after the configured delay,
// deactivation after twice that delay, and either request supersedes a
// pending one. The Switch path commits synchronously with no debounce.
// Each controller owns its mode and timer independently; nothing is
// shared across instances.
type Controller struct {
	config  *config.Config
	target  ClassTarget
	machine *state.Machine
	timer   *delayTimer
	log     *slog.Logger

	modeListeners []func(from, to state.Mode)

	detached bool
	mu       sync.RWMutex
}

// NewController creates a controller bound to the given class target,
// initialized from configuration. The initial mode's classes are applied
// immediately.
func NewController(cfg *config.Config, target ClassTarget) *Controller {
	initial := state.ParseMode(cfg.InitialMode)

	c := &Controller{
		config:  cfg,
		target:  target,
		machine: state.NewMachine(initial),
		log:     slog.Default(),
	}
	c.timer = newDelayTimer(c.commit)

	// Reflect committed transitions onto the element
	c.machine.OnTransition(func(ctx context.Context, from, to state.Mode, trigger state.Trigger) {
		c.log.Debug("mode transition", "from", from, "to", to, "trigger", trigger)
		c.applyClasses(to)

		c.mu.RLock()
		listeners := make([]func(from, to state.Mode), len(c.modeListeners))
		copy(listeners, c.modeListeners)
		c.mu.RUnlock()

		for _, listener := range listeners {
			listener(from, to)
		}
	})

	// OnTransition never fires for the initial mode, so apply it here.
	c.applyClasses(initial)

	return c
}

// Activate requests a transition to the active mode after the configured
// delay. A pending transition of either kind is superseded.
func (c *Controller) Activate(evt *Event) {
	c.timer.Schedule(state.ModeActive, c.config.Delay)
}

// Deactivate requests a transition to the inactive mode after twice the
// configured delay. The asymmetry is a fixed ratio: leaving is deliberately
// slower than entering so momentary re-entries during a drag do not flicker.
func (c *Controller) Deactivate(evt *Event) {
	c.timer.Schedule(state.ModeInactive, 2*c.config.Delay)
}

// Noop performs no state mutation. It exists so a binding can attach
// default-action suppression to an event (e.g. drop) without any
// behavioral effect.
func (c *Controller) Noop(evt *Event) {}

// Switch resolves a boolean intent from the event and configuration and
// commits the corresponding mode immediately, with no debounce. A key that
// resolves in none of the sources is logged and leaves the mode unchanged.
func (c *Controller) Switch(evt *Event) {
	active, err := resolveSwitch(c.config.SwitchKey, evt, c.config.SwitchValues)
	if err != nil {
		c.log.Warn("switch resolution failed", "key", c.config.SwitchKey, "error", err)
		return
	}

	c.timer.CancelPending()
	if active {
		c.commit(state.ModeActive)
	} else {
		c.commit(state.ModeInactive)
	}
}

// Mode returns the controller's current committed mode. Pending transitions
// are not observable.
func (c *Controller) Mode() state.Mode {
	return c.machine.MustMode()
}

// OnModeChange registers a callback for committed mode transitions.
func (c *Controller) OnModeChange(handler func(from, to state.Mode)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.modeListeners = append(c.modeListeners, handler)
}

// Detach cancels any pending transition and drops future commits so a
// detached element is never mutated. Called when the bound element leaves
// the document.
func (c *Controller) Detach() {
	c.mu.Lock()
	c.detached = true
	c.mu.Unlock()

	c.timer.CancelPending()
}

func (c *Controller) commit(mode state.Mode) {
	c.mu.RLock()
	detached := c.detached
	c.mu.RUnlock()
	if detached {
		return
	}

	if err := c.machine.Commit(context.Background(), mode); err != nil {
		c.log.Error("mode commit failed", "mode", mode, "error", err)
	}
}

func (c *Controller) applyClasses(mode state.Mode) {
	classes := c.config.ActiveClasses()
	// No active class configured: class reflection degrades to a no-op.
	if len(classes) == 0 {
		return
	}

	if mode.IsActive() {
		c.target.AddClass(classes...)
	} else {
		c.target.RemoveClass(classes...)
	}
}
