package panel

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/pip-overlay/internal/model"
)

// SessionIDPrefix namespaces generated panel session identifiers
const SessionIDPrefix = "panel-"

// Controller owns the single active panel slot and the lifecycle state
// machine: None -> (Show) -> {PIP|Full}; {PIP|Full} -> (EnterPIPMode /
// EnterFullScreenMode) -> {PIP|Full}; {PIP|Full} -> (Dismiss) -> Exiting ->
// None. All methods must be called on the UI goroutine; the controller does
// no locking by contract.
type Controller struct {
	host     Host
	animator Animator
	opts     Options

	state     model.LifecycleState
	active    Panel
	engine    *Engine
	sessionID string

	// pending holds a Show request deferred while a dismiss is in flight.
	// At most one is retained; a newer request replaces an older one.
	pending *pendingShow
}

// pendingShow is a Show request queued behind an in-flight exit
type pendingShow struct {
	panel      Panel
	onComplete func()
}

// NewController creates a controller bound to a host surface
func NewController(host Host, animator Animator, opts Options) *Controller {
	return &Controller{
		host:     host,
		animator: animator,
		opts:     opts.withDefaults(),
		state:    model.StateNone,
	}
}

// Show registers p as the active panel. The call is a silent no-op when no
// rendering surface is available. If a panel is already active it is first
// dismissed without animation and the show is re-invoked on completion, so
// at most one panel is ever registered. If a dismiss is already in flight
// the request is deferred until the exit reaches StateNone.
func (c *Controller) Show(p Panel, onComplete func()) {
	if p == nil {
		log.Printf("Warning: Show called with nil panel")
		return
	}
	if c.host == nil || c.host.Surface() == nil {
		log.Printf("Show skipped: no rendering surface available")
		return
	}

	if c.state == model.StateExiting {
		// Defer behind the in-flight exit; last request wins.
		c.pending = &pendingShow{panel: p, onComplete: onComplete}
		return
	}

	if c.active != nil {
		c.Dismiss(false, func() {
			c.Show(p, onComplete)
		})
		return
	}

	cfg := p.Config().withDefaults()
	c.active = p
	c.state = model.StateForMode(cfg.InitialMode)
	c.sessionID = generateSessionID()
	log.Printf("Showing panel session %s in %s mode", c.sessionID, cfg.InitialMode)

	// The engine attaches the content through the host, computes the first
	// frame synchronously, and notifies the panel of its initial state.
	c.engine = NewEngine(c.host, p, c.animator, c.opts, c.State)

	obj := c.engine.Object()
	if obj == nil {
		// Nothing got mounted; roll the registration back so the
		// controller keeps reporting no active panel.
		log.Printf("Warning: show of session %s aborted, host mounted no object", c.sessionID)
		c.engine.Teardown()
		c.engine = nil
		c.active = nil
		c.sessionID = ""
		c.state = model.StateNone
		return
	}
	c.animator.FadeIn(obj, c.opts.FadeDuration, func() {
		if onComplete != nil {
			onComplete()
		}
	})
}

// Dismiss tears down the active panel. The lifecycle state moves to
// StateExiting immediately, disabling further interaction; the panel's own
// dismiss routine runs (animated or not) and all internal state is cleared
// when it calls back. A Dismiss without an active panel, or while an exit is
// already in flight, is a silent no-op.
func (c *Controller) Dismiss(animated bool, onComplete func()) {
	if c.active == nil || c.state == model.StateExiting {
		return
	}

	c.state = model.StateExiting
	log.Printf("Dismissing panel session %s (animated=%v)", c.sessionID, animated)

	p := c.active
	p.Dismiss(animated, func() {
		c.finishDismiss(onComplete)
	})
}

// EnterPIPMode moves the active panel into picture-in-picture mode. No-op
// without an active panel; idempotent when already in PIP mode.
func (c *Controller) EnterPIPMode() {
	if !c.state.IsActive() || c.engine == nil {
		return
	}
	c.state = model.StatePIP
	c.engine.EnterMode(model.ModePIP)
}

// EnterFullScreenMode moves the active panel into full-screen mode. No-op
// without an active panel; idempotent when already full screen.
func (c *Controller) EnterFullScreenMode() {
	if !c.state.IsActive() || c.engine == nil {
		return
	}
	c.state = model.StateFull
	c.engine.EnterMode(model.ModeFull)
}

// HasActivePanel returns true while a panel is registered
func (c *Controller) HasActivePanel() bool {
	return c.active != nil
}

// IsPIPMode returns true iff the lifecycle state is StatePIP
func (c *Controller) IsPIPMode() bool {
	return c.state == model.StatePIP
}

// State returns the current lifecycle state
func (c *Controller) State() model.LifecycleState {
	return c.state
}

// ActiveSessionID returns the session ID of the active panel, empty when
// none is registered
func (c *Controller) ActiveSessionID() string {
	return c.sessionID
}

// Engine returns the active layout engine, nil when no panel is registered
func (c *Controller) Engine() *Engine {
	return c.engine
}

// finishDismiss clears all internal state after the panel's exit routine
// completed, then runs any deferred Show request.
func (c *Controller) finishDismiss(onComplete func()) {
	if c.engine != nil {
		c.engine.Teardown()
		c.engine = nil
	}
	log.Printf("Panel session %s dismissed", c.sessionID)

	c.active = nil
	c.sessionID = ""
	c.state = model.StateNone

	if onComplete != nil {
		onComplete()
	}

	if c.pending != nil {
		next := c.pending
		c.pending = nil
		c.Show(next.panel, next.onComplete)
	}
}

// generateSessionID generates a unique session ID using UUID v7 for better
// uniqueness and time ordering
func generateSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(SessionIDPrefix+"%d", time.Now().UnixNano())
	}
	return SessionIDPrefix + id.String()
}
