package panel

import (
	"log"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/pip-overlay/internal/event"
	"github.com/ytget/pip-overlay/internal/model"
)

// Engine is the per-panel layout engine. It translates lifecycle state, dock
// position, and environment obstructions into a concrete frame, supports
// interactive dragging, and reacts to orientation, keyboard, and container
// signals. One Engine exists per shown panel; it is created on show and torn
// down on dismiss completion.
type Engine struct {
	host     Host
	panel    Panel
	animator Animator
	opts     Options
	state    func() model.LifecycleState

	cfg         Config
	dock        model.DockPosition
	obstruction model.Obstruction

	object fyne.CanvasObject
	frame  model.Frame

	subs []*event.Subscription
	drag *dragSession
}

// NewEngine attaches the panel to the host surface, computes the first frame
// synchronously, subscribes to the environment signals, and notifies the
// panel of its initial state. The attached object starts hidden; the caller
// is responsible for fading it in.
func NewEngine(host Host, p Panel, animator Animator, opts Options, state func() model.LifecycleState) *Engine {
	e := &Engine{
		host:     host,
		panel:    p,
		animator: animator,
		opts:     opts.withDefaults(),
		state:    state,
		cfg:      p.Config().withDefaults(),
	}
	e.dock = e.cfg.InitialDock
	e.obstruction.SafeArea = host.SafeAreaInsets()

	e.object = host.Attach(p, e)
	if e.object == nil {
		log.Printf("Warning: host attached no object for panel")
		return e
	}
	e.object.Hide()

	e.RecomputeFrame()
	e.subscribe()

	if mode, ok := e.state().Mode(); ok {
		p.DidChangeState(mode)
	}
	return e
}

// Object returns the mounted canvas object the engine positions, nil after
// teardown
func (e *Engine) Object() fyne.CanvasObject {
	return e.object
}

// Dock returns the panel's current dock position
func (e *Engine) Dock() model.DockPosition {
	return e.dock
}

// Frame returns the last computed frame
func (e *Engine) Frame() model.Frame {
	return e.frame
}

// RecomputeFrame recomputes the frame for the current lifecycle state and
// applies it immediately, forcing a synchronous layout pass so dependent
// visual state is consistent before any animation begins. States without a
// visible mode leave the frame untouched.
func (e *Engine) RecomputeFrame() {
	if e.object == nil {
		return
	}
	target, ok := e.computeTarget()
	if !ok {
		return
	}
	e.frame = target
	e.applyFrame()
}

// EnterMode re-lays the panel out for a mode the controller already
// recorded: the target frame is computed first, a synchronous layout pass
// runs, then the panel animates to the target and is notified of the state
// change on completion.
func (e *Engine) EnterMode(mode model.Mode) {
	if e.object == nil {
		return
	}
	// A mode switch cancels any drag in flight; gestures are only
	// meaningful in PIP mode.
	e.drag = nil

	target, ok := e.computeTarget()
	if !ok {
		return
	}
	e.frame = target
	e.object.Refresh()

	e.animator.AnimateFrame(e.object, target, e.opts.MoveDuration, func() {
		if e.panel != nil {
			e.panel.DidChangeState(mode)
		}
	})
}

// Teardown releases every environment subscription, detaches the panel
// object, and severs the panel reference. After Teardown no signal or
// animation callback mutates any frame.
func (e *Engine) Teardown() {
	for _, sub := range e.subs {
		sub.Unsubscribe()
	}
	e.subs = nil
	e.drag = nil

	if e.object != nil && e.host != nil {
		e.host.Detach(e.object)
	}
	e.object = nil
	e.panel = nil
}

// subscribe registers the environment signal handlers whose lifetime is
// scoped to the engine
func (e *Engine) subscribe() {
	bus := e.host.Signals()
	if bus == nil {
		return
	}

	e.subs = append(e.subs,
		bus.Subscribe(event.SignalOrientationChanged, func(event.Message) {
			e.relayout(true, e.opts.MoveDuration)
		}),
		bus.Subscribe(event.SignalKeyboardShown, func(msg event.Message) {
			e.obstruction.KeyboardHeight = keyboardOverlap(e.host.Bounds(), msg.Keyboard.Frame)
			e.relayout(true, keyboardDuration(msg, e.opts.MoveDuration))
		}),
		bus.Subscribe(event.SignalKeyboardHidden, func(msg event.Message) {
			e.obstruction.KeyboardHeight = 0
			e.relayout(true, keyboardDuration(msg, e.opts.MoveDuration))
		}),
		bus.Subscribe(event.SignalContainerChanged, func(event.Message) {
			e.onContainerChanged()
		}),
	)
}

// onContainerChanged refreshes the safe-area snapshot, re-raises the panel
// above its siblings, and re-lays out synchronously
func (e *Engine) onContainerChanged() {
	if e.object == nil || e.host == nil {
		return
	}
	e.obstruction.SafeArea = e.host.SafeAreaInsets()
	e.host.RaisePanel(e.object)
	e.relayout(false, 0)
}

// relayout recomputes the frame for the current state and either applies it
// immediately or animates toward it
func (e *Engine) relayout(animated bool, duration time.Duration) {
	if e.object == nil {
		return
	}
	target, ok := e.computeTarget()
	if !ok {
		return
	}
	e.frame = target

	if !animated || e.state() == model.StateFull {
		e.applyFrame()
		return
	}
	e.object.Refresh()
	e.animator.AnimateFrame(e.object, target, duration, nil)
}

// computeTarget derives the frame for the current lifecycle state. The
// second return value is false for states with no visible mode.
func (e *Engine) computeTarget() (model.Frame, bool) {
	switch e.state() {
	case model.StateFull:
		return FullFrame(e.host.Bounds()), true
	case model.StatePIP:
		return PIPFrame(e.host.Bounds(), e.obstruction.SafeArea, e.cfg, e.dock, e.obstruction.KeyboardHeight), true
	default:
		return model.Frame{}, false
	}
}

// applyFrame applies the computed frame to the object without animation and
// forces a synchronous layout pass
func (e *Engine) applyFrame() {
	e.object.Move(e.frame.Position)
	e.object.Resize(e.frame.Size)
	e.object.Refresh()
}

// keyboardOverlap derives the keyboard occlusion height from a keyboard
// frame expressed in container coordinates. A zero-height frame means the
// keyboard is hidden; a frame without a vertical position is treated as
// anchored to the container bottom.
func keyboardOverlap(bounds fyne.Size, kb model.Frame) float32 {
	if kb.Size.Height <= 0 {
		return 0
	}
	if kb.Position.Y <= 0 {
		if kb.Size.Height > bounds.Height {
			return bounds.Height
		}
		return kb.Size.Height
	}
	overlap := bounds.Height - kb.Position.Y
	if overlap < 0 {
		return 0
	}
	return overlap
}

// keyboardDuration extracts the platform animation duration from a keyboard
// signal, falling back to the engine default
func keyboardDuration(msg event.Message, fallback time.Duration) time.Duration {
	if msg.Keyboard.Duration > 0 {
		return msg.Keyboard.Duration
	}
	return fallback
}
