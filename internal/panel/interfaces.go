package panel

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/pip-overlay/internal/event"
	"github.com/ytget/pip-overlay/internal/model"
)

// Panel defines the capability contract implemented by any content the host
// application wants to show as a floating overlay. The core holds exactly
// one non-owning reference to the active panel; it manages the panel's frame
// and lifecycle, never its visual content.
type Panel interface {
	// Content returns the root canvas object of the panel
	Content() fyne.CanvasObject

	// Config returns the panel's fixed layout and styling configuration
	Config() Config

	// Dismiss runs the panel's own exit routine and must invoke done when
	// the exit animation (or immediate teardown) finishes
	Dismiss(animated bool, done func())

	// DidChangeState notifies the panel that its presentation mode changed
	DidChangeState(mode model.Mode)

	// DidChangePosition notifies the panel that its dock position changed
	DidChangePosition(position model.DockPosition)
}

// Host defines the contract with the surface the panel is rendered into.
// Absence of a surface means "cannot show now" and turns operations into
// silent no-ops.
type Host interface {
	// Surface returns the root container panels are attached to, or nil
	// when no rendering surface is available
	Surface() *fyne.Container

	// Bounds returns the current container size
	Bounds() fyne.Size

	// SafeAreaInsets returns the container's current safe-area insets
	SafeAreaInsets() model.Insets

	// Signals returns the bus carrying orientation, keyboard, and container
	// change signals
	Signals() *event.Bus

	// Attach mounts the panel content into the surface and returns the
	// mounted object the engine positions. The host may wrap the content
	// for decoration and gesture routing.
	Attach(p Panel, e *Engine) fyne.CanvasObject

	// Detach removes a previously attached object from the surface
	Detach(obj fyne.CanvasObject)

	// RaisePanel keeps the panel above its sibling objects
	RaisePanel(obj fyne.CanvasObject)
}

// Animator schedules visual interpolation toward a target frame and fires a
// completion callback on the UI goroutine after the duration elapses.
// Re-targeting an in-flight animation is last-write-wins; there is no
// explicit cancellation.
type Animator interface {
	// AnimateFrame moves and resizes obj toward the target frame
	AnimateFrame(obj fyne.CanvasObject, to model.Frame, duration time.Duration, done func())

	// FadeIn reveals a hidden object over the given duration
	FadeIn(obj fyne.CanvasObject, duration time.Duration, done func())
}
