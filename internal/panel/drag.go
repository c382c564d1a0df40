package panel

import (
	"fyne.io/fyne/v2"
)

// dragSession tracks one in-flight drag gesture: the panel center when the
// gesture began and the cumulative translation since
type dragSession struct {
	origin fyne.Position
	totalX float32
	totalY float32
}

// DragBegin arms a drag gesture. Dragging is only meaningful in PIP mode;
// in any other lifecycle state the call is ignored and subsequent DragBy and
// DragEnd calls are no-ops.
func (e *Engine) DragBegin() {
	if e.object == nil || !e.state().IsInteractive() {
		return
	}
	e.drag = &dragSession{origin: e.frame.Center()}
}

// DragBy accumulates a gesture delta and moves the panel with 1:1 tracking.
// The resulting center is clamped so the panel's edges never cross the
// combined safe-area and edge insets, with the lower bound additionally
// avoiding the keyboard.
func (e *Engine) DragBy(dx, dy float32) {
	if e.drag == nil || e.object == nil {
		return
	}
	e.drag.totalX += dx
	e.drag.totalY += dy

	center := fyne.NewPos(e.drag.origin.X+e.drag.totalX, e.drag.origin.Y+e.drag.totalY)
	center = ClampCenter(center, e.host.Bounds(), e.obstruction.SafeArea, e.cfg, e.obstruction.KeyboardHeight)

	e.frame = e.frame.WithCenter(center)
	e.object.Move(e.frame.Position)
}

// DragEnd re-classifies the release position into a dock position, notifies
// the panel, and snaps back to the canonical frame for that dock. The drag
// is free during motion but always lands on a canonical anchor.
func (e *Engine) DragEnd() {
	if e.drag == nil || e.object == nil {
		return
	}
	e.drag = nil

	e.dock = ClassifyDock(e.frame.Center(), e.host.Bounds())
	if e.panel != nil {
		e.panel.DidChangePosition(e.dock)
	}

	target, ok := e.computeTarget()
	if !ok {
		return
	}
	e.frame = target
	e.animator.AnimateFrame(e.object, target, e.opts.SnapDuration, nil)
}

// Dragging reports whether a drag gesture is currently in flight
func (e *Engine) Dragging() bool {
	return e.drag != nil
}
