package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/ytget/pip-overlay/internal/event"
	"github.com/ytget/pip-overlay/internal/model"
	"github.com/ytget/pip-overlay/internal/panel"
	"github.com/ytget/pip-overlay/internal/platform"
)

// OverlayHost implements panel.Host on top of a transparent Fyne container
// stacked above the application content. Its layout publishes container and
// orientation signals whenever the surface resizes or its children change,
// and keyboard signals are forwarded explicitly by the embedding
// application.
type OverlayHost struct {
	surface  *fyne.Container
	bus      *event.Bus
	canvas   fyne.Canvas
	safeArea model.Insets

	// OnPanelTapped runs when the user taps the mounted panel
	OnPanelTapped func()
}

// NewOverlayHost creates an overlay host with an empty surface
func NewOverlayHost() *OverlayHost {
	h := &OverlayHost{bus: event.NewBus()}
	h.surface = container.New(&overlayLayout{host: h})
	return h
}

// BindCanvas derives safe-area insets from the canvas interactive area
// instead of the explicitly set value
func (h *OverlayHost) BindCanvas(c fyne.Canvas) {
	h.canvas = c
}

// SetSafeAreaInsets sets explicit safe-area insets, used when no canvas is
// bound
func (h *OverlayHost) SetSafeAreaInsets(insets model.Insets) {
	h.safeArea = insets
}

// Surface returns the root container panels are attached to
func (h *OverlayHost) Surface() *fyne.Container {
	return h.surface
}

// Bounds returns the current surface size
func (h *OverlayHost) Bounds() fyne.Size {
	return h.surface.Size()
}

// SafeAreaInsets returns the container's current safe-area insets
func (h *OverlayHost) SafeAreaInsets() model.Insets {
	if h.canvas != nil {
		return platform.SafeAreaInsets(h.canvas)
	}
	return h.safeArea
}

// Signals returns the environment signal bus
func (h *OverlayHost) Signals() *event.Bus {
	return h.bus
}

// Attach wraps the panel content in a PanelWidget for decoration and
// gesture routing, mounts it, and returns the mounted object
func (h *OverlayHost) Attach(p panel.Panel, e *panel.Engine) fyne.CanvasObject {
	w := NewPanelWidget(p, e)
	w.OnTapped = func() {
		if h.OnPanelTapped != nil {
			h.OnPanelTapped()
		}
	}
	h.surface.Add(w)
	return w
}

// Detach removes a previously attached object from the surface
func (h *OverlayHost) Detach(obj fyne.CanvasObject) {
	h.surface.Remove(obj)
}

// RaisePanel moves the panel to the end of the surface's child list so it
// stays above any sibling added later
func (h *OverlayHost) RaisePanel(obj fyne.CanvasObject) {
	objects := h.surface.Objects
	for i, o := range objects {
		if o != obj {
			continue
		}
		if i == len(objects)-1 {
			return
		}
		copy(objects[i:], objects[i+1:])
		objects[len(objects)-1] = obj
		h.surface.Refresh()
		return
	}
}

// NotifyKeyboardShown publishes a keyboard-shown signal for a keyboard of
// the given height anchored to the container bottom
func (h *OverlayHost) NotifyKeyboardShown(height float32, duration time.Duration) {
	bounds := h.Bounds()
	h.bus.Publish(event.Message{
		Signal: event.SignalKeyboardShown,
		Keyboard: event.KeyboardInfo{
			Frame:    model.NewFrame(0, bounds.Height-height, bounds.Width, height),
			Duration: duration,
		},
	})
}

// NotifyKeyboardHidden publishes a keyboard-hidden signal
func (h *OverlayHost) NotifyKeyboardHidden(duration time.Duration) {
	h.bus.Publish(event.Message{
		Signal:   event.SignalKeyboardHidden,
		Keyboard: event.KeyboardInfo{Duration: duration},
	})
}

// Close releases the signal bus
func (h *OverlayHost) Close() {
	h.bus.Close()
}

// overlayLayout is a pass-through layout that reports surface changes on the
// signal bus. Children keep the frames the engine assigned; the layout never
// repositions them.
type overlayLayout struct {
	host      *OverlayHost
	lastSize  fyne.Size
	lastCount int
}

// MinSize lets the surface shrink with its parent; the overlay claims no
// space of its own
func (l *overlayLayout) MinSize([]fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(0, 0)
}

// Layout publishes container and orientation signals when the surface size
// or child list changed since the last pass
func (l *overlayLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	countChanged := len(objects) != l.lastCount
	sizeChanged := size != l.lastSize
	flipped := sizeChanged && l.lastSize.Width > 0 &&
		platform.OrientationOf(size) != platform.OrientationOf(l.lastSize)

	l.lastCount = len(objects)
	l.lastSize = size

	if countChanged || sizeChanged {
		l.host.bus.Publish(event.Message{Signal: event.SignalContainerChanged, Container: size})
	}
	if flipped {
		l.host.bus.Publish(event.Message{Signal: event.SignalOrientationChanged, Container: size})
	}
}
