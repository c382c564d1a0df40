package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/pip-overlay/internal/panel"
)

// PanelWidget wraps panel content for mounting on the overlay surface. It
// applies the panel's static decoration (corner rounding and drop shadow)
// and routes drag and touch gestures into the layout engine. The engine
// decides whether a gesture is meaningful for the current lifecycle state.
type PanelWidget struct {
	widget.BaseWidget

	content fyne.CanvasObject
	engine  *panel.Engine

	shadow       *canvas.Rectangle
	shadowOffset fyne.Position
	background   *canvas.Rectangle

	// OnTapped runs when the user taps the panel
	OnTapped func()
}

// NewPanelWidget creates a decorated, gesture-aware wrapper around the
// panel's content
func NewPanelWidget(p panel.Panel, e *panel.Engine) *PanelWidget {
	w := &PanelWidget{
		content: p.Content(),
		engine:  e,
	}
	w.decorate(p.Config())
	w.ExtendBaseWidget(w)
	return w
}

// decorate builds the optional shadow and corner-rounding objects from the
// panel's style configuration
func (w *PanelWidget) decorate(cfg panel.Config) {
	if corner := cfg.Corner; corner.Radius > 0 {
		w.background = canvas.NewRectangle(color.Transparent)
		w.background.CornerRadius = corner.Radius
	}

	shadow := cfg.Shadow
	if shadow.IsZero() {
		return
	}
	shadowColor := shadow.Color
	if shadowColor == nil {
		shadowColor = color.NRGBA{A: DefaultShadowAlpha}
	}
	w.shadow = canvas.NewRectangle(shadowColor)
	if w.background != nil {
		w.shadow.CornerRadius = w.background.CornerRadius
	}
	w.shadowOffset = shadow.Offset
	if w.shadowOffset.IsZero() {
		w.shadowOffset = fyne.NewPos(DefaultShadowOffset, DefaultShadowOffset)
	}
}

// CreateRenderer builds the layered renderer: shadow below, decoration
// background, then the panel content on top
func (w *PanelWidget) CreateRenderer() fyne.WidgetRenderer {
	objects := make([]fyne.CanvasObject, 0, 3)
	if w.shadow != nil {
		objects = append(objects, w.shadow)
	}
	if w.background != nil {
		objects = append(objects, w.background)
	}
	objects = append(objects, w.content)

	return &panelRenderer{widget: w, objects: objects}
}

// Tapped implements fyne.Tappable
func (w *PanelWidget) Tapped(*fyne.PointEvent) {
	if w.OnTapped != nil {
		w.OnTapped()
	}
}

// Dragged implements fyne.Draggable. The first event of a gesture arms the
// engine's drag session; subsequent events feed it per-event deltas that the
// engine accumulates against the drag origin.
func (w *PanelWidget) Dragged(ev *fyne.DragEvent) {
	if w.engine == nil {
		return
	}
	if !w.engine.Dragging() {
		w.engine.DragBegin()
	}
	w.engine.DragBy(ev.Dragged.DX, ev.Dragged.DY)
}

// DragEnd implements fyne.Draggable
func (w *PanelWidget) DragEnd() {
	if w.engine == nil {
		return
	}
	w.engine.DragEnd()
}

// TouchDown implements mobile.Touchable
func (w *PanelWidget) TouchDown(*mobile.TouchEvent) {}

// TouchUp implements mobile.Touchable
func (w *PanelWidget) TouchUp(*mobile.TouchEvent) {}

// TouchCancel implements mobile.Touchable. A cancelled touch ends any
// in-flight drag so the panel snaps back to a canonical dock.
func (w *PanelWidget) TouchCancel(*mobile.TouchEvent) {
	if w.engine == nil {
		return
	}
	w.engine.DragEnd()
}

// panelRenderer lays the decoration and content out to fill the widget
type panelRenderer struct {
	widget  *PanelWidget
	objects []fyne.CanvasObject
}

func (r *panelRenderer) Layout(size fyne.Size) {
	if shadow := r.widget.shadow; shadow != nil {
		shadow.Resize(size)
		shadow.Move(r.widget.shadowOffset)
	}
	if background := r.widget.background; background != nil {
		background.Resize(size)
		background.Move(fyne.NewPos(0, 0))
	}
	r.widget.content.Resize(size)
	r.widget.content.Move(fyne.NewPos(0, 0))
}

func (r *panelRenderer) MinSize() fyne.Size {
	return fyne.NewSize(MinPanelWidth, MinPanelHeight)
}

func (r *panelRenderer) Refresh() {
	r.widget.content.Refresh()
}

func (r *panelRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *panelRenderer) Destroy() {}
