package panel

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/ytget/pip-overlay/internal/event"
	"github.com/ytget/pip-overlay/internal/model"
)

// testHost is a minimal Host backed by a plain container
type testHost struct {
	surface *fyne.Container
	bounds  fyne.Size
	safe    model.Insets
	bus     *event.Bus
	raised  int

	// attachNil makes Attach mount nothing, mimicking a host that cannot
	// wrap the panel content
	attachNil bool
}

func newTestHost(width, height float32) *testHost {
	return &testHost{
		surface: container.NewWithoutLayout(),
		bounds:  fyne.NewSize(width, height),
		bus:     event.NewBus(),
	}
}

func (h *testHost) Surface() *fyne.Container         { return h.surface }
func (h *testHost) Bounds() fyne.Size                { return h.bounds }
func (h *testHost) SafeAreaInsets() model.Insets     { return h.safe }
func (h *testHost) Signals() *event.Bus              { return h.bus }
func (h *testHost) Detach(obj fyne.CanvasObject)     { h.surface.Remove(obj) }
func (h *testHost) RaisePanel(obj fyne.CanvasObject) { h.raised++ }

func (h *testHost) Attach(p Panel, e *Engine) fyne.CanvasObject {
	if h.attachNil {
		return nil
	}
	obj := p.Content()
	h.surface.Add(obj)
	return obj
}

// testPanel records every notification it receives
type testPanel struct {
	content      fyne.CanvasObject
	cfg          Config
	states       []model.Mode
	positions    []model.DockPosition
	dismissCalls []bool

	// deferDismiss keeps the exit in flight until the test invokes
	// dismissDone, mimicking an exit animation
	deferDismiss bool
	dismissDone  func()
}

func newTestPanel(cfg Config) *testPanel {
	return &testPanel{
		content: canvas.NewRectangle(color.Black),
		cfg:     cfg,
	}
}

func (p *testPanel) Content() fyne.CanvasObject { return p.content }
func (p *testPanel) Config() Config             { return p.cfg }

func (p *testPanel) Dismiss(animated bool, done func()) {
	p.dismissCalls = append(p.dismissCalls, animated)
	if p.deferDismiss {
		p.dismissDone = done
		return
	}
	done()
}

func (p *testPanel) DidChangeState(mode model.Mode) {
	p.states = append(p.states, mode)
}

func (p *testPanel) DidChangePosition(position model.DockPosition) {
	p.positions = append(p.positions, position)
}

// immediateAnimator applies target frames synchronously and completes at
// once, which makes animation ordering deterministic in tests
type immediateAnimator struct {
	frameAnimations int
	fadeIns         int
}

func (a *immediateAnimator) AnimateFrame(obj fyne.CanvasObject, to model.Frame, _ time.Duration, done func()) {
	a.frameAnimations++
	obj.Move(to.Position)
	obj.Resize(to.Size)
	if done != nil {
		done()
	}
}

func (a *immediateAnimator) FadeIn(obj fyne.CanvasObject, _ time.Duration, done func()) {
	a.fadeIns++
	obj.Show()
	if done != nil {
		done()
	}
}
